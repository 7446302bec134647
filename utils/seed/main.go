package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chillgamer/chill-gamer-server/src/config"
	"github.com/chillgamer/chill-gamer-server/src/db"
	"github.com/chillgamer/chill-gamer-server/src/logger"
	"github.com/chillgamer/chill-gamer-server/src/models"
	"github.com/chillgamer/chill-gamer-server/src/seed"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(logger.Config{ServiceName: "chill-gamer-seed", Environment: cfg.Environment})

	if err := run(cfg); err != nil {
		logger.Error(logger.EventDBError, "Seeding failed", logger.Fields("error", err.Error()))
		os.Exit(1)
	}
}

// run returns instead of exiting so the deferred disconnect always happens.
func run(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to MongoDB: %w", err)
	}
	defer func() {
		if err := database.Close(context.Background()); err != nil {
			logger.Error(logger.EventDBError, "Error disconnecting from MongoDB", logger.Fields("error", err.Error()))
		}
	}()

	created, err := seed.Seed(ctx, database.Store(models.GameReviewCollection))
	if err != nil {
		return fmt.Errorf("seed %s after %d inserts: %w", models.GameReviewCollection, created, err)
	}
	return nil
}
