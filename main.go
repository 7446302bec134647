package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/chillgamer/chill-gamer-server/src/config"
	"github.com/chillgamer/chill-gamer-server/src/db"
	"github.com/chillgamer/chill-gamer-server/src/logger"
	"github.com/chillgamer/chill-gamer-server/src/middleware"
	"github.com/chillgamer/chill-gamer-server/src/models"
	"github.com/chillgamer/chill-gamer-server/src/routes"
	"github.com/chillgamer/chill-gamer-server/src/services"
	"github.com/gin-gonic/gin"
)

// storeProvider is satisfied by both a connected *db.Database and the
// *db.Unavailable placeholder.
type storeProvider interface {
	Ping(ctx context.Context) error
	Store(collection string) db.DocumentStore
}

func main() {
	cfg := config.LoadConfig()

	logger.Init(logger.Config{
		ServiceName: "chill-gamer-server",
		Environment: cfg.Environment,
		LogFilePath: cfg.LogFilePath,
		MaxSizeMB:   cfg.LogMaxSizeMB,
		MaxBackups:  cfg.LogMaxBackups,
		MaxAgeDays:  cfg.LogMaxAgeDays,
	})

	logger.Info(logger.EventServiceStartup, "Server starting", logger.Fields(
		"port", cfg.Port,
		"environment", cfg.Environment,
	))

	// Database connection
	database, provider := connectDatabase(cfg)

	// Services setup
	gameReviewService := services.NewGameReviewService(provider.Store(models.GameReviewCollection))
	watchListService := services.NewWatchListService(provider.Store(models.WatchListCollection))

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Gin router setup
	router := routes.NewRouter()
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(),
		middleware.SecurityHeaders(),
		middleware.SetupCORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	// Routes setup
	routes.SetupHealthRoutes(router, provider)
	routes.SetupGameReviewRoutes(router, gameReviewService)
	routes.SetupWatchListRoutes(router, watchListService)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info(logger.EventServiceStartup, "Your server is running", logger.Fields("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Fatal(logger.EventGeneral, "Failed to start server", logger.Fields("error", err.Error()))
		}
	case <-ctx.Done():
		logger.Info(logger.EventServiceShutdown, "Shutting down server", nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(logger.EventServiceShutdown, "Server shutdown did not complete", logger.Fields("error", err.Error()))
	}

	if database != nil {
		if err := database.Close(shutdownCtx); err != nil {
			logger.Error(logger.EventDBError, "Error disconnecting from MongoDB", logger.Fields("error", err.Error()))
		}
	}

	logger.Info(logger.EventServiceShutdown, "Server stopped", nil)
}

// connectDatabase never stops the process. When the client cannot be
// created the server keeps running and database backed routes fail with a
// server error; a failed ping is only logged since the driver reconnects on
// its own.
func connectDatabase(cfg *config.Config) (*db.Database, storeProvider) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.Error(logger.EventDBError, "Failed to connect to MongoDB", logger.Fields("error", err.Error()))
		return nil, db.NewUnavailable(err)
	}

	if err := database.Ping(ctx); err != nil {
		logger.Warn(logger.EventDBError, "Failed to ping MongoDB", logger.Fields("error", err.Error()))
	} else {
		logger.Info(logger.EventDBConnection, "Pinged your deployment. Successfully connected to MongoDB", logger.Fields(
			"database", db.DatabaseName,
		))
	}

	return database, database
}
