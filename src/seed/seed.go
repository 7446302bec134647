package seed

import (
	"context"
	"fmt"

	"github.com/chillgamer/chill-gamer-server/src/db"
	"github.com/chillgamer/chill-gamer-server/src/logger"
	"github.com/chillgamer/chill-gamer-server/src/models"
)

var sampleReviews = []models.GameReviewModel{
	{Name: "Elden Ring", Genre: "RPG", Year: 2022, Rating: 9.5, Description: "Open world soulslike across the Lands Between.", UserName: "Chill Gamer", UserEmail: "demo@chillgamer.dev"},
	{Name: "Baldur's Gate 3", Genre: "RPG", Year: 2023, Rating: 9.8, Description: "Party based adventure in the Forgotten Realms.", UserName: "Chill Gamer", UserEmail: "demo@chillgamer.dev"},
	{Name: "Hades", Genre: "Roguelike", Year: 2020, Rating: 9.0, Description: "Fight out of the underworld, one run at a time.", UserName: "Chill Gamer", UserEmail: "demo@chillgamer.dev"},
	{Name: "Stardew Valley", Genre: "Simulation", Year: 2016, Rating: 8.9, Description: "Farming, fishing and small town life.", UserName: "Chill Gamer", UserEmail: "demo@chillgamer.dev"},
	{Name: "Celeste", Genre: "Platformer", Year: 2018, Rating: 8.7, Description: "Precision platforming up a haunted mountain.", UserName: "Chill Gamer", UserEmail: "demo@chillgamer.dev"},
	{Name: "Disco Elysium", Genre: "RPG", Year: 2019, Rating: 9.1, Description: "A detective RPG without combat.", UserName: "Chill Gamer", UserEmail: "demo@chillgamer.dev"},
	{Name: "Forza Horizon 5", Genre: "Racing", Year: 2021, Rating: 8.8, Description: "Festival racing across Mexico.", UserName: "Chill Gamer", UserEmail: "demo@chillgamer.dev"},
}

// Seed inserts the sample reviews when the collection is empty and returns
// how many were inserted.
func Seed(ctx context.Context, store db.DocumentStore) (int, error) {
	existing, err := store.Find(ctx, db.Query{Limit: 1})
	if err != nil {
		return 0, fmt.Errorf("check existing reviews: %w", err)
	}
	if len(existing) > 0 {
		logger.Info(logger.EventGeneral, "Game reviews already present, skipping seed", nil)
		return 0, nil
	}

	created := 0
	for _, review := range sampleReviews {
		if _, err := store.InsertOne(ctx, review); err != nil {
			return created, fmt.Errorf("insert %q: %w", review.Name, err)
		}
		created++
	}

	logger.Info(logger.EventGeneral, "Seeded game reviews", logger.Fields("count", created))
	return created, nil
}
