package services

import (
	"context"
	"errors"
	"testing"

	"github.com/chillgamer/chill-gamer-server/src/db/dbtest"
	"github.com/chillgamer/chill-gamer-server/src/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedReviews(t *testing.T, store *dbtest.MemoryStore) {
	t.Helper()
	reviews := []bson.M{
		{"name": "Elden Ring", "genre": "RPG", "year": int32(2022), "rating": 9.5},
		{"name": "Hades", "genre": "Roguelike", "year": int32(2020), "rating": 9.0},
		{"name": "Baldur's Gate 3", "genre": "RPG", "year": int32(2023), "rating": 9.8},
		{"name": "Diablo IV", "genre": "rpg", "year": int32(2023), "rating": 7.1},
		{"name": "Stardew Valley", "genre": "Simulation", "year": int32(2016), "rating": 8.9},
		{"name": "Disco Elysium", "genre": "RPG", "year": int32(2019), "rating": 9.1},
		{"name": "Celeste", "genre": "Platformer", "year": int32(2018), "rating": 8.7},
		{"name": "Starfield", "genre": "RPG", "year": int32(2023), "rating": 7.0},
	}
	for _, r := range reviews {
		if _, err := store.InsertOne(context.Background(), r); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestGetTopRatedReturnsAtMostSixByRatingDescending(t *testing.T) {
	store := dbtest.NewMemoryStore()
	seedReviews(t, store)
	svc := NewGameReviewService(store)

	got, err := svc.GetTopRated(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != TopRatedLimit {
		t.Fatalf("expected %d reviews, got %d", TopRatedLimit, len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1]["rating"].(float64) < got[i]["rating"].(float64) {
			t.Fatalf("ratings not descending at %d: %v then %v", i, got[i-1]["rating"], got[i]["rating"])
		}
	}
	if got[0]["name"] != "Baldur's Gate 3" {
		t.Fatalf("expected highest rated first, got %v", got[0]["name"])
	}
}

func TestGetByGenreIsExactAndCaseSensitive(t *testing.T) {
	store := dbtest.NewMemoryStore()
	seedReviews(t, store)
	svc := NewGameReviewService(store)

	got, err := svc.GetByGenre(context.Background(), "RPG")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 RPG reviews, got %d", len(got))
	}
	for _, r := range got {
		if r["genre"] != "RPG" {
			t.Fatalf("unexpected genre %v", r["genre"])
		}
	}

	partial, err := svc.GetByGenre(context.Background(), "RP")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(partial) != 0 {
		t.Fatalf("expected no partial matches, got %d", len(partial))
	}
}

func TestQueryShapes(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name      string
		call      func(s *GameReviewService)
		wantField string
		wantLimit int64
		wantGenre interface{}
	}{
		{"top rated", func(s *GameReviewService) { s.GetTopRated(ctx) }, "rating", TopRatedLimit, nil},
		{"sorted by rating", func(s *GameReviewService) { s.GetSorted(ctx, "rating") }, "rating", 0, nil},
		{"sorted by year", func(s *GameReviewService) { s.GetSorted(ctx, "year") }, "year", 0, nil},
		{"sorted by anything else", func(s *GameReviewService) { s.GetSorted(ctx, "name") }, "year", 0, nil},
		{"genre and rating", func(s *GameReviewService) { s.GetByGenreSorted(ctx, "RPG", "rating") }, "rating", 0, "RPG"},
		{"genre and year", func(s *GameReviewService) { s.GetByGenreSorted(ctx, "RPG", "year") }, "year", 0, "RPG"},
		{"genre unsorted", func(s *GameReviewService) { s.GetByGenreSorted(ctx, "RPG", "") }, "", 0, "RPG"},
		{"genre unknown sort", func(s *GameReviewService) { s.GetByGenreSorted(ctx, "RPG", "name") }, "", 0, "RPG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := dbtest.NewMemoryStore()
			tt.call(NewGameReviewService(store))

			if len(store.Queries) != 1 {
				t.Fatalf("expected one query, got %d", len(store.Queries))
			}
			got := store.Queries[0]

			if tt.wantField == "" {
				if len(got.Sort) != 0 {
					t.Fatalf("expected no sort, got %v", got.Sort)
				}
			} else if len(got.Sort) != 1 || got.Sort[0].Key != tt.wantField || got.Sort[0].Value != -1 {
				t.Fatalf("expected %s descending, got %v", tt.wantField, got.Sort)
			}
			if got.Limit != tt.wantLimit {
				t.Fatalf("expected limit %d, got %d", tt.wantLimit, got.Limit)
			}
			if tt.wantGenre != nil && got.Filter[models.FieldGenre] != tt.wantGenre {
				t.Fatalf("expected genre filter %v, got %v", tt.wantGenre, got.Filter)
			}
			if tt.wantGenre == nil && len(got.Filter) != 0 {
				t.Fatalf("expected no filter, got %v", got.Filter)
			}
		})
	}
}

func TestGetByGenreSortedByYear(t *testing.T) {
	store := dbtest.NewMemoryStore()
	seedReviews(t, store)
	svc := NewGameReviewService(store)

	got, err := svc.GetByGenreSorted(context.Background(), "RPG", "year")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 reviews, got %d", len(got))
	}
	for i, r := range got {
		if r["genre"] != "RPG" {
			t.Fatalf("unexpected genre %v", r["genre"])
		}
		if i > 0 && got[i-1]["year"].(int32) < r["year"].(int32) {
			t.Fatalf("years not descending: %v then %v", got[i-1]["year"], r["year"])
		}
	}
}

func TestInvalidIDIsRejectedBeforeTheStore(t *testing.T) {
	store := dbtest.NewMemoryStore()
	svc := NewGameReviewService(store)
	ctx := context.Background()

	if _, err := svc.GetGameReviewByID(ctx, "not-an-id"); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := svc.UpdateGameReview(ctx, "123", bson.M{"name": "x"}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := svc.DeleteGameReview(ctx, "zzzzzzzzzzzzzzzzzzzzzzzz"); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatal("store must not be touched")
	}
}

func TestUpdateUnknownIDUpserts(t *testing.T) {
	store := dbtest.NewMemoryStore()
	svc := NewGameReviewService(store)
	ctx := context.Background()
	id := primitive.NewObjectID()

	res, err := svc.UpdateGameReview(ctx, id.Hex(), bson.M{
		"name":     "Hollow Knight",
		"rating":   9.2,
		"username": "knight",
		"ignored":  true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.UpsertedCount != 1 || res.MatchedCount != 0 {
		t.Fatalf("expected an upsert, got %+v", res)
	}

	doc, err := svc.GetGameReviewByID(ctx, id.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["name"] != "Hollow Knight" || doc["userName"] != "knight" {
		t.Fatalf("unexpected document %v", doc)
	}
	if _, ok := doc["ignored"]; ok {
		t.Fatal("fields outside the update list must not be written")
	}
	if _, ok := doc["username"]; ok {
		t.Fatal("legacy username must be stored as userName")
	}
}

func TestUpdateWithoutKnownFieldsStillUpserts(t *testing.T) {
	store := dbtest.NewMemoryStore()
	svc := NewGameReviewService(store)
	ctx := context.Background()
	id := primitive.NewObjectID()

	res, err := svc.UpdateGameReview(ctx, id.Hex(), bson.M{"foo": "bar"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.UpsertedCount != 1 || res.UpsertedID != id {
		t.Fatalf("expected an upsert, got %+v", res)
	}

	doc, _ := svc.GetGameReviewByID(ctx, id.Hex())
	for _, field := range models.GameReviewUpdateFields {
		v, ok := doc[field]
		if !ok || v != nil {
			t.Fatalf("expected %s stored as null, got %v", field, doc)
		}
	}
	if _, ok := doc["foo"]; ok {
		t.Fatal("fields outside the update list must not be written")
	}
}

func TestUpdateNullsAbsentFields(t *testing.T) {
	store := dbtest.NewMemoryStore()
	svc := NewGameReviewService(store)
	ctx := context.Background()

	inserted, err := store.InsertOne(ctx, bson.M{"name": "Hades", "genre": "Roguelike", "rating": 9.0})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	id := inserted.InsertedID.(primitive.ObjectID)

	res, err := svc.UpdateGameReview(ctx, id.Hex(), bson.M{"rating": 9.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.MatchedCount != 1 {
		t.Fatalf("expected a match, got %+v", res)
	}

	doc, _ := svc.GetGameReviewByID(ctx, id.Hex())
	if doc["rating"] != 9.5 || doc["name"] != nil || doc["genre"] != nil {
		t.Fatalf("expected named fields replaced, got %v", doc)
	}
}

func TestDeleteUnknownIDReportsZero(t *testing.T) {
	svc := NewGameReviewService(dbtest.NewMemoryStore())
	res, err := svc.DeleteGameReview(context.Background(), primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.DeletedCount != 0 {
		t.Fatalf("expected 0 deleted, got %d", res.DeletedCount)
	}
}
