package services

import (
	"context"

	"github.com/chillgamer/chill-gamer-server/src/db"
	"github.com/chillgamer/chill-gamer-server/src/models"
	"go.mongodb.org/mongo-driver/bson"
)

type WatchListService struct {
	store db.DocumentStore
}

// NewWatchListService creates a new instance of WatchListService
func NewWatchListService(store db.DocumentStore) *WatchListService {
	return &WatchListService{store: store}
}

func (s *WatchListService) AddWatchListItem(ctx context.Context, item bson.M) (*models.InsertResult, error) {
	return s.store.InsertOne(ctx, item)
}

func (s *WatchListService) GetAllWatchListItems(ctx context.Context) ([]bson.M, error) {
	return s.store.Find(ctx, db.Query{})
}

func (s *WatchListService) GetWatchListItemByID(ctx context.Context, rawID string) (bson.M, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, id)
}

// GetByOwnerEmail returns the items whose owner email equals email
func (s *WatchListService) GetByOwnerEmail(ctx context.Context, email string) ([]bson.M, error) {
	return s.store.Find(ctx, db.Query{Filter: bson.M{models.FieldOwnerEmail: email}})
}

func (s *WatchListService) DeleteWatchListItem(ctx context.Context, rawID string) (*models.DeleteResult, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	return s.store.DeleteByID(ctx, id)
}
