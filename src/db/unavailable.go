package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/chillgamer/chill-gamer-server/src/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrUnavailable = errors.New("database unavailable")

// Unavailable stands in for the database when the client could not be
// created at startup. Every operation fails with ErrUnavailable wrapping
// the startup error.
type Unavailable struct {
	cause error
}

func NewUnavailable(cause error) *Unavailable {
	return &Unavailable{cause: cause}
}

func (u *Unavailable) err() error {
	return fmt.Errorf("%w: %v", ErrUnavailable, u.cause)
}

func (u *Unavailable) Ping(ctx context.Context) error {
	return u.err()
}

func (u *Unavailable) Store(collection string) DocumentStore {
	return u
}

func (u *Unavailable) InsertOne(ctx context.Context, doc interface{}) (*models.InsertResult, error) {
	return nil, u.err()
}

func (u *Unavailable) Find(ctx context.Context, q Query) ([]bson.M, error) {
	return nil, u.err()
}

func (u *Unavailable) FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	return nil, u.err()
}

func (u *Unavailable) UpsertByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error) {
	return nil, u.err()
}

func (u *Unavailable) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	return nil, u.err()
}
