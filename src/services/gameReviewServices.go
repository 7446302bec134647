package services

import (
	"context"

	"github.com/chillgamer/chill-gamer-server/src/db"
	"github.com/chillgamer/chill-gamer-server/src/models"
	"go.mongodb.org/mongo-driver/bson"
)

// TopRatedLimit caps the number of reviews returned by GetTopRated.
const TopRatedLimit = 6

type GameReviewService struct {
	store db.DocumentStore
}

// NewGameReviewService creates a new instance of GameReviewService
func NewGameReviewService(store db.DocumentStore) *GameReviewService {
	return &GameReviewService{store: store}
}

// CreateGameReview stores the document as sent by the client
func (s *GameReviewService) CreateGameReview(ctx context.Context, review bson.M) (*models.InsertResult, error) {
	return s.store.InsertOne(ctx, review)
}

// GetAllGameReviews returns every review in natural order
func (s *GameReviewService) GetAllGameReviews(ctx context.Context) ([]bson.M, error) {
	return s.store.Find(ctx, db.Query{})
}

func (s *GameReviewService) GetTopRated(ctx context.Context) ([]bson.M, error) {
	return s.store.Find(ctx, topRatedQuery())
}

// GetByGenre returns reviews whose genre equals genre exactly
func (s *GameReviewService) GetByGenre(ctx context.Context, genre string) ([]bson.M, error) {
	return s.store.Find(ctx, db.Query{Filter: bson.M{models.FieldGenre: genre}})
}

func (s *GameReviewService) GetSorted(ctx context.Context, sortBy string) ([]bson.M, error) {
	return s.store.Find(ctx, sortedQuery(sortBy))
}

func (s *GameReviewService) GetByGenreSorted(ctx context.Context, genre, sortBy string) ([]bson.M, error) {
	return s.store.Find(ctx, genreSortedQuery(genre, sortBy))
}

// GetGameReviewByID returns nil when no review has the id
func (s *GameReviewService) GetGameReviewByID(ctx context.Context, rawID string) (bson.M, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, id)
}

func (s *GameReviewService) GetByUserEmail(ctx context.Context, email string) ([]bson.M, error) {
	return s.store.Find(ctx, db.Query{Filter: bson.M{models.FieldUserEmail: email}})
}

// UpdateGameReview replaces every updatable field of the review with the
// given id. Fields missing from body are stored as null. A review is created
// under that id when none exists.
func (s *GameReviewService) UpdateGameReview(ctx context.Context, rawID string, body bson.M) (*models.UpdateResult, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	return s.store.UpsertByID(ctx, id, updateFields(body))
}

func (s *GameReviewService) DeleteGameReview(ctx context.Context, rawID string) (*models.DeleteResult, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	return s.store.DeleteByID(ctx, id)
}

func descending(field string) bson.D {
	return bson.D{{Key: field, Value: -1}}
}

func topRatedQuery() db.Query {
	return db.Query{Sort: descending(models.FieldRating), Limit: TopRatedLimit}
}

// sortedQuery sorts by rating when asked to and by year for any other value.
func sortedQuery(sortBy string) db.Query {
	if sortBy == models.FieldRating {
		return db.Query{Sort: descending(models.FieldRating)}
	}
	return db.Query{Sort: descending(models.FieldYear)}
}

// genreSortedQuery leaves the result unsorted unless sortBy names rating or
// year.
func genreSortedQuery(genre, sortBy string) db.Query {
	q := db.Query{Filter: bson.M{models.FieldGenre: genre}}
	switch sortBy {
	case models.FieldRating, models.FieldYear:
		q.Sort = descending(sortBy)
	}
	return q
}

// updateFields always carries the full field list so the $set is never
// empty. The legacy username key fills userName when userName is absent.
func updateFields(body bson.M) bson.M {
	fields := make(bson.M, len(models.GameReviewUpdateFields))
	for _, name := range models.GameReviewUpdateFields {
		fields[name] = body[name]
	}
	if _, ok := body[models.FieldUserName]; !ok {
		fields[models.FieldUserName] = body[models.LegacyFieldUsername]
	}
	return fields
}
