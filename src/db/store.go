package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/chillgamer/chill-gamer-server/src/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Query describes a find over one collection. A nil Filter matches every
// document, an empty Sort leaves the natural order and a zero Limit returns
// all matches.
type Query struct {
	Filter bson.M
	Sort   bson.D
	Limit  int64
}

// DocumentStore is the set of primitives the services need from a
// collection.
type DocumentStore interface {
	InsertOne(ctx context.Context, doc interface{}) (*models.InsertResult, error)
	Find(ctx context.Context, q Query) ([]bson.M, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	UpsertByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

type collectionStore struct {
	collection *mongo.Collection
}

func NewDocumentStore(collection *mongo.Collection) DocumentStore {
	return &collectionStore{collection: collection}
}

func (s *collectionStore) InsertOne(ctx context.Context, doc interface{}) (*models.InsertResult, error) {
	res, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", s.collection.Name(), err)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (s *collectionStore) Find(ctx context.Context, q Query) ([]bson.M, error) {
	filter := q.Filter
	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find()
	if len(q.Sort) > 0 {
		opts.SetSort(q.Sort)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", s.collection.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := make([]bson.M, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s documents: %w", s.collection.Name(), err)
	}
	return docs, nil
}

// FindByID returns nil without an error when no document has the id.
func (s *collectionStore) FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	var doc bson.M
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find %s in %s: %w", id.Hex(), s.collection.Name(), err)
	}
	return doc, nil
}

// UpsertByID sets fields on the document with the given id, inserting a new
// document with that id when none exists.
func (s *collectionStore) UpsertByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error) {
	opts := options.Update().SetUpsert(true)
	res, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts)
	if err != nil {
		return nil, fmt.Errorf("update %s in %s: %w", id.Hex(), s.collection.Name(), err)
	}

	result := &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
	if result.UpsertedID != nil && result.UpsertedCount == 0 {
		result.UpsertedCount = 1
	}
	return result, nil
}

func (s *collectionStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("delete %s from %s: %w", id.Hex(), s.collection.Name(), err)
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
