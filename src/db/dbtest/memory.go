// Package dbtest provides an in-memory db.DocumentStore for tests.
package dbtest

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/chillgamer/chill-gamer-server/src/db"
	"github.com/chillgamer/chill-gamer-server/src/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps documents in insertion order. Filters are top level
// equality matches and sort keys must hold numbers; that is all the
// services ask for.
type MemoryStore struct {
	mu      sync.Mutex
	docs    []bson.M
	Queries []db.Query
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) InsertOne(ctx context.Context, doc interface{}) (*models.InsertResult, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var stored bson.M
	if err := bson.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	if _, ok := stored["_id"]; !ok {
		stored["_id"] = primitive.NewObjectID()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, stored)
	return &models.InsertResult{Acknowledged: true, InsertedID: stored["_id"]}, nil
}

func (m *MemoryStore) Find(ctx context.Context, q db.Query) ([]bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Queries = append(m.Queries, q)

	out := make([]bson.M, 0)
	for _, doc := range m.docs {
		if matches(doc, q.Filter) {
			out = append(out, clone(doc))
		}
	}

	if len(q.Sort) > 0 {
		sort.SliceStable(out, func(i, j int) bool {
			for _, key := range q.Sort {
				a, b := number(out[i][key.Key]), number(out[j][key.Key])
				if a == b {
					continue
				}
				if direction(key.Value) < 0 {
					return a > b
				}
				return a < b
			}
			return false
		})
	}

	if q.Limit > 0 && int64(len(out)) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (m *MemoryStore) FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.indexOf(id); i >= 0 {
		return clone(m.docs[i]), nil
	}
	return nil, nil
}

func (m *MemoryStore) UpsertByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.indexOf(id); i >= 0 {
		modified := int64(0)
		for k, v := range fields {
			if !reflect.DeepEqual(m.docs[i][k], v) {
				modified = 1
			}
			m.docs[i][k] = v
		}
		return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
	}

	doc := bson.M{"_id": id}
	for k, v := range fields {
		doc[k] = v
	}
	m.docs = append(m.docs, doc)
	return &models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id}, nil
}

func (m *MemoryStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(id)
	if i < 0 {
		return &models.DeleteResult{Acknowledged: true}, nil
	}
	m.docs = append(m.docs[:i], m.docs[i+1:]...)
	return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}

func (m *MemoryStore) indexOf(id primitive.ObjectID) int {
	for i, doc := range m.docs {
		if docID, ok := doc["_id"].(primitive.ObjectID); ok && docID == id {
			return i
		}
	}
	return -1
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		if !reflect.DeepEqual(doc[k], want) {
			return false
		}
	}
	return true
}

func clone(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func number(v interface{}) float64 {
	switch n := v.(type) {
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

func direction(v interface{}) float64 {
	return number(v)
}
