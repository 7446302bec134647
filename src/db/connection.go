package db

import (
	"context"
	"fmt"
	"net/url"

	"github.com/chillgamer/chill-gamer-server/src/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ClusterHost  = "cluster0.tu4i6.mongodb.net"
	DatabaseName = "gameReviewDB"
)

// Database owns the process wide MongoDB client. It is created once at
// startup and closed on shutdown.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// BuildURI returns the Atlas SRV connection string for the given
// credentials. The user info section is omitted when user is empty.
func BuildURI(user, pass string) string {
	u := url.URL{
		Scheme:   "mongodb+srv",
		Host:     ClusterHost,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority&appName=Cluster0",
	}
	if user != "" {
		u.User = url.UserPassword(user, pass)
	}
	return u.String()
}

func Connect(ctx context.Context, cfg *config.Config) (*Database, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	clientOpts := options.Client().
		ApplyURI(BuildURI(cfg.DBUser, cfg.DBPass)).
		SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	return &Database{
		client: client,
		db:     client.Database(DatabaseName),
	}, nil
}

// Ping sends a ping command to the admin database.
func (d *Database) Ping(ctx context.Context) error {
	return d.client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func (d *Database) Store(collection string) DocumentStore {
	return NewDocumentStore(d.db.Collection(collection))
}

func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
