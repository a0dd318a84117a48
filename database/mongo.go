package database

import (
	"context"
	"errors"
	"time"

	"github.com/jalexanderII/zero-todos/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const Performance = 100

// MongoDB is the process wide Mongo handle. It is created once at startup and
// passed to whatever needs a collection; the driver pool reconnects on demand.
type MongoDB struct {
	Client *mongo.Client
	Name   string
}

// StartMongoDB connects to the configured deployment and checks the connection.
func StartMongoDB(cfg config.MongoConfig) (*MongoDB, error) {
	if cfg.URI == "" {
		return nil, errors.New("mongo uri is empty")
	}
	if cfg.Database == "" {
		return nil, errors.New("mongo database name is empty")
	}

	clientOptions := options.Client().ApplyURI(cfg.URI)
	if cfg.MaxPoolSize > 0 {
		clientOptions.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	clientOptions.SetServerSelectionTimeout(5 * time.Second)

	ctx, cancel := NewDBContext(cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return &MongoDB{Client: client, Name: cfg.Database}, nil
}

func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.Client.Database(m.Name).Collection(name)
}

func (m *MongoDB) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, readpref.Primary())
}

func (m *MongoDB) CloseMongoDB(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// EnsureTodoIndexes creates the indexes the todo queries rely on.
func EnsureTodoIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "status", Value: 1}, {Key: "priority", Value: 1}}},
		{Keys: bson.D{{Key: "dueDate", Value: 1}}},
		{Keys: bson.D{{Key: "labels", Value: 1}}},
	})
	return err
}

// NewDBContext returns a new Context according to app performance
func NewDBContext(d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = 10 * time.Second
	}
	return context.WithTimeout(context.Background(), d*Performance/100)
}
