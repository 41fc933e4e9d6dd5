package progress

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultMongoDatabase = "aidocs"
	mongoCollection      = "progress"
)

type mongoSlot struct {
	Slot      string          `bson:"_id"`
	Data      map[string]bool `bson:"data"`
	UpdatedAt time.Time       `bson:"updated_at"`
}

// MongoStore keeps each slot as one document keyed by slot name
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
	slot       string
}

// NewMongoStore connects to uri. The database is taken from the URI path
// and defaults to "aidocs".
func NewMongoStore(ctx context.Context, uri, slot string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(mongoDatabase(uri)).Collection(mongoCollection),
		slot:       slot,
	}, nil
}

func mongoDatabase(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return defaultMongoDatabase
	}
	if name := strings.Trim(u.Path, "/"); name != "" {
		return name
	}
	return defaultMongoDatabase
}

// Load reads the slot document
func (s *MongoStore) Load(ctx context.Context) (Progress, error) {
	var doc mongoSlot
	err := s.collection.FindOne(ctx, bson.M{"_id": s.slot}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Progress{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}

	if doc.Data == nil {
		return Progress{}, nil
	}
	return Progress(doc.Data), nil
}

// Save replaces the slot document, inserting it if absent
func (s *MongoStore) Save(ctx context.Context, p Progress) error {
	doc := mongoSlot{Slot: s.slot, Data: p, UpdatedAt: time.Now().UTC()}
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": s.slot}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// Close disconnects the client
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
