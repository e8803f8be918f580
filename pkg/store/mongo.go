package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gridpush/gridpush/pkg/board"
)

const (
	defaultDatabase  = "gridpush"
	boardsCollection = "boards"

	// disconnectTimeout bounds how long Close waits for the driver to
	// drain in-flight operations.
	disconnectTimeout = 5 * time.Second
)

// MongoStore is a MongoDB-backed board store for server deployments.
// Boards are stored in the "boards" collection keyed by their ID.
type MongoStore struct {
	client *mongo.Client
	boards *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection.
// If database is empty, "gridpush" is used.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	if database == "" {
		database = defaultDatabase
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &MongoStore{
		client: client,
		boards: client.Database(database).Collection(boardsCollection),
	}, nil
}

// Get retrieves a board by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (*board.Board, error) {
	var b board.Board
	err := s.boards.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find board %s: %w", id, err)
	}
	return &b, nil
}

// Put stores a board, inserting or replacing by ID.
func (s *MongoStore) Put(ctx context.Context, b *board.Board) error {
	_, err := s.boards.ReplaceOne(ctx,
		bson.M{"_id": b.ID},
		b,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("store board %s: %w", b.ID, err)
	}
	return nil
}

// Delete removes a board.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.boards.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete board %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all boards sorted by name, then ID.
// The sort happens server-side so large collections stream in order.
func (s *MongoStore) List(ctx context.Context) ([]*board.Board, error) {
	sort := bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}
	cur, err := s.boards.Find(ctx, bson.M{}, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}

	var boards []*board.Board
	if err := cur.All(ctx, &boards); err != nil {
		return nil, fmt.Errorf("decode boards: %w", err)
	}
	return boards, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
