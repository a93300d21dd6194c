package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/siennesavenue/inventory/internal/domain/models"
)

const (
	collName   = "inventory_state"
	stateDocID = "snapshot"
)

// MongoDBRepository persists the whole state document as a single snapshot in
// one collection. ReplaceOne with upsert keeps the write atomic on the server
// side; the store's writer lock serializes callers above it.
type MongoDBRepository struct {
	client *mongo.Client
	dbName string
}

type stateDocument struct {
	ID           string `bson:"_id"`
	models.State `bson:",inline"`
}

// NewMongoDBRepository connects and verifies the MongoDB deployment.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{client: client, dbName: dbName}, nil
}

// Load fetches the snapshot document, or returns a fresh empty state when the
// deployment has never been written to.
func (r *MongoDBRepository) Load(ctx context.Context) (*models.State, error) {
	collection := r.client.Database(r.dbName).Collection(collName)

	var doc stateDocument
	err := collection.FindOne(ctx, bson.M{"_id": stateDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load state snapshot: %w", err)
	}

	state := doc.State
	return &state, nil
}

// Save replaces the snapshot document, creating it on first write.
func (r *MongoDBRepository) Save(ctx context.Context, state *models.State) error {
	collection := r.client.Database(r.dbName).Collection(collName)

	doc := stateDocument{ID: stateDocID, State: *state}
	opts := options.Replace().SetUpsert(true)
	if _, err := collection.ReplaceOne(ctx, bson.M{"_id": stateDocID}, doc, opts); err != nil {
		return fmt.Errorf("failed to save state snapshot: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
