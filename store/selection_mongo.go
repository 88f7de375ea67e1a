package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const selectionCollection = "cart_selections"

type selectionDocument struct {
	UserID    string          `bson:"_id"`
	Selected  map[string]bool `bson:"selected"`
	UpdatedAt time.Time       `bson:"updated_at"`
}

// MongoSelectionRepository stores one document per user in the cart_selections collection
type MongoSelectionRepository struct {
	Collection *mongo.Collection
	Timeout    time.Duration
}

// NewMongoSelectionRepository creates a MongoSelectionRepository on database dbName
func NewMongoSelectionRepository(client *mongo.Client, dbName string) *MongoSelectionRepository {
	return &MongoSelectionRepository{
		Collection: client.Database(dbName).Collection(selectionCollection),
		Timeout:    5 * time.Second,
	}
}

// Load returns the user's stored selection; a missing document is an empty selection
func (r *MongoSelectionRepository) Load(ctx context.Context, userID string) (Selection, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	var doc selectionDocument
	err := r.Collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Selection{}, nil
	}
	if err != nil {
		return nil, err
	}
	return Selection(doc.Selected).clone(), nil
}

// Save upserts the user's selection
func (r *MongoSelectionRepository) Save(ctx context.Context, userID string, sel Selection) error {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"selected":   map[string]bool(sel),
			"updated_at": time.Now().UTC(),
		},
	}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": userID}, update, options.Update().SetUpsert(true))
	return err
}
