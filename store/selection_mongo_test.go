package store

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// openTestMongo connects to MONGO_TEST_URI or skips the test
func openTestMongo(t *testing.T) *mongo.Client {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client
}

func TestMongoSelectionRepository(t *testing.T) {
	ctx := context.Background()
	client := openTestMongo(t)
	repo := NewMongoSelectionRepository(client, "catdogeats_test")
	userID := uuid.NewString()
	t.Cleanup(func() { _, _ = repo.Collection.DeleteOne(ctx, map[string]string{"_id": userID}) })

	empty, err := repo.Load(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, repo.Save(ctx, userID, Selection{"a": true, "b": false}))
	require.NoError(t, repo.Save(ctx, userID, Selection{"a": false}))

	got, err := repo.Load(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, Selection{"a": false}, got)
}
