// Package dbtest opens throwaway document stores for package tests.
package dbtest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/loanboard/cms/internal/db"
)

// Bolt opens a fresh bbolt store in a temporary directory, closed at test cleanup.
func Bolt(t *testing.T) *bolt.DB {
	t.Helper()

	bdb, err := db.OpenBolt(db.BoltConfig{Path: filepath.Join(t.TempDir(), "test.db"), NoSync: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = bdb.Close() })
	return bdb
}

// Postgres connects to TEST_DATABASE_URL, applies migrations and empties every table.
// The test is skipped when the variable is unset.
func Postgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	require.NoError(t, db.Migrate(url))

	ctx := context.Background()
	pool, err := db.Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE apply_now_settings, categories, loans, commodity_prices`)
	require.NoError(t, err)
	return pool
}

// Mongo connects to TEST_MONGO_URI and returns a fresh database with the unique indexes
// in place. The database is dropped at cleanup. The test is skipped when the variable is unset.
func Mongo(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set")
	}

	ctx := context.Background()
	client, err := db.ConnectMongo(ctx, uri)
	require.NoError(t, err)

	database := client.Database("loanboard_test_" + primitive.NewObjectID().Hex())
	t.Cleanup(func() {
		_ = database.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	require.NoError(t, db.EnsureIndexes(ctx, database))
	return database
}
