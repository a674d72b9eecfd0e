package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/loanboard/cms/internal/db"
	"github.com/loanboard/cms/internal/db/dbtest"
)

func TestEnsureIndexes(t *testing.T) {
	database := dbtest.Mongo(t)
	ctx := context.Background()

	// a second run over existing indexes is a no-op
	require.NoError(t, db.EnsureIndexes(ctx, database))

	unique := map[string]string{
		db.CollectionApplyNow:        "scope_1",
		db.CollectionCategories:      "name_ci_1",
		db.CollectionCommodityPrices: "commodityType_1_state_ci_1_city_ci_1",
	}
	for collection, name := range unique {
		t.Run(collection, func(t *testing.T) {
			specs, err := database.Collection(collection).Indexes().ListSpecifications(ctx)
			require.NoError(t, err)

			var found *mongo.IndexSpecification
			for _, s := range specs {
				if s.Name == name {
					found = s
				}
			}
			require.NotNil(t, found, "index %s missing", name)
			require.NotNil(t, found.Unique)
			assert.True(t, *found.Unique)
		})
	}
}

func TestEnsureIndexesRejectDuplicates(t *testing.T) {
	database := dbtest.Mongo(t)
	ctx := context.Background()

	prices := database.Collection(db.CollectionCommodityPrices)
	doc := bson.M{"commodityType": "Petrol", "state_ci": "delhi", "city_ci": "new delhi"}
	_, err := prices.InsertOne(ctx, doc)
	require.NoError(t, err)

	_, err = prices.InsertOne(ctx, bson.M{"commodityType": "Petrol", "state_ci": "delhi", "city_ci": "new delhi"})
	assert.True(t, mongo.IsDuplicateKeyError(err), "got %v", err)

	_, err = prices.InsertOne(ctx, bson.M{"commodityType": "Diesel", "state_ci": "delhi", "city_ci": "new delhi"})
	require.NoError(t, err)

	categories := database.Collection(db.CollectionCategories)
	_, err = categories.InsertOne(ctx, bson.M{"name": "Home", "name_ci": "home"})
	require.NoError(t, err)
	_, err = categories.InsertOne(ctx, bson.M{"name": "HOME", "name_ci": "home"})
	assert.True(t, mongo.IsDuplicateKeyError(err), "got %v", err)
}
