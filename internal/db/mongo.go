package db

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo collection names.
const (
	CollectionApplyNow        = "apply_now_settings"
	CollectionCategories      = "categories"
	CollectionLoans           = "loans"
	CollectionCommodityPrices = "commodity_prices"
)

// ConnectMongo creates a client for uri and pings the primary.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetConnectTimeout(10*time.Second))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	log.Info().Msg("connected to mongo")
	return client, nil
}

// EnsureIndexes creates the unique indexes the repositories rely on for conflict detection.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		CollectionApplyNow: {
			{Keys: bson.D{{Key: "scope", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		CollectionCategories: {
			{Keys: bson.D{{Key: "name_ci", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "isActive", Value: 1}}},
		},
		CollectionLoans: {
			{Keys: bson.D{{Key: "category", Value: 1}}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		CollectionCommodityPrices: {
			{
				Keys: bson.D{
					{Key: "commodityType", Value: 1},
					{Key: "state_ci", Value: 1},
					{Key: "city_ci", Value: 1},
				},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "isActive", Value: 1}}},
		},
	}

	for collection, models := range indexes {
		names, err := database.Collection(collection).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("create indexes on %s: %w", collection, err)
		}
		log.Debug().Str("collection", collection).Strs("indexes", names).Msg("mongo indexes ensured")
	}
	return nil
}
