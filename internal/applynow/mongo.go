package applynow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/loanboard/cms/internal/db"
)

type settingsDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Scope       string             `bson:"scope"`
	IsActive    bool               `bson:"isActive"`
	Description string             `bson:"description"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d *settingsDocument) settings() *Settings {
	return &Settings{
		ID:          d.ID.Hex(),
		Scope:       Scope(d.Scope),
		IsActive:    d.IsActive,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// MongoRepository stores settings in a collection with a unique index on scope.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository returns a repository over database's settings collection.
func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: database.Collection(db.CollectionApplyNow)}
}

// GetOrCreate upserts with $setOnInsert so only the first caller writes.
func (r *MongoRepository) GetOrCreate(ctx context.Context, scope Scope) (*Settings, error) {
	now := time.Now().UTC()
	update := bson.M{"$setOnInsert": bson.M{
		"isActive":    DefaultIsActive,
		"description": DefaultDescription,
		"createdAt":   now,
		"updatedAt":   now,
	}}
	return r.findOneAndUpsert(ctx, scope, update)
}

// Upsert sets the supplied fields and fills the rest with defaults on insert.
func (r *MongoRepository) Upsert(ctx context.Context, scope Scope, patch Patch) (*Settings, error) {
	now := time.Now().UTC()
	set := bson.M{"updatedAt": now}
	onInsert := bson.M{"createdAt": now}

	if patch.IsActive != nil {
		set["isActive"] = *patch.IsActive
	} else {
		onInsert["isActive"] = DefaultIsActive
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	} else {
		onInsert["description"] = DefaultDescription
	}

	return r.findOneAndUpsert(ctx, scope, bson.M{"$set": set, "$setOnInsert": onInsert})
}

func (r *MongoRepository) findOneAndUpsert(ctx context.Context, scope Scope, update bson.M) (*Settings, error) {
	filter := bson.M{"scope": string(scope)}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc settingsDocument
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if mongo.IsDuplicateKeyError(err) {
		// a concurrent upsert inserted first; the retry matches its document
		err = r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("upsert settings %s: no document returned", scope)
	}
	if err != nil {
		return nil, fmt.Errorf("upsert settings %s: %w", scope, err)
	}
	return doc.settings(), nil
}
