package commodity

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/loanboard/cms/internal/db"
)

type priceDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	CommodityType string             `bson:"commodityType"`
	State         string             `bson:"state"`
	StateCI       string             `bson:"state_ci"`
	City          string             `bson:"city"`
	CityCI        string             `bson:"city_ci"`
	Price         float64            `bson:"price"`
	Unit          string             `bson:"unit"`
	IsActive      bool               `bson:"isActive"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

func (d *priceDocument) price() *Price {
	return &Price{
		ID:            d.ID.Hex(),
		CommodityType: Type(d.CommodityType),
		State:         d.State,
		City:          d.City,
		Price:         d.Price,
		Unit:          d.Unit,
		IsActive:      d.IsActive,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// MongoRepository stores prices in a collection with a unique (commodityType, state_ci, city_ci) index.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository returns a repository over database's commodity prices collection.
func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: database.Collection(db.CollectionCommodityPrices)}
}

// Create inserts a new price.
func (r *MongoRepository) Create(ctx context.Context, p *Price) (*Price, error) {
	now := time.Now().UTC()
	doc := priceDocument{
		ID:            primitive.NewObjectID(),
		CommodityType: string(p.CommodityType),
		State:         p.State,
		StateCI:       fold(p.State),
		City:          p.City,
		CityCI:        fold(p.City),
		Price:         p.Price,
		Unit:          p.Unit,
		IsActive:      p.IsActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("create commodity price: %w", err)
	}
	return doc.price(), nil
}

// Get fetches a price by its ObjectID hex string.
func (r *MongoRepository) Get(ctx context.Context, id string) (*Price, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// FindByKey looks a price up by its folded natural key.
func (r *MongoRepository) FindByKey(ctx context.Context, key Key, excludeID string) (*Price, error) {
	k := key.Folded()
	filter := bson.M{"commodityType": string(k.CommodityType), "state_ci": k.State, "city_ci": k.City}
	if oid, err := primitive.ObjectIDFromHex(excludeID); err == nil {
		filter["_id"] = bson.M{"$ne": oid}
	}
	return r.findOne(ctx, filter)
}

// List returns the prices matching f.
func (r *MongoRepository) List(ctx context.Context, f Filter) ([]Price, error) {
	filter := bson.M{}
	if f.CommodityType != "" {
		filter["commodityType"] = string(f.CommodityType)
	}
	if f.State != "" {
		filter["state_ci"] = primitive.Regex{Pattern: regexp.QuoteMeta(fold(f.State))}
	}
	if f.City != "" {
		filter["city_ci"] = primitive.Regex{Pattern: regexp.QuoteMeta(fold(f.City))}
	}
	if f.IsActive != nil {
		filter["isActive"] = *f.IsActive
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list commodity prices: %w", err)
	}
	defer cur.Close(ctx)

	var docs []priceDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode commodity prices: %w", err)
	}

	out := make([]Price, 0, len(docs))
	for i := range docs {
		out = append(out, *docs[i].price())
	}
	return out, nil
}

// Update applies patch and returns the updated document.
func (r *MongoRepository) Update(ctx context.Context, id string, patch Patch) (*Price, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.CommodityType != nil {
		set["commodityType"] = string(*patch.CommodityType)
	}
	if patch.State != nil {
		set["state"] = *patch.State
		set["state_ci"] = fold(*patch.State)
	}
	if patch.City != nil {
		set["city"] = *patch.City
		set["city_ci"] = fold(*patch.City)
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Unit != nil {
		set["unit"] = *patch.Unit
	}
	if patch.IsActive != nil {
		set["isActive"] = *patch.IsActive
	}

	var doc priceDocument
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return nil, ErrDuplicate
	case err != nil:
		return nil, fmt.Errorf("update commodity price: %w", err)
	}
	return doc.price(), nil
}

// Delete removes the price.
func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete commodity price: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*Price, error) {
	var doc priceDocument
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find commodity price: %w", err)
	}
	return doc.price(), nil
}
