package loan

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

type loanDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Category        primitive.ObjectID `bson:"category"`
	LoanTitle       string             `bson:"loanTitle"`
	LoanCompany     string             `bson:"loanCompany"`
	BankName        string             `bson:"bankName"`
	BankLogo        string             `bson:"bankLogo,omitempty"`
	LoanDescription string             `bson:"loanDescription"`
	LoanQuote       string             `bson:"loanQuote"`
	Link            string             `bson:"link"`
	IsActive        bool               `bson:"isActive"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

func (d *loanDocument) loan() *Loan {
	return &Loan{
		ID:              d.ID.Hex(),
		CategoryID:      d.Category.Hex(),
		LoanTitle:       d.LoanTitle,
		LoanCompany:     d.LoanCompany,
		BankName:        d.BankName,
		BankLogo:        d.BankLogo,
		LoanDescription: d.LoanDescription,
		LoanQuote:       d.LoanQuote,
		Link:            d.Link,
		IsActive:        d.IsActive,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// MongoRepository stores loans with the category as an ObjectID reference.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository returns a repository over database's loans collection.
func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: database.Collection(db.CollectionLoans)}
}

// Create inserts a new loan.
func (r *MongoRepository) Create(ctx context.Context, l *Loan) (*Loan, error) {
	cat, err := primitive.ObjectIDFromHex(l.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("create loan: category id: %w", err)
	}

	now := time.Now().UTC()
	doc := loanDocument{
		ID:              primitive.NewObjectID(),
		Category:        cat,
		LoanTitle:       l.LoanTitle,
		LoanCompany:     l.LoanCompany,
		BankName:        l.BankName,
		BankLogo:        l.BankLogo,
		LoanDescription: l.LoanDescription,
		LoanQuote:       l.LoanQuote,
		Link:            l.Link,
		IsActive:        l.IsActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("create loan: %w", err)
	}
	return doc.loan(), nil
}

// Get fetches a loan by its ObjectID hex string.
func (r *MongoRepository) Get(ctx context.Context, id string) (*Loan, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc loanDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get loan: %w", err)
	}
	return doc.loan(), nil
}

// List returns the loans matching f, newest first.
func (r *MongoRepository) List(ctx context.Context, f Filter) ([]Loan, error) {
	filter, ok := r.filter(f)
	if !ok {
		return nil, nil
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	defer cur.Close(ctx)

	var docs []loanDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode loans: %w", err)
	}

	out := make([]Loan, 0, len(docs))
	for i := range docs {
		out = append(out, *docs[i].loan())
	}
	return out, nil
}

// Update applies patch and returns the updated document.
func (r *MongoRepository) Update(ctx context.Context, id string, patch Patch) (*Loan, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.CategoryID != nil {
		cat, err := primitive.ObjectIDFromHex(*patch.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("update loan: category id: %w", err)
		}
		set["category"] = cat
	}
	for field, v := range map[string]*string{
		"loanTitle":       patch.LoanTitle,
		"loanCompany":     patch.LoanCompany,
		"bankName":        patch.BankName,
		"bankLogo":        patch.BankLogo,
		"loanDescription": patch.LoanDescription,
		"loanQuote":       patch.LoanQuote,
		"link":            patch.Link,
	} {
		if v != nil {
			set[field] = *v
		}
	}
	if patch.IsActive != nil {
		set["isActive"] = *patch.IsActive
	}

	var doc loanDocument
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update loan: %w", err)
	}
	return doc.loan(), nil
}

// Delete removes the loan.
func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete loan: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByCategory counts the loans referencing categoryID.
func (r *MongoRepository) CountByCategory(ctx context.Context, categoryID string, activeOnly bool) (int, error) {
	f := Filter{CategoryID: categoryID}
	if activeOnly {
		f.IsActive = &activeOnly
	}
	filter, ok := r.filter(f)
	if !ok {
		return 0, nil
	}

	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count loans by category: %w", err)
	}
	return int(n), nil
}

// filter converts f into a query. It reports false when f cannot match any document.
func (r *MongoRepository) filter(f Filter) (bson.M, bool) {
	filter := bson.M{}
	if f.CategoryID != "" {
		cat, err := primitive.ObjectIDFromHex(f.CategoryID)
		if err != nil {
			return nil, false
		}
		filter["category"] = cat
	}
	if f.IsActive != nil {
		filter["isActive"] = *f.IsActive
	}
	return filter, true
}
