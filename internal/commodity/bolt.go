package commodity

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/loanboard/cms/internal/db"
)

// BoltRepository stores prices as JSON keyed by id, with a folded natural key -> id index bucket.
type BoltRepository struct {
	db *bolt.DB
}

// NewBoltRepository returns a repository over the commodity price buckets.
func NewBoltRepository(bdb *bolt.DB) *BoltRepository {
	return &BoltRepository{db: bdb}
}

func indexKey(k Key) []byte {
	f := k.Folded()
	return []byte(string(f.CommodityType) + "\x00" + f.State + "\x00" + f.City)
}

// Create inserts p, failing with ErrDuplicate when its key is indexed.
func (r *BoltRepository) Create(ctx context.Context, p *Price) (*Price, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := *p
	created.ID = uuid.NewString()
	created.CreatedAt = now
	created.UpdatedAt = now

	err := r.db.Update(func(tx *bolt.Tx) error {
		keys := tx.Bucket(db.BucketCommodityKeys)
		k := indexKey(created.Key())
		if keys.Get(k) != nil {
			return ErrDuplicate
		}
		if err := keys.Put(k, []byte(created.ID)); err != nil {
			return err
		}
		return db.BoltPut(tx.Bucket(db.BucketCommodityPrices), created.ID, created)
	})
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("create commodity price: %w", err)
	}
	return &created, nil
}

// Get fetches a price by id.
func (r *BoltRepository) Get(ctx context.Context, id string) (*Price, error) {
	var p *Price
	err := r.db.View(func(tx *bolt.Tx) error {
		var err error
		p, err = db.BoltGet[Price](tx.Bucket(db.BucketCommodityPrices), id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get commodity price: %w", err)
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// FindByKey resolves the folded key through the index bucket.
func (r *BoltRepository) FindByKey(ctx context.Context, key Key, excludeID string) (*Price, error) {
	var p *Price
	err := r.db.View(func(tx *bolt.Tx) error {
		id := tx.Bucket(db.BucketCommodityKeys).Get(indexKey(key))
		if id == nil || (excludeID != "" && bytes.Equal(id, []byte(excludeID))) {
			return nil
		}
		var err error
		p, err = db.BoltGet[Price](tx.Bucket(db.BucketCommodityPrices), string(id))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("find commodity price by key: %w", err)
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// List scans the bucket and keeps the prices matching f.
func (r *BoltRepository) List(ctx context.Context, f Filter) ([]Price, error) {
	var all []Price
	err := r.db.View(func(tx *bolt.Tx) error {
		var err error
		all, err = db.BoltAll[Price](tx.Bucket(db.BucketCommodityPrices))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list commodity prices: %w", err)
	}

	out := make([]Price, 0, len(all))
	for i := range all {
		if f.matches(&all[i]) {
			out = append(out, all[i])
		}
	}
	return out, nil
}

// Update applies patch, moving the index entry when the key changes.
func (r *BoltRepository) Update(ctx context.Context, id string, patch Patch) (*Price, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out *Price
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(db.BucketCommodityPrices)
		p, err := db.BoltGet[Price](b, id)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrNotFound
		}

		oldKey := indexKey(p.Key())
		if patch.CommodityType != nil {
			p.CommodityType = *patch.CommodityType
		}
		if patch.State != nil {
			p.State = *patch.State
		}
		if patch.City != nil {
			p.City = *patch.City
		}
		if newKey := indexKey(p.Key()); !bytes.Equal(oldKey, newKey) {
			keys := tx.Bucket(db.BucketCommodityKeys)
			if owner := keys.Get(newKey); owner != nil && string(owner) != id {
				return ErrDuplicate
			}
			if err := keys.Delete(oldKey); err != nil {
				return err
			}
			if err := keys.Put(newKey, []byte(id)); err != nil {
				return err
			}
		}

		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Unit != nil {
			p.Unit = *patch.Unit
		}
		if patch.IsActive != nil {
			p.IsActive = *patch.IsActive
		}
		p.UpdatedAt = time.Now().UTC()

		out = p
		return db.BoltPut(b, id, p)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("update commodity price: %w", err)
	}
	return out, nil
}

// Delete removes the price and its index entry.
func (r *BoltRepository) Delete(ctx context.Context, id string) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(db.BucketCommodityPrices)
		p, err := db.BoltGet[Price](b, id)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrNotFound
		}
		if err := tx.Bucket(db.BucketCommodityKeys).Delete(indexKey(p.Key())); err != nil {
			return err
		}
		return b.Delete([]byte(id))
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete commodity price: %w", err)
	}
	return nil
}
