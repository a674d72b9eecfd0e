package category

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/loanboard/cms/internal/db"
)

// BoltRepository stores categories as JSON keyed by id, with a name_ci -> id index bucket.
type BoltRepository struct {
	db *bolt.DB
}

// NewBoltRepository returns a repository over the categories buckets.
func NewBoltRepository(bdb *bolt.DB) *BoltRepository {
	return &BoltRepository{db: bdb}
}

// Create inserts c, failing with ErrDuplicate when the folded name is indexed.
func (r *BoltRepository) Create(ctx context.Context, c *Category) (*Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := &Category{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := r.db.Update(func(tx *bolt.Tx) error {
		names := tx.Bucket(db.BucketCategoryNames)
		key := []byte(foldName(created.Name))
		if names.Get(key) != nil {
			return ErrDuplicate
		}
		if err := names.Put(key, []byte(created.ID)); err != nil {
			return err
		}
		return db.BoltPut(tx.Bucket(db.BucketCategories), created.ID, created)
	})
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return created, nil
}

// Get fetches a category by id.
func (r *BoltRepository) Get(ctx context.Context, id string) (*Category, error) {
	var c *Category
	err := r.db.View(func(tx *bolt.Tx) error {
		var err error
		c, err = db.BoltGet[Category](tx.Bucket(db.BucketCategories), id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

// GetMany fetches the categories with the given ids. Unknown ids are skipped.
func (r *BoltRepository) GetMany(ctx context.Context, ids []string) ([]Category, error) {
	var out []Category
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(db.BucketCategories)
		for _, id := range ids {
			c, err := db.BoltGet[Category](b, id)
			if err != nil {
				return err
			}
			if c != nil {
				out = append(out, *c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	return out, nil
}

// FindByName resolves the folded name through the index bucket.
func (r *BoltRepository) FindByName(ctx context.Context, name, excludeID string) (*Category, error) {
	var c *Category
	err := r.db.View(func(tx *bolt.Tx) error {
		id := tx.Bucket(db.BucketCategoryNames).Get([]byte(foldName(name)))
		if id == nil || (excludeID != "" && bytes.Equal(id, []byte(excludeID))) {
			return nil
		}
		var err error
		c, err = db.BoltGet[Category](tx.Bucket(db.BucketCategories), string(id))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("find category by name: %w", err)
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

// List returns categories newest first.
func (r *BoltRepository) List(ctx context.Context, activeOnly bool) ([]Category, error) {
	var all []Category
	err := r.db.View(func(tx *bolt.Tx) error {
		var err error
		all, err = db.BoltAll[Category](tx.Bucket(db.BucketCategories))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	out := all[:0]
	for _, c := range all {
		if !activeOnly || c.IsActive {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Update applies patch, moving the name index entry when the name changes.
func (r *BoltRepository) Update(ctx context.Context, id string, patch Patch) (*Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out *Category
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(db.BucketCategories)
		c, err := db.BoltGet[Category](b, id)
		if err != nil {
			return err
		}
		if c == nil {
			return ErrNotFound
		}

		if patch.Name != nil {
			names := tx.Bucket(db.BucketCategoryNames)
			oldKey, newKey := []byte(foldName(c.Name)), []byte(foldName(*patch.Name))
			if owner := names.Get(newKey); owner != nil && string(owner) != id {
				return ErrDuplicate
			}
			if err := names.Delete(oldKey); err != nil {
				return err
			}
			if err := names.Put(newKey, []byte(id)); err != nil {
				return err
			}
			c.Name = *patch.Name
		}
		if patch.Description != nil {
			c.Description = *patch.Description
		}
		if patch.IsActive != nil {
			c.IsActive = *patch.IsActive
		}
		c.UpdatedAt = time.Now().UTC()

		out = c
		return db.BoltPut(b, id, c)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return out, nil
}

// Delete removes the category and its name index entry.
func (r *BoltRepository) Delete(ctx context.Context, id string) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(db.BucketCategories)
		c, err := db.BoltGet[Category](b, id)
		if err != nil {
			return err
		}
		if c == nil {
			return ErrNotFound
		}
		if err := tx.Bucket(db.BucketCategoryNames).Delete([]byte(foldName(c.Name))); err != nil {
			return err
		}
		return b.Delete([]byte(id))
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
