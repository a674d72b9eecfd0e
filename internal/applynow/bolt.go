package applynow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/loanboard/cms/internal/db"
)

// BoltRepository keeps one JSON document per scope, keyed by the scope name.
type BoltRepository struct {
	db *bolt.DB
}

// NewBoltRepository returns a repository over the apply-now bucket.
func NewBoltRepository(bdb *bolt.DB) *BoltRepository {
	return &BoltRepository{db: bdb}
}

// GetOrCreate reads the scope's document, writing the default inside the same transaction if absent.
func (r *BoltRepository) GetOrCreate(ctx context.Context, scope Scope) (*Settings, error) {
	return r.update(ctx, scope, nil)
}

// Upsert applies patch, creating the document first if needed.
func (r *BoltRepository) Upsert(ctx context.Context, scope Scope, patch Patch) (*Settings, error) {
	return r.update(ctx, scope, &patch)
}

func (r *BoltRepository) update(ctx context.Context, scope Scope, patch *Patch) (*Settings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out *Settings
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(db.BucketApplyNow)

		s, err := db.BoltGet[Settings](b, string(scope))
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		dirty := false
		if s == nil {
			s = &Settings{
				ID:          uuid.NewString(),
				Scope:       scope,
				IsActive:    DefaultIsActive,
				Description: DefaultDescription,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			dirty = true
		}

		if patch != nil {
			if patch.IsActive != nil {
				s.IsActive = *patch.IsActive
			}
			if patch.Description != nil {
				s.Description = *patch.Description
			}
			s.UpdatedAt = now
			dirty = true
		}

		out = s
		if !dirty {
			return nil
		}
		return db.BoltPut(b, string(scope), s)
	})
	if err != nil {
		return nil, fmt.Errorf("update settings %s: %w", scope, err)
	}
	return out, nil
}
