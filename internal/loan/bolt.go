package loan

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/loanboard/cms/internal/db"
)

// BoltRepository stores loans as JSON keyed by id.
type BoltRepository struct {
	db *bolt.DB
}

// NewBoltRepository returns a repository over the loans bucket.
func NewBoltRepository(bdb *bolt.DB) *BoltRepository {
	return &BoltRepository{db: bdb}
}

// stored is the persisted form; Loan hides the category id from JSON.
type stored struct {
	Loan
	CategoryID string `json:"categoryId"`
}

func (s *stored) loan() *Loan {
	l := s.Loan
	l.CategoryID = s.CategoryID
	return &l
}

func toStored(l *Loan) stored {
	s := stored{Loan: *l, CategoryID: l.CategoryID}
	s.Category = nil
	return s
}

// Create inserts l under a new id.
func (r *BoltRepository) Create(ctx context.Context, l *Loan) (*Loan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := *l
	created.ID = uuid.NewString()
	created.CreatedAt = now
	created.UpdatedAt = now

	err := r.db.Update(func(tx *bolt.Tx) error {
		return db.BoltPut(tx.Bucket(db.BucketLoans), created.ID, toStored(&created))
	})
	if err != nil {
		return nil, fmt.Errorf("create loan: %w", err)
	}
	return &created, nil
}

// Get fetches a loan by id.
func (r *BoltRepository) Get(ctx context.Context, id string) (*Loan, error) {
	var s *stored
	err := r.db.View(func(tx *bolt.Tx) error {
		var err error
		s, err = db.BoltGet[stored](tx.Bucket(db.BucketLoans), id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get loan: %w", err)
	}
	if s == nil {
		return nil, ErrNotFound
	}
	return s.loan(), nil
}

// List scans the bucket and returns the loans matching f, newest first.
func (r *BoltRepository) List(ctx context.Context, f Filter) ([]Loan, error) {
	all, err := r.all()
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}

	out := make([]Loan, 0, len(all))
	for i := range all {
		if f.matches(&all[i]) {
			out = append(out, all[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Update applies patch inside a single write transaction.
func (r *BoltRepository) Update(ctx context.Context, id string, patch Patch) (*Loan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out *Loan
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(db.BucketLoans)
		s, err := db.BoltGet[stored](b, id)
		if err != nil {
			return err
		}
		if s == nil {
			return ErrNotFound
		}

		l := s.loan()
		apply(l, patch)
		l.UpdatedAt = time.Now().UTC()

		out = l
		return db.BoltPut(b, id, toStored(l))
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update loan: %w", err)
	}
	return out, nil
}

// Delete removes the loan.
func (r *BoltRepository) Delete(ctx context.Context, id string) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(db.BucketLoans)
		if b.Get([]byte(id)) == nil {
			return ErrNotFound
		}
		return b.Delete([]byte(id))
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete loan: %w", err)
	}
	return nil
}

// CountByCategory counts the loans referencing categoryID.
func (r *BoltRepository) CountByCategory(ctx context.Context, categoryID string, activeOnly bool) (int, error) {
	all, err := r.all()
	if err != nil {
		return 0, fmt.Errorf("count loans by category: %w", err)
	}

	n := 0
	for _, l := range all {
		if l.CategoryID == categoryID && (l.IsActive || !activeOnly) {
			n++
		}
	}
	return n, nil
}

func (r *BoltRepository) all() ([]Loan, error) {
	var rows []stored
	err := r.db.View(func(tx *bolt.Tx) error {
		var err error
		rows, err = db.BoltAll[stored](tx.Bucket(db.BucketLoans))
		return err
	})
	if err != nil {
		return nil, err
	}

	out := make([]Loan, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].loan())
	}
	return out, nil
}

func apply(l *Loan, patch Patch) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&l.CategoryID, patch.CategoryID)
	set(&l.LoanTitle, patch.LoanTitle)
	set(&l.LoanCompany, patch.LoanCompany)
	set(&l.BankName, patch.BankName)
	set(&l.BankLogo, patch.BankLogo)
	set(&l.LoanDescription, patch.LoanDescription)
	set(&l.LoanQuote, patch.LoanQuote)
	set(&l.Link, patch.Link)
	if patch.IsActive != nil {
		l.IsActive = *patch.IsActive
	}
}
