package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/loanboard/cms/internal/db"
)

const categoryColumns = `id, name, description, is_active, created_at, updated_at`

// PostgresRepository stores categories in the categories table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgresRepository with the given connection pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanCategory(row pgx.Row) (*Category, error) {
	c := &Category{}
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

// Create inserts a new category and returns the created record.
func (r *PostgresRepository) Create(ctx context.Context, c *Category) (*Category, error) {
	created, err := scanCategory(r.db.QueryRow(ctx,
		`INSERT INTO categories (name, name_ci, description, is_active)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+categoryColumns,
		c.Name, foldName(c.Name), c.Description, c.IsActive,
	))
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return created, nil
}

// Get fetches a category by its UUID.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*Category, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	c, err := scanCategory(r.db.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id,
	))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// GetMany fetches the categories with the given ids. Unknown ids are skipped.
func (r *PostgresRepository) GetMany(ctx context.Context, ids []string) ([]Category, error) {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := uuid.Parse(id); err == nil {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = ANY($1::uuid[])`, valid,
	)
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	return collect(rows)
}

// FindByName looks a category up by its case-folded name.
func (r *PostgresRepository) FindByName(ctx context.Context, name, excludeID string) (*Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories
		 WHERE name_ci = $1 AND id::text <> $2
		 LIMIT 1`,
		foldName(name), excludeID,
	))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find category by name: %w", err)
	}
	return c, nil
}

// List returns categories newest first.
func (r *PostgresRepository) List(ctx context.Context, activeOnly bool) ([]Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+categoryColumns+` FROM categories
		 WHERE ($1 = FALSE OR is_active)
		 ORDER BY created_at DESC`,
		activeOnly,
	)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return collect(rows)
}

// Update applies patch and returns the updated record.
func (r *PostgresRepository) Update(ctx context.Context, id string, patch Patch) (*Category, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	var nameCI *string
	if patch.Name != nil {
		f := foldName(*patch.Name)
		nameCI = &f
	}

	c, err := scanCategory(r.db.QueryRow(ctx,
		`UPDATE categories SET
		     name        = COALESCE($2::text, name),
		     name_ci     = COALESCE($3::text, name_ci),
		     description = COALESCE($4::text, description),
		     is_active   = COALESCE($5::boolean, is_active),
		     updated_at  = NOW()
		 WHERE id = $1
		 RETURNING `+categoryColumns,
		id, patch.Name, nameCI, patch.Description, patch.IsActive,
	))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, err
		case db.IsUniqueViolation(err):
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

// Delete removes the category.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func collect(rows pgx.Rows) ([]Category, error) {
	defer rows.Close()

	var out []Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return out, nil
}
