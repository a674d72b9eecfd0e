package applynow

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const settingsColumns = `id, scope, is_active, description, created_at, updated_at`

// PostgresRepository stores settings in the apply_now_settings table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgresRepository with the given connection pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetOrCreate inserts the default row unless the scope already has one, then reads it.
func (r *PostgresRepository) GetOrCreate(ctx context.Context, scope Scope) (*Settings, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO apply_now_settings (scope, is_active, description)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (scope) DO NOTHING`,
		scope, DefaultIsActive, DefaultDescription,
	)
	if err != nil {
		return nil, fmt.Errorf("create default settings: %w", err)
	}

	s := &Settings{}
	err = r.db.QueryRow(ctx,
		`SELECT `+settingsColumns+` FROM apply_now_settings WHERE scope = $1`,
		scope,
	).Scan(&s.ID, &s.Scope, &s.IsActive, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return s, nil
}

// Upsert writes the patch in a single INSERT ... ON CONFLICT statement.
func (r *PostgresRepository) Upsert(ctx context.Context, scope Scope, patch Patch) (*Settings, error) {
	s := &Settings{}
	err := r.db.QueryRow(ctx,
		`INSERT INTO apply_now_settings (scope, is_active, description)
		 VALUES ($1, COALESCE($2::boolean, $4), COALESCE($3::text, $5))
		 ON CONFLICT (scope) DO UPDATE SET
		     is_active   = COALESCE($2::boolean, apply_now_settings.is_active),
		     description = COALESCE($3::text, apply_now_settings.description),
		     updated_at  = NOW()
		 RETURNING `+settingsColumns,
		scope, patch.IsActive, patch.Description, DefaultIsActive, DefaultDescription,
	).Scan(&s.ID, &s.Scope, &s.IsActive, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert settings: %w", err)
	}
	return s, nil
}
