package commodity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/loanboard/cms/internal/db"
)

const priceColumns = `id, commodity_type, state, city, price, unit, is_active, created_at, updated_at`

// PostgresRepository stores prices in the commodity_prices table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgresRepository with the given connection pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanPrice(row pgx.Row) (*Price, error) {
	p := &Price{}
	err := row.Scan(&p.ID, &p.CommodityType, &p.State, &p.City, &p.Price, &p.Unit, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// Create inserts a new price and returns the created record.
func (r *PostgresRepository) Create(ctx context.Context, p *Price) (*Price, error) {
	created, err := scanPrice(r.db.QueryRow(ctx,
		`INSERT INTO commodity_prices (commodity_type, state, state_ci, city, city_ci, price, unit, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+priceColumns,
		string(p.CommodityType), p.State, fold(p.State), p.City, fold(p.City), p.Price, p.Unit, p.IsActive,
	))
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("create commodity price: %w", err)
	}
	return created, nil
}

// Get fetches a price by its UUID.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*Price, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	p, err := scanPrice(r.db.QueryRow(ctx,
		`SELECT `+priceColumns+` FROM commodity_prices WHERE id = $1`, id,
	))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get commodity price: %w", err)
	}
	return p, nil
}

// FindByKey looks a price up by its folded natural key.
func (r *PostgresRepository) FindByKey(ctx context.Context, key Key, excludeID string) (*Price, error) {
	k := key.Folded()
	p, err := scanPrice(r.db.QueryRow(ctx,
		`SELECT `+priceColumns+` FROM commodity_prices
		 WHERE commodity_type = $1 AND state_ci = $2 AND city_ci = $3 AND id::text <> $4
		 LIMIT 1`,
		string(k.CommodityType), k.State, k.City, excludeID,
	))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find commodity price by key: %w", err)
	}
	return p, nil
}

// List returns the prices matching f in storage order.
func (r *PostgresRepository) List(ctx context.Context, f Filter) ([]Price, error) {
	var (
		where []string
		args  []interface{}
	)
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if f.CommodityType != "" {
		add("commodity_type = $%d", string(f.CommodityType))
	}
	if f.State != "" {
		add("strpos(state_ci, $%d) > 0", fold(f.State))
	}
	if f.City != "" {
		add("strpos(city_ci, $%d) > 0", fold(f.City))
	}
	if f.IsActive != nil {
		add("is_active = $%d", *f.IsActive)
	}

	query := `SELECT ` + priceColumns + ` FROM commodity_prices`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list commodity prices: %w", err)
	}
	defer rows.Close()

	var out []Price
	for rows.Next() {
		p, err := scanPrice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan commodity price: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate commodity prices: %w", err)
	}
	return out, nil
}

// Update applies patch and returns the updated record.
func (r *PostgresRepository) Update(ctx context.Context, id string, patch Patch) (*Price, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	p, err := scanPrice(r.db.QueryRow(ctx,
		`UPDATE commodity_prices SET
		     commodity_type = COALESCE($2::text, commodity_type),
		     state          = COALESCE($3::text, state),
		     state_ci       = COALESCE($4::text, state_ci),
		     city           = COALESCE($5::text, city),
		     city_ci        = COALESCE($6::text, city_ci),
		     price          = COALESCE($7::double precision, price),
		     unit           = COALESCE($8::text, unit),
		     is_active      = COALESCE($9::boolean, is_active),
		     updated_at     = NOW()
		 WHERE id = $1
		 RETURNING `+priceColumns,
		id, typeString(patch.CommodityType), patch.State, foldPtr(patch.State), patch.City, foldPtr(patch.City),
		patch.Price, patch.Unit, patch.IsActive,
	))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, err
		case db.IsUniqueViolation(err):
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("update commodity price: %w", err)
	}
	return p, nil
}

// Delete removes the price.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM commodity_prices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete commodity price: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func foldPtr(s *string) *string {
	if s == nil {
		return nil
	}
	f := fold(*s)
	return &f
}

func typeString(t *Type) *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}
