package loan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const loanColumns = `id, category_id, loan_title, loan_company, bank_name, bank_logo,
	loan_description, loan_quote, link, is_active, created_at, updated_at`

// PostgresRepository stores loans in the loans table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgresRepository with the given connection pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanLoan(row pgx.Row) (*Loan, error) {
	l := &Loan{}
	err := row.Scan(&l.ID, &l.CategoryID, &l.LoanTitle, &l.LoanCompany, &l.BankName, &l.BankLogo,
		&l.LoanDescription, &l.LoanQuote, &l.Link, &l.IsActive, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return l, err
}

// Create inserts a new loan and returns the created record.
func (r *PostgresRepository) Create(ctx context.Context, l *Loan) (*Loan, error) {
	created, err := scanLoan(r.db.QueryRow(ctx,
		`INSERT INTO loans (category_id, loan_title, loan_company, bank_name, bank_logo,
		                    loan_description, loan_quote, link, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+loanColumns,
		l.CategoryID, l.LoanTitle, l.LoanCompany, l.BankName, l.BankLogo,
		l.LoanDescription, l.LoanQuote, l.Link, l.IsActive,
	))
	if err != nil {
		return nil, fmt.Errorf("create loan: %w", err)
	}
	return created, nil
}

// Get fetches a loan by its UUID.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*Loan, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	l, err := scanLoan(r.db.QueryRow(ctx, `SELECT `+loanColumns+` FROM loans WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get loan: %w", err)
	}
	return l, nil
}

// List returns the loans matching f, newest first.
func (r *PostgresRepository) List(ctx context.Context, f Filter) ([]Loan, error) {
	var (
		where []string
		args  []interface{}
	)
	if f.CategoryID != "" {
		if _, err := uuid.Parse(f.CategoryID); err != nil {
			return nil, nil
		}
		args = append(args, f.CategoryID)
		where = append(where, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if f.IsActive != nil {
		args = append(args, *f.IsActive)
		where = append(where, fmt.Sprintf("is_active = $%d", len(args)))
	}

	query := `SELECT ` + loanColumns + ` FROM loans`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	defer rows.Close()

	var out []Loan
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan loan: %w", err)
		}
		out = append(out, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate loans: %w", err)
	}
	return out, nil
}

// Update applies patch and returns the updated record.
func (r *PostgresRepository) Update(ctx context.Context, id string, patch Patch) (*Loan, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	l, err := scanLoan(r.db.QueryRow(ctx,
		`UPDATE loans SET
		     category_id      = COALESCE($2::uuid, category_id),
		     loan_title       = COALESCE($3::text, loan_title),
		     loan_company     = COALESCE($4::text, loan_company),
		     bank_name        = COALESCE($5::text, bank_name),
		     bank_logo        = COALESCE($6::text, bank_logo),
		     loan_description = COALESCE($7::text, loan_description),
		     loan_quote       = COALESCE($8::text, loan_quote),
		     link             = COALESCE($9::text, link),
		     is_active        = COALESCE($10::boolean, is_active),
		     updated_at       = NOW()
		 WHERE id = $1
		 RETURNING `+loanColumns,
		id, patch.CategoryID, patch.LoanTitle, patch.LoanCompany, patch.BankName, patch.BankLogo,
		patch.LoanDescription, patch.LoanQuote, patch.Link, patch.IsActive,
	))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update loan: %w", err)
	}
	return l, nil
}

// Delete removes the loan.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM loans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByCategory counts the loans referencing categoryID.
func (r *PostgresRepository) CountByCategory(ctx context.Context, categoryID string, activeOnly bool) (int, error) {
	if _, err := uuid.Parse(categoryID); err != nil {
		return 0, nil
	}

	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM loans WHERE category_id = $1 AND (is_active OR NOT $2)`,
		categoryID, activeOnly,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count loans by category: %w", err)
	}
	return n, nil
}
