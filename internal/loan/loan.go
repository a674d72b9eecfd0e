// Package loan manages loan listings and their bank logos.
package loan

import (
	"context"
	"errors"
	"time"

	"github.com/loanboard/cms/internal/category"
)

// Loan is a loan offer shown under a category.
type Loan struct {
	ID              string            `json:"id"`
	CategoryID      string            `json:"-"`
	Category        *category.Summary `json:"category"`
	LoanTitle       string            `json:"loanTitle"`
	LoanCompany     string            `json:"loanCompany"`
	BankName        string            `json:"bankName"`
	BankLogo        string            `json:"bankLogo"`
	LoanDescription string            `json:"loanDescription"`
	LoanQuote       string            `json:"loanQuote"`
	Link            string            `json:"link"`
	IsActive        bool              `json:"isActive"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// Filter narrows a listing. Zero values match everything.
type Filter struct {
	CategoryID string
	IsActive   *bool
}

func (f Filter) matches(l *Loan) bool {
	if f.CategoryID != "" && l.CategoryID != f.CategoryID {
		return false
	}
	if f.IsActive != nil && l.IsActive != *f.IsActive {
		return false
	}
	return true
}

// Patch lists the fields to change. Nil fields are left untouched.
type Patch struct {
	CategoryID      *string
	LoanTitle       *string
	LoanCompany     *string
	BankName        *string
	BankLogo        *string
	LoanDescription *string
	LoanQuote       *string
	Link            *string
	IsActive        *bool
}

// ErrNotFound is returned when a loan does not exist.
var ErrNotFound = errors.New("loan not found")

// Repository persists loans.
type Repository interface {
	Create(ctx context.Context, l *Loan) (*Loan, error)
	Get(ctx context.Context, id string) (*Loan, error)
	List(ctx context.Context, f Filter) ([]Loan, error)
	Update(ctx context.Context, id string, patch Patch) (*Loan, error)
	Delete(ctx context.Context, id string) error
	CountByCategory(ctx context.Context, categoryID string, activeOnly bool) (int, error)
}
