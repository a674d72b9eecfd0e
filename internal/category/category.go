// Package category manages loan categories. Names are unique ignoring case.
package category

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Category groups loans on the public site.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Summary is the part of a category embedded in loan responses.
type Summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Summary returns the embedded view of c.
func (c *Category) Summary() Summary {
	return Summary{ID: c.ID, Name: c.Name, Description: c.Description}
}

// PublicCategory is a category with the number of active loans assigned to it.
type PublicCategory struct {
	Category
	LoanCount int `json:"loanCount"`
}

// Patch lists the fields to change. Nil fields are left untouched.
type Patch struct {
	Name        *string
	Description *string
	IsActive    *bool
}

var (
	// ErrNotFound is returned when a category does not exist.
	ErrNotFound = errors.New("category not found")

	// ErrDuplicate is returned when the store rejects a name already in use.
	ErrDuplicate = errors.New("category name already exists")
)

// Repository persists categories.
type Repository interface {
	Create(ctx context.Context, c *Category) (*Category, error)
	Get(ctx context.Context, id string) (*Category, error)
	GetMany(ctx context.Context, ids []string) ([]Category, error)
	// FindByName matches name case-insensitively, skipping excludeID when it is set.
	FindByName(ctx context.Context, name, excludeID string) (*Category, error)
	List(ctx context.Context, activeOnly bool) ([]Category, error)
	Update(ctx context.Context, id string, patch Patch) (*Category, error)
	Delete(ctx context.Context, id string) error
}

// LoanCounter counts loans that reference a category.
type LoanCounter interface {
	CountByCategory(ctx context.Context, categoryID string, activeOnly bool) (int, error)
}

// foldName is the form names are compared in.
func foldName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
