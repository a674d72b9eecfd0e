// Package applynow stores the "apply now" toggles: one settings document per scope.
package applynow

import (
	"context"
	"errors"
	"time"
)

// Scope selects one of the independent settings documents.
type Scope string

const (
	ScopeGlobal Scope = "global"
	ScopeUSA    Scope = "usa"
	ScopeIndia  Scope = "india"
)

// Scopes lists every scope in routing order.
var Scopes = []Scope{ScopeGlobal, ScopeUSA, ScopeIndia}

// Valid reports whether s is a known scope.
func (s Scope) Valid() bool {
	switch s {
	case ScopeGlobal, ScopeUSA, ScopeIndia:
		return true
	}
	return false
}

// Settings is the stored settings document of a scope.
type Settings struct {
	ID          string    `json:"id"`
	Scope       Scope     `json:"scope"`
	IsActive    bool      `json:"isActive"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PublicSettings is the public view of a settings document.
type PublicSettings struct {
	IsActive    bool    `json:"isActive" example:"true"`
	Description *string `json:"description" example:"Apply in minutes"`
}

// Public returns the public view. An empty description is reported as null.
func (s *Settings) Public() PublicSettings {
	p := PublicSettings{IsActive: s.IsActive}
	if s.Description != "" {
		d := s.Description
		p.Description = &d
	}
	return p
}

// Patch lists the fields to change. Nil fields are left untouched.
type Patch struct {
	IsActive    *bool
	Description *string
}

// Defaults of a freshly created settings document.
const (
	DefaultIsActive    = true
	DefaultDescription = ""
)

// ErrUnknownScope is returned for a scope outside Scopes.
var ErrUnknownScope = errors.New("unknown apply now scope")

// Repository persists settings documents. Both methods are atomic per scope:
// concurrent first calls for a scope never create two documents.
type Repository interface {
	// GetOrCreate returns the scope's document, creating the default one if absent.
	GetOrCreate(ctx context.Context, scope Scope) (*Settings, error)
	// Upsert creates the document from patch and defaults if absent, otherwise applies patch.
	Upsert(ctx context.Context, scope Scope, patch Patch) (*Settings, error)
}
