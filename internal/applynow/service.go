package applynow

import (
	"context"
	"fmt"
	"strings"

	"github.com/loanboard/cms/internal/validation"
)

// SetRequest is the body of POST /admin/apply-now[/usa|/india].
type SetRequest struct {
	IsActive    *bool   `json:"isActive" validate:"required" example:"true"`
	Description *string `json:"description,omitempty" example:"Apply in minutes"`
}

// UpdateRequest is the body of PUT /admin/apply-now[/usa|/india]. Both fields are optional.
type UpdateRequest struct {
	IsActive    *bool   `json:"isActive,omitempty" example:"false"`
	Description *string `json:"description,omitempty" example:"Temporarily closed"`
}

// Service contains the apply-now settings logic.
type Service struct {
	repo Repository
}

// NewService creates a new apply-now Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the scope's settings, creating the default document on first access.
func (s *Service) Get(ctx context.Context, scope Scope) (*Settings, error) {
	if !scope.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScope, scope)
	}
	settings, err := s.repo.GetOrCreate(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("get apply now settings: %w", err)
	}
	return settings, nil
}

// Public returns the public view of the scope's settings.
func (s *Service) Public(ctx context.Context, scope Scope) (PublicSettings, error) {
	settings, err := s.Get(ctx, scope)
	if err != nil {
		return PublicSettings{}, err
	}
	return settings.Public(), nil
}

// Set writes isActive (required) and optionally the description.
func (s *Service) Set(ctx context.Context, scope Scope, req SetRequest) (*Settings, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	return s.upsert(ctx, scope, Patch{IsActive: req.IsActive, Description: trim(req.Description)})
}

// Update writes whichever fields are present.
func (s *Service) Update(ctx context.Context, scope Scope, req UpdateRequest) (*Settings, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	return s.upsert(ctx, scope, Patch{IsActive: req.IsActive, Description: trim(req.Description)})
}

func (s *Service) upsert(ctx context.Context, scope Scope, patch Patch) (*Settings, error) {
	if !scope.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScope, scope)
	}
	settings, err := s.repo.Upsert(ctx, scope, patch)
	if err != nil {
		return nil, fmt.Errorf("save apply now settings: %w", err)
	}
	return settings, nil
}

func trim(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
