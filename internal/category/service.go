package category

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/loanboard/cms/internal/apperror"
	"github.com/loanboard/cms/internal/validation"
)

// Client-facing messages.
const (
	MsgNotFound  = "Category not found"
	MsgDuplicate = "Category with this name already exists"
	MsgCreated   = "Category created successfully"
	MsgUpdated   = "Category updated successfully"
	MsgDeleted   = "Category deleted successfully"
)

// CreateRequest is the body of POST /admin/categories.
type CreateRequest struct {
	Name        string `json:"name" validate:"required" example:"Home loans"`
	Description string `json:"description,omitempty" example:"Mortgages and refinancing"`
	IsActive    *bool  `json:"isActive,omitempty" example:"true"`
}

// Normalize trims every string field.
func (req *CreateRequest) Normalize() {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
}

// UpdateRequest is the body of PUT /admin/categories/{id}. Absent fields are left untouched.
type UpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitnil,min=1" example:"Home loans"`
	Description *string `json:"description,omitempty" example:"Mortgages and refinancing"`
	IsActive    *bool   `json:"isActive,omitempty" example:"false"`
}

// Normalize trims every string field.
func (req *UpdateRequest) Normalize() {
	req.Name = trimPtr(req.Name)
	req.Description = trimPtr(req.Description)
}

// Service contains business logic for categories.
type Service struct {
	repo  Repository
	loans LoanCounter
}

// NewService creates a new category Service.
func NewService(repo Repository, loans LoanCounter) *Service {
	return &Service{repo: repo, loans: loans}
}

// Create adds a category after checking the name is free.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Category, error) {
	req.Normalize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if err := s.ensureNameFree(ctx, req.Name, ""); err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	c, err := s.repo.Create(ctx, &Category{Name: req.Name, Description: req.Description, IsActive: active})
	if err != nil {
		return nil, s.translate(err, "create category")
	}
	return c, nil
}

// Get returns a category regardless of its active flag.
func (s *Service) Get(ctx context.Context, id string) (*Category, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, s.translate(err, "get category")
	}
	return c, nil
}

// Summaries returns the embedded views of the given categories keyed by id.
func (s *Service) Summaries(ctx context.Context, ids []string) (map[string]Summary, error) {
	cats, err := s.repo.GetMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}

	out := make(map[string]Summary, len(cats))
	for i := range cats {
		out[cats[i].ID] = cats[i].Summary()
	}
	return out, nil
}

// List returns all categories, newest first.
func (s *Service) List(ctx context.Context) ([]Category, error) {
	cats, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if cats == nil {
		cats = []Category{}
	}
	sort.SliceStable(cats, func(i, j int) bool { return cats[i].CreatedAt.After(cats[j].CreatedAt) })
	return cats, nil
}

// Update applies the supplied fields, re-checking the name against other categories.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Category, error) {
	req.Normalize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := s.ensureNameFree(ctx, *req.Name, id); err != nil {
			return nil, err
		}
	}

	c, err := s.repo.Update(ctx, id, Patch{Name: req.Name, Description: req.Description, IsActive: req.IsActive})
	if err != nil {
		return nil, s.translate(err, "update category")
	}
	return c, nil
}

// Delete removes a category that no loan references.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	// Not atomic with the delete below: a loan created in between keeps a dangling
	// reference, which loan reads render as a null category.
	n, err := s.loans.CountByCategory(ctx, id, false)
	if err != nil {
		return fmt.Errorf("count category loans: %w", err)
	}
	if n > 0 {
		return apperror.Conflict(fmt.Sprintf("Category has %d loan(s) assigned; reassign or delete them first", n))
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.translate(err, "delete category")
	}
	return nil
}

// PublicList returns active categories sorted by name, each with its active loan count.
func (s *Service) PublicList(ctx context.Context) ([]PublicCategory, error) {
	cats, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	sort.SliceStable(cats, func(i, j int) bool {
		fi, fj := foldName(cats[i].Name), foldName(cats[j].Name)
		if fi != fj {
			return fi < fj
		}
		return cats[i].Name < cats[j].Name
	})

	out := make([]PublicCategory, 0, len(cats))
	for _, c := range cats {
		pc, err := s.withLoanCount(ctx, c)
		if err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	return out, nil
}

// PublicGet returns an active category with its active loan count.
func (s *Service) PublicGet(ctx context.Context, id string) (*PublicCategory, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.IsActive {
		return nil, apperror.NotFound(MsgNotFound)
	}

	pc, err := s.withLoanCount(ctx, *c)
	if err != nil {
		return nil, err
	}
	return &pc, nil
}

func (s *Service) withLoanCount(ctx context.Context, c Category) (PublicCategory, error) {
	n, err := s.loans.CountByCategory(ctx, c.ID, true)
	if err != nil {
		return PublicCategory{}, fmt.Errorf("count loans of category %s: %w", c.ID, err)
	}
	return PublicCategory{Category: c, LoanCount: n}, nil
}

func (s *Service) ensureNameFree(ctx context.Context, name, excludeID string) error {
	_, err := s.repo.FindByName(ctx, name, excludeID)
	switch {
	case err == nil:
		return apperror.Conflict(MsgDuplicate)
	case errors.Is(err, ErrNotFound):
		return nil
	default:
		return fmt.Errorf("check category name: %w", err)
	}
}

// translate maps repository sentinels onto the error taxonomy.
func (s *Service) translate(err error, op string) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return apperror.NotFound(MsgNotFound)
	case errors.Is(err, ErrDuplicate):
		return apperror.Conflict(MsgDuplicate)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
