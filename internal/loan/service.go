package loan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/loanboard/cms/internal/apperror"
	"github.com/loanboard/cms/internal/category"
	"github.com/loanboard/cms/internal/storage"
	"github.com/loanboard/cms/internal/validation"
)

// Client-facing messages.
const (
	MsgNotFound            = "Loan not found"
	MsgCreated             = "Loan created successfully"
	MsgUpdated             = "Loan updated successfully"
	MsgDeleted             = "Loan deleted successfully"
	MsgUploadFailed        = "Failed to upload bank logo"
	MsgCategoryUnavailable = "Category not found or inactive"
	MsgNotImage            = "Only image files are allowed (jpeg, jpg, png, gif, webp)"
	MsgTooLarge            = "File too large"
)

// CategoryFinder resolves the categories loans point at.
type CategoryFinder interface {
	Get(ctx context.Context, id string) (*category.Category, error)
	Summaries(ctx context.Context, ids []string) (map[string]category.Summary, error)
}

// Upload is a bank logo file as received from the client.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// Close releases the underlying file when it has one.
func (u *Upload) Close() error {
	if c, ok := u.Body.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// CreateRequest is the body of POST /admin/loans.
type CreateRequest struct {
	Category        string `json:"category" validate:"required" example:"5b0c6c1e-8f4a-4d55-9a1c-3f1f5c8f2a10"`
	LoanTitle       string `json:"loanTitle" validate:"required" example:"Home loan up to 90% LTV"`
	LoanCompany     string `json:"loanCompany" validate:"required" example:"Acme Finance"`
	BankName        string `json:"bankName" validate:"required" example:"Acme Bank"`
	LoanDescription string `json:"loanDescription" validate:"required" example:"Floating rate home loan"`
	LoanQuote       string `json:"loanQuote" validate:"required" example:"From 8.4% p.a."`
	Link            string `json:"link" validate:"required,url" example:"https://acme.example/home-loan"`
	IsActive        *bool  `json:"isActive,omitempty" example:"true"`
}

// Normalize trims every string field.
func (req *CreateRequest) Normalize() {
	for _, f := range []*string{&req.Category, &req.LoanTitle, &req.LoanCompany, &req.BankName,
		&req.LoanDescription, &req.LoanQuote, &req.Link} {
		*f = strings.TrimSpace(*f)
	}
}

// UpdateRequest is the body of PUT /admin/loans/{id}. Absent fields are left untouched.
type UpdateRequest struct {
	Category        *string `json:"category,omitempty" validate:"omitnil,min=1" example:"5b0c6c1e-8f4a-4d55-9a1c-3f1f5c8f2a10"`
	LoanTitle       *string `json:"loanTitle,omitempty" validate:"omitnil,min=1" example:"Home loan up to 90% LTV"`
	LoanCompany     *string `json:"loanCompany,omitempty" validate:"omitnil,min=1" example:"Acme Finance"`
	BankName        *string `json:"bankName,omitempty" validate:"omitnil,min=1" example:"Acme Bank"`
	LoanDescription *string `json:"loanDescription,omitempty" validate:"omitnil,min=1" example:"Floating rate home loan"`
	LoanQuote       *string `json:"loanQuote,omitempty" validate:"omitnil,min=1" example:"From 8.1% p.a."`
	Link            *string `json:"link,omitempty" validate:"omitnil,min=1,url" example:"https://acme.example/home-loan"`
	IsActive        *bool   `json:"isActive,omitempty" example:"false"`
}

// Normalize trims every string field.
func (req *UpdateRequest) Normalize() {
	for _, f := range []**string{&req.Category, &req.LoanTitle, &req.LoanCompany, &req.BankName,
		&req.LoanDescription, &req.LoanQuote, &req.Link} {
		if *f != nil {
			t := strings.TrimSpace(**f)
			*f = &t
		}
	}
}

// Service contains business logic for loans.
type Service struct {
	repo       Repository
	categories CategoryFinder
	blobs      storage.Storage
	maxUpload  int64
}

// NewService creates a new loan Service. Logos larger than maxUpload bytes are rejected.
func NewService(repo Repository, categories CategoryFinder, blobs storage.Storage, maxUpload int64) *Service {
	return &Service{repo: repo, categories: categories, blobs: blobs, maxUpload: maxUpload}
}

// Create stores a loan under an existing category, uploading the logo when one is given.
// Nothing is uploaded unless the request and the category check pass.
func (s *Service) Create(ctx context.Context, req CreateRequest, logo *Upload) (*Loan, error) {
	req.Normalize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	img, err := s.readLogo(logo)
	if err != nil {
		return nil, err
	}

	cat, err := s.categories.Get(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	l := &Loan{
		CategoryID:      cat.ID,
		LoanTitle:       req.LoanTitle,
		LoanCompany:     req.LoanCompany,
		BankName:        req.BankName,
		LoanDescription: req.LoanDescription,
		LoanQuote:       req.LoanQuote,
		Link:            req.Link,
		IsActive:        true,
	}
	if req.IsActive != nil {
		l.IsActive = *req.IsActive
	}

	if img != nil {
		if l.BankLogo, err = s.uploadLogo(ctx, img); err != nil {
			return nil, err
		}
	}

	created, err := s.repo.Create(ctx, l)
	if err != nil {
		s.removeLogo(ctx, l.BankLogo)
		return nil, fmt.Errorf("create loan: %w", err)
	}

	summary := cat.Summary()
	created.Category = &summary
	return created, nil
}

// Get returns a loan regardless of its active flag.
func (s *Service) Get(ctx context.Context, id string) (*Loan, error) {
	l, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, []*Loan{l}); err != nil {
		return nil, err
	}
	return l, nil
}

// List returns all loans newest first, optionally limited to one category.
func (s *Service) List(ctx context.Context, categoryID string) ([]Loan, error) {
	return s.list(ctx, Filter{CategoryID: strings.TrimSpace(categoryID)})
}

// Update applies the supplied fields. A new logo replaces the old one: the new blob is
// uploaded and saved before the old blob is removed.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest, logo *Upload) (*Loan, error) {
	req.Normalize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	img, err := s.readLogo(logo)
	if err != nil {
		return nil, err
	}

	current, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := Patch{
		LoanTitle:       req.LoanTitle,
		LoanCompany:     req.LoanCompany,
		BankName:        req.BankName,
		LoanDescription: req.LoanDescription,
		LoanQuote:       req.LoanQuote,
		Link:            req.Link,
		IsActive:        req.IsActive,
	}
	if req.Category != nil {
		cat, err := s.categories.Get(ctx, *req.Category)
		if err != nil {
			return nil, err
		}
		patch.CategoryID = &cat.ID
	}

	if img != nil {
		url, err := s.uploadLogo(ctx, img)
		if err != nil {
			return nil, err
		}
		patch.BankLogo = &url
	}

	l, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if patch.BankLogo != nil {
			s.removeLogo(ctx, *patch.BankLogo)
		}
		if errors.Is(err, ErrNotFound) {
			return nil, apperror.NotFound(MsgNotFound)
		}
		return nil, fmt.Errorf("update loan: %w", err)
	}

	if patch.BankLogo != nil && current.BankLogo != "" && current.BankLogo != *patch.BankLogo {
		s.removeLogo(ctx, current.BankLogo)
	}

	if err := s.populate(ctx, []*Loan{l}); err != nil {
		return nil, err
	}
	return l, nil
}

// Delete removes the logo, then the loan. A failed logo removal is logged and ignored.
func (s *Service) Delete(ctx context.Context, id string) error {
	l, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	s.removeLogo(ctx, l.BankLogo)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperror.NotFound(MsgNotFound)
		}
		return fmt.Errorf("delete loan: %w", err)
	}
	return nil
}

// CountByCategory counts the loans referencing a category.
func (s *Service) CountByCategory(ctx context.Context, categoryID string, activeOnly bool) (int, error) {
	return s.repo.CountByCategory(ctx, categoryID, activeOnly)
}

// PublicList returns active loans newest first. A category filter must name an active category.
func (s *Service) PublicList(ctx context.Context, categoryID string) ([]Loan, error) {
	categoryID = strings.TrimSpace(categoryID)
	if categoryID != "" {
		if _, err := s.activeCategory(ctx, categoryID); err != nil {
			return nil, err
		}
	}

	active := true
	return s.list(ctx, Filter{CategoryID: categoryID, IsActive: &active})
}

// ByCategory returns an active category and its active loans.
func (s *Service) ByCategory(ctx context.Context, categoryID string) (*category.Summary, []Loan, error) {
	cat, err := s.activeCategory(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}

	active := true
	loans, err := s.list(ctx, Filter{CategoryID: cat.ID, IsActive: &active})
	if err != nil {
		return nil, nil, err
	}

	summary := cat.Summary()
	return &summary, loans, nil
}

// PublicGet returns an active loan.
func (s *Service) PublicGet(ctx context.Context, id string) (*Loan, error) {
	l, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !l.IsActive {
		return nil, apperror.NotFound(MsgNotFound)
	}
	return l, nil
}

func (s *Service) get(ctx context.Context, id string) (*Loan, error) {
	l, err := s.repo.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperror.NotFound(MsgNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get loan: %w", err)
	}
	return l, nil
}

func (s *Service) list(ctx context.Context, f Filter) ([]Loan, error) {
	loans, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	if loans == nil {
		loans = []Loan{}
	}

	ptrs := make([]*Loan, len(loans))
	for i := range loans {
		ptrs[i] = &loans[i]
	}
	if err := s.populate(ctx, ptrs); err != nil {
		return nil, err
	}
	return loans, nil
}

// populate attaches the category summary to each loan. Loans whose category is gone keep a nil Category.
func (s *Service) populate(ctx context.Context, loans []*Loan) error {
	if len(loans) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(loans))
	ids := make([]string, 0, len(loans))
	for _, l := range loans {
		if !seen[l.CategoryID] {
			seen[l.CategoryID] = true
			ids = append(ids, l.CategoryID)
		}
	}

	summaries, err := s.categories.Summaries(ctx, ids)
	if err != nil {
		return fmt.Errorf("populate loan categories: %w", err)
	}
	for _, l := range loans {
		if sum, ok := summaries[l.CategoryID]; ok {
			l.Category = &sum
		}
	}
	return nil
}

func (s *Service) activeCategory(ctx context.Context, id string) (*category.Category, error) {
	cat, err := s.categories.Get(ctx, id)
	switch {
	case apperror.Is(err, apperror.KindNotFound):
		return nil, apperror.NotFound(MsgCategoryUnavailable)
	case err != nil:
		return nil, err
	case !cat.IsActive:
		return nil, apperror.NotFound(MsgCategoryUnavailable)
	}
	return cat, nil
}

// readLogo validates and buffers the upload. A nil upload yields a nil image.
func (s *Service) readLogo(logo *Upload) (*storage.Image, error) {
	if logo == nil {
		return nil, nil
	}

	img, err := storage.ReadImage(logo.Filename, logo.ContentType, logo.Body, s.maxUpload)
	switch {
	case errors.Is(err, storage.ErrNotImage):
		return nil, apperror.Validation(MsgNotImage, apperror.FieldError{Field: "bankLogo", Tag: "image", Message: MsgNotImage})
	case errors.Is(err, storage.ErrTooLarge):
		return nil, apperror.Validation(MsgTooLarge, apperror.FieldError{Field: "bankLogo", Tag: "max", Message: MsgTooLarge})
	case err != nil:
		return nil, fmt.Errorf("read bank logo: %w", err)
	}
	return img, nil
}

func (s *Service) uploadLogo(ctx context.Context, img *storage.Image) (string, error) {
	key := storage.NewObjectKey(storage.BankLogoFolder, img.Filename)
	if err := s.blobs.Upload(ctx, key, img.Reader(), img.Size(), img.ContentType); err != nil {
		return "", apperror.Upstream(MsgUploadFailed, err)
	}
	return s.blobs.PublicURL(key), nil
}

// removeLogo deletes the blob behind url. Failures are logged, never returned.
func (s *Service) removeLogo(ctx context.Context, url string) {
	key, ok := s.blobs.KeyFromURL(url)
	if !ok {
		return
	}
	if err := s.blobs.Delete(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("loan: failed to delete bank logo")
	}
}
