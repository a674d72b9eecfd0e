package commodity

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/loanboard/cms/internal/apperror"
	"github.com/loanboard/cms/internal/validation"
)

// Client-facing messages.
const (
	MsgNotFound    = "Commodity price not found"
	MsgDuplicate   = "Commodity price for this type, state, and city combination already exists"
	MsgCreated     = "Commodity price created successfully"
	MsgUpdated     = "Commodity price updated successfully"
	MsgDeleted     = "Commodity price deleted successfully"
	MsgInvalidType = "Invalid commodity type. Must be one of: Silver, INR, Petrol, Diesel, LP Gas"
)

// CreateRequest is the body of POST /admin/commodity-prices.
type CreateRequest struct {
	CommodityType string   `json:"commodityType" validate:"required,oneof='Silver' 'INR' 'Petrol' 'Diesel' 'LP Gas'" example:"Petrol"`
	State         string   `json:"state" validate:"required" example:"Delhi"`
	City          string   `json:"city" validate:"required" example:"New Delhi"`
	Price         *float64 `json:"price" validate:"required,gte=0" example:"96.72"`
	Unit          string   `json:"unit,omitempty" example:"per litre"`
	IsActive      *bool    `json:"isActive,omitempty" example:"true"`
}

// Normalize trims every string field.
func (req *CreateRequest) Normalize() {
	req.CommodityType = strings.TrimSpace(req.CommodityType)
	req.State = strings.TrimSpace(req.State)
	req.City = strings.TrimSpace(req.City)
	req.Unit = strings.TrimSpace(req.Unit)
}

// UpdateRequest is the body of PUT /admin/commodity-prices/{id}. Absent fields are left untouched.
type UpdateRequest struct {
	CommodityType *string  `json:"commodityType,omitempty" validate:"omitnil,oneof='Silver' 'INR' 'Petrol' 'Diesel' 'LP Gas'" example:"Diesel"`
	State         *string  `json:"state,omitempty" validate:"omitnil,min=1" example:"Delhi"`
	City          *string  `json:"city,omitempty" validate:"omitnil,min=1" example:"New Delhi"`
	Price         *float64 `json:"price,omitempty" validate:"omitnil,gte=0" example:"89.62"`
	Unit          *string  `json:"unit,omitempty" example:"per litre"`
	IsActive      *bool    `json:"isActive,omitempty" example:"false"`
}

// Normalize trims every string field.
func (req *UpdateRequest) Normalize() {
	req.CommodityType = trimPtr(req.CommodityType)
	req.State = trimPtr(req.State)
	req.City = trimPtr(req.City)
	req.Unit = trimPtr(req.Unit)
}

// hasKeyChange reports whether any natural-key field is supplied.
func (req *UpdateRequest) hasKeyChange() bool {
	return req.CommodityType != nil || req.State != nil || req.City != nil
}

// ListQuery holds the query parameters of the listing endpoints.
type ListQuery struct {
	CommodityType string `json:"commodityType" validate:"omitempty,oneof='Silver' 'INR' 'Petrol' 'Diesel' 'LP Gas'"`
	State         string `json:"state"`
	City          string `json:"city"`
	IsActive      string `json:"isActive" validate:"omitempty,boolean"`
}

// Filter validates q and converts it into a repository filter.
func (q ListQuery) Filter() (Filter, error) {
	q.CommodityType = strings.TrimSpace(q.CommodityType)
	q.IsActive = strings.TrimSpace(q.IsActive)
	if err := validation.Struct(q); err != nil {
		return Filter{}, err
	}

	f := Filter{
		CommodityType: Type(q.CommodityType),
		State:         strings.TrimSpace(q.State),
		City:          strings.TrimSpace(q.City),
	}
	if q.IsActive != "" {
		active, err := strconv.ParseBool(q.IsActive)
		if err != nil {
			return Filter{}, validation.Field("isActive", "boolean", "Is active must be true or false")
		}
		f.IsActive = &active
	}
	return f, nil
}

// Service contains business logic for commodity prices.
type Service struct {
	repo Repository
}

// NewService creates a new commodity Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create adds a price after checking its (type, state, city) is free.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Price, error) {
	req.Normalize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	p := &Price{
		CommodityType: Type(req.CommodityType),
		State:         req.State,
		City:          req.City,
		Price:         *req.Price,
		Unit:          req.Unit,
		IsActive:      true,
	}
	if p.Unit == "" {
		p.Unit = DefaultUnit
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.ensureKeyFree(ctx, p.Key(), ""); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, translate(err, "create commodity price")
	}
	return created, nil
}

// Get returns a price regardless of its active flag.
func (s *Service) Get(ctx context.Context, id string) (*Price, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, translate(err, "get commodity price")
	}
	return p, nil
}

// List returns the prices matching f ordered by type, state, city, newest first within a key.
func (s *Service) List(ctx context.Context, f Filter) ([]Price, error) {
	prices, err := s.list(ctx, f)
	if err != nil {
		return nil, err
	}
	sortByTypeStateCity(prices)
	return prices, nil
}

// Update applies the supplied fields. When a key field changes, the effective key
// (supplied values over current ones) must not belong to another price.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Price, error) {
	req.Normalize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := Patch{State: req.State, City: req.City, Price: req.Price, Unit: req.Unit, IsActive: req.IsActive}
	if req.CommodityType != nil {
		t := Type(*req.CommodityType)
		patch.CommodityType = &t
	}
	if patch.Unit != nil && *patch.Unit == "" {
		u := DefaultUnit
		patch.Unit = &u
	}

	if req.hasKeyChange() {
		key := current.Key()
		if patch.CommodityType != nil {
			key.CommodityType = *patch.CommodityType
		}
		if patch.State != nil {
			key.State = *patch.State
		}
		if patch.City != nil {
			key.City = *patch.City
		}
		if err := s.ensureKeyFree(ctx, key, id); err != nil {
			return nil, err
		}
	}

	p, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, translate(err, "update commodity price")
	}
	return p, nil
}

// Delete removes a price.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err, "delete commodity price")
	}
	return nil
}

// PublicList returns active prices matching f ordered by type, state, city.
func (s *Service) PublicList(ctx context.Context, f Filter) ([]Price, error) {
	active := true
	f.IsActive = &active
	return s.List(ctx, f)
}

// PublicGet returns an active price.
func (s *Service) PublicGet(ctx context.Context, id string) (*Price, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, apperror.NotFound(MsgNotFound)
	}
	return p, nil
}

// ByType returns active prices of one commodity type ordered by state and city.
func (s *Service) ByType(ctx context.Context, t Type, state, city string) ([]Price, error) {
	if !t.Valid() {
		return nil, apperror.Validation(MsgInvalidType)
	}

	active := true
	prices, err := s.list(ctx, Filter{
		CommodityType: t,
		State:         strings.TrimSpace(state),
		City:          strings.TrimSpace(city),
		IsActive:      &active,
	})
	if err != nil {
		return nil, err
	}
	sortByStateCity(prices)
	return prices, nil
}

// Grouped returns the active prices nested by state and city, plus the number of prices.
func (s *Service) Grouped(ctx context.Context) ([]StateGroup, int, error) {
	active := true
	prices, err := s.list(ctx, Filter{IsActive: &active})
	if err != nil {
		return nil, 0, err
	}
	return Group(prices), len(prices), nil
}

func (s *Service) list(ctx context.Context, f Filter) ([]Price, error) {
	prices, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list commodity prices: %w", err)
	}
	if prices == nil {
		prices = []Price{}
	}
	return prices, nil
}

func (s *Service) ensureKeyFree(ctx context.Context, key Key, excludeID string) error {
	_, err := s.repo.FindByKey(ctx, key, excludeID)
	switch {
	case err == nil:
		return apperror.Conflict(MsgDuplicate)
	case errors.Is(err, ErrNotFound):
		return nil
	default:
		return fmt.Errorf("check commodity price key: %w", err)
	}
}

// translate maps repository sentinels onto the error taxonomy.
func translate(err error, op string) error {
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
