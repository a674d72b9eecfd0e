// Package commodity manages commodity prices per (type, state, city).
package commodity

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Type is a commodity kind.
type Type string

const (
	TypeSilver Type = "Silver"
	TypeINR    Type = "INR"
	TypePetrol Type = "Petrol"
	TypeDiesel Type = "Diesel"
	TypeLPGas  Type = "LP Gas"
)

// Types lists every commodity type.
var Types = []Type{TypeSilver, TypeINR, TypePetrol, TypeDiesel, TypeLPGas}

// Valid reports whether t is a known commodity type.
func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// DefaultUnit is used when a price is saved without a unit.
const DefaultUnit = "per unit"

// Price is the price of one commodity in one city.
type Price struct {
	ID            string    `json:"id"`
	CommodityType Type      `json:"commodityType"`
	State         string    `json:"state"`
	City          string    `json:"city"`
	Price         float64   `json:"price"`
	Unit          string    `json:"unit"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Key is the natural key of a price. State and city compare case-insensitively.
type Key struct {
	CommodityType Type
	State         string
	City          string
}

// Key returns the natural key of p.
func (p *Price) Key() Key {
	return Key{CommodityType: p.CommodityType, State: p.State, City: p.City}
}

// Folded returns k with state and city in their stored comparison form.
func (k Key) Folded() Key {
	return Key{CommodityType: k.CommodityType, State: fold(k.State), City: fold(k.City)}
}

// Filter narrows a listing. State and City match as case-insensitive substrings.
type Filter struct {
	CommodityType Type
	State         string
	City          string
	IsActive      *bool
}

// Patch lists the fields to change. Nil fields are left untouched.
type Patch struct {
	CommodityType *Type
	State         *string
	City          *string
	Price         *float64
	Unit          *string
	IsActive      *bool
}

var (
	// ErrNotFound is returned when a price does not exist.
	ErrNotFound = errors.New("commodity price not found")

	// ErrDuplicate is returned when the store rejects a (type, state, city) already in use.
	ErrDuplicate = errors.New("commodity price key already exists")
)

// Repository persists commodity prices.
type Repository interface {
	Create(ctx context.Context, p *Price) (*Price, error)
	Get(ctx context.Context, id string) (*Price, error)
	// FindByKey matches the folded key, skipping excludeID when it is set.
	FindByKey(ctx context.Context, key Key, excludeID string) (*Price, error)
	List(ctx context.Context, f Filter) ([]Price, error)
	Update(ctx context.Context, id string, patch Patch) (*Price, error)
	Delete(ctx context.Context, id string) error
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// matches reports whether p passes f.
func (f Filter) matches(p *Price) bool {
	if f.CommodityType != "" && p.CommodityType != f.CommodityType {
		return false
	}
	if f.State != "" && !strings.Contains(fold(p.State), fold(f.State)) {
		return false
	}
	if f.City != "" && !strings.Contains(fold(p.City), fold(f.City)) {
		return false
	}
	if f.IsActive != nil && p.IsActive != *f.IsActive {
		return false
	}
	return true
}
