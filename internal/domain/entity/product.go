package entity

import (
	"fmt"
	"time"
	"unicode/utf8"

	errs "github.com/kondo-pos/pos-backend/internal/domain/error"
	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
)

// Catalog field constraints
const (
	ProductCodeLength    = 13
	ProductNameMaxLength = 50
)

// Product is a catalog entry. Code is immutable once assigned.
type Product struct {
	ID        uint64    // System-assigned identifier
	Code      string    // 13-character external code (JAN/EAN)
	Name      string    // Display name
	Price     int64     // Unit price, never negative
	CreatedAt time.Time // When the product was registered
	UpdatedAt time.Time // When name or price last changed
}

// ProductUpdate carries the mutable fields of a product; nil means unchanged.
type ProductUpdate struct {
	Name  *string
	Price *int64
}

// IsEmpty reports whether the update changes nothing
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Price == nil
}

// ProductFilter selects a page of products, optionally narrowed by a substring
// of the code or the name.
type ProductFilter struct {
	Offset int
	Limit  int
	Search string
}

// NewProduct creates a product after validating code, name and price
func NewProduct(code, name string, price int64, timeProvider coreport.TimeProvider) (*Product, error) {
	if err := ValidateProductCode(code); err != nil {
		return nil, err
	}
	if err := ValidateProductName(name); err != nil {
		return nil, err
	}
	if err := ValidatePrice("price", price); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Product{
		Code:      code,
		Name:      name,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Apply validates and applies a partial update
func (p *Product) Apply(update ProductUpdate, timeProvider coreport.TimeProvider) error {
	if update.Name != nil {
		if err := ValidateProductName(*update.Name); err != nil {
			return err
		}
	}
	if update.Price != nil {
		if err := ValidatePrice("price", *update.Price); err != nil {
			return err
		}
	}

	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Price != nil {
		p.Price = *update.Price
	}
	p.UpdatedAt = timeProvider.Now()
	return nil
}

// Snapshot captures the fields a line item records at sale time
func (p *Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{Code: p.Code, Name: p.Name, Price: p.Price}
}

// ValidateProductCode checks the fixed code length
func ValidateProductCode(code string) error {
	if utf8.RuneCountInString(code) != ProductCodeLength {
		return errs.NewValidationError("code", fmt.Sprintf("must be exactly %d characters", ProductCodeLength))
	}
	return nil
}

// ValidateProductName checks that the name is present and fits the column
func ValidateProductName(name string) error {
	n := utf8.RuneCountInString(name)
	if n == 0 {
		return errs.NewValidationError("name", "must not be empty")
	}
	if n > ProductNameMaxLength {
		return errs.NewValidationError("name", fmt.Sprintf("must be at most %d characters", ProductNameMaxLength))
	}
	return nil
}

// ValidatePrice rejects negative amounts
func ValidatePrice(field string, price int64) error {
	if price < 0 {
		return errs.NewValidationError(field, "must not be negative")
	}
	return nil
}
