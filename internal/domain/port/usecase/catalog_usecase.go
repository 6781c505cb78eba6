package usecase

import (
	"context"

	"github.com/kondo-pos/pos-backend/internal/domain/entity"
)

// CatalogUseCase defines product catalog operations
type CatalogUseCase interface {
	// FindByCode returns the product with the given code.
	// A miss is reported as (nil, false, nil), never as an error.
	FindByCode(ctx context.Context, code string) (*entity.Product, bool, error)

	// FindByID returns the product with the given ID, same miss convention as FindByCode
	FindByID(ctx context.Context, id uint64) (*entity.Product, bool, error)

	// Create registers a new product
	// Fails with ErrDuplicateCode or a ValidationError
	Create(ctx context.Context, code, name string, price int64) (*entity.Product, error)

	// Update changes name and/or price
	// Fails with ErrProductNotFound or a ValidationError
	Update(ctx context.Context, id uint64, update entity.ProductUpdate) (*entity.Product, error)

	// Delete removes a product regardless of historical line items
	Delete(ctx context.Context, id uint64) error

	// List returns a page of products ordered by ID
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
}
