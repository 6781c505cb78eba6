package persistence

import (
	"context"

	"github.com/kondo-pos/pos-backend/internal/domain/entity"
)

// ProductRepository defines the catalog operations on product data
type ProductRepository interface {
	// GetByID retrieves a product by its system-assigned identifier
	//
	// Possible errors:
	// - ErrProductNotFound: If no product has the given ID
	// - ErrStorageFailure: If the store could not complete the query
	GetByID(ctx context.Context, id uint64) (*entity.Product, error)

	// GetByCode retrieves a product by exact code match
	//
	// Possible errors:
	// - ErrProductNotFound: If no product has the given code
	// - ErrStorageFailure: If the store could not complete the query
	GetByCode(ctx context.Context, code string) (*entity.Product, error)

	// Exists checks whether a product with the given ID is in the catalog
	// Used by the transaction writer before each line item insert
	//
	// Possible errors:
	// - ErrStorageFailure: If the store could not complete the query
	Exists(ctx context.Context, id uint64) (bool, error)

	// List returns a page of products ordered by ID
	//
	// Possible errors:
	// - ErrStorageFailure: If the store could not complete the query
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	// Create inserts a new product and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateCode: If the code is already registered
	// - ErrStorageFailure: If the store could not complete the insert
	Create(ctx context.Context, product *entity.Product) error

	// Update persists name and price of an existing product
	//
	// Possible errors:
	// - ErrProductNotFound: If the product doesn't exist
	// - ErrStorageFailure: If the store could not complete the update
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product. Historical line items are not touched.
	//
	// Possible errors:
	// - ErrProductNotFound: If the product doesn't exist
	// - ErrStorageFailure: If the store could not complete the delete
	Delete(ctx context.Context, id uint64) error
}
