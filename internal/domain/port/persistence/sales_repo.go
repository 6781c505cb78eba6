package persistence

import (
	"context"
	"time"

	"github.com/kondo-pos/pos-backend/internal/domain/entity"
)

// SalesRepository defines read-only aggregate queries over committed transactions
type SalesRepository interface {
	// Summarize returns transaction count, sum of totals and line item count for the filter
	//
	// Possible errors:
	// - ErrStorageFailure: If the store could not complete the query
	Summarize(ctx context.Context, filter entity.SalesFilter) (entity.SalesSummary, error)

	// TopProducts ranks products by line item count, ties broken by product ID
	//
	// Possible errors:
	// - ErrStorageFailure: If the store could not complete the query
	TopProducts(ctx context.Context, limit int, filter entity.SalesFilter) ([]entity.ProductSales, error)

	// TransactionsBetween returns timestamp and total of every transaction in [from, to)
	//
	// Possible errors:
	// - ErrStorageFailure: If the store could not complete the query
	TransactionsBetween(ctx context.Context, from, to time.Time) ([]entity.SaleTick, error)
}
