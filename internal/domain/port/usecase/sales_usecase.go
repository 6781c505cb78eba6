package usecase

import (
	"context"
	"time"

	"github.com/kondo-pos/pos-backend/internal/domain/entity"
)

// SalesUseCase defines the sales aggregator
type SalesUseCase interface {
	// SalesStatistics returns count, sum, truncated average and item count for the filter
	SalesStatistics(ctx context.Context, filter entity.SalesFilter) (entity.SalesStatistics, error)

	// TopProducts returns at most limit products ranked by number of line items
	TopProducts(ctx context.Context, limit int, filter entity.SalesFilter) ([]entity.ProductSales, error)

	// HourlySales buckets the transactions of one calendar day by hour.
	// A nil day means today. Hours without sales are omitted.
	HourlySales(ctx context.Context, day *time.Time) ([]entity.HourlySales, error)
}
