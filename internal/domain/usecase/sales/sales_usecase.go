package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/kondo-pos/pos-backend/internal/domain/entity"
	errs "github.com/kondo-pos/pos-backend/internal/domain/error"
	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
	"github.com/kondo-pos/pos-backend/internal/domain/port/persistence"
)

// Top products ranking limits
const (
	DefaultTopProductsLimit = 10
	MaxTopProductsLimit     = 100
)

// SalesUseCase computes read-side aggregates over committed transactions
type SalesUseCase struct {
	salesRepo    persistence.SalesRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewSalesUseCase creates a new SalesUseCase
func NewSalesUseCase(
	salesRepo persistence.SalesRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *SalesUseCase {
	return &SalesUseCase{
		salesRepo:    salesRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// SalesStatistics returns count, total, truncated average and item count.
// Both window bounds are inclusive.
func (u *SalesUseCase) SalesStatistics(ctx context.Context, filter entity.SalesFilter) (entity.SalesStatistics, error) {
	if err := validateWindow(filter); err != nil {
		return entity.SalesStatistics{}, err
	}

	summary, err := u.salesRepo.Summarize(ctx, filter)
	if err != nil {
		u.logger.Error("Failed to summarize sales", map[string]any{
			"storeCode": filter.StoreCode,
			"error":     err.Error(),
		})
		return entity.SalesStatistics{}, err
	}

	return entity.NewSalesStatistics(summary), nil
}

// TopProducts ranks products by how many line items sold them
func (u *SalesUseCase) TopProducts(ctx context.Context, limit int, filter entity.SalesFilter) ([]entity.ProductSales, error) {
	if limit < 1 || limit > MaxTopProductsLimit {
		return nil, errs.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxTopProductsLimit))
	}
	if err := validateWindow(filter); err != nil {
		return nil, err
	}

	ranking, err := u.salesRepo.TopProducts(ctx, limit, filter)
	if err != nil {
		u.logger.Error("Failed to rank products", map[string]any{
			"limit": limit,
			"error": err.Error(),
		})
		return nil, err
	}
	if ranking == nil {
		ranking = []entity.ProductSales{}
	}
	return ranking, nil
}

// HourlySales buckets one calendar day of transactions by hour. Day boundaries and
// hours follow the time provider's location. Hours without sales are left out.
func (u *SalesUseCase) HourlySales(ctx context.Context, day *time.Time) ([]entity.HourlySales, error) {
	ref := u.timeProvider.Now()
	if day != nil {
		ref = *day
	}
	from := u.timeProvider.StartOfDay(ref)
	to := from.AddDate(0, 0, 1)

	ticks, err := u.salesRepo.TransactionsBetween(ctx, from, to)
	if err != nil {
		u.logger.Error("Failed to load transactions for hourly sales", map[string]any{
			"from":  from,
			"to":    to,
			"error": err.Error(),
		})
		return nil, err
	}

	return entity.BucketByHour(ticks, u.timeProvider.Location()), nil
}

func validateWindow(filter entity.SalesFilter) error {
	if filter.Start != nil && filter.End != nil && filter.Start.After(*filter.End) {
		return errs.NewValidationError("start_date", "must not be after end_date")
	}
	return nil
}
