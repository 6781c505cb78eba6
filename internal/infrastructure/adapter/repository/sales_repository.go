package repository

import (
	"context"
	"time"

	"github.com/kondo-pos/pos-backend/internal/domain/entity"
	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// SalesRepository implements SalesRepository interface using GORM aggregate queries
type SalesRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewSalesRepository creates a new SalesRepository instance
func NewSalesRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *SalesRepository {
	return &SalesRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

type summaryRow struct {
	TransactionCount int64
	TotalSales       int64
}

type productSalesRow struct {
	ProductID   uint64
	ProductName string
	SalesCount  int64
	TotalSales  int64
}

// salesWindow restricts a query joined on transactions aliased as t
func salesWindow(filter entity.SalesFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Start != nil {
			db = db.Where("t.created_at >= ?", filter.Start.UTC())
		}
		if filter.End != nil {
			db = db.Where("t.created_at <= ?", filter.End.UTC())
		}
		if filter.StoreCode != "" {
			db = db.Where("t.store_code = ?", filter.StoreCode)
		}
		return db
	}
}

// Summarize returns transaction count, sum of totals and line item count for the filter
func (r *SalesRepository) Summarize(ctx context.Context, filter entity.SalesFilter) (entity.SalesSummary, error) {
	db := r.db.WithContext(ctx)

	var row summaryRow
	err := db.Table(model.Transaction{}.TableName() + " AS t").
		Select("COUNT(*) AS transaction_count, COALESCE(SUM(t.total_amount), 0) AS total_sales").
		Scopes(salesWindow(filter)).
		Scan(&row).Error
	if err != nil {
		return entity.SalesSummary{}, r.handleQueryError("summarizing transactions", err)
	}

	var itemCount int64
	err = db.Table(model.TransactionLineItem{}.TableName() + " AS li").
		Joins("JOIN " + model.Transaction{}.TableName() + " AS t ON t.id = li.transaction_id").
		Scopes(salesWindow(filter)).
		Count(&itemCount).Error
	if err != nil {
		return entity.SalesSummary{}, r.handleQueryError("counting line items", err)
	}

	return entity.SalesSummary{
		TransactionCount: row.TransactionCount,
		TotalSales:       row.TotalSales,
		ItemCount:        itemCount,
	}, nil
}

// TopProducts ranks products by line item count, ties broken by product ID.
// The reported name is the greatest snapshot name seen for the product.
func (r *SalesRepository) TopProducts(ctx context.Context, limit int, filter entity.SalesFilter) ([]entity.ProductSales, error) {
	var rows []productSalesRow
	err := r.db.WithContext(ctx).
		Table(model.TransactionLineItem{}.TableName() + " AS li").
		Select("li.product_id AS product_id, MAX(li.product_name) AS product_name, " +
			"COUNT(*) AS sales_count, COALESCE(SUM(li.product_price), 0) AS total_sales").
		Joins("JOIN " + model.Transaction{}.TableName() + " AS t ON t.id = li.transaction_id").
		Scopes(salesWindow(filter)).
		Group("li.product_id").
		Order("sales_count DESC").
		Order("li.product_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleQueryError("ranking products", err)
	}

	result := make([]entity.ProductSales, 0, len(rows))
	for _, row := range rows {
		result = append(result, entity.ProductSales(row))
	}
	return result, nil
}

// TransactionsBetween returns timestamp and total of every transaction in [from, to)
func (r *SalesRepository) TransactionsBetween(ctx context.Context, from, to time.Time) ([]entity.SaleTick, error) {
	var headers []model.Transaction
	err := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Select("created_at", "total_amount").
		Where("created_at >= ? AND created_at < ?", from.UTC(), to.UTC()).
		Order("created_at ASC").
		Find(&headers).Error
	if err != nil {
		return nil, r.handleQueryError("reading transactions for hourly sales", err)
	}

	loc := r.timeProvider.Location()
	ticks := make([]entity.SaleTick, 0, len(headers))
	for _, h := range headers {
		ticks = append(ticks, entity.SaleTick{At: h.CreatedAt.In(loc), Amount: h.TotalAmount})
	}
	return ticks, nil
}

func (r *SalesRepository) handleQueryError(operation string, err error) error {
	r.logger.Error("Database error when "+operation, map[string]any{
		"error": err.Error(),
	})
	return storageError(err)
}
