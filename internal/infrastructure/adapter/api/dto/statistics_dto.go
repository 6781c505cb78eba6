package dto

import "github.com/kondo-pos/pos-backend/internal/domain/entity"

// SalesStatisticsResponse aggregates a window of transactions
type SalesStatisticsResponse struct {
	TotalTransactions int64 `json:"total_transactions"`
	TotalSales        int64 `json:"total_sales"`
	AverageSale       int64 `json:"average_sale"`
	TotalItems        int64 `json:"total_items"`
}

// TopProductResponse is one row of the best seller ranking
type TopProductResponse struct {
	ProductID   uint64 `json:"prd_id"`
	ProductName string `json:"prd_name"`
	SalesCount  int64  `json:"sales_count"`
	TotalSales  int64  `json:"total_sales"`
}

// HourlySalesResponse is one non-empty hour of a day
type HourlySalesResponse struct {
	Hour  int   `json:"hour"`
	Count int64 `json:"count"`
	Total int64 `json:"total"`
}

// StatisticsQuery narrows the aggregates; dates are parsed by the handler
type StatisticsQuery struct {
	Limit     *int   `form:"limit"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	StoreCode string `form:"store_cd"`
	Date      string `form:"date"`
}

// NewSalesStatisticsResponse converts the aggregate
func NewSalesStatisticsResponse(s entity.SalesStatistics) SalesStatisticsResponse {
	return SalesStatisticsResponse{
		TotalTransactions: s.TransactionCount,
		TotalSales:        s.TotalSales,
		AverageSale:       s.AverageSale,
		TotalItems:        s.ItemCount,
	}
}

// NewTopProductsResponse converts the ranking, never returning nil
func NewTopProductsResponse(rows []entity.ProductSales) []TopProductResponse {
	result := make([]TopProductResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, TopProductResponse{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			SalesCount:  r.SalesCount,
			TotalSales:  r.TotalSales,
		})
	}
	return result
}

// NewHourlySalesResponse converts the buckets, never returning nil
func NewHourlySalesResponse(buckets []entity.HourlySales) []HourlySalesResponse {
	result := make([]HourlySalesResponse, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, HourlySalesResponse{Hour: b.Hour, Count: b.Count, Total: b.Total})
	}
	return result
}
