package entity

import (
	"sort"
	"time"
)

// SalesFilter narrows aggregates by an inclusive time window and a store.
// Zero values mean no restriction.
type SalesFilter struct {
	Start     *time.Time
	End       *time.Time
	StoreCode string
}

// SalesSummary holds the raw sums read from the store
type SalesSummary struct {
	TransactionCount int64
	TotalSales       int64
	ItemCount        int64
}

// SalesStatistics is the aggregate returned to callers
type SalesStatistics struct {
	TransactionCount int64
	TotalSales       int64
	AverageSale      int64
	ItemCount        int64
}

// NewSalesStatistics derives the truncated average; an empty set yields all zeros
func NewSalesStatistics(summary SalesSummary) SalesStatistics {
	stats := SalesStatistics{
		TransactionCount: summary.TransactionCount,
		TotalSales:       summary.TotalSales,
		ItemCount:        summary.ItemCount,
	}
	if summary.TransactionCount > 0 {
		stats.AverageSale = summary.TotalSales / summary.TransactionCount
	}
	return stats
}

// ProductSales is one row of the top products ranking
type ProductSales struct {
	ProductID   uint64
	ProductName string
	SalesCount  int64
	TotalSales  int64
}

// SaleTick is a transaction reduced to its timestamp and total
type SaleTick struct {
	At     time.Time
	Amount int64
}

// HourlySales is a single hour-of-day bucket
type HourlySales struct {
	Hour  int
	Count int64
	Total int64
}

// BucketByHour groups ticks by hour of day in loc. Only hours with at least one
// tick are returned, in ascending order.
func BucketByHour(ticks []SaleTick, loc *time.Location) []HourlySales {
	buckets := make(map[int]*HourlySales)
	for _, tick := range ticks {
		hour := tick.At.In(loc).Hour()
		b, ok := buckets[hour]
		if !ok {
			b = &HourlySales{Hour: hour}
			buckets[hour] = b
		}
		b.Count++
		b.Total += tick.Amount
	}

	result := make([]HourlySales, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Hour < result[j].Hour })
	return result
}
