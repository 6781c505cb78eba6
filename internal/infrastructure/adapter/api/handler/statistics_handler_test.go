package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/kondo-pos/pos-backend/internal/domain/entity"
	domainerr "github.com/kondo-pos/pos-backend/internal/domain/error"
	"github.com/kondo-pos/pos-backend/internal/domain/usecase/sales"
	coremocks "github.com/kondo-pos/pos-backend/mocks/port/core"
	usecasemocks "github.com/kondo-pos/pos-backend/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newStatisticsHandler(t *testing.T) (*StatisticsHandler, *usecasemocks.MockSalesUseCase) {
	salesUseCase := usecasemocks.NewMockSalesUseCase(t)
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Location().Return(jst).Maybe()
	return NewStatisticsHandler(salesUseCase, tp, quietLogger(t)), salesUseCase
}

func TestStatisticsHandler_Sales(t *testing.T) {
	t.Run("aggregates", func(t *testing.T) {
		h, uc := newStatisticsHandler(t)
		uc.EXPECT().SalesStatistics(mock.Anything, mock.MatchedBy(func(f entity.SalesFilter) bool {
			return f.StoreCode == "30" && f.Start == nil && f.End == nil
		})).Return(entity.SalesStatistics{TransactionCount: 3, TotalSales: 810, AverageSale: 270, ItemCount: 6}, nil).Once()

		rec := serve(http.MethodGet, "/api/statistics/sales", "/api/statistics/sales?store_cd=30", nil, h.Sales)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"total_transactions":3,"total_sales":810,"average_sale":270,"total_items":6}`, rec.Body.String())
	})

	t.Run("inverted window", func(t *testing.T) {
		h, uc := newStatisticsHandler(t)
		uc.EXPECT().SalesStatistics(mock.Anything, mock.Anything).
			Return(entity.SalesStatistics{}, domainerr.NewValidationError("end_date", "must not be before start_date")).Once()

		rec := serve(http.MethodGet, "/api/statistics/sales",
			"/api/statistics/sales?start_date=2024-04-02&end_date=2024-04-01", nil, h.Sales)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStatisticsHandler_TopProducts(t *testing.T) {
	ranking := []entity.ProductSales{
		{ProductID: 1, ProductName: "Cola 500ml", SalesCount: 3, TotalSales: 450},
	}

	t.Run("default limit", func(t *testing.T) {
		h, uc := newStatisticsHandler(t)
		uc.EXPECT().TopProducts(mock.Anything, sales.DefaultTopProductsLimit, mock.Anything).Return(ranking, nil).Once()

		rec := serve(http.MethodGet, "/api/statistics/top-products", "/api/statistics/top-products", nil, h.TopProducts)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"prd_id":1,"prd_name":"Cola 500ml","sales_count":3,"total_sales":450}]`, rec.Body.String())
	})

	t.Run("explicit zero is passed through", func(t *testing.T) {
		h, uc := newStatisticsHandler(t)
		uc.EXPECT().TopProducts(mock.Anything, 0, mock.Anything).
			Return(nil, domainerr.NewValidationError("limit", "must be between 1 and 100")).Once()

		rec := serve(http.MethodGet, "/api/statistics/top-products", "/api/statistics/top-products?limit=0", nil, h.TopProducts)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no sales", func(t *testing.T) {
		h, uc := newStatisticsHandler(t)
		uc.EXPECT().TopProducts(mock.Anything, 5, mock.Anything).Return(nil, nil).Once()

		rec := serve(http.MethodGet, "/api/statistics/top-products", "/api/statistics/top-products?limit=5", nil, h.TopProducts)

		assert.Equal(t, "[]", rec.Body.String())
	})
}

func TestStatisticsHandler_HourlySales(t *testing.T) {
	t.Run("given day", func(t *testing.T) {
		h, uc := newStatisticsHandler(t)
		day := time.Date(2024, 4, 1, 0, 0, 0, 0, jst)
		uc.EXPECT().HourlySales(mock.Anything, mock.MatchedBy(func(d *time.Time) bool {
			return d != nil && d.Equal(day)
		})).Return([]entity.HourlySales{{Hour: 9, Count: 2, Total: 540}}, nil).Once()

		rec := serve(http.MethodGet, "/api/statistics/hourly-sales", "/api/statistics/hourly-sales?date=2024-04-01", nil, h.HourlySales)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"hour":9,"count":2,"total":540}]`, rec.Body.String())
	})

	t.Run("today", func(t *testing.T) {
		h, uc := newStatisticsHandler(t)
		uc.EXPECT().HourlySales(mock.Anything, (*time.Time)(nil)).Return(nil, nil).Once()

		rec := serve(http.MethodGet, "/api/statistics/hourly-sales", "/api/statistics/hourly-sales", nil, h.HourlySales)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", rec.Body.String())
	})

	t.Run("storage failure", func(t *testing.T) {
		h, uc := newStatisticsHandler(t)
		uc.EXPECT().HourlySales(mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: timeout", domainerr.ErrStorageFailure)).Once()

		rec := serve(http.MethodGet, "/api/statistics/hourly-sales", "/api/statistics/hourly-sales?date=2024-04-01", nil, h.HourlySales)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
