package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kondo-pos/pos-backend/internal/domain/entity"
	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
	"github.com/kondo-pos/pos-backend/internal/domain/port/usecase"
	"github.com/kondo-pos/pos-backend/internal/domain/usecase/sales"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/api/dto"
)

// StatisticsHandler handles sales aggregate HTTP requests
type StatisticsHandler struct {
	sales        usecase.SalesUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewStatisticsHandler creates a new statistics handler instance
func NewStatisticsHandler(
	salesUseCase usecase.SalesUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *StatisticsHandler {
	return &StatisticsHandler{
		sales:        salesUseCase,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Sales handles GET /api/statistics/sales
func (h *StatisticsHandler) Sales(c *gin.Context) {
	filter, _, ok := h.parseQuery(c)
	if !ok {
		return
	}

	stats, err := h.sales.SalesStatistics(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSalesStatisticsResponse(stats))
}

// TopProducts handles GET /api/statistics/top-products
func (h *StatisticsHandler) TopProducts(c *gin.Context) {
	filter, query, ok := h.parseQuery(c)
	if !ok {
		return
	}

	limit := sales.DefaultTopProductsLimit
	if query.Limit != nil {
		limit = *query.Limit
	}

	ranking, err := h.sales.TopProducts(c.Request.Context(), limit, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTopProductsResponse(ranking))
}

// HourlySales handles GET /api/statistics/hourly-sales
func (h *StatisticsHandler) HourlySales(c *gin.Context) {
	var query dto.StatisticsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, bindError(err))
		return
	}

	day, err := parseDate("date", query.Date, h.timeProvider.Location())
	if err != nil {
		respondError(c, err)
		return
	}

	buckets, err := h.sales.HourlySales(c.Request.Context(), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewHourlySalesResponse(buckets))
}

// parseQuery reads the shared window parameters, writing the error response itself on failure
func (h *StatisticsHandler) parseQuery(c *gin.Context) (entity.SalesFilter, dto.StatisticsQuery, bool) {
	var query dto.StatisticsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, bindError(err))
		return entity.SalesFilter{}, query, false
	}

	loc := h.timeProvider.Location()
	start, err := parseDate("start_date", query.StartDate, loc)
	if err != nil {
		respondError(c, err)
		return entity.SalesFilter{}, query, false
	}
	end, err := parseDate("end_date", query.EndDate, loc)
	if err != nil {
		respondError(c, err)
		return entity.SalesFilter{}, query, false
	}

	return entity.SalesFilter{Start: start, End: end, StoreCode: query.StoreCode}, query, true
}
