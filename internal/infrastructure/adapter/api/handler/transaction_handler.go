package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kondo-pos/pos-backend/internal/domain/entity"
	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
	"github.com/kondo-pos/pos-backend/internal/domain/port/usecase"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/api/dto"
)

// TransactionHandler handles register HTTP requests
type TransactionHandler struct {
	register     usecase.RegisterUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	register usecase.RegisterUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		register:     register,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Purchase handles POST /api/purchase. The terminal protocol has no error body,
// so every outcome, even a malformed request, answers 200.
func (h *TransactionHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid purchase request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusOK, dto.PurchaseResponse{})
		return
	}

	result := h.register.Purchase(c.Request.Context(), req.ToRegisterRequest())
	c.JSON(http.StatusOK, dto.NewPurchaseResponse(result))
}

// Create handles POST /api/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid transaction request format", map[string]any{
			"error": err.Error(),
		})
		respondError(c, bindError(err))
		return
	}

	txn, err := h.register.CreateTransaction(c.Request.Context(), req.ToRegisterRequest())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewTransactionResponse(txn))
}

// Get handles GET /api/transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	txn, err := h.register.GetTransaction(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(txn))
}

// List handles GET /api/transactions
func (h *TransactionHandler) List(c *gin.Context) {
	var query dto.ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, bindError(err))
		return
	}

	loc := h.timeProvider.Location()
	start, err := parseDate("start_date", query.StartDate, loc)
	if err != nil {
		respondError(c, err)
		return
	}
	end, err := parseDate("end_date", query.EndDate, loc)
	if err != nil {
		respondError(c, err)
		return
	}

	txns, err := h.register.ListTransactions(c.Request.Context(), entity.TransactionFilter{
		Offset:    query.Skip,
		Limit:     query.Limit,
		Start:     start,
		End:       end,
		StoreCode: query.StoreCode,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionListResponse(txns))
}

// Delete handles DELETE /api/transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.register.DeleteTransaction(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Message: "Transaction deleted", TransactionID: id})
}
