package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/kondo-pos/pos-backend/internal/domain/entity"
	domainerr "github.com/kondo-pos/pos-backend/internal/domain/error"
	"github.com/kondo-pos/pos-backend/internal/domain/port/usecase"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/api/dto"
	coremocks "github.com/kondo-pos/pos-backend/mocks/port/core"
	usecasemocks "github.com/kondo-pos/pos-backend/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const purchaseBody = `{
	"emp_cd": "0000000001",
	"store_cd": "30",
	"pos_no": "90",
	"products": [
		{"prd_id": 1, "prd_code": "4901234567890", "prd_name": "Cola 500ml", "prd_price": 150},
		{"prd_id": 2, "prd_code": "4909876543210", "prd_name": "Green tea", "prd_price": 120}
	]
}`

func newTransactionHandler(t *testing.T) (*TransactionHandler, *usecasemocks.MockRegisterUseCase) {
	register := usecasemocks.NewMockRegisterUseCase(t)
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Location().Return(jst).Maybe()
	return NewTransactionHandler(register, tp, quietLogger(t)), register
}

func sampleTransaction() *entity.Transaction {
	return &entity.Transaction{
		ID:           42,
		CreatedAt:    time.Date(2024, 4, 1, 10, 15, 0, 0, jst),
		OperatorCode: "0000000001",
		StoreCode:    "30",
		TerminalCode: "90",
		TotalAmount:  270,
		LineItems: []entity.LineItem{
			{TransactionID: 42, LineNumber: 1, ProductID: 1, Snapshot: entity.ProductSnapshot{Code: "4901234567890", Name: "Cola 500ml", Price: 150}},
			{TransactionID: 42, LineNumber: 2, ProductID: 2, Snapshot: entity.ProductSnapshot{Code: "4909876543210", Name: "Green tea", Price: 120}},
		},
	}
}

func TestTransactionHandler_Purchase(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, register := newTransactionHandler(t)
		register.EXPECT().Purchase(mock.Anything, mock.MatchedBy(func(req usecase.RegisterRequest) bool {
			return req.StoreCode == "30" && len(req.Items) == 2 &&
				req.Items[0] == usecase.LineItemRequest{ProductID: 1, Code: "4901234567890", Name: "Cola 500ml", Price: 150}
		})).Return(usecase.PurchaseResult{Success: true, TotalAmount: 270}).Once()

		rec := serve(http.MethodPost, "/api/purchase", "/api/purchase", jsonBody(purchaseBody), h.Purchase)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"total_amount":270}`, rec.Body.String())
	})

	t.Run("failure is still 200", func(t *testing.T) {
		h, register := newTransactionHandler(t)
		register.EXPECT().Purchase(mock.Anything, mock.Anything).Return(usecase.PurchaseResult{}).Once()

		rec := serve(http.MethodPost, "/api/purchase", "/api/purchase", jsonBody(`{"products":[]}`), h.Purchase)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":false,"total_amount":0}`, rec.Body.String())
	})

	t.Run("malformed body never reaches the register", func(t *testing.T) {
		h, _ := newTransactionHandler(t)

		rec := serve(http.MethodPost, "/api/purchase", "/api/purchase", jsonBody(`{"products": "nope"`), h.Purchase)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":false,"total_amount":0}`, rec.Body.String())
	})
}

func TestTransactionHandler_Create(t *testing.T) {
	body := `{"store_cd":"30","details":[{"prd_id":1,"prd_code":"4901234567890","prd_name":"Cola 500ml","prd_price":150}]}`

	t.Run("created", func(t *testing.T) {
		h, register := newTransactionHandler(t)
		register.EXPECT().CreateTransaction(mock.Anything, mock.MatchedBy(func(req usecase.RegisterRequest) bool {
			return req.OperatorCode == "" && len(req.Items) == 1
		})).Return(sampleTransaction(), nil).Once()

		rec := serve(http.MethodPost, "/api/transactions", "/api/transactions", jsonBody(body), h.Create)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp dto.TransactionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, uint64(42), resp.TransactionID)
		assert.Equal(t, int64(270), resp.TotalAmount)
		require.Len(t, resp.Details, 2)
		assert.Equal(t, 2, resp.Details[1].LineNumber)
		assert.Equal(t, "Green tea", resp.Details[1].ProductName)
	})

	tests := []struct {
		name   string
		err    error
		status int
		code   int
	}{
		{"empty line items", domainerr.ErrEmptyLineItems, http.StatusBadRequest, domainerr.CodeEmptyLineItems},
		{"missing product", domainerr.NewMissingProductError(99, 1), http.StatusNotFound, domainerr.CodeMissingProduct},
		{"validation", domainerr.NewValidationError("store_cd", "must be at most 5 characters"), http.StatusBadRequest, domainerr.CodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, register := newTransactionHandler(t)
			register.EXPECT().CreateTransaction(mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			rec := serve(http.MethodPost, "/api/transactions", "/api/transactions", jsonBody(body), h.Create)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestTransactionHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, register := newTransactionHandler(t)
		register.EXPECT().GetTransaction(mock.Anything, uint64(42)).Return(sampleTransaction(), nil).Once()

		rec := serve(http.MethodGet, "/api/transactions/:id", "/api/transactions/42", nil, h.Get)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"datetime":"2024-04-01T10:15:00+09:00"`)
	})

	t.Run("not found", func(t *testing.T) {
		h, register := newTransactionHandler(t)
		register.EXPECT().GetTransaction(mock.Anything, uint64(7)).Return(nil, domainerr.ErrTransactionNotFound).Once()

		rec := serve(http.MethodGet, "/api/transactions/:id", "/api/transactions/7", nil, h.Get)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, domainerr.CodeTxnNotFound, decodeError(t, rec).Code)
	})
}

func TestTransactionHandler_List(t *testing.T) {
	t.Run("window and store", func(t *testing.T) {
		h, register := newTransactionHandler(t)
		start := time.Date(2024, 4, 1, 0, 0, 0, 0, jst)
		end := time.Date(2024, 4, 2, 0, 0, 0, 0, jst)
		register.EXPECT().ListTransactions(mock.Anything, mock.MatchedBy(func(f entity.TransactionFilter) bool {
			return f.Offset == 5 && f.Limit == 20 && f.StoreCode == "30" &&
				f.Start != nil && f.Start.Equal(start) &&
				f.End != nil && f.End.Equal(end)
		})).Return([]*entity.Transaction{sampleTransaction()}, nil).Once()

		rec := serve(http.MethodGet, "/api/transactions",
			"/api/transactions?skip=5&limit=20&store_cd=30&start_date=2024-04-01&end_date=2024-04-02", nil, h.List)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		h, _ := newTransactionHandler(t)

		rec := serve(http.MethodGet, "/api/transactions", "/api/transactions?start_date=04/01/2024", nil, h.List)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerr.CodeValidation, decodeError(t, rec).Code)
	})
}

func TestTransactionHandler_Delete(t *testing.T) {
	h, register := newTransactionHandler(t)
	register.EXPECT().DeleteTransaction(mock.Anything, uint64(42)).Return(nil).Once()

	rec := serve(http.MethodDelete, "/api/transactions/:id", "/api/transactions/42", nil, h.Delete)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Transaction deleted","trd_id":42}`, rec.Body.String())
}
