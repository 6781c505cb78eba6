package dto

import (
	"time"

	"github.com/kondo-pos/pos-backend/internal/domain/entity"
	"github.com/kondo-pos/pos-backend/internal/domain/port/usecase"
)

// LineItemRequest is one rung-up product with the snapshot the terminal displayed
type LineItemRequest struct {
	ProductID    uint64 `json:"prd_id"`
	ProductCode  string `json:"prd_code"`
	ProductName  string `json:"prd_name"`
	ProductPrice int64  `json:"prd_price"`
}

// TransactionRequest registers a transaction through the administrative path
type TransactionRequest struct {
	OperatorCode string            `json:"emp_cd"`
	StoreCode    string            `json:"store_cd"`
	TerminalCode string            `json:"pos_no"`
	Details      []LineItemRequest `json:"details"`
}

// PurchaseRequest is what a point-of-sale terminal submits
type PurchaseRequest struct {
	OperatorCode string            `json:"emp_cd"`
	StoreCode    string            `json:"store_cd"`
	TerminalCode string            `json:"pos_no"`
	Products     []LineItemRequest `json:"products"`
}

// PurchaseResponse is all a terminal is told about a sale
type PurchaseResponse struct {
	Success     bool  `json:"success"`
	TotalAmount int64 `json:"total_amount"`
}

// LineItemResponse is a persisted line item
type LineItemResponse struct {
	LineNumber   int    `json:"dtl_id"`
	ProductID    uint64 `json:"prd_id"`
	ProductCode  string `json:"prd_code"`
	ProductName  string `json:"prd_name"`
	ProductPrice int64  `json:"prd_price"`
}

// TransactionResponse is a persisted transaction with its line items
type TransactionResponse struct {
	TransactionID uint64             `json:"trd_id"`
	DateTime      time.Time          `json:"datetime"`
	OperatorCode  string             `json:"emp_cd"`
	StoreCode     string             `json:"store_cd"`
	TerminalCode  string             `json:"pos_no"`
	TotalAmount   int64              `json:"total_amt"`
	Details       []LineItemResponse `json:"details"`
}

// ListTransactionsQuery pages through transactions; dates are parsed by the handler
type ListTransactionsQuery struct {
	Skip      int    `form:"skip"`
	Limit     int    `form:"limit"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	StoreCode string `form:"store_cd"`
}

// ToRegisterRequest maps the header and items to the register's input
func (r TransactionRequest) ToRegisterRequest() usecase.RegisterRequest {
	return newRegisterRequest(r.OperatorCode, r.StoreCode, r.TerminalCode, r.Details)
}

// ToRegisterRequest maps the header and items to the register's input
func (r PurchaseRequest) ToRegisterRequest() usecase.RegisterRequest {
	return newRegisterRequest(r.OperatorCode, r.StoreCode, r.TerminalCode, r.Products)
}

func newRegisterRequest(operator, store, terminal string, items []LineItemRequest) usecase.RegisterRequest {
	req := usecase.RegisterRequest{
		OperatorCode: operator,
		StoreCode:    store,
		TerminalCode: terminal,
		Items:        make([]usecase.LineItemRequest, 0, len(items)),
	}
	for _, item := range items {
		req.Items = append(req.Items, usecase.LineItemRequest{
			ProductID: item.ProductID,
			Code:      item.ProductCode,
			Name:      item.ProductName,
			Price:     item.ProductPrice,
		})
	}
	return req
}

// NewPurchaseResponse converts the register's purchase result
func NewPurchaseResponse(result usecase.PurchaseResult) PurchaseResponse {
	return PurchaseResponse{Success: result.Success, TotalAmount: result.TotalAmount}
}

// NewTransactionResponse converts a transaction entity
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	details := make([]LineItemResponse, 0, len(t.LineItems))
	for _, item := range t.LineItems {
		details = append(details, LineItemResponse{
			LineNumber:   item.LineNumber,
			ProductID:    item.ProductID,
			ProductCode:  item.Snapshot.Code,
			ProductName:  item.Snapshot.Name,
			ProductPrice: item.Snapshot.Price,
		})
	}

	return TransactionResponse{
		TransactionID: t.ID,
		DateTime:      t.CreatedAt,
		OperatorCode:  t.OperatorCode,
		StoreCode:     t.StoreCode,
		TerminalCode:  t.TerminalCode,
		TotalAmount:   t.TotalAmount,
		Details:       details,
	}
}

// NewTransactionListResponse converts a page of transactions, never returning nil
func NewTransactionListResponse(txns []*entity.Transaction) []TransactionResponse {
	result := make([]TransactionResponse, 0, len(txns))
	for _, t := range txns {
		result = append(result, NewTransactionResponse(t))
	}
	return result
}
