package usecase

import (
	"context"

	"github.com/kondo-pos/pos-backend/internal/domain/entity"
)

// LineItemRequest is one submitted item with the snapshot the register rang up
type LineItemRequest struct {
	ProductID uint64
	Code      string
	Name      string
	Price     int64
}

// RegisterRequest is the header codes plus line items of one sale.
// Empty codes are replaced by the configured defaults.
type RegisterRequest struct {
	OperatorCode string
	StoreCode    string
	TerminalCode string
	Items        []LineItemRequest
}

// PurchaseResult is all a point-of-sale terminal is told about a sale
type PurchaseResult struct {
	Success     bool
	TotalAmount int64
}

// RegisterUseCase defines the transaction writer
type RegisterUseCase interface {
	// Purchase records a sale. Every failure is reported as {false, 0}; it never returns an error.
	Purchase(ctx context.Context, req RegisterRequest) PurchaseResult

	// CreateTransaction records a sale and reports failures as distinguishable errors:
	// ErrEmptyLineItems, ValidationError, MissingProductError or ErrStorageFailure
	CreateTransaction(ctx context.Context, req RegisterRequest) (*entity.Transaction, error)

	// GetTransaction returns a transaction with its line items
	GetTransaction(ctx context.Context, id uint64) (*entity.Transaction, error)

	// ListTransactions returns a page of transactions, newest first
	ListTransactions(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error)

	// DeleteTransaction removes a transaction and its line items
	DeleteTransaction(ctx context.Context, id uint64) error
}
