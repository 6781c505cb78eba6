package persistence

import (
	"context"

	"github.com/kondo-pos/pos-backend/internal/domain/entity"
)

// TransactionRepository defines the operations on transaction headers and their line items.
// Writes are expected to run inside a UnitOfWork scope.
type TransactionRepository interface {
	// CreateHeader inserts the header and sets transaction.ID
	// The ID must be visible to AddLineItem calls in the same scope
	//
	// Possible errors:
	// - ErrStorageFailure: If the store could not complete the insert
	CreateHeader(ctx context.Context, transaction *entity.Transaction) error

	// AddLineItem inserts a single line item for an existing header
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the owning header doesn't exist
	// - ErrStorageFailure: If the store could not complete the insert
	AddLineItem(ctx context.Context, item entity.LineItem) error

	// UpdateTotal sets the header's total amount
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the header doesn't exist
	// - ErrStorageFailure: If the store could not complete the update
	UpdateTotal(ctx context.Context, id uint64, total int64) error

	// GetByID retrieves a transaction with its line items ordered by line number
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the transaction doesn't exist
	// - ErrStorageFailure: If the store could not complete the query
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// List returns a page of transactions, newest first, with line items
	//
	// Possible errors:
	// - ErrStorageFailure: If the store could not complete the query
	List(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error)

	// Delete removes a transaction and all of its line items
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the transaction doesn't exist
	// - ErrStorageFailure: If the store could not complete the delete
	Delete(ctx context.Context, id uint64) error
}
