package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Do runs fn inside a transaction. The transaction commits when fn returns nil
	// and rolls back when fn fails, panics or ctx is cancelled. Transient conflicts
	// may cause fn to run more than once, so fn must not keep state between calls.
	Do(ctx context.Context, fn func(ctx context.Context) error) error

	// GetProductRepository returns a product repository bound to the current transaction
	GetProductRepository(ctx context.Context) ProductRepository

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository
}
