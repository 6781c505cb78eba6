package register

import (
	"context"
	"fmt"

	"github.com/kondo-pos/pos-backend/internal/domain/entity"
	errs "github.com/kondo-pos/pos-backend/internal/domain/error"
)

// List paging limits
const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// GetTransaction returns a transaction with its line items
func (u *RegisterUseCase) GetTransaction(ctx context.Context, id uint64) (*entity.Transaction, error) {
	txn, err := u.txnRepo.GetByID(ctx, id)
	if err != nil {
		if !errs.IsNotFoundError(err) {
			u.logger.Error("Failed to get transaction", map[string]any{
				"transactionId": id,
				"error":         err.Error(),
			})
		}
		return nil, err
	}
	return txn, nil
}

// ListTransactions returns a page of transactions, newest first
func (u *RegisterUseCase) ListTransactions(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	if filter.Offset < 0 {
		return nil, errs.NewValidationError("skip", "must not be negative")
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit < 1 || filter.Limit > MaxListLimit {
		return nil, errs.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxListLimit))
	}
	if filter.Start != nil && filter.End != nil && filter.Start.After(*filter.End) {
		return nil, errs.NewValidationError("start_date", "must not be after end_date")
	}

	txns, err := u.txnRepo.List(ctx, filter)
	if err != nil {
		u.logger.Error("Failed to list transactions", map[string]any{
			"offset":    filter.Offset,
			"limit":     filter.Limit,
			"storeCode": filter.StoreCode,
			"error":     err.Error(),
		})
		return nil, err
	}
	return txns, nil
}

// DeleteTransaction removes a transaction together with its line items
func (u *RegisterUseCase) DeleteTransaction(ctx context.Context, id uint64) error {
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		return u.uow.GetTransactionRepository(ctx).Delete(ctx, id)
	})
	if err != nil {
		if !errs.IsNotFoundError(err) {
			u.logger.Error("Failed to delete transaction", map[string]any{
				"transactionId": id,
				"error":         err.Error(),
			})
		}
		return err
	}

	u.logger.Info("Transaction deleted", map[string]any{
		"transactionId": id,
	})
	return nil
}
