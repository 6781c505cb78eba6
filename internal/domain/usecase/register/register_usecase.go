package register

import (
	"context"
	"fmt"

	"github.com/kondo-pos/pos-backend/internal/domain/entity"
	errs "github.com/kondo-pos/pos-backend/internal/domain/error"
	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
	"github.com/kondo-pos/pos-backend/internal/domain/port/persistence"
	"github.com/kondo-pos/pos-backend/internal/domain/port/usecase"
)

// Defaults are the header codes used when a request leaves them empty
type Defaults struct {
	OperatorCode string
	StoreCode    string
	TerminalCode string
}

// DefaultHeaderCodes returns the codes of the unattended register
func DefaultHeaderCodes() Defaults {
	return Defaults{
		OperatorCode: "9999999999",
		StoreCode:    "30",
		TerminalCode: "90",
	}
}

// RegisterUseCase is the transaction writer. Both entry points share register
// and differ only in how the outcome is reported.
type RegisterUseCase struct {
	uow          persistence.UnitOfWork
	txnRepo      persistence.TransactionRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	defaults     Defaults
}

// NewRegisterUseCase creates a new RegisterUseCase
func NewRegisterUseCase(
	uow persistence.UnitOfWork,
	txnRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	defaults Defaults,
) *RegisterUseCase {
	return &RegisterUseCase{
		uow:          uow,
		txnRepo:      txnRepo,
		timeProvider: timeProvider,
		logger:       logger,
		defaults:     defaults,
	}
}

// prepare fills default codes and validates everything that can be checked without the store.
// The returned header carries the sale timestamp.
func (u *RegisterUseCase) prepare(req usecase.RegisterRequest) (*entity.Transaction, error) {
	if len(req.Items) == 0 {
		return nil, errs.ErrEmptyLineItems
	}

	header, err := entity.NewTransaction(
		withDefault(req.OperatorCode, u.defaults.OperatorCode),
		withDefault(req.StoreCode, u.defaults.StoreCode),
		withDefault(req.TerminalCode, u.defaults.TerminalCode),
		u.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	for i, item := range req.Items {
		if err := snapshotOf(item).Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return header, nil
}

// register writes header, line items and total as one unit of work.
// Nothing is persisted unless every step succeeds.
func (u *RegisterUseCase) register(ctx context.Context, req usecase.RegisterRequest) (*entity.Transaction, error) {
	header, err := u.prepare(req)
	if err != nil {
		return nil, err
	}

	var committed *entity.Transaction
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		products := u.uow.GetProductRepository(ctx)
		txns := u.uow.GetTransactionRepository(ctx)

		// fresh copy per attempt, Do may retry
		txn := &entity.Transaction{
			CreatedAt:    header.CreatedAt,
			OperatorCode: header.OperatorCode,
			StoreCode:    header.StoreCode,
			TerminalCode: header.TerminalCode,
			LineItems:    make([]entity.LineItem, 0, len(req.Items)),
		}
		if err := txns.CreateHeader(ctx, txn); err != nil {
			return err
		}

		for i, item := range req.Items {
			exists, err := products.Exists(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if !exists {
				return errs.NewMissingProductError(item.ProductID, i+1)
			}

			line, err := txn.AppendLineItem(item.ProductID, snapshotOf(item))
			if err != nil {
				return err
			}
			if err := txns.AddLineItem(ctx, line); err != nil {
				return err
			}
		}

		if err := txns.UpdateTotal(ctx, txn.ID, txn.TotalAmount); err != nil {
			return err
		}

		committed = txn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return committed, nil
}

func snapshotOf(item usecase.LineItemRequest) entity.ProductSnapshot {
	return entity.ProductSnapshot{Code: item.Code, Name: item.Name, Price: item.Price}
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
