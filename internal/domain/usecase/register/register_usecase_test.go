package register

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/kondo-pos/pos-backend/internal/domain/entity"
	errs "github.com/kondo-pos/pos-backend/internal/domain/error"
	"github.com/kondo-pos/pos-backend/internal/domain/port/usecase"
	coremocks "github.com/kondo-pos/pos-backend/mocks/port/core"
	persistencemocks "github.com/kondo-pos/pos-backend/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var saleTime = time.Date(2024, 4, 1, 10, 15, 0, 0, time.UTC)

type registerMocks struct {
	uow      *persistencemocks.MockUnitOfWork
	products *persistencemocks.MockProductRepository
	txns     *persistencemocks.MockTransactionRepository
	time     *coremocks.MockTimeProvider
	logger   *coremocks.MockLogger
}

func newRegisterMocks(t *testing.T) registerMocks {
	m := registerMocks{
		uow:      persistencemocks.NewMockUnitOfWork(t),
		products: persistencemocks.NewMockProductRepository(t),
		txns:     persistencemocks.NewMockTransactionRepository(t),
		time:     coremocks.NewMockTimeProvider(t),
		logger:   coremocks.NewMockLogger(t),
	}
	m.time.EXPECT().Now().Return(saleTime).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return m
}

func (m registerMocks) useCase() *RegisterUseCase {
	return NewRegisterUseCase(m.uow, m.txns, m.time, m.logger, DefaultHeaderCodes())
}

// scope makes Do run the function once and hand back its error, like a real unit of work
func (m registerMocks) scope() {
	m.uow.EXPECT().Do(mock.Anything, mock.Anything).Return(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).Once()
	m.uow.EXPECT().GetProductRepository(mock.Anything).Return(m.products).Maybe()
	m.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(m.txns).Maybe()
}

func (m registerMocks) headerAssigned(id uint64) {
	m.txns.EXPECT().CreateHeader(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
		return txn.TotalAmount == 0 && txn.CreatedAt.Equal(saleTime)
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Transaction).ID = id
	}).Return(nil).Once()
}

func colaAndTea() []usecase.LineItemRequest {
	return []usecase.LineItemRequest{
		{ProductID: 1, Code: "1111111111111", Name: "A", Price: 150},
		{ProductID: 2, Code: "2222222222222", Name: "B", Price: 120},
	}
}

func TestPurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("Two valid items", func(t *testing.T) {
		m := newRegisterMocks(t)
		m.scope()
		m.headerAssigned(7)
		m.products.EXPECT().Exists(mock.Anything, uint64(1)).Return(true, nil).Once()
		m.products.EXPECT().Exists(mock.Anything, uint64(2)).Return(true, nil).Once()

		var lines []entity.LineItem
		m.txns.EXPECT().AddLineItem(mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			lines = append(lines, args.Get(1).(entity.LineItem))
		}).Return(nil).Twice()
		m.txns.EXPECT().UpdateTotal(mock.Anything, uint64(7), int64(270)).Return(nil).Once()

		result := m.useCase().Purchase(ctx, usecase.RegisterRequest{OperatorCode: "0000000001", Items: colaAndTea()})

		assert.Equal(t, usecase.PurchaseResult{Success: true, TotalAmount: 270}, result)
		require.Len(t, lines, 2)
		assert.Equal(t, 1, lines[0].LineNumber)
		assert.Equal(t, 2, lines[1].LineNumber)
		assert.Equal(t, uint64(7), lines[0].TransactionID)
		assert.Equal(t, "A", lines[0].Snapshot.Name)
		assert.Equal(t, int64(120), lines[1].Snapshot.Price)
	})

	t.Run("Empty item list never opens a scope", func(t *testing.T) {
		m := newRegisterMocks(t)

		result := m.useCase().Purchase(ctx, usecase.RegisterRequest{})

		assert.Equal(t, usecase.PurchaseResult{}, result)
		m.uow.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
	})

	t.Run("Missing product aborts the whole purchase", func(t *testing.T) {
		m := newRegisterMocks(t)
		m.scope()
		m.headerAssigned(8)
		m.products.EXPECT().Exists(mock.Anything, uint64(9999)).Return(false, nil).Once()

		result := m.useCase().Purchase(ctx, usecase.RegisterRequest{
			Items: []usecase.LineItemRequest{{ProductID: 9999, Code: "9999999999999", Name: "X", Price: 10}},
		})

		assert.Equal(t, usecase.PurchaseResult{}, result)
		m.txns.AssertNotCalled(t, "AddLineItem", mock.Anything, mock.Anything)
		m.txns.AssertNotCalled(t, "UpdateTotal", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing product after a valid line", func(t *testing.T) {
		m := newRegisterMocks(t)
		m.scope()
		m.headerAssigned(9)
		m.products.EXPECT().Exists(mock.Anything, uint64(1)).Return(true, nil).Once()
		m.products.EXPECT().Exists(mock.Anything, uint64(2)).Return(false, nil).Once()
		m.txns.EXPECT().AddLineItem(mock.Anything, mock.Anything).Return(nil).Once()

		result := m.useCase().Purchase(ctx, usecase.RegisterRequest{Items: colaAndTea()})

		assert.False(t, result.Success)
		assert.Zero(t, result.TotalAmount)
		m.txns.AssertNotCalled(t, "UpdateTotal", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Storage failure is swallowed", func(t *testing.T) {
		m := newRegisterMocks(t)
		m.scope()
		m.txns.EXPECT().CreateHeader(mock.Anything, mock.Anything).
			Return(fmt.Errorf("%w: connection reset", errs.ErrStorageFailure)).Once()

		result := m.useCase().Purchase(ctx, usecase.RegisterRequest{Items: colaAndTea()})

		assert.Equal(t, usecase.PurchaseResult{}, result)
	})

	t.Run("Invalid header code is swallowed", func(t *testing.T) {
		m := newRegisterMocks(t)

		result := m.useCase().Purchase(ctx, usecase.RegisterRequest{StoreCode: "TOO-LONG", Items: colaAndTea()})

		assert.Equal(t, usecase.PurchaseResult{}, result)
	})

	t.Run("Panic below the writer becomes a failed result", func(t *testing.T) {
		m := newRegisterMocks(t)
		m.scope()
		m.headerAssigned(10)
		m.products.EXPECT().Exists(mock.Anything, uint64(1)).Run(func(args mock.Arguments) {
			panic("driver bug")
		}).Return(true, nil).Once()

		var result usecase.PurchaseResult
		assert.NotPanics(t, func() {
			result = m.useCase().Purchase(ctx, usecase.RegisterRequest{Items: colaAndTea()})
		})
		assert.Equal(t, usecase.PurchaseResult{}, result)
	})
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults applied to empty header codes", func(t *testing.T) {
		m := newRegisterMocks(t)
		m.scope()
		m.txns.EXPECT().CreateHeader(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.OperatorCode == "9999999999" && txn.StoreCode == "30" && txn.TerminalCode == "90"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Transaction).ID = 21
		}).Return(nil).Once()
		m.products.EXPECT().Exists(mock.Anything, mock.Anything).Return(true, nil).Twice()
		m.txns.EXPECT().AddLineItem(mock.Anything, mock.Anything).Return(nil).Twice()
		m.txns.EXPECT().UpdateTotal(mock.Anything, uint64(21), int64(270)).Return(nil).Once()

		txn, err := m.useCase().CreateTransaction(ctx, usecase.RegisterRequest{Items: colaAndTea()})

		require.NoError(t, err)
		assert.Equal(t, uint64(21), txn.ID)
		assert.Equal(t, int64(270), txn.TotalAmount)
		assert.Equal(t, saleTime, txn.CreatedAt)
		require.Len(t, txn.LineItems, 2)
		assert.Equal(t, 2, txn.LineItems[1].LineNumber)
	})

	t.Run("Missing product is a distinguishable error", func(t *testing.T) {
		m := newRegisterMocks(t)
		m.scope()
		m.headerAssigned(22)
		m.products.EXPECT().Exists(mock.Anything, uint64(1)).Return(true, nil).Once()
		m.products.EXPECT().Exists(mock.Anything, uint64(2)).Return(false, nil).Once()
		m.txns.EXPECT().AddLineItem(mock.Anything, mock.Anything).Return(nil).Once()

		txn, err := m.useCase().CreateTransaction(ctx, usecase.RegisterRequest{Items: colaAndTea()})

		assert.Nil(t, txn)
		var missing *errs.MissingProductError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, uint64(2), missing.ProductID)
		assert.Equal(t, 2, missing.LineNumber)
		assert.ErrorIs(t, err, errs.ErrProductNotFound)
	})

	t.Run("Empty items", func(t *testing.T) {
		m := newRegisterMocks(t)

		_, err := m.useCase().CreateTransaction(ctx, usecase.RegisterRequest{Items: nil})

		assert.ErrorIs(t, err, errs.ErrEmptyLineItems)
	})

	t.Run("Negative snapshot price", func(t *testing.T) {
		m := newRegisterMocks(t)
		items := colaAndTea()
		items[1].Price = -1

		_, err := m.useCase().CreateTransaction(ctx, usecase.RegisterRequest{Items: items})

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("Total overflow rolls back as a validation error", func(t *testing.T) {
		m := newRegisterMocks(t)
		m.scope()
		m.headerAssigned(24)
		m.products.EXPECT().Exists(mock.Anything, mock.Anything).Return(true, nil).Twice()
		m.txns.EXPECT().AddLineItem(mock.Anything, mock.Anything).Return(nil).Once()
		items := colaAndTea()
		items[0].Price = math.MaxInt64
		items[1].Price = math.MaxInt64

		txn, err := m.useCase().CreateTransaction(ctx, usecase.RegisterRequest{Items: items})

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrValidation)
		m.txns.AssertNotCalled(t, "UpdateTotal", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Storage failure on total update", func(t *testing.T) {
		m := newRegisterMocks(t)
		m.scope()
		m.headerAssigned(23)
		m.products.EXPECT().Exists(mock.Anything, mock.Anything).Return(true, nil).Twice()
		m.txns.EXPECT().AddLineItem(mock.Anything, mock.Anything).Return(nil).Twice()
		m.txns.EXPECT().UpdateTotal(mock.Anything, uint64(23), int64(270)).
			Return(fmt.Errorf("%w: deadlock", errs.ErrStorageFailure)).Once()

		_, err := m.useCase().CreateTransaction(ctx, usecase.RegisterRequest{Items: colaAndTea()})

		assert.ErrorIs(t, err, errs.ErrStorageFailure)
	})
}

func TestTransactionQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("Get", func(t *testing.T) {
		m := newRegisterMocks(t)
		expected := &entity.Transaction{ID: 5, TotalAmount: 150}
		m.txns.EXPECT().GetByID(mock.Anything, uint64(5)).Return(expected, nil).Once()

		txn, err := m.useCase().GetTransaction(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, expected, txn)
	})

	t.Run("Get missing", func(t *testing.T) {
		m := newRegisterMocks(t)
		m.txns.EXPECT().GetByID(mock.Anything, uint64(6)).Return(nil, errs.ErrTransactionNotFound).Once()

		_, err := m.useCase().GetTransaction(ctx, 6)

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})

	t.Run("List applies default limit", func(t *testing.T) {
		m := newRegisterMocks(t)
		m.txns.EXPECT().List(mock.Anything, entity.TransactionFilter{Limit: DefaultListLimit, StoreCode: "30"}).
			Return([]*entity.Transaction{}, nil).Once()

		txns, err := m.useCase().ListTransactions(ctx, entity.TransactionFilter{StoreCode: "30"})

		require.NoError(t, err)
		assert.Empty(t, txns)
	})

	t.Run("List rejects inverted window", func(t *testing.T) {
		m := newRegisterMocks(t)
		start := saleTime
		end := saleTime.Add(-time.Hour)

		_, err := m.useCase().ListTransactions(ctx, entity.TransactionFilter{Start: &start, End: &end})

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Delete runs in a unit of work", func(t *testing.T) {
		m := newRegisterMocks(t)
		m.scope()
		m.txns.EXPECT().Delete(mock.Anything, uint64(5)).Return(nil).Once()

		assert.NoError(t, m.useCase().DeleteTransaction(ctx, 5))
	})

	t.Run("Delete missing", func(t *testing.T) {
		m := newRegisterMocks(t)
		m.scope()
		m.txns.EXPECT().Delete(mock.Anything, uint64(5)).Return(errs.ErrTransactionNotFound).Once()

		assert.ErrorIs(t, m.useCase().DeleteTransaction(ctx, 5), errs.ErrTransactionNotFound)
	})
}
