package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/kondo-pos/pos-backend/internal/domain/entity"
	errs "github.com/kondo-pos/pos-backend/internal/domain/error"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/database/databasetest"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cola = entity.ProductSnapshot{Code: "1111111111111", Name: "コーラ（500ml）", Price: 150}
	tea  = entity.ProductSnapshot{Code: "2222222222222", Name: "お茶（500ml）", Price: 120}
)

func newTransactionRepo(t *testing.T) (*repository.TransactionRepository, *databasetest.TestDB) {
	t.Helper()
	tdb := databasetest.New(t, registered)
	return repository.NewTransactionRepository(tdb.DB, tdb.Clock, tdb.Logger), tdb
}

// saveTransaction stores a header at the given time with one line item per snapshot
func saveTransaction(t *testing.T, repo *repository.TransactionRepository, at time.Time, store string, items ...entity.ProductSnapshot) *entity.Transaction {
	t.Helper()
	ctx := context.Background()

	txn := &entity.Transaction{
		CreatedAt:    at,
		OperatorCode: "9999999999",
		StoreCode:    store,
		TerminalCode: "90",
		LineItems:    []entity.LineItem{},
	}
	require.NoError(t, repo.CreateHeader(ctx, txn))
	require.NotZero(t, txn.ID)

	for i, snap := range items {
		line, err := txn.AppendLineItem(uint64(i+1), snap)
		require.NoError(t, err)
		require.NoError(t, repo.AddLineItem(ctx, line))
	}
	require.NoError(t, repo.UpdateTotal(ctx, txn.ID, txn.TotalAmount))
	return txn
}

func TestTransactionRepository_RoundTrip(t *testing.T) {
	repo, _ := newTransactionRepo(t)
	ctx := context.Background()

	saved := saveTransaction(t, repo, registered, "30", cola, tea, cola)

	stored, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)

	assert.Equal(t, saved.ID, stored.ID)
	assert.True(t, registered.Equal(stored.CreatedAt))
	assert.Equal(t, "9999999999", stored.OperatorCode)
	assert.Equal(t, "30", stored.StoreCode)
	assert.Equal(t, "90", stored.TerminalCode)
	assert.Equal(t, int64(420), stored.TotalAmount)

	require.Len(t, stored.LineItems, 3)
	for i, item := range stored.LineItems {
		assert.Equal(t, i+1, item.LineNumber)
		assert.Equal(t, saved.ID, item.TransactionID)
	}
	assert.Equal(t, tea, stored.LineItems[1].Snapshot)
	assert.Equal(t, uint64(2), stored.LineItems[1].ProductID)
}

func TestTransactionRepository_NotFound(t *testing.T) {
	repo, _ := newTransactionRepo(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)

	assert.ErrorIs(t, repo.UpdateTotal(ctx, 42, 100), errs.ErrTransactionNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 42), errs.ErrTransactionNotFound)

	err = repo.AddLineItem(ctx, entity.LineItem{TransactionID: 42, LineNumber: 1, ProductID: 1, Snapshot: cola})
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
}

func TestTransactionRepository_DuplicateLineNumberIsStorageFailure(t *testing.T) {
	repo, _ := newTransactionRepo(t)
	ctx := context.Background()

	saved := saveTransaction(t, repo, registered, "30", cola)

	err := repo.AddLineItem(ctx, entity.LineItem{TransactionID: saved.ID, LineNumber: 1, ProductID: 2, Snapshot: tea})
	assert.ErrorIs(t, err, errs.ErrStorageFailure)
}

func TestTransactionRepository_List(t *testing.T) {
	repo, _ := newTransactionRepo(t)
	ctx := context.Background()

	first := saveTransaction(t, repo, registered, "30", cola)
	second := saveTransaction(t, repo, registered.Add(time.Hour), "31", tea)
	third := saveTransaction(t, repo, registered.Add(2*time.Hour), "30", cola, tea)

	start := registered.Add(30 * time.Minute)
	end := registered.Add(2 * time.Hour)

	tests := []struct {
		name     string
		filter   entity.TransactionFilter
		expected []uint64
	}{
		{"newest first", entity.TransactionFilter{Limit: 10}, []uint64{third.ID, second.ID, first.ID}},
		{"paging", entity.TransactionFilter{Offset: 1, Limit: 1}, []uint64{second.ID}},
		{"inclusive window", entity.TransactionFilter{Limit: 10, Start: &start, End: &end}, []uint64{third.ID, second.ID}},
		{"store", entity.TransactionFilter{Limit: 10, StoreCode: "30"}, []uint64{third.ID, first.ID}},
		{"store and window", entity.TransactionFilter{Limit: 10, StoreCode: "30", Start: &start}, []uint64{third.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txns, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]uint64, 0, len(txns))
			for _, txn := range txns {
				ids = append(ids, txn.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}

	t.Run("line items are loaded", func(t *testing.T) {
		txns, err := repo.List(ctx, entity.TransactionFilter{Limit: 1})
		require.NoError(t, err)
		require.Len(t, txns, 1)
		assert.Len(t, txns[0].LineItems, 2)
		assert.Equal(t, int64(270), txns[0].TotalAmount)
	})
}

func TestTransactionRepository_DeleteRemovesLineItems(t *testing.T) {
	repo, tdb := newTransactionRepo(t)
	ctx := context.Background()

	kept := saveTransaction(t, repo, registered, "30", tea)
	removed := saveTransaction(t, repo, registered, "30", cola, tea)

	require.NoError(t, repo.Delete(ctx, removed.ID))

	_, err := repo.GetByID(ctx, removed.ID)
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)

	assert.Zero(t, tdb.Count(t, "transaction_line_items", "transaction_id = ?", removed.ID))

	stored, err := repo.GetByID(ctx, kept.ID)
	require.NoError(t, err)
	assert.Len(t, stored.LineItems, 1)

	assert.Equal(t, int64(1), tdb.Count(t, "transactions"))
}

func TestTransactionRepository_LineItemsSurviveProductDelete(t *testing.T) {
	tdb := databasetest.New(t, registered)
	ctx := context.Background()
	products := repository.NewProductRepository(tdb.DB, tdb.Clock, tdb.Logger)
	txns := repository.NewTransactionRepository(tdb.DB, tdb.Clock, tdb.Logger)

	product := &entity.Product{Code: cola.Code, Name: cola.Name, Price: cola.Price, CreatedAt: registered, UpdatedAt: registered}
	require.NoError(t, products.Create(ctx, product))

	txn := &entity.Transaction{CreatedAt: registered, OperatorCode: "1", StoreCode: "30", TerminalCode: "90"}
	require.NoError(t, txns.CreateHeader(ctx, txn))
	line, err := txn.AppendLineItem(product.ID, product.Snapshot())
	require.NoError(t, err)
	require.NoError(t, txns.AddLineItem(ctx, line))
	require.NoError(t, txns.UpdateTotal(ctx, txn.ID, txn.TotalAmount))

	require.NoError(t, products.Delete(ctx, product.ID))

	stored, err := txns.GetByID(ctx, txn.ID)
	require.NoError(t, err)
	require.Len(t, stored.LineItems, 1)
	assert.Equal(t, product.ID, stored.LineItems[0].ProductID)
	assert.Equal(t, cola, stored.LineItems[0].Snapshot)
}
