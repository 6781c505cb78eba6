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

var registered = time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

func newProductRepo(t *testing.T) (*repository.ProductRepository, *databasetest.TestDB) {
	t.Helper()
	tdb := databasetest.New(t, registered)
	return repository.NewProductRepository(tdb.DB, tdb.Clock, tdb.Logger), tdb
}

func createProduct(t *testing.T, repo *repository.ProductRepository, code, name string, price int64) *entity.Product {
	t.Helper()
	product := &entity.Product{Code: code, Name: name, Price: price, CreatedAt: registered, UpdatedAt: registered}
	require.NoError(t, repo.Create(context.Background(), product))
	require.NotZero(t, product.ID)
	return product
}

func TestProductRepository_CreateAndGet(t *testing.T) {
	repo, _ := newProductRepo(t)
	ctx := context.Background()

	created := createProduct(t, repo, "1234567890123", "コーラ（500ml）", 150)

	t.Run("by id", func(t *testing.T) {
		product, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "1234567890123", product.Code)
		assert.Equal(t, "コーラ（500ml）", product.Name)
		assert.Equal(t, int64(150), product.Price)
		assert.True(t, registered.Equal(product.CreatedAt))
	})

	t.Run("by code", func(t *testing.T) {
		product, err := repo.GetByCode(ctx, "1234567890123")
		require.NoError(t, err)
		assert.Equal(t, created.ID, product.ID)
	})

	t.Run("missing id", func(t *testing.T) {
		product, err := repo.GetByID(ctx, 9999)
		assert.Nil(t, product)
		assert.ErrorIs(t, err, errs.ErrProductNotFound)
	})

	t.Run("missing code", func(t *testing.T) {
		_, err := repo.GetByCode(ctx, "0000000000000")
		assert.ErrorIs(t, err, errs.ErrProductNotFound)
	})

	t.Run("exists", func(t *testing.T) {
		ok, err := repo.Exists(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Exists(ctx, 9999)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestProductRepository_CreateDuplicateCode(t *testing.T) {
	repo, _ := newProductRepo(t)
	ctx := context.Background()

	original := createProduct(t, repo, "1234567890123", "コーラ（500ml）", 150)

	dup := &entity.Product{Code: "1234567890123", Name: "別の商品", Price: 999, CreatedAt: registered, UpdatedAt: registered}
	err := repo.Create(ctx, dup)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDuplicateCode)
	assert.True(t, errs.IsDuplicateCodeError(err))

	stored, err := repo.GetByID(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, "コーラ（500ml）", stored.Name)
	assert.Equal(t, int64(150), stored.Price)
}

func TestProductRepository_List(t *testing.T) {
	repo, _ := newProductRepo(t)
	ctx := context.Background()

	createProduct(t, repo, "1111111111111", "コーラ（500ml）", 150)
	createProduct(t, repo, "2222222222222", "お茶（500ml）", 120)
	createProduct(t, repo, "3333333333333", "100%_ジュース", 180)
	createProduct(t, repo, "4444444444444", "コーラ（1.5L）", 250)

	tests := []struct {
		name     string
		filter   entity.ProductFilter
		expected []string
	}{
		{"first page", entity.ProductFilter{Limit: 2}, []string{"1111111111111", "2222222222222"}},
		{"offset", entity.ProductFilter{Offset: 2, Limit: 10}, []string{"3333333333333", "4444444444444"}},
		{"search by name", entity.ProductFilter{Limit: 10, Search: "コーラ"}, []string{"1111111111111", "4444444444444"}},
		{"search by code fragment", entity.ProductFilter{Limit: 10, Search: "2222"}, []string{"2222222222222"}},
		{"wildcards are literal", entity.ProductFilter{Limit: 10, Search: "%_"}, []string{"3333333333333"}},
		{"no match", entity.ProductFilter{Limit: 10, Search: "パン"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)

			codes := make([]string, 0, len(products))
			for _, p := range products {
				codes = append(codes, p.Code)
			}
			assert.Equal(t, tt.expected, codes)
		})
	}
}

func TestProductRepository_Update(t *testing.T) {
	repo, tdb := newProductRepo(t)
	ctx := context.Background()

	product := createProduct(t, repo, "1234567890123", "コーラ（500ml）", 150)

	tdb.Clock.Advance(time.Hour)
	product.Name = "コーラ（500ml）新"
	product.Price = 160
	product.UpdatedAt = tdb.Clock.Now()
	require.NoError(t, repo.Update(ctx, product))

	stored, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "コーラ（500ml）新", stored.Name)
	assert.Equal(t, int64(160), stored.Price)
	assert.Equal(t, "1234567890123", stored.Code)
	assert.True(t, registered.Add(time.Hour).Equal(stored.UpdatedAt))
	assert.True(t, registered.Equal(stored.CreatedAt))

	missing := &entity.Product{ID: 9999, Name: "x", Price: 1, UpdatedAt: registered}
	assert.ErrorIs(t, repo.Update(ctx, missing), errs.ErrProductNotFound)
}

func TestProductRepository_Delete(t *testing.T) {
	repo, _ := newProductRepo(t)
	ctx := context.Background()

	product := createProduct(t, repo, "1234567890123", "コーラ（500ml）", 150)

	require.NoError(t, repo.Delete(ctx, product.ID))

	_, err := repo.GetByID(ctx, product.ID)
	assert.ErrorIs(t, err, errs.ErrProductNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, product.ID), errs.ErrProductNotFound)
}

func TestProductRepository_ReturnsTimesInClockLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	tdb := databasetest.New(t, registered.In(tokyo))
	repo := repository.NewProductRepository(tdb.DB, tdb.Clock, tdb.Logger)

	product := &entity.Product{Code: "1234567890123", Name: "お茶", Price: 120, CreatedAt: tdb.Clock.Now(), UpdatedAt: tdb.Clock.Now()}
	require.NoError(t, repo.Create(context.Background(), product))

	stored, err := repo.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, tokyo, stored.CreatedAt.Location())
	assert.True(t, registered.Equal(stored.CreatedAt))
}
