package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kondo-pos/pos-backend/internal/domain/entity"
	errs "github.com/kondo-pos/pos-backend/internal/domain/error"
	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
	"github.com/kondo-pos/pos-backend/internal/domain/port/persistence"
)

// List paging limits
const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// CatalogUseCase handles product catalog business logic
type CatalogUseCase struct {
	uow          persistence.UnitOfWork
	productRepo  persistence.ProductRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewCatalogUseCase creates a new CatalogUseCase
func NewCatalogUseCase(
	uow persistence.UnitOfWork,
	productRepo persistence.ProductRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		uow:          uow,
		productRepo:  productRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// FindByCode looks a product up by its exact code. A miss is not an error.
func (u *CatalogUseCase) FindByCode(ctx context.Context, code string) (*entity.Product, bool, error) {
	product, err := u.productRepo.GetByCode(ctx, code)
	return u.lookupResult(product, err, map[string]any{"code": code})
}

// FindByID looks a product up by ID. A miss is not an error.
func (u *CatalogUseCase) FindByID(ctx context.Context, id uint64) (*entity.Product, bool, error) {
	product, err := u.productRepo.GetByID(ctx, id)
	return u.lookupResult(product, err, map[string]any{"productId": id})
}

func (u *CatalogUseCase) lookupResult(product *entity.Product, err error, fields map[string]any) (*entity.Product, bool, error) {
	if err != nil {
		if errors.Is(err, errs.ErrProductNotFound) {
			u.logger.Debug("Product lookup missed", fields)
			return nil, false, nil
		}
		fields["error"] = err.Error()
		u.logger.Error("Product lookup failed", fields)
		return nil, false, err
	}
	return product, true, nil
}

// List returns a page of products ordered by ID
func (u *CatalogUseCase) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	if filter.Offset < 0 {
		return nil, errs.NewValidationError("skip", "must not be negative")
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit < 1 || filter.Limit > MaxListLimit {
		return nil, errs.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxListLimit))
	}
	filter.Search = strings.TrimSpace(filter.Search)

	products, err := u.productRepo.List(ctx, filter)
	if err != nil {
		u.logger.Error("Failed to list products", map[string]any{
			"offset": filter.Offset,
			"limit":  filter.Limit,
			"search": filter.Search,
			"error":  err.Error(),
		})
		return nil, err
	}
	return products, nil
}
