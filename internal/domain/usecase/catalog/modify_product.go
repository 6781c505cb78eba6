package catalog

import (
	"context"
	"errors"

	"github.com/kondo-pos/pos-backend/internal/domain/entity"
	errs "github.com/kondo-pos/pos-backend/internal/domain/error"
)

// Create registers a new product. The code must not be in use.
func (u *CatalogUseCase) Create(ctx context.Context, code, name string, price int64) (*entity.Product, error) {
	product, err := entity.NewProduct(code, name, price, u.timeProvider)
	if err != nil {
		return nil, err
	}

	// The unique index still guards against a concurrent insert of the same code
	if _, err := u.productRepo.GetByCode(ctx, code); err == nil {
		u.logger.Warn("Attempt to register duplicate product code", map[string]any{
			"code": code,
		})
		return nil, errs.NewDuplicateCodeError(code)
	} else if !errors.Is(err, errs.ErrProductNotFound) {
		return nil, err
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, errs.ErrDuplicateCode) {
			return nil, errs.NewDuplicateCodeError(code)
		}
		u.logger.Error("Failed to create product", map[string]any{
			"code":  code,
			"error": err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Product created", map[string]any{
		"productId": product.ID,
		"code":      product.Code,
		"price":     product.Price,
	})
	return product, nil
}

// Update applies a partial update to name and price
func (u *CatalogUseCase) Update(ctx context.Context, id uint64, update entity.ProductUpdate) (*entity.Product, error) {
	var updated *entity.Product

	err := u.uow.Do(ctx, func(ctx context.Context) error {
		repo := u.uow.GetProductRepository(ctx)

		product, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if update.IsEmpty() {
			updated = product
			return nil
		}
		if err := product.Apply(update, u.timeProvider); err != nil {
			return err
		}
		if err := repo.Update(ctx, product); err != nil {
			return err
		}

		updated = product
		return nil
	})
	if err != nil {
		if !errs.IsNotFoundError(err) && !errs.IsValidationError(err) {
			u.logger.Error("Failed to update product", map[string]any{
				"productId": id,
				"error":     err.Error(),
			})
		}
		return nil, err
	}

	u.logger.Info("Product updated", map[string]any{
		"productId": updated.ID,
		"name":      updated.Name,
		"price":     updated.Price,
	})
	return updated, nil
}

// Delete removes a product. Line items that sold it keep their snapshot.
func (u *CatalogUseCase) Delete(ctx context.Context, id uint64) error {
	if err := u.productRepo.Delete(ctx, id); err != nil {
		if !errors.Is(err, errs.ErrProductNotFound) {
			u.logger.Error("Failed to delete product", map[string]any{
				"productId": id,
				"error":     err.Error(),
			})
		}
		return err
	}

	u.logger.Info("Product deleted", map[string]any{
		"productId": id,
	})
	return nil
}
