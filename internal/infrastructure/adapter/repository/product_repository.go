package repository

import (
	"context"
	"strings"

	"github.com/kondo-pos/pos-backend/internal/domain/entity"
	errs "github.com/kondo-pos/pos-backend/internal/domain/error"
	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// likeEscaper escapes LIKE wildcards with '!', which every supported dialect accepts in ESCAPE
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// ProductRepository implements ProductRepository interface using GORM
type ProductRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewProductRepository creates a new ProductRepository instance
func NewProductRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ProductRepository {
	return &ProductRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a product entity to a database model
func (r *ProductRepository) entityToModel(product *entity.Product) model.Product {
	return model.Product{
		ID:        product.ID,
		Code:      product.Code,
		Name:      product.Name,
		Price:     product.Price,
		CreatedAt: product.CreatedAt.UTC(),
		UpdatedAt: product.UpdatedAt.UTC(),
	}
}

// modelToEntity converts a product model to an entity
func (r *ProductRepository) modelToEntity(m *model.Product) *entity.Product {
	loc := r.timeProvider.Location()
	return &entity.Product{
		ID:        m.ID,
		Code:      m.Code,
		Name:      m.Name,
		Price:     m.Price,
		CreatedAt: m.CreatedAt.In(loc),
		UpdatedAt: m.UpdatedAt.In(loc),
	}
}

// GetByID retrieves a product by its identifier
func (r *ProductRepository) GetByID(ctx context.Context, id uint64) (*entity.Product, error) {
	var productModel model.Product
	if err := r.db.WithContext(ctx).First(&productModel, id).Error; err != nil {
		return nil, r.handleLookupError("getting product", err, map[string]any{"product_id": id})
	}
	return r.modelToEntity(&productModel), nil
}

// GetByCode retrieves a product by its exact code
func (r *ProductRepository) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	var productModel model.Product
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&productModel).Error; err != nil {
		return nil, r.handleLookupError("getting product by code", err, map[string]any{"code": code})
	}
	return r.modelToEntity(&productModel), nil
}

// Exists checks whether a product with the given ID is in the catalog
func (r *ProductRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		r.logger.Error("Failed to check product existence", map[string]any{
			"product_id": id,
			"error":      err.Error(),
		})
		return false, storageError(err)
	}
	return count > 0, nil
}

// List returns a page of products ordered by ID
func (r *ProductRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	query := r.db.WithContext(ctx).Model(&model.Product{})
	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(filter.Search) + "%"
		query = query.Where("code LIKE ? ESCAPE '!' OR name LIKE ? ESCAPE '!'", pattern, pattern)
	}

	var productModels []model.Product
	err := query.Order("id ASC").Offset(filter.Offset).Limit(filter.Limit).Find(&productModels).Error
	if err != nil {
		r.logger.Error("Failed to list products", map[string]any{
			"offset": filter.Offset,
			"limit":  filter.Limit,
			"search": filter.Search,
			"error":  err.Error(),
		})
		return nil, storageError(err)
	}

	products := make([]*entity.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, r.modelToEntity(&productModels[i]))
	}
	return products, nil
}

// Create inserts a new product and assigns its ID
func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	productModel := r.entityToModel(product)

	if err := r.db.WithContext(ctx).Create(&productModel).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate product code", map[string]any{
				"code": product.Code,
			})
			return errs.NewDuplicateCodeError(product.Code)
		}
		r.logger.Error("Failed to create product", map[string]any{
			"code":  product.Code,
			"error": err.Error(),
		})
		return storageError(err)
	}

	product.ID = productModel.ID
	r.logger.Debug("Product created", map[string]any{
		"product_id": product.ID,
		"code":       product.Code,
	})
	return nil
}

// Update persists name, price and update time of an existing product
func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	result := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":       product.Name,
			"price":      product.Price,
			"updated_at": product.UpdatedAt.UTC(),
		})

	if result.Error != nil {
		r.logger.Error("Failed to update product", map[string]any{
			"product_id": product.ID,
			"error":      result.Error.Error(),
		})
		return storageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrProductNotFound
	}
	return nil
}

// Delete removes a product. Line items keep their snapshot and dangling product_id.
func (r *ProductRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if result.Error != nil {
		r.logger.Error("Failed to delete product", map[string]any{
			"product_id": id,
			"error":      result.Error.Error(),
		})
		return storageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) handleLookupError(operation string, err error, fields map[string]any) error {
	mapped := mapLookupError(err, errs.ErrProductNotFound)
	if mapped != errs.ErrProductNotFound {
		fields["error"] = err.Error()
		r.logger.Error("Database error when "+operation, fields)
	}
	return mapped
}
