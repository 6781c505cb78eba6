package repository

import (
	"context"

	"github.com/kondo-pos/pos-backend/internal/domain/entity"
	errs "github.com/kondo-pos/pos-backend/internal/domain/error"
	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction header to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:           transaction.ID,
		CreatedAt:    transaction.CreatedAt.UTC(),
		OperatorCode: transaction.OperatorCode,
		StoreCode:    transaction.StoreCode,
		TerminalCode: transaction.TerminalCode,
		TotalAmount:  transaction.TotalAmount,
	}
}

func lineItemToModel(item entity.LineItem) model.TransactionLineItem {
	return model.TransactionLineItem{
		TransactionID: item.TransactionID,
		LineNumber:    item.LineNumber,
		ProductID:     item.ProductID,
		ProductCode:   item.Snapshot.Code,
		ProductName:   item.Snapshot.Name,
		ProductPrice:  item.Snapshot.Price,
	}
}

// modelToEntity converts a transaction model with its preloaded line items to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	transaction := &entity.Transaction{
		ID:           m.ID,
		CreatedAt:    m.CreatedAt.In(r.timeProvider.Location()),
		OperatorCode: m.OperatorCode,
		StoreCode:    m.StoreCode,
		TerminalCode: m.TerminalCode,
		TotalAmount:  m.TotalAmount,
		LineItems:    make([]entity.LineItem, 0, len(m.LineItems)),
	}
	for _, li := range m.LineItems {
		transaction.LineItems = append(transaction.LineItems, entity.LineItem{
			TransactionID: li.TransactionID,
			LineNumber:    li.LineNumber,
			ProductID:     li.ProductID,
			Snapshot: entity.ProductSnapshot{
				Code:  li.ProductCode,
				Name:  li.ProductName,
				Price: li.ProductPrice,
			},
		})
	}
	return transaction
}

// CreateHeader inserts the header with its current total and sets transaction.ID
func (r *TransactionRepository) CreateHeader(ctx context.Context, transaction *entity.Transaction) error {
	headerModel := r.entityToModel(transaction)

	// Line items are written one by one through AddLineItem
	err := r.db.WithContext(ctx).Omit("LineItems").Create(&headerModel).Error
	if err != nil {
		r.logger.Error("Failed to create transaction header", map[string]any{
			"store_code": transaction.StoreCode,
			"error":      err.Error(),
		})
		return storageError(err)
	}

	transaction.ID = headerModel.ID
	r.logger.Debug("Transaction header created", map[string]any{
		"transaction_id": transaction.ID,
	})
	return nil
}

// AddLineItem inserts a single line item for an existing header
func (r *TransactionRepository) AddLineItem(ctx context.Context, item entity.LineItem) error {
	itemModel := lineItemToModel(item)

	if err := r.db.WithContext(ctx).Create(&itemModel).Error; err != nil {
		r.logger.Error("Failed to add line item", map[string]any{
			"transaction_id": item.TransactionID,
			"line_number":    item.LineNumber,
			"error":          err.Error(),
		})
		if r.errorClassifier.IsForeignKeyError(err) {
			return errs.ErrTransactionNotFound
		}
		return storageError(err)
	}
	return nil
}

// UpdateTotal sets the header's total amount
func (r *TransactionRepository) UpdateTotal(ctx context.Context, id uint64, total int64) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", id).
		Update("total_amount", total)

	if result.Error != nil {
		r.logger.Error("Failed to update transaction total", map[string]any{
			"transaction_id": id,
			"error":          result.Error.Error(),
		})
		return storageError(result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Transaction not found during total update", map[string]any{
			"transaction_id": id,
		})
		return errs.ErrTransactionNotFound
	}
	return nil
}

// GetByID retrieves a transaction with its line items ordered by line number
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	err := r.preloadLineItems(r.db.WithContext(ctx)).First(&transactionModel, id).Error
	if err != nil {
		mapped := mapLookupError(err, errs.ErrTransactionNotFound)
		if mapped != errs.ErrTransactionNotFound {
			r.logger.Error("Failed to get transaction", map[string]any{
				"transaction_id": id,
				"error":          err.Error(),
			})
		}
		return nil, mapped
	}
	return r.modelToEntity(&transactionModel), nil
}

// List returns a page of transactions, newest first, with line items
func (r *TransactionRepository) List(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.preloadLineItems(r.db.WithContext(ctx))
	if filter.Start != nil {
		query = query.Where("created_at >= ?", filter.Start.UTC())
	}
	if filter.End != nil {
		query = query.Where("created_at <= ?", filter.End.UTC())
	}
	if filter.StoreCode != "" {
		query = query.Where("store_code = ?", filter.StoreCode)
	}

	var transactionModels []model.Transaction
	err := query.Order("created_at DESC").Order("id DESC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&transactionModels).Error
	if err != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"offset": filter.Offset,
			"limit":  filter.Limit,
			"error":  err.Error(),
		})
		return nil, storageError(err)
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, r.modelToEntity(&transactionModels[i]))
	}
	return transactions, nil
}

// Delete removes a transaction and all of its line items
func (r *TransactionRepository) Delete(ctx context.Context, id uint64) error {
	db := r.db.WithContext(ctx)

	// SQLite only cascades when the foreign_keys pragma is on
	if err := db.Where("transaction_id = ?", id).Delete(&model.TransactionLineItem{}).Error; err != nil {
		r.logger.Error("Failed to delete line items", map[string]any{
			"transaction_id": id,
			"error":          err.Error(),
		})
		return storageError(err)
	}

	result := db.Delete(&model.Transaction{}, id)
	if result.Error != nil {
		r.logger.Error("Failed to delete transaction", map[string]any{
			"transaction_id": id,
			"error":          result.Error.Error(),
		})
		return storageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) preloadLineItems(db *gorm.DB) *gorm.DB {
	return db.Preload("LineItems", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("line_number ASC")
	})
}
