package migration

import (
	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// indexSpec is an index created outside of the model tags
type indexSpec struct {
	name    string
	model   any
	ddl     string
	dialect string // empty means every dialect
}

// AdvancedIndexManager manages indexes that GORM tags cannot express
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

func (m *AdvancedIndexManager) indexes() []indexSpec {
	return []indexSpec{
		{
			// store filtered statistics and transaction listing
			name:  "idx_transactions_store_created_at",
			model: &model.Transaction{},
			ddl:   "CREATE INDEX idx_transactions_store_created_at ON transactions (store_code, created_at)",
		},
		{
			// top products groups by product and joins back to the header
			name:  "idx_line_items_product_transaction",
			model: &model.TransactionLineItem{},
			ddl:   "CREATE INDEX idx_line_items_product_transaction ON transaction_line_items (product_id, transaction_id)",
		},
		{
			// transactions are appended in time order, which BRIN summarizes cheaply
			name:    "idx_transactions_created_at_brin",
			model:   &model.Transaction{},
			ddl:     "CREATE INDEX idx_transactions_created_at_brin ON transactions USING BRIN (created_at) WITH (pages_per_range = 32)",
			dialect: "postgres",
		},
	}
}

// CreateAdvancedIndexes creates every missing index for the current dialect
func (m *AdvancedIndexManager) CreateAdvancedIndexes() error {
	dialect := m.db.Dialector.Name()
	m.logger.Info("Creating advanced indexes", map[string]any{"dialect": dialect})

	for _, idx := range m.indexes() {
		if idx.dialect != "" && idx.dialect != dialect {
			continue
		}
		if m.db.Migrator().HasIndex(idx.model, idx.name) {
			continue
		}
		if err := m.db.Exec(idx.ddl).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL planner settings. Other dialects are left alone.
func (m *AdvancedIndexManager) CreatePerformanceTweaks() error {
	if m.db.Dialector.Name() != "postgres" {
		return nil
	}

	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Line items are insert-only, so pages can be packed full
	if err := m.db.Exec(`ALTER TABLE transaction_line_items SET (fillfactor = 100)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for transaction_line_items", map[string]any{
			"error": err.Error(),
		})
	}

	// product_id is skewed towards best sellers
	if err := m.db.Exec(`ALTER TABLE transaction_line_items ALTER COLUMN product_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for product_id", map[string]any{
			"error": err.Error(),
		})
	}

	m.logger.Info("PostgreSQL performance tweaks applied successfully", nil)
	return nil
}
