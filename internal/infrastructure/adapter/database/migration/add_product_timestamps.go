package migration

import (
	"context"
	"fmt"

	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// AddProductTimestamps adds created_at and updated_at to a 1.0.0 products table,
// which was created without them
type AddProductTimestamps struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAddProductTimestamps creates a new migration instance
func NewAddProductTimestamps(db *gorm.DB, logger coreport.Logger) *AddProductTimestamps {
	return &AddProductTimestamps{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *AddProductTimestamps) Run(ctx context.Context) error {
	m.logger.Info("Adding timestamp columns to products table", nil)

	db := m.db.WithContext(ctx)
	if !db.Migrator().HasTable(&model.Product{}) {
		// Fresh schema, AutoMigrate creates the columns
		return nil
	}

	for _, column := range []string{"created_at", "updated_at"} {
		if db.Migrator().HasColumn(&model.Product{}, column) {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE products ADD COLUMN %s %s", column, m.columnDefinition())
		if err := db.Exec(stmt).Error; err != nil {
			m.logger.Error("Failed to add product timestamp column", map[string]any{
				"column": column,
				"error":  err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Successfully added timestamp columns to products table", nil)
	return nil
}

// columnDefinition returns a NOT NULL timestamp with a default each dialect accepts
// in ALTER TABLE ... ADD COLUMN
func (m *AddProductTimestamps) columnDefinition() string {
	switch m.db.Dialector.Name() {
	case "sqlite":
		return "datetime NOT NULL DEFAULT '1970-01-01 00:00:00'"
	case "mysql":
		return "datetime(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3)"
	default:
		return "timestamptz NOT NULL DEFAULT CURRENT_TIMESTAMP"
	}
}
