package model

import (
	"time"
)

// MigrationVersion records one applied schema version
type MigrationVersion struct {
	Version     string    `gorm:"primaryKey;type:varchar(20)"`
	Description string    `gorm:"type:text"`
	AppliedAt   time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for the migration version model
func (MigrationVersion) TableName() string {
	return "migration_versions"
}
