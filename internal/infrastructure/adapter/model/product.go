package model

import (
	"time"
)

// Product represents the database model for catalog entries
type Product struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Code      string    `gorm:"uniqueIndex:idx_products_code;not null;size:13"`
	Name      string    `gorm:"not null;size:50"`
	Price     int64     `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for the product model
func (Product) TableName() string {
	return "products"
}
