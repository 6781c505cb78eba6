package model

import (
	"time"
)

// Transaction represents the database model for a sale header
type Transaction struct {
	ID           uint64                `gorm:"primaryKey;autoIncrement"`
	CreatedAt    time.Time             `gorm:"not null;index:idx_transactions_created_at"`
	OperatorCode string                `gorm:"not null;size:10"`
	StoreCode    string                `gorm:"not null;size:5;index:idx_transactions_store_code"`
	TerminalCode string                `gorm:"not null;size:3"`
	TotalAmount  int64                 `gorm:"not null;default:0"`
	LineItems    []TransactionLineItem `gorm:"foreignKey:TransactionID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionLineItem is one rung-up product. ProductID is indexed but carries
// no foreign key so catalog deletes never touch sales history.
type TransactionLineItem struct {
	TransactionID uint64 `gorm:"primaryKey;autoIncrement:false"`
	LineNumber    int    `gorm:"primaryKey;autoIncrement:false"`
	ProductID     uint64 `gorm:"not null;index:idx_line_items_product_id"`
	ProductCode   string `gorm:"not null;size:13"`
	ProductName   string `gorm:"not null;size:50"`
	ProductPrice  int64  `gorm:"not null"`
}

// TableName specifies the table name for the line item model
func (TransactionLineItem) TableName() string {
	return "transaction_line_items"
}
