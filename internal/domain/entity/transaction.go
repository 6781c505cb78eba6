package entity

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	errs "github.com/kondo-pos/pos-backend/internal/domain/error"
	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
)

// Header code limits
const (
	OperatorCodeMaxLength = 10
	StoreCodeMaxLength    = 5
	TerminalCodeMaxLength = 3
)

// ProductSnapshot is the copy of a product's descriptive data taken when it was rung up.
// Later edits to the product never reach it.
type ProductSnapshot struct {
	Code  string
	Name  string
	Price int64
}

// Validate checks snapshot fields against the catalog column limits
func (s ProductSnapshot) Validate() error {
	if utf8.RuneCountInString(s.Code) > ProductCodeLength {
		return errs.NewValidationError("prd_code", fmt.Sprintf("must be at most %d characters", ProductCodeLength))
	}
	if utf8.RuneCountInString(s.Name) > ProductNameMaxLength {
		return errs.NewValidationError("prd_name", fmt.Sprintf("must be at most %d characters", ProductNameMaxLength))
	}
	return ValidatePrice("prd_price", s.Price)
}

// LineItem is identified by (TransactionID, LineNumber). ProductID is a soft reference.
type LineItem struct {
	TransactionID uint64
	LineNumber    int
	ProductID     uint64
	Snapshot      ProductSnapshot
}

// Transaction is one sale at a register. TotalAmount always equals the sum of
// its line item prices once the transaction is committed.
type Transaction struct {
	ID           uint64
	CreatedAt    time.Time
	OperatorCode string
	StoreCode    string
	TerminalCode string
	TotalAmount  int64
	LineItems    []LineItem
}

// TransactionFilter selects a page of transactions, newest first
type TransactionFilter struct {
	Offset    int
	Limit     int
	Start     *time.Time
	End       *time.Time
	StoreCode string
}

// NewTransaction creates an empty header stamped with the current time
func NewTransaction(operatorCode, storeCode, terminalCode string, timeProvider coreport.TimeProvider) (*Transaction, error) {
	if err := validateCode("emp_cd", operatorCode, OperatorCodeMaxLength); err != nil {
		return nil, err
	}
	if err := validateCode("store_cd", storeCode, StoreCodeMaxLength); err != nil {
		return nil, err
	}
	if err := validateCode("pos_no", terminalCode, TerminalCodeMaxLength); err != nil {
		return nil, err
	}

	return &Transaction{
		CreatedAt:    timeProvider.Now(),
		OperatorCode: operatorCode,
		StoreCode:    storeCode,
		TerminalCode: terminalCode,
		LineItems:    []LineItem{},
	}, nil
}

// AppendLineItem numbers the item after the existing ones and adds its price to the total.
// The transaction is left unchanged when the total would overflow.
func (t *Transaction) AppendLineItem(productID uint64, snapshot ProductSnapshot) (LineItem, error) {
	if snapshot.Price > 0 && t.TotalAmount > math.MaxInt64-snapshot.Price {
		return LineItem{}, errs.NewValidationError("total_amount", "exceeds the maximum amount")
	}

	item := LineItem{
		TransactionID: t.ID,
		LineNumber:    len(t.LineItems) + 1,
		ProductID:     productID,
		Snapshot:      snapshot,
	}
	t.LineItems = append(t.LineItems, item)
	t.TotalAmount += snapshot.Price
	return item, nil
}

// ItemCount returns the number of line items
func (t *Transaction) ItemCount() int {
	return len(t.LineItems)
}

func validateCode(field, value string, maxLen int) error {
	if value == "" {
		return errs.NewValidationError(field, "must not be empty")
	}
	if utf8.RuneCountInString(value) > maxLen {
		return errs.NewValidationError(field, fmt.Sprintf("must be at most %d characters", maxLen))
	}
	return nil
}
