package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation      = 4001
	CodeInvalidRequest  = 4002
	CodeEmptyLineItems  = 4003
	CodeProductNotFound = 4040
	CodeTxnNotFound     = 4041
	CodeMissingProduct  = 4042
	CodeDuplicateCode   = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeStorageFailure = 5030
)

// Base error types
var (
	// ErrProductNotFound is returned when no product matches the requested id or code
	ErrProductNotFound = errors.New("product not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDuplicateCode is returned when a product code is already registered
	ErrDuplicateCode = errors.New("product code already exists")

	// ErrValidation is returned when a field violates a length or range constraint
	ErrValidation = errors.New("validation failed")

	// ErrEmptyLineItems is returned when a transaction is submitted without line items
	ErrEmptyLineItems = errors.New("transaction has no line items")

	// ErrMissingProduct is returned when a line item references a product that doesn't exist
	ErrMissingProduct = errors.New("line item references a missing product")

	// ErrStorageFailure is returned when the store could not complete the operation
	ErrStorageFailure = errors.New("storage failure")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrMissingProduct):
		return CodeMissingProduct
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrEmptyLineItems):
		return CodeEmptyLineItems
	case errors.Is(err, ErrProductNotFound):
		return CodeProductNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTxnNotFound
	case errors.Is(err, ErrDuplicateCode):
		return CodeDuplicateCode
	case errors.Is(err, ErrStorageFailure):
		return CodeStorageFailure
	default:
		return CodeInternalServer
	}
}

// ValidationError names the field that broke a constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": CodeValidation,
	}
}

// NewValidationError creates a new field validation error
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// MissingProductError is raised by the strict registration path when a line item
// points at a product id that is not in the catalog.
type MissingProductError struct {
	ProductID  uint64
	LineNumber int
}

func (e *MissingProductError) Error() string {
	return fmt.Sprintf("line %d: product %d does not exist", e.LineNumber, e.ProductID)
}

// Is matches both ErrMissingProduct and ErrProductNotFound
func (e *MissingProductError) Is(target error) bool {
	return target == ErrMissingProduct || target == ErrProductNotFound
}

// Unwrap returns the underlying error
func (e *MissingProductError) Unwrap() error {
	return ErrMissingProduct
}

// LogFields returns a map of fields for structured logging
func (e *MissingProductError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "missing_product",
		"product_id":  e.ProductID,
		"line_number": e.LineNumber,
		"error_code":  CodeMissingProduct,
	}
}

// NewMissingProductError creates a detailed missing product error
func NewMissingProductError(productID uint64, lineNumber int) error {
	return &MissingProductError{ProductID: productID, LineNumber: lineNumber}
}

// DuplicateCodeError carries the product code that collided.
type DuplicateCodeError struct {
	Code string
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("product code %q already exists", e.Code)
}

// Is checks if the target error is an ErrDuplicateCode
func (e *DuplicateCodeError) Is(target error) bool {
	return target == ErrDuplicateCode
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateCodeError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "duplicate_code",
		"code":       e.Code,
		"error_code": CodeDuplicateCode,
	}
}

// NewDuplicateCodeError creates a new detailed duplicate code error
func NewDuplicateCodeError(code string) error {
	return &DuplicateCodeError{Code: code}
}

// IsValidationError checks if the error is a constraint violation on input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrEmptyLineItems)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsDuplicateCodeError checks if the error is a product code collision
func IsDuplicateCodeError(err error) bool {
	return errors.Is(err, ErrDuplicateCode)
}

// IsStorageError checks if the store failed to complete the operation
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorageFailure)
}
