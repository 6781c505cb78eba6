package database

import (
	"context"
	"errors"
	"fmt"

	domainErr "github.com/kondo-pos/pos-backend/internal/domain/error"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/repository"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error to a domain error. Errors that already carry
// a domain meaning pass through unchanged.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if isDomainError(err) {
		return err
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %s interrupted: %w", domainErr.ErrStorageFailure, operation, err)
	case m.classifier.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %s", domainErr.ErrDuplicateCode, err.Error())
	default:
		return fmt.Errorf("%w: %s: %w", domainErr.ErrStorageFailure, operation, err)
	}
}

// IsRetryable reports whether the whole unit of work may be run again
func (m *ErrorMapper) IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	// a lost connection during COMMIT leaves the outcome unknown
	var commitErr *commitError
	if errors.As(err, &commitErr) {
		return m.classifier.IsLockError(err)
	}
	switch m.classifier.Classify(err) {
	case repository.LockError, repository.TransientError:
		return true
	default:
		return false
	}
}

// ErrorType names the class of a driver error for log fields, "unknown" when unclassified
func (m *ErrorMapper) ErrorType(err error) string {
	if errorType := m.classifier.Classify(err); errorType != "" {
		return string(errorType)
	}
	return "unknown"
}

func isDomainError(err error) bool {
	return domainErr.IsValidationError(err) ||
		domainErr.IsNotFoundError(err) ||
		domainErr.IsDuplicateCodeError(err) ||
		domainErr.IsStorageError(err) ||
		errors.Is(err, domainErr.ErrInternalServer)
}
