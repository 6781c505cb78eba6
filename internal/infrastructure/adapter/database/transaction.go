package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
	"github.com/kondo-pos/pos-backend/internal/domain/port/persistence"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	errorMapper  *ErrorMapper
	txOptions    *sql.TxOptions
	retryConfig  RetryConfig
	metrics      *MetricsCollector
}

// NewUnitOfWork creates a new UnitOfWork instance. txOptions may be nil to use
// the driver's default isolation level.
func NewUnitOfWork(
	db *gorm.DB,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	txOptions *sql.TxOptions,
	retryConfig RetryConfig,
	slowThreshold time.Duration,
) *UnitOfWork {
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		errorMapper:  NewErrorMapper(),
		txOptions:    txOptions,
		retryConfig:  retryConfig,
		metrics:      NewMetricsCollector(logger, timeProvider, slowThreshold),
	}
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	fields := map[string]any{}
	if u.txOptions != nil {
		fields["isolation"] = u.txOptions.Isolation.String()
	}
	u.logger.Debug("Beginning database transaction", fields)

	var tx *gorm.DB
	if u.txOptions != nil {
		tx = u.db.WithContext(ctx).Begin(u.txOptions)
	} else {
		tx = u.db.WithContext(ctx).Begin()
	}
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{
			"error":      tx.Error.Error(),
			"error_type": u.errorMapper.ErrorType(tx.Error),
		})
		return ctx, u.errorMapper.MapError(tx.Error, "begin transaction")
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Committing database transaction", nil)
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{
			"error":      err.Error(),
			"error_type": u.errorMapper.ErrorType(err),
		})
		return u.errorMapper.MapError(err, "commit transaction")
	}

	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error

	// A cancelled context makes database/sql roll back on its own
	if err != nil && (errors.Is(err, sql.ErrTxDone) ||
		strings.Contains(err.Error(), "already been committed or rolled back")) {
		u.logger.Debug("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return u.errorMapper.MapError(err, "rollback transaction")
	}

	return nil
}

// Do runs fn inside a transaction. A Do nested in another joins the outer transaction.
func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}

	return RetryOnTransientError(ctx, u.retryConfig, func() error {
		_, err := u.metrics.Measure(ctx, "unit of work", func() error {
			return u.runOnce(ctx, fn)
		})
		return err
	}, u.errorMapper, u.logger)
}

func (u *UnitOfWork) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	txCtx, err := u.Begin(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if r := recover(); r != nil {
			_ = u.Rollback(txCtx)
			panic(r)
		}
		if rbErr := u.Rollback(txCtx); rbErr != nil {
			u.logger.Warn("Rollback after failed unit of work returned an error", map[string]any{
				"error": rbErr.Error(),
			})
		}
	}()

	if err := fn(txCtx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return u.errorMapper.MapError(err, "unit of work")
	}
	if err := u.Commit(txCtx); err != nil {
		return &commitError{err: err}
	}
	committed = true
	return nil
}

// commitError is a failure reported by COMMIT itself. Unless the server
// rejected the commit outright, the transaction may already be durable.
type commitError struct {
	err error
}

func (e *commitError) Error() string { return e.err.Error() }

func (e *commitError) Unwrap() error { return e.err }

// GetProductRepository returns a product repository in the current transaction
func (u *UnitOfWork) GetProductRepository(ctx context.Context) persistence.ProductRepository {
	return repository.NewProductRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetTransactionRepository returns a transaction repository in the current transaction
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return repository.NewTransactionRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
