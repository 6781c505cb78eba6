package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
	"github.com/kondo-pos/pos-backend/internal/domain/port/persistence"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/database/migration"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// poolMonitorInterval is how often pool statistics are sampled
const poolMonitorInterval = 30 * time.Second

// Manager manages database connections
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	migrationMgr      *migration.MigrationManager
	connectionMonitor *ConnectionPoolMonitor
	healthChecker     *HealthChecker
	timeProvider      coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Connect opens the connection pool, retrying RetryAttempts times
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"target": m.config.SafeTarget(),
	})

	dialector, err := m.config.Dialector()
	if err != nil {
		return nil, err
	}

	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var gormDB *gorm.DB
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      attempts,
				"delay":   m.config.RetryDelay.String(),
			})
			select {
			case <-time.After(m.config.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		gormDB, err = m.open(ctx, dialector)
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":            m.config.Driver,
		"target":            m.config.SafeTarget(),
		"max_open_conns":    m.config.MaxOpenConns,
		"max_idle_conns":    m.config.MaxIdleConns,
		"conn_max_lifetime": m.config.ConnMaxLifetime.String(),
		"isolation":         m.config.IsolationLevel,
	})

	m.db = gormDB
	m.healthChecker = NewHealthChecker(gormDB, m.logger, m.timeProvider)
	m.migrationMgr = migration.NewMigrationManager(gormDB, m.logger, m.timeProvider)
	m.connectionMonitor = NewConnectionPoolMonitor(gormDB, m.logger)

	if err := m.connectionMonitor.Start(poolMonitorInterval); err != nil {
		m.logger.Warn("Failed to start connection pool monitoring", map[string]any{"error": err.Error()})
	}

	return m.db, nil
}

func (m *Manager) open(ctx context.Context, dialector gorm.Dialector) (*gorm.DB, error) {
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel, m.config.SlowQueryThreshold),
		NowFunc: func() time.Time {
			return m.timeProvider.Now().UTC()
		},
		// SQLite statements are cheap to compile and a cached statement pins the single connection
		PrepareStmt:    m.config.Driver != DriverSQLite,
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, m.config.QueryTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return gormDB, nil
}

// Migrate brings the schema up to date
func (m *Manager) Migrate(ctx context.Context) error {
	if m.migrationMgr == nil {
		return fmt.Errorf("database is not connected")
	}
	return m.migrationMgr.MigrateAll(ctx)
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}

// Ping reports whether the database answers within the ping timeout
func (m *Manager) Ping(ctx context.Context) error {
	if m.healthChecker == nil {
		return fmt.Errorf("database is not connected")
	}
	return m.healthChecker.Check(ctx)
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	retry := DefaultRetryConfig()
	if m.config.RetryAttempts > 0 {
		retry.MaxRetries = m.config.RetryAttempts
	}
	return NewUnitOfWork(m.db, m.logger, m.timeProvider, m.config.TxOptions(), retry, m.config.SlowQueryThreshold)
}

// ProductRepository returns a product repository outside of any unit of work
func (m *Manager) ProductRepository() persistence.ProductRepository {
	return repository.NewProductRepository(m.db, m.timeProvider, m.logger)
}

// TransactionRepository returns a transaction repository outside of any unit of work
func (m *Manager) TransactionRepository() persistence.TransactionRepository {
	return repository.NewTransactionRepository(m.db, m.timeProvider, m.logger)
}

// SalesRepository returns the aggregate query repository
func (m *Manager) SalesRepository() persistence.SalesRepository {
	return repository.NewSalesRepository(m.db, m.timeProvider, m.logger)
}
