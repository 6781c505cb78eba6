package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
	"gorm.io/gorm"
)

// poolSaturationRatio is the share of MaxOpenConnections in use above which the monitor warns
const poolSaturationRatio = 0.8

// ConnectionPoolMetrics tracks database connection pool metrics
type ConnectionPoolMetrics struct {
	OpenConnections    int
	IdleConnections    int
	MaxOpenConnections int
	InUse              int
	WaitCount          int64
	WaitDuration       time.Duration
	MaxIdleClosed      int64
	MaxLifetimeClosed  int64
}

func metricsFromStats(stats sql.DBStats) ConnectionPoolMetrics {
	return ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
	}
}

// Saturated reports whether the pool is close to exhaustion
func (m ConnectionPoolMetrics) Saturated() bool {
	if m.MaxOpenConnections <= 0 {
		return false
	}
	return float64(m.InUse) > float64(m.MaxOpenConnections)*poolSaturationRatio
}

// ConnectionPoolMonitor periodically samples pool statistics
type ConnectionPoolMonitor struct {
	db       *gorm.DB
	logger   coreport.Logger
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(db *gorm.DB, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		db:       db,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start begins monitoring the connection pool
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if err := m.collectMetrics(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := m.collectMetrics(); err != nil {
					m.logger.Error("Failed to collect connection pool metrics", map[string]any{
						"error": err.Error(),
					})
				}
			case <-m.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop stops the monitoring. It is safe to call more than once.
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

func (m *ConnectionPoolMonitor) collectMetrics() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	metrics := metricsFromStats(sqlDB.Stats())
	if metrics.Saturated() {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     metrics.InUse,
			"max_open":   metrics.MaxOpenConnections,
			"idle":       metrics.IdleConnections,
			"wait_count": metrics.WaitCount,
			"wait_time":  metrics.WaitDuration.String(),
		})
	}

	return nil
}

// HealthChecker probes database liveness
type HealthChecker struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	pingTimeout  time.Duration
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *HealthChecker {
	return &HealthChecker{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		pingTimeout:  2 * time.Second,
	}
}

// Check pings the database within the ping timeout
func (h *HealthChecker) Check(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	pingCtx, cancel := h.timeProvider.WithTimeout(ctx, coreport.Duration(h.pingTimeout))
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		h.logger.Error("Database ping failed", map[string]any{
			"error": err.Error(),
		})
		return err
	}
	return nil
}
