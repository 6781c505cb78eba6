package database

import (
	"context"
	"time"

	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
)

// OperationMetrics holds metrics about a database operation
type OperationMetrics struct {
	Operation    string
	Duration     time.Duration
	Failed       bool
	ErrorMessage string
}

// MetricsCollector times database operations and reports the slow ones
type MetricsCollector struct {
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	slowThreshold time.Duration
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider, slowThreshold time.Duration) *MetricsCollector {
	return &MetricsCollector{
		logger:        logger,
		timeProvider:  timeProvider,
		slowThreshold: slowThreshold,
	}
}

// Measure runs fn and logs it when it exceeds the slow threshold
func (c *MetricsCollector) Measure(ctx context.Context, operation string, fn func() error) (*OperationMetrics, error) {
	start := c.timeProvider.Now()

	err := fn()

	metrics := &OperationMetrics{
		Operation: operation,
		Duration:  c.timeProvider.Since(start).Std(),
		Failed:    err != nil,
	}
	if err != nil {
		metrics.ErrorMessage = err.Error()
	}

	if c.slowThreshold > 0 && metrics.Duration > c.slowThreshold {
		fields := map[string]any{
			"operation":     operation,
			"duration_ms":   metrics.Duration.Milliseconds(),
			"threshold_ms":  c.slowThreshold.Milliseconds(),
			"failed":        metrics.Failed,
			"error_message": metrics.ErrorMessage,
		}
		if requestID := coreport.RequestIDFromContext(ctx); requestID != "" {
			fields["request_id"] = requestID
		}
		c.logger.Warn("Slow database operation detected", fields)
	}

	return metrics, err
}
