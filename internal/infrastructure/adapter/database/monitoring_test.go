package database

import (
	"context"
	"errors"
	"testing"
	"time"

	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
	coremocks "github.com/kondo-pos/pos-backend/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func TestMetricsCollector_Measure(t *testing.T) {
	start := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

	t.Run("slow operation is reported with request id", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(start).Once()
		mockTime.EXPECT().Since(start).Return(coreport.Duration(300 * time.Millisecond)).Once()

		var fields map[string]any
		mockLogger.EXPECT().Warn("Slow database operation detected", mock.Anything).
			Run(func(args mock.Arguments) { fields = args.Get(1).(map[string]any) }).Once()

		collector := NewMetricsCollector(mockLogger, mockTime, 200*time.Millisecond)
		ctx := coreport.WithRequestID(context.Background(), "req-1")
		failure := errors.New("boom")

		metrics, err := collector.Measure(ctx, "unit of work", func() error { return failure })

		assert.Same(t, failure, err)
		require.NotNil(t, metrics)
		assert.True(t, metrics.Failed)
		assert.Equal(t, 300*time.Millisecond, metrics.Duration)
		assert.Equal(t, "req-1", fields["request_id"])
		assert.Equal(t, int64(300), fields["duration_ms"])
	})

	t.Run("fast operation is silent", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(start).Once()
		mockTime.EXPECT().Since(start).Return(coreport.Duration(5 * time.Millisecond)).Once()

		collector := NewMetricsCollector(mockLogger, mockTime, 200*time.Millisecond)

		metrics, err := collector.Measure(context.Background(), "unit of work", func() error { return nil })

		require.NoError(t, err)
		assert.False(t, metrics.Failed)
		assert.Empty(t, metrics.ErrorMessage)
	})
}

func TestConnectionPoolMetrics_Saturated(t *testing.T) {
	assert.False(t, ConnectionPoolMetrics{}.Saturated())
	assert.False(t, ConnectionPoolMetrics{MaxOpenConnections: 15, InUse: 12}.Saturated())
	assert.True(t, ConnectionPoolMetrics{MaxOpenConnections: 15, InUse: 13}.Saturated())
}

func TestParseGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, ParseGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Warn, ParseGormLogLevel("WARN"))
	assert.Equal(t, gormlogger.Info, ParseGormLogLevel("debug"))
}

func TestQueryParsing(t *testing.T) {
	assert.Equal(t, "SELECT", extractQueryType("  select * from products"))
	assert.Equal(t, "INSERT", extractQueryType("INSERT INTO transactions ..."))
	assert.Equal(t, "products", extractTableName(`SELECT * FROM "products" WHERE id = 1`))
	assert.Equal(t, "transaction_line_items", extractTableName("INSERT INTO `transaction_line_items` (`a`) VALUES (1)"))
	assert.Equal(t, "transactions", extractTableName("UPDATE transactions SET total_amount = 1"))
}
