package logger

import (
	"errors"
	"testing"

	"github.com/kondo-pos/pos-backend/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerLevels(t *testing.T) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	obsCore, logs := observer.New(level)
	log := NewFromCore(obsCore, level)

	log.Debug("hidden", nil)
	log.Info("Purchase recorded", map[string]any{"totalAmount": int64(270)})
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Purchase recorded", logs.All()[0].Message)
	assert.Equal(t, int64(270), logs.All()[0].ContextMap()["totalAmount"])

	log.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	log.Debug("now visible", nil)
	assert.Equal(t, 2, logs.Len())

	log.SetLevel(core.LogLevelError)
	log.Warn("suppressed", nil)
	log.Error("kept", map[string]any{"error": errors.New("boom")})
	assert.Equal(t, 3, logs.Len())
	entry := logs.All()[2]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "boom", entry.ContextMap()["error"])
}

func TestZapLoggerWith(t *testing.T) {
	level := zap.NewAtomicLevelAt(zap.DebugLevel)
	obsCore, logs := observer.New(level)
	log := NewFromCore(obsCore, level).With(map[string]any{"requestId": "abc"})

	log.Info("handled", map[string]any{"status": 200})

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "abc", fields["requestId"])
	assert.EqualValues(t, 200, fields["status"])
}

func TestNewZapLogger(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		t.Run(format, func(t *testing.T) {
			log, err := NewZapLogger(Options{Level: "warn", Format: format})

			require.NoError(t, err)
			assert.Equal(t, core.LogLevelWarn, log.GetLevel())
		})
	}
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelError)

	assert.Equal(t, core.LogLevelError, log.GetLevel())
	assert.Same(t, log, log.With(map[string]any{"a": 1}))
	assert.NoError(t, log.Flush())
}
