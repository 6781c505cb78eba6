package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	coremocks "github.com/kondo-pos/pos-backend/mocks/port/core"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}

func newHealthHandler(t *testing.T, store Pinger) *HealthHandler {
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(time.Date(2024, 4, 1, 9, 0, 0, 0, jst)).Maybe()
	return NewHealthHandler(store, tp, quietLogger(t), "1.2.3")
}

func TestHealthHandler_Info(t *testing.T) {
	h := newHealthHandler(t, stubPinger{})

	rec := serve(http.MethodGet, "/", "/", nil, h.Info)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"POS System API","version":"1.2.3","status":"running"}`, rec.Body.String())
}

func TestHealthHandler_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		h := newHealthHandler(t, stubPinger{})

		rec := serve(http.MethodGet, "/health", "/health", nil, h.Health)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"healthy","database":"connected","timestamp":"2024-04-01T09:00:00+09:00"}`, rec.Body.String())
	})

	t.Run("store down", func(t *testing.T) {
		h := newHealthHandler(t, stubPinger{err: errors.New("connection refused")})

		rec := serve(http.MethodGet, "/health", "/health", nil, h.Health)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"database":"disconnected"`)
	})
}
