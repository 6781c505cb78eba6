package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/api/dto"
)

// Pinger reports whether the store answers
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the service info and liveness endpoints
type HealthHandler struct {
	store        Pinger
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	version      string
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(store Pinger, timeProvider coreport.TimeProvider, logger coreport.Logger, version string) *HealthHandler {
	return &HealthHandler{
		store:        store,
		timeProvider: timeProvider,
		logger:       logger,
		version:      version,
	}
}

// Info handles GET /
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ServiceInfoResponse{
		Message: "POS System API",
		Version: h.version,
		Status:  "running",
	})
}

// Health handles GET /health, answering 503 when the store does not respond
func (h *HealthHandler) Health(c *gin.Context) {
	resp := dto.HealthResponse{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: h.timeProvider.Now().Format(time.RFC3339),
	}

	if err := h.store.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("Health check failed", map[string]any{
			"error": err.Error(),
		})
		resp.Status = "unhealthy"
		resp.Database = "disconnected"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
