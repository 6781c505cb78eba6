package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength bounds ids accepted from clients
const maxRequestIDLength = 64

// RequestID propagates the caller's X-Request-ID, or a fresh UUID, into the
// request context and the response headers
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(coreport.WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
