package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	domainerr "github.com/kondo-pos/pos-backend/internal/domain/error"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/api/dto"
)

// dateLayouts are tried in order; layouts without a zone use the register's location
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// statusFor maps a domain error to an HTTP status code
func statusFor(err error) int {
	switch {
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsDuplicateCodeError(err):
		return http.StatusConflict
	case domainerr.IsStorageError(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the standard error body. Server-side failures hide their cause.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	status := statusFor(err)
	message := err.Error()
	switch status {
	case http.StatusServiceUnavailable:
		message = "Storage temporarily unavailable"
	case http.StatusInternalServerError:
		message = "Internal server error"
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// invalidRequest wraps a parsing problem as ErrInvalidRequest
func invalidRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// parseID reads a positive numeric path parameter
func parseID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, invalidRequest("%s must be a positive integer", name)
	}
	return id, nil
}

// parseDate accepts RFC 3339, a local date-time or a bare date. An empty value yields nil.
func parseDate(field, value string, loc *time.Location) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return &t, nil
		}
	}
	return nil, domainerr.NewValidationError(field, "must be a date (2006-01-02) or date-time (RFC 3339)")
}

// bindError turns a gin binding failure into ErrInvalidRequest
func bindError(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return invalidRequest("%s is not a number", numErr.Num)
	}
	return invalidRequest("%s", err.Error())
}
