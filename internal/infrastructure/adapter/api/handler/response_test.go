package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	domainerr "github.com/kondo-pos/pos-backend/internal/domain/error"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/api/dto"
	coremocks "github.com/kondo-pos/pos-backend/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var jst = time.FixedZone("JST", 9*60*60)

func init() {
	gin.SetMode(gin.TestMode)
}

// quietLogger accepts any log call
func quietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

// serve registers h under method+route and performs one request against it
func serve(method, route, target string, body io.Reader, h gin.HandlerFunc) *httptest.ResponseRecorder {
	router := gin.New()
	router.Handle(method, route, h)

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", domainerr.NewValidationError("price", "must not be negative"), http.StatusBadRequest},
		{"invalid request", invalidRequest("bad"), http.StatusBadRequest},
		{"empty line items", domainerr.ErrEmptyLineItems, http.StatusBadRequest},
		{"product not found", domainerr.ErrProductNotFound, http.StatusNotFound},
		{"transaction not found", domainerr.ErrTransactionNotFound, http.StatusNotFound},
		{"missing product", domainerr.NewMissingProductError(99, 1), http.StatusNotFound},
		{"duplicate code", domainerr.NewDuplicateCodeError("4901234567890"), http.StatusConflict},
		{"storage", fmt.Errorf("%w: connection reset", domainerr.ErrStorageFailure), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, statusFor(tt.err))
		})
	}
}

func TestRespondError_HidesServerSideCause(t *testing.T) {
	rec := serve(http.MethodGet, "/", "/", nil, func(c *gin.Context) {
		respondError(c, fmt.Errorf("%w: dial tcp 10.0.0.5:5432", domainerr.ErrStorageFailure))
	})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, domainerr.CodeStorageFailure, body.Code)
	assert.NotContains(t, body.Message, "10.0.0.5")
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected *time.Time
		wantErr  bool
	}{
		{name: "empty", value: "", expected: nil},
		{name: "bare date is local midnight", value: "2024-04-01", expected: ptr(time.Date(2024, 4, 1, 0, 0, 0, 0, jst))},
		{name: "local date-time", value: "2024-04-01T13:30:00", expected: ptr(time.Date(2024, 4, 1, 13, 30, 0, 0, jst))},
		{name: "space separated", value: "2024-04-01 13:30:00", expected: ptr(time.Date(2024, 4, 1, 13, 30, 0, 0, jst))},
		{name: "RFC 3339 keeps its offset", value: "2024-04-01T04:30:00Z", expected: ptr(time.Date(2024, 4, 1, 13, 30, 0, 0, jst))},
		{name: "garbage", value: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate("start_date", tt.value, jst)

			if tt.wantErr {
				assert.ErrorIs(t, err, domainerr.ErrValidation)
				return
			}
			require.NoError(t, err)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.expected.Equal(*got), "got %v", got)
		})
	}
}

func TestParseID(t *testing.T) {
	for _, raw := range []string{"0", "-1", "abc"} {
		t.Run(raw, func(t *testing.T) {
			rec := serve(http.MethodGet, "/items/:id", "/items/"+raw, nil, func(c *gin.Context) {
				_, err := parseID(c, "id")
				assert.ErrorIs(t, err, domainerr.ErrInvalidRequest)
				c.Status(http.StatusNoContent)
			})
			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
