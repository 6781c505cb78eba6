package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
	coremocks "github.com/kondo-pos/pos-backend/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, coreport.RequestIDFromContext(c.Request.Context()))
	})

	t.Run("propagates the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "till-7-0001")

		rec := perform(router, req)

		assert.Equal(t, "till-7-0001", rec.Body.String())
		assert.Equal(t, "till-7-0001", rec.Header().Get(RequestIDHeader))
	})

	t.Run("generates one when absent", func(t *testing.T) {
		rec := perform(router, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(rec.Body.String())
		require.NoError(t, err)
		assert.Equal(t, rec.Body.String(), rec.Header().Get(RequestIDHeader))
	})
}

func TestErrorHandler_RecoversPanics(t *testing.T) {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Error("Panic recovered in API request", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["path"] == "/boom" && fields["error"] == "kaboom"
	})).Once()

	router := gin.New()
	router.Use(ErrorHandler(logger))
	router.GET("/boom", func(*gin.Context) { panic("kaboom") })

	rec := perform(router, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":5000,"message":"Internal server error"}`, rec.Body.String())
}

func TestLogger(t *testing.T) {
	t.Run("client errors log at info", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		logger.EXPECT().Info("Request processed", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["status"] == http.StatusNotFound && fields["status_text"] == "Client Error" &&
				fields["method"] == http.MethodGet && fields["path"] == "/missing"
		})).Once()

		router := gin.New()
		router.Use(Logger(logger))

		perform(router, httptest.NewRequest(http.MethodGet, "/missing", nil))
	})

	t.Run("server errors log at error", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		logger.EXPECT().Error("Request processed", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["status"] == http.StatusServiceUnavailable && fields["errors"] != nil
		})).Once()

		router := gin.New()
		router.Use(Logger(logger))
		router.GET("/", func(c *gin.Context) {
			_ = c.Error(assert.AnError)
			c.Status(http.StatusServiceUnavailable)
		})

		perform(router, httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Informational", statusText(101))
	assert.Equal(t, "Success", statusText(201))
	assert.Equal(t, "Redirect", statusText(304))
	assert.Equal(t, "Client Error", statusText(409))
	assert.Equal(t, "Server Error", statusText(503))
}

func TestCORS(t *testing.T) {
	newRouter := func(origins []string) *gin.Engine {
		router := gin.New()
		router.Use(CORS(origins))
		router.GET("/api/products", func(c *gin.Context) { c.Status(http.StatusOK) })
		return router
	}

	t.Run("listed origin is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.Header.Set("Origin", "http://register.local:3000")

		rec := perform(newRouter([]string{"http://register.local:3000/"}), req)

		assert.Equal(t, "http://register.local:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Origin", rec.Header().Get("Vary"))
	})

	t.Run("unlisted origin is refused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.Header.Set("Origin", "http://evil.example")

		rec := perform(newRouter([]string{"http://register.local:3000"}), req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("empty list refuses cross-origin requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.Header.Set("Origin", "http://register.local:3000")

		rec := perform(newRouter(nil), req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("same-origin requests pass untouched", func(t *testing.T) {
		rec := perform(newRouter(nil), httptest.NewRequest(http.MethodGet, "/api/products", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.Header.Set("Origin", "http://anything.example")

		rec := perform(newRouter([]string{"*"}), req)

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "X-Request-Id", rec.Header().Get("Access-Control-Expose-Headers"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
		req.Header.Set("Origin", "http://anything.example")

		rec := perform(newRouter([]string{"*"}), req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
	})
}

func TestTimeout(t *testing.T) {
	t.Run("sets a deadline", func(t *testing.T) {
		router := gin.New()
		router.Use(Timeout(5 * time.Second))
		router.GET("/", func(c *gin.Context) {
			deadline, ok := c.Request.Context().Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)
			c.Status(http.StatusOK)
		})

		perform(router, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	t.Run("zero disables it", func(t *testing.T) {
		router := gin.New()
		router.Use(Timeout(0))
		router.GET("/", func(c *gin.Context) {
			_, ok := c.Request.Context().Deadline()
			assert.False(t, ok)
			c.Status(http.StatusOK)
		})

		perform(router, httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
