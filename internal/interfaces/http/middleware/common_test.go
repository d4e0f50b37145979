package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ledger/backend/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCORSWithConfig(t *testing.T) {
	tests := []struct {
		name        string
		origins     []string
		method      string
		origin      string
		wantStatus  int
		wantAllowed string
		wantCreds   string
	}{
		{"no origins configured", nil, http.MethodGet, "https://app.example.com", http.StatusOK, "", ""},
		{"whitelisted origin", []string{"https://app.example.com"}, http.MethodGet, "https://app.example.com", http.StatusOK, "https://app.example.com", "true"},
		{"unknown origin", []string{"https://app.example.com"}, http.MethodGet, "https://evil.example.com", http.StatusOK, "", ""},
		{"wildcard", []string{"*"}, http.MethodGet, "https://any.example.com", http.StatusOK, "*", ""},
		{"preflight allowed", []string{"https://app.example.com"}, http.MethodOptions, "https://app.example.com", http.StatusNoContent, "https://app.example.com", "true"},
		{"preflight unknown origin", []string{"https://app.example.com"}, http.MethodOptions, "https://evil.example.com", http.StatusNoContent, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultCORSConfig()
			cfg.AllowOrigins = tt.origins

			router := gin.New()
			router.Use(CORSWithConfig(cfg))
			router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tt.method, "/test", nil)
			req.Header.Set("Origin", tt.origin)
			w := serve(router, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantAllowed, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCreds, w.Header().Get("Access-Control-Allow-Credentials"))
			if tt.wantAllowed != "" {
				assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), IdempotencyKeyHeader)
				assert.Equal(t, "43200", w.Header().Get("Access-Control-Max-Age"))
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		assert.Equal(t, GetRequestID(c), logger.GetRequestID(c.Request.Context()))
		c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generated", func(t *testing.T) {
		w := serve(router, httptest.NewRequest(http.MethodGet, "/test", nil))
		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(RequestIDHeader, "client-id-1")
		w := serve(router, req)
		assert.Equal(t, "client-id-1", w.Header().Get(RequestIDHeader))
	})

	t.Run("truncated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("a", 500))
		w := serve(router, req)
		assert.Len(t, w.Header().Get(RequestIDHeader), MaxRequestIDLength)
	})
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), Recovery(zap.NewNop()))
	router.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	w := serve(router, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), `"code":"ERR_INTERNAL"`)
	assert.Contains(t, w.Body.String(), `"request_id":"req-7"`)
	assert.NotContains(t, w.Body.String(), "kaboom")
}

func TestSecureWithConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		router := gin.New()
		router.Use(SecureWithConfig(DefaultSecurityConfig()))
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := serve(router, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
		assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
		assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
	})

	t.Run("hsts", func(t *testing.T) {
		cfg := DefaultSecurityConfig()
		cfg.HSTSEnabled = true

		router := gin.New()
		router.Use(SecureWithConfig(cfg))
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := serve(router, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, "max-age=31536000; includeSubDomains", w.Header().Get("Strict-Transport-Security"))
	})
}
