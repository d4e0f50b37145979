package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestLimiter(t *testing.T, limit int, window time.Duration) (*RateLimiter, *time.Time) {
	t.Helper()
	rl := NewRateLimiter(limit, window)
	t.Cleanup(rl.Stop)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	return rl, &now
}

func TestRateLimiter(t *testing.T) {
	t.Run("allows up to limit then blocks", func(t *testing.T) {
		rl, _ := newTestLimiter(t, 3, time.Minute)
		assert.True(t, rl.Allow("a"))
		assert.True(t, rl.Allow("a"))
		assert.True(t, rl.Allow("a"))
		assert.False(t, rl.Allow("a"))
		assert.Equal(t, 0, rl.Remaining("a"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		rl, _ := newTestLimiter(t, 1, time.Minute)
		assert.True(t, rl.Allow("a"))
		assert.False(t, rl.Allow("a"))
		assert.True(t, rl.Allow("b"))
	})

	t.Run("window reset", func(t *testing.T) {
		rl, now := newTestLimiter(t, 1, time.Minute)
		assert.True(t, rl.Allow("a"))
		assert.False(t, rl.Allow("a"))
		*now = now.Add(time.Minute)
		assert.True(t, rl.Allow("a"))
	})

	t.Run("remaining for unknown key", func(t *testing.T) {
		rl, _ := newTestLimiter(t, 5, time.Minute)
		assert.Equal(t, 5, rl.Remaining("nobody"))
	})

	t.Run("idle clients evicted", func(t *testing.T) {
		rl, now := newTestLimiter(t, 5, time.Minute)
		rl.Allow("a")
		*now = now.Add(3 * time.Minute)
		rl.evictIdle()
		rl.mu.Lock()
		defer rl.mu.Unlock()
		assert.Empty(t, rl.clients)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	rl, _ := newTestLimiter(t, 2, time.Minute)

	router := gin.New()
	router.Use(RateLimit(rl))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(router, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	serve(router, httptest.NewRequest(http.MethodGet, "/test", nil))
	w = serve(router, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "ERR_RATE_LIMITED")
}
