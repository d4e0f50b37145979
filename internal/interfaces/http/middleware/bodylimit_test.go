package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBodyLimit(t *testing.T) {
	newRouter := func(limit int64) *gin.Engine {
		router := gin.New()
		router.Use(BodyLimit(limit))
		router.POST("/test", func(c *gin.Context) {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				c.Status(http.StatusRequestEntityTooLarge)
				return
			}
			c.String(http.StatusOK, string(body))
		})
		return router
	}

	t.Run("within limit", func(t *testing.T) {
		w := serve(newRouter(10), httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("hello")))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "hello", w.Body.String())
	})

	t.Run("declared length over limit", func(t *testing.T) {
		w := serve(newRouter(4), httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("hello")))
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_REQUEST_TOO_LARGE")
	})

	t.Run("streamed body over limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("hello world"))
		req.ContentLength = -1
		w := serve(newRouter(4), req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("zero disables", func(t *testing.T) {
		w := serve(newRouter(0), httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("hello")))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
