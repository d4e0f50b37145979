package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledger/backend/internal/infrastructure/logger"
	"github.com/ledger/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Pinger checks that a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	BaseHandler
	db        Pinger
	startTime time.Time
	timeout   time.Duration
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, startTime: time.Now(), timeout: 2 * time.Second}
}

// HealthResponse is the body of both probes
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	h.Success(c, HealthResponse{Status: "ok", Uptime: h.uptime()})
}

// Ready handles GET /ready, failing with 503 while the database is unreachable
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logger.L(c.Request.Context()).Warn("Readiness check failed", zap.Error(err))
		h.Error(c, dto.ErrCodeServiceUnavailable, "Database unavailable")
		return
	}
	h.Success(c, HealthResponse{Status: "ready", Uptime: h.uptime()})
}

func (h *HealthHandler) uptime() string {
	return time.Since(h.startTime).Round(time.Second).String()
}
