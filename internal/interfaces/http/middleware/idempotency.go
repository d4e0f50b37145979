package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledger/backend/internal/domain/shared"
	"github.com/ledger/backend/internal/infrastructure/logger"
	"github.com/ledger/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// MaxIdempotencyKeyLength bounds the Idempotency-Key header
const MaxIdempotencyKeyLength = 255

// Idempotency rejects a replayed Idempotency-Key with 409. Keys are scoped
// to the authenticated owner. A request that fails releases its key so the
// client can retry. Requests without the header pass through.
func Idempotency(store shared.IdempotencyStore, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > MaxIdempotencyKeyLength {
			abortWithError(c, dto.ErrCodeBadRequest, "Idempotency-Key is too long")
			return
		}

		scoped := GetJWTUserID(c) + ":" + key
		ctx := c.Request.Context()
		log := logger.L(ctx)

		fresh, err := store.MarkProcessed(ctx, scoped, ttl)
		if err != nil {
			// fail open
			log.Warn("Idempotency store unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !fresh {
			abortWithError(c, dto.ErrCodeDuplicateRequest, "A request with this Idempotency-Key was already processed")
			return
		}

		c.Next()

		if c.Writer.Status() >= 400 {
			if err := store.Forget(ctx, scoped); err != nil {
				log.Warn("Failed to release idempotency key", zap.Error(err))
			}
		}
	}
}
