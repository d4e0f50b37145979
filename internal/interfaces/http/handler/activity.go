package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appledger "github.com/ledger/backend/internal/application/ledger"
	"github.com/ledger/backend/internal/domain/shared"
	"github.com/ledger/backend/internal/interfaces/http/dto"
)

// ActivityReader pages through an owner's activity log
type ActivityReader interface {
	List(ctx context.Context, ownerID uuid.UUID, params shared.PaginationParams) (shared.PaginationResult[appledger.ActivityResponse], error)
}

// ActivityHandler handles /activity
type ActivityHandler struct {
	BaseHandler
	activity ActivityReader
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activity ActivityReader) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// List handles GET /activity?page&limit. Paging input is clamped, never rejected.
func (h *ActivityHandler) List(c *gin.Context) {
	ownerID, ok := h.OwnerID(c)
	if !ok {
		return
	}
	params := shared.ValidateAndParse(shared.RawPagination{
		Page:  c.Query("page"),
		Limit: c.Query("limit"),
	})

	page, err := h.activity.List(c.Request.Context(), ownerID, params)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPagedResponse(page))
}
