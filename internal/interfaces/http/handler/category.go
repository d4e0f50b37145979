package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appledger "github.com/ledger/backend/internal/application/ledger"
)

// CategoryManager creates and lists categories
type CategoryManager interface {
	Create(ctx context.Context, ownerID uuid.UUID, req appledger.CreateCategoryRequest) (*appledger.CategoryResponse, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]appledger.CategoryResponse, error)
}

// CategoryHandler handles /categories
type CategoryHandler struct {
	BaseHandler
	categories CategoryManager
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categories CategoryManager) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// Create handles POST /categories
func (h *CategoryHandler) Create(c *gin.Context) {
	ownerID, ok := h.OwnerID(c)
	if !ok {
		return
	}
	var req appledger.CreateCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	category, err := h.categories.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, category)
}

// List handles GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	ownerID, ok := h.OwnerID(c)
	if !ok {
		return
	}
	categories, err := h.categories.List(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}
