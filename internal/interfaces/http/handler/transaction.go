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

// TransactionQuerier lists transactions
type TransactionQuerier interface {
	List(ctx context.Context, ownerID uuid.UUID, query appledger.ListQuery) (shared.PaginationResult[appledger.TransactionResponse], error)
}

// TransactionMutator reads and changes single transactions
type TransactionMutator interface {
	Create(ctx context.Context, ownerID uuid.UUID, req appledger.CreateTransactionRequest) (*appledger.TransactionResponse, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*appledger.TransactionResponse, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, req appledger.UpdateTransactionRequest) (*appledger.TransactionResponse, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// TransactionHandler handles /transactions
type TransactionHandler struct {
	BaseHandler
	normalizer *appledger.FilterNormalizer
	query      TransactionQuerier
	mutation   TransactionMutator
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(normalizer *appledger.FilterNormalizer, query TransactionQuerier, mutation TransactionMutator) *TransactionHandler {
	return &TransactionHandler{normalizer: normalizer, query: query, mutation: mutation}
}

// List handles GET /transactions?page&limit&category&startDate&endDate&order
func (h *TransactionHandler) List(c *gin.Context) {
	ownerID, ok := h.OwnerID(c)
	if !ok {
		return
	}

	var raw appledger.RawListQuery
	if err := c.ShouldBindQuery(&raw); err != nil {
		h.Error(c, dto.ErrCodeBadRequest, "Invalid query parameters")
		return
	}
	query, err := h.normalizer.Normalize(raw)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page, err := h.query.List(c.Request.Context(), ownerID, query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPagedResponse(page))
}

// Create handles POST /transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	ownerID, ok := h.OwnerID(c)
	if !ok {
		return
	}
	var req appledger.CreateTransactionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	tx, err := h.mutation.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, tx)
}

// Get handles GET /transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	ownerID, ok := h.OwnerID(c)
	if !ok {
		return
	}
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	tx, err := h.mutation.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tx)
}

// Update handles PUT /transactions/:id as a partial update
func (h *TransactionHandler) Update(c *gin.Context) {
	ownerID, ok := h.OwnerID(c)
	if !ok {
		return
	}
	id, ok := h.PathID(c)
	if !ok {
		return
	}
	var req appledger.UpdateTransactionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	tx, err := h.mutation.Update(c.Request.Context(), ownerID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tx)
}

// Delete handles DELETE /transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	ownerID, ok := h.OwnerID(c)
	if !ok {
		return
	}
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	if err := h.mutation.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Response{Success: true, Message: "Transaction deleted"})
}
