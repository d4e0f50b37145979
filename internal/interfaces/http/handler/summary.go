package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appledger "github.com/ledger/backend/internal/application/ledger"
	"github.com/ledger/backend/internal/domain/ledger"
	"github.com/ledger/backend/internal/domain/shared"
)

// SummaryReader computes income and expense summaries
type SummaryReader interface {
	Summarize(ctx context.Context, ownerID uuid.UUID, window ledger.Window) (*appledger.SummaryResponse, error)
	SummaryAllTime(ctx context.Context, ownerID uuid.UUID) (*appledger.SummaryResponse, error)
	SummaryCurrentPeriod(ctx context.Context, ownerID uuid.UUID) (*appledger.SummaryResponse, error)
	SummaryForMonth(ctx context.Context, ownerID uuid.UUID, year, month int) (*appledger.MonthlySummaryResponse, error)
	SummaryByMonth(ctx context.Context, ownerID uuid.UUID) ([]appledger.MonthlySummaryResponse, error)
}

// SummaryHandler handles /summary
type SummaryHandler struct {
	BaseHandler
	normalizer *appledger.FilterNormalizer
	summaries  SummaryReader
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(normalizer *appledger.FilterNormalizer, summaries SummaryReader) *SummaryHandler {
	return &SummaryHandler{normalizer: normalizer, summaries: summaries}
}

// Get handles GET /summary. Without dates it is the all-time summary.
func (h *SummaryHandler) Get(c *gin.Context) {
	ownerID, ok := h.OwnerID(c)
	if !ok {
		return
	}

	window, err := h.normalizer.NormalizeWindow(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var summary *appledger.SummaryResponse
	if window.IsUnbounded() {
		summary, err = h.summaries.SummaryAllTime(c.Request.Context(), ownerID)
	} else {
		summary, err = h.summaries.Summarize(c.Request.Context(), ownerID, window)
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// Monthly handles GET /summary/monthly
func (h *SummaryHandler) Monthly(c *gin.Context) {
	ownerID, ok := h.OwnerID(c)
	if !ok {
		return
	}
	months, err := h.summaries.SummaryByMonth(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, months)
}

// Current handles GET /summary/current
func (h *SummaryHandler) Current(c *gin.Context) {
	ownerID, ok := h.OwnerID(c)
	if !ok {
		return
	}
	summary, err := h.summaries.SummaryCurrentPeriod(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// Month handles GET /summary/months/:year/:month
func (h *SummaryHandler) Month(c *gin.Context) {
	ownerID, ok := h.OwnerID(c)
	if !ok {
		return
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		h.HandleError(c, shared.NewValidationError("year", "year must be an integer"))
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		h.HandleError(c, shared.NewValidationError("month", "month must be an integer"))
		return
	}

	summary, err := h.summaries.SummaryForMonth(c.Request.Context(), ownerID, year, month)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}
