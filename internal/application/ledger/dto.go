package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/ledger/backend/internal/domain/ledger"
	"github.com/ledger/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Amount      string    `json:"amount"`
	Category    uuid.UUID `json:"category"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateTransactionRequest represents a request to create a transaction
type CreateTransactionRequest struct {
	Type        string          `json:"type" binding:"required"`
	Title       string          `json:"title" binding:"required,max=200"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description" binding:"max=500"`
	Date        string          `json:"date"`
}

// UpdateTransactionRequest is a partial update; absent fields keep their value
type UpdateTransactionRequest struct {
	Type        *string          `json:"type"`
	Title       *string          `json:"title" binding:"omitempty,max=200"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	Date        *string          `json:"date"`
}

// SummaryResponse is the income/expense/balance triple rendered with cent precision
type SummaryResponse struct {
	TotalIncome   string `json:"totalIncome"`
	TotalExpenses string `json:"totalExpenses"`
	Balance       string `json:"balance"`
}

// MonthlySummaryResponse is the summary of one calendar month
type MonthlySummaryResponse struct {
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Period string `json:"period"`
	SummaryResponse
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// ActivityResponse represents one activity log line
type ActivityResponse struct {
	ID            uuid.UUID `json:"id"`
	Action        string    `json:"action"`
	TransactionID uuid.UUID `json:"transactionId"`
	Detail        string    `json:"detail"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func toTransactionResponse(t *ledger.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Type:        t.Type.String(),
		Title:       t.Title,
		Amount:      t.Amount.String(),
		Category:    t.CategoryID,
		Description: t.Description,
		Date:        t.OccurredAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func formatDecimal(d decimal.Decimal) string {
	return d.StringFixed(valueobject.AmountPlaces)
}

func toSummaryResponse(s ledger.Summary) SummaryResponse {
	return SummaryResponse{
		TotalIncome:   formatDecimal(s.TotalIncome),
		TotalExpenses: formatDecimal(s.TotalExpenses),
		Balance:       formatDecimal(s.Balance),
	}
}

func toMonthlySummaryResponse(m ledger.MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Year:            m.Year,
		Month:           m.Month,
		Period:          m.Period,
		SummaryResponse: toSummaryResponse(m.Summary),
	}
}

func toCategoryResponse(c *ledger.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

func toActivityResponse(e ledger.ActivityEntry) ActivityResponse {
	return ActivityResponse{
		ID:            e.ID,
		Action:        string(e.Action),
		TransactionID: e.TransactionID,
		Detail:        e.Detail,
		OccurredAt:    e.OccurredAt,
	}
}
