package ledger

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ledger/backend/internal/domain/ledger"
	"github.com/ledger/backend/internal/domain/shared"
)

// DateLayout is the calendar-date format accepted in query parameters
const DateLayout = "2006-01-02"

// RawListQuery is the untyped list input as read from a request
type RawListQuery struct {
	Page      string `form:"page"`
	Limit     string `form:"limit"`
	Category  string `form:"category"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Order     string `form:"order"`
}

// ListQuery is a validated list request
type ListQuery struct {
	Filter     ledger.TransactionFilter
	Pagination shared.PaginationParams
	Order      ledger.SortOrder
}

// FilterNormalizer rejects malformed query input at the boundary.
// Unlike shared.ValidateAndParse it fails instead of clamping.
type FilterNormalizer struct {
	loc *time.Location
}

// NewFilterNormalizer creates a normalizer that reads calendar dates in loc
func NewFilterNormalizer(loc *time.Location) *FilterNormalizer {
	if loc == nil {
		loc = time.UTC
	}
	return &FilterNormalizer{loc: loc}
}

// Normalize validates raw and produces the canonical list query
func (n *FilterNormalizer) Normalize(raw RawListQuery) (ListQuery, error) {
	limit := shared.DefaultLimit
	if raw.Limit != "" {
		n, err := strconv.Atoi(strings.TrimSpace(raw.Limit))
		if err != nil || n < 1 || n > shared.MaxLimit {
			return ListQuery{}, shared.NewValidationError("limit", fmt.Sprintf("limit must be an integer between 1 and %d", shared.MaxLimit))
		}
		limit = n
	}
	if raw.Page != "" {
		page, err := strconv.Atoi(strings.TrimSpace(raw.Page))
		if err != nil || page < 1 {
			return ListQuery{}, shared.NewValidationError("page", "page must be an integer greater than 0")
		}
		if maxPage := shared.MaxPage(limit); page > maxPage {
			return ListQuery{}, shared.NewValidationError("page", fmt.Sprintf("page must not exceed %d for limit %d", maxPage, limit))
		}
	}

	window, err := n.NormalizeWindow(raw.StartDate, raw.EndDate)
	if err != nil {
		return ListQuery{}, err
	}

	order, err := normalizeOrder(raw.Order)
	if err != nil {
		return ListQuery{}, err
	}

	return ListQuery{
		Filter: ledger.TransactionFilter{
			CategoryID: raw.Category,
			StartDate:  window.Start,
			EndDate:    window.End,
		},
		Pagination: shared.ValidateAndParse(shared.RawPagination{Page: raw.Page, Limit: raw.Limit}),
		Order:      order,
	}, nil
}

// NormalizeWindow parses optional inclusive date bounds. A calendar-date end
// bound covers that whole day.
func (n *FilterNormalizer) NormalizeWindow(startDate, endDate string) (ledger.Window, error) {
	var window ledger.Window
	if startDate != "" {
		start, err := n.ParseDate(startDate, false)
		if err != nil {
			return ledger.Window{}, shared.NewValidationError("startDate", "startDate must be a valid date (YYYY-MM-DD)")
		}
		window.Start = &start
	}
	if endDate != "" {
		end, err := n.ParseDate(endDate, true)
		if err != nil {
			return ledger.Window{}, shared.NewValidationError("endDate", "endDate must be a valid date (YYYY-MM-DD)")
		}
		window.End = &end
	}
	return window, nil
}

// ParseDate accepts YYYY-MM-DD or RFC 3339. For a calendar date, endOfDay
// selects the last instant of the day instead of the first.
func (n *FilterNormalizer) ParseDate(value string, endOfDay bool) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.ParseInLocation(DateLayout, value, n.loc); err == nil {
		if endOfDay {
			return t.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
		}
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func normalizeOrder(order string) (ledger.SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(order)) {
	case "", string(ledger.NewestFirst):
		return ledger.NewestFirst, nil
	case string(ledger.OldestFirst):
		return ledger.OldestFirst, nil
	}
	return "", shared.NewValidationError("order", "order must be 'asc' or 'desc'")
}
