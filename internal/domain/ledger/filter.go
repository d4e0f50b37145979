package ledger

import "time"

// SortOrder is the direction of the occurrence-date ordering
type SortOrder string

const (
	NewestFirst SortOrder = "desc"
	OldestFirst SortOrder = "asc"
)

// TransactionFilter narrows a transaction listing. Zero values mean unfiltered.
// Both date bounds are inclusive.
type TransactionFilter struct {
	// CategoryID is passed through as given; the store decides what matches
	CategoryID string
	StartDate  *time.Time
	EndDate    *time.Time
}

// Window returns the date range of the filter
func (f TransactionFilter) Window() Window {
	return Window{Start: f.StartDate, End: f.EndDate}
}

// PageRequest is the slice of an ordered result the store should return
type PageRequest struct {
	Offset int
	Limit  int
	Order  SortOrder
}

// Window is an inclusive date range. A nil bound is unbounded on that side.
type Window struct {
	Start *time.Time
	End   *time.Time
}

// AllTime is the unbounded window
func AllTime() Window {
	return Window{}
}

// Between builds a window with both bounds set
func Between(start, end time.Time) Window {
	return Window{Start: &start, End: &end}
}

// MonthWindow covers one calendar month in loc
func MonthWindow(year int, month time.Month, loc *time.Location) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return Between(start, end)
}

// CurrentPeriod runs from the first instant of now's month up to now
func CurrentPeriod(now time.Time) Window {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return Between(start, now)
}

// IsUnbounded reports whether neither side is bounded
func (w Window) IsUnbounded() bool {
	return w.Start == nil && w.End == nil
}
