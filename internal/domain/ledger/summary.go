package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TypeTotals holds the raw per-type sums returned by the store
type TypeTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// AmountEntry is the minimal projection of a transaction used for grouping
type AmountEntry struct {
	Type       TransactionType
	Amount     decimal.Decimal
	OccurredAt time.Time
}

// Summary is the income, expense and balance of a set of transactions
type Summary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Balance       decimal.Decimal `json:"balance"`
}

// NewSummary derives the balance from the two totals
func NewSummary(totals TypeTotals) Summary {
	return Summary{
		TotalIncome:   totals.Income,
		TotalExpenses: totals.Expense,
		Balance:       totals.Income.Sub(totals.Expense),
	}
}

// ZeroTotals is the totals of an empty transaction set
func ZeroTotals() TypeTotals {
	return TypeTotals{Income: decimal.Zero, Expense: decimal.Zero}
}

// Add accumulates one entry into the totals
func (t TypeTotals) Add(entry AmountEntry) TypeTotals {
	switch entry.Type {
	case TransactionTypeIncome:
		t.Income = t.Income.Add(entry.Amount)
	case TransactionTypeExpense:
		t.Expense = t.Expense.Add(entry.Amount)
	}
	return t
}

// MonthKey identifies a calendar month
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthOf returns the calendar month of t in loc
func MonthOf(t time.Time, loc *time.Location) MonthKey {
	local := t.In(loc)
	return MonthKey{Year: local.Year(), Month: local.Month()}
}

// Before orders month keys chronologically
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// Period formats the key as YYYY-MM
func (k MonthKey) Period() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// MonthlySummary is the summary of one calendar month
type MonthlySummary struct {
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Period string `json:"period"`
	Summary
}

// NewMonthlySummary tags a summary with its month
func NewMonthlySummary(key MonthKey, totals TypeTotals) MonthlySummary {
	return MonthlySummary{
		Year:    key.Year,
		Month:   int(key.Month),
		Period:  key.Period(),
		Summary: NewSummary(totals),
	}
}
