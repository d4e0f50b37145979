package ledger

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/ledger/backend/internal/domain/ledger"
	"github.com/ledger/backend/internal/domain/shared"
	"github.com/ledger/backend/internal/infrastructure/telemetry"
)

// SummaryService computes income, expense and balance totals for an owner.
// Each call reads the clock at most once.
type SummaryService struct {
	repo  ledger.TransactionRepository
	clock shared.Clock
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(repo ledger.TransactionRepository, clock shared.Clock) *SummaryService {
	return &SummaryService{repo: repo, clock: clock}
}

// Summarize totals the owner's transactions inside window.
// An unbounded window gives the all-time summary.
func (s *SummaryService) Summarize(ctx context.Context, ownerID uuid.UUID, window ledger.Window) (*SummaryResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "summary", "totals", telemetry.SpanAttrOwnerID, ownerID.String())
	defer span.End()

	totals, err := s.repo.SumByTypeInWindow(ctx, ownerID, window)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	resp := toSummaryResponse(ledger.NewSummary(totals))
	return &resp, nil
}

// SummaryAllTime totals every transaction of the owner
func (s *SummaryService) SummaryAllTime(ctx context.Context, ownerID uuid.UUID) (*SummaryResponse, error) {
	return s.Summarize(ctx, ownerID, ledger.AllTime())
}

// SummaryCurrentPeriod totals the transactions from the first day of the
// current month up to now
func (s *SummaryService) SummaryCurrentPeriod(ctx context.Context, ownerID uuid.UUID) (*SummaryResponse, error) {
	return s.Summarize(ctx, ownerID, ledger.CurrentPeriod(s.clock.Now()))
}

// SummaryForMonth totals one calendar month
func (s *SummaryService) SummaryForMonth(ctx context.Context, ownerID uuid.UUID, year, month int) (*MonthlySummaryResponse, error) {
	if year < 1 || year > 9999 {
		return nil, shared.NewValidationError("year", "year must be between 1 and 9999")
	}
	if month < 1 || month > 12 {
		return nil, shared.NewValidationError("month", "month must be between 1 and 12")
	}

	loc := s.clock.Now().Location()
	totals, err := s.repo.SumByTypeInWindow(ctx, ownerID, ledger.MonthWindow(year, time.Month(month), loc))
	if err != nil {
		return nil, err
	}
	resp := toMonthlySummaryResponse(ledger.NewMonthlySummary(ledger.MonthKey{Year: year, Month: time.Month(month)}, totals))
	return &resp, nil
}

// SummaryByMonth returns one entry per calendar month that has at least one
// transaction, oldest month first. Months are taken in the clock's location.
func (s *SummaryService) SummaryByMonth(ctx context.Context, ownerID uuid.UUID) ([]MonthlySummaryResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "summary", "by_month", telemetry.SpanAttrOwnerID, ownerID.String())
	defer span.End()

	entries, err := s.repo.ListAmounts(ctx, ownerID, ledger.AllTime())
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttributes(span, "entries", len(entries))

	months := GroupByMonth(entries, s.clock.Now().Location())
	result := make([]MonthlySummaryResponse, len(months))
	for i, m := range months {
		result[i] = toMonthlySummaryResponse(m)
	}
	return result, nil
}

// GroupByMonth sums entries per calendar month in loc, oldest month first
func GroupByMonth(entries []ledger.AmountEntry, loc *time.Location) []ledger.MonthlySummary {
	totals := make(map[ledger.MonthKey]ledger.TypeTotals)
	for _, e := range entries {
		key := ledger.MonthOf(e.OccurredAt, loc)
		t, ok := totals[key]
		if !ok {
			t = ledger.ZeroTotals()
		}
		totals[key] = t.Add(e)
	}

	keys := make([]ledger.MonthKey, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	months := make([]ledger.MonthlySummary, len(keys))
	for i, k := range keys {
		months[i] = ledger.NewMonthlySummary(k, totals[k])
	}
	return months
}
