package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/ledger/backend/internal/domain/ledger"
	"github.com/ledger/backend/internal/domain/shared"
	"github.com/ledger/backend/internal/infrastructure/telemetry"
)

// QueryService lists an owner's transactions page by page
type QueryService struct {
	repo ledger.TransactionRepository
}

// NewQueryService creates a new QueryService
func NewQueryService(repo ledger.TransactionRepository) *QueryService {
	return &QueryService{repo: repo}
}

// List counts and fetches the owner's transactions matching the query.
// Count and page use the same filter so totalPages agrees with the data.
func (s *QueryService) List(ctx context.Context, ownerID uuid.UUID, query ListQuery) (result shared.PaginationResult[TransactionResponse], err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "transaction", "list",
		telemetry.SpanAttrOwnerID, ownerID.String(),
		telemetry.SpanAttrPage, query.Pagination.Page,
	)
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	params := query.Pagination
	if params.Limit == 0 {
		params = shared.NewPaginationParams(params.Page, params.Limit)
	}
	order := query.Order
	if order == "" {
		order = ledger.NewestFirst
	}

	total, err := s.repo.CountMatching(ctx, ownerID, query.Filter)
	if err != nil {
		return shared.PaginationResult[TransactionResponse]{}, err
	}

	var txs []ledger.Transaction
	if total > int64(params.Offset) {
		txs, err = s.repo.QueryPage(ctx, ownerID, query.Filter, ledger.PageRequest{
			Offset: params.Offset,
			Limit:  params.Limit,
			Order:  order,
		})
		if err != nil {
			return shared.PaginationResult[TransactionResponse]{}, err
		}
		if len(txs) > params.Limit {
			txs = txs[:params.Limit]
		}
	}

	page := shared.NewPaginationResult(txs, total, params.Page, params.Limit)
	return shared.MapPaginationResult(page, func(tx ledger.Transaction) TransactionResponse {
		return toTransactionResponse(&tx)
	}), nil
}
