package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/ledger/backend/internal/domain/ledger"
	"github.com/ledger/backend/internal/domain/shared"
)

// ActivityService reads the per-owner activity log
type ActivityService struct {
	repo ledger.ActivityRepository
}

// NewActivityService creates a new ActivityService
func NewActivityService(repo ledger.ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

// List returns one page of the owner's activity, newest first
func (s *ActivityService) List(ctx context.Context, ownerID uuid.UUID, params shared.PaginationParams) (shared.PaginationResult[ActivityResponse], error) {
	total, err := s.repo.CountForOwner(ctx, ownerID)
	if err != nil {
		return shared.PaginationResult[ActivityResponse]{}, err
	}

	items := make([]ActivityResponse, 0)
	if total > int64(params.Offset) {
		entries, err := s.repo.ListForOwner(ctx, ownerID, params.Offset, params.Limit)
		if err != nil {
			return shared.PaginationResult[ActivityResponse]{}, err
		}
		for _, e := range entries {
			items = append(items, toActivityResponse(e))
		}
	}

	return shared.NewPaginationResult(items, total, params.Page, params.Limit), nil
}
