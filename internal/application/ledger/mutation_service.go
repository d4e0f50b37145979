package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ledger/backend/internal/domain/ledger"
	"github.com/ledger/backend/internal/domain/shared"
	"github.com/ledger/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// MutationService validates and applies create, update and delete on
// transactions. Every operation is scoped to the caller's owner id.
type MutationService struct {
	txRepo       ledger.TransactionRepository
	categoryRepo ledger.CategoryRepository
	normalizer   *FilterNormalizer
	clock        shared.Clock
	publisher    shared.EventPublisher
	logger       *zap.Logger
}

// NewMutationService creates a new MutationService. publisher may be nil.
func NewMutationService(
	txRepo ledger.TransactionRepository,
	categoryRepo ledger.CategoryRepository,
	clock shared.Clock,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *MutationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MutationService{
		txRepo:       txRepo,
		categoryRepo: categoryRepo,
		normalizer:   NewFilterNormalizer(clock.Now().Location()),
		clock:        clock,
		publisher:    publisher,
		logger:       logger,
	}
}

// Create validates req, checks the category belongs to the owner and stores
// the transaction
func (s *MutationService) Create(ctx context.Context, ownerID uuid.UUID, req CreateTransactionRequest) (_ *TransactionResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "transaction", "create",
		telemetry.SpanAttrOwnerID, ownerID.String(),
		telemetry.SpanAttrTransactionType, req.Type,
	)
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	now := s.clock.Now()

	categoryID, err := parseCategoryID(req.Category)
	if err != nil {
		return nil, err
	}
	occurredAt, err := s.parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	tx, err := ledger.NewTransaction(ownerID, ledger.NewTransactionParams{
		Type:        req.Type,
		Title:       req.Title,
		Amount:      req.Amount,
		CategoryID:  categoryID,
		Description: req.Description,
		OccurredAt:  occurredAt,
	}, now)
	if err != nil {
		return nil, err
	}

	if err := s.ensureCategory(ctx, categoryID, ownerID); err != nil {
		return nil, err
	}

	if err := s.txRepo.Insert(ctx, tx); err != nil {
		return nil, err
	}

	telemetry.SetAttributes(span, telemetry.SpanAttrTransactionID, tx.ID.String())
	s.publish(ctx, ledger.NewTransactionRecordedEvent(tx, now))

	resp := toTransactionResponse(tx)
	return &resp, nil
}

// Get returns one of the owner's transactions
func (s *MutationService) Get(ctx context.Context, ownerID, id uuid.UUID) (*TransactionResponse, error) {
	tx, err := s.txRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	resp := toTransactionResponse(tx)
	return &resp, nil
}

// Update applies a partial patch. A missing or foreign transaction is reported
// as not found before the category is checked.
func (s *MutationService) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateTransactionRequest) (_ *TransactionResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "transaction", "update",
		telemetry.SpanAttrOwnerID, ownerID.String(),
		telemetry.SpanAttrTransactionID, id.String(),
	)
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	now := s.clock.Now()

	params := ledger.PatchParams{
		Type:        req.Type,
		Title:       req.Title,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.Category != nil {
		categoryID, err := parseCategoryID(*req.Category)
		if err != nil {
			return nil, err
		}
		params.CategoryID = &categoryID
	}
	if req.Date != nil {
		occurredAt, err := s.parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		if occurredAt == nil {
			return nil, shared.NewValidationError("date", "date cannot be empty")
		}
		params.OccurredAt = occurredAt
	}

	patch, err := ledger.NewTransactionPatch(params)
	if err != nil {
		return nil, err
	}

	existing, err := s.txRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		resp := toTransactionResponse(existing)
		return &resp, nil
	}

	if patch.CategoryID != nil {
		if err := s.ensureCategory(ctx, *patch.CategoryID, ownerID); err != nil {
			return nil, err
		}
	}

	updated, err := s.txRepo.UpdateFields(ctx, ownerID, id, patch, now)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, ledger.NewTransactionUpdatedEvent(updated, patch.ChangedFields(), now))

	resp := toTransactionResponse(updated)
	return &resp, nil
}

// Delete removes one of the owner's transactions. Deleting it again reports
// not found.
func (s *MutationService) Delete(ctx context.Context, ownerID, id uuid.UUID) (err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "transaction", "delete",
		telemetry.SpanAttrOwnerID, ownerID.String(),
		telemetry.SpanAttrTransactionID, id.String(),
	)
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	deleted, err := s.txRepo.DeleteByID(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return shared.NewDomainError(shared.CodeNotFound, "Transaction not found")
	}

	s.publish(ctx, ledger.NewTransactionDeletedEvent(ownerID, id, s.clock.Now()))
	return nil
}

// ensureCategory reports a missing or foreign category as forbidden
func (s *MutationService) ensureCategory(ctx context.Context, categoryID, ownerID uuid.UUID) error {
	ok, err := s.categoryRepo.BelongsTo(ctx, categoryID, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return shared.NewDomainError(shared.CodeForbidden, "Category does not belong to the current user")
	}
	return nil
}

func (s *MutationService) parseDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := s.normalizer.ParseDate(value, false)
	if err != nil {
		return nil, shared.NewValidationError("date", "date must be a valid date (YYYY-MM-DD or RFC 3339)")
	}
	return &t, nil
}

func (s *MutationService) publish(ctx context.Context, event shared.DomainEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish transaction event",
			zap.String("event_type", event.EventType()),
			zap.String("transaction_id", event.AggregateID().String()),
			zap.Error(err),
		)
	}
}

func parseCategoryID(value string) (uuid.UUID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, shared.NewValidationError("category", "category must be a valid id")
	}
	return id, nil
}
