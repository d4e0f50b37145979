package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledger/backend/internal/domain/ledger"
	"github.com/ledger/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ActivityLogHandler writes one activity entry per transaction event
type ActivityLogHandler struct {
	repo   ledger.ActivityRepository
	logger *zap.Logger
}

// NewActivityLogHandler creates a new handler for transaction events
func NewActivityLogHandler(repo ledger.ActivityRepository, logger *zap.Logger) *ActivityLogHandler {
	return &ActivityLogHandler{
		repo:   repo,
		logger: logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *ActivityLogHandler) EventTypes() []string {
	return []string{
		ledger.EventTypeTransactionRecorded,
		ledger.EventTypeTransactionUpdated,
		ledger.EventTypeTransactionDeleted,
	}
}

// Handle records the event in the owner's activity log
func (h *ActivityLogHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	var entry *ledger.ActivityEntry
	switch e := event.(type) {
	case *ledger.TransactionRecordedEvent:
		entry = ledger.NewActivityEntry(e, ledger.ActivityCreated,
			fmt.Sprintf("Recorded %s %q of %s", e.TransactionType, e.Title, formatDecimal(e.Amount)))
	case *ledger.TransactionUpdatedEvent:
		entry = ledger.NewActivityEntry(e, ledger.ActivityUpdated,
			"Updated "+strings.Join(e.ChangedFields, ", "))
	case *ledger.TransactionDeletedEvent:
		entry = ledger.NewActivityEntry(e, ledger.ActivityDeleted, "Deleted transaction")
	default:
		return fmt.Errorf("unexpected event type: %s", event.EventType())
	}

	if err := h.repo.Save(ctx, entry); err != nil {
		h.logger.Error("failed to save activity entry",
			zap.String("event_type", event.EventType()),
			zap.String("transaction_id", event.AggregateID().String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}
