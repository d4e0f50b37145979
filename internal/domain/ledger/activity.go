package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/ledger/backend/internal/domain/shared"
)

// ActivityAction names what happened to a transaction
type ActivityAction string

const (
	ActivityCreated ActivityAction = "created"
	ActivityUpdated ActivityAction = "updated"
	ActivityDeleted ActivityAction = "deleted"
)

// ActivityEntry is one line of an owner's activity log
type ActivityEntry struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	EventID       uuid.UUID
	Action        ActivityAction
	TransactionID uuid.UUID
	Detail        string
	OccurredAt    time.Time
}

// NewActivityEntry creates an entry for an event
func NewActivityEntry(event shared.DomainEvent, action ActivityAction, detail string) *ActivityEntry {
	return &ActivityEntry{
		ID:            shared.NewID(),
		OwnerID:       event.OwnerID(),
		EventID:       event.EventID(),
		Action:        action,
		TransactionID: event.AggregateID(),
		Detail:        detail,
		OccurredAt:    event.OccurredAt(),
	}
}
