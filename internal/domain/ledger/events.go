package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/ledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event type names
const (
	EventTypeTransactionRecorded = "TransactionRecorded"
	EventTypeTransactionUpdated  = "TransactionUpdated"
	EventTypeTransactionDeleted  = "TransactionDeleted"

	aggregateTypeTransaction = "Transaction"
)

// TransactionRecordedEvent is raised when a transaction is created
type TransactionRecordedEvent struct {
	shared.BaseDomainEvent
	TransactionType TransactionType `json:"transaction_type"`
	Title           string          `json:"title"`
	Amount          decimal.Decimal `json:"amount"`
	OccurredOn      time.Time       `json:"occurred_on"`
}

// NewTransactionRecordedEvent creates a TransactionRecordedEvent
func NewTransactionRecordedEvent(tx *Transaction, at time.Time) *TransactionRecordedEvent {
	return &TransactionRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTransactionRecorded, aggregateTypeTransaction, tx.ID, tx.OwnerID, at),
		TransactionType: tx.Type,
		Title:           tx.Title,
		Amount:          tx.Amount.Decimal(),
		OccurredOn:      tx.OccurredAt,
	}
}

// TransactionUpdatedEvent is raised when fields of a transaction change
type TransactionUpdatedEvent struct {
	shared.BaseDomainEvent
	ChangedFields []string `json:"changed_fields"`
}

// NewTransactionUpdatedEvent creates a TransactionUpdatedEvent
func NewTransactionUpdatedEvent(tx *Transaction, changed []string, at time.Time) *TransactionUpdatedEvent {
	return &TransactionUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTransactionUpdated, aggregateTypeTransaction, tx.ID, tx.OwnerID, at),
		ChangedFields:   changed,
	}
}

// TransactionDeletedEvent is raised when a transaction is deleted
type TransactionDeletedEvent struct {
	shared.BaseDomainEvent
}

// NewTransactionDeletedEvent creates a TransactionDeletedEvent
func NewTransactionDeletedEvent(ownerID, id uuid.UUID, at time.Time) *TransactionDeletedEvent {
	return &TransactionDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTransactionDeleted, aggregateTypeTransaction, id, ownerID, at),
	}
}
