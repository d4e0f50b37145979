package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/ledger/backend/internal/domain/ledger"
	"github.com/ledger/backend/internal/domain/shared/valueobject"
)

// TransactionModel is the persistence model for ledger transactions
type TransactionModel struct {
	OwnedAggregateModel
	Type        string             `gorm:"type:varchar(10);not null"`
	Title       string             `gorm:"type:varchar(200);not null"`
	Amount      valueobject.Amount `gorm:"type:decimal(15,2);not null"`
	CategoryID  uuid.UUID          `gorm:"type:uuid;not null;index"`
	Description string             `gorm:"type:varchar(500);not null;default:''"`
	OccurredAt  time.Time          `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain converts the persistence model to a domain Transaction
func (m *TransactionModel) ToDomain() *ledger.Transaction {
	tx := &ledger.Transaction{
		Type:        ledger.TransactionType(m.Type),
		Title:       m.Title,
		Amount:      m.Amount,
		CategoryID:  m.CategoryID,
		Description: m.Description,
		OccurredAt:  m.OccurredAt,
	}
	m.PopulateOwnedAggregateRoot(&tx.OwnedAggregateRoot)
	return tx
}

// TransactionModelFromDomain creates a persistence model from a domain Transaction
func TransactionModelFromDomain(tx *ledger.Transaction) *TransactionModel {
	m := &TransactionModel{
		Type:        tx.Type.String(),
		Title:       tx.Title,
		Amount:      tx.Amount,
		CategoryID:  tx.CategoryID,
		Description: tx.Description,
		OccurredAt:  tx.OccurredAt.UTC(),
	}
	m.FromDomainOwnedAggregateRoot(tx.OwnedAggregateRoot)
	return m
}

// CategoryModel is the persistence model for categories
type CategoryModel struct {
	BaseModel
	OwnerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categories_owner_name"`
	Name    string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_owner_name"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the persistence model to a domain Category
func (m *CategoryModel) ToDomain() *ledger.Category {
	return &ledger.Category{
		BaseEntity: m.BaseModel.ToDomain(),
		OwnerID:    m.OwnerID,
		Name:       m.Name,
	}
}

// CategoryModelFromDomain creates a persistence model from a domain Category
func CategoryModelFromDomain(c *ledger.Category) *CategoryModel {
	m := &CategoryModel{
		OwnerID: c.OwnerID,
		Name:    c.Name,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// ActivityLogModel is the persistence model for activity log entries
type ActivityLogModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	EventID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Action        string    `gorm:"type:varchar(20);not null"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null"`
	Detail        string    `gorm:"type:varchar(500);not null;default:''"`
	OccurredAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}

// ToDomain converts the persistence model to a domain ActivityEntry
func (m *ActivityLogModel) ToDomain() *ledger.ActivityEntry {
	return &ledger.ActivityEntry{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		EventID:       m.EventID,
		Action:        ledger.ActivityAction(m.Action),
		TransactionID: m.TransactionID,
		Detail:        m.Detail,
		OccurredAt:    m.OccurredAt,
	}
}

// ActivityLogModelFromDomain creates a persistence model from a domain ActivityEntry
func ActivityLogModelFromDomain(e *ledger.ActivityEntry) *ActivityLogModel {
	return &ActivityLogModel{
		ID:            e.ID,
		OwnerID:       e.OwnerID,
		EventID:       e.EventID,
		Action:        string(e.Action),
		TransactionID: e.TransactionID,
		Detail:        e.Detail,
		OccurredAt:    e.OccurredAt.UTC(),
	}
}

// AllModels lists every persistence model, for schema auto-migration in tests
// and on sqlite
func AllModels() []any {
	return []any{
		&CategoryModel{},
		&TransactionModel{},
		&ActivityLogModel{},
	}
}
