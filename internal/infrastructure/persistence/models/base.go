package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/ledger/backend/internal/domain/shared"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity.
// Timestamps are stored in UTC so that they compare consistently on every driver.
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt.UTC()
	m.UpdatedAt = e.UpdatedAt.UTC()
}

// OwnedAggregateModel holds the persistence fields of an owner-scoped aggregate root
type OwnedAggregateModel struct {
	BaseModel
	Version int       `gorm:"not null;default:1"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// FromDomainOwnedAggregateRoot populates the model from an aggregate root
func (m *OwnedAggregateModel) FromDomainOwnedAggregateRoot(a shared.OwnedAggregateRoot) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Version = a.Version
	m.OwnerID = a.OwnerID
}

// PopulateOwnedAggregateRoot copies the persisted fields onto a domain aggregate root
func (m *OwnedAggregateModel) PopulateOwnedAggregateRoot(a *shared.OwnedAggregateRoot) {
	a.ID = m.ID
	a.CreatedAt = m.CreatedAt
	a.UpdatedAt = m.UpdatedAt
	a.Version = m.Version
	a.OwnerID = m.OwnerID
}
