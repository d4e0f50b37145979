package shared

import (
	"time"

	"github.com/google/uuid"
)

// AggregateRoot is an entity persisted with an optimistic-lock version
type AggregateRoot interface {
	Entity
	GetVersion() int
}

// BaseAggregateRoot provides common fields for aggregate roots
type BaseAggregateRoot struct {
	BaseEntity
	Version int
}

// GetVersion returns the aggregate version. The store bumps it on every update.
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// NewBaseAggregateRoot creates a new base aggregate root at version 1
func NewBaseAggregateRoot(now time.Time) BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(now),
		Version:    1,
	}
}

// OwnedAggregateRoot extends BaseAggregateRoot with the id of the owning user
type OwnedAggregateRoot struct {
	BaseAggregateRoot
	OwnerID uuid.UUID
}

// NewOwnedAggregateRoot creates a new owner-scoped aggregate root
func NewOwnedAggregateRoot(ownerID uuid.UUID, now time.Time) OwnedAggregateRoot {
	return OwnedAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(now),
		OwnerID:           ownerID,
	}
}
