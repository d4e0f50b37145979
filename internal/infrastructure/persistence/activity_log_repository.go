package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ledger/backend/internal/domain/ledger"
	"github.com/ledger/backend/internal/domain/shared"
	"github.com/ledger/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormActivityRepository implements ledger.ActivityRepository using GORM
type GormActivityRepository struct {
	db *gorm.DB
}

// NewGormActivityRepository creates a new GormActivityRepository
func NewGormActivityRepository(db *gorm.DB) *GormActivityRepository {
	return &GormActivityRepository{db: db}
}

// Save stores an entry. Saving the same event twice is a no-op.
func (r *GormActivityRepository) Save(ctx context.Context, entry *ledger.ActivityEntry) error {
	model := models.ActivityLogModelFromDomain(entry)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return shared.NewStoreError("save activity", err)
	}
	return nil
}

// CountForOwner counts the owner's activity entries
func (r *GormActivityRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.ActivityLogModel{}).
		Where("owner_id = ?", ownerID).
		Count(&total).Error; err != nil {
		return 0, shared.NewStoreError("count activity", err)
	}
	return total, nil
}

// ListForOwner returns a page of the owner's activity, newest first
func (r *GormActivityRepository) ListForOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]ledger.ActivityEntry, error) {
	var logModels []models.ActivityLogModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("occurred_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&logModels).Error; err != nil {
		return nil, shared.NewStoreError("list activity", err)
	}
	entries := make([]ledger.ActivityEntry, len(logModels))
	for i := range logModels {
		entries[i] = *logModels[i].ToDomain()
	}
	return entries, nil
}
