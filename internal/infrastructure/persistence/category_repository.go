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

// GormCategoryRepository implements ledger.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// BelongsTo reports whether categoryID exists and is owned by ownerID
func (r *GormCategoryRepository) BelongsTo(ctx context.Context, categoryID, ownerID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CategoryModel{}).
		Where("id = ? AND owner_id = ?", categoryID, ownerID).
		Count(&count).Error; err != nil {
		return false, shared.NewStoreError("check category owner", err)
	}
	return count > 0, nil
}

// Create persists a new category. A duplicate name for the same owner is ErrAlreadyExists.
func (r *GormCategoryRepository) Create(ctx context.Context, category *ledger.Category) error {
	model := models.CategoryModelFromDomain(category)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return shared.NewStoreError("create category", err)
	}
	return nil
}

// ExistsByName reports whether the owner already has a category with name
func (r *GormCategoryRepository) ExistsByName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CategoryModel{}).
		Where("owner_id = ? AND name = ?", ownerID, name).
		Count(&count).Error; err != nil {
		return false, shared.NewStoreError("check category name", err)
	}
	return count > 0, nil
}

// ListForOwner returns the owner's categories sorted by name
func (r *GormCategoryRepository) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]ledger.Category, error) {
	var categoryModels []models.CategoryModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, shared.NewStoreError("list categories", err)
	}
	categories := make([]ledger.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = *categoryModels[i].ToDomain()
	}
	return categories, nil
}
