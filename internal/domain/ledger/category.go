package ledger

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/ledger/backend/internal/domain/shared"
)

// MaxCategoryNameLength bounds category names
const MaxCategoryNameLength = 100

// Category groups transactions of one owner
type Category struct {
	shared.BaseEntity
	OwnerID uuid.UUID
	Name    string
}

// NewCategory creates a category with a trimmed, non-empty name
func NewCategory(ownerID uuid.UUID, name string, now time.Time) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("name", "Category name is required")
	}
	if utf8.RuneCountInString(name) > MaxCategoryNameLength {
		return nil, shared.NewValidationError("name", "Category name cannot exceed 100 characters")
	}
	return &Category{
		BaseEntity: shared.NewBaseEntity(now),
		OwnerID:    ownerID,
		Name:       name,
	}, nil
}
