package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/ledger/backend/internal/domain/ledger"
	"github.com/ledger/backend/internal/domain/shared"
)

// CategoryService manages the categories transactions refer to
type CategoryService struct {
	repo  ledger.CategoryRepository
	clock shared.Clock
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(repo ledger.CategoryRepository, clock shared.Clock) *CategoryService {
	return &CategoryService{repo: repo, clock: clock}
}

// Create adds a category; names are unique per owner
func (s *CategoryService) Create(ctx context.Context, ownerID uuid.UUID, req CreateCategoryRequest) (*CategoryResponse, error) {
	category, err := ledger.NewCategory(ownerID, req.Name, s.clock.Now())
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByName(ctx, ownerID, category.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeAlreadyExists, "Category with this name already exists")
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	resp := toCategoryResponse(category)
	return &resp, nil
}

// List returns the owner's categories ordered by name
func (s *CategoryService) List(ctx context.Context, ownerID uuid.UUID) ([]CategoryResponse, error) {
	categories, err := s.repo.ListForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	result := make([]CategoryResponse, len(categories))
	for i := range categories {
		result[i] = toCategoryResponse(&categories[i])
	}
	return result, nil
}
