package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ledger/backend/internal/domain/ledger"
	"github.com/ledger/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockTransactionRepository is a mock implementation of ledger.TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) CountMatching(ctx context.Context, ownerID uuid.UUID, filter ledger.TransactionFilter) (int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) QueryPage(ctx context.Context, ownerID uuid.UUID, filter ledger.TransactionFilter, page ledger.PageRequest) ([]ledger.Transaction, error) {
	args := m.Called(ctx, ownerID, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SumByTypeInWindow(ctx context.Context, ownerID uuid.UUID, window ledger.Window) (ledger.TypeTotals, error) {
	args := m.Called(ctx, ownerID, window)
	return args.Get(0).(ledger.TypeTotals), args.Error(1)
}

func (m *MockTransactionRepository) ListAmounts(ctx context.Context, ownerID uuid.UUID, window ledger.Window) ([]ledger.AmountEntry, error) {
	args := m.Called(ctx, ownerID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.AmountEntry), args.Error(1)
}

func (m *MockTransactionRepository) Insert(ctx context.Context, tx *ledger.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*ledger.Transaction, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateFields(ctx context.Context, ownerID, id uuid.UUID, patch ledger.TransactionPatch, updatedAt time.Time) (*ledger.Transaction, error) {
	args := m.Called(ctx, ownerID, id, patch, updatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) DeleteByID(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Bool(0), args.Error(1)
}

// MockCategoryRepository is a mock implementation of ledger.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) BelongsTo(ctx context.Context, categoryID, ownerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, categoryID, ownerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *ledger.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) ExistsByName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error) {
	args := m.Called(ctx, ownerID, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]ledger.Category, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Category), args.Error(1)
}

// MockActivityRepository is a mock implementation of ledger.ActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Save(ctx context.Context, entry *ledger.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockActivityRepository) ListForOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]ledger.ActivityEntry, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.ActivityEntry), args.Error(1)
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}
