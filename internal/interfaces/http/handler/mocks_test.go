package handler

import (
	"context"

	"github.com/google/uuid"
	appledger "github.com/ledger/backend/internal/application/ledger"
	"github.com/ledger/backend/internal/domain/ledger"
	"github.com/ledger/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

type MockTransactionQuerier struct {
	mock.Mock
}

func (m *MockTransactionQuerier) List(ctx context.Context, ownerID uuid.UUID, query appledger.ListQuery) (shared.PaginationResult[appledger.TransactionResponse], error) {
	args := m.Called(ctx, ownerID, query)
	return args.Get(0).(shared.PaginationResult[appledger.TransactionResponse]), args.Error(1)
}

type MockTransactionMutator struct {
	mock.Mock
}

func (m *MockTransactionMutator) Create(ctx context.Context, ownerID uuid.UUID, req appledger.CreateTransactionRequest) (*appledger.TransactionResponse, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appledger.TransactionResponse), args.Error(1)
}

func (m *MockTransactionMutator) Get(ctx context.Context, ownerID, id uuid.UUID) (*appledger.TransactionResponse, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appledger.TransactionResponse), args.Error(1)
}

func (m *MockTransactionMutator) Update(ctx context.Context, ownerID, id uuid.UUID, req appledger.UpdateTransactionRequest) (*appledger.TransactionResponse, error) {
	args := m.Called(ctx, ownerID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appledger.TransactionResponse), args.Error(1)
}

func (m *MockTransactionMutator) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

type MockSummaryReader struct {
	mock.Mock
}

func (m *MockSummaryReader) Summarize(ctx context.Context, ownerID uuid.UUID, window ledger.Window) (*appledger.SummaryResponse, error) {
	args := m.Called(ctx, ownerID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appledger.SummaryResponse), args.Error(1)
}

func (m *MockSummaryReader) SummaryAllTime(ctx context.Context, ownerID uuid.UUID) (*appledger.SummaryResponse, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appledger.SummaryResponse), args.Error(1)
}

func (m *MockSummaryReader) SummaryCurrentPeriod(ctx context.Context, ownerID uuid.UUID) (*appledger.SummaryResponse, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appledger.SummaryResponse), args.Error(1)
}

func (m *MockSummaryReader) SummaryForMonth(ctx context.Context, ownerID uuid.UUID, year, month int) (*appledger.MonthlySummaryResponse, error) {
	args := m.Called(ctx, ownerID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appledger.MonthlySummaryResponse), args.Error(1)
}

func (m *MockSummaryReader) SummaryByMonth(ctx context.Context, ownerID uuid.UUID) ([]appledger.MonthlySummaryResponse, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]appledger.MonthlySummaryResponse), args.Error(1)
}

type MockCategoryManager struct {
	mock.Mock
}

func (m *MockCategoryManager) Create(ctx context.Context, ownerID uuid.UUID, req appledger.CreateCategoryRequest) (*appledger.CategoryResponse, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appledger.CategoryResponse), args.Error(1)
}

func (m *MockCategoryManager) List(ctx context.Context, ownerID uuid.UUID) ([]appledger.CategoryResponse, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]appledger.CategoryResponse), args.Error(1)
}

type MockActivityReader struct {
	mock.Mock
}

func (m *MockActivityReader) List(ctx context.Context, ownerID uuid.UUID, params shared.PaginationParams) (shared.PaginationResult[appledger.ActivityResponse], error) {
	args := m.Called(ctx, ownerID, params)
	return args.Get(0).(shared.PaginationResult[appledger.ActivityResponse]), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
