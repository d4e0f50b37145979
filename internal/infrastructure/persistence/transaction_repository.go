package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ledger/backend/internal/domain/ledger"
	"github.com/ledger/backend/internal/domain/shared"
	"github.com/ledger/backend/internal/domain/shared/valueobject"
	"github.com/ledger/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormTransactionRepository implements ledger.TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// CountMatching counts the owner's transactions matching filter
func (r *GormTransactionRepository) CountMatching(ctx context.Context, ownerID uuid.UUID, filter ledger.TransactionFilter) (int64, error) {
	var total int64
	query := r.ownerScope(ctx, ownerID)
	query = applyFilter(query, filter)
	if err := query.Count(&total).Error; err != nil {
		return 0, shared.NewStoreError("count transactions", err)
	}
	return total, nil
}

// QueryPage returns one ordered page of the owner's transactions matching filter
func (r *GormTransactionRepository) QueryPage(ctx context.Context, ownerID uuid.UUID, filter ledger.TransactionFilter, page ledger.PageRequest) ([]ledger.Transaction, error) {
	var txModels []models.TransactionModel
	query := r.ownerScope(ctx, ownerID)
	query = applyFilter(query, filter)
	query = query.Order(transactionOrder(page.Order)).Offset(page.Offset)
	if page.Limit > 0 {
		query = query.Limit(page.Limit)
	}

	if err := query.Find(&txModels).Error; err != nil {
		return nil, shared.NewStoreError("query transactions", err)
	}

	txs := make([]ledger.Transaction, len(txModels))
	for i := range txModels {
		txs[i] = *txModels[i].ToDomain()
	}
	return txs, nil
}

type typeSumRow struct {
	Type  string
	Total decimal.NullDecimal
}

// SumByTypeInWindow sums amounts per type. A type with no rows sums to zero.
func (r *GormTransactionRepository) SumByTypeInWindow(ctx context.Context, ownerID uuid.UUID, window ledger.Window) (ledger.TypeTotals, error) {
	var rows []typeSumRow
	query := r.ownerScope(ctx, ownerID).
		Select("type, SUM(amount) AS total")
	query = applyWindow(query, window)
	if err := query.Group("type").Scan(&rows).Error; err != nil {
		return ledger.ZeroTotals(), shared.NewStoreError("sum transactions", err)
	}

	totals := ledger.ZeroTotals()
	for _, row := range rows {
		if !row.Total.Valid {
			continue
		}
		sum := row.Total.Decimal.Round(valueobject.AmountPlaces)
		switch ledger.TransactionType(row.Type) {
		case ledger.TransactionTypeIncome:
			totals.Income = sum
		case ledger.TransactionTypeExpense:
			totals.Expense = sum
		}
	}
	return totals, nil
}

type amountRow struct {
	Type       string
	Amount     decimal.Decimal
	OccurredAt time.Time
}

// ListAmounts projects type, amount and date of every transaction inside window
func (r *GormTransactionRepository) ListAmounts(ctx context.Context, ownerID uuid.UUID, window ledger.Window) ([]ledger.AmountEntry, error) {
	var rows []amountRow
	query := r.ownerScope(ctx, ownerID).
		Select("type, amount, occurred_at")
	query = applyWindow(query, window)
	if err := query.Order("occurred_at ASC").Scan(&rows).Error; err != nil {
		return nil, shared.NewStoreError("list transaction amounts", err)
	}

	entries := make([]ledger.AmountEntry, len(rows))
	for i, row := range rows {
		entries[i] = ledger.AmountEntry{
			Type:       ledger.TransactionType(row.Type),
			Amount:     row.Amount.Round(valueobject.AmountPlaces),
			OccurredAt: row.OccurredAt,
		}
	}
	return entries, nil
}

// Insert persists a new transaction
func (r *GormTransactionRepository) Insert(ctx context.Context, tx *ledger.Transaction) error {
	model := models.TransactionModelFromDomain(tx)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return shared.NewStoreError("insert transaction", err)
	}
	return nil
}

// FindByID finds one of the owner's transactions
func (r *GormTransactionRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*ledger.Transaction, error) {
	var model models.TransactionModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, shared.NewStoreError("find transaction", err)
	}
	return model.ToDomain(), nil
}

// UpdateFields writes only the columns present in patch, bumps the version and
// returns the reloaded row
func (r *GormTransactionRepository) UpdateFields(ctx context.Context, ownerID, id uuid.UUID, patch ledger.TransactionPatch, updatedAt time.Time) (*ledger.Transaction, error) {
	updates := patchColumns(patch)
	updates["updated_at"] = updatedAt.UTC()
	updates["version"] = gorm.Expr("version + 1")

	result := r.db.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Updates(updates)
	if result.Error != nil {
		return nil, shared.NewStoreError("update transaction", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}
	return r.FindByID(ctx, ownerID, id)
}

// DeleteByID removes one of the owner's transactions
func (r *GormTransactionRepository) DeleteByID(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Delete(&models.TransactionModel{})
	if result.Error != nil {
		return false, shared.NewStoreError("delete transaction", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *GormTransactionRepository) ownerScope(ctx context.Context, ownerID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Where("owner_id = ?", ownerID)
}

// applyFilter is shared by the count and page queries so that both always
// see the same rows. A category that is not a valid id matches nothing.
func applyFilter(query *gorm.DB, filter ledger.TransactionFilter) *gorm.DB {
	if filter.CategoryID != "" {
		categoryID, err := uuid.Parse(filter.CategoryID)
		if err != nil {
			query = query.Where("1 = 0")
		} else {
			query = query.Where("category_id = ?", categoryID)
		}
	}
	return applyWindow(query, filter.Window())
}

func applyWindow(query *gorm.DB, window ledger.Window) *gorm.DB {
	if window.Start != nil {
		query = query.Where("occurred_at >= ?", window.Start.UTC())
	}
	if window.End != nil {
		query = query.Where("occurred_at <= ?", window.End.UTC())
	}
	return query
}

func patchColumns(patch ledger.TransactionPatch) map[string]any {
	updates := make(map[string]any)
	if patch.Type != nil {
		updates["type"] = patch.Type.String()
	}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Amount != nil {
		updates["amount"] = *patch.Amount
	}
	if patch.CategoryID != nil {
		updates["category_id"] = *patch.CategoryID
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.OccurredAt != nil {
		updates["occurred_at"] = patch.OccurredAt.UTC()
	}
	return updates
}
