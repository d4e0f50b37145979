package persistence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ledger/backend/internal/domain/ledger"
	"github.com/ledger/backend/internal/infrastructure/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a migrated in-memory sqlite database
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := NewDatabase(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   ":memory:",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })

	return db.DB
}

func seedCategory(t *testing.T, db *gorm.DB, ownerID uuid.UUID, name string) *ledger.Category {
	t.Helper()
	c, err := ledger.NewCategory(ownerID, name, time.Now())
	require.NoError(t, err)
	require.NoError(t, NewGormCategoryRepository(db).Create(t.Context(), c))
	return c
}

type txSeed struct {
	typ      string
	title    string
	amount   string
	category uuid.UUID
	at       time.Time
}

func seedTransaction(t *testing.T, db *gorm.DB, ownerID uuid.UUID, s txSeed) *ledger.Transaction {
	t.Helper()
	at := s.at
	tx, err := ledger.NewTransaction(ownerID, ledger.NewTransactionParams{
		Type:       s.typ,
		Title:      s.title,
		Amount:     decimal.RequireFromString(s.amount),
		CategoryID: s.category,
		OccurredAt: &at,
	}, time.Now())
	require.NoError(t, err)
	require.NoError(t, NewGormTransactionRepository(db).Insert(t.Context(), tx))
	return tx
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}
