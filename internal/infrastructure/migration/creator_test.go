package migration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ledger/backend/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add budgets table", "add_budgets_table"},
		{"Add-Budgets-Table", "add_budgets_table"},
		{"add__budgets__table", "add_budgets_table"},
		{"Add Budgets 123", "add_budgets_123"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "specialchars"},
		{"_leading", "leading"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 7, 1, 8, 30, 0, 0, time.UTC)

	mf, err := CreateMigration(dir, "Add budgets", "Monthly budget per category", now)
	require.NoError(t, err)

	assert.Equal(t, "20240701083000", mf.Version)
	assert.Equal(t, filepath.Join(dir, "20240701083000_add_budgets.up.sql"), mf.UpPath)
	assert.Equal(t, filepath.Join(dir, "20240701083000_add_budgets.down.sql"), mf.DownPath)

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "-- Migration: add_budgets\n")
	assert.Contains(t, string(up), "-- Description: Monthly budget per category")

	down, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "(Rollback)")

	t.Run("refuses to overwrite an existing version", func(t *testing.T) {
		_, err := CreateMigration(dir, "Add budgets", "", now)
		assert.Error(t, err)
	})

	t.Run("rejects a name without usable characters", func(t *testing.T) {
		_, err := CreateMigration(dir, "!!!", "", now)
		assert.Error(t, err)
	})
}

func TestListMigrations(t *testing.T) {
	t.Run("embedded schema", func(t *testing.T) {
		names, err := ListMigrations(migrations.FS)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"20240101000001_create_categories",
			"20240101000002_create_transactions",
			"20240101000003_create_activity_logs",
		}, names)
	})

	t.Run("missing directory is empty", func(t *testing.T) {
		names, err := ListMigrations(os.DirFS(filepath.Join(t.TempDir(), "nope")))
		require.NoError(t, err)
		assert.Empty(t, names)
	})
}
