package persistence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ledger/backend/internal/domain/ledger"
	"github.com/ledger/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormCategoryRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormCategoryRepository(db)
	ctx := t.Context()

	owner := uuid.New()
	other := uuid.New()
	rent := seedCategory(t, db, owner, "Rent")
	seedCategory(t, db, owner, "Food")
	theirs := seedCategory(t, db, other, "Rent")

	t.Run("belongs to checks the owner", func(t *testing.T) {
		ok, err := repo.BelongsTo(ctx, rent.ID, owner)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.BelongsTo(ctx, theirs.ID, owner)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = repo.BelongsTo(ctx, uuid.New(), owner)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("exists by name is per owner", func(t *testing.T) {
		exists, err := repo.ExistsByName(ctx, owner, "Rent")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByName(ctx, uuid.New(), "Rent")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		dup, err := ledger.NewCategory(owner, "Rent", time.Now())
		require.NoError(t, err)
		err = repo.Create(ctx, dup)
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("lists sorted by name", func(t *testing.T) {
		categories, err := repo.ListForOwner(ctx, owner)
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "Food", categories[0].Name)
		assert.Equal(t, "Rent", categories[1].Name)
	})
}
