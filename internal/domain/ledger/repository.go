package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TransactionRepository is the transaction store. Every method is scoped to
// an owner: ownership is part of the lookup predicate, so a foreign id is
// indistinguishable from a missing one.
type TransactionRepository interface {
	// CountMatching counts the owner's transactions matching filter, ignoring paging
	CountMatching(ctx context.Context, ownerID uuid.UUID, filter TransactionFilter) (int64, error)
	// QueryPage returns one ordered page of the owner's transactions matching filter
	QueryPage(ctx context.Context, ownerID uuid.UUID, filter TransactionFilter, page PageRequest) ([]Transaction, error)
	// SumByTypeInWindow sums amounts per type for transactions occurring inside window
	SumByTypeInWindow(ctx context.Context, ownerID uuid.UUID, window Window) (TypeTotals, error)
	// ListAmounts projects type, amount and date of every transaction inside window
	ListAmounts(ctx context.Context, ownerID uuid.UUID, window Window) ([]AmountEntry, error)
	// Insert persists a new transaction
	Insert(ctx context.Context, tx *Transaction) error
	// FindByID returns shared.ErrNotFound when no transaction with id belongs to owner
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error)
	// UpdateFields applies patch and returns the updated transaction, or shared.ErrNotFound
	UpdateFields(ctx context.Context, ownerID, id uuid.UUID, patch TransactionPatch, updatedAt time.Time) (*Transaction, error)
	// DeleteByID reports whether a row was deleted
	DeleteByID(ctx context.Context, ownerID, id uuid.UUID) (bool, error)
}

// CategoryRepository is the category store
type CategoryRepository interface {
	// BelongsTo reports whether categoryID exists and is owned by ownerID
	BelongsTo(ctx context.Context, categoryID, ownerID uuid.UUID) (bool, error)
	Create(ctx context.Context, category *Category) error
	ExistsByName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]Category, error)
}

// ActivityRepository stores the per-owner activity log
type ActivityRepository interface {
	Save(ctx context.Context, entry *ActivityEntry) error
	CountForOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]ActivityEntry, error)
}
