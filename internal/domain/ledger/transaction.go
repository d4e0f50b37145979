package ledger

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/ledger/backend/internal/domain/shared"
	"github.com/ledger/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Field limits
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 500
)

// TransactionType decides whether an entry adds to income or to expenses
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid checks if the type is one of the known values
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	}
	return false
}

// String returns the string representation of TransactionType
func (t TransactionType) String() string {
	return string(t)
}

// ParseTransactionType accepts exactly "income" or "expense"
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.IsValid() {
		return "", shared.ErrInvalidTransactionType
	}
	return t, nil
}

// Transaction is a single income or expense entry owned by one user
type Transaction struct {
	shared.OwnedAggregateRoot
	Type        TransactionType
	Title       string
	Amount      valueobject.Amount
	CategoryID  uuid.UUID
	Description string
	OccurredAt  time.Time
}

var _ shared.AggregateRoot = (*Transaction)(nil)

// NewTransactionParams carries unvalidated input for NewTransaction
type NewTransactionParams struct {
	Type        string
	Title       string
	Amount      decimal.Decimal
	CategoryID  uuid.UUID
	Description string
	OccurredAt  *time.Time
}

// NewTransaction validates params and builds a transaction stamped at now.
// OccurredAt defaults to now when not given.
func NewTransaction(ownerID uuid.UUID, p NewTransactionParams, now time.Time) (*Transaction, error) {
	txType, err := ParseTransactionType(p.Type)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(p.Amount)
	if err != nil {
		return nil, err
	}
	title, err := validateTitle(p.Title)
	if err != nil {
		return nil, err
	}
	if p.CategoryID == uuid.Nil {
		return nil, shared.NewValidationError("category", "Category is required")
	}
	if err := validateDescription(p.Description); err != nil {
		return nil, err
	}

	occurredAt := now
	if p.OccurredAt != nil {
		occurredAt = *p.OccurredAt
	}

	return &Transaction{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID, now),
		Type:               txType,
		Title:              title,
		Amount:             amount,
		CategoryID:         p.CategoryID,
		Description:        p.Description,
		OccurredAt:         occurredAt,
	}, nil
}

// TransactionPatch is a validated partial update. Nil fields are left unchanged.
type TransactionPatch struct {
	Type        *TransactionType
	Title       *string
	Amount      *valueobject.Amount
	CategoryID  *uuid.UUID
	Description *string
	OccurredAt  *time.Time
}

// PatchParams carries unvalidated input for NewTransactionPatch
type PatchParams struct {
	Type        *string
	Title       *string
	Amount      *decimal.Decimal
	CategoryID  *uuid.UUID
	Description *string
	OccurredAt  *time.Time
}

// NewTransactionPatch applies the create-time field rules to every field present
func NewTransactionPatch(p PatchParams) (TransactionPatch, error) {
	var patch TransactionPatch
	if p.Type != nil {
		txType, err := ParseTransactionType(*p.Type)
		if err != nil {
			return TransactionPatch{}, err
		}
		patch.Type = &txType
	}
	if p.Amount != nil {
		amount, err := parseAmount(*p.Amount)
		if err != nil {
			return TransactionPatch{}, err
		}
		patch.Amount = &amount
	}
	if p.Title != nil {
		title, err := validateTitle(*p.Title)
		if err != nil {
			return TransactionPatch{}, err
		}
		patch.Title = &title
	}
	if p.CategoryID != nil {
		if *p.CategoryID == uuid.Nil {
			return TransactionPatch{}, shared.NewValidationError("category", "Category is required")
		}
		categoryID := *p.CategoryID
		patch.CategoryID = &categoryID
	}
	if p.Description != nil {
		if err := validateDescription(*p.Description); err != nil {
			return TransactionPatch{}, err
		}
		description := *p.Description
		patch.Description = &description
	}
	if p.OccurredAt != nil {
		occurredAt := *p.OccurredAt
		patch.OccurredAt = &occurredAt
	}
	return patch, nil
}

// IsEmpty reports whether the patch changes nothing
func (p TransactionPatch) IsEmpty() bool {
	return p.Type == nil && p.Title == nil && p.Amount == nil &&
		p.CategoryID == nil && p.Description == nil && p.OccurredAt == nil
}

// ChangedFields lists the names of the fields the patch sets
func (p TransactionPatch) ChangedFields() []string {
	fields := make([]string, 0, 6)
	if p.Type != nil {
		fields = append(fields, "type")
	}
	if p.Title != nil {
		fields = append(fields, "title")
	}
	if p.Amount != nil {
		fields = append(fields, "amount")
	}
	if p.CategoryID != nil {
		fields = append(fields, "category")
	}
	if p.Description != nil {
		fields = append(fields, "description")
	}
	if p.OccurredAt != nil {
		fields = append(fields, "date")
	}
	return fields
}

func parseAmount(d decimal.Decimal) (valueobject.Amount, error) {
	amount, err := valueobject.NewAmount(d)
	if err != nil {
		return valueobject.Amount{}, shared.ErrInvalidAmount
	}
	return amount, nil
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", shared.NewValidationError("title", "Title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return "", shared.NewValidationError("title", "Title cannot exceed 200 characters")
	}
	return title, nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return shared.NewValidationError("description", "Description cannot exceed 500 characters")
	}
	return nil
}
