package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Is(t *testing.T) {
	err := NewDomainError(CodeNotFound, "Transaction not found")
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", err)))
	assert.False(t, IsForbidden(err))
	assert.Equal(t, "Transaction not found", err.Error())
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(NewValidationError("page", "bad page")))
	assert.True(t, IsValidation(ErrInvalidTransactionType))
	assert.True(t, IsValidation(ErrInvalidAmount))
	assert.False(t, IsValidation(ErrNotFound))
	assert.False(t, IsValidation(errors.New("plain")))
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStoreError("count transactions", cause)

	assert.True(t, IsStoreError(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "store: count transactions: connection refused", err.Error())
	assert.NoError(t, NewStoreError("noop", nil))
	assert.False(t, IsStoreError(ErrNotFound))
}
