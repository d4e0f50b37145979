package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockEventHandler(t *testing.T) {
	handler := NewMockEventHandler("TransactionCreated", "TransactionDeleted")
	assert.Equal(t, []string{"TransactionCreated", "TransactionDeleted"}, handler.EventTypes())
	assert.Equal(t, 0, handler.HandledCount())

	owner := uuid.New()
	event := NewTestEvent("TransactionCreated", owner)
	require.NoError(t, handler.Handle(context.Background(), event))
	assert.Equal(t, 1, handler.HandledCount())
	assert.Equal(t, owner, handler.Handled()[0].OwnerID())

	handler.SetError(assert.AnError)
	assert.ErrorIs(t, handler.Handle(context.Background(), event), assert.AnError)

	handler.Reset()
	assert.Equal(t, 0, handler.HandledCount())
	assert.NoError(t, handler.Handle(context.Background(), event))
}

func TestWaitForEventCount(t *testing.T) {
	handler := NewMockEventHandler()

	go func() {
		for range 3 {
			_ = handler.Handle(context.Background(), NewTestEvent("TransactionUpdated", uuid.New()))
		}
	}()

	assert.True(t, WaitForEventCount(t, handler, 3, time.Second))
	assert.False(t, WaitForEventCount(t, handler, 4, 20*time.Millisecond))
}
