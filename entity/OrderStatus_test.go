package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionTable(t *testing.T) {
	allowed := []struct{ from, to OrderStatus }{
		{StatusPlaced, StatusAccepted},
		{StatusPlaced, StatusCancelled},
		{StatusAccepted, StatusInProgress},
		{StatusAccepted, StatusCancelled},
		{StatusInProgress, StatusReady},
		{StatusInProgress, StatusCancelled},
		{StatusReady, StatusServed},
		{StatusReady, StatusCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}

	denied := []struct{ from, to OrderStatus }{
		{StatusPlaced, StatusServed},
		{StatusPlaced, StatusReady},
		{StatusAccepted, StatusServed},
		{StatusServed, StatusCancelled},
		{StatusCancelled, StatusAccepted},
		{StatusCancelled, StatusPlaced},
	}
	for _, tc := range denied {
		assert.False(t, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, StatusServed.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPlaced.Terminal())
	assert.False(t, OrderStatus("DELIVERED").Terminal())
}

func TestValid(t *testing.T) {
	for _, s := range []OrderStatus{StatusPlaced, StatusAccepted, StatusInProgress, StatusReady, StatusServed, StatusCancelled} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, OrderStatus("PENDING").Valid())
	assert.False(t, OrderStatus("").Valid())
}
