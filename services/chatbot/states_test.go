package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionTableClosure(t *testing.T) {
	known := make(map[State]bool, len(States))
	for _, s := range States {
		known[s] = true
	}

	// Every non-terminal state must have at least one advancing edge, and
	// every edge must land on a known state.
	for _, s := range States {
		edges, ok := transitions[s]
		if s.Terminal() {
			assert.False(t, ok, "terminal state %s must have no outgoing edges", s)
			continue
		}
		assert.True(t, ok, "non-terminal state %s must have outgoing edges", s)
		assert.NotEmpty(t, edges, "non-terminal state %s must have outgoing edges", s)
		for intent, next := range edges {
			assert.True(t, known[next], "edge %s x %s points at unknown state %s", s, intent, next)
		}
	}

	// No state outside the closed set appears as a table key.
	for s := range transitions {
		assert.True(t, known[s], "table key %s is not a known state", s)
	}
}

func TestNextState(t *testing.T) {
	next, ok := NextState(StateGreeting, IntentNameGiven)
	assert.True(t, ok)
	assert.Equal(t, StateSymptomIntake, next)

	next, ok = NextState(StateConfirmation, IntentConfirm)
	assert.True(t, ok)
	assert.Equal(t, StateBooked, next)

	// Unmapped pairs are self-loops.
	next, ok = NextState(StateDateSelection, IntentConfirm)
	assert.False(t, ok)
	assert.Equal(t, StateDateSelection, next)

	next, ok = NextState(StateBooked, IntentGreeting)
	assert.False(t, ok)
	assert.Equal(t, StateBooked, next)
}
