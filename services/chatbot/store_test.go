package chatbot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStoreRoundTrip(t *testing.T) {
	store := NewMemorySessionStore(time.Hour)
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	sess := NewSession("s1", time.Now())
	sess.Slots.PatientName = "Jane"
	require.NoError(t, store.Put(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, StateGreeting, got.State)
	assert.Equal(t, "Jane", got.Slots.PatientName)

	// Get hands out a copy; mutating it must not leak back into the store.
	got.Slots.PatientName = "Mallory"
	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Jane", again.Slots.PatientName)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	store := NewMemorySessionStore(time.Hour)
	ctx := context.Background()

	stale := NewSession("stale", time.Now().Add(-2*time.Hour))
	stale.UpdatedAt = time.Now().Add(-2 * time.Hour)
	require.NoError(t, store.Put(ctx, stale))

	_, err := store.Get(ctx, "stale")
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestSessionExpiredAt(t *testing.T) {
	now := time.Now()
	sess := NewSession("s", now)

	assert.False(t, sess.ExpiredAt(now.Add(59*time.Minute), time.Hour))
	assert.True(t, sess.ExpiredAt(now.Add(61*time.Minute), time.Hour))
	// Zero TTL disables expiry.
	assert.False(t, sess.ExpiredAt(now.Add(24*time.Hour), 0))
}
