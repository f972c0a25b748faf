// File: services/chatbot/store.go
package chatbot

import (
	"context"
	"sync"
	"time"
)

// SessionStore persists conversations between turns. Implementations must
// return ErrSessionNotFound when the id is unknown and wrap infrastructure
// failures in ErrStorageUnavailable.
type SessionStore interface {
	Get(ctx context.Context, id string) (*Session, error)
	Put(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, id string) error
}

// MemorySessionStore keeps sessions in process memory. It backs tests and
// single-node setups without Redis.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
}

// NewMemorySessionStore creates an in-memory store. ttl of zero disables
// store-side expiry (the engine still enforces its own inactivity window).
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]Session),
		ttl:      ttl,
	}
}

func (m *MemorySessionStore) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	if m.ttl > 0 && time.Since(sess.UpdatedAt) > m.ttl {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil, ErrSessionExpired
	}
	copied := sess
	return &copied, nil
}

func (m *MemorySessionStore) Put(ctx context.Context, sess *Session) error {
	m.mu.Lock()
	m.sessions[sess.ID] = *sess
	m.mu.Unlock()
	return nil
}

func (m *MemorySessionStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}
