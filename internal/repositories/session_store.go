package repositories

import (
	"context"
	"fmt"
	"sync"

	"servermart/internal/models"
)

// SessionStore holds checkout sessions for the duration of a visit.
// Sessions are not durable state; implementations may discard them freely
// once a visit ends.
type SessionStore interface {
	Save(ctx context.Context, session *models.CheckoutSession) error
	Get(ctx context.Context, id string) (*models.CheckoutSession, error)
	Delete(ctx context.Context, id string) error
}

// MemorySessionStore is an in-memory implementation of SessionStore.
type MemorySessionStore struct {
	sessions map[string]models.CheckoutSession
	mu       sync.RWMutex
}

// NewMemorySessionStore creates a new instance of MemorySessionStore.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]models.CheckoutSession),
	}
}

// Save stores or replaces a session.
func (s *MemorySessionStore) Save(_ context.Context, session *models.CheckoutSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = *session
	return nil
}

// Get returns a session by its ID.
func (s *MemorySessionStore) Get(_ context.Context, id string) (*models.CheckoutSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("checkout session %s: %w", id, ErrNotFound)
	}
	return &session, nil
}

// Delete removes a session by its ID. Deleting an absent session is not an
// error.
func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}
