// Package storage provides session store implementations.
package storage

import (
	"context"
	"sync"
	"time"

	"github.com/hammamikhairi/foodrescuer/internal/domain"
	"github.com/hammamikhairi/foodrescuer/internal/logger"
)

// Compile-time interface check.
var _ domain.SessionStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory session store. Each session is owned by one
// conversation at a time; the lock guards the map for the HTTP surface,
// which serves many sessions from one process.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	log      *logger.Logger
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*domain.Session),
		log:      log,
	}
}

// Save persists a session. Overwrites if it already exists.
func (s *MemoryStore) Save(ctx context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.UpdatedAt = time.Now()
	s.log.Debug("saving session %s (%d ingredients)", session.ID, len(session.AvailableIngredients))
	s.sessions[session.ID] = session
	return nil
}

// Load retrieves a session by ID.
func (s *MemoryStore) Load(ctx context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		s.log.Debug("session not found: %s", id)
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

// Delete removes a session by ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, id)
	s.log.Debug("deleted session %s", id)
	return nil
}

// ListActive returns every stored session.
func (s *MemoryStore) ListActive(ctx context.Context) ([]*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess)
	}
	s.log.Debug("listing sessions, count=%d", len(out))
	return out, nil
}
