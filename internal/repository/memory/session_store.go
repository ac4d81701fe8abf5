package memory

import (
	"sync"

	"github.com/tripora/travel-booking-backend/internal/models"
	"github.com/tripora/travel-booking-backend/internal/repository"
)

// SessionStore holds sessions keyed by their opaque token
type SessionStore struct {
	mu      sync.RWMutex
	byToken map[string]models.Session
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{byToken: map[string]models.Session{}}
}

// Create stores the session record
func (s *SessionStore) Create(session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session.CreatedAt.IsZero() {
		session.CreatedAt = now()
	}
	s.byToken[session.Token] = *session
	return nil
}

// GetByToken returns the session or ErrNotFound
func (s *SessionStore) GetByToken(token string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.byToken[token]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &session, nil
}

// Revoke marks the session unusable. Revoking an unknown token is a
// no-op: signout must be idempotent.
func (s *SessionStore) Revoke(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.byToken[token]
	if !ok {
		return nil
	}
	session.Revoked = true
	s.byToken[token] = session
	return nil
}
