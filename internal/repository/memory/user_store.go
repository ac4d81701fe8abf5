package memory

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/tripora/travel-booking-backend/internal/models"
	"github.com/tripora/travel-booking-backend/internal/repository"
)

// UserStore holds user accounts keyed by id, with email and username
// uniqueness enforced at insert time.
type UserStore struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]models.User
	byEmail    map[string]uuid.UUID
	byUsername map[string]uuid.UUID
}

// NewUserStore creates an empty user store
func NewUserStore() *UserStore {
	return &UserStore{
		byID:       map[uuid.UUID]models.User{},
		byEmail:    map[string]uuid.UUID{},
		byUsername: map[string]uuid.UUID{},
	}
}

// Create assigns a fresh id if missing, stamps timestamps and stores the
// user. Email and username comparisons are case-insensitive.
func (s *UserStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	emailKey := strings.ToLower(user.Email)
	usernameKey := strings.ToLower(user.Username)

	if _, exists := s.byEmail[emailKey]; exists {
		return repository.ErrDuplicateEmail
	}
	if _, exists := s.byUsername[usernameKey]; exists {
		return repository.ErrDuplicateUsername
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	ts := now()
	user.CreatedAt = ts
	user.UpdatedAt = ts

	s.byID[user.ID] = *user
	s.byEmail[emailKey] = user.ID
	s.byUsername[usernameKey] = user.ID
	return nil
}

// GetByID returns the user or ErrNotFound
func (s *UserStore) GetByID(id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

// GetByEmail returns the user with the given email or ErrNotFound
func (s *UserStore) GetByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user := s.byID[id]
	return &user, nil
}

// GetByUsername returns the user with the given username or ErrNotFound
func (s *UserStore) GetByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byUsername[strings.ToLower(username)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user := s.byID[id]
	return &user, nil
}

// Update merges mutable profile fields into the stored record and
// refreshes the update timestamp. Email and username never change.
func (s *UserStore) Update(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.byID[user.ID]
	if !ok {
		return repository.ErrNotFound
	}

	stored.Name = user.Name
	stored.PasswordHash = user.PasswordHash
	stored.Phone = user.Phone
	stored.DateOfBirth = user.DateOfBirth
	stored.Nationality = user.Nationality
	stored.AvatarURL = user.AvatarURL
	stored.UpdatedAt = now()

	s.byID[user.ID] = stored
	*user = stored
	return nil
}
