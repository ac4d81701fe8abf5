package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/tripora/travel-booking-backend/internal/models"
	"github.com/tripora/travel-booking-backend/internal/repository"
)

// SessionRepository handles database operations for the sessions table
type SessionRepository struct {
	db DB
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session
func (r *SessionRepository) Create(session *models.Session) error {
	query := `
		INSERT INTO sessions (token, user_id, browser, os, mobile, ip_address, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.db.QueryRow(
		query,
		session.Token, session.UserID, session.Browser, session.OS,
		session.Mobile, session.IPAddress, session.ExpiresAt,
	).Scan(&session.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetByToken retrieves a session by its opaque token
func (r *SessionRepository) GetByToken(token string) (*models.Session, error) {
	session := &models.Session{}
	query := `
		SELECT token, user_id, browser, os, mobile, ip_address,
			   created_at, expires_at, revoked
		FROM sessions WHERE token = $1
	`

	if err := r.db.Get(session, query, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// Revoke marks a session unusable; unknown tokens are a no-op
func (r *SessionRepository) Revoke(token string) error {
	query := `UPDATE sessions SET revoked = TRUE WHERE token = $1`

	if _, err := r.db.Exec(query, token); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
