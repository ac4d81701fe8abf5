package models

import (
	"time"

	"github.com/google/uuid"
)

// Session represents an opaque cookie-backed session. The token is the
// cookie value; nothing about the user is derivable from it.
type Session struct {
	Token      string     `json:"-" db:"token"`
	UserID     uuid.UUID  `json:"user_id" db:"user_id"`
	Browser    NullString `json:"browser,omitempty" db:"browser"`
	OS         NullString `json:"os,omitempty" db:"os"`
	Mobile     bool       `json:"mobile" db:"mobile"`
	IPAddress  NullString `json:"ip_address,omitempty" db:"ip_address"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	ExpiresAt  time.Time  `json:"expires_at" db:"expires_at"`
	Revoked    bool       `json:"revoked" db:"revoked"`
}

// IsValid reports whether the session can still authenticate requests
func (s *Session) IsValid(now time.Time) bool {
	return !s.Revoked && now.Before(s.ExpiresAt)
}
