package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered customer account
type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Email        string     `json:"email" db:"email"`
	Username     string     `json:"username" db:"username"`
	PasswordHash string     `json:"-" db:"password_hash"` // Never expose in JSON
	Phone        NullString `json:"phone,omitempty" db:"phone"`
	DateOfBirth  NullTime   `json:"date_of_birth,omitempty" db:"date_of_birth"`
	Nationality  NullString `json:"nationality,omitempty" db:"nationality"`
	AvatarURL    NullString `json:"avatar_url,omitempty" db:"avatar_url"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// SignupRequest represents the request to create a user account
type SignupRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Username    string  `json:"username" binding:"required,min=3"`
	Password    string  `json:"password" binding:"required,min=8"`
	Phone       *string `json:"phone,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

// SigninRequest represents the request to authenticate
type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents a partial profile update. Email and
// username are identity fields and cannot be changed here.
type UpdateProfileRequest struct {
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}
