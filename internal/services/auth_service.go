package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mssola/user_agent"
	"golang.org/x/crypto/bcrypt"

	"github.com/tripora/travel-booking-backend/internal/models"
	"github.com/tripora/travel-booking-backend/internal/repository"
	"github.com/tripora/travel-booking-backend/pkg/jwt"
)

// AuthService handles signup, signin and session lifecycle
type AuthService struct {
	users      repository.UserRepository
	sessions   repository.SessionRepository
	jwtService *jwt.Service
	sessionTTL time.Duration
	bcryptCost int
}

// NewAuthService creates a new auth service
func NewAuthService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	jwtService *jwt.Service,
	sessionTTL time.Duration,
	bcryptCost int,
) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		jwtService: jwtService,
		sessionTTL: sessionTTL,
		bcryptCost: bcryptCost,
	}
}

// Signup registers a new user account. Email and username are
// case-insensitively unique.
func (s *AuthService) Signup(req *models.SignupRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Username:     strings.ToLower(strings.TrimSpace(req.Username)),
		PasswordHash: string(hash),
		Phone:        models.StringPtr(req.Phone),
		Nationality:  models.StringPtr(req.Nationality),
		AvatarURL:    models.StringPtr(req.AvatarURL),
	}

	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, &ValidationError{Fields: map[string]string{
				"date_of_birth": "date_of_birth must be in YYYY-MM-DD format",
			}}
		}
		user.DateOfBirth = models.TimeValue(dob)
	}

	if err := s.users.Create(user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Signin verifies credentials and returns the matching user. The error
// is identical for unknown email and wrong password.
func (s *AuthService) Signin(req *models.SigninRequest) (*models.User, error) {
	user, err := s.users.GetByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// StartSession issues an opaque session token plus a bearer JWT for
// clients that cannot carry cookies. Device details are parsed from the
// User-Agent header for the session record.
func (s *AuthService) StartSession(user *models.User, rawUserAgent, ipAddress string) (*models.Session, string, error) {
	now := time.Now().UTC()
	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		IPAddress: models.StringValue(ipAddress),
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if rawUserAgent != "" {
		ua := user_agent.New(rawUserAgent)
		browser, version := ua.Browser()
		session.Browser = models.StringValue(strings.TrimSpace(browser + " " + version))
		session.OS = models.StringValue(ua.OS())
		session.Mobile = ua.Mobile()
	}

	if err := s.sessions.Create(session); err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return session, accessToken, nil
}

// ResolveSession maps a session token to its user. Expired and revoked
// sessions resolve to nothing.
func (s *AuthService) ResolveSession(token string) (*models.User, error) {
	session, err := s.sessions.GetByToken(token)
	if err != nil {
		return nil, err
	}
	if !session.IsValid(time.Now().UTC()) {
		return nil, repository.ErrNotFound
	}
	return s.users.GetByID(session.UserID)
}

// Signout revokes a session token. Unknown tokens are a no-op.
func (s *AuthService) Signout(token string) error {
	return s.sessions.Revoke(token)
}

// GetProfile returns the user record for the given id
func (s *AuthService) GetProfile(userID uuid.UUID) (*models.User, error) {
	return s.users.GetByID(userID)
}

// UpdateProfile applies a partial profile update. Email and username
// are immutable identity fields and are not touched.
func (s *AuthService) UpdateProfile(userID uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = models.StringValue(*req.Phone)
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, &ValidationError{Fields: map[string]string{
				"date_of_birth": "date_of_birth must be in YYYY-MM-DD format",
			}}
		}
		user.DateOfBirth = models.TimeValue(dob)
	}
	if req.Nationality != nil {
		user.Nationality = models.StringValue(*req.Nationality)
	}
	if req.AvatarURL != nil {
		user.AvatarURL = models.StringValue(*req.AvatarURL)
	}

	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}
