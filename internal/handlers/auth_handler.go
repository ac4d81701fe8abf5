package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripora/travel-booking-backend/internal/config"
	"github.com/tripora/travel-booking-backend/internal/middleware"
	"github.com/tripora/travel-booking-backend/internal/models"
	"github.com/tripora/travel-booking-backend/internal/services"
)

// AuthHandler handles signup, signin, signout and profile requests
type AuthHandler struct {
	authService *services.AuthService
	session     config.SessionConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		session:     session,
	}
}

// AuthResponse represents a successful signup or signin
type AuthResponse struct {
	Message     string       `json:"message"`
	User        *models.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindingErrors(err))
		return
	}

	user, err := h.authService.Signup(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "email_taken",
				Message: "User already exists with this email",
				Code:    "EMAIL_TAKEN",
			})
		case errors.Is(err, services.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "username_taken",
				Message: "User already exists with this username",
				Code:    "USERNAME_TAKEN",
			})
		default:
			serviceError(c, err)
		}
		return
	}

	accessToken, err := h.startSession(c, user)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Message:     "Account created",
		User:        user,
		AccessToken: accessToken,
	})
}

// Signin handles POST /api/auth/signin
func (h *AuthHandler) Signin(c *gin.Context) {
	var req models.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindingErrors(err))
		return
	}

	user, err := h.authService.Signin(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "invalid_credentials",
				Message: "Invalid email or password",
				Code:    "INVALID_CREDENTIALS",
			})
			return
		}
		serviceError(c, err)
		return
	}

	accessToken, err := h.startSession(c, user)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Message:     "Signed in",
		User:        user,
		AccessToken: accessToken,
	})
}

// Signout handles POST /api/auth/signout. Revoking an unknown or absent
// token still succeeds: signout is idempotent.
func (h *AuthHandler) Signout(c *gin.Context) {
	if token, err := c.Cookie(h.session.CookieName); err == nil && token != "" {
		if err := h.authService.Signout(token); err != nil {
			internalError(c, err)
			return
		}
	}

	// Expire the cookie
	c.SetCookie(h.session.CookieName, "", -1, "/", "", h.session.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// GetProfile handles GET /api/user/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userCtx, _ := middleware.GetUserContext(c)

	user, err := h.authService.GetProfile(userCtx.UserID)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /api/user/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userCtx, _ := middleware.GetUserContext(c)

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindingErrors(err))
		return
	}

	user, err := h.authService.UpdateProfile(userCtx.UserID, &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// startSession creates the session record and sets the http-only cookie.
// The returned bearer token is for clients that cannot carry cookies.
func (h *AuthHandler) startSession(c *gin.Context, user *models.User) (string, error) {
	session, accessToken, err := h.authService.StartSession(user, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		return "", err
	}

	maxAge := int(h.session.TTL.Seconds())
	c.SetCookie(h.session.CookieName, session.Token, maxAge, "/", "", h.session.CookieSecure, true)
	return accessToken, nil
}
