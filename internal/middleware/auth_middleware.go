package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tripora/travel-booking-backend/internal/models"
	"github.com/tripora/travel-booking-backend/pkg/jwt"
)

// UserContextKey is the key used to store user information in Gin context
const UserContextKey = "user"

// UserContext represents the authenticated user's information
type UserContext struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// SessionResolver maps an opaque session token to a user. Satisfied by
// services.AuthService.
type SessionResolver interface {
	ResolveSession(token string) (*models.User, error)
}

// Authenticate resolves the caller's identity if one is presented and
// stores it in the Gin context. The session cookie is checked first,
// then a Bearer token. Requests without a usable credential continue as
// anonymous; pair with RequireUser on routes that need an identity.
func Authenticate(resolver SessionResolver, jwtService *jwt.Service, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(cookieName); err == nil && token != "" {
			if user, err := resolver.ResolveSession(token); err == nil {
				c.Set(UserContextKey, UserContext{UserID: user.ID, Email: user.Email})
				c.Next()
				return
			}
		}

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				if claims, err := jwtService.ValidateAccessToken(strings.TrimSpace(parts[1])); err == nil {
					c.Set(UserContextKey, UserContext{UserID: claims.UserID, Email: claims.Email})
				}
			}
		}

		c.Next()
	}
}

// RequireUser rejects requests that carry no resolved identity. Apply
// after Authenticate.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := GetUserContext(c); !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Authentication is required",
				"code":    "UNAUTHENTICATED",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserContext retrieves the user context from Gin context
func GetUserContext(c *gin.Context) (UserContext, bool) {
	value, exists := c.Get(UserContextKey)
	if !exists {
		return UserContext{}, false
	}

	userCtx, ok := value.(UserContext)
	if !ok {
		return UserContext{}, false
	}

	return userCtx, true
}

// UserIDPtr returns the caller's user id or nil for anonymous requests
func UserIDPtr(c *gin.Context) *uuid.UUID {
	userCtx, exists := GetUserContext(c)
	if !exists {
		return nil
	}
	id := userCtx.UserID
	return &id
}
