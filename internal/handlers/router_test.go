package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tripora/travel-booking-backend/internal/config"
	"github.com/tripora/travel-booking-backend/internal/middleware"
	"github.com/tripora/travel-booking-backend/internal/repository/memory"
	"github.com/tripora/travel-booking-backend/internal/services"
	"github.com/tripora/travel-booking-backend/pkg/jwt"
)

const testCookieName = "session_token"

// newTestAPI wires the full route table over a fresh in-memory store,
// mirroring the production router.
func newTestAPI(t *testing.T) (*gin.Engine, *memory.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	jwtService := jwt.NewService("test-secret", time.Hour)
	sessionCfg := config.SessionConfig{TTL: time.Hour, CookieName: testCookieName}

	authService := services.NewAuthService(store.Users, store.Sessions, jwtService, sessionCfg.TTL, bcrypt.MinCost)
	bookingService := services.NewBookingService(store.Bookings)

	authHandler := NewAuthHandler(authService, sessionCfg)
	bookingHandler := NewBookingHandler(bookingService)
	catalogHandler := NewCatalogHandler(store.Catalog)

	r := gin.New()
	r.Use(middleware.Authenticate(authService, jwtService, sessionCfg.CookieName))

	api := r.Group("/api")
	RegisterRoutes(api, authHandler, catalogHandler, bookingHandler)
	return r, store
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// signupAndCookie registers a user and returns their session cookie
func signupAndCookie(t *testing.T, router *gin.Engine, email, username string) *http.Cookie {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/auth/signup", gin.H{
		"name":     "Jane Doe",
		"email":    email,
		"username": username,
		"password": "s3cret-password",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == testCookieName {
			return cookie
		}
	}
	t.Fatal("no session cookie set on signup")
	return nil
}

func newAuthorizedRequest(t *testing.T, method, path, bearerToken string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+bearerToken)
	return req
}

func serveHTTP(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
