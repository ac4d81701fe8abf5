package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup_Success(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/signup", gin.H{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"username": "janedoe",
		"password": "s3cret-password",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["access_token"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "jane@example.com", user["email"])
	// The password hash never leaves the server
	assert.NotContains(t, w.Body.String(), "password")

	var sessionCookie bool
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == testCookieName {
			sessionCookie = true
			assert.True(t, cookie.HttpOnly)
		}
	}
	assert.True(t, sessionCookie, "signup should set the session cookie")
}

func TestSignup_ValidationErrors(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/signup", gin.H{
		"name":     "Jane Doe",
		"email":    "not-an-email",
		"username": "janedoe",
		"password": "short",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	fields := body["fields"].(map[string]interface{})
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	router, _ := newTestAPI(t)
	signupAndCookie(t, router, "jane@example.com", "janedoe")

	w := doJSON(t, router, http.MethodPost, "/api/auth/signup", gin.H{
		"name":     "Other Jane",
		"email":    "jane@example.com",
		"username": "otherjane",
		"password": "s3cret-password",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists with this email")
}

func TestSignin_SuccessAndWrongPassword(t *testing.T) {
	router, _ := newTestAPI(t)
	signupAndCookie(t, router, "jane@example.com", "janedoe")

	w := doJSON(t, router, http.MethodPost, "/api/auth/signin", gin.H{
		"email":    "jane@example.com",
		"password": "s3cret-password",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["access_token"])

	w = doJSON(t, router, http.MethodPost, "/api/auth/signin", gin.H{
		"email":    "jane@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
}

func TestSignout_RevokesCookieSession(t *testing.T) {
	router, _ := newTestAPI(t)
	cookie := signupAndCookie(t, router, "jane@example.com", "janedoe")

	// Profile works while signed in
	w := doJSON(t, router, http.MethodGet, "/api/user/profile", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/auth/signout", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	// The old token no longer authenticates
	w = doJSON(t, router, http.MethodGet, "/api/user/profile", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfile_RequiresAuth(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodGet, "/api/user/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	router, _ := newTestAPI(t)
	cookie := signupAndCookie(t, router, "jane@example.com", "janedoe")

	w := doJSON(t, router, http.MethodPut, "/api/user/profile", gin.H{
		"name":        "Jane D.",
		"nationality": "British",
	}, cookie)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Jane D.", body["name"])
	assert.Equal(t, "British", body["nationality"])
	// Identity fields stay put
	assert.Equal(t, "jane@example.com", body["email"])
	assert.Equal(t, "janedoe", body["username"])
}

func TestAuthenticate_BearerTokenWorksWithoutCookie(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/signup", gin.H{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"username": "janedoe",
		"password": "s3cret-password",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	token := decodeBody(t, w)["access_token"].(string)

	req := newAuthorizedRequest(t, http.MethodGet, "/api/user/profile", token)
	rec := serveHTTP(router, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
