package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodgeworks/property-portal/internal/auth"
	"github.com/lodgeworks/property-portal/internal/data"
	"github.com/lodgeworks/property-portal/internal/db"
	"github.com/lodgeworks/property-portal/internal/models"
)

func newAuthTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger, _ := test.NewNullLogger()
	probe := &fakeProbe{available: false}
	dataService := data.NewService(db.NewRemoteStore(nil, ""), db.NewLocalStore(), probe, logger)
	authService := auth.NewService("test-secret", time.Hour)

	mux := http.NewServeMux()
	NewAuthHandler(authService, dataService).RegisterRoutes(mux)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func registerPayload(email string) map[string]interface{} {
	return map[string]interface{}{
		"email":      email,
		"password":   "sufficiently-long",
		"first_name": "Robin",
		"last_name":  "Calloway",
		"role":       "manager",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	server := newAuthTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/auth/register", registerPayload("robin@example.com"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var registered models.LoginResponse
	decodeBody(t, resp, &registered)
	assert.NotEmpty(t, registered.Token)
	assert.NotEmpty(t, registered.RefreshToken)
	assert.Equal(t, "robin@example.com", registered.User.Email)
	assert.Empty(t, registered.User.PasswordHash, "hash must never leave the server")

	resp = doJSON(t, http.MethodPost, server.URL+"/api/auth/login", map[string]string{
		"email":    "robin@example.com",
		"password": "sufficiently-long",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var logged models.LoginResponse
	decodeBody(t, resp, &logged)
	assert.NotEmpty(t, logged.Token)
	assert.Equal(t, models.RoleManager, logged.User.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	server := newAuthTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/auth/register", registerPayload("robin@example.com"))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, server.URL+"/api/auth/login", map[string]string{
		"email":    "robin@example.com",
		"password": "wrong-password",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	server := newAuthTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever-it-is",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRequiresCredentials(t *testing.T) {
	server := newAuthTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/auth/login", map[string]string{
		"email": "robin@example.com",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	server := newAuthTestServer(t)

	cases := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"bad email", map[string]interface{}{"email": "not-an-email", "password": "sufficiently-long", "role": "viewer"}},
		{"short password", map[string]interface{}{"email": "a@b.co", "password": "short", "role": "viewer"}},
		{"bad role", map[string]interface{}{"email": "a@b.co", "password": "sufficiently-long", "role": "overlord"}},
	}
	for _, tc := range cases {
		resp := doJSON(t, http.MethodPost, server.URL+"/api/auth/register", tc.payload)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, tc.name)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	server := newAuthTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/auth/register", registerPayload("robin@example.com"))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, server.URL+"/api/auth/register", registerPayload("robin@example.com"))
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestLoginUpdatesLastLogin(t *testing.T) {
	server := newAuthTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/auth/register", registerPayload("robin@example.com"))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, server.URL+"/api/auth/login", map[string]string{
		"email":    "robin@example.com",
		"password": "sufficiently-long",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, server.URL+"/api/auth/login", map[string]string{
		"email":    "robin@example.com",
		"password": "sufficiently-long",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var logged models.LoginResponse
	decodeBody(t, resp, &logged)
	assert.NotNil(t, logged.User.LastLogin)
}
