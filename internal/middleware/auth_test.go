package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodgeworks/property-portal/internal/auth"
	"github.com/lodgeworks/property-portal/internal/models"
)

func newTestAuth(t *testing.T) (*auth.Service, string) {
	t.Helper()
	svc := auth.NewService("test-secret", time.Hour)
	token, err := svc.GenerateToken(&models.User{
		ID:    "user-123",
		Email: "manager@lodgeworks.dev",
		Role:  models.RoleManager,
	})
	require.NoError(t, err)
	return svc, token
}

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	svc, _ := newTestAuth(t)
	next, called := okHandler()
	handler := NewAuthMiddleware(svc).Authenticate(next)

	req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestAuthenticateRejectsBadToken(t *testing.T) {
	svc, _ := newTestAuth(t)
	next, called := okHandler()
	handler := NewAuthMiddleware(svc).Authenticate(next)

	req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestAuthenticateAcceptsValidToken(t *testing.T) {
	svc, token := newTestAuth(t)
	var claims *models.Claims
	handler := NewAuthMiddleware(svc).Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ = GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, claims)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, models.RoleManager, claims.Role)
}

func TestAuthenticateSkipsPublicPaths(t *testing.T) {
	svc, _ := newTestAuth(t)

	for _, path := range []string{"/api/auth/login", "/api/auth/register", "/health"} {
		next, called := okHandler()
		handler := NewAuthMiddleware(svc).Authenticate(next)

		req := httptest.NewRequest(http.MethodPost, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "path %s", path)
		assert.True(t, *called, "path %s", path)
	}
}

func withClaims(req *http.Request, role models.Role) *http.Request {
	claims := &models.Claims{UserID: "user-123", Role: role}
	return req.WithContext(context.WithValue(req.Context(), UserContextKey, claims))
}

func TestRequireRole(t *testing.T) {
	svc, _ := newTestAuth(t)
	m := NewAuthMiddleware(svc)

	cases := []struct {
		role     models.Role
		required models.Role
		want     int
	}{
		{models.RoleManager, models.RoleManager, http.StatusOK},
		{models.RoleAdmin, models.RoleManager, http.StatusOK},
		{models.RoleViewer, models.RoleManager, http.StatusForbidden},
	}
	for _, tc := range cases {
		next, _ := okHandler()
		handler := m.RequireRole(tc.required)(next)

		req := withClaims(httptest.NewRequest(http.MethodGet, "/api/properties", nil), tc.role)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, tc.want, rec.Code, "role %s requiring %s", tc.role, tc.required)
	}
}

func TestRequireRoleWithoutClaims(t *testing.T) {
	svc, _ := newTestAuth(t)
	next, _ := okHandler()
	handler := NewAuthMiddleware(svc).RequireRole(models.RoleManager)(next)

	req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequirePermission(t *testing.T) {
	svc, _ := newTestAuth(t)
	m := NewAuthMiddleware(svc)

	next, _ := okHandler()
	handler := m.RequirePermission("write")(next)

	req := withClaims(httptest.NewRequest(http.MethodPost, "/api/properties", nil), models.RoleManager)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = withClaims(httptest.NewRequest(http.MethodPost, "/api/properties", nil), models.RoleViewer)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRateLimit(t *testing.T) {
	next, _ := okHandler()
	handler := NewRateLimitMiddleware().RateLimit(3, 60)(next)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "10.0.0.1:4242"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "10.0.0.1:4242"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// A different client is not affected.
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "10.0.0.2:4242"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitHonorsForwardedFor(t *testing.T) {
	next, _ := okHandler()
	handler := NewRateLimitMiddleware().RateLimit(1, 60)(next)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.7")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
