package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodgeworks/property-portal/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:    "user-123",
		Email: "manager@lodgeworks.dev",
		Role:  models.RoleManager,
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	s := NewService("test-secret", time.Hour)

	hash, err := s.HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, s.CheckPassword("correct horse battery", hash))
	assert.False(t, s.CheckPassword("wrong password", hash))
	assert.False(t, s.CheckPassword("correct horse battery", "not-a-bcrypt-hash"))
}

func TestGenerateAndValidateToken(t *testing.T) {
	s := NewService("test-secret", time.Hour)
	user := testUser()

	token, err := s.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.RoleManager, claims.Role)
	assert.Greater(t, claims.Exp, time.Now().Unix())
}

func TestValidateTokenAcceptsBearerPrefix(t *testing.T) {
	s := NewService("test-secret", time.Hour)

	token, err := s.GenerateToken(testUser())
	require.NoError(t, err)

	claims, err := s.ValidateToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	s := NewService("test-secret", time.Hour)
	s.tokenExp = -time.Hour

	token, err := s.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	signer := NewService("secret-one", time.Hour)
	verifier := NewService("secret-two", time.Hour)

	token, err := signer.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	s := NewService("test-secret", time.Hour)

	_, err := s.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.ValidateToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateRefreshToken(t *testing.T) {
	s := NewService("test-secret", time.Hour)

	a, err := s.GenerateRefreshToken()
	require.NoError(t, err)
	b, err := s.GenerateRefreshToken()
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestExtractTokenFromHeader(t *testing.T) {
	s := NewService("test-secret", time.Hour)

	token, err := s.ExtractTokenFromHeader("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	for _, header := range []string{"", "abc123", "Basic abc123", "Bearer", "Bearer "} {
		_, err := s.ExtractTokenFromHeader(header)
		assert.ErrorIs(t, err, ErrInvalidToken, "header %q", header)
	}
}

func TestValidatePassword(t *testing.T) {
	s := NewService("test-secret", time.Hour)

	assert.Error(t, s.ValidatePassword("short"))
	assert.NoError(t, s.ValidatePassword("long enough password"))
}

func TestValidateEmail(t *testing.T) {
	s := NewService("test-secret", time.Hour)

	assert.NoError(t, s.ValidateEmail("admin@lodgeworks.dev"))
	assert.Error(t, s.ValidateEmail("not-an-email"))
	assert.Error(t, s.ValidateEmail("missing-dot@host"))
}

func TestNewServiceDefaults(t *testing.T) {
	s := NewService("", 0)

	token, err := s.GenerateToken(testUser())
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Greater(t, claims.Exp, time.Now().Unix())
}
