package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rosterhq/roster-backend/internal/config"
	"github.com/rosterhq/roster-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "correct-horse-battery"

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		AdminPasswordHash: string(hash),
		JWTSecret:         "test-secret",
		JWTAccessExpiry:   15 * time.Minute,
		JWTRefreshExpiry:  24 * time.Hour,
	}
	return NewAuthService(newTestDB(t), cfg)
}

func TestLoginIssuesAdminToken(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(&dto.LoginRequest{Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	resp, err := svc.Login(&dto.LoginRequest{Password: testPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	token, err := jwt.Parse(resp.AccessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "admin", claims["sub"])
}

func TestLoginWithoutConfiguredHash(t *testing.T) {
	svc := NewAuthService(newTestDB(t), &config.Config{JWTSecret: "s"})
	_, err := svc.Login(&dto.LoginRequest{Password: "anything"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshIsSingleUse(t *testing.T) {
	svc := newAuthService(t)

	first, err := svc.Login(&dto.LoginRequest{Password: testPassword})
	require.NoError(t, err)

	second, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// the redeemed token is revoked
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)

	// the rotated token still works
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: second.RefreshToken})
	assert.NoError(t, err)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Login(&dto.LoginRequest{Password: testPassword})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshUnknownToken(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: "never-issued"})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
