package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumelens/backend/config"
	"github.com/resumelens/backend/models"
)

func newTestJWTService(secret string) *JWTService {
	return NewJWTService(&config.Config{
		JWTSecret:      secret,
		JWTExpiryHours: 1,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService("test-secret")
	user := &models.User{
		ID:    "jane@example.com",
		Email: "jane@example.com",
		Name:  "Jane Doe",
	}

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Name, claims.Name)
	assert.Equal(t, "resumelens", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := newTestJWTService("secret-a").GenerateToken(&models.User{Email: "a@b.c"})
	require.NoError(t, err)

	_, err = newTestJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := newTestJWTService("test-secret").ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	svc := newTestJWTService("test-secret")

	token, err := svc.GenerateToken(&models.User{Email: "jane@example.com", Name: "Jane"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(token)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refreshed)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", claims.Email)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.NoError(t, CheckPassword(hash, "hunter2hunter2"))
	assert.Error(t, CheckPassword(hash, "wrong-password"))
}
