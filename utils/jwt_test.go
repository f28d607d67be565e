package utils

import (
	"testing"
	"time"

	"cafeteria-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	user := &models.User{ID: 42, Login: "a@b.com", Role: models.RoleStudent}

	token, err := GenerateJWT(user, "test-secret", 60)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "test-secret")
	require.NoError(t, err)

	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "a@b.com", claims.Login)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, time.Duration(60)*time.Minute, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestParseJWTWrongSecret(t *testing.T) {
	user := &models.User{ID: 1, Login: "a@b.com", Role: models.RoleAdmin}

	token, err := GenerateJWT(user, "right-secret", 60)
	require.NoError(t, err)

	_, err = ParseJWT(token, "wrong-secret")
	assert.Error(t, err)
}

func TestParseJWTExpired(t *testing.T) {
	user := &models.User{ID: 1, Login: "a@b.com", Role: models.RoleStudent}

	token, err := GenerateJWT(user, "secret", -1)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("secret", hash))
	assert.False(t, CheckPasswordHash("other", hash))
}
