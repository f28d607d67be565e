package services

import (
	"testing"

	"cafeteria-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterNormalizesLogin(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuthService(db)

	id, err := auth.Register("  A@B.com ", "secret")
	require.NoError(t, err)
	assert.NotZero(t, id)

	var user models.User
	require.NoError(t, db.First(&user, id).Error)
	assert.Equal(t, "a@b.com", user.Login)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, 0, user.Money)
	assert.NotEqual(t, "secret", user.PasswordHash)
}

func TestRegisterDuplicate(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuthService(db)

	_, err := auth.Register("a@b.com", "secret")
	require.NoError(t, err)

	_, err = auth.Register(" A@B.COM ", "other")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestRegisterValidation(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuthService(db)

	tests := []struct {
		name     string
		login    string
		password string
	}{
		{"empty login", "", "secret"},
		{"empty password", "a@b.com", ""},
		{"whitespace login", "   ", "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Register(tt.login, tt.password)
			assert.ErrorIs(t, err, ErrEmptyCredentials)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuthService(db)

	_, err := auth.Register("a@b.com", "secret")
	require.NoError(t, err)

	user, err := auth.Authenticate(" A@b.com ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Login)

	_, err = auth.Authenticate("a@b.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Authenticate("missing@b.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
