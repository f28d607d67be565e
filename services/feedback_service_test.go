package services

import (
	"testing"

	"cafeteria-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackCreate(t *testing.T) {
	db := openTestDB(t)
	_, err := NewSeedService(db).Seed(seedStart, 3)
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.Where("login = ?", "student1@example.com").First(&user).Error)
	var menu models.Menu
	require.NoError(t, db.Order("id asc").First(&menu).Error)
	var dish models.Dish
	require.NoError(t, db.Where("name = ?", "Sweet tea").First(&dish).Error)

	created, err := NewFeedbackService(db).Create(user.ID, menu.ID, dish.ID, "  Good tea.  ")
	require.NoError(t, err)
	assert.Equal(t, "Good tea.", created.Text)
	assert.NotZero(t, created.ID)
}

func TestFeedbackValidation(t *testing.T) {
	db := openTestDB(t)
	_, err := NewSeedService(db).Seed(seedStart, 3)
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.Where("login = ?", "student1@example.com").First(&user).Error)
	var menu models.Menu
	require.NoError(t, db.Order("id asc").First(&menu).Error)
	var dish models.Dish
	require.NoError(t, db.Order("id asc").First(&dish).Error)

	svc := NewFeedbackService(db)

	_, err = svc.Create(user.ID, menu.ID, dish.ID, "   ")
	assert.ErrorIs(t, err, ErrEmptyFeedback)

	_, err = svc.Create(user.ID, 99999, dish.ID, "fine")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Create(user.ID, menu.ID, 99999, "fine")
	assert.ErrorIs(t, err, ErrNotFound)
}
