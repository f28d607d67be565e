package services

import (
	"testing"

	"cafeteria-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileResolvesPreferences(t *testing.T) {
	db := openTestDB(t)
	_, err := NewSeedService(db).Seed(seedStart, 3)
	require.NoError(t, err)

	var student2 models.User
	require.NoError(t, db.Where("login = ?", "student2@example.com").First(&student2).Error)

	profile, err := NewProfileService(db).Profile(student2.ID)
	require.NoError(t, err)

	assert.Equal(t, "student2@example.com", profile.Login)
	assert.Equal(t, "STUDENT", profile.RoleCode)
	assert.Equal(t, "student", profile.Role)
	assert.Equal(t, 1500, profile.Money)
	assert.Equal(t, []string{"Dairy"}, profile.Disliked)
	assert.Equal(t, []string{"Lactose"}, profile.Allergies)
}

func TestProfileWithoutPreferences(t *testing.T) {
	db := openTestDB(t)
	_, err := NewSeedService(db).Seed(seedStart, 3)
	require.NoError(t, err)

	var admin models.User
	require.NoError(t, db.Where("login = ?", "admin@example.com").First(&admin).Error)

	profile, err := NewProfileService(db).Profile(admin.ID)
	require.NoError(t, err)

	assert.Equal(t, "ADMIN", profile.RoleCode)
	require.NotNil(t, profile.Disliked)
	require.NotNil(t, profile.Allergies)
	assert.Empty(t, profile.Disliked)
	assert.Empty(t, profile.Allergies)
}

func TestPurchasesForSeededStudent(t *testing.T) {
	db := openTestDB(t)
	_, err := NewSeedService(db).Seed(seedStart, 4)
	require.NoError(t, err)

	var student1 models.User
	require.NoError(t, db.Where("login = ?", "student1@example.com").First(&student1).Error)

	menus := NewMenuService(db)
	views, err := NewPurchaseService(db, menus).ForUser(student1.ID)
	require.NoError(t, err)
	require.Len(t, views, 4)

	for i, v := range views {
		assert.Equal(t, "BREAKFAST", v.Menu.TypeCode)
		assert.Equal(t, i%2 == 0, v.IsTaken)
		assert.Len(t, v.Menu.Dishes, 3)
	}
	assert.Equal(t, "2026-02-09", views[0].Menu.Date)
}
