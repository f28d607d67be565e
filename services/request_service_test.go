package services

import (
	"testing"

	"cafeteria-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLifecycle(t *testing.T) {
	db := openTestDB(t)
	_, err := NewSeedService(db).Seed(seedStart, 3)
	require.NoError(t, err)

	var product models.Product
	require.NoError(t, db.Where("name = ?", "Rice").First(&product).Error)

	svc := NewRequestService(db)

	created, err := svc.Create(product.ID, 12.5)
	require.NoError(t, err)
	assert.False(t, created.IsAgreed)
	assert.Nil(t, created.Fulfilled)
	assert.Equal(t, "Rice", created.Product.Name)

	agreed, err := svc.Agree(created.ID)
	require.NoError(t, err)
	assert.True(t, agreed.IsAgreed)
	assert.Nil(t, agreed.Fulfilled)

	fulfilled, err := svc.Fulfill(created.ID)
	require.NoError(t, err)
	assert.True(t, fulfilled.IsAgreed)
	require.NotNil(t, fulfilled.Fulfilled)
}

func TestRequestValidation(t *testing.T) {
	db := openTestDB(t)
	_, err := NewSeedService(db).Seed(seedStart, 3)
	require.NoError(t, err)

	var product models.Product
	require.NoError(t, db.Order("id asc").First(&product).Error)

	svc := NewRequestService(db)

	_, err = svc.Create(product.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Create(99999, 5)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Agree(99999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Fulfill(99999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeededRequests(t *testing.T) {
	db := openTestDB(t)
	_, err := NewSeedService(db).Seed(seedStart, 3)
	require.NoError(t, err)

	requests, err := NewRequestService(db).List()
	require.NoError(t, err)
	require.Len(t, requests, 3)

	assert.Equal(t, "Fish (fillet)", requests[0].Product.Name)
	assert.False(t, requests[0].IsAgreed)
	assert.Nil(t, requests[0].Fulfilled)

	assert.Equal(t, "Apples", requests[1].Product.Name)
	assert.True(t, requests[1].IsAgreed)
	require.NotNil(t, requests[1].Fulfilled)

	assert.Equal(t, "Bread", requests[2].Product.Name)
	assert.True(t, requests[2].IsAgreed)
}
