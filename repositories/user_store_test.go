package repositories

import (
	"testing"

	"staffdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserStoreCreateAndGet(t *testing.T) {
	store := NewGormUserStore(newTestDB(t))

	user := &models.User{Username: "ann", PasswordHash: "hash", Role: "user"}
	require.NoError(t, store.Create(user))
	require.NotZero(t, user.ID)

	got, err := store.GetByUsername("ann")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)

	byID, err := store.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann", byID.Username)
}

func TestUserStoreGetByUsernameIsCaseSensitive(t *testing.T) {
	store := NewGormUserStore(newTestDB(t))

	require.NoError(t, store.Create(&models.User{Username: "Ann", PasswordHash: "hash"}))

	_, err := store.GetByUsername("ann")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserStoreRejectsDuplicateUsername(t *testing.T) {
	store := NewGormUserStore(newTestDB(t))

	require.NoError(t, store.Create(&models.User{Username: "ann", PasswordHash: "h1"}))
	err := store.Create(&models.User{Username: "ann", PasswordHash: "h2"})
	assert.Error(t, err)
}

func TestUserStoreGetMissingUser(t *testing.T) {
	store := NewGormUserStore(newTestDB(t))

	_, err := store.GetByUsername("nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
