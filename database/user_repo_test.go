package database

import (
	"testing"

	"devfolio/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_AddGeneratesUUID(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))

	user := &models.User{Username: "admin", Password: "hunter2"}
	require.NoError(t, repo.Add(user))

	_, err := uuid.Parse(user.ID)
	require.NoError(t, err)

	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, *user, *found)
}

func TestUserRepo_FindByUsername(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))

	require.NoError(t, repo.Add(&models.User{Username: "admin", Password: "hunter2"}))

	found, err := repo.FindByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "admin", found.Username)

	missing, err := repo.FindByUsername("nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepo_UsernameUnique(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))

	require.NoError(t, repo.Add(&models.User{Username: "admin", Password: "a"}))
	err := repo.Add(&models.User{Username: "admin", Password: "b"})
	require.Error(t, err)
}
