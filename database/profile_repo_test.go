package database

import (
	"testing"

	"devfolio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepo_GetBeforeCreate(t *testing.T) {
	repo := NewProfileRepo(newTestDB(t))

	profile, err := repo.Get()
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestProfileRepo_AddThenGet(t *testing.T) {
	repo := NewProfileRepo(newTestDB(t))

	profile := &models.Profile{
		Name:  "Ada",
		Email: "ada@example.com",
		Bio:   strPtr("systems programmer"),
	}
	require.NoError(t, repo.Add(profile))
	require.NotZero(t, profile.ID)

	found, err := repo.Get()
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, *profile, *found)
	assert.Nil(t, found.PhotoURL)
	assert.Nil(t, found.Website)
}

func TestProfileRepo_UpdateFallsBackToCreate(t *testing.T) {
	repo := NewProfileRepo(newTestDB(t))

	// No row exists yet; update must never report a missing profile.
	updated, err := repo.Update(&models.Profile{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotZero(t, updated.ID)

	found, err := repo.Get()
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Ada", found.Name)
}

func TestProfileRepo_UpdateKeepsSingletonID(t *testing.T) {
	repo := NewProfileRepo(newTestDB(t))

	first := &models.Profile{Name: "Ada", Email: "ada@example.com", Title: strPtr("engineer")}
	require.NoError(t, repo.Add(first))

	updated, err := repo.Update(&models.Profile{Name: "Grace", Email: "grace@example.com"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)

	found, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, "Grace", found.Name)
	// Full replace: the title submitted as absent is now null.
	assert.Nil(t, found.Title)
}
