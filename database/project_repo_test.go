package database

import (
	"testing"

	"devfolio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestProjectRepo_AddThenFindByID(t *testing.T) {
	repo := NewProjectRepo(newTestDB(t))

	project := &models.Project{
		Name:         "heatmap",
		Description:  strPtr("activity heatmap generator"),
		URL:          strPtr("https://example.com/heatmap"),
		Technologies: strPtr("go,sqlite"),
	}
	require.NoError(t, repo.Add(project))
	require.NotZero(t, project.ID)

	found, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, *project, *found)
}

func TestProjectRepo_OptionalFieldsPersistAsNull(t *testing.T) {
	repo := NewProjectRepo(newTestDB(t))

	project := &models.Project{Name: "bare"}
	require.NoError(t, repo.Add(project))

	found, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Nil(t, found.Description)
	assert.Nil(t, found.URL)
	assert.Nil(t, found.Technologies)
}

func TestProjectRepo_FindByIDAbsent(t *testing.T) {
	repo := NewProjectRepo(newTestDB(t))

	found, err := repo.FindByID(42)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestProjectRepo_FindAllEmptyIsNotNil(t *testing.T) {
	repo := NewProjectRepo(newTestDB(t))

	projects, err := repo.FindAll()
	require.NoError(t, err)
	require.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestProjectRepo_UpdateReplacesEveryField(t *testing.T) {
	repo := NewProjectRepo(newTestDB(t))

	project := &models.Project{
		Name:        "old name",
		Description: strPtr("old description"),
		URL:         strPtr("https://old.example.com"),
	}
	require.NoError(t, repo.Add(project))

	// Full replace: fields absent from the replacement become null.
	updated, err := repo.Update(project.ID, &models.Project{Name: "new name"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, project.ID, updated.ID)

	found, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, "new name", found.Name)
	assert.Nil(t, found.Description)
	assert.Nil(t, found.URL)
}

func TestProjectRepo_UpdateAbsentReturnsNil(t *testing.T) {
	repo := NewProjectRepo(newTestDB(t))

	updated, err := repo.Update(7, &models.Project{Name: "ghost"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestProjectRepo_Delete(t *testing.T) {
	repo := NewProjectRepo(newTestDB(t))

	project := &models.Project{Name: "doomed"}
	require.NoError(t, repo.Add(project))

	deleted, err := repo.Delete(project.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	found, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	// Second delete reports that nothing was removed.
	deleted, err = repo.Delete(project.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
