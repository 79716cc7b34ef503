package database

import (
	"errors"

	"devfolio/models"

	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects. The slice is never nil so an empty table
// serializes as [] rather than null.
func (r *ProjectRepo) FindAll() ([]models.Project, error) {
	projects := make([]models.Project, 0)
	err := r.db.Find(&projects).Error
	return projects, err
}

// FindByID returns the project, or nil when no row has that id.
func (r *ProjectRepo) FindByID(id int) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project and fills in the generated id.
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update replaces every field of the project with the given id. It returns
// nil when no row has that id.
func (r *ProjectRepo) Update(id int, project *models.Project) (*models.Project, error) {
	existing, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	project.ID = id
	if err := r.db.Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes the project with the given id, reporting whether a row was
// actually removed.
func (r *ProjectRepo) Delete(id int) (bool, error) {
	result := r.db.Delete(&models.Project{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
