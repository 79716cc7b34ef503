package database

import (
	"devfolio/models"

	"gorm.io/gorm"
)

// ProfileRepo manages the singleton profile row.
type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// Get returns the profile, or nil when none has been created yet.
func (r *ProfileRepo) Get() (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Limit(1).Find(&profile).Error
	if err != nil {
		return nil, err
	}
	if profile.ID == 0 {
		return nil, nil
	}
	return &profile, nil
}

// Add inserts the profile and fills in the generated id.
func (r *ProfileRepo) Add(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// Update replaces every field of the existing profile. When no row exists
// yet it falls back to Add, so callers never see a missing-profile error.
func (r *ProfileRepo) Update(profile *models.Profile) (*models.Profile, error) {
	existing, err := r.Get()
	if err != nil {
		return nil, err
	}
	if existing == nil {
		if err := r.Add(profile); err != nil {
			return nil, err
		}
		return profile, nil
	}

	profile.ID = existing.ID
	if err := r.db.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}
