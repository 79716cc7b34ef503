package database

import (
	"devfolio/models"

	"gorm.io/gorm"
)

type Database struct {
	profileRepo *ProfileRepo
	projectRepo *ProjectRepo
	productRepo *ProductRepo
	userRepo    *UserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		profileRepo: NewProfileRepo(db),
		projectRepo: NewProjectRepo(db),
		productRepo: NewProductRepo(db),
		userRepo:    NewUserRepo(db),
	}
}

// AutoMigrate creates or updates the schema for every entity family.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Profile{},
		&models.Project{},
		&models.Product{},
		&models.User{},
	)
}

// Accessor methods for each repository

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProductRepo() *ProductRepo {
	return d.productRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}
