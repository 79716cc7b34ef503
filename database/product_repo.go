package database

import (
	"errors"

	"devfolio/models"

	"gorm.io/gorm"
)

type ProductRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db}
}

// FindAll returns all products, never a nil slice.
func (r *ProductRepo) FindAll() ([]models.Product, error) {
	products := make([]models.Product, 0)
	err := r.db.Find(&products).Error
	return products, err
}

// FindByID returns the product, or nil when no row has that id.
func (r *ProductRepo) FindByID(id int) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Add inserts a new product and fills in the generated id.
func (r *ProductRepo) Add(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update replaces every field of the product with the given id. It returns
// nil when no row has that id.
func (r *ProductRepo) Update(id int, product *models.Product) (*models.Product, error) {
	existing, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	product.ID = id
	if err := r.db.Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes the product with the given id, reporting whether a row was
// actually removed.
func (r *ProductRepo) Delete(id int) (bool, error) {
	result := r.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
