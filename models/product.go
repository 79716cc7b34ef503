package models

// Product represents a product entry, same shape as Project minus the links.
type Product struct {
	ID          int     `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name        string  `json:"name" db:"name" gorm:"type:text;not null" validate:"required"`
	Description *string `json:"description" db:"description" gorm:"type:text"`
}

func (Product) TableName() string {
	return "products"
}
