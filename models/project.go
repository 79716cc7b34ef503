package models

// Project represents a portfolio project entry.
type Project struct {
	ID          int     `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name        string  `json:"name" db:"name" gorm:"type:text;not null" validate:"required"`
	Description *string `json:"description" db:"description" gorm:"type:text"`
	URL         *string `json:"url" db:"url" gorm:"column:url;type:text"`
	// Technologies is a comma-joined list; the client renders it split.
	Technologies *string `json:"technologies" db:"technologies" gorm:"type:text"`
}

func (Project) TableName() string {
	return "projects"
}
