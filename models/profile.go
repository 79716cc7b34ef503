package models

// Profile holds the site owner's public information. The table is a
// singleton: at most one row exists and update falls back to create.
type Profile struct {
	ID       int     `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name     string  `json:"name" db:"name" gorm:"type:text;not null" validate:"required"`
	Email    string  `json:"email" db:"email" gorm:"type:text;not null" validate:"required"`
	PhotoURL *string `json:"photoUrl" db:"photo_url" gorm:"column:photo_url;type:text"`
	Title    *string `json:"title" db:"title" gorm:"type:text"`
	Bio      *string `json:"bio" db:"bio" gorm:"type:text"`
	Location *string `json:"location" db:"location" gorm:"type:text"`
	Phone    *string `json:"phone" db:"phone" gorm:"type:text"`
	Github   *string `json:"github" db:"github" gorm:"type:text"`
	Linkedin *string `json:"linkedin" db:"linkedin" gorm:"type:text"`
	Twitter  *string `json:"twitter" db:"twitter" gorm:"type:text"`
	Website  *string `json:"website" db:"website" gorm:"type:text"`
}

func (Profile) TableName() string {
	return "profiles"
}
