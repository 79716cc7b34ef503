package models

// User is the legacy credential record. No route exposes it; it survives in
// the schema and storage layer for compatibility with older deployments.
type User struct {
	ID       string `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Username string `json:"username" db:"username" gorm:"type:text;not null;unique" validate:"required"`
	Password string `json:"password" db:"password" gorm:"type:text;not null" validate:"required"`
}

func (User) TableName() string {
	return "users"
}
