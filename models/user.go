package models

// User is the site administrator account. Exactly one row is seeded at first
// boot; users are never created or deleted at runtime.
type User struct {
	ID       uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Email    string `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex"`
	Password string `json:"-" db:"password" gorm:"type:text;not null"`
	Name     string `json:"name" db:"name" gorm:"type:text;not null"`
}
