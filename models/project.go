package models

// Project represents a single portfolio entry. Titles are unique across all
// projects. Date is the human-readable creation/update date ("March 04, 2024"),
// refreshed whenever the project is edited.
type Project struct {
	ID          uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	UserID      uint   `json:"user_id" db:"user_id" gorm:"not null"`
	CategoryID  uint   `json:"category_id" db:"category_id" gorm:"not null"`
	Title       string `json:"title" db:"title" gorm:"type:text;not null;uniqueIndex"`
	Description string `json:"description" db:"description" gorm:"type:text;not null"`
	Body        string `json:"body" db:"body" gorm:"type:text;not null"`
	Date        string `json:"date" db:"date" gorm:"type:text;not null"`
	ImgURL      string `json:"img_url" db:"img_url" gorm:"type:text;not null"`

	// Owning rows must exist; deleting them while projects reference them is
	// rejected at the constraint level, never cascaded.
	User     *User     `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:RESTRICT"`
	Category *Category `json:"-" gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:RESTRICT"`
}
