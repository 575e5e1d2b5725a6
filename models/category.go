package models

// Category groups projects (Python, FrontEnd, FullStack, Robotics). Rows are
// created by the seed bootstrap only.
type Category struct {
	ID          uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name        string `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex"`
	Description string `json:"description" db:"description" gorm:"type:text;not null"`
	ImgLogo     string `json:"img_logo" db:"img_logo" gorm:"type:text;not null"`
	ImgBg       string `json:"img_bg" db:"img_bg" gorm:"type:text;not null"`
}
