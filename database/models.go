package database

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string         `gorm:"uniqueIndex"`
	PasswordHash datatypes.JSON `gorm:"type:json"`
	Name         string
	SessionToken string `gorm:"index"`
}

// IsAdmin reports whether this user owns the site. The first account
// ever registered is the administrator.
func (u *User) IsAdmin() bool {
	return u.ID == 1
}

type Post struct {
	gorm.Model
	AuthorID uint   `gorm:"index"`
	Title    string `gorm:"uniqueIndex"`
	Subtitle string
	Date     string
	Body     string `gorm:"type:text"`
	ImgURL   string
	Slug     string    `gorm:"index"`
	Comments []Comment `gorm:"foreignKey:PostID"`
}

type Comment struct {
	gorm.Model
	Text     string `gorm:"type:text"`
	AuthorID uint   `gorm:"index"`
	PostID   uint   `gorm:"index"`
}
