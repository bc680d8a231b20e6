package database

import (
	"errors"
	"time"

	"bramble/constants"

	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Failure conditions surfaced to handlers. Registration and login
// failures become a notice plus a redirect; ErrNotFound becomes a 404.
var (
	ErrDuplicateEmail = errors.New("an account with that email already exists")
	ErrUnknownEmail   = errors.New("no account with that email exists")
	ErrWrongPassword  = errors.New("wrong password")
	ErrDuplicateTitle = errors.New("a post with that title already exists")
	ErrNotFound       = errors.New("record not found")
)

func CreateUser(email string, passwordHash []byte, name string) (*User, error) {
	var existing User
	err := GetDB().Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := User{
		Email:        email,
		PasswordHash: datatypes.JSON(passwordHash),
		Name:         name,
	}
	if err := GetDB().Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByEmail(email string) (*User, error) {
	var user User
	err := GetDB().Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnknownEmail
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByID(id uint) (*User, error) {
	var user User
	err := GetDB().First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserBySessionToken(token string) (*User, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	var user User
	err := GetDB().Where("session_token = ?", token).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func SaveUser(user *User) error {
	return GetDB().Save(user).Error
}

// GetUsersByIDs resolves author ids to users for display. Unknown ids
// are simply absent from the result.
func GetUsersByIDs(ids []uint) (map[uint]User, error) {
	users := make(map[uint]User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	var rows []User
	if err := GetDB().Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, u := range rows {
		users[u.ID] = u
	}
	return users, nil
}

// ListPosts returns every post in insertion order.
func ListPosts() ([]Post, error) {
	var posts []Post
	result := GetDB().Order("id ASC").Limit(constants.MAX_POSTS_TO_SHOW).Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func GetPost(id uint) (*Post, error) {
	var post Post
	err := GetDB().Preload("Comments").First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPostWithTitle returns nil without an error when no post carries
// the title.
func GetPostWithTitle(title string) (*Post, error) {
	var post Post
	result := GetDB().Where("title = ?", title).First(&post)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &post, nil
}

func CreatePost(authorID uint, title, subtitle, body, imgURL string) (*Post, error) {
	existing, err := GetPostWithTitle(title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateTitle
	}

	post := Post{
		AuthorID: authorID,
		Title:    title,
		Subtitle: subtitle,
		Date:     time.Now().Format(constants.POST_DATE_FORMAT),
		Body:     body,
		ImgURL:   imgURL,
		Slug:     slug.Make(title),
	}
	if err := GetDB().Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost rewrites title, subtitle, body and image of an existing
// post. The publish date and author are left as they were.
func UpdatePost(id uint, title, subtitle, body, imgURL string) (*Post, error) {
	var post Post
	err := GetDB().First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	existing, err := GetPostWithTitle(title)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != post.ID {
		return nil, ErrDuplicateTitle
	}

	post.Title = title
	post.Subtitle = subtitle
	post.Body = body
	post.ImgURL = imgURL
	post.Slug = slug.Make(title)

	if err := GetDB().Save(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func DeletePost(id uint) error {
	var post Post
	err := GetDB().First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return GetDB().Delete(&post).Error
}

func AddComment(postID, authorID uint, text string) (*Comment, error) {
	var post Post
	err := GetDB().First(&post, postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	comment := Comment{
		Text:     text,
		AuthorID: authorID,
		PostID:   post.ID,
	}
	if err := GetDB().Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}
