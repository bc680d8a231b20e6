package site

import (
	"crypto/md5"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"bramble/constants"
	"bramble/database"
	"bramble/templates"

	"github.com/go-chi/chi/v5"
)

func parsePostID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "postID")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// gravatarURL builds the avatar image URL for a commenter's email.
func gravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?d=retro&s=60", sum)
}

func Home(w http.ResponseWriter, r *http.Request) {
	posts, err := database.ListPosts()
	if err != nil {
		http.Error(w, "Error fetching posts", http.StatusInternalServerError)
		return
	}

	authorIDs := make([]uint, 0, len(posts))
	for _, post := range posts {
		authorIDs = append(authorIDs, post.AuthorID)
	}
	authors, err := database.GetUsersByIDs(authorIDs)
	if err != nil {
		http.Error(w, "Error fetching posts", http.StatusInternalServerError)
		return
	}

	cards := make([]templates.PostCard, 0, len(posts))
	for _, post := range posts {
		card := templates.PostCard{
			ID:       post.ID,
			Title:    post.Title,
			Subtitle: post.Subtitle,
			Date:     post.Date,
		}
		if author, ok := authors[post.AuthorID]; ok {
			card.AuthorName = author.Name
		}
		cards = append(cards, card)
	}

	renderPage(w, r, constants.APP_NAME, templates.HomePage(cards))
}

func ShowPost(w http.ResponseWriter, r *http.Request) {
	postID, err := parsePostID(r)
	if err != nil {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	if r.Method == "POST" {
		addComment(w, r, postID)
		return
	}

	post, err := database.GetPost(postID)
	if errors.Is(err, database.ErrNotFound) {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Error fetching post", http.StatusInternalServerError)
		return
	}

	authorIDs := []uint{post.AuthorID}
	for _, comment := range post.Comments {
		authorIDs = append(authorIDs, comment.AuthorID)
	}
	authors, err := database.GetUsersByIDs(authorIDs)
	if err != nil {
		http.Error(w, "Error fetching post", http.StatusInternalServerError)
		return
	}

	view := templates.PostView{
		ID:       post.ID,
		Title:    post.Title,
		Subtitle: post.Subtitle,
		Date:     post.Date,
		Body:     post.Body,
		ImgURL:   post.ImgURL,
	}
	if author, ok := authors[post.AuthorID]; ok {
		view.AuthorName = author.Name
	}

	comments := make([]templates.CommentView, 0, len(post.Comments))
	for _, comment := range post.Comments {
		cv := templates.CommentView{Text: comment.Text}
		if author, ok := authors[comment.AuthorID]; ok {
			cv.AuthorName = author.Name
			cv.AvatarURL = gravatarURL(author.Email)
		}
		comments = append(comments, cv)
	}

	renderPage(w, r, post.Title, templates.PostPage(view, comments))
}

func addComment(w http.ResponseWriter, r *http.Request, postID uint) {
	user := getSignedInUserOrNil(r)
	if user == nil {
		setFlash(w, "You need to log in or register to comment")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	text := strings.TrimSpace(r.FormValue("comment"))
	if text == "" {
		setFlash(w, "Comments can't be empty")
		http.Redirect(w, r, fmt.Sprintf("/post/%d", postID), http.StatusSeeOther)
		return
	}
	if len(text) > constants.MAX_COMMENT_LENGTH {
		http.Error(w, fmt.Sprintf(
			"Comment too long. It must be less than '%d' characters, but it is '%d' characters long",
			constants.MAX_COMMENT_LENGTH, len(text)), http.StatusBadRequest)
		return
	}

	_, err := database.AddComment(postID, user.ID, text)
	if errors.Is(err, database.ErrNotFound) {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Error adding comment", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/post/%d", postID), http.StatusSeeOther)
}

func About(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, "About", templates.AboutPage())
}

func Contact(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, "Contact", templates.ContactPage())
}

func readPostForm(r *http.Request) (title, subtitle, body, imgURL string, err error) {
	title = strings.TrimSpace(r.FormValue("title"))
	subtitle = r.FormValue("subtitle")
	body = r.FormValue("body")
	imgURL = r.FormValue("img_url")

	if title == "" {
		return "", "", "", "", errors.New("a post needs a title")
	}
	if len(body) > constants.MAX_POST_LENGTH {
		return "", "", "", "", fmt.Errorf(
			"post body too long. It must be less than '%d' characters, but it is '%d' characters long",
			constants.MAX_POST_LENGTH, len(body))
	}
	return title, subtitle, body, imgURL, nil
}

func NewPost(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		renderPage(w, r, "New Post", templates.PostFormPage("/new-post", nil))
	case "POST":
		title, subtitle, body, imgURL, err := readPostForm(r)
		if err != nil {
			setFlash(w, err.Error())
			http.Redirect(w, r, "/new-post", http.StatusSeeOther)
			return
		}

		user := getSignedInUserOrFail(r)
		_, err = database.CreatePost(user.ID, title, subtitle, body, imgURL)
		if errors.Is(err, database.ErrDuplicateTitle) {
			setFlash(w, "A post with that title already exists")
			http.Redirect(w, r, "/new-post", http.StatusSeeOther)
			return
		}
		if err != nil {
			http.Error(w, "Error creating post", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func EditPost(w http.ResponseWriter, r *http.Request) {
	postID, err := parsePostID(r)
	if err != nil {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case "GET":
		post, err := database.GetPost(postID)
		if errors.Is(err, database.ErrNotFound) {
			http.Error(w, "Post not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "Error fetching post", http.StatusInternalServerError)
			return
		}

		renderPage(w, r, "Edit Post",
			templates.PostFormPage(fmt.Sprintf("/edit-post/%d", post.ID), post))

	case "POST":
		title, subtitle, body, imgURL, err := readPostForm(r)
		if err != nil {
			setFlash(w, err.Error())
			http.Redirect(w, r, fmt.Sprintf("/edit-post/%d", postID), http.StatusSeeOther)
			return
		}

		_, err = database.UpdatePost(postID, title, subtitle, body, imgURL)
		if errors.Is(err, database.ErrNotFound) {
			http.Error(w, "Post not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, database.ErrDuplicateTitle) {
			setFlash(w, "A post with that title already exists")
			http.Redirect(w, r, fmt.Sprintf("/edit-post/%d", postID), http.StatusSeeOther)
			return
		}
		if err != nil {
			http.Error(w, "Error updating post", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/post/%d", postID), http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := parsePostID(r)
	if err != nil {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	err = database.DeletePost(postID)
	if errors.Is(err, database.ErrNotFound) {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Error deleting post", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
