package database

import (
	"testing"
	"time"

	"bramble/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) {
	require.NoError(t, Open("file::memory:?cache=shared"))
	t.Cleanup(CloseDB)
}

func TestCreateUser(t *testing.T) {
	setupTestDB(t)

	user, err := CreateUser("a@x.com", []byte("hash-a"), "Alice")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.True(t, user.IsAdmin())

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := CreateUser("a@x.com", []byte("other-hash"), "Impostor")
		assert.ErrorIs(t, err, ErrDuplicateEmail)

		// the original account is untouched
		original, err := GetUserByEmail("a@x.com")
		require.NoError(t, err)
		assert.Equal(t, "Alice", original.Name)
		assert.Equal(t, []byte("hash-a"), []byte(original.PasswordHash))
	})

	t.Run("email matching is case sensitive", func(t *testing.T) {
		shouty, err := CreateUser("A@x.com", []byte("hash-b"), "Other Alice")
		require.NoError(t, err)
		assert.Equal(t, uint(2), shouty.ID)
		assert.False(t, shouty.IsAdmin())
	})

	t.Run("unknown email lookup", func(t *testing.T) {
		_, err := GetUserByEmail("nobody@x.com")
		assert.ErrorIs(t, err, ErrUnknownEmail)
	})
}

func TestSessionTokenLookup(t *testing.T) {
	setupTestDB(t)

	user, err := CreateUser("a@x.com", []byte("hash"), "Alice")
	require.NoError(t, err)

	_, err = GetUserBySessionToken("")
	assert.ErrorIs(t, err, ErrNotFound)

	user.SessionToken = "tok-123"
	require.NoError(t, SaveUser(user))

	found, err := GetUserBySessionToken("tok-123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = GetUserBySessionToken("tok-unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePost(t *testing.T) {
	setupTestDB(t)

	admin, err := CreateUser("admin@x.com", []byte("hash"), "Admin")
	require.NoError(t, err)

	post, err := CreatePost(admin.ID, "Hello World", "A greeting", "Some *markdown* body", "https://img.example/1.png")
	require.NoError(t, err)
	assert.Equal(t, "hello-world", post.Slug)
	assert.Equal(t, time.Now().Format(constants.POST_DATE_FORMAT), post.Date)
	assert.Equal(t, admin.ID, post.AuthorID)

	t.Run("duplicate title is rejected", func(t *testing.T) {
		_, err := CreatePost(admin.ID, "Hello World", "again", "body", "")
		assert.ErrorIs(t, err, ErrDuplicateTitle)

		existing, err := GetPost(post.ID)
		require.NoError(t, err)
		assert.Equal(t, "A greeting", existing.Subtitle)
	})

	t.Run("posts list in insertion order", func(t *testing.T) {
		_, err := CreatePost(admin.ID, "Second Post", "", "body", "")
		require.NoError(t, err)

		posts, err := ListPosts()
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "Hello World", posts[0].Title)
		assert.Equal(t, "Second Post", posts[1].Title)
	})
}

func TestUpdatePost(t *testing.T) {
	setupTestDB(t)

	admin, err := CreateUser("admin@x.com", []byte("hash"), "Admin")
	require.NoError(t, err)

	first, err := CreatePost(admin.ID, "First", "", "body one", "")
	require.NoError(t, err)
	_, err = CreatePost(admin.ID, "Second", "", "body two", "")
	require.NoError(t, err)

	t.Run("keeping the same title is allowed", func(t *testing.T) {
		updated, err := UpdatePost(first.ID, "First", "now with subtitle", "body one v2", "")
		require.NoError(t, err)
		assert.Equal(t, "now with subtitle", updated.Subtitle)
		assert.Equal(t, first.Date, updated.Date)
	})

	t.Run("renaming re-slugs the post", func(t *testing.T) {
		updated, err := UpdatePost(first.ID, "First, Revisited", "", "body", "")
		require.NoError(t, err)
		assert.Equal(t, "first-revisited", updated.Slug)
	})

	t.Run("colliding with another post's title is rejected", func(t *testing.T) {
		_, err := UpdatePost(first.ID, "Second", "", "body", "")
		assert.ErrorIs(t, err, ErrDuplicateTitle)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := UpdatePost(999, "Whatever", "", "body", "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeletePost(t *testing.T) {
	setupTestDB(t)

	admin, err := CreateUser("admin@x.com", []byte("hash"), "Admin")
	require.NoError(t, err)

	post, err := CreatePost(admin.ID, "Doomed", "", "body", "")
	require.NoError(t, err)

	require.NoError(t, DeletePost(post.ID))

	_, err = GetPost(post.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, DeletePost(post.ID), ErrNotFound)
}

func TestAddComment(t *testing.T) {
	setupTestDB(t)

	admin, err := CreateUser("admin@x.com", []byte("hash"), "Admin")
	require.NoError(t, err)
	commenter, err := CreateUser("b@x.com", []byte("hash"), "Bob")
	require.NoError(t, err)

	post, err := CreatePost(admin.ID, "Commentable", "", "body", "")
	require.NoError(t, err)

	comment, err := AddComment(post.ID, commenter.ID, "hello")
	require.NoError(t, err)
	assert.Equal(t, post.ID, comment.PostID)
	assert.Equal(t, commenter.ID, comment.AuthorID)

	t.Run("comments ride along with the post", func(t *testing.T) {
		loaded, err := GetPost(post.ID)
		require.NoError(t, err)
		require.Len(t, loaded.Comments, 1)
		assert.Equal(t, "hello", loaded.Comments[0].Text)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := AddComment(999, commenter.ID, "lost")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
