package services

import (
	"testing"

	"inkwell/app/repositories"

	"github.com/stretchr/testify/assert"
)

func TestCommentService(t *testing.T) {
	postRepo := newMockPostRepo()
	commentRepo := newMockCommentRepo()
	postService := NewPostService(postRepo, commentRepo)
	service := NewCommentService(commentRepo, postRepo)

	post, err := postService.CreatePost(PostInput{
		Title:      "Commented Post",
		DatePosted: "2023-03-05",
	}, 1)
	assert.NoError(t, err)

	t.Run("add comment", func(t *testing.T) {
		comment, err := service.AddComment(post.ID, "alice", "great read")
		assert.NoError(t, err)
		assert.Equal(t, post.ID, comment.PostID)
		assert.False(t, comment.Created.IsZero())
	})

	t.Run("empty name is rejected without a write", func(t *testing.T) {
		_, err := service.AddComment(post.ID, "", "anonymous praise")
		assert.True(t, IsValidation(err))

		comments, err := service.ListForPost(post.ID)
		assert.NoError(t, err)
		assert.Len(t, comments, 1)
	})

	t.Run("empty comment is rejected", func(t *testing.T) {
		_, err := service.AddComment(post.ID, "bob", "")
		assert.True(t, IsValidation(err))
	})

	t.Run("comment on missing post", func(t *testing.T) {
		_, err := service.AddComment(99, "carol", "hello?")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("list preserves insertion order", func(t *testing.T) {
		_, err := service.AddComment(post.ID, "bob", "me too")
		assert.NoError(t, err)
		_, err = service.AddComment(post.ID, "carol", "thirded")
		assert.NoError(t, err)

		comments, err := service.ListForPost(post.ID)
		assert.NoError(t, err)
		assert.Len(t, comments, 3)
		assert.Equal(t, "alice", comments[0].Name)
		assert.Equal(t, "bob", comments[1].Name)
		assert.Equal(t, "carol", comments[2].Name)
	})

	t.Run("list for missing post", func(t *testing.T) {
		_, err := service.ListForPost(99)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}
