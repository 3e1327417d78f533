package services

import (
	"sort"
	"testing"

	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/stretchr/testify/assert"
)

type mockPostRepo struct {
	posts  map[int]*models.Post
	nextID int
}

type mockCommentRepo struct {
	comments map[int]*models.Comment
	nextID   int
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{
		posts:  make(map[int]*models.Post),
		nextID: 1,
	}
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{
		comments: make(map[int]*models.Comment),
		nextID:   1,
	}
}

// PostRepository implementation
func (m *mockPostRepo) Create(post *models.Post) error {
	stored := *post
	stored.ID = m.nextID
	m.nextID++
	m.posts[stored.ID] = &stored
	post.ID = stored.ID
	return nil
}

func (m *mockPostRepo) GetByID(id int) (*models.Post, error) {
	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *post
	return &copied, nil
}

func (m *mockPostRepo) Update(post *models.Post) error {
	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	stored := *post
	m.posts[post.ID] = &stored
	return nil
}

func (m *mockPostRepo) Delete(id int) error {
	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *mockPostRepo) List() ([]*models.Post, error) {
	var posts []*models.Post
	for _, post := range m.posts {
		copied := *post
		posts = append(posts, &copied)
	}
	// Newest first, ties broken by descending ID, matching the SQL repo.
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].DatePosted != posts[j].DatePosted {
			return posts[i].DatePosted > posts[j].DatePosted
		}
		return posts[i].ID > posts[j].ID
	})
	return posts, nil
}

// CommentRepository implementation
func (m *mockCommentRepo) Create(comment *models.Comment) error {
	comment.ID = m.nextID
	m.nextID++
	stored := *comment
	m.comments[stored.ID] = &stored
	return nil
}

func (m *mockCommentRepo) ListByPost(postID int) ([]*models.Comment, error) {
	var comments []*models.Comment
	for id := 1; id < m.nextID; id++ {
		if comment, exists := m.comments[id]; exists && comment.PostID == postID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

func (m *mockCommentRepo) DeleteByPost(postID int) error {
	for id, comment := range m.comments {
		if comment.PostID == postID {
			delete(m.comments, id)
		}
	}
	return nil
}

func TestPostService(t *testing.T) {
	postRepo := newMockPostRepo()
	commentRepo := newMockCommentRepo()
	service := NewPostService(postRepo, commentRepo)

	t.Run("create post derives display date", func(t *testing.T) {
		post, err := service.CreatePost(PostInput{
			Title:      "First Post",
			Subtitle:   "A beginning",
			Body:       "Hello there",
			DatePosted: "2023-03-05",
		}, 1)
		assert.NoError(t, err)
		assert.Equal(t, 1, post.ID)
		assert.Equal(t, "March 05, 2023", post.DisplayDate)
	})

	t.Run("create post without title", func(t *testing.T) {
		_, err := service.CreatePost(PostInput{DatePosted: "2023-03-05"}, 1)
		assert.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Len(t, postRepo.posts, 1)
	})

	t.Run("create post without date", func(t *testing.T) {
		_, err := service.CreatePost(PostInput{Title: "No Date"}, 1)
		assert.True(t, IsValidation(err))
	})

	t.Run("create post with malformed date is not a validation error", func(t *testing.T) {
		_, err := service.CreatePost(PostInput{
			Title:      "Bad Date",
			DatePosted: "2023-13-40",
		}, 1)
		assert.Error(t, err)
		assert.False(t, IsValidation(err))
		assert.Len(t, postRepo.posts, 1)
	})

	t.Run("owner can update and dates stay in sync", func(t *testing.T) {
		post, err := service.UpdatePost(1, PostInput{
			Title:      "First Post, Revised",
			Subtitle:   "A beginning",
			Body:       "Hello again",
			DatePosted: "2023-04-01",
		}, 1)
		assert.NoError(t, err)
		assert.Equal(t, "April 01, 2023", post.DisplayDate)

		stored, err := service.GetPost(1)
		assert.NoError(t, err)
		assert.Equal(t, "First Post, Revised", stored.Title)
		assert.Equal(t, "2023-04-01", stored.DatePosted)
	})

	t.Run("update with unchanged values is idempotent", func(t *testing.T) {
		before, err := service.GetPost(1)
		assert.NoError(t, err)

		_, err = service.UpdatePost(1, PostInput{
			Title:      before.Title,
			Subtitle:   before.Subtitle,
			Body:       before.Body,
			DatePosted: before.DatePosted,
		}, 1)
		assert.NoError(t, err)

		after, err := service.GetPost(1)
		assert.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("non-owner cannot update", func(t *testing.T) {
		_, err := service.UpdatePost(1, PostInput{
			Title:      "Hijacked",
			DatePosted: "2023-04-01",
		}, 2)
		assert.ErrorIs(t, err, ErrForbidden)

		stored, err := service.GetPost(1)
		assert.NoError(t, err)
		assert.Equal(t, "First Post, Revised", stored.Title)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		err := service.DeletePost(1, 2)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("get owned post", func(t *testing.T) {
		_, err := service.GetOwnedPost(1, 1)
		assert.NoError(t, err)

		_, err = service.GetOwnedPost(1, 2)
		assert.ErrorIs(t, err, ErrForbidden)

		_, err = service.GetOwnedPost(99, 1)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("list posts newest first", func(t *testing.T) {
		_, err := service.CreatePost(PostInput{
			Title:      "Older Post",
			DatePosted: "2022-01-15",
		}, 1)
		assert.NoError(t, err)
		_, err = service.CreatePost(PostInput{
			Title:      "Newest Post",
			DatePosted: "2024-06-30",
		}, 1)
		assert.NoError(t, err)

		posts, err := service.ListPosts()
		assert.NoError(t, err)
		assert.Len(t, posts, 3)
		assert.Equal(t, "Newest Post", posts[0].Title)
		assert.Equal(t, "Older Post", posts[2].Title)
	})

	t.Run("delete removes post and its comments", func(t *testing.T) {
		post, err := service.CreatePost(PostInput{
			Title:      "Doomed Post",
			DatePosted: "2023-05-05",
		}, 1)
		assert.NoError(t, err)

		err = commentRepo.Create(&models.Comment{
			PostID: post.ID, Name: "visitor", Comment: "so long",
		})
		assert.NoError(t, err)

		err = service.DeletePost(post.ID, 1)
		assert.NoError(t, err)

		_, err = service.GetPost(post.ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		comments, err := commentRepo.ListByPost(post.ID)
		assert.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("delete missing post", func(t *testing.T) {
		err := service.DeletePost(99, 1)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}
