package services

import (
	"inkwell/app/models"
	"inkwell/app/repositories"
)

// PostInput holds the raw form fields for creating or updating a post.
type PostInput struct {
	Title      string
	Subtitle   string
	Body       string
	DatePosted string
}

// PostService handles business logic for blog posts
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// GetPost retrieves a post by ID. No ownership check is performed; anyone
// may view a post.
func (s *PostService) GetPost(id int) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// GetOwnedPost retrieves a post and verifies that userID is its author,
// returning ErrForbidden otherwise.
func (s *PostService) GetOwnedPost(id, userID int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, ErrForbidden
	}
	return post, nil
}

// ListPosts retrieves all posts, newest first.
func (s *PostService) ListPosts() ([]*models.Post, error) {
	return s.postRepo.List()
}

// CreatePost validates the input, derives the display date and inserts a
// new post owned by authorID.
func (s *PostService) CreatePost(in PostInput, authorID int) (*models.Post, error) {
	if in.Title == "" || in.DatePosted == "" {
		return nil, &ValidationError{Message: "Title and date are required."}
	}

	displayDate, err := FormatDisplayDate(in.DatePosted)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:       in.Title,
		Subtitle:    in.Subtitle,
		Body:        in.Body,
		DatePosted:  in.DatePosted,
		DisplayDate: displayDate,
		AuthorID:    authorID,
	}
	if err := post.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost rewrites an existing post in place. Only the author may
// update; validation and display-date derivation match CreatePost, so
// date_posted and display_date can never drift apart.
func (s *PostService) UpdatePost(id int, in PostInput, userID int) (*models.Post, error) {
	post, err := s.GetOwnedPost(id, userID)
	if err != nil {
		return nil, err
	}

	if in.Title == "" || in.DatePosted == "" {
		return nil, &ValidationError{Message: "Title and date are required."}
	}

	displayDate, err := FormatDisplayDate(in.DatePosted)
	if err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Subtitle = in.Subtitle
	post.Body = in.Body
	post.DatePosted = in.DatePosted
	post.DisplayDate = displayDate
	if err := post.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost deletes a post and its comments. Only the author may delete.
// Comments go first so no orphan rows survive even without foreign key
// enforcement.
func (s *PostService) DeletePost(id, userID int) error {
	if _, err := s.GetOwnedPost(id, userID); err != nil {
		return err
	}

	if err := s.commentRepo.DeleteByPost(id); err != nil {
		return err
	}
	return s.postRepo.Delete(id)
}
