package services

import (
	"inkwell/app/models"
	"inkwell/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// ListForPost retrieves all comments on an existing post in the order they
// were left. Comments are public; there is no author check here.
func (s *CommentService) ListForPost(postID int) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(postID)
}

// AddComment validates and stores a visitor comment on an existing post.
func (s *CommentService) AddComment(postID int, name, text string) (*models.Comment, error) {
	if name == "" || text == "" {
		return nil, &ValidationError{Message: "Name and comment are required."}
	}

	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:  postID,
		Name:    name,
		Comment: text,
	}
	comment.BeforeCreate()
	if err := comment.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}
