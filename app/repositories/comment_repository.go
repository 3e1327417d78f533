package repositories

import (
	"database/sql"

	"inkwell/app/models"

	"github.com/pkg/errors"
)

// SQLCommentRepository implements CommentRepository on the comments table.
type SQLCommentRepository struct {
	db *sql.DB
}

// NewSQLCommentRepository creates a new SQLCommentRepository
func NewSQLCommentRepository(db *sql.DB) *SQLCommentRepository {
	return &SQLCommentRepository{db: db}
}

// Create inserts a new comment and fills in its assigned ID.
func (r *SQLCommentRepository) Create(comment *models.Comment) error {
	comment.BeforeCreate()

	res, err := r.db.Exec(
		`INSERT INTO comments (name, comment, post_id, created) VALUES (?, ?, ?, ?)`,
		comment.Name, comment.Comment, comment.PostID, comment.Created,
	)
	if err != nil {
		return errors.Wrap(err, "insert comment")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "read comment id")
	}
	comment.ID = int(id)
	return nil
}

// ListByPost retrieves all comments for a post in insertion order.
func (r *SQLCommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	rows, err := r.db.Query(
		`SELECT id, name, comment, post_id, created FROM comments
		 WHERE post_id = ? ORDER BY id`,
		postID,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "select comments for post %d", postID)
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(&comment.ID, &comment.Name, &comment.Comment, &comment.PostID, &comment.Created)
		if err != nil {
			return nil, errors.Wrap(err, "scan comment")
		}
		comments = append(comments, &comment)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate comments")
	}
	return comments, nil
}

// DeleteByPost removes every comment belonging to a post.
func (r *SQLCommentRepository) DeleteByPost(postID int) error {
	_, err := r.db.Exec(`DELETE FROM comments WHERE post_id = ?`, postID)
	if err != nil {
		return errors.Wrapf(err, "delete comments for post %d", postID)
	}
	return nil
}
