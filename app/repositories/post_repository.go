package repositories

import (
	"database/sql"

	"inkwell/app/models"

	"github.com/pkg/errors"
)

// SQLPostRepository implements PostRepository on the post table.
type SQLPostRepository struct {
	db *sql.DB
}

// NewSQLPostRepository creates a new SQLPostRepository
func NewSQLPostRepository(db *sql.DB) *SQLPostRepository {
	return &SQLPostRepository{db: db}
}

// Create inserts a new post and fills in its assigned ID.
func (r *SQLPostRepository) Create(post *models.Post) error {
	res, err := r.db.Exec(
		`INSERT INTO post (title, subtitle, body, date_posted, display_date, author_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		post.Title, post.Subtitle, post.Body, post.DatePosted, post.DisplayDate, post.AuthorID,
	)
	if err != nil {
		return errors.Wrap(err, "insert post")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "read post id")
	}
	post.ID = int(id)
	return nil
}

// GetByID retrieves a post joined with its author's display name.
func (r *SQLPostRepository) GetByID(id int) (*models.Post, error) {
	var post models.Post
	err := r.db.QueryRow(
		`SELECT p.id, p.title, p.subtitle, p.body, p.date_posted, p.display_date, p.author_id, u.name
		 FROM post p JOIN user u ON p.author_id = u.id
		 WHERE p.id = ?`,
		id,
	).Scan(&post.ID, &post.Title, &post.Subtitle, &post.Body,
		&post.DatePosted, &post.DisplayDate, &post.AuthorID, &post.AuthorName)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "select post %d", id)
	}
	return &post, nil
}

// List retrieves all posts joined with author names, newest first.
// Posts sharing a date come back in reverse insertion order.
func (r *SQLPostRepository) List() ([]*models.Post, error) {
	rows, err := r.db.Query(
		`SELECT p.id, p.title, p.subtitle, p.body, p.date_posted, p.display_date, p.author_id, u.name
		 FROM post p JOIN user u ON p.author_id = u.id
		 ORDER BY p.date_posted DESC, p.id DESC`,
	)
	if err != nil {
		return nil, errors.Wrap(err, "select posts")
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var post models.Post
		err := rows.Scan(&post.ID, &post.Title, &post.Subtitle, &post.Body,
			&post.DatePosted, &post.DisplayDate, &post.AuthorID, &post.AuthorName)
		if err != nil {
			return nil, errors.Wrap(err, "scan post")
		}
		posts = append(posts, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate posts")
	}
	return posts, nil
}

// Update rewrites the five content fields of an existing post in place.
func (r *SQLPostRepository) Update(post *models.Post) error {
	res, err := r.db.Exec(
		`UPDATE post SET date_posted = ?, display_date = ?, title = ?, subtitle = ?, body = ?
		 WHERE id = ?`,
		post.DatePosted, post.DisplayDate, post.Title, post.Subtitle, post.Body, post.ID,
	)
	if err != nil {
		return errors.Wrapf(err, "update post %d", post.ID)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes a post by ID.
func (r *SQLPostRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM post WHERE id = ?`, id)
	if err != nil {
		return errors.Wrapf(err, "delete post %d", id)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
