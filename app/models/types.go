package models

import "time"

// Post represents a blog post. DisplayDate is the human-readable form of
// DatePosted, computed when the post is written and stored alongside it.
// AuthorName is the display name of the owning user, filled in when the
// post is read back joined with its author.
type Post struct {
	ID          int    `validate:"gte=0"`
	Title       string `validate:"required,max=200"`
	Subtitle    string `validate:"max=200"`
	Body        string
	DatePosted  string `validate:"required"`
	DisplayDate string
	AuthorID    int `validate:"required,gte=1"`
	AuthorName  string
	Comments    []*Comment `validate:"-"`
}

// Comment represents a visitor comment on a post. Comments are written
// once and never edited.
type Comment struct {
	ID      int
	PostID  int    `validate:"required,gte=1"`
	Name    string `validate:"required,max=100"`
	Comment string `validate:"required,max=2000"`
	Created time.Time
}

// User represents a registered author. Password holds the bcrypt hash,
// never the plaintext.
type User struct {
	ID       int
	Name     string `validate:"required,min=2,max=50"`
	Password string `validate:"required"`
	Created  time.Time
}
