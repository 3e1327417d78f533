package models

import "errors"

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.DisplayDate == "" {
		return errors.New("display_date must be derived before saving")
	}

	return nil
}

// AddComment attaches a comment to the post's in-memory comment list
func (p *Post) AddComment(comment *Comment) error {
	if comment == nil {
		return errors.New("comment cannot be nil")
	}

	comment.PostID = p.ID
	p.Comments = append(p.Comments, comment)
	return nil
}
