package services

import "errors"

// ErrForbidden signals a mutation attempt on a post by someone other than
// its author.
var ErrForbidden = errors.New("not the post author")

// ValidationError carries a message meant for the submitting user. Handlers
// render it back into the form instead of failing the request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
