package service

import "errors"

var (
	// ErrInvalidID marks a route parameter that is not a well-formed
	// ObjectID hex string. Detected before touching the store.
	ErrInvalidID = errors.New("invalid note id")

	// ErrNoteNotFound marks a well-formed id with no matching record.
	ErrNoteNotFound = errors.New("note not found")
)

// ValidationError reports a missing or empty required field on a write.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
