package backend

import (
	"errors"
	"fmt"
)

// ErrEmptyResult is returned when the backend answers 2xx without the
// expected result field.
var ErrEmptyResult = errors.New("backend returned an empty result")

// StatusError is a non-success HTTP response from the backend.
type StatusError struct {
	Path       string
	StatusCode int
	// Message is the backend's {"error": "..."} text, or the raw body when
	// the body is not that shape.
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: backend returned status %d", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s: backend returned status %d: %s", e.Path, e.StatusCode, e.Message)
}

// IsRejected reports whether err means the backend was reached and refused
// or failed the request, as opposed to a transport failure.
func IsRejected(err error) bool {
	var se *StatusError
	return errors.As(err, &se) || errors.Is(err, ErrEmptyResult)
}
