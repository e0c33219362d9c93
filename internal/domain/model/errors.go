package domain

import (
	"errors"
	"strings"
)

var ErrNotFound = errors.New("todo not found")

var ErrInvalidStatus = errors.New(`status must be "completed" or "pending"`)

var (
	ErrInvalidSortField     = errors.New("order_by must be one of: id, title, description, done")
	ErrInvalidSortDirection = errors.New(`order_direction must be "asc" or "desc"`)
)

// ValidationError reports a single field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// ValidationErrors collects all field failures from one payload.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, ve := range e {
		msgs = append(msgs, ve.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
