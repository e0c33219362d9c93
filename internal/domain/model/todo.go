package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Field length bounds, counted in runes after trimming.
const (
	TitleMaxLen       = 100
	DescriptionMaxLen = 500
)

// Todo is a stored task. The ID is assigned by the repository and never
// changes; Title and Description are always held in trimmed form.
type Todo struct {
	ID          int
	Title       string
	Description string
	Done        bool
}

// TodoCreate carries the mutable fields for create and update operations.
// Build it with NewTodoCreate so the fields are normalized and checked.
type TodoCreate struct {
	Title       string
	Description string
	Done        bool
}

// NewTodoCreate trims title and description and enforces the field bounds.
// It reports every failing field, not just the first.
func NewTodoCreate(title, description string, done bool) (*TodoCreate, error) {
	var errs ValidationErrors

	title, err := normalizeField("title", title, TitleMaxLen)
	if err != nil {
		errs = append(errs, err)
	}

	description, err = normalizeField("description", description, DescriptionMaxLen)
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &TodoCreate{
		Title:       title,
		Description: description,
		Done:        done,
	}, nil
}

func normalizeField(name, value string, maxLen int) (string, *ValidationError) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", &ValidationError{Field: name, Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(trimmed) > maxLen {
		return "", &ValidationError{
			Field:  name,
			Reason: fmt.Sprintf("length out of range (1-%d)", maxLen),
		}
	}
	return trimmed, nil
}
