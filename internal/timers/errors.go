package timers

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyName     = errors.New("timer name is required")
	ErrDuplicateName = errors.New("a timer with this name already exists")
)

// ValidationError reports a rejected Add, naming the offending field.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(field, value string, err error) error {
	return &ValidationError{Field: field, Value: value, Err: err}
}
