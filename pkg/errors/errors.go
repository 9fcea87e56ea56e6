package errors

import (
	"fmt"
)

// ParseError represents a preset document that could not be decoded.
type ParseError struct {
	Source  string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(source string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Source: source, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Source, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Source, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a base parameter outside its documented domain.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field string, value interface{}, message string, err error) error {
	return &ValidationError{Field: field, Value: value, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s=%v: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnknownModeError indicates a mode or format name that does not exist.
type UnknownModeError struct {
	Kind  string
	Value string
}

// NewUnknownModeError constructs an UnknownModeError for the given mode kind.
func NewUnknownModeError(kind, value string) error {
	return &UnknownModeError{Kind: kind, Value: value}
}

func (e *UnknownModeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
}
