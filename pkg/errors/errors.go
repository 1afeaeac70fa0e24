package errors

import (
	"fmt"
)

// ParseError represents a config or dataset decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration or grid construction issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
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

// FormatError reports a date cell that cannot be interpreted under its
// column's declared date format. Sorting a date column surfaces this before
// any row is reordered.
type FormatError struct {
	Column int
	Format string
	Value  string
	Err    error
}

// NewFormatError constructs a FormatError.
func NewFormatError(column int, format, value string, err error) error {
	return &FormatError{Column: column, Format: format, Value: value, Err: err}
}

func (e *FormatError) Error() string {
	if e == nil {
		return ""
	}
	if e.Format == "" {
		return fmt.Sprintf("format error: column %d has no date format", e.Column)
	}
	return fmt.Sprintf("format error: column %d: cannot parse %q as %s", e.Column, e.Value, e.Format)
}

// Unwrap exposes the underlying error.
func (e *FormatError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BoundsError reports an out-of-range column or row index passed to a grid
// operation.
type BoundsError struct {
	Kind   string
	Index  int
	Length int
}

// NewBoundsError constructs a BoundsError.
func NewBoundsError(kind string, index, length int) error {
	return &BoundsError{Kind: kind, Index: index, Length: length}
}

func (e *BoundsError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("bounds error: %s index %d out of range [0, %d)", e.Kind, e.Index, e.Length)
}
