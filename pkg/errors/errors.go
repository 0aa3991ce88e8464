package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	// ErrInvalidColorFormat is matched by every InvalidColorFormatError.
	ErrInvalidColorFormat = stderrors.New("invalid color format")
	// ErrUnsupportedFormat is matched by every UnsupportedFormatError.
	ErrUnsupportedFormat = stderrors.New("unsupported format")
)

// ParseError represents a YAML parsing failure with optional line metadata.
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

// ValidationError captures configuration validation issues.
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

// InvalidColorFormatError reports a color string that is not a 6-digit #rrggbb hex value.
type InvalidColorFormatError struct {
	Value string
}

// NewInvalidColorFormatError constructs an InvalidColorFormatError for the offending value.
func NewInvalidColorFormatError(value string) error {
	return &InvalidColorFormatError{Value: value}
}

func (e *InvalidColorFormatError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid color format %q: expected #rrggbb", e.Value)
}

// Unwrap allows errors.Is(err, ErrInvalidColorFormat).
func (e *InvalidColorFormatError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrInvalidColorFormat
}

// UnsupportedFormatError reports an export format name that has no serializer.
type UnsupportedFormatError struct {
	Format    string
	Supported []string
}

// NewUnsupportedFormatError constructs an UnsupportedFormatError.
func NewUnsupportedFormatError(format string, supported []string) error {
	return &UnsupportedFormatError{Format: format, Supported: append([]string(nil), supported...)}
}

func (e *UnsupportedFormatError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Supported) > 0 {
		return fmt.Sprintf("unsupported format %q (supported: %v)", e.Format, e.Supported)
	}
	return fmt.Sprintf("unsupported format %q", e.Format)
}

// Unwrap allows errors.Is(err, ErrUnsupportedFormat).
func (e *UnsupportedFormatError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrUnsupportedFormat
}
