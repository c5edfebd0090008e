package config

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed matches every *ValidationError.
	ErrValidationFailed = errors.New("validation failed")

	// ErrTypeMismatch indicates a setting holds the wrong kind of value.
	ErrTypeMismatch = errors.New("type mismatch")
)

// ValidationError describes a setting with an unusable value.
type ValidationError struct {
	// Path is the dotted setting path, such as "screen.scale".
	Path    string
	Message string
	Value   any
	Code    ValidationErrorCode
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (value: %v)", e.Path, e.Message, e.Value)
}

// Is matches ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ValidationErrorCode categorizes validation errors.
type ValidationErrorCode uint8

const (
	ErrCodeOutOfRange ValidationErrorCode = iota
	ErrCodeInvalidEnum
	ErrCodeReservedColor
	ErrCodeLength
)

func (c ValidationErrorCode) String() string {
	switch c {
	case ErrCodeOutOfRange:
		return "out_of_range"
	case ErrCodeInvalidEnum:
		return "invalid_enum"
	case ErrCodeReservedColor:
		return "reserved_color"
	case ErrCodeLength:
		return "length"
	default:
		return "unknown"
	}
}

// TypeError is returned when a merged setting cannot be decoded into its
// typed field.
type TypeError struct {
	Source string
	Err    error
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("decoding settings from %s: %v", e.Source, e.Err)
}

func (e *TypeError) Unwrap() error {
	return e.Err
}

// Is matches ErrTypeMismatch.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}
