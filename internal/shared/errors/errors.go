package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "not_found"
	// ErrorTypeValidation indicates invalid input data
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"
	// ErrorTypeExternal indicates an external service error
	ErrorTypeExternal ErrorType = "external"
	// ErrorTypeTooCrowded indicates a layout could not fit its required systems
	ErrorTypeTooCrowded ErrorType = "too_crowded"
	// ErrorTypeUnrecognizedFormat indicates a stream that is not a galaxy save
	ErrorTypeUnrecognizedFormat ErrorType = "unrecognized_format"
	// ErrorTypeVersionMismatch indicates a galaxy save written by an unsupported version
	ErrorTypeVersionMismatch ErrorType = "version_mismatch"
)

// AppError is the base error type for application errors
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFoundf creates a not found error with formatting
func NotFoundf(format string, args ...interface{}) error {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

// Validation creates a validation error
func Validation(message string) error {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// Validationf creates a validation error with formatting
func Validationf(format string, args ...interface{}) error {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapInternal wraps an error as an internal error
func WrapInternal(message string, err error) error {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// WrapExternal wraps an error as an external service error
func WrapExternal(message string, err error) error {
	return &AppError{
		Type:    ErrorTypeExternal,
		Message: message,
		Err:     err,
	}
}

// TooCrowdedf creates a placement failure that callers may recover from
// by retrying with another layout
func TooCrowdedf(format string, args ...interface{}) error {
	return &AppError{
		Type:    ErrorTypeTooCrowded,
		Message: fmt.Sprintf(format, args...),
	}
}

// UnrecognizedFormat creates an error for a stream without the expected magic tag
func UnrecognizedFormat(message string) error {
	return &AppError{
		Type:    ErrorTypeUnrecognizedFormat,
		Message: message,
	}
}

// VersionMismatchf creates an error for a recognized stream with an unsupported version
func VersionMismatchf(format string, args ...interface{}) error {
	return &AppError{
		Type:    ErrorTypeVersionMismatch,
		Message: fmt.Sprintf(format, args...),
	}
}

// GetType returns the error type of an error
func GetType(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// IsTooCrowded reports whether err is a recoverable placement failure
func IsTooCrowded(err error) bool {
	return err != nil && GetType(err) == ErrorTypeTooCrowded
}

// IsNotFound reports whether err is a not found error
func IsNotFound(err error) bool {
	return err != nil && GetType(err) == ErrorTypeNotFound
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}
