package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Icon configuration errors
	ErrConfigSourceNotFound ErrorCode = "CONFIG_SOURCE_NOT_FOUND"
	ErrConfigInvalidShape   ErrorCode = "CONFIG_INVALID_SHAPE"
	ErrConfigMissingField   ErrorCode = "CONFIG_MISSING_FIELD"
	ErrConfigParse          ErrorCode = "CONFIG_PARSE"
	ErrConfigValid          ErrorCode = "CONFIG_INVALID"

	// Manifest errors
	ErrManifestMissingAnchor ErrorCode = "MANIFEST_MISSING_ANCHOR"
	ErrManifestRead          ErrorCode = "MANIFEST_READ"
	ErrManifestWrite         ErrorCode = "MANIFEST_WRITE"
	ErrManifestMalformed     ErrorCode = "MANIFEST_MALFORMED"

	// Runtime selection errors
	ErrComponentNotFound ErrorCode = "COMPONENT_NOT_FOUND"
	ErrNoContext         ErrorCode = "NO_CONTEXT"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCopy     ErrorCode = "FILE_COPY"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"

	// Backup errors
	ErrBackupCreate  ErrorCode = "BACKUP_CREATE"
	ErrBackupMissing ErrorCode = "BACKUP_MISSING"
	ErrBackupRestore ErrorCode = "BACKUP_RESTORE"
)

// IconshiftError represents a structured error with code and details
type IconshiftError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *IconshiftError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *IconshiftError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *IconshiftError) Is(target error) bool {
	var targetErr *IconshiftError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new IconshiftError with the given code and message
func New(code ErrorCode, message string) *IconshiftError {
	return &IconshiftError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new IconshiftError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *IconshiftError {
	return &IconshiftError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an IconshiftError
func Wrap(err error, code ErrorCode, message string) *IconshiftError {
	if err == nil {
		return nil
	}
	return &IconshiftError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *IconshiftError {
	if err == nil {
		return nil
	}
	return &IconshiftError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *IconshiftError) WithDetail(key string, value interface{}) *IconshiftError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// GetCode extracts the error code from an error, returning ErrUnknown
// for errors that are not IconshiftErrors
func GetCode(err error) ErrorCode {
	var ierr *IconshiftError
	if errors.As(err, &ierr) {
		return ierr.Code
	}
	return ErrUnknown
}

// IsCode reports whether err carries the given code
func IsCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}
