package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Content errors
	ErrCodeContentDirNotFound ErrorCode = "CONTENT_DIR_NOT_FOUND"
	ErrCodePostNotFound       ErrorCode = "POST_NOT_FOUND"
	ErrCodePostInvalid        ErrorCode = "POST_INVALID"
	ErrCodeFrontmatterInvalid ErrorCode = "FRONTMATTER_INVALID"

	// Schema errors
	ErrCodeSchemaCompile    ErrorCode = "SCHEMA_COMPILE"
	ErrCodeSchemaValidation ErrorCode = "SCHEMA_VALIDATION"

	// Watcher errors
	ErrCodeWatchFailed ErrorCode = "WATCH_FAILED"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// LoamError represents a structured error with context
type LoamError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *LoamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LoamError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *LoamError) WithDetail(key string, value interface{}) *LoamError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *LoamError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new LoamError
func New(code ErrorCode, message string) *LoamError {
	return &LoamError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a LoamError
func Wrap(err error, code ErrorCode, message string) *LoamError {
	return &LoamError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific LoamError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	loamErr, ok := err.(*LoamError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return loamErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	loamErr, ok := err.(*LoamError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return loamErr.Code
}
