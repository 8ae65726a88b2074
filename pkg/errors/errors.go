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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Theme errors
	ErrThemeOverrideInvalid ErrorCode = "THEME_OVERRIDE_INVALID"
	ErrThemeUnknown         ErrorCode = "THEME_UNKNOWN"

	// Install errors
	ErrToolPresent   ErrorCode = "TOOL_PRESENT"
	ErrInstallFailed ErrorCode = "INSTALL_FAILED"
	ErrToolNotFound  ErrorCode = "TOOL_NOT_FOUND"

	// Settings and profile errors
	ErrSettingsParse    ErrorCode = "SETTINGS_PARSE"
	ErrSettingsWrite    ErrorCode = "SETTINGS_WRITE"
	ErrSettingsConflict ErrorCode = "SETTINGS_CONFLICT"
	ErrBackupFailed     ErrorCode = "BACKUP_FAILED"
	ErrProfileRender    ErrorCode = "PROFILE_RENDER"
	ErrProfileWrite     ErrorCode = "PROFILE_WRITE"
	ErrVerifyFailed     ErrorCode = "VERIFY_FAILED"

	// Run control
	ErrRunAborted        ErrorCode = "RUN_ABORTED"
	ErrElevationDeclined ErrorCode = "ELEVATION_DECLINED"
	ErrInputClosed       ErrorCode = "INPUT_CLOSED"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// ThemeupError represents a structured error with code and details
type ThemeupError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ThemeupError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ThemeupError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ThemeupError) Is(target error) bool {
	var targetErr *ThemeupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

func newError(code ErrorCode, message string, wrapped error) *ThemeupError {
	return &ThemeupError{
		Code:    code,
		Message: message,
		Details: map[string]interface{}{},
		Wrapped: wrapped,
	}
}

// New creates a ThemeupError with the given code and message
func New(code ErrorCode, message string) *ThemeupError {
	return newError(code, message, nil)
}

// Newf is New with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ThemeupError {
	return newError(code, fmt.Sprintf(format, args...), nil)
}

// Wrap attaches a code and message to err. A nil err yields a nil
// *ThemeupError, so callers must check err first rather than returning
// Wrap's result as an error interface unconditionally.
func Wrap(err error, code ErrorCode, message string) *ThemeupError {
	if err == nil {
		return nil
	}
	return newError(code, message, err)
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ThemeupError {
	if err == nil {
		return nil
	}
	return newError(code, fmt.Sprintf(format, args...), err)
}

// WithDetail adds a detail to the error
func (e *ThemeupError) WithDetail(key string, value interface{}) *ThemeupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode reports whether err, or an error it wraps, is a
// ThemeupError with code
func IsErrorCode(err error, code ErrorCode) bool {
	return err != nil && GetErrorCode(err) == code
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ThemeupError
func GetErrorCode(err error) ErrorCode {
	var themeupErr *ThemeupError
	if errors.As(err, &themeupErr) {
		return themeupErr.Code
	}
	return ErrUnknown
}
