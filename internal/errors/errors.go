package errors

import (
	"errors"
	"fmt"
)

// Exit codes for pyforage
const (
	ExitSuccess             = 0
	ExitGeneralError        = 1
	ExitInterpreterNotFound = 2
	ExitVenvFailed          = 3
	ExitProjectExists       = 4
	ExitManifestNotFound    = 5
	ExitInstallFailed       = 6
	ExitConfigError         = 7
	ExitScanFailed          = 8
)

// PyforageError is the base error type for pyforage
type PyforageError struct {
	Code    int
	Message string
	Cause   error
}

func (e *PyforageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PyforageError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *PyforageError) ExitCode() int {
	return e.Code
}

// New creates a new PyforageError
func New(code int, message string) *PyforageError {
	return &PyforageError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a PyforageError
func Wrap(code int, message string, cause error) *PyforageError {
	return &PyforageError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// InterpreterNotFound returns an error when no Python interpreter can be located
func InterpreterNotFound(cause error) *PyforageError {
	return Wrap(ExitInterpreterNotFound, "no Python interpreter found", cause)
}

// VenvFailed returns an error for virtual environment operations
func VenvFailed(op string, cause error) *PyforageError {
	return Wrap(ExitVenvFailed, fmt.Sprintf("virtual environment %s failed", op), cause)
}

// ProjectExists returns an error when the project directory is already present
func ProjectExists(path string) *PyforageError {
	return New(ExitProjectExists, fmt.Sprintf("project directory already exists: %s", path))
}

// ManifestNotFound returns an error for a missing requirements manifest
func ManifestNotFound(path string) *PyforageError {
	return New(ExitManifestNotFound, fmt.Sprintf("%s not found", path))
}

// InstallFailed returns an error for a failed pip install
func InstallFailed(cause error) *PyforageError {
	return Wrap(ExitInstallFailed, "installing requirements failed", cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *PyforageError {
	return Wrap(ExitConfigError, message, cause)
}

// ScanFailed returns an error when a source file cannot be scanned
func ScanFailed(path string, cause error) *PyforageError {
	return Wrap(ExitScanFailed, fmt.Sprintf("scanning %s failed", path), cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *PyforageError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var pyErr *PyforageError
	if errors.As(err, &pyErr) {
		return pyErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
