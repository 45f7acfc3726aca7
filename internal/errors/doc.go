// Package errors provides typed errors with exit codes for pyforage.
//
// # Error Types
//
// PyforageError is the base error type that wraps an error with an exit code:
//
//	type PyforageError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess             = 0  // Success
//	ExitGeneralError        = 1  // General/unknown errors
//	ExitInterpreterNotFound = 2  // No Python interpreter on PATH or in config
//	ExitVenvFailed          = 3  // python -m venv failed, or not a venv
//	ExitProjectExists       = 4  // Project directory already present
//	ExitManifestNotFound    = 5  // requirements manifest missing
//	ExitInstallFailed       = 6  // pip install failed
//	ExitConfigError         = 7  // pyforage.toml invalid
//	ExitScanFailed          = 8  // Source file exists but cannot be read
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
