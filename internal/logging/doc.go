// Package logging provides logging utilities for pyforage.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog. Setup wires the --verbose and --json
// flags and the command's output streams in one call:
//
//	logging.Setup(logging.Options{
//	    Verbose: verbose,
//	    JSON:    jsonOutput,
//	    Out:     cmd.OutOrStdout(),
//	    Err:     cmd.ErrOrStderr(),
//	})
//
//	logging.Debug("creating venv", "dir", dir, "prompt", prompt)
//	logging.Warn("unknown config key", "key", key)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Creating virtual environment in %s...", dir)
//	logging.UserSuccess("Project %s created", name)
//	logging.UserWarning("Empty %s created", manifest)
//	logging.UserError("Install failed: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: Options.Out (stdout)
//   - UserWarning, UserError and log records: Options.Err (stderr)
//
// Glyphs are colored with lipgloss when the terminal supports it.
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
