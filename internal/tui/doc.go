// Package tui provides terminal user interface components for pyforage.
//
// This package uses the Bubble Tea framework for the interactive project
// wizard run by "pyforage project" when no name is given on a terminal.
//
//	opts, err := tui.RunWizard()
//	if err != nil {
//	    return err
//	}
//	if opts == nil {
//	    // cancelled
//	}
//
// # Wizard Steps
//
//   - Project name, validated as it is submitted
//   - Shell prompt for the venv, defaulting to the name
//   - Confirmation (Enter or y creates, n restarts)
//
// Esc goes back one step and cancels on the first; Ctrl+C always cancels.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
