package project

import "context"

// VenvCreator creates virtual environments.
type VenvCreator interface {
	CreateVenv(ctx context.Context, dir, prompt string) error
}

// CreateOptions holds all options for creating a project.
type CreateOptions struct {
	// Name is the project directory name (required)
	Name string

	// Prompt is the venv prompt; defaults to Name
	Prompt string
}

// CreateResult holds the result of a successful project creation.
type CreateResult struct {
	// Dir is the project directory
	Dir string

	// VenvDir is the virtual environment inside Dir
	VenvDir string

	// Manifest is the empty requirements file
	Manifest string

	// ConfigPath is the written pyforage.toml
	ConfigPath string

	// Activate is the command that activates the venv
	Activate string
}
