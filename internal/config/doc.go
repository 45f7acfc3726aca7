// Package config provides pyforage.toml loading and name validation.
//
// # Configuration File
//
// pyforage reads pyforage.toml from the working directory (or the path
// given with --config). Every key is optional:
//
//	python   = "python3.12"        # interpreter command, shell-quoted
//	venv_dir = ".venv"             # virtual environment directory
//	manifest = "requirements.txt"  # dependency manifest
//
//	[pip]
//	index_url  = "https://pypi.example.com/simple"
//	extra_args = ["--no-cache-dir"]
//
//	[project]
//	name   = "demo"                # written by `pyforage project`
//	prompt = "demo"
//
// A missing file is not an error; Default() is used instead.
//
// # Validation
//
// Load validates after parsing. ValidateProjectName and SafeJoin guard
// project directory names so a name cannot escape the working directory.
package config
