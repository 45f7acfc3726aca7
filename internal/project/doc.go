// Package project scaffolds new Python project directories.
//
// A scaffolded project looks like:
//
//	demo/
//	├── .venv/            python -m venv demo/.venv --prompt demo
//	├── pyforage.toml     project settings
//	└── requirements.txt  empty manifest
//
// Creation refuses to touch an existing path. If any step after the
// directory is made fails, the directory is removed again.
package project
