// Package testutil provides test utilities for command-level tests
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/system"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/venv"
)

// PythonPath is where the mock executor finds python3.
const PythonPath = "/usr/bin/python3"

// TestEnv holds the test environment
type TestEnv struct {
	T        *testing.T
	WorkDir  string
	Executor *system.MockExecutor
	App      *app.App
	cleanup  func()
}

// NewTestEnv creates a test environment rooted at a temporary working
// directory, with a mock executor that resolves python3 and reports the
// StdlibListing fixture as its standard modules.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	workDir := t.TempDir()

	exec := system.NewMockExecutor()
	exec.AddPath("python3", PythonPath)
	exec.AddResponse(PythonPath+" --version", []byte("Python 3.12.1\n"), nil)
	exec.AddResponse(PythonPath+" -", StdlibListing(), nil)

	testApp := app.New(
		app.WithFS(system.DefaultFS()),
		app.WithExecutor(exec),
		app.WithWorkDir(workDir),
		app.WithConfig(config.Default()),
	)

	// Save original default and set test app
	originalDefault := app.Default
	app.SetDefault(testApp)

	env := &TestEnv{
		T:        t,
		WorkDir:  workDir,
		Executor: exec,
		App:      testApp,
		cleanup: func() {
			app.SetDefault(originalDefault)
			logging.Setup(logging.Options{})
		},
	}

	return env
}

// Cleanup restores the original app default and logging streams
func (e *TestEnv) Cleanup() {
	if e.cleanup != nil {
		e.cleanup()
	}
}

// Path returns rel resolved against the working directory.
func (e *TestEnv) Path(rel string) string {
	return filepath.Join(e.WorkDir, rel)
}

// WriteFile writes content to rel under the working directory.
func (e *TestEnv) WriteFile(rel string, content []byte) string {
	e.T.Helper()

	path := e.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.T.Fatalf("Failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		e.T.Fatalf("Failed to write %s: %v", rel, err)
	}
	return path
}

// ReadFile reads rel under the working directory.
func (e *TestEnv) ReadFile(rel string) string {
	e.T.Helper()

	data, err := os.ReadFile(e.Path(rel))
	if err != nil {
		e.T.Fatalf("Failed to read %s: %v", rel, err)
	}
	return string(data)
}

// FileExists reports whether rel exists under the working directory.
func (e *TestEnv) FileExists(rel string) bool {
	_, err := os.Stat(e.Path(rel))
	return err == nil
}

// CreateVenv fakes a virtual environment at rel by writing its pyvenv.cfg.
func (e *TestEnv) CreateVenv(rel string) venv.Layout {
	e.T.Helper()

	layout := venv.New(e.Path(rel))
	e.WriteFile(filepath.Join(rel, venv.ConfigFileName), []byte("home = /usr/bin\nversion = 3.12.1\n"))
	return layout
}
