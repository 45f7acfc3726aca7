package app

import (
	"os"
	"path/filepath"

	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/interpreter"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/system"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/venv"
)

// App holds the application dependencies
type App struct {
	// FS is the filesystem used for all reads and writes
	FS system.FileSystem

	// Executor runs the interpreter and shells
	Executor system.CommandExecutor

	// WorkDir is the directory relative paths resolve against
	WorkDir string

	// Config is the loaded pyforage.toml (or defaults)
	Config *config.Config
}

// Option is a function that configures the App
type Option func(*App)

// WithFS sets a custom filesystem
func WithFS(fsys system.FileSystem) Option {
	return func(a *App) {
		a.FS = fsys
	}
}

// WithExecutor sets a custom command executor
func WithExecutor(exec system.CommandExecutor) Option {
	return func(a *App) {
		a.Executor = exec
	}
}

// WithWorkDir sets the working directory
func WithWorkDir(dir string) Option {
	return func(a *App) {
		a.WorkDir = dir
	}
}

// WithConfig sets a custom config
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		a.Config = cfg
	}
}

// New creates a new App with the given options.
func New(opts ...Option) *App {
	app := &App{
		FS:       system.DefaultFS(),
		Executor: system.DefaultExecutor(),
		Config:   config.Default(),
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			logging.Debug("failed to determine working directory", "error", err)
			wd = "."
		}
		app.WorkDir = wd
	}

	return app
}

// Path resolves p against the working directory. Absolute paths are returned unchanged.
func (a *App) Path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.WorkDir, p)
}

// LoadConfig loads the config at path, or pyforage.toml in the working
// directory when path is empty.
func (a *App) LoadConfig(path string) error {
	if path == "" {
		path = config.ConfigFileName
	}

	cfg, err := config.Load(a.FS, a.Path(path))
	if err != nil {
		return errors.ConfigError("failed to load configuration", err)
	}

	a.Config = cfg
	return nil
}

// Interpreter resolves the configured or discovered system interpreter.
func (a *App) Interpreter() (*interpreter.Interpreter, error) {
	argv, err := a.Config.PythonCommand()
	if err != nil {
		return nil, errors.ConfigError("invalid python setting", err)
	}
	return interpreter.Resolve(argv, a.Executor)
}

// Venv returns the layout of dir, or of the configured venv when dir is empty.
func (a *App) Venv(dir string) venv.Layout {
	if dir == "" {
		dir = a.Config.VenvDir
	}
	return venv.New(a.Path(dir))
}

// Manifest returns the manifest path, or the configured one when path is empty.
func (a *App) Manifest(path string) string {
	if path == "" {
		path = a.Config.Manifest
	}
	return a.Path(path)
}

// InstallInterpreter returns the interpreter pip should run under: the
// configured venv's own Python when it exists, else the system interpreter.
func (a *App) InstallInterpreter(forceSystem bool) (*interpreter.Interpreter, error) {
	if !forceSystem {
		layout := a.Venv("")
		if layout.Exists(a.FS) {
			logging.Debug("installing into venv", "dir", layout.Dir)
			return interpreter.ForVenv(layout, a.Executor), nil
		}
	}
	return a.Interpreter()
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
