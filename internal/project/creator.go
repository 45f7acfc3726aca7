package project

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/requirements"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/system"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/venv"
)

// Creator handles project creation with all necessary dependencies.
type Creator struct {
	fs      system.FileSystem
	venvs   VenvCreator
	baseDir string
	cfg     *config.Config
}

// NewCreator creates a Creator that scaffolds projects under baseDir.
func NewCreator(fsys system.FileSystem, venvs VenvCreator, baseDir string, cfg *config.Config) *Creator {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Creator{
		fs:      fsys,
		venvs:   venvs,
		baseDir: baseDir,
		cfg:     cfg,
	}
}

// Create creates a new project with the given options.
func (c *Creator) Create(ctx context.Context, opts CreateOptions) (*CreateResult, error) {
	logging.Debug("starting project creation", "name", opts.Name, "base", c.baseDir)

	if err := config.ValidateProjectName(opts.Name); err != nil {
		return nil, errors.ValidationError(err.Error())
	}

	dir, err := config.SafeJoin(c.baseDir, opts.Name)
	if err != nil {
		return nil, errors.ValidationError(fmt.Sprintf("invalid project name: %v", err))
	}

	if c.fs.Exists(dir) {
		return nil, errors.ProjectExists(opts.Name)
	}

	prompt := opts.Prompt
	if prompt == "" {
		prompt = opts.Name
	}

	if err := c.fs.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create project directory: %w", err)
	}
	logging.Debug("project directory created", "dir", dir)

	result := &CreateResult{
		Dir:        dir,
		VenvDir:    filepath.Join(dir, c.cfg.VenvDir),
		Manifest:   filepath.Join(dir, c.cfg.Manifest),
		ConfigPath: filepath.Join(dir, config.ConfigFileName),
	}

	if err := c.venvs.CreateVenv(ctx, result.VenvDir, prompt); err != nil {
		c.cleanup(dir)
		return nil, err
	}
	result.Activate = venv.New(result.VenvDir).ActivateCommand()

	if err := requirements.WriteManifest(c.fs, result.Manifest, nil); err != nil {
		c.cleanup(dir)
		return nil, err
	}

	projectCfg := *c.cfg
	projectCfg.Project = &config.ProjectConfig{Name: opts.Name, Prompt: prompt}
	if err := config.Save(c.fs, result.ConfigPath, &projectCfg); err != nil {
		c.cleanup(dir)
		return nil, err
	}

	return result, nil
}

// cleanup removes a partially created project directory.
func (c *Creator) cleanup(dir string) {
	logging.Debug("cleaning up failed project creation", "dir", dir)
	if err := c.fs.RemoveAll(dir); err != nil {
		logging.Warn("failed to remove project directory", "dir", dir, "error", err)
	}
}
