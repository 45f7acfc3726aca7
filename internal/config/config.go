package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
	securejoin "github.com/cyphar/filepath-securejoin"
	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/system"
)

const (
	ConfigFileName  = "pyforage.toml"
	DefaultVenvDir  = ".venv"
	DefaultManifest = "requirements.txt"
)

// projectNameRegex validates project directory names.
// Names must start with a letter or digit, followed by letters, digits, dots, underscores, or hyphens.
var projectNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,127}$`)

// ValidateProjectName checks if a project name is usable as a directory name.
// Valid names:
//   - Start with a letter or digit
//   - Contain only letters, digits, dots, underscores, or hyphens
//   - Are between 1 and 128 characters long
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}

	if !projectNameRegex.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must start with a letter or digit, contain only letters, digits, dots, underscores, or hyphens, and be at most 128 characters", name)
	}

	return nil
}

// SafeJoin joins name onto baseDir, refusing names that would land outside it.
func SafeJoin(baseDir, name string) (string, error) {
	if filepath.IsAbs(name) {
		return "", fmt.Errorf("name cannot be an absolute path")
	}

	if filepath.Dir(name) != "." {
		return "", fmt.Errorf("name cannot contain path separators")
	}

	path, err := securejoin.SecureJoin(baseDir, name)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	return path, nil
}

// Config is the pyforage.toml configuration
type Config struct {
	// Python is the interpreter command, split with shell quoting rules.
	// Empty means search PATH.
	Python   string         `toml:"python,omitempty"`
	VenvDir  string         `toml:"venv_dir"`
	Manifest string         `toml:"manifest"`
	Pip      PipConfig      `toml:"pip"`
	Project  *ProjectConfig `toml:"project,omitempty"`
}

// PipConfig holds options passed to pip install
type PipConfig struct {
	IndexURL  string   `toml:"index_url,omitempty"`
	ExtraArgs []string `toml:"extra_args,omitempty"`
}

// ProjectConfig is written by the project scaffolder
type ProjectConfig struct {
	Name   string `toml:"name"`
	Prompt string `toml:"prompt,omitempty"`
}

// Default returns the configuration used when no pyforage.toml exists
func Default() *Config {
	return &Config{
		VenvDir:  DefaultVenvDir,
		Manifest: DefaultManifest,
	}
}

// Validate checks that the Config is valid.
func (c *Config) Validate() error {
	if c.VenvDir == "" {
		return fmt.Errorf("venv_dir cannot be empty")
	}
	if c.Manifest == "" {
		return fmt.Errorf("manifest cannot be empty")
	}
	if _, err := c.PythonCommand(); err != nil {
		return err
	}
	if c.Project != nil {
		if err := ValidateProjectName(c.Project.Name); err != nil {
			return fmt.Errorf("project: %w", err)
		}
	}
	return nil
}

// PythonCommand returns the configured interpreter command as argv,
// or nil when the interpreter should be discovered on PATH.
func (c *Config) PythonCommand() ([]string, error) {
	if c.Python == "" {
		return nil, nil
	}
	argv, err := shellquote.Split(c.Python)
	if err != nil {
		return nil, fmt.Errorf("invalid python command %q: %w", c.Python, err)
	}
	if len(argv) == 0 {
		return nil, nil
	}
	return argv, nil
}

// Load reads the configuration at path. A missing file yields Default().
func Load(fsys system.FileSystem, path string) (*Config, error) {
	cfg := Default()

	if !fsys.Exists(path) {
		logging.Debug("no config file, using defaults", "path", path)
		return cfg, nil
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		logging.Warn("unknown config key", "path", path, "key", key.String())
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadDir loads pyforage.toml from dir.
func LoadDir(fsys system.FileSystem, dir string) (*Config, error) {
	return Load(fsys, filepath.Join(dir, ConfigFileName))
}

// Save writes cfg as TOML to path, replacing any existing file.
func Save(fsys system.FileSystem, path string, cfg *Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := fsys.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
