// Package venv describes the on-disk layout of a Python virtual environment
// and the environment variables an activated shell needs.
package venv

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	goruntime "runtime"
	"strings"
	"time"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/system"
)

// ConfigFileName is the marker file written by "python -m venv".
const ConfigFileName = "pyvenv.cfg"

// Layout locates the files of a virtual environment rooted at Dir.
type Layout struct {
	Dir  string
	GOOS string
}

// New returns the layout of dir for the running OS.
func New(dir string) Layout {
	return Layout{Dir: dir, GOOS: goruntime.GOOS}
}

func (l Layout) windows() bool {
	return l.GOOS == "windows"
}

func (l Layout) join(elem ...string) string {
	if l.windows() {
		return strings.Join(append([]string{l.Dir}, elem...), `\`)
	}
	return filepath.Join(append([]string{l.Dir}, elem...)...)
}

// BinDir returns the directory holding the venv's executables.
func (l Layout) BinDir() string {
	if l.windows() {
		return l.join("Scripts")
	}
	return l.join("bin")
}

// Python returns the path of the venv's interpreter.
func (l Layout) Python() string {
	if l.windows() {
		return l.join("Scripts", "python.exe")
	}
	return l.join("bin", "python")
}

// ActivateScript returns the path of the activation script.
func (l Layout) ActivateScript() string {
	if l.windows() {
		return l.join("Scripts", "activate")
	}
	return l.join("bin", "activate")
}

// ActivateCommand returns the command a user types to activate the venv.
func (l Layout) ActivateCommand() string {
	if l.windows() {
		return l.ActivateScript()
	}
	return "source " + shellquote.Join(l.ActivateScript())
}

// ConfigPath returns the path of pyvenv.cfg.
func (l Layout) ConfigPath() string {
	return l.join(ConfigFileName)
}

// Exists reports whether Dir holds a virtual environment.
func (l Layout) Exists(fsys system.FileSystem) bool {
	return fsys.Exists(l.ConfigPath())
}

// Created returns when the venv was created, taken from pyvenv.cfg.
func (l Layout) Created(fsys system.FileSystem) (time.Time, error) {
	info, err := fsys.Stat(l.ConfigPath())
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// ReadConfig parses pyvenv.cfg into its "key = value" pairs.
func (l Layout) ReadConfig(fsys system.FileSystem) (map[string]string, error) {
	data, err := fsys.ReadFile(l.ConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", l.ConfigPath(), err)
	}

	cfg := make(map[string]string)
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), "=")
		if !ok {
			continue
		}
		cfg[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return cfg, sc.Err()
}

// Environ returns base with the venv activated: VIRTUAL_ENV and
// VIRTUAL_ENV_PROMPT set, the bin dir first on PATH, PYTHONHOME unset.
func (l Layout) Environ(base []string, prompt string) []string {
	if prompt == "" {
		prompt = filepath.Base(l.Dir)
	}

	listSep := ":"
	if l.windows() {
		listSep = ";"
	}

	env := make([]string, 0, len(base)+3)
	path := ""
	for _, kv := range base {
		key, value, _ := strings.Cut(kv, "=")
		switch strings.ToUpper(key) {
		case "PATH":
			path = value
			continue
		case "VIRTUAL_ENV", "VIRTUAL_ENV_PROMPT", "PYTHONHOME":
			continue
		}
		env = append(env, kv)
	}

	if path != "" {
		path = l.BinDir() + listSep + path
	} else {
		path = l.BinDir()
	}

	return append(env,
		"VIRTUAL_ENV="+l.Dir,
		"VIRTUAL_ENV_PROMPT="+prompt,
		"PATH="+path,
	)
}

// Shell returns the user's login shell from $SHELL, falling back to bash.
// An absolute $SHELL is returned as-is so it resolves without PATH.
func Shell(getenv func(string) string) string {
	if shell := getenv("SHELL"); shell != "" {
		return shell
	}
	return "bash"
}
