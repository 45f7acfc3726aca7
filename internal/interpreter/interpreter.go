package interpreter

import (
	"context"
	"fmt"
	goruntime "runtime"
	"strings"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/requirements"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/system"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/venv"
)

// stdlibScript prints every top-level importable module name plus the
// compiled-in module names, one per line. The empty sys.path entry that
// "python -" adds for the working directory is dropped so project-local
// modules are not mistaken for standard ones.
const stdlibScript = `import pkgutil
import sys

sys.path[:] = [p for p in sys.path if p]
names = {m.name for m in pkgutil.iter_modules()}
names.update(sys.builtin_module_names)
sys.stdout.write("\n".join(sorted(names)) + "\n")
`

// Interpreter is a Python interpreter invoked through a CommandExecutor.
type Interpreter struct {
	argv []string
	exec system.CommandExecutor
}

// PipOptions holds extra arguments for pip install.
type PipOptions struct {
	IndexURL  string
	ExtraArgs []string
}

// New creates an Interpreter from a command line such as ["python3"] or ["py", "-3"].
func New(argv []string, exec system.CommandExecutor) *Interpreter {
	return &Interpreter{
		argv: append([]string(nil), argv...),
		exec: exec,
	}
}

// ForVenv returns the interpreter inside a virtual environment.
func ForVenv(layout venv.Layout, exec system.CommandExecutor) *Interpreter {
	return New([]string{layout.Python()}, exec)
}

// Candidates returns the executable names searched on PATH for goos.
func Candidates(goos string) []string {
	if goos == "windows" {
		return []string{"python", "py"}
	}
	return []string{"python3", "python"}
}

// Resolve finds an interpreter. A non-empty configured command is used as-is
// after checking its executable exists; otherwise PATH is searched.
func Resolve(configured []string, exec system.CommandExecutor) (*Interpreter, error) {
	if len(configured) > 0 {
		path, err := exec.LookPath(configured[0])
		if err != nil {
			return nil, errors.InterpreterNotFound(fmt.Errorf("configured interpreter %q: %w", configured[0], err))
		}
		argv := append([]string{path}, configured[1:]...)
		logging.Debug("using configured interpreter", "argv", argv)
		return New(argv, exec), nil
	}

	candidates := Candidates(goruntime.GOOS)
	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			logging.Debug("detected interpreter", "name", name, "path", path)
			return New([]string{path}, exec), nil
		}
	}

	return nil, errors.InterpreterNotFound(fmt.Errorf("tried: %s", strings.Join(candidates, ", ")))
}

// Command returns the interpreter command line.
func (i *Interpreter) Command() []string {
	return append([]string(nil), i.argv...)
}

// String returns the shell-quoted interpreter command line.
func (i *Interpreter) String() string {
	return shellquote.Join(i.argv...)
}

func (i *Interpreter) args(extra ...string) []string {
	out := make([]string, 0, len(i.argv)-1+len(extra))
	out = append(out, i.argv[1:]...)
	return append(out, extra...)
}

// Version returns the output of "python --version", e.g. "Python 3.12.1".
func (i *Interpreter) Version(ctx context.Context) (string, error) {
	out, err := i.exec.Execute(ctx, i.argv[0], i.args("--version")...)
	if err != nil {
		return "", fmt.Errorf("%s --version: %w", i, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// StandardModules asks the interpreter for its standard and built-in module names.
func (i *Interpreter) StandardModules(ctx context.Context) (requirements.StdlibSet, error) {
	out, err := i.exec.ExecuteWithStdin(ctx, stdlibScript, i.argv[0], i.args("-")...)
	if err != nil {
		return nil, fmt.Errorf("enumerating modules with %s: %w", i, err)
	}

	std := requirements.ParseStdlibList(out)
	logging.Debug("loaded standard modules", "interpreter", i.String(), "num", std.Len())
	return std, nil
}

// CreateVenv runs "python -m venv dir", adding --prompt when prompt is set.
func (i *Interpreter) CreateVenv(ctx context.Context, dir, prompt string) error {
	args := i.args("-m", "venv", dir)
	if prompt != "" {
		args = append(args, "--prompt", prompt)
	}

	logging.Debug("creating venv", "dir", dir, "prompt", prompt)
	if err := i.exec.ExecuteInteractive(ctx, i.argv[0], args...); err != nil {
		return errors.VenvFailed("create", err)
	}
	return nil
}

// InstallRequirements runs "python -m pip install -r manifest".
func (i *Interpreter) InstallRequirements(ctx context.Context, manifest string, opts PipOptions) error {
	args := i.args("-m", "pip", "install", "-r", manifest)
	if opts.IndexURL != "" {
		args = append(args, "--index-url", opts.IndexURL)
	}
	args = append(args, opts.ExtraArgs...)

	logging.Debug("installing requirements", "manifest", manifest, "args", args)
	if err := i.exec.ExecuteInteractive(ctx, i.argv[0], args...); err != nil {
		return errors.InstallFailed(err)
	}
	return nil
}
