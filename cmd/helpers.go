package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/interpreter"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/venv"
)

// commandContext returns the command's context, falling back to Background
// when the command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// resolveInterpreter returns the system interpreter for the current app.
func resolveInterpreter() (*interpreter.Interpreter, error) {
	return app.Default.Interpreter()
}

// printActivation tells the user how to enter and leave the venv.
func printActivation(layout venv.Layout) {
	logInfo("Activate with: %s", logging.Highlight(layout.ActivateCommand()))
	logInfo("Leave with: %s", logging.Highlight("deactivate"))
}

// startShell replaces the process with the user's shell running inside layout.
func startShell(layout venv.Layout, prompt string) error {
	if !layout.Exists(app.Default.FS) {
		return errors.VenvFailed("activate", fmt.Errorf("%s is not a virtual environment", layout.Dir))
	}

	if prompt == "" {
		if cfg, err := layout.ReadConfig(app.Default.FS); err == nil {
			prompt = strings.Trim(cfg["prompt"], `'"`)
		}
	}

	shell := venv.Shell(os.Getenv)
	exec := app.Default.Executor
	path, err := exec.LookPath(shell)
	if err != nil {
		return errors.VenvFailed("activate", err)
	}

	env := layout.Environ(os.Environ(), prompt)
	logging.Debug("starting shell", "shell", path, "venv", layout.Dir)
	if err := exec.ReplaceProcess(env, path); err != nil {
		return errors.VenvFailed("activate", err)
	}
	return nil
}
