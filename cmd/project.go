package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/project"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/tui"
)

var projectCmd = &cobra.Command{
	Use:   "project [name]",
	Short: "Scaffold a project directory with its own environment",
	Long: `Create <name>/ holding a virtual environment, an empty requirements.txt
and a pyforage.toml. Fails if the directory already exists.

Without a name on an interactive terminal, a wizard asks for one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProject,
}

var projectPrompt string

// runWizard is swapped in tests.
var runWizard = tui.RunWizard

// stdinIsTerminal is swapped in tests.
var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func init() {
	projectCmd.Flags().StringVarP(&projectPrompt, "prompt", "p", "", "Prompt for the project's environment (default: name)")
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, args []string) error {
	var opts project.CreateOptions

	if len(args) == 1 {
		opts = project.CreateOptions{Name: args[0], Prompt: projectPrompt}
	} else {
		if !stdinIsTerminal() {
			return errors.ValidationError("project name required when not running on a terminal")
		}
		result, err := runWizard()
		if err != nil {
			return err
		}
		if result == nil {
			logInfo("Cancelled")
			return nil
		}
		opts = *result
	}

	py, err := resolveInterpreter()
	if err != nil {
		return err
	}

	a := app.Default
	creator := project.NewCreator(a.FS, py, a.WorkDir, a.Config)

	logInfo("Creating project %s", logging.Highlight(opts.Name))
	result, err := creator.Create(commandContext(cmd), opts)
	if err != nil {
		return err
	}

	logSuccess("Project created in %s", result.Dir)
	logInfo("Activate with: %s", logging.Highlight(result.Activate))
	logInfo("Leave with: %s", logging.Highlight("deactivate"))
	return nil
}
