package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/app"
)

var venvCmd = &cobra.Command{
	Use:   "venv",
	Short: "Create a virtual environment",
	Long: `Create a virtual environment with the system interpreter.

The directory defaults to venv_dir from pyforage.toml (.venv). With --start
a shell is started inside the new environment.`,
	Args: cobra.NoArgs,
	RunE: runVenv,
}

var (
	venvDir    string
	venvPrompt string
	venvStart  bool
)

func init() {
	venvCmd.Flags().StringVarP(&venvDir, "name", "n", "", "Environment directory (default from config)")
	venvCmd.Flags().StringVarP(&venvPrompt, "prompt", "p", "", "Prompt shown while the environment is active")
	venvCmd.Flags().BoolVarP(&venvStart, "start", "s", false, "Start a shell in the environment after creating it")
	rootCmd.AddCommand(venvCmd)
}

func runVenv(cmd *cobra.Command, args []string) error {
	py, err := resolveInterpreter()
	if err != nil {
		return err
	}

	layout := app.Default.Venv(venvDir)
	logInfo("Creating virtual environment in %s", layout.Dir)

	if err := py.CreateVenv(commandContext(cmd), layout.Dir, venvPrompt); err != nil {
		return err
	}

	logSuccess("Virtual environment created")
	printActivation(layout)

	if venvStart {
		return startShell(layout, venvPrompt)
	}
	return nil
}
