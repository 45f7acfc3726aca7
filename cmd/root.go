package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "pyforage",
	Short: "Python virtual environment and requirements helper",
	Long: `pyforage wraps the Python interpreter's environment tooling.

Commands:
  venv      Create a virtual environment
  project   Scaffold a project directory with its own environment
  req       Generate requirements.txt from a source file's imports
  install   Install requirements.txt with pip
  shell     Start a shell with a virtual environment activated
  status    Show interpreter, environment and manifest state

Settings are read from pyforage.toml in the current directory.
To leave an activated environment, run "deactivate".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(logging.Options{
			Verbose: verbose,
			JSON:    jsonOutput,
			Out:     cmd.OutOrStdout(),
			Err:     cmd.ErrOrStderr(),
		})
		return app.Default.LoadConfig(configPath)
	},
}

// Execute runs the root command and reports any error to the user.
// Interpreter child processes are bound to ctx.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		logging.UserError("%v", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to pyforage.toml")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)
