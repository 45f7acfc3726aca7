package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/app"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start a shell with a virtual environment activated",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

var shellVenvDir string

func init() {
	shellCmd.Flags().StringVarP(&shellVenvDir, "name", "n", "", "Environment directory (default from config)")
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	return startShell(app.Default.Venv(shellVenvDir), "")
}
