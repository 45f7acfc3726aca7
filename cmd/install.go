package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/interpreter"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/logging"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install requirements.txt with pip",
	Long: `Install the requirements manifest with pip.

The configured virtual environment's interpreter is used when the
environment exists; otherwise the system interpreter is used.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

var (
	installManifest string
	installSystem   bool
)

func init() {
	installCmd.Flags().StringVarP(&installManifest, "requirements", "r", "", "Manifest to install (default from config)")
	installCmd.Flags().BoolVar(&installSystem, "system", false, "Use the system interpreter even if a venv exists")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	a := app.Default
	manifest := a.Manifest(installManifest)

	if !a.FS.Exists(manifest) {
		return errors.ManifestNotFound(manifest)
	}

	py, err := a.InstallInterpreter(installSystem)
	if err != nil {
		return err
	}

	logInfo("Installing %s with %s", logging.Highlight(manifest), py)
	pip := interpreter.PipOptions{
		IndexURL:  a.Config.Pip.IndexURL,
		ExtraArgs: a.Config.Pip.ExtraArgs,
	}
	if err := py.InstallRequirements(commandContext(cmd), manifest, pip); err != nil {
		return err
	}

	logSuccess("Requirements installed")
	return nil
}
