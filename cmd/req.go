package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/requirements"
)

var reqCmd = &cobra.Command{
	Use:   "req",
	Short: "Generate requirements.txt from a source file's imports",
	Long: `Generate a requirements manifest from the import statements of one file.

Every line starting with "import " or "from " contributes the top-level
module it names. Modules shipped with the interpreter are left out. The
result is sorted, deduplicated and overwrites the manifest. Without --file,
or when the file does not exist, an empty manifest is written.`,
	Args: cobra.NoArgs,
	RunE: runReq,
}

var (
	reqFile     string
	reqManifest string
)

func init() {
	reqCmd.Flags().StringVarP(&reqFile, "file", "f", "", "Python source file to scan")
	reqCmd.Flags().StringVarP(&reqManifest, "output", "o", "", "Manifest to write (default from config)")
	rootCmd.AddCommand(reqCmd)
}

// lazyStdlib defers resolving the interpreter until the standard module
// list is actually needed, so the empty-manifest path works without Python.
type lazyStdlib struct{}

func (lazyStdlib) StandardModules(ctx context.Context) (requirements.StdlibSet, error) {
	py, err := resolveInterpreter()
	if err != nil {
		return nil, err
	}
	return py.StandardModules(ctx)
}

func runReq(cmd *cobra.Command, args []string) error {
	opts := requirements.GenerateOptions{
		Manifest: app.Default.Manifest(reqManifest),
	}
	if reqFile != "" {
		opts.Source = app.Default.Path(reqFile)
	}

	extractor := requirements.NewExtractor(app.Default.FS, lazyStdlib{})
	result, err := extractor.Generate(commandContext(cmd), opts)
	if err != nil {
		return err
	}

	if result.Empty {
		logWarning("No source file found, wrote empty %s", logging.Highlight(result.Manifest))
		return nil
	}

	logSuccess("Wrote %d requirements to %s", len(result.Requirements), logging.Highlight(result.Manifest))
	return nil
}
