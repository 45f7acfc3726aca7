package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/requirements"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show interpreter, environment and manifest state",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// statusReport is the state shown by the status command.
type statusReport struct {
	Interpreter string
	Version     string
	VenvDir     string
	VenvExists  bool
	VenvCreated time.Time
	Manifest    string
	Entries     int
	HasManifest bool
}

func runStatus(cmd *cobra.Command, args []string) error {
	a := app.Default
	report := statusReport{
		VenvDir:  a.Venv("").Dir,
		Manifest: a.Manifest(""),
	}

	if py, err := resolveInterpreter(); err != nil {
		logging.Debug("interpreter not resolved", "error", err)
		report.Interpreter = "not found"
	} else {
		report.Interpreter = py.String()
		if v, err := py.Version(commandContext(cmd)); err == nil {
			report.Version = v
		} else {
			logging.Debug("version query failed", "error", err)
		}
	}

	layout := a.Venv("")
	if layout.Exists(a.FS) {
		report.VenvExists = true
		if created, err := layout.Created(a.FS); err == nil {
			report.VenvCreated = created
		}
	}

	if names, err := requirements.ReadManifest(a.FS, report.Manifest); err == nil {
		report.HasManifest = true
		report.Entries = len(names)
	}

	renderStatus(cmd.OutOrStdout(), report, time.Now())
	return nil
}

func renderStatus(w io.Writer, r statusReport, now time.Time) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	tbl.AppendHeader(table.Row{"Item", "Value", "Detail"})
	tbl.AppendRow(table.Row{"Interpreter", r.Interpreter, r.Version})

	venvDetail := "missing"
	if r.VenvExists {
		venvDetail = "present"
		if !r.VenvCreated.IsZero() {
			venvDetail = "created " + humanize.RelTime(r.VenvCreated, now, "ago", "from now")
		}
	}
	tbl.AppendRow(table.Row{"Environment", r.VenvDir, venvDetail})

	manifestDetail := "missing"
	if r.HasManifest {
		manifestDetail = fmt.Sprintf("%d %s", r.Entries, plural(r.Entries, "entry", "entries"))
	}
	tbl.AppendRow(table.Row{"Manifest", r.Manifest, manifestDetail})

	tbl.Render()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
