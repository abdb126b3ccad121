package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/t14raptor/go-stmt/checker"
	"github.com/t14raptor/go-stmt/fixture"
	"github.com/t14raptor/go-stmt/internal/config"
)

// ErrFindings is returned by check when an error-severity diagnostic was
// reported.
var ErrFindings = errors.New("errors found")

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Report jumps and labels that have no target",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig(cmd.Context())
			logger := getLogger(cmd.Context())

			units, err := loadAll(cmd.Context(), cfg, logger, args, foldRanges, check)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if cfg.Output == config.OutputTable {
				renderDiagnosticTable(w, units)
			} else {
				renderDiagnostics(w, units)
			}

			var errs, warns int
			for _, u := range units {
				errs += u.diags.Count(checker.SeverityError)
				warns += u.diags.Count(checker.SeverityWarning)
			}
			p := message.NewPrinter(language.English)
			_, _ = p.Fprintf(w, "%d file(s) checked: %d error(s), %d warning(s)\n", len(units), errs, warns)

			if errs > 0 {
				return ErrFindings
			}
			return nil
		},
	}
}

func renderDiagnostics(w io.Writer, units []*unit) {
	for _, u := range units {
		for _, d := range u.diags {
			line, col := fixture.Position(d.From)
			_, _ = fmt.Fprintf(w, "%s:%d:%d: %s: %v [%s]\n", u.path, line, col, d.Severity, d.Err, d.Code())
		}
	}
}

func renderDiagnosticTable(w io.Writer, units []*unit) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header("file", "line", "column", "severity", "code", "message"))
	for _, u := range units {
		for _, d := range u.diags {
			line, col := fixture.Position(d.From)
			t.AppendRow(table.Row{u.path, line, col, d.Severity, d.Code(), d.Err.Error()})
		}
	}
	if t.Length() == 0 {
		return
	}
	t.Render()
}

func header(names ...string) table.Row {
	caser := cases.Title(language.English)
	row := make(table.Row, len(names))
	for i, n := range names {
		row[i] = caser.String(n)
	}
	return row
}
