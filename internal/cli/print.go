package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/t14raptor/go-stmt/ast"
	"github.com/t14raptor/go-stmt/fixture"
	"github.com/t14raptor/go-stmt/generator"
	"github.com/t14raptor/go-stmt/internal/config"
)

func newPrintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "print <file>...",
		Short: "Print trees as source, after the configured transform",
		Long: `Print loads each file, applies the configured transform and prints the
result as source. With --output table it lists the statements instead,
together with the statement each jump or label is linked to.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig(cmd.Context())
			logger := getLogger(cmd.Context())

			units, err := loadAll(cmd.Context(), cfg, logger, args, foldRanges, transform)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, u := range units {
				if len(units) > 1 {
					if i > 0 {
						_, _ = fmt.Fprintln(w)
					}
					_, _ = fmt.Fprintf(w, "// %s\n", u.path)
				}
				if cfg.Output == config.OutputTable {
					renderStatements(w, u.tree)
					continue
				}
				if u.tree.Root != nil {
					_, _ = fmt.Fprintln(w, generator.Generate(u.tree.Root))
				}
			}
			return nil
		},
	}
}

func renderStatements(w io.Writer, tree *ast.Tree) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header("id", "kind", "line", "column", "link"))
	for id, s := range tree.Nodes() {
		line, col := fixture.Position(s.Idx0())
		t.AppendRow(table.Row{id, s.Kind(), line, col, link(s)})
	}
	t.Render()
}

func link(s ast.Stmt) string {
	c, ok := s.(ast.Child)
	if !ok {
		return ""
	}
	switch c.Resolution() {
	case ast.LinkResolved:
		id, _ := c.Enclosing()
		return fmt.Sprintf("#%d", id)
	case ast.LinkUnresolved:
		return "unresolved"
	}
	return "unset"
}
