package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/t14raptor/go-stmt/ast"
	"github.com/t14raptor/go-stmt/cfg"
)

func newGraphCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "graph <file>...",
		Short: "Print the control-flow graph built from the linked jumps",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := getConfig(cmd.Context())
			logger := getLogger(cmd.Context())

			units, err := loadAll(cmd.Context(), conf, logger, args, foldRanges, transform)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, u := range units {
				_, _ = fmt.Fprintf(w, "// %s\n", u.path)
				renderGraph(w, u.tree, cfg.Build(u.tree))
			}
			return nil
		},
	}
}

func renderGraph(w io.Writer, tree *ast.Tree, g *cfg.Graph) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header("from", "to", "edge"))
	for from := range g.Nodes() {
		for to := range g.Successors(from) {
			kind, _ := g.Edge(from, to)
			t.AppendRow(table.Row{nodeName(tree, from), nodeName(tree, to), kind})
		}
	}
	t.Render()

	for _, loop := range g.Loops() {
		names := make([]string, len(loop))
		for i, s := range loop {
			names[i] = nodeName(tree, s.ID())
		}
		_, _ = fmt.Fprintf(w, "loop: %s\n", strings.Join(names, ", "))
	}
	for _, s := range g.Unreachable() {
		_, _ = fmt.Fprintf(w, "unreachable: %s\n", nodeName(tree, s.ID()))
	}
}

func nodeName(tree *ast.Tree, n ast.NodeID) string {
	switch {
	case n == cfg.Entry:
		return "entry"
	case n == cfg.Exit:
		return "exit"
	case !cfg.IsStatement(n):
		return fmt.Sprintf("#%d condition", cfg.Condition(n))
	}
	if s := tree.Lookup(n); s != nil {
		return fmt.Sprintf("#%d %s", n, s.Kind())
	}
	return fmt.Sprintf("#%d", n)
}
