// Package checker turns what the resolver and the control-flow graph found
// into diagnostics.
package checker

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/t14raptor/go-stmt/ast"
	"github.com/t14raptor/go-stmt/cfg"
	"github.com/t14raptor/go-stmt/resolver"
)

type Options struct {
	// ContinueInSwitch is the severity of a continue whose only enclosing
	// breakables are switches.
	ContinueInSwitch    Severity
	ReportUnreachable   bool
	RequireFoldedRanges bool

	Logger *slog.Logger
}

// Check reports the findings of res over t, ordered by source position.
// Unresolved links are always reported; the other checks are optional.
func Check(t *ast.Tree, res *resolver.Result, opts Options) Diagnostics {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var ds Diagnostics
	for _, f := range res.Unresolved {
		ds = append(ds, unresolved(t, f, opts))
	}

	if opts.RequireFoldedRanges && t.Root != nil {
		ast.Inspect(t.Root, func(s ast.Stmt) bool {
			n, ok := s.(*ast.CompileTimeForStatement)
			if ok && !(n.BeginVal.IsEvaluated() && n.EndVal.IsEvaluated()) {
				ds = append(ds, newDiagnostic(n, SeverityError,
					fmt.Errorf("%w: %w", ErrRangeNotEvaluated, ast.ErrNotEvaluated)))
			}
			return true
		})
	}

	if opts.ReportUnreachable && t.Root != nil {
		for _, s := range cfg.Build(t).Unreachable() {
			ds = append(ds, newDiagnostic(s, SeverityWarning, ErrUnreachable))
		}
	}

	slices.SortStableFunc(ds, func(a, b Diagnostic) int {
		if a.From != b.From {
			return int(a.From - b.From)
		}
		return int(a.Node - b.Node)
	})
	logger.Debug("checked tree",
		"errors", ds.Count(SeverityError),
		"warnings", ds.Count(SeverityWarning))
	return ds
}

func unresolved(t *ast.Tree, f resolver.Finding, opts Options) Diagnostic {
	switch f.Node.(type) {
	case *ast.BreakStatement:
		return newDiagnostic(f.Node, SeverityError, ErrBreakOutside)
	case *ast.ContinueStatement:
		if _, ok := t.Lookup(f.Nearest).(*ast.SwitchStatement); ok {
			return newDiagnostic(f.Node, opts.ContinueInSwitch, ErrContinueOutside)
		}
		return newDiagnostic(f.Node, SeverityError, ErrContinueOutside)
	case *ast.CaseStatement:
		return newDiagnostic(f.Node, SeverityError, ErrCaseOutside)
	}
	return newDiagnostic(f.Node, SeverityError, ErrDefaultOutside)
}

func newDiagnostic(s ast.Stmt, sev Severity, err error) Diagnostic {
	return Diagnostic{
		Node:     s.ID(),
		Kind:     s.Kind(),
		From:     s.Idx0(),
		To:       s.Idx1(),
		Severity: sev,
		Err:      err,
	}
}
