package checker

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-stmt/ast"
	"github.com/t14raptor/go-stmt/builder"
	"github.com/t14raptor/go-stmt/consteval"
	"github.com/t14raptor/go-stmt/resolver"
)

func TestCaseOutsideSwitchIsAnError(t *testing.T) {
	b := builder.New()
	cs := b.Case(0, b.Int(5, 1), 6)
	tree, res := b.Finish(b.Seq(cs, b.Expr(b.Ident(8, "x"))))

	ds := Check(tree, res, Options{})
	require.Len(t, ds, 1)
	d := ds[0]
	assert.Equal(t, cs.ID(), d.Node)
	assert.Equal(t, ast.KindCase, d.Kind)
	assert.Equal(t, SeverityError, d.Severity)
	assert.Equal(t, "case-outside", d.Code())
	assert.Equal(t, ast.Idx(0), d.From)
	assert.Equal(t, ast.Idx(7), d.To)

	err := ds.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCaseOutside)
}

func TestUnresolvedChildren(t *testing.T) {
	b := builder.New()
	brk := b.Break(0)
	cont := b.Continue(7)
	def := b.Default(17, 24)
	tree, res := b.Finish(b.Seq(brk, cont, def))

	ds := Check(tree, res, Options{ContinueInSwitch: SeverityWarning})
	require.Len(t, ds, 3)
	for i, want := range []error{ErrBreakOutside, ErrContinueOutside, ErrDefaultOutside} {
		assert.ErrorIs(t, ds[i], want)
		// The continue has no switch around it, so the option does not apply.
		assert.Equal(t, SeverityError, ds[i].Severity)
	}
	assert.Equal(t, 3, ds.Count(SeverityError))
}

func TestContinueInSwitchSeverity(t *testing.T) {
	build := func() (*ast.Tree, *ast.ContinueStatement, Diagnostics) {
		b := builder.New()
		cont := b.Continue(20)
		sw := b.Switch(0, b.Ident(8, "x"), b.Block(11, b.Seq(b.Default(12, 19), cont), 30))
		tree, res := b.Finish(sw)
		return tree, cont, Check(tree, res, Options{ContinueInSwitch: SeverityWarning})
	}

	_, cont, ds := build()
	require.Len(t, ds, 1)
	assert.Equal(t, cont.ID(), ds[0].Node)
	assert.Equal(t, SeverityWarning, ds[0].Severity)
	assert.NoError(t, ds.Err())

	tree, _, _ := build()
	ds = Check(tree, resolver.Resolve(tree), Options{ContinueInSwitch: SeverityError})
	require.Len(t, ds, 1)
	assert.Equal(t, SeverityError, ds[0].Severity)
}

func TestUnreachableWarnings(t *testing.T) {
	b := builder.New()
	dead := b.Expr(b.Ident(19, "x"))
	loop := b.While(0, b.Ident(7, "c"), b.Block(10, b.Seq(b.Break(12), dead), 30))
	tree, res := b.Finish(loop)

	assert.Empty(t, Check(tree, res, Options{}))

	ds := Check(tree, res, Options{ReportUnreachable: true})
	require.Len(t, ds, 1)
	assert.Equal(t, dead.ID(), ds[0].Node)
	assert.Equal(t, SeverityWarning, ds[0].Severity)
	assert.Equal(t, "unreachable", ds[0].Code())
}

func TestUnfoldedRanges(t *testing.T) {
	b := builder.New()
	ct := b.CompileTimeFor(0, b.Var(5, "int", "i", nil), b.Int(10, 0), b.Ident(13, "N"), b.Block(16, b.Empty(17), 18))
	tree, res := b.Finish(ct)

	ds := Check(tree, res, Options{RequireFoldedRanges: true})
	require.Len(t, ds, 1)
	assert.True(t, errors.Is(ds, ErrRangeNotEvaluated))
	assert.True(t, errors.Is(ds, ast.ErrNotEvaluated))

	require.NoError(t, consteval.FoldRanges(tree, consteval.LiteralEvaluator{Env: consteval.Env{"N": 3}}))
	assert.Empty(t, Check(tree, res, Options{RequireFoldedRanges: true}))
}

func TestDiagnosticsAreSortedByPosition(t *testing.T) {
	b := builder.New()
	late := b.Break(40)
	early := b.Case(2, b.Int(7, 1), 8)
	tree, res := b.Finish(b.Seq(late, early))

	ds := Check(tree, res, Options{})
	require.Len(t, ds, 2)
	assert.Equal(t, early.ID(), ds[0].Node)
	assert.Equal(t, late.ID(), ds[1].Node)
	assert.Contains(t, ds.Error(), "break statement not within a loop or switch")
}

func TestDiagnosticNamesStatement(t *testing.T) {
	b := builder.New()
	brk := b.Break(3<<16 | 5)
	tree, res := b.Finish(b.Seq(brk))

	ds := Check(tree, res, Options{})
	require.Len(t, ds, 1)
	msg := ds[0].Error()
	assert.True(t, strings.HasPrefix(msg, fmt.Sprintf("break statement #%d: error: ", brk.ID())), msg)
	assert.NotContains(t, msg, fmt.Sprint(3<<16|5))
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in      string
		want    Severity
		wantErr bool
	}{
		{"error", SeverityError, false},
		{"Warning", SeverityWarning, false},
		{" warn ", SeverityWarning, false},
		{"fatal", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSeverity(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSeverity(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSeverity(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
