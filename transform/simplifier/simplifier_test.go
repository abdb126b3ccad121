package simplifier_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/t14raptor/go-stmt/ast"
	"github.com/t14raptor/go-stmt/builder"
	"github.com/t14raptor/go-stmt/generator"
	"github.com/t14raptor/go-stmt/transform/simplifier"
)

func simplify(b *builder.Builder, root ast.Stmt) string {
	tree, _ := b.Finish(root)
	out, _ := simplifier.Simplify(tree)
	return generator.Generate(out.Root)
}

var space = regexp.MustCompile(`\s+`)

func TestSimplifier(t *testing.T) {
	tests := []struct {
		name     string
		build    func(b *builder.Builder) ast.Stmt
		expected string
	}{
		{
			name: "nested sequences and empty statements",
			build: func(b *builder.Builder) ast.Stmt {
				return b.Block(0, b.Seq(
					b.Seq(b.Expr(b.Ident(1, "a")), b.Empty(3)),
					b.Seq(b.Expr(b.Ident(5, "b"))),
				), 8)
			},
			expected: `{ a; b; }`,
		},
		{
			name: "statements after return",
			build: func(b *builder.Builder) ast.Stmt {
				return b.Block(0, b.Seq(b.Return(1, nil), b.Expr(b.Ident(9, "x")), b.Expr(b.Ident(12, "y"))), 15)
			},
			expected: `{ return; }`,
		},
		{
			name: "case label reopens flow",
			build: func(b *builder.Builder) ast.Stmt {
				return b.Switch(0, b.Ident(8, "x"), b.Block(11, b.Seq(
					b.Case(12, b.Int(17, 1), 18),
					b.Break(20),
					b.Expr(b.Ident(27, "dead")),
					b.Case(33, b.Int(38, 2), 39),
					b.Expr(b.Ident(41, "y")),
				), 45))
			},
			expected: `switch (x) { case 1: break; case 2: y; }`,
		},
		{
			name: "block in block",
			build: func(b *builder.Builder) ast.Stmt {
				return b.Block(0, b.Block(1, b.Seq(b.Expr(b.Ident(2, "a"))), 5), 6)
			},
			expected: `{ a; }`,
		},
		{
			name: "constant if",
			build: func(b *builder.Builder) ast.Stmt {
				return b.Block(0, b.Seq(
					b.If(1, b.Int(5, 1), b.Expr(b.Ident(8, "a")), b.Expr(b.Ident(16, "b"))),
					b.If(20, b.Int(24, 0), b.Expr(b.Ident(27, "c")), nil),
					b.Expr(b.Ident(31, "d")),
				), 35)
			},
			expected: `{ a; d; }`,
		},
		{
			name: "constant if keeps a declaration scoped",
			build: func(b *builder.Builder) ast.Stmt {
				return b.Block(0, b.Seq(b.If(1, b.Int(5, 1), b.Decl(b.Var(8, "int", "x", nil)), nil)), 20)
			},
			expected: `{ if (1) { int x; } }`,
		},
		{
			name: "while false",
			build: func(b *builder.Builder) ast.Stmt {
				return b.Block(0, b.Seq(b.While(1, b.Int(8, 0), b.Expr(b.Ident(11, "a"))), b.Expr(b.Ident(14, "b"))), 17)
			},
			expected: `{ b; }`,
		},
		{
			name: "labelled branch is kept",
			build: func(b *builder.Builder) ast.Stmt {
				return b.Switch(0, b.Ident(8, "n"), b.Block(11, b.Seq(
					b.If(12, b.Int(16, 0), b.Block(19, b.Seq(b.Case(20, b.Int(25, 1), 26), b.Expr(b.Ident(28, "a"))), 31), nil),
				), 33))
			},
			expected: `switch (n) { if (0) { case 1: a; } }`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.New()
			got := strings.TrimSpace(space.ReplaceAllString(simplify(b, tt.build(b)), " "))
			if got != tt.expected {
				t.Errorf("simplify() = '%s'; want '%s'", got, tt.expected)
			}
		})
	}
}

func TestSimplifyReturnsInputWhenSettled(t *testing.T) {
	b := builder.New()
	tree, _ := b.Finish(b.Block(0, b.Seq(b.Expr(b.Ident(1, "a")), b.Return(4, nil)), 12))

	out, res := simplifier.Simplify(tree)
	if out != tree {
		t.Fatalf("Simplify() rebuilt a tree with nothing to simplify")
	}
	if len(res.Unresolved) != 0 {
		t.Errorf("Unresolved = %v; want none", res.Unresolved)
	}
}

func TestSimplifyDoesNotModifyInput(t *testing.T) {
	b := builder.New()
	body := b.Seq(b.Break(12), b.Expr(b.Ident(19, "x")))
	tree, _ := b.Finish(b.While(0, b.Ident(7, "c"), b.Block(10, body, 22)))

	out, res := simplifier.Simplify(tree)
	if out == tree {
		t.Fatalf("Simplify() returned the input tree")
	}
	if len(body.List) != 2 {
		t.Errorf("input sequence has %d statements; want 2", len(body.List))
	}

	// The surviving break is linked into the new tree.
	loop := out.Root.(*ast.WhileStatement)
	brk := loop.Body.(*ast.BlockStatement).Body.(*ast.BreakStatement)
	if id, ok := brk.Enclosing(); !ok || id != loop.ID() {
		t.Errorf("break links to #%d (%v); want #%d", id, ok, loop.ID())
	}
	if len(res.Unresolved) != 0 {
		t.Errorf("Unresolved = %v; want none", res.Unresolved)
	}
}

func TestSimplifyKeepsInputScopes(t *testing.T) {
	b := builder.New()
	x := b.Ident(10, "x")
	tree, _ := b.Finish(b.Block(0, b.Seq(
		b.Block(1, b.Block(2, b.Expr(b.Ident(3, "a")), 5), 6),
		b.Block(7, b.Seq(b.Decl(b.Var(8, "int", "x", nil)), b.Expr(x)), 12),
	), 13))
	ident := x.Expr.(*ast.Identifier)
	before := ident.ScopeContext

	out, _ := simplifier.Simplify(tree)
	if out == tree {
		t.Fatalf("Simplify() returned the input tree")
	}
	if ident.ScopeContext != before {
		t.Errorf("input identifier context = %d; want %d", ident.ScopeContext, before)
	}
	ast.Inspect(out.Root, func(s ast.Stmt) bool {
		if e, ok := s.(*ast.ExpressionStatement); ok && e.Expression.Expr == ident {
			t.Errorf("simplified tree shares identifier %q with the input", ident.Name)
		}
		return true
	})
}
