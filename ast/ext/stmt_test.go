package ext_test

import (
	"testing"

	"github.com/t14raptor/go-stmt/ast"
	"github.com/t14raptor/go-stmt/ast/ext"
	"github.com/t14raptor/go-stmt/builder"
)

func TestEndsFlow(t *testing.T) {
	b := builder.New()
	tests := []struct {
		name string
		stmt ast.Stmt
		want bool
	}{
		{"return", b.Return(0, nil), true},
		{"discard", b.Discard(0), true},
		{"expression", b.Expr(b.Ident(0, "x")), false},
		{"block ending in return", b.Block(0, b.Seq(b.Expr(b.Ident(1, "x")), b.Return(3, nil)), 10), true},
		{"label after jump", b.Seq(b.Break(0), b.Case(6, b.Int(11, 1), 12)), false},
		{"if without else", b.If(0, b.Ident(4, "c"), b.Return(7, nil), nil), false},
		{"if with both branches", b.If(0, b.Ident(4, "c"), b.Return(7, nil), b.Discard(20)), true},
		{"while true", b.While(0, b.Int(7, 1), b.Block(10, b.Expr(b.Ident(11, "x")), 14)), true},
		{"while cond", b.While(0, b.Ident(7, "c"), b.Block(10, b.Expr(b.Ident(11, "x")), 14)), false},
		{"for ever", b.For(0, nil, nil, nil, b.Empty(8)), true},
		{"do returning", b.DoWhile(0, b.Return(3, nil), b.Ident(20, "c")), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ext.EndsFlow(tt.stmt); got != tt.want {
				t.Errorf("EndsFlow() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEndsFlowFollowsResolvedBreaks(t *testing.T) {
	b := builder.New()
	loop := b.For(0, nil, nil, nil, b.Block(8, b.Break(9), 16))
	b.Finish(loop)

	if ext.EndsFlow(loop) {
		t.Error("a loop left by break falls through")
	}
}

func TestCapabilities(t *testing.T) {
	b := builder.New()
	sw := b.Switch(0, b.Ident(8, "x"), b.Empty(10))
	loop := b.While(0, b.Ident(7, "c"), b.Empty(10))
	blk := b.Block(0, b.Empty(1), 2)

	if !ext.IsBreakable(sw) || ext.IsContinuable(sw) {
		t.Error("switch must be breakable but not continuable")
	}
	if !ext.IsBreakable(loop) || !ext.IsContinuable(loop) {
		t.Error("while must be breakable and continuable")
	}
	if ext.IsBreakable(blk) {
		t.Error("block must not be breakable")
	}
	if !ext.ContainsCaseLabel(b.Block(20, b.Seq(b.Empty(21), b.Default(22, 29)), 30)) {
		t.Error("nested default label not found")
	}
}
