package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-stmt/ast"
)

func TestConstructorsRegisterNodes(t *testing.T) {
	b := New()
	brk := b.Break(10)
	loop := b.While(0, b.Ident(6, "c"), b.Block(9, b.Seq(brk), 17))

	tree, res := b.Finish(loop)
	require.Empty(t, res.Unresolved)
	assert.Equal(t, 4, tree.Len())
	assert.Same(t, loop, tree.Root)

	for id, s := range tree.Nodes() {
		assert.Equal(t, id, s.ID())
	}
	target, ok := tree.Enclosing(brk)
	require.True(t, ok)
	assert.Same(t, loop, target)
}

func TestLinksStartUnset(t *testing.T) {
	b := New()
	brk := b.Break(0)
	cont := b.Continue(7)
	cs := b.Case(16, b.Int(21, 1), 22)
	def := b.Default(24, 31)

	for _, c := range []ast.Child{brk, cont, cs, def} {
		_, ok := c.Enclosing()
		assert.False(t, ok, c.Kind().String())
		assert.Equal(t, ast.LinkUnset, c.Resolution(), c.Kind().String())
	}
}

func TestUnscopedForIsDistinguishable(t *testing.T) {
	b := New()
	scoped := b.For(0, nil, nil, nil, b.Empty(8))
	unscoped := b.UnscopedFor(10, nil, nil, nil, b.Empty(18))

	assert.Equal(t, ast.KindFor, scoped.Kind())
	assert.Equal(t, ast.KindUnscopedFor, unscoped.Kind())
	assert.True(t, unscoped.Unscoped)
}

func TestSeqKeepsAttachOrder(t *testing.T) {
	b := New()
	first := b.Expr(b.Ident(0, "a"))
	second := b.Empty(2)
	third := b.Return(4, nil)
	seq := b.Seq(first, second, third)

	require.Len(t, seq.List, 3)
	assert.Same(t, first, seq.List[0])
	assert.Same(t, second, seq.List[1])
	assert.Same(t, third, seq.List[2])
	assert.Equal(t, 3, cap(seq.List))
}

func TestMalformedConstructionPanics(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *Builder)
	}{
		{"block without body", func(b *Builder) { b.Block(0, nil, 1) }},
		{"while without body", func(b *Builder) { b.While(0, b.Ident(6, "c"), nil) }},
		{"while without test", func(b *Builder) { b.While(0, nil, b.Empty(1)) }},
		{"if without consequent", func(b *Builder) { b.If(0, b.Ident(3, "c"), nil, nil) }},
		{"switch without body", func(b *Builder) { b.Switch(0, b.Ident(7, "x"), nil) }},
		{"case without value", func(b *Builder) { b.Case(0, nil, 5) }},
		{"nil in sequence", func(b *Builder) { b.Seq(b.Empty(0), nil) }},
		{"decl without declaration", func(b *Builder) { b.Decl(nil) }},
		{"compile-time for without bounds", func(b *Builder) {
			b.CompileTimeFor(0, b.Var(5, "int", "i", nil), nil, nil, b.Empty(9))
		}},
		{"child attached twice", func(b *Builder) {
			shared := b.Break(0)
			b.Seq(shared)
			b.Seq(shared)
		}},
		{"owned root", func(b *Builder) {
			inner := b.Empty(0)
			b.Block(0, inner, 1)
			b.Finish(inner)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { tt.build(New()) })
		})
	}
}

func TestOptionalSlots(t *testing.T) {
	b := New()
	assert.NotPanics(t, func() {
		b.If(0, b.Ident(3, "c"), b.Empty(5), nil)
		b.For(10, nil, nil, nil, b.Empty(18))
		b.Return(20, nil)
	})
}

func TestSlabGrowth(t *testing.T) {
	a := newSlab[ast.BreakStatement](2)
	seen := make(map[*ast.BreakStatement]struct{})
	for i := 0; i < 100; i++ {
		n := a.next()
		n.Break = ast.Idx(i)
		seen[n] = struct{}{}
	}
	assert.Len(t, seen, 100)

	s := a.nextN(50)
	assert.Len(t, s, 50)
	assert.Equal(t, 50, cap(s))
}
