package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-stmt/ast"
	"github.com/t14raptor/go-stmt/builder"
	"github.com/t14raptor/go-stmt/resolver"
)

func target(t *testing.T, tree *ast.Tree, c ast.Child) ast.Stmt {
	t.Helper()
	s, ok := tree.Enclosing(c)
	require.True(t, ok, "%s statement has no target", c.Kind())
	return s
}

// while (c) { switch (x) { case 1: break; default: continue; } }
func TestBreakAndContinueInsideSwitchInsideWhile(t *testing.T) {
	b := builder.New()
	cs := b.Case(24, b.Int(29, 1), 30)
	brk := b.Break(32)
	def := b.Default(39, 46)
	cont := b.Continue(48)
	sw := b.Switch(12, b.Ident(20, "x"), b.Block(23, b.Seq(cs, brk, def, cont), 58))
	loop := b.While(0, b.Ident(7, "c"), b.Block(10, b.Seq(sw), 60))

	tree, res := b.Finish(loop)
	require.Empty(t, res.Unresolved)

	assert.Same(t, sw, target(t, tree, brk))
	assert.Same(t, loop, target(t, tree, cont))
	assert.Same(t, sw, target(t, tree, cs))
	assert.Same(t, sw, target(t, tree, def))
}

// for (i = 0; i < n; i++) { continue; }
func TestContinueInsideFor(t *testing.T) {
	b := builder.New()
	cont := b.Continue(27)
	loop := b.For(0, b.Expr(b.Raw(5, "i = 0")), b.Raw(12, "i < n"), b.Raw(19, "i++"), b.Block(25, cont, 37))

	tree, res := b.Finish(loop)
	require.Empty(t, res.Unresolved)
	assert.Same(t, loop, target(t, tree, cont))
	assert.Equal(t, ast.LinkResolved, cont.Resolution())
}

func TestCaseInsideForInsideSwitch(t *testing.T) {
	b := builder.New()
	cs := b.Case(30, b.Int(35, 1), 36)
	brk := b.Break(38)
	loop := b.For(14, nil, nil, nil, b.Block(22, b.Seq(cs, brk), 45))
	sw := b.Switch(0, b.Ident(8, "x"), b.Block(11, loop, 47))

	tree, res := b.Finish(sw)
	require.Empty(t, res.Unresolved)
	assert.Same(t, sw, target(t, tree, cs))
	assert.Same(t, loop, target(t, tree, brk))
}

func TestCaseInsideLoopWithoutSwitch(t *testing.T) {
	b := builder.New()
	cs := b.Case(20, b.Int(25, 1), 26)
	loop := b.While(0, b.Ident(7, "c"), b.Block(10, cs, 30))

	_, res := b.Finish(loop)
	require.Len(t, res.Unresolved, 1)
	assert.Same(t, cs, res.Unresolved[0].Node)
	assert.Equal(t, loop.ID(), res.Unresolved[0].Nearest)
}

func TestCaseLabelsSkipNonBreakables(t *testing.T) {
	b := builder.New()
	cs := b.Case(20, b.Int(25, 1), 26)
	inner := b.If(10, b.Ident(13, "y"), b.Block(16, b.Seq(cs), 30), nil)
	sw := b.Switch(0, b.Ident(8, "x"), b.Block(9, inner, 32))

	tree, res := b.Finish(sw)
	require.Empty(t, res.Unresolved)
	assert.Same(t, sw, target(t, tree, cs))
}

func TestCaseWithoutSwitch(t *testing.T) {
	b := builder.New()
	cs := b.Case(0, b.Int(5, 1), 6)
	expr := b.Expr(b.Ident(8, "x"))

	_, res := b.Finish(b.Seq(cs, expr))
	require.Len(t, res.Unresolved, 1)
	assert.Same(t, cs, res.Unresolved[0].Node)
	assert.Equal(t, ast.NoNode, res.Unresolved[0].Nearest)

	_, ok := cs.Enclosing()
	assert.False(t, ok)
	assert.Equal(t, ast.LinkUnresolved, cs.Resolution())
}

func TestJumpsWithoutBreakable(t *testing.T) {
	b := builder.New()
	brk := b.Break(2)
	cont := b.Continue(9)
	def := b.Default(19, 26)
	blk := b.Block(0, b.Seq(brk, cont, def), 28)

	_, res := b.Finish(blk)
	require.Len(t, res.Unresolved, 3)
	// Document order.
	assert.Same(t, brk, res.Unresolved[0].Node)
	assert.Same(t, cont, res.Unresolved[1].Node)
	assert.Same(t, def, res.Unresolved[2].Node)
	for _, f := range res.Unresolved {
		assert.Equal(t, ast.LinkUnresolved, f.Node.Resolution())
	}
}

func TestContinueInSwitchWithoutLoop(t *testing.T) {
	b := builder.New()
	cont := b.Continue(20)
	sw := b.Switch(0, b.Ident(8, "x"), b.Block(11, b.Seq(b.Default(12, 19), cont), 30))

	_, res := b.Finish(sw)
	require.Len(t, res.Unresolved, 1)
	assert.Same(t, cont, res.Unresolved[0].Node)
	assert.Equal(t, sw.ID(), res.Unresolved[0].Nearest)
}

func TestNearestBreakableWins(t *testing.T) {
	b := builder.New()
	innerBreak := b.Break(40)
	inner := b.DoWhile(30, b.Block(33, innerBreak, 47), b.Ident(55, "b"))
	outerBreak := b.Break(60)
	outer := b.For(0, nil, nil, nil, b.Block(8, b.Seq(inner, outerBreak), 70))

	tree, res := b.Finish(outer)
	require.Empty(t, res.Unresolved)
	assert.Same(t, inner, target(t, tree, innerBreak))
	assert.Same(t, outer, target(t, tree, outerBreak))
}

func TestCompileTimeForIsNotBreakable(t *testing.T) {
	b := builder.New()
	brk := b.Break(40)
	ct := b.CompileTimeFor(20, b.Var(25, "int", "i", nil), b.Int(30, 0), b.Int(33, 4), b.Block(36, brk, 48))
	loop := b.While(0, b.Ident(7, "c"), b.Block(10, ct, 50))

	tree, res := b.Finish(loop)
	require.Empty(t, res.Unresolved)
	assert.Same(t, loop, target(t, tree, brk))
}

func TestResolveIsIdempotent(t *testing.T) {
	b := builder.New()
	brk := b.Break(32)
	cont := b.Continue(48)
	stray := b.Break(70)
	sw := b.Switch(12, b.Ident(20, "x"), b.Block(23, b.Seq(b.Case(24, b.Int(29, 1), 30), brk, b.Default(39, 46), cont), 58))
	loop := b.While(0, b.Ident(7, "c"), b.Block(10, sw, 60))
	root := b.Seq(loop, stray)

	tree, first := b.Finish(root)
	snapshot := func() map[ast.NodeID]ast.NodeID {
		out := make(map[ast.NodeID]ast.NodeID)
		ast.Inspect(tree.Root, func(s ast.Stmt) bool {
			if c, ok := s.(ast.Child); ok {
				id, _ := c.Enclosing()
				out[c.ID()] = id
			}
			return true
		})
		return out
	}
	links := snapshot()
	ctxs := first.Contexts()

	second := resolver.Resolve(tree)
	assert.Equal(t, links, snapshot())
	assert.Equal(t, ctxs, second.Contexts())
	assert.Equal(t, len(first.Unresolved), len(second.Unresolved))
	assert.Equal(t, ast.LinkUnresolved, stray.Resolution())
}

func TestResolveRegistersLiteralTrees(t *testing.T) {
	brk := &ast.BreakStatement{Break: 10}
	loop := &ast.WhileStatement{
		Test: ast.NewIntLiteral(7, 1),
		Body: &ast.BlockStatement{LeftBrace: 9, Body: brk, RightBrace: 17},
	}
	tree := ast.NewTree()
	tree.Root = loop

	res := resolver.Resolve(tree)
	require.Empty(t, res.Unresolved)
	assert.Equal(t, 3, tree.Len())
	s, ok := tree.Enclosing(brk)
	require.True(t, ok)
	assert.Same(t, loop, s)
}

func TestScopeContexts(t *testing.T) {
	b := builder.New()
	declI := b.Decl(b.Var(5, "int", "i", b.Int(13, 0)))
	unscoped := b.UnscopedFor(0, declI, nil, nil, b.Empty(20))
	use := b.Expr(b.Ident(22, "i"))
	inner := b.Block(30, b.Seq(b.Decl(b.Var(31, "int", "j", nil))), 40)
	scoped := b.For(50, b.Decl(b.Var(55, "int", "k", nil)), nil, nil, b.Empty(65))
	after := b.Expr(b.Ident(70, "k"))
	root := b.Block(0, b.Seq(unscoped, use, inner, scoped, after), 80)

	_, res := b.Finish(root)

	rootCtx := root.ScopeContext()
	assert.Equal(t, rootCtx, unscoped.ScopeContext(), "unscoped for shares its parent's scope")
	assert.NotEqual(t, rootCtx, scoped.ScopeContext())
	assert.NotEqual(t, rootCtx, inner.ScopeContext())

	parent, ok := res.ScopeParent(scoped.ScopeContext())
	require.True(t, ok)
	assert.Equal(t, rootCtx, parent)

	// i is declared by the unscoped loop and stays visible after it.
	decl, ok := res.Declared(rootCtx, "i")
	require.True(t, ok)
	assert.Equal(t, declI.ID(), decl)
	assert.Equal(t, rootCtx, use.Expression.Expr.(*ast.Identifier).ScopeContext)

	// k belongs to the scoped loop.
	_, ok = res.Declared(rootCtx, "k")
	assert.False(t, ok)
	assert.Equal(t, resolver.UnresolvedMark, after.Expression.Expr.(*ast.Identifier).ScopeContext)

	_, ok = res.Declared(rootCtx, "j")
	assert.False(t, ok)
	_, ok = res.Declared(inner.ScopeContext(), "j")
	assert.True(t, ok)
}
