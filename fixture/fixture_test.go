package fixture

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-stmt/ast"
)

func TestLoadLinksJumps(t *testing.T) {
	tree, res, err := LoadFile(filepath.Join("testdata", "jumps.yaml"))
	require.NoError(t, err)
	assert.Empty(t, res.Unresolved)

	loop, ok := tree.Root.(*ast.WhileStatement)
	require.True(t, ok, "root is %T", tree.Root)
	sw := loop.Body.(*ast.BlockStatement).Body.(*ast.SeqStatement).List[0].(*ast.SwitchStatement)
	body := sw.Body.(*ast.BlockStatement).Body.(*ast.SeqStatement).List
	require.Len(t, body, 4)

	want := []ast.NodeID{sw.ID(), sw.ID(), sw.ID(), loop.ID()}
	for i, s := range body {
		id, ok := s.(ast.Child).Enclosing()
		assert.True(t, ok, "statement %d", i)
		assert.Equal(t, want[i], id, "statement %d", i)
	}

	line, col := Position(loop.Idx0())
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)
}

func TestLoadDuffsDevice(t *testing.T) {
	tree, res, err := LoadFile(filepath.Join("testdata", "duff.yaml"))
	require.NoError(t, err)
	assert.Empty(t, res.Unresolved)

	sw := tree.Root.(*ast.SwitchStatement)
	labels := 0
	ast.Inspect(tree.Root, func(s ast.Stmt) bool {
		if c, ok := s.(*ast.CaseStatement); ok {
			labels++
			id, _ := c.Enclosing()
			assert.Equal(t, sw.ID(), id)
		}
		return true
	})
	assert.Equal(t, 3, labels)
}

func TestLoadUnresolved(t *testing.T) {
	_, res, err := LoadFile(filepath.Join("testdata", "outside.yaml"))
	require.NoError(t, err)

	kinds := make([]ast.Kind, len(res.Unresolved))
	for i, f := range res.Unresolved {
		kinds[i] = f.Node.Kind()
	}
	assert.Equal(t, []ast.Kind{ast.KindBreak, ast.KindCase, ast.KindContinue}, kinds)
}

func TestLoadExpressions(t *testing.T) {
	src := `
- expr: 42
- expr: count
- expr: "a + b"
- unparsed: "x += 1 ;"
`
	tree, _, err := Load("exprs", []byte(src))
	require.NoError(t, err)

	list := tree.Root.(*ast.SeqStatement).List
	require.Len(t, list, 4)
	assert.IsType(t, &ast.IntLiteral{}, list[0].(*ast.ExpressionStatement).Expression.Expr)
	assert.IsType(t, &ast.Identifier{}, list[1].(*ast.ExpressionStatement).Expression.Expr)
	assert.IsType(t, &ast.RawExpression{}, list[2].(*ast.ExpressionStatement).Expression.Expr)

	toks := list[3].(*ast.UnparsedStatement).Tokens
	require.Len(t, toks, 4)
	assert.Equal(t, "+=", toks[1].Literal)
	assert.Equal(t, toks[0].Offset+2, toks[1].Offset)
}

func TestLoadUnscopedFor(t *testing.T) {
	tree, res, err := LoadFile(filepath.Join("testdata", "unroll.yaml"))
	require.NoError(t, err)

	list := tree.Root.(*ast.SeqStatement).List
	loop := list[2].(*ast.ForStatement)
	assert.Equal(t, ast.KindUnscopedFor, loop.Kind())

	// j stays visible after the loop.
	j := list[3].(*ast.ExpressionStatement).Expression.Expr.(*ast.Identifier)
	assert.NotZero(t, j.ScopeContext)

	// break inside the compile-time loop has nothing to leave.
	require.Len(t, res.Unresolved, 1)
	assert.Equal(t, ast.KindBreak, res.Unresolved[0].Node.Kind())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"unknown word", "jump", `unknown statement "jump"`},
		{"unknown key", "goto: x", `unknown statement "goto"`},
		{"two keys", "{expr: a, return: b}", "exactly one key"},
		{"missing field", "while: {test: c}", `missing "body"`},
		{"unexpected field", "while: {test: c, body: break, step: 1}", `unexpected key "step"`},
		{"bad declaration name", "decl: {name: \"1x\"}", "not an identifier"},
		{"empty expression", "expr: \"\"", "expected an expression"},
		{"bad yaml", "[", "case.yaml"},
		{"empty document", "", "empty fixture"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load("case.yaml", []byte(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPositionRoundTrip(t *testing.T) {
	line, col := Position(Idx(120, 33))
	assert.Equal(t, 120, line)
	assert.Equal(t, 33, col)
}
