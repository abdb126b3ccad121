// Package simplifier rewrites statement trees into smaller equivalent
// ones.
package simplifier

import (
	"github.com/t14raptor/go-stmt/ast"
	"github.com/t14raptor/go-stmt/ast/ext"
	"github.com/t14raptor/go-stmt/resolver"
)

// Simplify applies the rewrite rules until none fires and returns the
// resulting tree, resolved. The input tree is not modified.
//
// Rules:
//   - nested sequences are spliced into their parent
//   - empty statements are dropped from sequences
//   - statements after a jump or return are dropped up to the next case label
//   - a single-statement sequence becomes that statement
//   - a block whose body is a block becomes the inner block
//   - an if with a constant test becomes the taken branch
//   - a while with a constant false test is dropped
func Simplify(t *ast.Tree, opts ...resolver.Option) (*ast.Tree, *resolver.Result) {
	res := resolver.Resolve(t, opts...)
	if t.Root == nil {
		return t, res
	}

	s := &Simplifier{}
	s.F = s
	for {
		s.changed = false
		root := ast.Fold(s, t.Root)
		if !s.changed {
			return t, res
		}
		if root == nil {
			root = &ast.EmptyStatement{Semicolon: t.Root.Idx0()}
		}
		next := ast.NewTree()
		if err := next.Adopt(root); err != nil {
			panic(err)
		}
		t = next
		res = resolver.Resolve(t, opts...)
	}
}

type Simplifier struct {
	ast.NoopFolder

	changed bool
}

func (s *Simplifier) FoldSeqStatement(n *ast.SeqStatement) ast.Stmt {
	list := make(ast.Statements, 0, len(n.List))
	ended := false
	for _, st := range n.List {
		if ended {
			if !ext.ContainsCaseLabel(st) {
				s.changed = true
				continue
			}
			ended = false
		}

		switch f := st.FoldWith(s).(type) {
		case nil, *ast.EmptyStatement:
			s.changed = true
		case *ast.SeqStatement:
			s.changed = true
			list = append(list, f.List...)
		default:
			list = append(list, f)
		}

		// Links are only resolved on the input statement.
		if ext.EndsFlow(st) {
			ended = true
		}
	}

	switch len(list) {
	case 0:
		return nil
	case 1:
		s.changed = true
		return list[0]
	}
	return &ast.SeqStatement{List: list}
}

func (s *Simplifier) FoldBlockStatement(n *ast.BlockStatement) ast.Stmt {
	out := s.NoopFolder.FoldBlockStatement(n).(*ast.BlockStatement)
	if inner, ok := out.Body.(*ast.BlockStatement); ok {
		s.changed = true
		return inner
	}
	return out
}

func (s *Simplifier) FoldIfStatement(n *ast.IfStatement) ast.Stmt {
	if taken, ok := constCondition(n.Test); ok {
		branch, other := n.Consequent, n.Alternate
		if !taken {
			branch, other = n.Alternate, n.Consequent
		}
		if !keepsLabel(other) && !declares(branch) {
			s.changed = true
			return ast.Fold(s, branch)
		}
	}
	return s.NoopFolder.FoldIfStatement(n)
}

func (s *Simplifier) FoldWhileStatement(n *ast.WhileStatement) ast.Stmt {
	if taken, ok := constCondition(n.Test); ok && !taken && !keepsLabel(n.Body) {
		s.changed = true
		return nil
	}
	return s.NoopFolder.FoldWhileStatement(n)
}

func constCondition(test *ast.Expression) (taken bool, ok bool) {
	if test == nil {
		return false, false
	}
	lit, ok := test.Expr.(*ast.IntLiteral)
	if !ok {
		return false, false
	}
	return lit.Value != 0, true
}

func keepsLabel(s ast.Stmt) bool {
	return s != nil && ext.ContainsCaseLabel(s)
}

// declares reports whether s is a declaration that would leak into the
// enclosing scope once its if statement is gone.
func declares(s ast.Stmt) bool {
	_, ok := s.(*ast.DeclStatement)
	return ok
}
