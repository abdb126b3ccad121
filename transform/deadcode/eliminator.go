package deadcode

import (
	"github.com/t14raptor/go-stmt/ast"
	"github.com/t14raptor/go-stmt/ast/ext"
	"github.com/t14raptor/go-stmt/cfg"
	"github.com/t14raptor/go-stmt/resolver"
)

// Eliminate removes statements control never reaches and, if
// dropBindings is set, declarations nothing refers to. The input tree is
// not modified; the result is a new, resolved tree. Statements holding a
// case label are always kept, and so are unreachable declarations of
// names that are still used.
func Eliminate(t *ast.Tree, dropBindings bool, opts ...resolver.Option) (*ast.Tree, *resolver.Result) {
	res := resolver.Resolve(t, opts...)
	if t.Root == nil {
		return t, res
	}
	for {
		e := &eliminator{
			dead:   make(map[ast.Stmt]struct{}),
			unused: make(map[ast.Stmt]struct{}),
		}
		e.F = e
		usage := collectUsage(t.Root)
		for _, s := range cfg.Build(t).Unreachable() {
			if _, empty := s.(*ast.EmptyStatement); empty || ext.ContainsCaseLabel(s) {
				continue
			}
			// Skipping a declaration does not take its name out of scope.
			if usage.declaresUsed(s) {
				continue
			}
			e.dead[s] = struct{}{}
		}
		if dropBindings {
			ast.Inspect(t.Root, func(s ast.Stmt) bool {
				if d, ok := s.(*ast.DeclStatement); ok && usage.canDropBinding(d) {
					e.unused[d] = struct{}{}
				}
				return true
			})
		}
		if len(e.dead) == 0 && len(e.unused) == 0 {
			return t, res
		}

		next := ast.NewTree()
		if err := next.Adopt(ast.Fold(e, t.Root)); err != nil {
			// Folding builds fresh nodes, so ownership cannot be shared.
			panic(err)
		}
		t = next
		res = resolver.Resolve(t, opts...)
	}
}

type eliminator struct {
	ast.NoopFolder

	dead   map[ast.Stmt]struct{}
	unused map[ast.Stmt]struct{}
}

func (e *eliminator) drop(s ast.Stmt) bool {
	if _, ok := e.dead[s]; ok {
		return true
	}
	_, ok := e.unused[s]
	return ok
}

func (e *eliminator) FoldSeqStatement(n *ast.SeqStatement) ast.Stmt {
	kept := make(ast.Statements, 0, len(n.List))
	for _, s := range n.List {
		if !e.drop(s) {
			kept = append(kept, s)
		}
	}
	return e.NoopFolder.FoldSeqStatement(&ast.SeqStatement{List: kept})
}

func (e *eliminator) FoldBlockStatement(n *ast.BlockStatement) ast.Stmt {
	if e.drop(n.Body) {
		return &ast.BlockStatement{
			LeftBrace:  n.LeftBrace,
			Body:       &ast.EmptyStatement{Semicolon: n.LeftBrace + 1},
			RightBrace: n.RightBrace,
		}
	}
	return e.NoopFolder.FoldBlockStatement(n)
}

func (e *eliminator) FoldSwitchStatement(n *ast.SwitchStatement) ast.Stmt {
	if e.drop(n.Body) {
		return &ast.SwitchStatement{
			Switch:    n.Switch,
			Condition: ast.CloneExpression(n.Condition),
			Body:      &ast.EmptyStatement{Semicolon: n.Switch},
		}
	}
	return e.NoopFolder.FoldSwitchStatement(n)
}

func (e *eliminator) FoldDeclStatement(n *ast.DeclStatement) ast.Stmt {
	if e.drop(n) {
		return nil
	}
	return e.NoopFolder.FoldDeclStatement(n)
}
