package deadcode

import (
	"strings"
	"unicode"

	"github.com/t14raptor/go-stmt/ast"
	"github.com/t14raptor/go-stmt/token"
)

// usageCollector gathers every name an expression or unparsed token
// refers to. Raw text is matched by name only, so a name mentioned there is
// never considered unused.
type usageCollector struct {
	ast.NoopVisitor

	used map[ast.Id]struct{}
	raw  map[string]struct{}
}

func (v *usageCollector) VisitExpression(n *ast.Expression) {
	switch x := n.Expr.(type) {
	case *ast.Identifier:
		v.used[x.ToId()] = struct{}{}
	case *ast.RawExpression:
		for _, word := range identifiers(x.Literal) {
			v.raw[word] = struct{}{}
		}
	}
}

func (v *usageCollector) VisitUnparsedStatement(n *ast.UnparsedStatement) {
	for _, tok := range n.Tokens {
		if tok.Kind == token.Identifier {
			v.raw[tok.Literal] = struct{}{}
		}
	}
}

func identifiers(literal string) []string {
	words := strings.FieldsFunc(literal, func(r rune) bool {
		return r != '_' && r != '$' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := words[:0]
	for _, w := range words {
		if token.Classify(w) == token.Identifier {
			out = append(out, w)
		}
	}
	return out
}

func collectUsage(root ast.Stmt) *usageCollector {
	v := &usageCollector{
		used: make(map[ast.Id]struct{}),
		raw:  make(map[string]struct{}),
	}
	v.V = v
	root.VisitWith(v)
	return v
}

// isUsed reports whether anything refers to the name n declares.
// Declarations other than variables count as used.
func (v *usageCollector) isUsed(n *ast.DeclStatement) bool {
	d, ok := n.Decl.(*ast.VarDecl)
	if !ok || d.Name == nil {
		return true
	}
	if _, ok := v.used[d.Name.ToId()]; ok {
		return true
	}
	_, ok = v.raw[d.Name.Name]
	return ok
}

// declaresUsed reports whether s puts a used name into the enclosing
// scope, directly or through the initializer of an unscoped for.
func (v *usageCollector) declaresUsed(s ast.Stmt) bool {
	switch n := s.(type) {
	case *ast.DeclStatement:
		return v.isUsed(n)
	case *ast.ForStatement:
		return n.Unscoped && n.Initializer != nil && v.declaresUsed(n.Initializer)
	case *ast.SeqStatement:
		for _, c := range n.List {
			if v.declaresUsed(c) {
				return true
			}
		}
	}
	return false
}

// canDropBinding reports whether the declaration is never referred to and
// its initializer has no effect.
func (v *usageCollector) canDropBinding(n *ast.DeclStatement) bool {
	if v.isUsed(n) {
		return false
	}
	d := n.Decl.(*ast.VarDecl)
	if d.Initializer == nil {
		return true
	}
	switch d.Initializer.Expr.(type) {
	case *ast.IntLiteral, *ast.Identifier:
		return true
	}
	return false
}
