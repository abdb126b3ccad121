package resolver

import "github.com/t14raptor/go-stmt/ast"

type ScopeKind int

const (
	ScopeKindRoot ScopeKind = iota
	ScopeKindBlock
	ScopeKindLoop
	ScopeKindSwitch
	ScopeKindCompileTime
)

// Scope is one lexical scope opened by a scoped statement.
type Scope struct {
	parent *Scope

	kind ScopeKind

	ctx ast.ScopeContext

	// owner is the statement that opened the scope, NoNode for the root.
	owner ast.NodeID

	declaredSymbols map[string]ast.NodeID
}

func newScope(parent *Scope, kind ScopeKind, ctx ast.ScopeContext, owner ast.NodeID) *Scope {
	return &Scope{
		parent:          parent,
		kind:            kind,
		ctx:             ctx,
		owner:           owner,
		declaredSymbols: make(map[string]ast.NodeID),
	}
}

func (s *Scope) Kind() ScopeKind          { return s.kind }
func (s *Scope) Context() ast.ScopeContext { return s.ctx }
func (s *Scope) Owner() ast.NodeID         { return s.owner }

// Parent returns the enclosing scope, or nil for the root scope.
func (s *Scope) Parent() *Scope { return s.parent }

func (s *Scope) isDeclared(id string) (ast.NodeID, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if decl, exists := scope.declaredSymbols[id]; exists {
			return decl, true
		}
	}
	return ast.NoNode, false
}
