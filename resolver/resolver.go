package resolver

import (
	"log/slog"
	"slices"

	"golang.org/x/exp/maps"

	"github.com/t14raptor/go-stmt/ast"
)

const (
	UnresolvedMark ast.ScopeContext = 0
	TopLevelMark   ast.ScopeContext = 1
)

// Finding records a child statement that has no valid target.
type Finding struct {
	Node ast.Child
	// Nearest is the innermost breakable statement around Node, or NoNode
	// when there is none.
	Nearest ast.NodeID
}

// Result is what one Resolve run learned about a tree.
type Result struct {
	// Unresolved lists children without a target in document order.
	Unresolved []Finding

	scopes map[ast.ScopeContext]*Scope
	decls  map[ast.NodeID]ast.ScopeContext
}

// Scope returns the scope registered under ctx.
func (res *Result) Scope(ctx ast.ScopeContext) (*Scope, bool) {
	s, ok := res.scopes[ctx]
	return s, ok
}

// Contexts returns every scope context handed out, in ascending order.
func (res *Result) Contexts() []ast.ScopeContext {
	ctxs := maps.Keys(res.scopes)
	slices.Sort(ctxs)
	return ctxs
}

// ScopeParent returns the context of the scope enclosing ctx. The root
// scope has no parent.
func (res *Result) ScopeParent(ctx ast.ScopeContext) (ast.ScopeContext, bool) {
	s, ok := res.scopes[ctx]
	if !ok || s.parent == nil {
		return UnresolvedMark, false
	}
	return s.parent.ctx, true
}

// DeclScope returns the scope a declaring statement put its name into.
func (res *Result) DeclScope(id ast.NodeID) (ast.ScopeContext, bool) {
	ctx, ok := res.decls[id]
	return ctx, ok
}

// Declared looks name up from ctx outwards and returns the declaring
// statement.
func (res *Result) Declared(ctx ast.ScopeContext, name string) (ast.NodeID, bool) {
	s, ok := res.scopes[ctx]
	if !ok {
		return ast.NoNode, false
	}
	return s.isDeclared(name)
}

type Resolver struct {
	ast.NoopVisitor

	tree   *ast.Tree
	logger *slog.Logger

	current *Scope
	frames  []ast.Breakable

	nextCtxt ast.ScopeContext
	result   *Result
}

type Option func(*Resolver)

func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// Resolve links every break, continue, case and default statement in t to
// its enclosing breakable statement and assigns scope contexts. Statements
// that are not yet registered in t are registered first. Running Resolve
// again on an unchanged tree gives the same links and contexts.
func Resolve(t *ast.Tree, opts ...Option) *Result {
	r := &Resolver{
		tree:     t,
		logger:   slog.New(slog.DiscardHandler),
		nextCtxt: TopLevelMark,
		result: &Result{
			scopes: make(map[ast.ScopeContext]*Scope),
			decls:  make(map[ast.NodeID]ast.ScopeContext),
		},
	}
	r.V = r
	for _, opt := range opts {
		opt(r)
	}

	if t.Root == nil {
		return r.result
	}
	ast.Inspect(t.Root, func(s ast.Stmt) bool {
		t.Register(s)
		return true
	})

	r.pushScope(ScopeKindRoot, ast.NoNode)
	t.Root.VisitWith(r)
	r.popScope()

	r.logger.Debug("resolved tree",
		"nodes", t.Len(),
		"scopes", len(r.result.scopes),
		"unresolved", len(r.result.Unresolved))
	return r.result
}

func (r *Resolver) pushScope(kind ScopeKind, owner ast.NodeID) {
	ctx := r.nextCtxt
	r.nextCtxt++

	r.current = newScope(r.current, kind, ctx, owner)
	r.result.scopes[ctx] = r.current
}

func (r *Resolver) popScope() {
	if r.current.parent != nil {
		r.current = r.current.parent
	}
}

func (r *Resolver) pushFrame(b ast.Breakable) {
	r.frames = append(r.frames, b)
}

func (r *Resolver) popFrame() {
	r.frames = r.frames[:len(r.frames)-1]
}

func (r *Resolver) top() ast.Breakable {
	if len(r.frames) == 0 {
		return nil
	}
	return r.frames[len(r.frames)-1]
}

func (r *Resolver) link(c ast.Child, target ast.Stmt) {
	if target == nil {
		c.MarkUnresolved()
		nearest := ast.NoNode
		if top := r.top(); top != nil {
			nearest = top.ID()
		}
		r.result.Unresolved = append(r.result.Unresolved, Finding{Node: c, Nearest: nearest})
		r.logger.Debug("no target", "kind", c.Kind(), "node", c.ID(), "nearest", nearest)
		return
	}
	c.SetEnclosing(target.ID())
}

func (r *Resolver) declare(id *ast.Identifier, owner ast.NodeID) {
	if id == nil {
		return
	}
	r.current.declaredSymbols[id.Name] = owner
	id.ScopeContext = r.current.ctx
}

func (r *Resolver) VisitExpression(n *ast.Expression) {
	id, ok := n.Expr.(*ast.Identifier)
	if !ok {
		return
	}
	id.ScopeContext = UnresolvedMark
	for scope := r.current; scope != nil; scope = scope.parent {
		if _, exists := scope.declaredSymbols[id.Name]; exists {
			id.ScopeContext = scope.ctx
			return
		}
	}
}

func (r *Resolver) VisitBlockStatement(n *ast.BlockStatement) {
	r.pushScope(ScopeKindBlock, n.ID())
	n.SetScopeContext(r.current.ctx)
	n.VisitChildrenWith(r)
	r.popScope()
}

func (r *Resolver) VisitCompileTimeForStatement(n *ast.CompileTimeForStatement) {
	// Bounds are evaluated outside the loop variable's scope.
	n.Begin.VisitWith(r)
	n.End.VisitWith(r)

	r.pushScope(ScopeKindCompileTime, n.ID())
	n.SetScopeContext(r.current.ctx)
	if n.Var != nil {
		r.declare(n.Var.Name, n.ID())
	}
	if n.Body != nil {
		n.Body.VisitWith(r)
	}
	r.popScope()
}

func (r *Resolver) VisitDeclStatement(n *ast.DeclStatement) {
	// The initializer cannot see the name it initializes.
	n.VisitChildrenWith(r)
	if n.Decl != nil {
		r.declare(n.Decl.DeclName(), n.ID())
		r.result.decls[n.ID()] = r.current.ctx
	}
}

func (r *Resolver) VisitSwitchStatement(n *ast.SwitchStatement) {
	n.Condition.VisitWith(r)

	r.pushScope(ScopeKindSwitch, n.ID())
	n.SetScopeContext(r.current.ctx)
	r.pushFrame(n)
	if n.Body != nil {
		n.Body.VisitWith(r)
	}
	r.popFrame()
	r.popScope()
}

func (r *Resolver) VisitForStatement(n *ast.ForStatement) {
	if n.Unscoped {
		// Initializer declarations land in the enclosing scope.
		n.SetScopeContext(r.current.ctx)
	} else {
		r.pushScope(ScopeKindLoop, n.ID())
		n.SetScopeContext(r.current.ctx)
	}

	if n.Initializer != nil {
		n.Initializer.VisitWith(r)
	}
	n.Test.VisitWith(r)
	n.Update.VisitWith(r)

	r.pushFrame(n)
	if n.Body != nil {
		n.Body.VisitWith(r)
	}
	r.popFrame()

	if !n.Unscoped {
		r.popScope()
	}
}

func (r *Resolver) VisitWhileStatement(n *ast.WhileStatement) {
	n.Test.VisitWith(r)

	r.pushScope(ScopeKindLoop, n.ID())
	n.SetScopeContext(r.current.ctx)
	r.pushFrame(n)
	if n.Body != nil {
		n.Body.VisitWith(r)
	}
	r.popFrame()
	r.popScope()
}

func (r *Resolver) VisitDoWhileStatement(n *ast.DoWhileStatement) {
	r.pushScope(ScopeKindLoop, n.ID())
	n.SetScopeContext(r.current.ctx)
	r.pushFrame(n)
	if n.Body != nil {
		n.Body.VisitWith(r)
	}
	r.popFrame()
	r.popScope()

	n.Test.VisitWith(r)
}

func (r *Resolver) VisitBreakStatement(n *ast.BreakStatement) {
	if top := r.top(); top != nil {
		r.link(n, top)
		return
	}
	r.link(n, nil)
}

func (r *Resolver) VisitContinueStatement(n *ast.ContinueStatement) {
	for i := len(r.frames) - 1; i >= 0; i-- {
		if loop, ok := r.frames[i].(ast.Continuable); ok {
			r.link(n, loop)
			return
		}
	}
	r.link(n, nil)
}

func (r *Resolver) VisitCaseStatement(n *ast.CaseStatement) {
	n.Test.VisitWith(r)
	r.linkLabel(n)
}

func (r *Resolver) VisitDefaultStatement(n *ast.DefaultStatement) {
	r.linkLabel(n)
}

// linkLabel links a case label to the nearest switch. Loops between the
// label and the switch are skipped, so a label inside a loop body still
// belongs to the switch around the loop.
func (r *Resolver) linkLabel(n ast.CaseLabel) {
	for i := len(r.frames) - 1; i >= 0; i-- {
		if sw, ok := r.frames[i].(*ast.SwitchStatement); ok {
			r.link(n, sw)
			return
		}
	}
	r.link(n, nil)
}
