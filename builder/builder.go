// Package builder constructs statement trees for a parser. Every node is
// registered in the builder's tree as it is made, and attaching a child to
// a second owner panics.
package builder

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/t14raptor/go-stmt/ast"
	"github.com/t14raptor/go-stmt/resolver"
	"github.com/t14raptor/go-stmt/token"
)

type Builder struct {
	tree   *ast.Tree
	alloc  nodeAllocator
	owned  map[ast.NodeID]ast.NodeID
	logger *slog.Logger
}

type Option func(*Builder)

func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

func New(opts ...Option) *Builder {
	b := &Builder{
		tree:   ast.NewTree(),
		alloc:  newNodeAllocator(),
		owned:  make(map[ast.NodeID]ast.NodeID),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Tree returns the tree nodes are registered in.
func (b *Builder) Tree() *ast.Tree { return b.tree }

// Finish makes root the tree's root and runs the resolver over it.
func (b *Builder) Finish(root ast.Stmt) (*ast.Tree, *resolver.Result) {
	if root != nil {
		id := b.tree.Register(root)
		if owner, ok := b.owned[id]; ok {
			panic(fmt.Sprintf("builder: root %s statement #%d is owned by #%d", root.Kind(), id, owner))
		}
	}
	b.tree.Root = root
	res := resolver.Resolve(b.tree, resolver.WithLogger(b.logger))
	b.logger.Debug("tree finished", "nodes", b.tree.Len(), "unresolved", len(res.Unresolved))
	return b.tree, res
}

func (b *Builder) register(s ast.Stmt) ast.NodeID {
	return b.tree.Register(s)
}

// attach records that parent owns child. A nil child is allowed only for
// optional slots.
func (b *Builder) attach(parent ast.Stmt, child ast.Stmt, slot string, optional bool) {
	if child == nil {
		if optional {
			return
		}
		panic(fmt.Sprintf("builder: %s statement needs a %s", parent.Kind(), slot))
	}
	id := b.register(child)
	if owner, ok := b.owned[id]; ok {
		panic(fmt.Sprintf("builder: %s statement #%d is already owned by #%d", child.Kind(), id, owner))
	}
	b.owned[id] = parent.ID()
}

func (b *Builder) Ident(idx ast.Idx, name string) *ast.Expression {
	id := b.alloc.ident.next()
	id.Idx = idx
	id.Name = name
	expr := b.alloc.expr.next()
	expr.Expr = id
	return expr
}

func (b *Builder) Int(idx ast.Idx, v int64) *ast.Expression {
	lit := b.alloc.intLit.next()
	lit.Idx = idx
	lit.Literal = strconv.FormatInt(v, 10)
	lit.Value = v
	expr := b.alloc.expr.next()
	expr.Expr = lit
	return expr
}

// Raw wraps source text the statement model does not interpret.
func (b *Builder) Raw(idx ast.Idx, literal string) *ast.Expression {
	raw := b.alloc.rawExpr.next()
	raw.Idx = idx
	raw.Literal = literal
	expr := b.alloc.expr.next()
	expr.Expr = raw
	return expr
}

func (b *Builder) Var(idx ast.Idx, typ, name string, init *ast.Expression) *ast.VarDecl {
	id := b.alloc.ident.next()
	id.Idx = idx
	id.Name = name
	d := b.alloc.varDecl.next()
	d.Type = typ
	d.Name = id
	d.Initializer = init
	return d
}

func (b *Builder) Block(lbrace ast.Idx, body ast.Stmt, rbrace ast.Idx) *ast.BlockStatement {
	n := b.alloc.blockStmt.next()
	n.LeftBrace = lbrace
	n.Body = body
	n.RightBrace = rbrace
	b.register(n)
	b.attach(n, body, "body", false)
	return n
}

func (b *Builder) Seq(list ...ast.Stmt) *ast.SeqStatement {
	n := b.alloc.seqStmt.next()
	n.List = b.alloc.stmtSlice.nextN(len(list))
	copy(n.List, list)
	b.register(n)
	for _, s := range list {
		b.attach(n, s, "list element", false)
	}
	return n
}

func (b *Builder) CompileTimeFor(idx ast.Idx, v *ast.VarDecl, begin, end *ast.Expression, body ast.Stmt) *ast.CompileTimeForStatement {
	if v == nil || begin == nil || end == nil {
		panic("builder: compile-time for needs a variable and both range bounds")
	}
	n := b.alloc.ctForStmt.next()
	n.For = idx
	n.Var = v
	n.Begin = begin
	n.End = end
	n.Body = body
	b.register(n)
	b.attach(n, body, "body", false)
	return n
}

func (b *Builder) Empty(idx ast.Idx) *ast.EmptyStatement {
	n := b.alloc.emptyStmt.next()
	n.Semicolon = idx
	b.register(n)
	return n
}

func (b *Builder) Discard(idx ast.Idx) *ast.DiscardStatement {
	n := b.alloc.discard.next()
	n.Discard = idx
	b.register(n)
	return n
}

func (b *Builder) Unparsed(lbrace ast.Idx, tokens []token.Raw, rbrace ast.Idx) *ast.UnparsedStatement {
	n := b.alloc.unparsed.next()
	n.LeftBrace = lbrace
	n.Tokens = tokens
	n.RightBrace = rbrace
	b.register(n)
	return n
}

func (b *Builder) Decl(d ast.Decl) *ast.DeclStatement {
	if d == nil {
		panic("builder: decl statement needs a declaration")
	}
	n := b.alloc.declStmt.next()
	n.Decl = d
	b.register(n)
	return n
}

func (b *Builder) If(idx ast.Idx, test *ast.Expression, cons, alt ast.Stmt) *ast.IfStatement {
	if test == nil {
		panic("builder: if statement needs a condition")
	}
	n := b.alloc.ifStmt.next()
	n.If = idx
	n.Test = test
	n.Consequent = cons
	n.Alternate = alt
	b.register(n)
	b.attach(n, cons, "consequent", false)
	b.attach(n, alt, "alternate", true)
	return n
}

func (b *Builder) Switch(idx ast.Idx, cond *ast.Expression, body ast.Stmt) *ast.SwitchStatement {
	if cond == nil {
		panic("builder: switch statement needs a condition")
	}
	n := b.alloc.switchStm.next()
	n.Switch = idx
	n.Condition = cond
	n.Body = body
	b.register(n)
	b.attach(n, body, "body", false)
	return n
}

func (b *Builder) For(idx ast.Idx, init ast.Stmt, test, update *ast.Expression, body ast.Stmt) *ast.ForStatement {
	return b.forStatement(idx, init, test, update, body, false)
}

// UnscopedFor builds a for loop whose initializer declarations stay
// visible after the loop.
func (b *Builder) UnscopedFor(idx ast.Idx, init ast.Stmt, test, update *ast.Expression, body ast.Stmt) *ast.ForStatement {
	return b.forStatement(idx, init, test, update, body, true)
}

func (b *Builder) forStatement(idx ast.Idx, init ast.Stmt, test, update *ast.Expression, body ast.Stmt, unscoped bool) *ast.ForStatement {
	n := b.alloc.forStmt.next()
	n.For = idx
	n.Initializer = init
	n.Test = test
	n.Update = update
	n.Body = body
	n.Unscoped = unscoped
	b.register(n)
	b.attach(n, init, "initializer", true)
	b.attach(n, body, "body", false)
	return n
}

func (b *Builder) While(idx ast.Idx, test *ast.Expression, body ast.Stmt) *ast.WhileStatement {
	if test == nil {
		panic("builder: while statement needs a condition")
	}
	n := b.alloc.whileStmt.next()
	n.While = idx
	n.Test = test
	n.Body = body
	b.register(n)
	b.attach(n, body, "body", false)
	return n
}

func (b *Builder) DoWhile(idx ast.Idx, body ast.Stmt, test *ast.Expression) *ast.DoWhileStatement {
	if test == nil {
		panic("builder: do-while statement needs a condition")
	}
	n := b.alloc.doWhile.next()
	n.Do = idx
	n.Body = body
	n.Test = test
	b.register(n)
	b.attach(n, body, "body", false)
	return n
}

func (b *Builder) Case(idx ast.Idx, test *ast.Expression, colon ast.Idx) *ast.CaseStatement {
	if test == nil {
		panic("builder: case statement needs a value")
	}
	n := b.alloc.caseStmt.next()
	n.Case = idx
	n.Test = test
	n.Colon = colon
	b.register(n)
	return n
}

func (b *Builder) Default(idx, colon ast.Idx) *ast.DefaultStatement {
	n := b.alloc.defStmt.next()
	n.Default = idx
	n.Colon = colon
	b.register(n)
	return n
}

func (b *Builder) Break(idx ast.Idx) *ast.BreakStatement {
	n := b.alloc.breakStmt.next()
	n.Break = idx
	b.register(n)
	return n
}

func (b *Builder) Continue(idx ast.Idx) *ast.ContinueStatement {
	n := b.alloc.contStmt.next()
	n.Continue = idx
	b.register(n)
	return n
}

func (b *Builder) Return(idx ast.Idx, arg *ast.Expression) *ast.ReturnStatement {
	n := b.alloc.retStmt.next()
	n.Return = idx
	n.Argument = arg
	b.register(n)
	return n
}

func (b *Builder) Expr(expr *ast.Expression) *ast.ExpressionStatement {
	if expr == nil {
		panic("builder: expression statement needs an expression")
	}
	n := b.alloc.exprStmt.next()
	n.Expression = expr
	b.register(n)
	return n
}
