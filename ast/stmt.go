package ast

import "github.com/t14raptor/go-stmt/token"

type (
	Statements []Stmt

	// All statement nodes implement the Stmt interface.
	Stmt interface {
		Node
		VisitableNode
		// ID returns the node's identity in its Tree, or NoNode before the
		// node is registered.
		ID() NodeID
		Kind() Kind
		FoldWith(f Folder) Stmt
		setID(id NodeID)
		_stmt()
	}

	// BlockStatement is a `{...}` block. It owns exactly one body
	// statement, usually a SeqStatement.
	BlockStatement struct {
		node
		scoped
		LeftBrace  Idx
		Body       Stmt
		RightBrace Idx
	}

	// SeqStatement is a sequence of statements treated as one statement.
	SeqStatement struct {
		node
		List Statements
	}

	// CompileTimeForStatement is a range-based `$for` loop expanded at
	// compile time. BeginVal and EndVal stay unevaluated until a constant
	// folding pass fills them in.
	CompileTimeForStatement struct {
		node
		scoped
		For      Idx
		Var      *VarDecl
		Begin    *Expression
		End      *Expression
		Body     Stmt
		BeginVal IntVal
		EndVal   IntVal
	}

	EmptyStatement struct {
		node
		Semicolon Idx
	}

	DiscardStatement struct {
		node
		Discard Idx
	}

	// UnparsedStatement holds the tokens between `{` and `}` that are not
	// parsed or checked here; a downstream compiler handles them.
	UnparsedStatement struct {
		node
		LeftBrace  Idx
		Tokens     []token.Raw
		RightBrace Idx
	}

	DeclStatement struct {
		node
		Decl Decl
	}

	IfStatement struct {
		node
		If         Idx
		Test       *Expression
		Consequent Stmt
		Alternate  Stmt `optional:"true"`
	}

	SwitchStatement struct {
		node
		scoped
		Switch    Idx
		Condition *Expression
		Body      Stmt
	}

	// ForStatement is a counted loop. With Unscoped set, the variables
	// declared by Initializer stay visible after the loop.
	ForStatement struct {
		node
		scoped
		For         Idx
		Initializer Stmt        `optional:"true"`
		Test        *Expression `optional:"true"`
		Update      *Expression `optional:"true"`
		Body        Stmt
		Unscoped    bool
	}

	WhileStatement struct {
		node
		scoped
		While Idx
		Test  *Expression
		Body  Stmt
	}

	DoWhileStatement struct {
		node
		scoped
		Do   Idx
		Body Stmt
		Test *Expression
	}

	// CaseStatement is a `case` label. Like DefaultStatement it does not
	// own the statements that follow it.
	CaseStatement struct {
		node
		link
		Case  Idx
		Test  *Expression
		Colon Idx
	}

	DefaultStatement struct {
		node
		link
		Default Idx
		Colon   Idx
	}

	BreakStatement struct {
		node
		link
		Break Idx
	}

	ContinueStatement struct {
		node
		link
		Continue Idx
	}

	ReturnStatement struct {
		node
		Return   Idx
		Argument *Expression `optional:"true"`
	}

	ExpressionStatement struct {
		node
		Expression *Expression
	}
)

type (
	// Scoped statements introduce a nested scope.
	Scoped interface {
		Stmt
		ScopeContext() ScopeContext
		SetScopeContext(ctx ScopeContext)
	}

	// Breakable statements can be escaped with a `break`.
	Breakable interface {
		Scoped
		_breakable()
	}

	// Continuable statements are loops a `continue` can target.
	Continuable interface {
		Breakable
		_continuable()
	}

	// Child statements keep a non-owning link to the enclosing statement
	// they belong to.
	Child interface {
		Stmt
		SetEnclosing(id NodeID)
		MarkUnresolved()
		ResetEnclosing()
		Enclosing() (NodeID, bool)
		Resolution() LinkState
	}

	// Jump is a Child that transfers control relative to its target.
	Jump interface {
		Child
		_jump()
	}

	// CaseLabel is a Child that labels a position inside a switch.
	CaseLabel interface {
		Child
		_caseLabel()
	}
)

type scoped struct {
	ctx ScopeContext
}

func (s *scoped) ScopeContext() ScopeContext       { return s.ctx }
func (s *scoped) SetScopeContext(ctx ScopeContext) { s.ctx = ctx }

func (*BlockStatement) _stmt()          {}
func (*SeqStatement) _stmt()            {}
func (*CompileTimeForStatement) _stmt() {}
func (*EmptyStatement) _stmt()          {}
func (*DiscardStatement) _stmt()        {}
func (*UnparsedStatement) _stmt()       {}
func (*DeclStatement) _stmt()           {}
func (*IfStatement) _stmt()             {}
func (*SwitchStatement) _stmt()         {}
func (*ForStatement) _stmt()            {}
func (*WhileStatement) _stmt()          {}
func (*DoWhileStatement) _stmt()        {}
func (*CaseStatement) _stmt()           {}
func (*DefaultStatement) _stmt()        {}
func (*BreakStatement) _stmt()          {}
func (*ContinueStatement) _stmt()       {}
func (*ReturnStatement) _stmt()         {}
func (*ExpressionStatement) _stmt()     {}

func (*SwitchStatement) _breakable()  {}
func (*ForStatement) _breakable()     {}
func (*WhileStatement) _breakable()   {}
func (*DoWhileStatement) _breakable() {}

func (*ForStatement) _continuable()     {}
func (*WhileStatement) _continuable()   {}
func (*DoWhileStatement) _continuable() {}

func (*BreakStatement) _jump()    {}
func (*ContinueStatement) _jump() {}

func (*CaseStatement) _caseLabel()    {}
func (*DefaultStatement) _caseLabel() {}

func (*BlockStatement) Kind() Kind          { return KindBlock }
func (*SeqStatement) Kind() Kind            { return KindSeq }
func (*CompileTimeForStatement) Kind() Kind { return KindCompileTimeFor }
func (*EmptyStatement) Kind() Kind          { return KindEmpty }
func (*DiscardStatement) Kind() Kind        { return KindDiscard }
func (*UnparsedStatement) Kind() Kind       { return KindUnparsed }
func (*DeclStatement) Kind() Kind           { return KindDecl }
func (*IfStatement) Kind() Kind             { return KindIf }
func (*SwitchStatement) Kind() Kind         { return KindSwitch }
func (n *ForStatement) Kind() Kind {
	if n.Unscoped {
		return KindUnscopedFor
	}
	return KindFor
}
func (*WhileStatement) Kind() Kind      { return KindWhile }
func (*DoWhileStatement) Kind() Kind    { return KindDoWhile }
func (*CaseStatement) Kind() Kind       { return KindCase }
func (*DefaultStatement) Kind() Kind    { return KindDefault }
func (*BreakStatement) Kind() Kind      { return KindBreak }
func (*ContinueStatement) Kind() Kind   { return KindContinue }
func (*ReturnStatement) Kind() Kind     { return KindReturn }
func (*ExpressionStatement) Kind() Kind { return KindExpression }

// TripCount returns how many times the body is expanded. It fails with
// ErrNotEvaluated while either bound is still unevaluated.
func (n *CompileTimeForStatement) TripCount() (int64, error) {
	begin, err := n.BeginVal.Value()
	if err != nil {
		return 0, err
	}
	end, err := n.EndVal.Value()
	if err != nil {
		return 0, err
	}
	if end < begin {
		return 0, nil
	}
	return end - begin, nil
}
