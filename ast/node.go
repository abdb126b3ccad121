package ast

// Idx is a compact encoding of a source position.
type Idx int

// NodeID identifies a statement inside the node table of one Tree. The zero
// value, NoNode, is never handed out.
type NodeID int32

const NoNode NodeID = 0

type Node interface {
	// Idx0 returns the index of the first character belonging to the node.
	Idx0() Idx
	// Idx1 returns the index of the first character immediately after the node.
	Idx1() Idx
}

type VisitableNode interface {
	VisitWith(v Visitor)
	VisitChildrenWith(v Visitor)
}

// node is embedded by every statement and carries its table identity.
type node struct {
	id NodeID
}

func (n *node) ID() NodeID      { return n.id }
func (n *node) setID(id NodeID) { n.id = id }

func (n *BlockStatement) Idx0() Idx          { return n.LeftBrace }
func (n *SeqStatement) Idx0() Idx            { return n.List.Idx0() }
func (n *CompileTimeForStatement) Idx0() Idx { return n.For }
func (n *EmptyStatement) Idx0() Idx          { return n.Semicolon }
func (n *DiscardStatement) Idx0() Idx        { return n.Discard }
func (n *UnparsedStatement) Idx0() Idx       { return n.LeftBrace }
func (n *DeclStatement) Idx0() Idx           { return n.Decl.Idx0() }
func (n *IfStatement) Idx0() Idx             { return n.If }
func (n *SwitchStatement) Idx0() Idx         { return n.Switch }
func (n *ForStatement) Idx0() Idx            { return n.For }
func (n *WhileStatement) Idx0() Idx          { return n.While }
func (n *DoWhileStatement) Idx0() Idx        { return n.Do }
func (n *CaseStatement) Idx0() Idx           { return n.Case }
func (n *DefaultStatement) Idx0() Idx        { return n.Default }
func (n *BreakStatement) Idx0() Idx          { return n.Break }
func (n *ContinueStatement) Idx0() Idx       { return n.Continue }
func (n *ReturnStatement) Idx0() Idx         { return n.Return }
func (n *ExpressionStatement) Idx0() Idx     { return n.Expression.Expr.Idx0() }

func (n *BlockStatement) Idx1() Idx          { return n.RightBrace + 1 }
func (n *SeqStatement) Idx1() Idx            { return n.List.Idx1() }
func (n *CompileTimeForStatement) Idx1() Idx { return n.Body.Idx1() }
func (n *EmptyStatement) Idx1() Idx          { return n.Semicolon + 1 }
func (n *DiscardStatement) Idx1() Idx        { return n.Discard + 7 } // "discard"
func (n *UnparsedStatement) Idx1() Idx       { return n.RightBrace + 1 }
func (n *DeclStatement) Idx1() Idx           { return n.Decl.Idx1() }
func (n *IfStatement) Idx1() Idx {
	if n.Alternate != nil {
		return n.Alternate.Idx1()
	}
	return n.Consequent.Idx1()
}
func (n *SwitchStatement) Idx1() Idx   { return n.Body.Idx1() }
func (n *ForStatement) Idx1() Idx      { return n.Body.Idx1() }
func (n *WhileStatement) Idx1() Idx    { return n.Body.Idx1() }
func (n *DoWhileStatement) Idx1() Idx  { return n.Test.Expr.Idx1() + 1 } // ")"
func (n *CaseStatement) Idx1() Idx     { return n.Colon + 1 }
func (n *DefaultStatement) Idx1() Idx  { return n.Colon + 1 }
func (n *BreakStatement) Idx1() Idx    { return n.Break + 5 }    // "break"
func (n *ContinueStatement) Idx1() Idx { return n.Continue + 8 } // "continue"
func (n *ReturnStatement) Idx1() Idx {
	if n.Argument != nil {
		return n.Argument.Expr.Idx1()
	}
	return n.Return + 6
}
func (n *ExpressionStatement) Idx1() Idx { return n.Expression.Expr.Idx1() }

func (l Statements) Idx0() Idx {
	if len(l) == 0 {
		return 0
	}
	return l[0].Idx0()
}

func (l Statements) Idx1() Idx {
	if len(l) == 0 {
		return 0
	}
	return l[len(l)-1].Idx1()
}
