package ast

// Visitor has one handler per concrete statement type. VisitWith on a node
// calls exactly one of them.
type Visitor interface {
	VisitStatements(node *Statements)
	VisitExpression(node *Expression)
	VisitBlockStatement(node *BlockStatement)
	VisitSeqStatement(node *SeqStatement)
	VisitCompileTimeForStatement(node *CompileTimeForStatement)
	VisitEmptyStatement(node *EmptyStatement)
	VisitDiscardStatement(node *DiscardStatement)
	VisitUnparsedStatement(node *UnparsedStatement)
	VisitDeclStatement(node *DeclStatement)
	VisitIfStatement(node *IfStatement)
	VisitSwitchStatement(node *SwitchStatement)
	VisitForStatement(node *ForStatement)
	VisitWhileStatement(node *WhileStatement)
	VisitDoWhileStatement(node *DoWhileStatement)
	VisitCaseStatement(node *CaseStatement)
	VisitDefaultStatement(node *DefaultStatement)
	VisitBreakStatement(node *BreakStatement)
	VisitContinueStatement(node *ContinueStatement)
	VisitReturnStatement(node *ReturnStatement)
	VisitExpressionStatement(node *ExpressionStatement)
}

// NoopVisitor recurses into children in document order. Embed it and set V
// to the embedding visitor so overridden handlers are reached.
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) visitor() Visitor {
	if nv.V == nil {
		return nv
	}
	return nv.V
}

func (nv *NoopVisitor) VisitStatements(node *Statements) {
	node.VisitChildrenWith(nv.visitor())
}

// VisitExpression does nothing: expressions are opaque to this package.
func (nv *NoopVisitor) VisitExpression(node *Expression) {}

func (nv *NoopVisitor) VisitBlockStatement(node *BlockStatement) {
	node.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitSeqStatement(node *SeqStatement) {
	node.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitCompileTimeForStatement(node *CompileTimeForStatement) {
	node.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitEmptyStatement(node *EmptyStatement) {}

func (nv *NoopVisitor) VisitDiscardStatement(node *DiscardStatement) {}

// VisitUnparsedStatement passes the raw tokens through untouched.
func (nv *NoopVisitor) VisitUnparsedStatement(node *UnparsedStatement) {}

func (nv *NoopVisitor) VisitDeclStatement(node *DeclStatement) {
	node.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitIfStatement(node *IfStatement) {
	node.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitSwitchStatement(node *SwitchStatement) {
	node.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitForStatement(node *ForStatement) {
	node.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitWhileStatement(node *WhileStatement) {
	node.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitDoWhileStatement(node *DoWhileStatement) {
	node.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitCaseStatement(node *CaseStatement) {
	node.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitDefaultStatement(node *DefaultStatement) {}

func (nv *NoopVisitor) VisitBreakStatement(node *BreakStatement) {}

func (nv *NoopVisitor) VisitContinueStatement(node *ContinueStatement) {}

func (nv *NoopVisitor) VisitReturnStatement(node *ReturnStatement) {
	node.VisitChildrenWith(nv.visitor())
}

func (nv *NoopVisitor) VisitExpressionStatement(node *ExpressionStatement) {
	node.VisitChildrenWith(nv.visitor())
}

func (n *Statements) VisitWith(v Visitor) {
	v.VisitStatements(n)
}

func (n *Statements) VisitChildrenWith(v Visitor) {
	for _, s := range *n {
		if s != nil {
			s.VisitWith(v)
		}
	}
}

func (n *Expression) VisitWith(v Visitor) {
	if n != nil {
		v.VisitExpression(n)
	}
}

func (n *Expression) VisitChildrenWith(v Visitor) {}

func (n *BlockStatement) VisitWith(v Visitor) {
	v.VisitBlockStatement(n)
}

func (n *BlockStatement) VisitChildrenWith(v Visitor) {
	if n.Body != nil {
		n.Body.VisitWith(v)
	}
}

func (n *SeqStatement) VisitWith(v Visitor) {
	v.VisitSeqStatement(n)
}

func (n *SeqStatement) VisitChildrenWith(v Visitor) {
	n.List.VisitWith(v)
}

func (n *CompileTimeForStatement) VisitWith(v Visitor) {
	v.VisitCompileTimeForStatement(n)
}

func (n *CompileTimeForStatement) VisitChildrenWith(v Visitor) {
	n.Begin.VisitWith(v)
	n.End.VisitWith(v)
	if n.Body != nil {
		n.Body.VisitWith(v)
	}
}

func (n *EmptyStatement) VisitWith(v Visitor) {
	v.VisitEmptyStatement(n)
}

func (n *EmptyStatement) VisitChildrenWith(v Visitor) {}

func (n *DiscardStatement) VisitWith(v Visitor) {
	v.VisitDiscardStatement(n)
}

func (n *DiscardStatement) VisitChildrenWith(v Visitor) {}

func (n *UnparsedStatement) VisitWith(v Visitor) {
	v.VisitUnparsedStatement(n)
}

func (n *UnparsedStatement) VisitChildrenWith(v Visitor) {}

func (n *DeclStatement) VisitWith(v Visitor) {
	v.VisitDeclStatement(n)
}

func (n *DeclStatement) VisitChildrenWith(v Visitor) {
	if d, ok := n.Decl.(*VarDecl); ok {
		d.Initializer.VisitWith(v)
	}
}

func (n *IfStatement) VisitWith(v Visitor) {
	v.VisitIfStatement(n)
}

func (n *IfStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	if n.Consequent != nil {
		n.Consequent.VisitWith(v)
	}
	if n.Alternate != nil {
		n.Alternate.VisitWith(v)
	}
}

func (n *SwitchStatement) VisitWith(v Visitor) {
	v.VisitSwitchStatement(n)
}

func (n *SwitchStatement) VisitChildrenWith(v Visitor) {
	n.Condition.VisitWith(v)
	if n.Body != nil {
		n.Body.VisitWith(v)
	}
}

func (n *ForStatement) VisitWith(v Visitor) {
	v.VisitForStatement(n)
}

func (n *ForStatement) VisitChildrenWith(v Visitor) {
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
	n.Test.VisitWith(v)
	n.Update.VisitWith(v)
	if n.Body != nil {
		n.Body.VisitWith(v)
	}
}

func (n *WhileStatement) VisitWith(v Visitor) {
	v.VisitWhileStatement(n)
}

func (n *WhileStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	if n.Body != nil {
		n.Body.VisitWith(v)
	}
}

func (n *DoWhileStatement) VisitWith(v Visitor) {
	v.VisitDoWhileStatement(n)
}

func (n *DoWhileStatement) VisitChildrenWith(v Visitor) {
	if n.Body != nil {
		n.Body.VisitWith(v)
	}
	n.Test.VisitWith(v)
}

func (n *CaseStatement) VisitWith(v Visitor) {
	v.VisitCaseStatement(n)
}

func (n *CaseStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
}

func (n *DefaultStatement) VisitWith(v Visitor) {
	v.VisitDefaultStatement(n)
}

func (n *DefaultStatement) VisitChildrenWith(v Visitor) {}

func (n *BreakStatement) VisitWith(v Visitor) {
	v.VisitBreakStatement(n)
}

func (n *BreakStatement) VisitChildrenWith(v Visitor) {}

func (n *ContinueStatement) VisitWith(v Visitor) {
	v.VisitContinueStatement(n)
}

func (n *ContinueStatement) VisitChildrenWith(v Visitor) {}

func (n *ReturnStatement) VisitWith(v Visitor) {
	v.VisitReturnStatement(n)
}

func (n *ReturnStatement) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *ExpressionStatement) VisitWith(v Visitor) {
	v.VisitExpressionStatement(n)
}

func (n *ExpressionStatement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}
