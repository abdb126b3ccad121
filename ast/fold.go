package ast

import "slices"

// Folder is a transforming visitor: every handler returns the statement that
// replaces the visited one. Returning nil drops the statement from a
// SeqStatement; a required slot that folds to nil gets an EmptyStatement.
type Folder interface {
	FoldBlockStatement(n *BlockStatement) Stmt
	FoldSeqStatement(n *SeqStatement) Stmt
	FoldCompileTimeForStatement(n *CompileTimeForStatement) Stmt
	FoldEmptyStatement(n *EmptyStatement) Stmt
	FoldDiscardStatement(n *DiscardStatement) Stmt
	FoldUnparsedStatement(n *UnparsedStatement) Stmt
	FoldDeclStatement(n *DeclStatement) Stmt
	FoldIfStatement(n *IfStatement) Stmt
	FoldSwitchStatement(n *SwitchStatement) Stmt
	FoldForStatement(n *ForStatement) Stmt
	FoldWhileStatement(n *WhileStatement) Stmt
	FoldDoWhileStatement(n *DoWhileStatement) Stmt
	FoldCaseStatement(n *CaseStatement) Stmt
	FoldDefaultStatement(n *DefaultStatement) Stmt
	FoldBreakStatement(n *BreakStatement) Stmt
	FoldContinueStatement(n *ContinueStatement) Stmt
	FoldReturnStatement(n *ReturnStatement) Stmt
	FoldExpressionStatement(n *ExpressionStatement) Stmt
}

// Fold applies f to s. A nil s folds to nil.
func Fold(f Folder, s Stmt) Stmt {
	if s == nil {
		return nil
	}
	return s.FoldWith(f)
}

// Clone returns a deep copy of s. Copies are unregistered and their links
// are unset.
func Clone(s Stmt) Stmt {
	return Fold(&NoopFolder{}, s)
}

// CloneExpression copies e down to its identifiers, so resolving the copy
// leaves the scope contexts of e alone.
func CloneExpression(e *Expression) *Expression {
	if e == nil {
		return nil
	}
	out := &Expression{Expr: e.Expr}
	switch x := e.Expr.(type) {
	case *Identifier:
		c := *x
		out.Expr = &c
	case *IntLiteral:
		c := *x
		out.Expr = &c
	case *RawExpression:
		c := *x
		out.Expr = &c
	}
	return out
}

// CloneDecl copies d with its name and initializer.
func CloneDecl(d Decl) Decl {
	if v, ok := d.(*VarDecl); ok {
		return cloneVarDecl(v)
	}
	return d
}

func cloneVarDecl(v *VarDecl) *VarDecl {
	if v == nil {
		return nil
	}
	out := &VarDecl{Type: v.Type, Initializer: CloneExpression(v.Initializer)}
	if v.Name != nil {
		name := *v.Name
		out.Name = &name
	}
	return out
}

// NoopFolder rebuilds every statement with folded children. The input tree
// is never modified: expressions and declarations are copied too. Embed it and set F to the embedding folder so
// overridden handlers are reached.
type NoopFolder struct {
	F Folder
}

func (nf *NoopFolder) folder() Folder {
	if nf.F == nil {
		return nf
	}
	return nf.F
}

// required folds a child that must be present.
func (nf *NoopFolder) required(s Stmt, at Idx) Stmt {
	if s == nil {
		return nil
	}
	if out := s.FoldWith(nf.folder()); out != nil {
		return out
	}
	return &EmptyStatement{Semicolon: at}
}

func (nf *NoopFolder) FoldStatements(list Statements) Statements {
	if list == nil {
		return nil
	}
	out := make(Statements, 0, len(list))
	for _, s := range list {
		if s == nil {
			continue
		}
		if folded := s.FoldWith(nf.folder()); folded != nil {
			out = append(out, folded)
		}
	}
	return out
}

func (nf *NoopFolder) FoldBlockStatement(n *BlockStatement) Stmt {
	return &BlockStatement{
		LeftBrace:  n.LeftBrace,
		Body:       nf.required(n.Body, n.LeftBrace+1),
		RightBrace: n.RightBrace,
	}
}

func (nf *NoopFolder) FoldSeqStatement(n *SeqStatement) Stmt {
	return &SeqStatement{List: nf.FoldStatements(n.List)}
}

func (nf *NoopFolder) FoldCompileTimeForStatement(n *CompileTimeForStatement) Stmt {
	return &CompileTimeForStatement{
		For:      n.For,
		Var:      cloneVarDecl(n.Var),
		Begin:    CloneExpression(n.Begin),
		End:      CloneExpression(n.End),
		Body:     nf.required(n.Body, n.For),
		BeginVal: n.BeginVal,
		EndVal:   n.EndVal,
	}
}

func (nf *NoopFolder) FoldEmptyStatement(n *EmptyStatement) Stmt {
	return &EmptyStatement{Semicolon: n.Semicolon}
}

func (nf *NoopFolder) FoldDiscardStatement(n *DiscardStatement) Stmt {
	return &DiscardStatement{Discard: n.Discard}
}

func (nf *NoopFolder) FoldUnparsedStatement(n *UnparsedStatement) Stmt {
	return &UnparsedStatement{LeftBrace: n.LeftBrace, Tokens: slices.Clone(n.Tokens), RightBrace: n.RightBrace}
}

func (nf *NoopFolder) FoldDeclStatement(n *DeclStatement) Stmt {
	return &DeclStatement{Decl: CloneDecl(n.Decl)}
}

func (nf *NoopFolder) FoldIfStatement(n *IfStatement) Stmt {
	return &IfStatement{
		If:         n.If,
		Test:       CloneExpression(n.Test),
		Consequent: nf.required(n.Consequent, n.If),
		Alternate:  Fold(nf.folder(), n.Alternate),
	}
}

func (nf *NoopFolder) FoldSwitchStatement(n *SwitchStatement) Stmt {
	return &SwitchStatement{
		Switch:    n.Switch,
		Condition: CloneExpression(n.Condition),
		Body:      nf.required(n.Body, n.Switch),
	}
}

func (nf *NoopFolder) FoldForStatement(n *ForStatement) Stmt {
	return &ForStatement{
		For:         n.For,
		Initializer: Fold(nf.folder(), n.Initializer),
		Test:        CloneExpression(n.Test),
		Update:      CloneExpression(n.Update),
		Body:        nf.required(n.Body, n.For),
		Unscoped:    n.Unscoped,
	}
}

func (nf *NoopFolder) FoldWhileStatement(n *WhileStatement) Stmt {
	return &WhileStatement{
		While: n.While,
		Test:  CloneExpression(n.Test),
		Body:  nf.required(n.Body, n.While),
	}
}

func (nf *NoopFolder) FoldDoWhileStatement(n *DoWhileStatement) Stmt {
	return &DoWhileStatement{
		Do:   n.Do,
		Body: nf.required(n.Body, n.Do),
		Test: CloneExpression(n.Test),
	}
}

func (nf *NoopFolder) FoldCaseStatement(n *CaseStatement) Stmt {
	return &CaseStatement{Case: n.Case, Test: CloneExpression(n.Test), Colon: n.Colon}
}

func (nf *NoopFolder) FoldDefaultStatement(n *DefaultStatement) Stmt {
	return &DefaultStatement{Default: n.Default, Colon: n.Colon}
}

func (nf *NoopFolder) FoldBreakStatement(n *BreakStatement) Stmt {
	return &BreakStatement{Break: n.Break}
}

func (nf *NoopFolder) FoldContinueStatement(n *ContinueStatement) Stmt {
	return &ContinueStatement{Continue: n.Continue}
}

func (nf *NoopFolder) FoldReturnStatement(n *ReturnStatement) Stmt {
	return &ReturnStatement{Return: n.Return, Argument: CloneExpression(n.Argument)}
}

func (nf *NoopFolder) FoldExpressionStatement(n *ExpressionStatement) Stmt {
	return &ExpressionStatement{Expression: CloneExpression(n.Expression)}
}

func (n *BlockStatement) FoldWith(f Folder) Stmt          { return f.FoldBlockStatement(n) }
func (n *SeqStatement) FoldWith(f Folder) Stmt            { return f.FoldSeqStatement(n) }
func (n *CompileTimeForStatement) FoldWith(f Folder) Stmt { return f.FoldCompileTimeForStatement(n) }
func (n *EmptyStatement) FoldWith(f Folder) Stmt          { return f.FoldEmptyStatement(n) }
func (n *DiscardStatement) FoldWith(f Folder) Stmt        { return f.FoldDiscardStatement(n) }
func (n *UnparsedStatement) FoldWith(f Folder) Stmt       { return f.FoldUnparsedStatement(n) }
func (n *DeclStatement) FoldWith(f Folder) Stmt           { return f.FoldDeclStatement(n) }
func (n *IfStatement) FoldWith(f Folder) Stmt             { return f.FoldIfStatement(n) }
func (n *SwitchStatement) FoldWith(f Folder) Stmt         { return f.FoldSwitchStatement(n) }
func (n *ForStatement) FoldWith(f Folder) Stmt            { return f.FoldForStatement(n) }
func (n *WhileStatement) FoldWith(f Folder) Stmt          { return f.FoldWhileStatement(n) }
func (n *DoWhileStatement) FoldWith(f Folder) Stmt        { return f.FoldDoWhileStatement(n) }
func (n *CaseStatement) FoldWith(f Folder) Stmt           { return f.FoldCaseStatement(n) }
func (n *DefaultStatement) FoldWith(f Folder) Stmt        { return f.FoldDefaultStatement(n) }
func (n *BreakStatement) FoldWith(f Folder) Stmt          { return f.FoldBreakStatement(n) }
func (n *ContinueStatement) FoldWith(f Folder) Stmt       { return f.FoldContinueStatement(n) }
func (n *ReturnStatement) FoldWith(f Folder) Stmt         { return f.FoldReturnStatement(n) }
func (n *ExpressionStatement) FoldWith(f Folder) Stmt     { return f.FoldExpressionStatement(n) }
