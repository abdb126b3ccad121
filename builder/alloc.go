package builder

import "github.com/t14raptor/go-stmt/ast"

// nodeAllocator keeps one slab per node type so a whole tree is
// carved out of a handful of large chunks.
type nodeAllocator struct {
	expr      slab[ast.Expression]
	ident     slab[ast.Identifier]
	intLit    slab[ast.IntLiteral]
	rawExpr   slab[ast.RawExpression]
	varDecl   slab[ast.VarDecl]
	stmtSlice slab[ast.Stmt]

	blockStmt slab[ast.BlockStatement]
	seqStmt   slab[ast.SeqStatement]
	ctForStmt slab[ast.CompileTimeForStatement]
	emptyStmt slab[ast.EmptyStatement]
	discard   slab[ast.DiscardStatement]
	unparsed  slab[ast.UnparsedStatement]
	declStmt  slab[ast.DeclStatement]
	ifStmt    slab[ast.IfStatement]
	switchStm slab[ast.SwitchStatement]
	forStmt   slab[ast.ForStatement]
	whileStmt slab[ast.WhileStatement]
	doWhile   slab[ast.DoWhileStatement]
	caseStmt  slab[ast.CaseStatement]
	defStmt   slab[ast.DefaultStatement]
	breakStmt slab[ast.BreakStatement]
	contStmt  slab[ast.ContinueStatement]
	retStmt   slab[ast.ReturnStatement]
	exprStmt  slab[ast.ExpressionStatement]
}

func newNodeAllocator() nodeAllocator {
	return nodeAllocator{
		expr:      *newSlab[ast.Expression](256),
		ident:     *newSlab[ast.Identifier](256),
		intLit:    *newSlab[ast.IntLiteral](64),
		rawExpr:   *newSlab[ast.RawExpression](64),
		varDecl:   *newSlab[ast.VarDecl](64),
		stmtSlice: *newSlab[ast.Stmt](256),

		blockStmt: *newSlab[ast.BlockStatement](64),
		seqStmt:   *newSlab[ast.SeqStatement](64),
		ctForStmt: *newSlab[ast.CompileTimeForStatement](8),
		emptyStmt: *newSlab[ast.EmptyStatement](16),
		discard:   *newSlab[ast.DiscardStatement](8),
		unparsed:  *newSlab[ast.UnparsedStatement](8),
		declStmt:  *newSlab[ast.DeclStatement](64),
		ifStmt:    *newSlab[ast.IfStatement](64),
		switchStm: *newSlab[ast.SwitchStatement](16),
		forStmt:   *newSlab[ast.ForStatement](32),
		whileStmt: *newSlab[ast.WhileStatement](32),
		doWhile:   *newSlab[ast.DoWhileStatement](16),
		caseStmt:  *newSlab[ast.CaseStatement](64),
		defStmt:   *newSlab[ast.DefaultStatement](16),
		breakStmt: *newSlab[ast.BreakStatement](32),
		contStmt:  *newSlab[ast.ContinueStatement](16),
		retStmt:   *newSlab[ast.ReturnStatement](64),
		exprStmt:  *newSlab[ast.ExpressionStatement](256),
	}
}
