package ext

import (
	"github.com/t14raptor/go-stmt/ast"
)

// IsBreakable returns true if a `break` can target the statement.
func IsBreakable(stmt ast.Stmt) bool {
	_, ok := stmt.(ast.Breakable)
	return ok
}

// IsContinuable returns true if a `continue` can target the statement.
func IsContinuable(stmt ast.Stmt) bool {
	_, ok := stmt.(ast.Continuable)
	return ok
}

// EndsFlow returns true if control never falls through the end of the
// statement. A jump counts as ending flow whether or not it resolved. Loops
// are inspected through their resolved links, so run the resolver first.
func EndsFlow(stmt ast.Stmt) bool {
	switch s := stmt.(type) {
	case *ast.ReturnStatement, *ast.DiscardStatement, *ast.BreakStatement, *ast.ContinueStatement:
		return true
	case *ast.BlockStatement:
		return s.Body != nil && EndsFlow(s.Body)
	case *ast.SeqStatement:
		// A case label reopens flow after a jump.
		ended := false
		for _, stmt := range s.List {
			switch {
			case IsCaseLabel(stmt):
				ended = false
			case EndsFlow(stmt):
				ended = true
			}
		}
		return ended
	case *ast.IfStatement:
		if s.Alternate == nil {
			return false
		}
		return EndsFlow(s.Consequent) && EndsFlow(s.Alternate)
	case *ast.WhileStatement:
		// An infinite loop with no way out never falls through.
		return IsConstTrue(s.Test) && !containsBreakFor(s)
	case *ast.ForStatement:
		return (s.Test == nil || IsConstTrue(s.Test)) && !containsBreakFor(s)
	case *ast.DoWhileStatement:
		if IsConstTrue(s.Test) {
			return !containsBreakFor(s)
		}
		return EndsFlow(s.Body) && !containsBreakFor(s) && !containsContinueFor(s)
	}
	return false
}

// IsConstTrue reports whether a condition is a non-zero integer literal.
func IsConstTrue(test *ast.Expression) bool {
	if test == nil {
		return false
	}
	lit, ok := test.Expr.(*ast.IntLiteral)
	return ok && lit.Value != 0
}

// IsCaseLabel returns true for `case` and `default` statements.
func IsCaseLabel(stmt ast.Stmt) bool {
	_, ok := stmt.(ast.CaseLabel)
	return ok
}

func containsBreakFor(loop ast.Stmt) bool {
	return containsJumpTo[*ast.BreakStatement](loop)
}

func containsContinueFor(loop ast.Stmt) bool {
	return containsJumpTo[*ast.ContinueStatement](loop)
}

func containsJumpTo[J ast.Jump](loop ast.Stmt) bool {
	found := false
	ast.Inspect(loop, func(s ast.Stmt) bool {
		if found {
			return false
		}
		if j, ok := s.(J); ok {
			if id, ok := j.Enclosing(); ok && id == loop.ID() {
				found = true
			}
		}
		return true
	})
	return found
}

// ContainsCaseLabel reports whether a case label is nested anywhere in
// stmt, including stmt itself.
func ContainsCaseLabel(stmt ast.Stmt) bool {
	found := false
	ast.Inspect(stmt, func(s ast.Stmt) bool {
		if IsCaseLabel(s) {
			found = true
		}
		return !found
	})
	return found
}
