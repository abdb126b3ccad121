package ast

// Children returns the statements directly owned by s, in document order.
func Children(s Stmt) Statements {
	var out Statements
	add := func(c Stmt) {
		if c != nil {
			out = append(out, c)
		}
	}
	switch n := s.(type) {
	case *BlockStatement:
		add(n.Body)
	case *SeqStatement:
		for _, c := range n.List {
			add(c)
		}
	case *CompileTimeForStatement:
		add(n.Body)
	case *IfStatement:
		add(n.Consequent)
		add(n.Alternate)
	case *SwitchStatement:
		add(n.Body)
	case *ForStatement:
		add(n.Initializer)
		add(n.Body)
	case *WhileStatement:
		add(n.Body)
	case *DoWhileStatement:
		add(n.Body)
	}
	return out
}

// Inspect walks the tree rooted at s in document order, calling f before
// the children of each statement. Children are skipped when f returns
// false.
func Inspect(s Stmt, f func(Stmt) bool) {
	if s == nil || !f(s) {
		return
	}
	for _, c := range Children(s) {
		Inspect(c, f)
	}
}

// IsContainer reports whether s only groups other statements.
func IsContainer(s Stmt) bool {
	switch s.(type) {
	case *BlockStatement, *SeqStatement:
		return true
	}
	return false
}
