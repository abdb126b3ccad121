// Package generator prints statement trees as C-like source.
package generator

import (
	"fmt"
	"strings"

	"github.com/t14raptor/go-stmt/ast"
	"github.com/t14raptor/go-stmt/token"
)

func Generate(node ast.Node) string {
	s := &state{
		out:    &strings.Builder{},
		node:   node,
		parent: &state{},
	}
	if seq, ok := node.(*ast.SeqStatement); ok {
		// A top-level sequence prints one statement per line.
		for i, st := range seq.List {
			if i > 0 {
				s.line()
			}
			gen(s.wrap(st))
		}
		return s.out.String()
	}
	gen(s)
	return s.out.String()
}

// flatten lists the statements a body prints as, looking through nested
// sequences.
func flatten(body ast.Stmt) ast.Statements {
	seq, ok := body.(*ast.SeqStatement)
	if !ok {
		return ast.Statements{body}
	}
	var out ast.Statements
	for _, st := range seq.List {
		out = append(out, flatten(st)...)
	}
	return out
}

func gen(s *state) {
	switch n := s.node.(type) {
	case nil:
	case *ast.BlockStatement:
		_, inSwitch := s.parent.node.(*ast.SwitchStatement)
		s.out.WriteString("{")

		s.indent++
		labelled := false
		for _, st := range flatten(n.Body) {
			child := s.wrap(st)
			if _, isLabel := st.(ast.CaseLabel); isLabel {
				labelled = inSwitch
			} else if labelled {
				child.indent++
			}
			child.lineAndPad()
			gen(child)
		}
		s.indent--

		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.SeqStatement:
		for i, st := range n.List {
			if i > 0 {
				s.lineAndPad()
			}
			gen(s.wrap(st))
		}
	case *ast.CompileTimeForStatement:
		s.out.WriteString(token.CompileTimeFor.String())
		s.out.WriteString(" (")
		if n.Var != nil && n.Var.Name != nil {
			s.out.WriteString(n.Var.Name.Name)
		}
		s.out.WriteString(" " + token.In.String() + " Range(")
		s.out.WriteString(n.Begin.String())
		s.out.WriteString(", ")
		s.out.WriteString(n.End.String())
		s.out.WriteString(")) ")
		genBody(s, n.Body)
	case *ast.EmptyStatement:
		s.out.WriteString(";")
	case *ast.DiscardStatement:
		s.out.WriteString(token.Discard.String() + ";")
	case *ast.UnparsedStatement:
		s.out.WriteString("{")
		for _, tok := range n.Tokens {
			s.out.WriteString(" ")
			s.out.WriteString(tok.Literal)
		}
		s.out.WriteString(" }")
	case *ast.DeclStatement:
		genDecl(s, n.Decl)
		s.out.WriteString(";")
	case *ast.IfStatement:
		s.keyword(token.If.String(), "(")
		s.out.WriteString(n.Test.String())
		s.out.WriteString(") ")
		genBody(s, n.Consequent)

		if n.Alternate != nil {
			s.out.WriteString(" " + token.Else.String() + " ")
			if _, ok := n.Alternate.(*ast.IfStatement); ok {
				gen(s.wrap(n.Alternate))
			} else {
				genBody(s, n.Alternate)
			}
		}
	case *ast.SwitchStatement:
		s.keyword(token.Switch.String(), "(")
		s.out.WriteString(n.Condition.String())
		s.out.WriteString(") ")
		genBody(s, n.Body)
	case *ast.ForStatement:
		s.keyword(token.For.String(), "(")
		if n.Initializer != nil {
			gen(s.wrap(n.Initializer))
		} else {
			s.out.WriteString(";")
		}
		if n.Test != nil {
			s.out.WriteString(" " + n.Test.String())
		}
		s.out.WriteString(";")
		if n.Update != nil {
			s.out.WriteString(" " + n.Update.String())
		}
		s.out.WriteString(") ")
		genBody(s, n.Body)
	case *ast.WhileStatement:
		s.keyword(token.While.String(), "(")
		s.out.WriteString(n.Test.String())
		s.out.WriteString(") ")
		genBody(s, n.Body)
	case *ast.DoWhileStatement:
		s.out.WriteString(token.Do.String() + " ")
		genBody(s, n.Body)
		s.out.WriteString(" ")
		s.keyword(token.While.String(), "(")
		s.out.WriteString(n.Test.String())
		s.out.WriteString(");")
	case *ast.CaseStatement:
		s.keyword(token.Case.String(), n.Test.String())
		s.out.WriteString(":")
	case *ast.DefaultStatement:
		s.out.WriteString(token.Default.String() + ":")
	case *ast.BreakStatement:
		s.out.WriteString(token.Break.String() + ";")
	case *ast.ContinueStatement:
		s.out.WriteString(token.Continue.String() + ";")
	case *ast.ReturnStatement:
		s.out.WriteString(token.Return.String())
		if n.Argument != nil {
			s.out.WriteString(" ")
			s.out.WriteString(n.Argument.String())
		}
		s.out.WriteString(";")
	case *ast.ExpressionStatement:
		s.out.WriteString(n.Expression.String())
		s.out.WriteString(";")
	default:
		panic(fmt.Sprintf("gen: unexpected node type %T", n))
	}
}

// genBody prints a nested statement, bracing it when it is not already a
// block.
func genBody(s *state, body ast.Stmt) {
	switch body.(type) {
	case *ast.BlockStatement, *ast.EmptyStatement:
		gen(s.wrap(body))
		return
	}
	s.out.WriteString("{")
	s.indent++
	for _, st := range flatten(body) {
		s.lineAndPad()
		gen(s.wrap(st))
	}
	s.indent--
	s.lineAndPad()
	s.out.WriteString("}")
}

func genDecl(s *state, d ast.Decl) {
	switch d := d.(type) {
	case *ast.VarDecl:
		if d.Type != "" {
			s.out.WriteString(d.Type + " ")
		}
		s.out.WriteString(d.Name.Name)
		if d.Initializer != nil {
			s.out.WriteString(" = ")
			s.out.WriteString(d.Initializer.String())
		}
	default:
		s.out.WriteString(d.DeclName().Name)
	}
}
