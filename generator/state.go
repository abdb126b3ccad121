package generator

import (
	"strings"

	"github.com/t14raptor/go-stmt/ast"
)

type state struct {
	out    *strings.Builder
	node   ast.Node
	parent *state
	indent int
}

func (s *state) wrap(node ast.Node) *state {
	return &state{
		out:    s.out,
		node:   node,
		parent: s,
		indent: s.indent,
	}
}

func (s *state) line() {
	s.out.WriteString("\n")
}

func (s *state) pad(indent int) {
	s.out.WriteString(strings.Repeat("    ", indent))
}

func (s *state) lineAndPad() {
	s.line()
	s.pad(s.indent)
}

func (s *state) keyword(words ...string) {
	for i, w := range words {
		if i > 0 {
			s.out.WriteString(" ")
		}
		s.out.WriteString(w)
	}
}
