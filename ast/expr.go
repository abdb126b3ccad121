package ast

import "strconv"

type (
	// Expression is a struct to allow defining methods on it. The
	// statement tree treats expressions as opaque: it stores them and
	// hands them to visitors, nothing more.
	Expression struct {
		Expr `optional:"true"`
	}

	// All expression nodes implement the Expr interface.
	Expr interface {
		Node
		_expr()
	}

	IntLiteral struct {
		Idx     Idx
		Literal string
		Value   int64
	}

	// RawExpression is an expression owned by an external expression
	// model, kept here only by its source text.
	RawExpression struct {
		Idx     Idx
		Literal string
	}
)

func (*IntLiteral) _expr()    {}
func (*RawExpression) _expr() {}

func (n *IntLiteral) Idx0() Idx    { return n.Idx }
func (n *IntLiteral) Idx1() Idx    { return Idx(int(n.Idx) + len(n.Literal)) }
func (n *RawExpression) Idx0() Idx { return n.Idx }
func (n *RawExpression) Idx1() Idx { return Idx(int(n.Idx) + len(n.Literal)) }

// NewIntLiteral returns an expression holding v spelled in decimal.
func NewIntLiteral(idx Idx, v int64) *Expression {
	return &Expression{Expr: &IntLiteral{Idx: idx, Literal: strconv.FormatInt(v, 10), Value: v}}
}

// String returns the source spelling of the expression.
func (e *Expression) String() string {
	if e == nil || e.Expr == nil {
		return ""
	}
	switch x := e.Expr.(type) {
	case *Identifier:
		return x.Name
	case *IntLiteral:
		return x.Literal
	case *RawExpression:
		return x.Literal
	}
	return ""
}
