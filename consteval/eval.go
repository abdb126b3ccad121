// Package consteval fills in the constant-folded bounds of compile-time
// range loops.
package consteval

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/t14raptor/go-stmt/ast"
	"github.com/t14raptor/go-stmt/token"
)

var (
	ErrNotConstant = errors.New("consteval: not a constant expression")
	ErrUndefined   = errors.New("consteval: undefined constant")
	ErrOverflow    = errors.New("consteval: constant overflows")
	ErrDivByZero   = errors.New("consteval: division by zero")
)

// Evaluator is the constant-evaluation service consulted for range bounds.
type Evaluator interface {
	EvalInt(expr *ast.Expression) (int64, error)
}

// Env maps constant names to their values.
type Env map[string]int64

// LiteralEvaluator folds integer literals, names bound in Env and raw
// arithmetic over both. Raw text must separate tokens with spaces.
type LiteralEvaluator struct {
	Env Env
}

func (e LiteralEvaluator) EvalInt(expr *ast.Expression) (int64, error) {
	if expr == nil || expr.Expr == nil {
		return 0, ErrNotConstant
	}
	switch x := expr.Expr.(type) {
	case *ast.IntLiteral:
		return x.Value, nil
	case *ast.Identifier:
		return e.lookup(x.Name)
	case *ast.RawExpression:
		p := &rawParser{env: e, toks: strings.Fields(x.Literal)}
		v, err := p.parseBinary(0)
		if err != nil {
			return 0, err
		}
		if p.pos != len(p.toks) {
			return 0, fmt.Errorf("%w: unexpected %q", ErrNotConstant, p.toks[p.pos])
		}
		return v, nil
	}
	return 0, ErrNotConstant
}

func (e LiteralEvaluator) lookup(name string) (int64, error) {
	v, ok := e.Env[name]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUndefined, name)
	}
	return v, nil
}

type rawParser struct {
	env  LiteralEvaluator
	toks []string
	pos  int
}

func precedence(tkn token.Token) int {
	switch tkn {
	case token.Plus, token.Minus:
		return 1
	case token.Multiply, token.Slash, token.Remainder:
		return 2
	}
	return 0
}

func (p *rawParser) peek() token.Token {
	if p.pos >= len(p.toks) {
		return token.Eof
	}
	return token.Classify(p.toks[p.pos])
}

func (p *rawParser) parseBinary(minPrec int) (int64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		prec := precedence(op)
		if prec == 0 || prec <= minPrec {
			return left, nil
		}
		p.pos++
		right, err := p.parseBinary(prec)
		if err != nil {
			return 0, err
		}
		if left, err = apply(op, left, right); err != nil {
			return 0, err
		}
	}
}

func (p *rawParser) parseUnary() (int64, error) {
	switch p.peek() {
	case token.Minus:
		p.pos++
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if v == math.MinInt64 {
			return 0, ErrOverflow
		}
		return -v, nil
	case token.LeftParenthesis:
		p.pos++
		v, err := p.parseBinary(0)
		if err != nil {
			return 0, err
		}
		if p.peek() != token.RightParenthesis {
			return 0, fmt.Errorf("%w: missing )", ErrNotConstant)
		}
		p.pos++
		return v, nil
	case token.Number:
		lit := p.toks[p.pos]
		p.pos++
		v, err := strconv.ParseInt(lit, 0, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, fmt.Errorf("%w: %s", ErrOverflow, lit)
			}
			return 0, fmt.Errorf("%w: %s", ErrNotConstant, lit)
		}
		return v, nil
	case token.Identifier:
		name := p.toks[p.pos]
		p.pos++
		return p.env.lookup(name)
	case token.Eof:
		return 0, fmt.Errorf("%w: unexpected end", ErrNotConstant)
	}
	return 0, fmt.Errorf("%w: unexpected %q", ErrNotConstant, p.toks[p.pos])
}

func apply(op token.Token, a, b int64) (int64, error) {
	switch op {
	case token.Plus:
		r := a + b
		if (r > a) != (b > 0) {
			return 0, ErrOverflow
		}
		return r, nil
	case token.Minus:
		r := a - b
		if (r < a) != (b > 0) {
			return 0, ErrOverflow
		}
		return r, nil
	case token.Multiply:
		if a == 0 || b == 0 {
			return 0, nil
		}
		r := a * b
		if r/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
			return 0, ErrOverflow
		}
		return r, nil
	case token.Slash, token.Remainder:
		if b == 0 {
			return 0, ErrDivByZero
		}
		if a == math.MinInt64 && b == -1 {
			return 0, ErrOverflow
		}
		if op == token.Slash {
			return a / b, nil
		}
		return a % b, nil
	}
	return 0, ErrNotConstant
}

// FoldRanges evaluates the bounds of every compile-time range loop in t
// that is not evaluated yet. Bounds that fail stay unevaluated; all
// failures are returned joined.
func FoldRanges(t *ast.Tree, ev Evaluator) error {
	var errs []error
	ast.Inspect(t.Root, func(s ast.Stmt) bool {
		n, ok := s.(*ast.CompileTimeForStatement)
		if !ok {
			return true
		}
		if err := foldBound(&n.BeginVal, n.Begin, ev); err != nil {
			errs = append(errs, fmt.Errorf("range begin of statement #%d: %w", n.ID(), err))
		}
		if err := foldBound(&n.EndVal, n.End, ev); err != nil {
			errs = append(errs, fmt.Errorf("range end of statement #%d: %w", n.ID(), err))
		}
		return true
	})
	return errors.Join(errs...)
}

func foldBound(v *ast.IntVal, expr *ast.Expression, ev Evaluator) error {
	if v.IsEvaluated() {
		return nil
	}
	x, err := ev.EvalInt(expr)
	if err != nil {
		return err
	}
	return v.Set(x)
}

// Bounds returns the folded range of n converted to T.
func Bounds[T constraints.Integer](n *ast.CompileTimeForStatement) (begin, end T, err error) {
	if begin, err = convert[T](n.BeginVal); err != nil {
		return 0, 0, err
	}
	if end, err = convert[T](n.EndVal); err != nil {
		return 0, 0, err
	}
	return begin, end, nil
}

func convert[T constraints.Integer](v ast.IntVal) (T, error) {
	x, err := v.Value()
	if err != nil {
		return 0, err
	}
	t := T(x)
	if int64(t) != x || (t < 0) != (x < 0) {
		return 0, fmt.Errorf("%w: %d", ErrOverflow, x)
	}
	return t, nil
}
