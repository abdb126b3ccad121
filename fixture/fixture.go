// Package fixture builds statement trees from a YAML description. It stands
// in for a front end in tests and in the stmtcheck tool.
//
// A statement is either a bare word (break, continue, empty, discard,
// default, return) or a mapping with exactly one key naming the statement:
//
//	while:
//	  test: c
//	  body:
//	    block:
//	      - switch:
//	          cond: x
//	          body:
//	            block:
//	              - case: 1
//	              - break
//	              - default
//	              - continue
//
// A top-level sequence becomes a SeqStatement. Expressions are scalars: a
// decimal integer, a plain identifier, or any other source text kept raw.
package fixture

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/t14raptor/go-stmt/ast"
	"github.com/t14raptor/go-stmt/builder"
	"github.com/t14raptor/go-stmt/resolver"
	"github.com/t14raptor/go-stmt/token"
)

const columnBits = 16

// Idx encodes a 1-based line and column as a position.
func Idx(line, column int) ast.Idx {
	return ast.Idx(line<<columnBits | column)
}

// Position decodes a position made by Idx.
func Position(idx ast.Idx) (line, column int) {
	return int(idx) >> columnBits, int(idx) & (1<<columnBits - 1)
}

// LoadFile reads and builds the fixture at path.
func LoadFile(path string, opts ...builder.Option) (*ast.Tree, *resolver.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return Load(path, data, opts...)
}

// Load builds the fixture in data. name is only used in error messages.
func Load(name string, data []byte, opts ...builder.Option) (*ast.Tree, *resolver.Result, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil, fmt.Errorf("%s: empty fixture", name)
	}

	d := &decoder{name: name, b: builder.New(opts...)}
	root, err := d.top(doc.Content[0])
	if err != nil {
		return nil, nil, err
	}
	tree, res := d.b.Finish(root)
	return tree, res, nil
}

type decoder struct {
	name string
	b    *builder.Builder
}

func (d *decoder) errorf(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("%s:%d:%d: %s", d.name, n.Line, n.Column, fmt.Sprintf(format, args...))
}

func at(n *yaml.Node) ast.Idx {
	return Idx(n.Line, n.Column)
}

func (d *decoder) top(n *yaml.Node) (ast.Stmt, error) {
	if n.Kind == yaml.SequenceNode {
		return d.seq(n)
	}
	return d.stmt(n)
}

func (d *decoder) seq(n *yaml.Node) (*ast.SeqStatement, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, d.errorf(n, "expected a list of statements")
	}
	list := make([]ast.Stmt, 0, len(n.Content))
	for _, c := range n.Content {
		s, err := d.stmt(c)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return d.b.Seq(list...), nil
}

// body accepts a list as shorthand for a sequence.
func (d *decoder) body(n *yaml.Node) (ast.Stmt, error) {
	if n.Kind == yaml.SequenceNode {
		return d.seq(n)
	}
	return d.stmt(n)
}

func (d *decoder) stmt(n *yaml.Node) (ast.Stmt, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return d.word(n)
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return nil, d.errorf(n, "a statement has exactly one key, got %d", len(n.Content)/2)
		}
		return d.keyed(n.Content[0], n.Content[1])
	}
	return nil, d.errorf(n, "expected a statement")
}

func (d *decoder) word(n *yaml.Node) (ast.Stmt, error) {
	idx := at(n)
	switch n.Value {
	case "break":
		return d.b.Break(idx), nil
	case "continue":
		return d.b.Continue(idx), nil
	case "empty":
		return d.b.Empty(idx), nil
	case "discard":
		return d.b.Discard(idx), nil
	case "default":
		return d.b.Default(idx, idx+7), nil
	case "return":
		return d.b.Return(idx, nil), nil
	}
	return nil, d.errorf(n, "unknown statement %q", n.Value)
}

func (d *decoder) keyed(key, val *yaml.Node) (ast.Stmt, error) {
	idx := at(key)
	switch key.Value {
	case "block":
		body, err := d.body(val)
		if err != nil {
			return nil, err
		}
		return d.b.Block(idx, body, max(idx, body.Idx1())), nil
	case "seq":
		return d.seq(val)
	case "expr":
		e, err := d.expr(val)
		if err != nil {
			return nil, err
		}
		return d.b.Expr(e), nil
	case "return":
		e, err := d.expr(val)
		if err != nil {
			return nil, err
		}
		return d.b.Return(idx, e), nil
	case "case":
		e, err := d.expr(val)
		if err != nil {
			return nil, err
		}
		return d.b.Case(idx, e, e.Expr.Idx1()), nil
	case "unparsed":
		if val.Kind != yaml.ScalarNode {
			return nil, d.errorf(val, "unparsed takes the raw token text")
		}
		toks := rawTokens(val.Value, int(at(val)))
		return d.b.Unparsed(idx, toks, at(val)+ast.Idx(len(val.Value))), nil
	case "decl":
		v, err := d.varDecl(val)
		if err != nil {
			return nil, err
		}
		return d.b.Decl(v), nil
	case "if":
		return d.ifStmt(idx, val)
	case "switch":
		return d.switchStmt(idx, val)
	case "for":
		return d.forStmt(idx, val)
	case "while":
		return d.whileStmt(idx, val)
	case "do":
		return d.doWhile(idx, val)
	case "ctfor":
		return d.ctFor(idx, val)
	}
	return nil, d.errorf(key, "unknown statement %q", key.Value)
}

// fields returns the values of a mapping, rejecting keys not in allowed
// and reporting the first missing key in required.
func (d *decoder) fields(n *yaml.Node, allowed []string, required ...string) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, d.errorf(n, "expected a mapping with %s", strings.Join(allowed, ", "))
	}
	out := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		known := false
		for _, a := range allowed {
			if a == k.Value {
				known = true
				break
			}
		}
		if !known {
			return nil, d.errorf(k, "unexpected key %q", k.Value)
		}
		out[k.Value] = n.Content[i+1]
	}
	for _, r := range required {
		if _, ok := out[r]; !ok {
			return nil, d.errorf(n, "missing %q", r)
		}
	}
	return out, nil
}

func (d *decoder) expr(n *yaml.Node) (*ast.Expression, error) {
	if n.Kind != yaml.ScalarNode || n.Value == "" {
		return nil, d.errorf(n, "expected an expression")
	}
	idx := at(n)
	if v, err := strconv.ParseInt(n.Value, 10, 64); err == nil {
		return d.b.Int(idx, v), nil
	}
	if token.Classify(n.Value) == token.Identifier {
		return d.b.Ident(idx, n.Value), nil
	}
	return d.b.Raw(idx, n.Value), nil
}

func (d *decoder) optExpr(f map[string]*yaml.Node, key string) (*ast.Expression, error) {
	n, ok := f[key]
	if !ok {
		return nil, nil
	}
	return d.expr(n)
}

func (d *decoder) varDecl(n *yaml.Node) (*ast.VarDecl, error) {
	f, err := d.fields(n, []string{"type", "name", "init"}, "name")
	if err != nil {
		return nil, err
	}
	name := f["name"]
	if token.Classify(name.Value) != token.Identifier {
		return nil, d.errorf(name, "%q is not an identifier", name.Value)
	}
	var typ string
	if t, ok := f["type"]; ok {
		typ = t.Value
	}
	init, err := d.optExpr(f, "init")
	if err != nil {
		return nil, err
	}
	return d.b.Var(at(name), typ, name.Value, init), nil
}

func (d *decoder) ifStmt(idx ast.Idx, n *yaml.Node) (ast.Stmt, error) {
	f, err := d.fields(n, []string{"test", "then", "else"}, "test", "then")
	if err != nil {
		return nil, err
	}
	test, err := d.expr(f["test"])
	if err != nil {
		return nil, err
	}
	cons, err := d.body(f["then"])
	if err != nil {
		return nil, err
	}
	var alt ast.Stmt
	if e, ok := f["else"]; ok {
		if alt, err = d.body(e); err != nil {
			return nil, err
		}
	}
	return d.b.If(idx, test, cons, alt), nil
}

func (d *decoder) switchStmt(idx ast.Idx, n *yaml.Node) (ast.Stmt, error) {
	f, err := d.fields(n, []string{"cond", "body"}, "cond", "body")
	if err != nil {
		return nil, err
	}
	cond, err := d.expr(f["cond"])
	if err != nil {
		return nil, err
	}
	body, err := d.body(f["body"])
	if err != nil {
		return nil, err
	}
	return d.b.Switch(idx, cond, body), nil
}

func (d *decoder) forStmt(idx ast.Idx, n *yaml.Node) (ast.Stmt, error) {
	f, err := d.fields(n, []string{"init", "test", "update", "body", "unscoped"}, "body")
	if err != nil {
		return nil, err
	}
	var init ast.Stmt
	if i, ok := f["init"]; ok {
		if init, err = d.stmt(i); err != nil {
			return nil, err
		}
	}
	test, err := d.optExpr(f, "test")
	if err != nil {
		return nil, err
	}
	update, err := d.optExpr(f, "update")
	if err != nil {
		return nil, err
	}
	body, err := d.body(f["body"])
	if err != nil {
		return nil, err
	}

	unscoped := false
	if u, ok := f["unscoped"]; ok {
		if err := u.Decode(&unscoped); err != nil {
			return nil, d.errorf(u, "unscoped: %v", err)
		}
	}
	if unscoped {
		return d.b.UnscopedFor(idx, init, test, update, body), nil
	}
	return d.b.For(idx, init, test, update, body), nil
}

func (d *decoder) whileStmt(idx ast.Idx, n *yaml.Node) (ast.Stmt, error) {
	f, err := d.fields(n, []string{"test", "body"}, "test", "body")
	if err != nil {
		return nil, err
	}
	test, err := d.expr(f["test"])
	if err != nil {
		return nil, err
	}
	body, err := d.body(f["body"])
	if err != nil {
		return nil, err
	}
	return d.b.While(idx, test, body), nil
}

func (d *decoder) doWhile(idx ast.Idx, n *yaml.Node) (ast.Stmt, error) {
	f, err := d.fields(n, []string{"body", "test"}, "body", "test")
	if err != nil {
		return nil, err
	}
	body, err := d.body(f["body"])
	if err != nil {
		return nil, err
	}
	test, err := d.expr(f["test"])
	if err != nil {
		return nil, err
	}
	return d.b.DoWhile(idx, body, test), nil
}

func (d *decoder) ctFor(idx ast.Idx, n *yaml.Node) (ast.Stmt, error) {
	f, err := d.fields(n, []string{"var", "begin", "end", "body"}, "var", "begin", "end", "body")
	if err != nil {
		return nil, err
	}
	name := f["var"]
	if token.Classify(name.Value) != token.Identifier {
		return nil, d.errorf(name, "%q is not an identifier", name.Value)
	}
	begin, err := d.expr(f["begin"])
	if err != nil {
		return nil, err
	}
	end, err := d.expr(f["end"])
	if err != nil {
		return nil, err
	}
	body, err := d.body(f["body"])
	if err != nil {
		return nil, err
	}
	return d.b.CompileTimeFor(idx, d.b.Var(at(name), "int", name.Value, nil), begin, end, body), nil
}

// rawTokens splits text on white space. Offsets are relative to base.
func rawTokens(text string, base int) []token.Raw {
	var toks []token.Raw
	start := -1
	flush := func(end int) {
		if start >= 0 {
			lit := text[start:end]
			toks = append(toks, token.Raw{Kind: token.Classify(lit), Literal: lit, Offset: base + start})
			start = -1
		}
	}
	for i, r := range text {
		if r == ' ' || r == '\t' || r == '\n' {
			flush(i)
		} else if start < 0 {
			start = i
		}
	}
	flush(len(text))
	return toks
}
