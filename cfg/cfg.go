// Package cfg builds a statement-level control-flow graph from a resolved
// tree. Block and sequence statements are transparent: control enters
// their first statement directly.
package cfg

import (
	"iter"
	"slices"

	"github.com/t14raptor/go-stmt/ast"
	"github.com/t14raptor/go-stmt/tools/fastgraph"
)

const (
	Entry ast.NodeID = -1
	Exit  ast.NodeID = -2
)

type EdgeKind int

const (
	EdgeNext EdgeKind = iota
	EdgeTrue
	EdgeFalse
	EdgeCase
	EdgeBreak
	EdgeContinue
	EdgeExit
)

var edgeKind2string = [...]string{
	EdgeNext:     "next",
	EdgeTrue:     "true",
	EdgeFalse:    "false",
	EdgeCase:     "case",
	EdgeBreak:    "break",
	EdgeContinue: "continue",
	EdgeExit:     "exit",
}

func (k EdgeKind) String() string {
	if int(k) < len(edgeKind2string) {
		return edgeKind2string[k]
	}
	return "edge(?)"
}

// Condition returns the node standing for the trailing condition of the
// do-while statement id.
func Condition(id ast.NodeID) ast.NodeID {
	return -3 - id
}

// IsStatement reports whether n stands for a statement rather than Entry,
// Exit or a do-while condition.
func IsStatement(n ast.NodeID) bool {
	return n > ast.NoNode
}

type Graph struct {
	tree  *ast.Tree
	g     fastgraph.DirectedGraph[ast.NodeID, EdgeKind]
	order map[ast.NodeID]int
	owner map[ast.NodeID]ast.NodeID

	breakTo    map[ast.NodeID]ast.NodeID
	continueTo map[ast.NodeID]ast.NodeID
	labels     map[ast.NodeID][]ast.NodeID

	reached map[ast.NodeID]bool
}

// Build builds the graph of t. The tree must have been resolved; jumps
// and labels without a target are treated as leaving the tree.
func Build(t *ast.Tree) *Graph {
	g := &Graph{
		tree:       t,
		g:          fastgraph.New[ast.NodeID, EdgeKind](),
		order:      make(map[ast.NodeID]int),
		owner:      make(map[ast.NodeID]ast.NodeID),
		breakTo:    make(map[ast.NodeID]ast.NodeID),
		continueTo: make(map[ast.NodeID]ast.NodeID),
		labels:     make(map[ast.NodeID][]ast.NodeID),
	}
	g.g.AddNode(Entry)
	g.g.AddNode(Exit)
	if t.Root == nil {
		g.edge(Entry, Exit, EdgeNext)
		return g
	}

	g.index(t.Root, ast.NoNode)
	g.edge(Entry, g.build(t.Root, Exit), EdgeNext)
	return g
}

// index records preorder positions, the nearest non-container owner of
// every statement and the labels of every switch.
func (g *Graph) index(s ast.Stmt, owner ast.NodeID) {
	g.order[s.ID()] = len(g.order)
	g.owner[s.ID()] = owner
	if label, ok := s.(ast.CaseLabel); ok {
		if sw, ok := label.Enclosing(); ok {
			g.labels[sw] = append(g.labels[sw], label.ID())
		}
	}
	if !ast.IsContainer(s) {
		owner = s.ID()
	}
	for _, c := range ast.Children(s) {
		g.index(c, owner)
	}
}

func (g *Graph) edge(from, to ast.NodeID, kind EdgeKind) {
	g.g.AddEdge(from, to, kind)
}

// build adds the edges of s, with next as the node control reaches after
// s completes normally. It returns the node control enters s through.
func (g *Graph) build(s ast.Stmt, next ast.NodeID) ast.NodeID {
	id := s.ID()
	switch n := s.(type) {
	case *ast.BlockStatement:
		return g.build(n.Body, next)

	case *ast.SeqStatement:
		for i := len(n.List) - 1; i >= 0; i-- {
			next = g.build(n.List[i], next)
		}
		return next

	case *ast.CompileTimeForStatement:
		g.g.AddNode(id)
		g.edge(id, g.build(n.Body, id), EdgeTrue)
		g.edge(id, next, EdgeFalse)
		return id

	case *ast.ReturnStatement, *ast.DiscardStatement:
		g.edge(id, Exit, EdgeExit)
		return id

	case *ast.IfStatement:
		g.g.AddNode(id)
		g.edge(id, g.build(n.Consequent, next), EdgeTrue)
		if n.Alternate != nil {
			g.edge(id, g.build(n.Alternate, next), EdgeFalse)
		} else {
			g.edge(id, next, EdgeFalse)
		}
		return id

	case *ast.SwitchStatement:
		g.g.AddNode(id)
		g.breakTo[id] = next
		g.build(n.Body, next)
		hasDefault := false
		for _, label := range g.labels[id] {
			g.edge(id, label, EdgeCase)
			if _, ok := g.tree.Lookup(label).(*ast.DefaultStatement); ok {
				hasDefault = true
			}
		}
		if !hasDefault {
			g.edge(id, next, EdgeFalse)
		}
		return id

	case *ast.WhileStatement:
		g.g.AddNode(id)
		g.breakTo[id] = next
		g.continueTo[id] = id
		g.edge(id, g.build(n.Body, id), EdgeTrue)
		g.edge(id, next, EdgeFalse)
		return id

	case *ast.ForStatement:
		// The loop node stands for the test and the update.
		g.g.AddNode(id)
		g.breakTo[id] = next
		g.continueTo[id] = id
		g.edge(id, g.build(n.Body, id), EdgeTrue)
		if n.Test != nil {
			g.edge(id, next, EdgeFalse)
		}
		if n.Initializer != nil {
			return g.build(n.Initializer, id)
		}
		return id

	case *ast.DoWhileStatement:
		cond := Condition(id)
		g.g.AddNode(id)
		g.breakTo[id] = next
		g.continueTo[id] = cond
		body := g.build(n.Body, cond)
		g.edge(id, body, EdgeNext)
		g.edge(cond, body, EdgeTrue)
		g.edge(cond, next, EdgeFalse)
		return id

	case *ast.BreakStatement:
		if to, ok := g.jumpTarget(n, g.breakTo); ok {
			g.edge(id, to, EdgeBreak)
		} else {
			g.edge(id, Exit, EdgeExit)
		}
		return id

	case *ast.ContinueStatement:
		if to, ok := g.jumpTarget(n, g.continueTo); ok {
			g.edge(id, to, EdgeContinue)
		} else {
			g.edge(id, Exit, EdgeExit)
		}
		return id
	}

	// Empty, unparsed, declaration, expression and label statements fall
	// through.
	g.edge(id, next, EdgeNext)
	return id
}

func (g *Graph) jumpTarget(j ast.Jump, targets map[ast.NodeID]ast.NodeID) (ast.NodeID, bool) {
	target, ok := j.Enclosing()
	if !ok {
		return ast.NoNode, false
	}
	to, ok := targets[target]
	return to, ok
}

// Nodes iterates over the graph's nodes in the order they were added,
// starting with Entry and Exit.
func (g *Graph) Nodes() iter.Seq[ast.NodeID] {
	return g.g.Nodes()
}

// Successors iterates over the nodes n has an edge to.
func (g *Graph) Successors(n ast.NodeID) iter.Seq[ast.NodeID] {
	return g.g.Neighbors(n, fastgraph.Outgoing)
}

// Edge returns the kind of the edge from -> to.
func (g *Graph) Edge(from, to ast.NodeID) (EdgeKind, bool) {
	return g.g.EdgeWeight(from, to)
}

func (g *Graph) reach() map[ast.NodeID]bool {
	if g.reached != nil {
		return g.reached
	}
	g.reached = map[ast.NodeID]bool{Entry: true}
	work := []ast.NodeID{Entry}
	for len(work) > 0 {
		n := work[len(work)-1]
		work = work[:len(work)-1]
		for next := range g.Successors(n) {
			if !g.reached[next] {
				g.reached[next] = true
				work = append(work, next)
			}
		}
	}
	return g.reached
}

// Reachable reports whether control can reach n from Entry. A block or
// sequence statement is reachable when one of its statements is.
func (g *Graph) Reachable(n ast.NodeID) bool {
	if s := g.tree.Lookup(n); s != nil && ast.IsContainer(s) {
		found := false
		ast.Inspect(s, func(c ast.Stmt) bool {
			if found {
				return false
			}
			if !ast.IsContainer(c) && g.reach()[c.ID()] {
				found = true
			}
			return !found
		})
		return found
	}
	return g.reach()[n]
}

// Unreachable returns the statements control never reaches whose owning
// statement is reachable, in document order. Statements nested inside an
// unreachable statement are not listed separately.
func (g *Graph) Unreachable() []ast.Stmt {
	reached := g.reach()
	var out []ast.Stmt
	for id := range g.order {
		s := g.tree.Lookup(id)
		if s == nil || ast.IsContainer(s) || reached[id] {
			continue
		}
		if owner := g.owner[id]; owner != ast.NoNode && !reached[owner] {
			continue
		}
		out = append(out, s)
	}
	g.sortByOrder(out)
	return out
}

// Loops returns the statements of every cycle in the graph, each sorted in
// document order.
func (g *Graph) Loops() [][]ast.Stmt {
	var out [][]ast.Stmt
	for _, scc := range NewTarjanSCC[ast.NodeID](outgoing{g}).Cycles() {
		var loop []ast.Stmt
		for _, id := range scc {
			if s := g.tree.Lookup(id); IsStatement(id) && s != nil {
				loop = append(loop, s)
			}
		}
		if len(loop) == 0 {
			continue
		}
		g.sortByOrder(loop)
		out = append(out, loop)
	}
	slices.SortFunc(out, func(a, b []ast.Stmt) int {
		return g.order[a[0].ID()] - g.order[b[0].ID()]
	})
	return out
}

func (g *Graph) sortByOrder(list []ast.Stmt) {
	slices.SortFunc(list, func(a, b ast.Stmt) int {
		return g.order[a.ID()] - g.order[b.ID()]
	})
}

type outgoing struct{ g *Graph }

func (o outgoing) Nodes() iter.Seq[ast.NodeID] { return o.g.g.Nodes() }

func (o outgoing) Neighbors(n ast.NodeID) iter.Seq[ast.NodeID] {
	return o.g.Successors(n)
}
