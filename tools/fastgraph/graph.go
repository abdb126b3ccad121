package fastgraph

import (
	"iter"
)

// Direction represents the direction of an edge.
type Direction int

const (
	Incoming Direction = iota
	Outgoing
)

// Edge represents a directed edge with a target node and a direction.
type Edge[N comparable] struct {
	To        N
	Direction Direction
}

// EdgeKey represents a key for uniquely identifying an edge in the graph.
type EdgeKey[N comparable] struct {
	From N
	To   N
}

// DirectedGraph represents a directed graph with generic node and edge
// weights. Nodes and edges iterate in insertion order.
type DirectedGraph[N comparable, E any] struct {
	order []N
	nodes map[N][]Edge[N]
	edges map[EdgeKey[N]]E
}

// New creates a new DirectedGraph instance.
func New[N comparable, E any]() DirectedGraph[N, E] {
	return DirectedGraph[N, E]{
		nodes: make(map[N][]Edge[N]),
		edges: make(map[EdgeKey[N]]E),
	}
}

// AddNode adds a node to the graph.
func (g *DirectedGraph[N, E]) AddNode(node N) {
	if _, exists := g.nodes[node]; !exists {
		g.nodes[node] = []Edge[N]{}
		g.order = append(g.order, node)
	}
}

// HasNode reports whether node was added.
func (g *DirectedGraph[N, E]) HasNode(node N) bool {
	_, exists := g.nodes[node]
	return exists
}

// Len returns the number of nodes.
func (g *DirectedGraph[N, E]) Len() int {
	return len(g.order)
}

// Nodes iterates over the nodes in insertion order.
func (g *DirectedGraph[N, E]) Nodes() iter.Seq[N] {
	return func(yield func(N) bool) {
		for _, n := range g.order {
			if !yield(n) {
				return
			}
		}
	}
}

// AddEdge adds an edge connecting two nodes to the graph with associated
// weight. Missing endpoints are added first.
func (g *DirectedGraph[N, E]) AddEdge(from, to N, weight E) {
	g.AddNode(from)
	g.AddNode(to)
	if _, exists := g.edges[EdgeKey[N]{From: from, To: to}]; !exists {
		g.nodes[from] = append(g.nodes[from], Edge[N]{To: to, Direction: Outgoing})
		if from != to {
			g.nodes[to] = append(g.nodes[to], Edge[N]{To: from, Direction: Incoming})
		}
	}
	g.edges[EdgeKey[N]{From: from, To: to}] = weight
}

// Neighbors returns an iterator over the neighbors of a node in the specified direction.
func (g *DirectedGraph[N, E]) Neighbors(node N, direction Direction) iter.Seq[N] {
	return func(yield func(N) bool) {
		edges, exists := g.nodes[node]
		if !exists {
			return
		}
		for _, edge := range edges {
			if edge.Direction == direction || edge.To == node {
				if !yield(edge.To) {
					return
				}
			}
		}
	}
}

// EdgeWeight returns the weight of an edge between two nodes.
func (g *DirectedGraph[N, E]) EdgeWeight(from, to N) (E, bool) {
	weight, exists := g.edges[EdgeKey[N]{From: from, To: to}]
	return weight, exists
}
