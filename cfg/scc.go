package cfg

import "iter"

// sccGraph is what Tarjan's algorithm needs from a graph.
type sccGraph[N comparable] interface {
	Nodes() iter.Seq[N]
	Neighbors(node N) iter.Seq[N]
}

type vertex struct {
	index   int
	lowLink int
	onStack bool
}

// TarjanSCC holds the state of one run of Tarjan's algorithm.
type TarjanSCC[N comparable] struct {
	graph  sccGraph[N]
	index  int
	stack  []N
	verts  map[N]*vertex
	sccs   [][]N
	cyclic []bool
}

func NewTarjanSCC[N comparable](graph sccGraph[N]) *TarjanSCC[N] {
	return &TarjanSCC[N]{
		graph: graph,
		verts: make(map[N]*vertex),
	}
}

// StronglyConnectedComponents returns the components in reverse
// topological order.
func (t *TarjanSCC[N]) StronglyConnectedComponents() [][]N {
	if t.sccs == nil {
		for node := range t.graph.Nodes() {
			if _, seen := t.verts[node]; !seen {
				t.strongConnect(node)
			}
		}
	}
	return t.sccs
}

// Cycles returns the components that contain a cycle: more than one node,
// or a single node with an edge to itself.
func (t *TarjanSCC[N]) Cycles() [][]N {
	var out [][]N
	for i, scc := range t.StronglyConnectedComponents() {
		if t.cyclic[i] {
			out = append(out, scc)
		}
	}
	return out
}

func (t *TarjanSCC[N]) strongConnect(node N) {
	v := &vertex{index: t.index, lowLink: t.index, onStack: true}
	t.verts[node] = v
	t.index++
	t.stack = append(t.stack, node)

	selfLoop := false
	for next := range t.graph.Neighbors(node) {
		if next == node {
			selfLoop = true
		}
		w, seen := t.verts[next]
		switch {
		case !seen:
			t.strongConnect(next)
			v.lowLink = min(v.lowLink, t.verts[next].lowLink)
		case w.onStack:
			v.lowLink = min(v.lowLink, w.index)
		}
	}

	if v.lowLink != v.index {
		return
	}
	var scc []N
	for {
		top := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.verts[top].onStack = false
		scc = append(scc, top)
		if top == node {
			break
		}
	}
	t.sccs = append(t.sccs, scc)
	t.cyclic = append(t.cyclic, len(scc) > 1 || selfLoop)
}
