package ast

import (
	"fmt"
	"iter"
)

// Tree owns the statements of one syntax tree and hands out their NodeIDs.
// Links between statements are NodeIDs into this table, so they never keep
// a statement alive on their own.
type Tree struct {
	Root Stmt

	nodes []Stmt
}

func NewTree() *Tree {
	return &Tree{nodes: make([]Stmt, 1, 64)}
}

// Register adds s to the node table and returns its id. Registering the same
// statement twice returns the id it already has. Registering a statement that
// belongs to another tree panics.
func (t *Tree) Register(s Stmt) NodeID {
	if t.nodes == nil {
		t.nodes = make([]Stmt, 1, 64)
	}
	if id := s.ID(); id != NoNode {
		if t.Lookup(id) != s {
			panic(fmt.Sprintf("ast: %s statement #%d is registered in another tree", s.Kind(), id))
		}
		return id
	}
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, s)
	s.setID(id)
	return id
}

// Lookup returns the statement registered under id, or nil.
func (t *Tree) Lookup(id NodeID) Stmt {
	if id <= NoNode || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Len returns the number of registered statements.
func (t *Tree) Len() int {
	if len(t.nodes) == 0 {
		return 0
	}
	return len(t.nodes) - 1
}

// Nodes iterates over registered statements in registration order.
func (t *Tree) Nodes() iter.Seq2[NodeID, Stmt] {
	return func(yield func(NodeID, Stmt) bool) {
		for i := 1; i < len(t.nodes); i++ {
			if !yield(NodeID(i), t.nodes[i]) {
				return
			}
		}
	}
}

// Enclosing follows the back-reference of c.
func (t *Tree) Enclosing(c Child) (Stmt, bool) {
	id, ok := c.Enclosing()
	if !ok {
		return nil, false
	}
	s := t.Lookup(id)
	return s, s != nil
}

// Adopt makes root the tree's root and registers every statement under it
// that has no id yet. It fails when the subtree is not a tree.
func (t *Tree) Adopt(root Stmt) error {
	if err := CheckOwnership(root); err != nil {
		return err
	}
	Inspect(root, func(s Stmt) bool {
		t.Register(s)
		return true
	})
	t.Root = root
	return nil
}

// CheckOwnership verifies that every statement under root has exactly one
// owner.
func CheckOwnership(root Stmt) error {
	seen := make(map[Stmt]struct{})
	var err error
	Inspect(root, func(s Stmt) bool {
		if err != nil {
			return false
		}
		if _, dup := seen[s]; dup {
			err = fmt.Errorf("ast: %s statement #%d is owned twice", s.Kind(), s.ID())
			return false
		}
		seen[s] = struct{}{}
		return true
	})
	return err
}
