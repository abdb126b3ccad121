package builder

// slab hands out statement nodes of one type from a shared backing
// slice. A builder usually creates thousands of small nodes of a few
// dozen types, so each type gets its own slab and a tree ends up in a
// handful of allocations instead of one per node.
//
// Nodes are never freed individually. A full slab is not copied when it
// grows: the old backing slice stays alive through the nodes that point
// into it and a new, larger one takes over.
type slab[T any] struct {
	free []T
	size int
}

func newSlab[T any](size int) *slab[T] {
	size = max(size, 2)
	return &slab[T]{free: make([]T, size), size: size}
}

// next returns a pointer to a zeroed node.
func (s *slab[T]) next() *T {
	if len(s.free) == 0 {
		s.refill(1)
	}
	n := &s.free[0]
	s.free = s.free[1:]
	return n
}

// nextN returns n zeroed elements, used for the child lists of sequences.
// The result has no spare capacity, so appending to one list can never
// overwrite the start of the next.
func (s *slab[T]) nextN(n int) []T {
	if n == 0 {
		return nil
	}
	if len(s.free) < n {
		s.refill(n)
	}
	out := s.free[:n:n]
	s.free = s.free[n:]
	return out
}

//go:noinline
func (s *slab[T]) refill(need int) {
	s.size += s.size >> 1
	s.free = make([]T, max(s.size, need))
}
