package ast

type (
	// ScopeContext identifies one lexical scope. The resolver hands them
	// out; zero means no scope was assigned yet.
	ScopeContext int

	Id struct {
		Name         string
		ScopeContext ScopeContext
	}

	Identifier struct {
		Idx          Idx
		Name         string
		ScopeContext ScopeContext
	}
)

func (n *Identifier) ToId() Id {
	return Id{Name: n.Name, ScopeContext: n.ScopeContext}
}

func (*Identifier) _expr() {}

func (n *Identifier) Idx0() Idx { return n.Idx }
func (n *Identifier) Idx1() Idx { return Idx(int(n.Idx) + len(n.Name)) }
