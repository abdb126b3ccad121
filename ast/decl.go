package ast

type (
	// Decl is a declaration-like entity wrapped by a DeclStatement. The
	// statement tree only needs its name and position.
	Decl interface {
		Node
		DeclName() *Identifier
	}

	VarDecl struct {
		Type        string
		Name        *Identifier
		Initializer *Expression `optional:"true"`
	}
)

func (d *VarDecl) DeclName() *Identifier { return d.Name }

func (d *VarDecl) Idx0() Idx { return d.Name.Idx0() }
func (d *VarDecl) Idx1() Idx {
	if d.Initializer != nil {
		return d.Initializer.Expr.Idx1()
	}
	return d.Name.Idx1()
}
