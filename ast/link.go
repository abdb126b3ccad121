package ast

// LinkState tells apart a link nobody computed yet from one the resolver
// looked at and could not satisfy.
type LinkState uint8

const (
	LinkUnset LinkState = iota
	LinkResolved
	LinkUnresolved
)

func (s LinkState) String() string {
	switch s {
	case LinkResolved:
		return "resolved"
	case LinkUnresolved:
		return "unresolved"
	}
	return "unset"
}

// link is the back-reference embedded by Child statements. It stores the
// target's NodeID, never the target itself.
type link struct {
	target NodeID
	state  LinkState
}

// SetEnclosing links the statement to the enclosing statement id.
// Linking to NoNode is the same as MarkUnresolved.
func (l *link) SetEnclosing(id NodeID) {
	if id == NoNode {
		l.MarkUnresolved()
		return
	}
	l.target, l.state = id, LinkResolved
}

// MarkUnresolved records that no valid enclosing statement exists.
func (l *link) MarkUnresolved() {
	l.target, l.state = NoNode, LinkUnresolved
}

// ResetEnclosing drops the link back to the unset state.
func (l *link) ResetEnclosing() {
	*l = link{}
}

// Enclosing returns the linked statement id. ok is false unless the link
// is resolved.
func (l *link) Enclosing() (id NodeID, ok bool) {
	return l.target, l.state == LinkResolved
}

func (l *link) Resolution() LinkState {
	return l.state
}
