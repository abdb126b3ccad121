package ast

// Kind tags the concrete variant of a statement.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBlock
	KindSeq
	KindCompileTimeFor
	KindEmpty
	KindDiscard
	KindUnparsed
	KindDecl
	KindIf
	KindSwitch
	KindFor
	KindUnscopedFor
	KindWhile
	KindDoWhile
	KindCase
	KindDefault
	KindBreak
	KindContinue
	KindReturn
	KindExpression

	kindCount
)

var kind2string = [...]string{
	KindInvalid:        "invalid",
	KindBlock:          "block",
	KindSeq:            "sequence",
	KindCompileTimeFor: "compile-time for",
	KindEmpty:          "empty",
	KindDiscard:        "discard",
	KindUnparsed:       "unparsed",
	KindDecl:           "declaration",
	KindIf:             "if",
	KindSwitch:         "switch",
	KindFor:            "for",
	KindUnscopedFor:    "unscoped for",
	KindWhile:          "while",
	KindDoWhile:        "do-while",
	KindCase:           "case",
	KindDefault:        "default",
	KindBreak:          "break",
	KindContinue:       "continue",
	KindReturn:         "return",
	KindExpression:     "expression",
}

func (k Kind) String() string {
	if k < kindCount {
		return kind2string[k]
	}
	return kind2string[KindInvalid]
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := KindBlock; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// IsBreakable reports whether statements of this kind can be targeted by a
// `break`.
func (k Kind) IsBreakable() bool {
	switch k {
	case KindSwitch, KindFor, KindUnscopedFor, KindWhile, KindDoWhile:
		return true
	}
	return false
}

// IsContinuable reports whether statements of this kind can be targeted by
// a `continue`.
func (k Kind) IsContinuable() bool {
	return k.IsBreakable() && k != KindSwitch
}
