package token

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Token is the set of lexical tokens of the C-like statement language.
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) && token2string[t] != "" {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// keyword ...
type keyword struct {
	token         Token
	futureKeyword bool
}

// LiteralKeyword returns the keyword token if literal is a keyword. Reserved
// words without a statement meaning yield Keyword, and ok is false when the
// literal is not a keyword at all.
func LiteralKeyword(literal string) (Token, bool) {
	if k, exists := keywordTable[literal]; exists {
		if k.futureKeyword {
			return Keyword, true
		}
		return k.token, true
	}
	return 0, false
}

// ID ...
func ID(token Token) bool {
	return token >= Identifier
}

// IsKeyword reports whether the token spells a statement keyword.
func IsKeyword(token Token) bool {
	return token >= If && token <= CompileTimeFor
}

// Raw is one token carried through the tree untouched, e.g. the body of an
// unparsed block handed to a downstream compiler.
type Raw struct {
	Kind    Token
	Literal string
	Offset  int
}

func (r Raw) String() string {
	return r.Literal
}

var punctuators map[string]Token

func init() {
	punctuators = make(map[string]Token)
	for t := Plus; t <= QuestionMark; t++ {
		punctuators[token2string[t]] = t
	}
}

// Classify returns the token kind of a single lexeme. It does not scan: the
// literal must already be one token.
func Classify(literal string) Token {
	if literal == "" {
		return Illegal
	}
	if t, ok := LiteralKeyword(literal); ok {
		return t
	}
	if t, ok := punctuators[literal]; ok {
		return t
	}
	r, _ := utf8.DecodeRuneInString(literal)
	switch {
	case unicode.IsDigit(r):
		return Number
	case r == '"':
		return String
	case r == '_' || r == '$' || unicode.IsLetter(r):
		for _, c := range literal {
			if c != '_' && c != '$' && !unicode.IsLetter(c) && !unicode.IsDigit(c) {
				return Illegal
			}
		}
		return Identifier
	}
	return Illegal
}
