package token

const (
	Undetermined Token = iota

	Illegal
	Eof
	Comment

	String
	Number

	Plus      // +
	Minus     // -
	Multiply  // *
	Slash     // /
	Remainder // %

	And         // &
	Or          // |
	ExclusiveOr // ^
	ShiftLeft   // <<
	ShiftRight  // >>

	AddAssign       // +=
	SubtractAssign  // -=
	MultiplyAssign  // *=
	QuotientAssign  // /=
	RemainderAssign // %=

	LogicalAnd // &&
	LogicalOr  // ||
	Increment  // ++
	Decrement  // --

	Equal          // ==
	Less           // <
	Greater        // >
	Assign         // =
	Not            // !
	BitwiseNot     // ~
	NotEqual       // !=
	LessOrEqual    // <=
	GreaterOrEqual // >=

	LeftParenthesis // (
	LeftBracket     // [
	LeftBrace       // {
	Comma           // ,
	Period          // .

	RightParenthesis // )
	RightBracket     // ]
	RightBrace       // }
	Semicolon        // ;
	Colon            // :
	QuestionMark     // ?

	Identifier
	Keyword

	If
	In
	Do

	For
	Else
	Case
	While
	Break
	Return
	Switch
	Default
	Discard
	Continue

	// CompileTimeFor is the `$for` keyword of a compile-time range loop.
	CompileTimeFor
)

var token2string = [...]string{
	Illegal:          "Illegal",
	Eof:              "Eof",
	Comment:          "Comment",
	Keyword:          "Keyword",
	String:           "String",
	Number:           "Number",
	Identifier:       "Identifier",
	Plus:             "+",
	Minus:            "-",
	Multiply:         "*",
	Slash:            "/",
	Remainder:        "%",
	And:              "&",
	Or:               "|",
	ExclusiveOr:      "^",
	ShiftLeft:        "<<",
	ShiftRight:       ">>",
	AddAssign:        "+=",
	SubtractAssign:   "-=",
	MultiplyAssign:   "*=",
	QuotientAssign:   "/=",
	RemainderAssign:  "%=",
	LogicalAnd:       "&&",
	LogicalOr:        "||",
	Increment:        "++",
	Decrement:        "--",
	Equal:            "==",
	Less:             "<",
	Greater:          ">",
	Assign:           "=",
	Not:              "!",
	BitwiseNot:       "~",
	NotEqual:         "!=",
	LessOrEqual:      "<=",
	GreaterOrEqual:   ">=",
	LeftParenthesis:  "(",
	LeftBracket:      "[",
	LeftBrace:        "{",
	Comma:            ",",
	Period:           ".",
	RightParenthesis: ")",
	RightBracket:     "]",
	RightBrace:       "}",
	Semicolon:        ";",
	Colon:            ":",
	QuestionMark:     "?",
	If:               "if",
	In:               "in",
	Do:               "do",
	For:              "for",
	Else:             "else",
	Case:             "case",
	While:            "while",
	Break:            "break",
	Return:           "return",
	Switch:           "switch",
	Default:          "default",
	Discard:          "discard",
	Continue:         "continue",
	CompileTimeFor:   "$for",
}

var keywordTable = map[string]keyword{
	"if":       {token: If},
	"in":       {token: In},
	"do":       {token: Do},
	"for":      {token: For},
	"else":     {token: Else},
	"case":     {token: Case},
	"while":    {token: While},
	"break":    {token: Break},
	"return":   {token: Return},
	"switch":   {token: Switch},
	"default":  {token: Default},
	"discard":  {token: Discard},
	"continue": {token: Continue},
	"$for":     {token: CompileTimeFor},
	"goto": {
		token:         Keyword,
		futureKeyword: true,
	},
	"struct": {
		token:         Keyword,
		futureKeyword: true,
	},
	"typedef": {
		token:         Keyword,
		futureKeyword: true,
	},
}
