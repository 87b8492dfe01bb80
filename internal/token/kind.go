package token

// Kind represents the category of a template token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the template input.
	EOF

	// Ident represents an identifier or content word.
	Ident
	// Number represents a decimal number literal.
	Number

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// Colon represents the colon token.
	Colon // :
	// Arrow represents the arrow token.
	Arrow // ->
	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Gt represents the greater-than operator token.
	Gt // >
	// Lt represents the less-than operator token.
	Lt // <
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// BangEq represents the not-equal operator token.
	BangEq // !=
	// EqEq represents the equality operator token.
	EqEq // ==
	// Assign represents the assign token.
	Assign // =
	// Amp represents the ampersand (include) token.
	Amp // &
	// Percent represents the percent (interpolation) token.
	Percent // %
)

var kindNames = [...]string{
	Invalid: "Invalid",
	EOF:     "EOF",
	Ident:   "Ident",
	Number:  "Number",
	LParen:  "LParen",
	RParen:  "RParen",
	LBrace:  "LBrace",
	RBrace:  "RBrace",
	Colon:   "Colon",
	Arrow:   "Arrow",
	Plus:    "Plus",
	Minus:   "Minus",
	Gt:      "Gt",
	Lt:      "Lt",
	GtEq:    "GtEq",
	LtEq:    "LtEq",
	BangEq:  "BangEq",
	EqEq:    "EqEq",
	Assign:  "Assign",
	Amp:     "Amp",
	Percent: "Percent",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// IsComparison reports whether the kind is one of the six comparison
// operators allowed at the top of an if expression.
func (k Kind) IsComparison() bool {
	switch k {
	case Gt, Lt, GtEq, LtEq, BangEq, EqEq:
		return true
	default:
		return false
	}
}
