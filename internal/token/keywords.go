package token

// Reserved words of the template language. They lex as Ident; keyword-ness
// is a lexeme comparison at parse time, so they only bite where an element
// is expected.
const (
	KwIf  = "if"
	KwFor = "for"
	KwLet = "let"

	// KwIn only matters inside a for header; it is an ordinary identifier
	// everywhere else.
	KwIn = "in"
)

var reserved = map[string]struct{}{
	KwIf:  {},
	KwFor: {},
	KwLet: {},
}

// IsReserved reports whether the lexeme is a reserved word.
// Case sensitive: only lowercase spellings are reserved.
func IsReserved(lexeme string) bool {
	_, ok := reserved[lexeme]
	return ok
}
