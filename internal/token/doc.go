// Package token defines the lexical vocabulary of tank templates: token
// kinds, the token value type, and the reserved-word table shared between
// the lexer and the parser.
package token
