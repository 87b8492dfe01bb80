package token

import (
	"tank/internal/source"
)

// Token represents a single template token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token can stand as a term on its own.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Ident, Number:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case LParen, RParen, LBrace, RBrace, Colon, Arrow, Plus, Minus,
		Gt, Lt, GtEq, LtEq, BangEq, EqEq, Assign, Amp, Percent:
		return true
	default:
		return false
	}
}

// IsReserved reports whether the token is an identifier spelling one of the
// reserved words. Reserved words have no kind of their own: the lexer emits
// Ident and the parser decides by lexeme.
func (t Token) IsReserved() bool {
	return t.Kind == Ident && IsReserved(t.Text)
}
