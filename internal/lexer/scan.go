package lexer

import (
	"fmt"

	"tank/internal/diag"
	"tank/internal/token"
)

// scanIdent scans an identifier or content word. Reserved words are not
// distinguished here: the parser compares lexemes.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Ident,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// scanNumber scans a run of decimal digits.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Number,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// scanOperatorOrPunct scans punctuation. Greedy: two-byte operators first,
// then single bytes.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	switch {
	case lx.try2('-', '>'):
		return emit(token.Arrow)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case ':':
		return emit(token.Colon)
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '>':
		return emit(token.Gt)
	case '<':
		return emit(token.Lt)
	case '=':
		return emit(token.Assign)
	case '&':
		return emit(token.Amp)
	case '%':
		return emit(token.Percent)
	default:
		tok := emit(token.Invalid)
		lx.errLex(diag.LexUnknownChar, tok.Span, fmt.Sprintf("unknown character %q", ch))
		return tok
	}
}
