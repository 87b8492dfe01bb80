package lexer

import (
	"tank/internal/source"
	"tank/internal/token"
)

// Lexer scans one template file into tokens with a single token of
// lookahead. It scans strictly forward; there is no backtracking.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // single-slot lookahead buffer
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// Next returns the next significant token. After end of input it returns
// EOF forever.
func (lx *Lexer) Next() token.Token {
	// Drain the lookahead slot first.
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdent()
	case isDec(ch):
		return lx.scanNumber()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it. The token is stashed in
// the lookahead slot and handed back by the following Next.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan is a zero-length span at the current cursor position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// File returns the file this lexer scans.
func (lx *Lexer) File() *source.File {
	return lx.file
}
