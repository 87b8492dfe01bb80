package parser

import (
	"fmt"

	"tank/internal/diag"
	"tank/internal/source"
	"tank/internal/token"
)

func (p *Parser) at(k token.Kind) bool {
	return p.cur.Kind == k
}

// peek returns the kind of the token after the current one, without
// consuming anything.
func (p *Parser) peek() token.Kind {
	return p.lx.Peek().Kind
}

// advance consumes the current token, pulls the next one from the lexer,
// and returns what was consumed.
func (p *Parser) advance() token.Token {
	tok := p.cur
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	p.cur = p.lx.Next()
	return tok
}

// IsError reports whether this parse has recorded any error so far.
func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}

// getDiagnosticSpan picks the best span to point a diagnostic at. A
// zero-length EOF/Invalid token falls back to the position right after the
// last consumed token.
func (p *Parser) getDiagnosticSpan() source.Span {
	if (p.cur.Kind == token.EOF || p.cur.Kind == token.Invalid) && p.cur.Span.Empty() {
		if p.lastSpan.End > 0 {
			return source.Span{
				File:  p.lastSpan.File,
				Start: p.lastSpan.End,
				End:   p.lastSpan.End,
			}
		}
	}
	return p.cur.Span
}

// expect is the universal consumption guard: match and advance, or report
// expected-vs-found and stand still. No synthetic token is inserted; the
// caller must tolerate the malformed subtree that follows.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diag.SevError, diagSpan, fmt.Sprintf("%s, found %s", msg, describe(p.cur)))
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.cur.Text}, false
}

// err reports an error at the current position.
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

// warn reports a warning at the current position.
func (p *Parser) warn(code diag.Code, msg string) bool {
	return p.report(code, diag.SevWarning, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.opts.Reporter == nil {
		return false
	}
	if sev == diag.SevError {
		spent := p.opts.Enough()
		p.opts.CurrentErrors++
		if spent {
			return false
		}
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}

func describe(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", tok.Text)
}
