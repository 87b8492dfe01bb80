package lexer

import (
	"tank/internal/diag"
	"tank/internal/source"
)

// Options configure one Lexer instance.
type Options struct {
	// Reporter receives lexical diagnostics. May be nil: problems are then
	// dropped, but scanning continues either way.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
