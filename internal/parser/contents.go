package parser

import (
	"fmt"

	"tank/internal/ast"
	"tank/internal/diag"
	"tank/internal/token"
)

// parseContents joins content words and %name% interpolations into a
// Contents node: Contents := (Ident | "%" Ident "%")*. The loop stops when
// lookahead shows "ident(" — that identifier opens the next element, not a
// word of ours. A leading "&" is an include reference instead of contents.
// Interpolated names are not checked against the symbol table here; that
// happens at generation time.
func (p *Parser) parseContents() ast.NodeID {
	if p.at(token.Arrow) {
		p.err(diag.SynUnexpectedToken, fmt.Sprintf("unexpected token %q found", p.cur.Text))
	}

	switch {
	case p.at(token.Ident) || p.at(token.Percent):
		node := p.tree.New(ast.Contents, p.cur.Span)

		for p.at(token.Ident) || p.at(token.Percent) {
			if p.at(token.Ident) && p.peek() == token.LParen {
				break
			}

			if p.at(token.Percent) {
				p.advance()
				nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected variable name after '%'")
				if !ok {
					break
				}
				p.tree.AddChild(node, p.tree.NewValue(ast.VariableValue, nameTok.Span, nameTok.Text))
				p.expect(token.Percent, diag.SynExpectPercent, "expected closing '%' after variable name")
				continue
			}

			tok := p.advance()
			p.tree.AddChild(node, p.tree.NewValue(ast.Ident, tok.Span, tok.Text))
		}

		return node

	case p.at(token.Amp):
		return p.parseInclude()

	default:
		return p.tree.New(ast.EOF, p.cur.Span)
	}
}
