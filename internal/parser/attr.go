package parser

import (
	"tank/internal/ast"
	"tank/internal/diag"
	"tank/internal/token"
)

// parseAttrList parses AttrList := "(" (Term ":" Term)* ")" "->". Pairs
// need no separator beyond whitespace; names and values land as
// alternating children. Missing colon, paren, or arrow are recoverable
// diagnostics — but once any error is on record the pair loop stops
// immediately so unrecoverable input cannot spin it forever.
func (p *Parser) parseAttrList() ast.NodeID {
	node := p.tree.New(ast.AttrList, p.cur.Span)

	p.expect(token.LParen, diag.SynExpectLeftParen, "expected '(' to open attribute list")

	for !p.at(token.RParen) && !p.at(token.EOF) {
		p.tree.AddChild(node, p.parseTerm())
		p.expect(token.Colon, diag.SynExpectColon, "expected ':' between attribute name and value")
		p.tree.AddChild(node, p.parseTerm())

		if p.IsError() {
			break
		}
	}

	p.expect(token.RParen, diag.SynExpectRightParen, "expected ')' to close attribute list")
	p.expect(token.Arrow, diag.SynExpectArrow, "expected '->' after attribute list")

	return node
}
