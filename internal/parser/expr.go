package parser

import (
	"fmt"

	"tank/internal/ast"
	"tank/internal/diag"
	"tank/internal/token"
)

// parseExpr parses one expression: Expr := Op (CompareOp Op | ":" Type "=" Op)?
// Comparisons apply only here, at the top level, and never chain — exactly
// one per expression. The colon form is a declaration and yields AssignExpr
// whose first child is the identifier carrying the type label.
func (p *Parser) parseExpr() ast.NodeID {
	lhs := p.parseOp()

	switch {
	case p.cur.Kind.IsComparison():
		op := p.advance()
		node := p.tree.New(comparisonNodeKind(op.Kind), op.Span)
		p.tree.AddChild(node, lhs)
		p.tree.AddChild(node, p.parseOp())
		return node

	case p.at(token.Colon):
		p.advance()
		node := p.tree.New(ast.AssignExpr, p.tree.Get(lhs).Span)
		if typeTok, ok := p.expect(token.Ident, diag.SynExpectType, "expected type name after ':'"); ok {
			p.tree.Get(lhs).TypeLabel = typeTok.Text
		}
		p.expect(token.Assign, diag.SynExpectAssign, "expected '=' in declaration")
		p.tree.AddChild(node, lhs)
		p.tree.AddChild(node, p.parseOp())
		return node

	default:
		return lhs
	}
}

// parseOp parses left-associative '+'/'-' chains, the single arithmetic
// precedence tier: Op := Term (("+"|"-") Term)*.
func (p *Parser) parseOp() ast.NodeID {
	lhs := p.parseTerm()

	for p.at(token.Plus) || p.at(token.Minus) {
		op := p.advance()
		kind := ast.Plus
		if op.Kind == token.Minus {
			kind = ast.Minus
		}
		node := p.tree.New(kind, op.Span)
		p.tree.AddChild(node, lhs)
		p.tree.AddChild(node, p.parseTerm())
		lhs = node
	}

	return lhs
}

// parseTerm parses Term := Ident | Number | "(" Expr ")" | Eof. An
// identifier directly followed by '(' is an element declaration, which the
// single token of lookahead decides.
func (p *Parser) parseTerm() ast.NodeID {
	switch p.cur.Kind {
	case token.Ident:
		kind := ast.Ident
		if p.peek() == token.LParen {
			kind = ast.ElementName
		}
		tok := p.advance()
		return p.tree.NewValue(kind, tok.Span, tok.Text)

	case token.Number:
		tok := p.advance()
		return p.tree.NewValue(ast.Number, tok.Span, tok.Text)

	case token.LParen:
		p.advance()
		e := p.parseExpr()
		p.expect(token.RParen, diag.SynExpectRightParen, "expected ')' to close grouped expression")
		return e

	case token.EOF:
		return p.tree.New(ast.EOF, p.cur.Span)

	default:
		tok := p.advance()
		p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span,
			fmt.Sprintf("unexpected token %s found", describe(tok)))
		return p.tree.New(ast.Empty, tok.Span)
	}
}

func comparisonNodeKind(k token.Kind) ast.NodeKind {
	switch k {
	case token.Gt:
		return ast.Gt
	case token.Lt:
		return ast.Lt
	case token.GtEq:
		return ast.GtEq
	case token.LtEq:
		return ast.LtEq
	case token.BangEq:
		return ast.NotEq
	case token.EqEq:
		return ast.EqEq
	default:
		return ast.Empty
	}
}
