package parser

import (
	"fmt"

	"tank/internal/ast"
	"tank/internal/diag"
	"tank/internal/token"
)

// parseElement recognizes one element by its first token:
//
//	Element := "if" Expr "{" Element "}"
//	         | "for" Ident ":" Type "in" Ident "{" Element "}"
//	         | "let" AssignExpr
//	         | Term [AttrList] (Element | Contents)
//	         | "{" Element "}"
//	         | "&" Ident
//	         | ε -> EOF
//
// Reserved words are lexeme comparisons on Ident tokens, so they only bind
// here, where an element is expected. The returned error is the fatal tier;
// syntax problems are reported and parsing continues.
func (p *Parser) parseElement() (ast.NodeID, error) {
	switch {
	case p.at(token.Ident):
		switch p.cur.Text {
		case token.KwIf:
			return p.parseIf()
		case token.KwFor:
			return p.parseFor()
		case token.KwLet:
			return p.parseLet()
		default:
			return p.parseTagElement()
		}

	case p.at(token.LBrace):
		// "{" Element "}" — the braces group, they add no node.
		p.advance()
		inner, err := p.parseBody()
		if err != nil {
			return ast.NoNodeID, err
		}
		p.expect(token.RBrace, diag.SynExpectRightBrace, "expected '}' to close element group")
		return inner, nil

	case p.at(token.Amp):
		return p.parseInclude(), nil

	case p.at(token.EOF):
		// A valid terminal marker, not a failure.
		return p.tree.New(ast.EOF, p.cur.Span), nil

	default:
		tok := p.advance()
		p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span,
			fmt.Sprintf("unexpected token %s where an element is expected", describe(tok)))
		return ast.NoNodeID, nil
	}
}

// parseBody parses the element inside braces. An immediately closing brace
// is an empty body: a valid EOF node plus a warning, so "if x > 1 { }"
// still compiles. The brace itself stays for the caller's expect.
func (p *Parser) parseBody() (ast.NodeID, error) {
	if p.at(token.RBrace) {
		p.warn(diag.SynEmptyBody, "empty element body")
		return p.tree.New(ast.EOF, p.cur.Span), nil
	}
	return p.parseElement()
}

// parseIf builds IfExpr with exactly two children: the comparison and the
// braced body. Whatever follows the closing brace is a sibling at the
// template root — continuation chaining stands in for else.
func (p *Parser) parseIf() (ast.NodeID, error) {
	kw := p.advance() // "if"
	node := p.tree.New(ast.IfExpr, kw.Span)

	cond := p.parseExpr()
	if c := p.tree.Get(cond); c != nil && !c.Kind.IsComparison() {
		p.report(diag.SynExpectComparison, diag.SevError, c.Span,
			"if condition must be a single comparison")
	}
	p.tree.AddChild(node, cond)

	p.expect(token.LBrace, diag.SynExpectLeftBrace, "expected '{' after if condition")
	body, err := p.parseBody()
	if err != nil {
		return ast.NoNodeID, err
	}
	p.tree.AddChild(node, body)
	p.expect(token.RBrace, diag.SynExpectRightBrace, "expected '}' to close if body")

	return node, nil
}

// parseFor builds ForExpr with three children: the typed iteration
// variable, the collection, and the braced body. The variable registers as
// ForLocal before the body parses so references inside it resolve.
func (p *Parser) parseFor() (ast.NodeID, error) {
	kw := p.advance() // "for"
	node := p.tree.New(ast.ForExpr, kw.Span)

	iter := p.parseTerm()
	p.expect(token.Colon, diag.SynExpectColon, "expected ':' after loop variable")
	if typeTok, ok := p.expect(token.Ident, diag.SynExpectType, "expected type name in for loop header"); ok {
		p.tree.Get(iter).TypeLabel = typeTok.Text
	}
	if err := p.syms.InsertForID(p.tree, iter); err != nil {
		return ast.NoNodeID, err
	}
	p.tree.AddChild(node, iter)

	if p.at(token.Ident) && p.cur.Text == token.KwIn {
		p.advance()
	} else {
		p.err(diag.SynForMissingIn, "expected 'in' at for loop")
	}
	p.tree.AddChild(node, p.parseTerm())

	p.expect(token.LBrace, diag.SynExpectLeftBrace, "expected '{' after for loop header")
	body, err := p.parseBody()
	if err != nil {
		return ast.NoNodeID, err
	}
	p.tree.AddChild(node, body)
	p.expect(token.RBrace, diag.SynExpectRightBrace, "expected '}' to close for body")

	return node, nil
}

// parseLet wraps an AssignExpr in an Element and registers the binding
// right away: later siblings may reference it, earlier ones may not.
func (p *Parser) parseLet() (ast.NodeID, error) {
	kw := p.advance() // "let"
	node := p.tree.New(ast.Element, kw.Span)

	assign := p.parseExpr()
	if err := p.syms.Insert(p.tree, assign); err != nil {
		return ast.NoNodeID, err
	}
	p.tree.AddChild(node, assign)

	return node, nil
}

// parseInclude yields an Include leaf. Resolving the referenced file is the
// generator's job, not ours.
func (p *Parser) parseInclude() ast.NodeID {
	p.advance() // "&"
	nameTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected file name after '&'")
	return p.tree.NewValue(ast.Include, nameTok.Span, nameTok.Text)
}

// parseTagElement is a tag declaration: Term [AttrList] (Element|Contents).
// One token of lookahead decides the third child: "{" opens a nested
// braced element, "ident(" starts an unbraced one, anything else is the
// element's contents.
func (p *Parser) parseTagElement() (ast.NodeID, error) {
	node := p.tree.New(ast.Element, p.cur.Span)
	p.tree.AddChild(node, p.parseTerm())

	if p.at(token.LParen) {
		p.tree.AddChild(node, p.parseAttrList())
	}

	switch {
	case p.at(token.LBrace):
		p.advance()
		inner, err := p.parseBody()
		if err != nil {
			return ast.NoNodeID, err
		}
		p.tree.AddChild(node, inner)
		p.expect(token.RBrace, diag.SynExpectRightBrace, "expected '}' to close nested element")

	case p.at(token.Ident) && !p.cur.IsReserved() && p.peek() == token.LParen:
		inner, err := p.parseElement()
		if err != nil {
			return ast.NoNodeID, err
		}
		p.tree.AddChild(node, inner)

	default:
		p.tree.AddChild(node, p.parseContents())
	}

	return node, nil
}
