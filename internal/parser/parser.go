package parser

import (
	"tank/internal/ast"
	"tank/internal/diag"
	"tank/internal/lexer"
	"tank/internal/source"
	"tank/internal/symbols"
	"tank/internal/token"
)

// Options configure one parse.
type Options struct {
	// MaxErrors is the error budget; 0 means unlimited. Past the budget,
	// diagnostics stop being recorded but parsing still runs to the end.
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is spent.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Result carries everything a parse hands to the generator: the tree, its
// Template root, the symbol table, and the diagnostic bag (when the
// reporter was a BagReporter). The caller must check Bag.HasErrors before
// generating.
type Result struct {
	Tree    *ast.Tree
	Root    ast.NodeID
	Symbols *symbols.Table
	Bag     *diag.Bag
}

// Parser is the state for parsing one template. It owns the current token;
// the lexer supplies one more token of lookahead, which is all the grammar
// needs (ElementName vs Ident, nested element vs contents).
type Parser struct {
	lx       *lexer.Lexer
	tree     *ast.Tree
	syms     *symbols.Table
	root     ast.NodeID
	opts     Options
	cur      token.Token
	lastSpan source.Span // span of the last consumed token, for diagnostics at EOF
}

// ParseTemplate parses one template into a tree rooted at a Template node.
//
// Two failure tiers: syntax problems go to opts.Reporter and parsing
// continues past them; the returned error is reserved for fatal
// internal-consistency failures (symbol table violations) and means the
// compile must abort.
func ParseTemplate(lx *lexer.Lexer, syms *symbols.Table, opts Options) (Result, error) {
	if syms == nil {
		syms = symbols.NewTable()
	}
	p := Parser{
		lx:       lx,
		tree:     ast.NewTree(0),
		syms:     syms,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}
	p.cur = lx.Next()
	p.root = p.tree.New(ast.Template, p.cur.Span)

	err := p.parseTemplate()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		Tree:    p.tree,
		Root:    p.root,
		Symbols: syms,
		Bag:     bag,
	}, err
}

// parseTemplate is the top loop: Template := Element*. Elements parsed here
// become the root's children in source order; that includes each element
// that syntactically follows an if/let construct (continuation chaining).
func (p *Parser) parseTemplate() error {
	start := p.cur.Span
	if p.at(token.EOF) {
		p.err(diag.SynEmptyInput, "end of input reached, nothing to parse")
	}
	for !p.at(token.EOF) {
		id, err := p.parseElement()
		if err != nil {
			return err
		}
		if id.IsValid() {
			p.tree.AddChild(p.root, id)
		}
	}
	p.tree.Get(p.root).Span = start.Cover(p.cur.Span)
	return nil
}
