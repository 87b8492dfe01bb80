package parser

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"tank/internal/ast"
	"tank/internal/diag"
	"tank/internal/lexer"
	"tank/internal/source"
	"tank/internal/symbols"
)

// parseTestSource прогоняет строку через лексер и парсер с общим мешком
// диагностик.
func parseTestSource(t *testing.T, input string, syms *symbols.Table) (Result, *diag.Bag, error) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.tank", []byte(input)))

	bag := diag.NewBag(64)
	lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})
	res, err := ParseTemplate(lx, syms, Options{Reporter: &diag.BagReporter{Bag: bag}})
	return res, bag, err
}

func mustParse(t *testing.T, input string) (Result, *diag.Bag) {
	t.Helper()
	res, bag, err := parseTestSource(t, input, nil)
	if err != nil {
		t.Fatalf("fatal parse error: %v", err)
	}
	return res, bag
}

func mustParseClean(t *testing.T, input string) Result {
	t.Helper()
	res, bag := mustParse(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
	}
	return res
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	items := bag.Items()
	if len(items) == 0 {
		return "<none>"
	}
	lines := make([]string, len(items))
	for i, d := range items {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func childKinds(tree *ast.Tree, id ast.NodeID) []ast.NodeKind {
	n := tree.Get(id)
	kinds := make([]ast.NodeKind, len(n.Children))
	for i, c := range n.Children {
		kinds[i] = tree.Get(c).Kind
	}
	return kinds
}

func expectKinds(t *testing.T, tree *ast.Tree, id ast.NodeID, want ...ast.NodeKind) {
	t.Helper()
	got := childKinds(tree, id)
	if len(got) != len(want) {
		t.Fatalf("children = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("children = %v, want %v", got, want)
		}
	}
}

func child(tree *ast.Tree, id ast.NodeID, i int) *ast.Node {
	return tree.Get(tree.Get(id).Children[i])
}

func childID(tree *ast.Tree, id ast.NodeID, i int) ast.NodeID {
	return tree.Get(id).Children[i]
}

// dumpTree линейно печатает поддерево, для сравнения на детерминизм.
func dumpTree(tree *ast.Tree, id ast.NodeID) string {
	var sb strings.Builder
	var walk func(id ast.NodeID, depth int)
	walk = func(id ast.NodeID, depth int) {
		n := tree.Get(id)
		if n == nil {
			return
		}
		fmt.Fprintf(&sb, "%s%s %q %s\n", strings.Repeat(" ", depth), n.Kind, n.Value, n.TypeLabel)
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(id, 0)
	return sb.String()
}

func TestEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   \n\t  ", "// only a comment\n", "/* block */"} {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			res, bag := mustParse(t, input)

			if !bag.HasErrors() {
				t.Fatal("empty input must produce at least one error")
			}
			if !hasCode(bag, diag.SynEmptyInput) {
				t.Errorf("missing SynEmptyInput: %s", diagnosticsSummary(bag))
			}
			root := res.Tree.Get(res.Root)
			if root.Kind != ast.Template {
				t.Errorf("root kind = %v", root.Kind)
			}
			if len(root.Children) != 0 {
				t.Errorf("root children = %v", childKinds(res.Tree, res.Root))
			}
		})
	}
}

func TestTagElementShape(t *testing.T) {
	res := mustParseClean(t, "div() -> divContents")

	expectKinds(t, res.Tree, res.Root, ast.Element)
	el := childID(res.Tree, res.Root, 0)
	expectKinds(t, res.Tree, el, ast.ElementName, ast.AttrList, ast.Contents)

	if name := child(res.Tree, el, 0); name.Value != "div" {
		t.Errorf("element name = %q", name.Value)
	}
	contents := childID(res.Tree, el, 2)
	expectKinds(t, res.Tree, contents, ast.Ident)
	if word := child(res.Tree, contents, 0); word.Value != "divContents" {
		t.Errorf("contents word = %q", word.Value)
	}
}

func TestContentsManyWords(t *testing.T) {
	res := mustParseClean(t, "p() -> hello beautiful world")

	el := childID(res.Tree, res.Root, 0)
	contents := childID(res.Tree, el, 2)
	expectKinds(t, res.Tree, contents, ast.Ident, ast.Ident, ast.Ident)
}

func TestIfShape(t *testing.T) {
	res := mustParseClean(t, "if x > 10 { p() -> hello } div() -> bye")

	// IfExpr first, the following element is a root sibling, in source order.
	expectKinds(t, res.Tree, res.Root, ast.IfExpr, ast.Element)

	ifNode := childID(res.Tree, res.Root, 0)
	expectKinds(t, res.Tree, ifNode, ast.Gt, ast.Element)

	cond := childID(res.Tree, ifNode, 0)
	expectKinds(t, res.Tree, cond, ast.Ident, ast.Number)
	if lhs := child(res.Tree, cond, 0); lhs.Value != "x" {
		t.Errorf("cond lhs = %q", lhs.Value)
	}
	if rhs := child(res.Tree, cond, 1); rhs.Value != "10" {
		t.Errorf("cond rhs = %q", rhs.Value)
	}
}

func TestIfConditionOperators(t *testing.T) {
	tests := []struct {
		op   string
		kind ast.NodeKind
	}{
		{">", ast.Gt},
		{"<", ast.Lt},
		{">=", ast.GtEq},
		{"<=", ast.LtEq},
		{"!=", ast.NotEq},
		{"==", ast.EqEq},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			res := mustParseClean(t, fmt.Sprintf("if x %s 1 { p() -> y }", tt.op))
			ifNode := childID(res.Tree, res.Root, 0)
			if cond := child(res.Tree, ifNode, 0); cond.Kind != tt.kind {
				t.Errorf("cond kind = %v, want %v", cond.Kind, tt.kind)
			}
		})
	}
}

func TestIfArithmeticCondition(t *testing.T) {
	res := mustParseClean(t, "if x + 1 > y - 2 { p() -> z }")

	ifNode := childID(res.Tree, res.Root, 0)
	cond := childID(res.Tree, ifNode, 0)
	expectKinds(t, res.Tree, cond, ast.Plus, ast.Minus)

	plus := childID(res.Tree, cond, 0)
	expectKinds(t, res.Tree, plus, ast.Ident, ast.Number)
}

func TestIfNonComparisonCondition(t *testing.T) {
	_, bag := mustParse(t, "if x { p() -> y }")
	if !hasCode(bag, diag.SynExpectComparison) {
		t.Fatalf("missing SynExpectComparison: %s", diagnosticsSummary(bag))
	}
}

func TestEmptyIfBodyCompiles(t *testing.T) {
	res, bag := mustParse(t, "if x > 1 { } div() -> next")

	// An empty body is a warning, never an error: generation stays unblocked
	// and the element after the braces chains as a root sibling.
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
	}
	if !hasCode(bag, diag.SynEmptyBody) {
		t.Fatalf("missing SynEmptyBody warning: %s", diagnosticsSummary(bag))
	}

	expectKinds(t, res.Tree, res.Root, ast.IfExpr, ast.Element)
	ifNode := childID(res.Tree, res.Root, 0)
	expectKinds(t, res.Tree, ifNode, ast.Gt, ast.EOF)
}

func TestEmptyBracedBodies(t *testing.T) {
	for _, input := range []string{
		"for x: Int in xs { }",
		"div() -> { }",
		"{ }",
	} {
		t.Run(input, func(t *testing.T) {
			_, bag := mustParse(t, input)
			if bag.HasErrors() {
				t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
			}
			if !hasCode(bag, diag.SynEmptyBody) {
				t.Fatalf("missing SynEmptyBody warning: %s", diagnosticsSummary(bag))
			}
		})
	}
}

func TestUnclosedBraceRecovers(t *testing.T) {
	res, bag := mustParse(t, "if x > 10 { p() -> hello")

	if !bag.HasErrors() {
		t.Fatal("unclosed brace must produce errors")
	}
	if !hasCode(bag, diag.SynExpectRightBrace) {
		t.Errorf("missing SynExpectRightBrace: %s", diagnosticsSummary(bag))
	}
	// The tree still came out; parsing reached the end of input.
	if res.Tree.Get(res.Root).Kind != ast.Template {
		t.Error("no usable tree after recovery")
	}
}

func TestBracedNestedElement(t *testing.T) {
	res := mustParseClean(t, "div() -> { p() -> x }")

	el := childID(res.Tree, res.Root, 0)
	expectKinds(t, res.Tree, el, ast.ElementName, ast.AttrList, ast.Element)

	inner := childID(res.Tree, el, 2)
	if name := child(res.Tree, inner, 0); name.Value != "p" {
		t.Errorf("inner element name = %q", name.Value)
	}
}

func TestUnbracedNestedElement(t *testing.T) {
	res := mustParseClean(t, "div() -> p() -> x")

	el := childID(res.Tree, res.Root, 0)
	expectKinds(t, res.Tree, el, ast.ElementName, ast.AttrList, ast.Element)
}

func TestStandaloneBracedGroup(t *testing.T) {
	// Braces group; they add no node of their own.
	res := mustParseClean(t, "{ div() -> x }")
	expectKinds(t, res.Tree, res.Root, ast.Element)
}

func TestAttrList(t *testing.T) {
	res := mustParseClean(t, "div(class: main id: box) -> text")

	el := childID(res.Tree, res.Root, 0)
	attrs := childID(res.Tree, el, 1)
	expectKinds(t, res.Tree, attrs, ast.Ident, ast.Ident, ast.Ident, ast.Ident)

	names := []string{"class", "main", "id", "box"}
	for i, want := range names {
		if got := child(res.Tree, attrs, i).Value; got != want {
			t.Errorf("attr child %d = %q, want %q", i, got, want)
		}
	}
}

func TestAttrListMissingColon(t *testing.T) {
	_, bag := mustParse(t, "div(class main) -> x")
	if !hasCode(bag, diag.SynExpectColon) {
		t.Fatalf("missing SynExpectColon: %s", diagnosticsSummary(bag))
	}
}

func TestAttrListUnclosed(t *testing.T) {
	res, bag := mustParse(t, "div(class: main -> x")

	if !bag.HasErrors() {
		t.Fatal("unclosed attribute list must produce errors")
	}
	// Recovery must not loop; the tree still comes out.
	if res.Tree.Len() == 0 {
		t.Error("no nodes allocated")
	}
}

func TestMissingArrow(t *testing.T) {
	_, bag := mustParse(t, "div() text")
	if !hasCode(bag, diag.SynExpectArrow) {
		t.Fatalf("missing SynExpectArrow: %s", diagnosticsSummary(bag))
	}
}

func TestLetDeclaration(t *testing.T) {
	res := mustParseClean(t, "let x: Int = 10")

	expectKinds(t, res.Tree, res.Root, ast.Element)
	letEl := childID(res.Tree, res.Root, 0)
	expectKinds(t, res.Tree, letEl, ast.AssignExpr)

	assign := childID(res.Tree, letEl, 0)
	expectKinds(t, res.Tree, assign, ast.Ident, ast.Number)
	ident := child(res.Tree, assign, 0)
	if ident.Value != "x" || ident.TypeLabel != "Int" {
		t.Errorf("ident = %+v", ident)
	}

	sym, ok := res.Symbols.Get("x")
	if !ok {
		t.Fatal("symbol x not recorded")
	}
	if sym.Type != "Int" || sym.Value != "10" || sym.Scope != symbols.ScopeGlobal {
		t.Errorf("symbol = %+v", sym)
	}
}

func TestLetRedeclarationIsFatal(t *testing.T) {
	_, _, err := parseTestSource(t, "let x: Int = 1 let x: Int = 2", nil)
	if !errors.Is(err, symbols.ErrRedeclared) {
		t.Fatalf("err = %v, want ErrRedeclared", err)
	}
}

func TestLetWithoutTypeIsFatal(t *testing.T) {
	_, _, err := parseTestSource(t, "let x: = 10", nil)
	if !errors.Is(err, symbols.ErrUntyped) {
		t.Fatalf("err = %v, want ErrUntyped", err)
	}
}

func TestLetWithoutColonIsFatal(t *testing.T) {
	// Без двоеточия разбирается голый Ident, а не AssignExpr.
	_, _, err := parseTestSource(t, "let x = 10", nil)
	if !errors.Is(err, symbols.ErrMalformedNode) {
		t.Fatalf("err = %v, want ErrMalformedNode", err)
	}
}

func TestForLoop(t *testing.T) {
	res := mustParseClean(t, "for item: String in items { li() -> %item% }")

	expectKinds(t, res.Tree, res.Root, ast.ForExpr)
	forNode := childID(res.Tree, res.Root, 0)
	expectKinds(t, res.Tree, forNode, ast.Ident, ast.Ident, ast.Element)

	iter := child(res.Tree, forNode, 0)
	if iter.Value != "item" || iter.TypeLabel != "String" {
		t.Errorf("iteration variable = %+v", iter)
	}
	if coll := child(res.Tree, forNode, 1); coll.Value != "items" {
		t.Errorf("collection = %q", coll.Value)
	}

	sym, ok := res.Symbols.Get("item")
	if !ok || sym.Scope != symbols.ScopeForLocal {
		t.Errorf("loop variable symbol = %+v, ok = %v", sym, ok)
	}
}

func TestForMissingIn(t *testing.T) {
	_, bag := mustParse(t, "for item: String items { li() -> x }")
	if !hasCode(bag, diag.SynForMissingIn) {
		t.Fatalf("missing SynForMissingIn: %s", diagnosticsSummary(bag))
	}
}

func TestForVariableConflictsWithLet(t *testing.T) {
	// Flat namespace: the loop variable occupies its name for the rest of
	// the compile.
	_, _, err := parseTestSource(t, "for x: Int in xs { p() -> y } let x: Int = 1", nil)
	if !errors.Is(err, symbols.ErrRedeclared) {
		t.Fatalf("err = %v, want ErrRedeclared", err)
	}
}

func TestIncludeAtRoot(t *testing.T) {
	res := mustParseClean(t, "&header div() -> x")

	expectKinds(t, res.Tree, res.Root, ast.Include, ast.Element)
	if inc := child(res.Tree, res.Root, 0); inc.Value != "header" {
		t.Errorf("include value = %q", inc.Value)
	}
}

func TestIncludeAsContents(t *testing.T) {
	res := mustParseClean(t, "div() -> &header")

	el := childID(res.Tree, res.Root, 0)
	expectKinds(t, res.Tree, el, ast.ElementName, ast.AttrList, ast.Include)
}

func TestInterpolation(t *testing.T) {
	res := mustParseClean(t, "p() -> hello %name% world")

	el := childID(res.Tree, res.Root, 0)
	contents := childID(res.Tree, el, 2)
	expectKinds(t, res.Tree, contents, ast.Ident, ast.VariableValue, ast.Ident)

	if v := child(res.Tree, contents, 1); v.Value != "name" {
		t.Errorf("interpolated name = %q", v.Value)
	}
}

func TestInterpolationMissingClosingPercent(t *testing.T) {
	_, bag := mustParse(t, "p() -> %name")
	if !hasCode(bag, diag.SynExpectPercent) {
		t.Fatalf("missing SynExpectPercent: %s", diagnosticsSummary(bag))
	}
}

func TestSeededSymbolsResolve(t *testing.T) {
	syms := symbols.FromConfig(map[string]string{"siteName": "Tank"})
	res, bag, err := parseTestSource(t, "h1() -> %siteName%", syms)
	if err != nil {
		t.Fatalf("fatal: %v", err)
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(bag))
	}
	if res.Symbols.Len() != 1 {
		t.Errorf("Symbols.Len() = %d", res.Symbols.Len())
	}
}

func TestUnexpectedTokenAtTopLevel(t *testing.T) {
	res, bag := mustParse(t, ") div() -> x")

	if !hasCode(bag, diag.SynUnexpectedToken) {
		t.Fatalf("missing SynUnexpectedToken: %s", diagnosticsSummary(bag))
	}
	// Recovery: the element after the bad token still parses.
	expectKinds(t, res.Tree, res.Root, ast.Element)
}

func TestErrorBudget(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.tank", []byte(") ) ) )")))

	bag := diag.NewBag(64)
	lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})
	_, err := ParseTemplate(lx, nil, Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: 2,
	})
	if err != nil {
		t.Fatalf("fatal: %v", err)
	}
	if bag.Len() != 2 {
		t.Fatalf("bag recorded %d diagnostics, want exactly the budget of 2: %s",
			bag.Len(), diagnosticsSummary(bag))
	}
}

func TestDanglingArrowContents(t *testing.T) {
	_, bag := mustParse(t, "div() -> ->")
	if !bag.HasErrors() {
		t.Fatal("dangling arrow must produce an error")
	}
}

func TestRootSpanCoversTemplate(t *testing.T) {
	res := mustParseClean(t, "div() -> hello")
	root := res.Tree.Get(res.Root)
	if root.Span.Start != 0 || root.Span.End == 0 {
		t.Errorf("root span = %+v", root.Span)
	}
}

func TestDeterministicOutput(t *testing.T) {
	const input = "let x: Int = 10 if x > 5 { div(class: big) -> %x% } p() -> done"

	first := mustParseClean(t, input)
	second := mustParseClean(t, input)

	if dumpTree(first.Tree, first.Root) != dumpTree(second.Tree, second.Root) {
		t.Error("same input produced different trees")
	}
}
