package symbols

import (
	"errors"
	"fmt"
	"sort"

	"tank/internal/ast"
)

// Sentinel errors for the fatal tier. Any of these reaching the caller must
// abort the compile; they are internal-consistency failures, not syntax
// diagnostics.
var (
	// ErrRedeclared indicates a name already present in the table.
	ErrRedeclared = errors.New("redeclared symbol")
	// ErrUntyped indicates a declaration whose identifier carries no type label.
	ErrUntyped = errors.New("variable declared without a type")
	// ErrMalformedNode indicates a structurally invalid node reached the table.
	ErrMalformedNode = errors.New("invalid ast node in symbol table")
)

// ConfigType is the type label given to config-seeded symbols.
const ConfigType = "String"

// Table is the flat name→symbol map built up while a template parses.
// One namespace serves both scopes: a for-loop variable occupies its name
// for the rest of the compile, exactly like a global.
type Table struct {
	syms map[string]Symbol
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		syms: make(map[string]Symbol),
	}
}

// FromConfig bulk-seeds Global symbols from an externally supplied
// name→literal mapping (the parsed configuration file) before parsing
// starts. Every seeded symbol gets the generic String type.
func FromConfig(mapping map[string]string) *Table {
	t := NewTable()
	for k, v := range mapping {
		t.syms[k] = Symbol{
			Name:  k,
			Type:  ConfigType,
			Value: v,
			Scope: ScopeGlobal,
		}
	}
	return t
}

// Insert records the binding of an AssignExpr node: the first child is the
// typed identifier, the second is the value. Structural violations and
// redeclarations come back as fatal errors.
func (t *Table) Insert(tree *ast.Tree, id ast.NodeID) error {
	node := tree.Get(id)
	if node == nil || node.Kind != ast.AssignExpr {
		return fmt.Errorf("%w: expected AssignExpr", ErrMalformedNode)
	}
	if len(node.Children) < 2 {
		return fmt.Errorf("%w: AssignExpr with %d children", ErrMalformedNode, len(node.Children))
	}

	ident := tree.Get(node.Children[0])
	value := tree.Get(node.Children[1])

	if ident.TypeLabel == "" {
		return fmt.Errorf("%w: %q", ErrUntyped, ident.Value)
	}
	if _, found := t.syms[ident.Value]; found {
		return fmt.Errorf("%w: %q", ErrRedeclared, ident.Value)
	}

	t.syms[ident.Value] = Symbol{
		Name:  ident.Value,
		Type:  ident.TypeLabel,
		Value: value.Value,
		Scope: ScopeGlobal,
	}
	return nil
}

// InsertForID records a for-loop iteration variable, keyed by its own name.
// Same fatal checks as Insert.
func (t *Table) InsertForID(tree *ast.Tree, id ast.NodeID) error {
	node := tree.Get(id)
	if node == nil || node.Kind != ast.Ident {
		return fmt.Errorf("%w: expected Ident for loop variable", ErrMalformedNode)
	}
	if node.TypeLabel == "" {
		return fmt.Errorf("%w: %q", ErrUntyped, node.Value)
	}
	if _, found := t.syms[node.Value]; found {
		return fmt.Errorf("%w: %q", ErrRedeclared, node.Value)
	}

	t.syms[node.Value] = Symbol{
		Name:  node.Value,
		Type:  node.TypeLabel,
		Value: node.Value,
		Scope: ScopeForLocal,
	}
	return nil
}

// Get looks a symbol up by name. Read-only; used by the generator to
// resolve %name% interpolation.
func (t *Table) Get(name string) (Symbol, bool) {
	s, ok := t.syms[name]
	return s, ok
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	return len(t.syms)
}

// Names returns all symbol names sorted, for deterministic listings.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.syms))
	for name := range t.syms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
