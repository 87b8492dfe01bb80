package ast

import (
	"tank/internal/source"
)

// NodeKind tags the closed set of template tree nodes.
type NodeKind uint8

const (
	// Empty is a placeholder node from an error-recovery path.
	Empty NodeKind = iota
	// Template is the root of one parsed template.
	Template
	// Element is a structural unit: tag declaration, conditional wrapper,
	// loop wrapper, or assignment wrapper.
	Element
	// ElementName names a declared tag (the identifier before '(').
	ElementName
	// IfExpr is a conditional: children are the comparison and the body.
	IfExpr
	// ForExpr is a loop: children are the iteration variable, the
	// collection, and the body.
	ForExpr
	// AssignExpr is a let binding: children are the typed identifier and
	// the value.
	AssignExpr
	// AttrList holds attribute name/value pairs as alternating children.
	AttrList
	// Ident is a plain identifier or content word.
	Ident
	// Number is a decimal number literal.
	Number
	// Contents is the literal/interpolated body of an element.
	Contents
	// VariableValue is a %name% interpolation; resolved at generation time.
	VariableValue
	// Include is a &name reference to another template file.
	Include

	// Comparison kinds; exactly one per if expression.
	Gt
	Lt
	GtEq
	LtEq
	NotEq
	EqEq

	// Arithmetic kinds, one precedence tier, left-associative.
	Plus
	Minus

	// EOF marks end of input where an element was expected. A valid
	// terminal, distinct from failure.
	EOF
)

var nodeKindNames = [...]string{
	Empty:         "Empty",
	Template:      "Template",
	Element:       "Element",
	ElementName:   "ElementName",
	IfExpr:        "IfExpr",
	ForExpr:       "ForExpr",
	AssignExpr:    "AssignExpr",
	AttrList:      "AttrList",
	Ident:         "Ident",
	Number:        "Number",
	Contents:      "Contents",
	VariableValue: "VariableValue",
	Include:       "Include",
	Gt:            "Gt",
	Lt:            "Lt",
	GtEq:          "GtEq",
	LtEq:          "LtEq",
	NotEq:         "NotEq",
	EqEq:          "EqEq",
	Plus:          "Plus",
	Minus:         "Minus",
	EOF:           "EOF",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "Unknown"
}

// IsComparison reports whether the kind is a comparison operator node.
func (k NodeKind) IsComparison() bool {
	switch k {
	case Gt, Lt, GtEq, LtEq, NotEq, EqEq:
		return true
	default:
		return false
	}
}

// NodeID addresses a node inside its tree's arena.
type NodeID uint32

// NoNodeID is the invalid node ID.
const NoNodeID NodeID = 0

func (id NodeID) IsValid() bool { return id != NoNodeID }

// Node is one tree node. Value and TypeLabel mean different things per
// kind: Value is the lexeme for leaves (Ident, Number, Include,
// VariableValue, ElementName); TypeLabel is the declared type on the
// identifier of an AssignExpr or a for-loop variable.
type Node struct {
	Kind      NodeKind
	Span      source.Span
	Value     string
	TypeLabel string
	Children  []NodeID
}
