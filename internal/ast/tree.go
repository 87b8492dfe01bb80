package ast

import (
	"tank/internal/source"
)

// Tree owns every node of one parsed template. Children are IDs into the
// same arena; nothing is shared and there are no back references. The tree
// is built during parsing and read-only afterwards.
type Tree struct {
	nodes *Arena[Node]
}

// NewTree creates an empty tree with an optional capacity hint.
func NewTree(capHint uint) *Tree {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Tree{
		nodes: NewArena[Node](capHint),
	}
}

// New allocates a node with no value.
func (t *Tree) New(kind NodeKind, sp source.Span) NodeID {
	return NodeID(t.nodes.Allocate(Node{Kind: kind, Span: sp}))
}

// NewValue allocates a leaf carrying a lexeme.
func (t *Tree) NewValue(kind NodeKind, sp source.Span, value string) NodeID {
	return NodeID(t.nodes.Allocate(Node{Kind: kind, Span: sp, Value: value}))
}

// Get returns the node for id, or nil for NoNodeID.
func (t *Tree) Get(id NodeID) *Node {
	return t.nodes.Get(uint32(id))
}

// AddChild appends child to parent's ordered child list.
func (t *Tree) AddChild(parent, child NodeID) {
	if !parent.IsValid() || !child.IsValid() {
		return
	}
	p := t.Get(parent)
	p.Children = append(p.Children, child)
}

// Len returns the number of allocated nodes.
func (t *Tree) Len() uint32 {
	return t.nodes.Len()
}

// Walk visits id and its subtree depth-first, children in order.
// The visitor returning false prunes the subtree below the node.
func (t *Tree) Walk(id NodeID, visit func(NodeID, *Node) bool) {
	n := t.Get(id)
	if n == nil {
		return
	}
	if !visit(id, n) {
		return
	}
	for _, c := range n.Children {
		t.Walk(c, visit)
	}
}
