package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"tank/internal/ast"
)

// FormatAstPretty dumps the subtree rooted at id, one node per line,
// indentation mirroring depth.
func FormatAstPretty(w io.Writer, tree *ast.Tree, id ast.NodeID) error {
	var walk func(id ast.NodeID, depth int)
	walk = func(id ast.NodeID, depth int) {
		n := tree.Get(id)
		if n == nil {
			return
		}
		fmt.Fprintf(w, "%s%s", strings.Repeat("  ", depth), n.Kind)
		if n.Value != "" {
			fmt.Fprintf(w, " %q", n.Value)
		}
		if n.TypeLabel != "" {
			fmt.Fprintf(w, " : %s", n.TypeLabel)
		}
		fmt.Fprintln(w)
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(id, 0)
	return nil
}

// NodeOutput is the JSON shape for one tree node.
type NodeOutput struct {
	Kind     string       `json:"kind"`
	Value    string       `json:"value,omitempty"`
	Type     string       `json:"type,omitempty"`
	Children []NodeOutput `json:"children,omitempty"`
}

// FormatAstJSON writes the subtree rooted at id as nested JSON.
func FormatAstJSON(w io.Writer, tree *ast.Tree, id ast.NodeID) error {
	var build func(id ast.NodeID) NodeOutput
	build = func(id ast.NodeID) NodeOutput {
		n := tree.Get(id)
		if n == nil {
			return NodeOutput{}
		}
		out := NodeOutput{
			Kind:  n.Kind.String(),
			Value: n.Value,
			Type:  n.TypeLabel,
		}
		for _, c := range n.Children {
			out.Children = append(out.Children, build(c))
		}
		return out
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(build(id))
}
