package doc

import (
	"encoding/json"
	"os"
)

// DebugNode mirrors a document node in a JSON-friendly shape, metrics
// included. It exists for inspecting layout decisions and plays no part
// in rendering.
type DebugNode struct {
	Kind        string       `json:"kind"`
	Text        string       `json:"text,omitempty"`
	Amount      int          `json:"amount,omitempty"`
	HasBreak    bool         `json:"hasBreak"`
	DistToBreak int          `json:"distToBreak"`
	FlatLen     int          `json:"flatLen"`
	Children    []*DebugNode `json:"children,omitempty"`
}

var kindNames = map[kind]string{
	kindEmpty:    "empty",
	kindText:     "text",
	kindLine:     "line",
	kindLineZero: "lineZero",
	kindConcat:   "concat",
	kindIndent:   "indent",
	kindGroup:    "group",
}

// Debug converts the document into its DebugNode mirror.
func Debug(d Doc) *DebugNode {
	return newDebugNode(d.n)
}

func newDebugNode(n *node) *DebugNode {
	d := Doc{n}
	out := &DebugNode{
		Kind:        kindNames[nodeKind(n)],
		HasBreak:    d.HasBreak(),
		DistToBreak: d.DistToBreak(),
		FlatLen:     d.FlatLen(),
	}
	if n == nil {
		return out
	}
	switch n.kind {
	case kindText:
		out.Text = n.text
	case kindIndent:
		out.Amount = n.amount
		out.Children = []*DebugNode{newDebugNode(n.lhs)}
	case kindGroup:
		out.Children = []*DebugNode{newDebugNode(n.lhs)}
	case kindConcat:
		out.Children = []*DebugNode{newDebugNode(n.lhs), newDebugNode(n.rhs)}
	}
	return out
}

// WriteDebugJSON writes the document's debug tree to path as indented
// JSON, for inspection or visualization.
func WriteDebugJSON(d Doc, path string) error {
	data, err := json.MarshalIndent(Debug(d), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
