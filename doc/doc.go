// Package doc implements a width-aware pretty-printing algebra in the
// Wadler/Hughes tradition. Clients build an immutable tree of Doc values
// describing text with optional break points, then Render lays the tree
// out against a line width budget: each Group renders flat (breaks become
// spaces or nothing) when its flat form fits the remaining room on the
// line, and broken (breaks become newline plus indentation) otherwise.
//
// The metrics the layout decision needs are computed once, when nodes are
// constructed, so rendering never rescans a subtree, and the renderer is
// an explicit work list rather than recursion, so document depth is
// bounded by the heap alone.
package doc

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// kind enumerates the node variants of a document tree.
type kind uint8

const (
	kindEmpty kind = iota
	kindText
	kindLine
	kindLineZero
	kindConcat
	kindIndent
	kindGroup
)

// node is the payload behind a Doc. Nodes are immutable after
// construction and shared freely between documents; a node may appear
// under any number of parents.
type node struct {
	kind kind

	// kindText payload. width is the display width of text in terminal
	// columns, measured once at construction.
	text  string
	width int

	// kindIndent payload.
	amount int

	// lhs is the single child of kindIndent and kindGroup and the left
	// child of kindConcat; rhs is the right child of kindConcat.
	lhs, rhs *node

	// Aggregate metrics, stored for the composite kinds. Leaf kinds
	// derive theirs from the payload; see the Doc accessors.
	hasBreak    bool
	distToBreak int
	flatLen     int
}

var (
	emptyNode    = &node{kind: kindEmpty}
	lineNode     = &node{kind: kindLine}
	lineZeroNode = &node{kind: kindLineZero}
)

// Doc is a handle to an immutable document node. The zero value is an
// empty document. Doc values are cheap to copy and safe to share
// between goroutines.
type Doc struct {
	n *node
}

// Empty returns the document that renders as nothing.
func Empty() Doc { return Doc{emptyNode} }

// Line returns a break point that renders as a single space when
// flattened and as a newline plus indentation when broken.
func Line() Doc { return Doc{lineNode} }

// LineZero returns a break point that renders as nothing when flattened
// and as a newline plus indentation when broken. Use it where the flat
// form should be seamless, for example between brackets: a group around
// "[", LineZero and "]" renders "[]", never "[ ]".
func LineZero() Doc { return Doc{lineZeroNode} }

// Text returns a literal document. Literal text must not contain
// newline characters; break points enter a document through Line and
// LineZero only, and Text panics on a violation. The literal's width is
// measured in terminal display columns, so wide runes count two.
func Text(s string) Doc {
	if strings.ContainsRune(s, '\n') {
		panic("doc: literal text must not contain newlines")
	}
	return Doc{&node{kind: kindText, text: s, width: runewidth.StringWidth(s)}}
}

// Textf returns a literal document built from a format string.
func Textf(format string, args ...any) Doc {
	return Text(fmt.Sprintf(format, args...))
}

// HasBreak reports whether the document contains any break point.
func (d Doc) HasBreak() bool {
	n := d.n
	if n == nil {
		return false
	}
	switch n.kind {
	case kindLine, kindLineZero:
		return true
	case kindConcat, kindIndent, kindGroup:
		return n.hasBreak
	default:
		return false
	}
}

// DistToBreak returns the display width of the content strictly before
// the document's first break point, or the full flat width when it has
// none.
func (d Doc) DistToBreak() int {
	n := d.n
	if n == nil {
		return 0
	}
	switch n.kind {
	case kindText:
		return n.width
	case kindConcat, kindIndent, kindGroup:
		return n.distToBreak
	default:
		return 0
	}
}

// FlatLen returns the display width of the document with every break
// point flattened: Line counts one column, LineZero counts zero.
func (d Doc) FlatLen() int {
	n := d.n
	if n == nil {
		return 0
	}
	switch n.kind {
	case kindText:
		return n.width
	case kindLine:
		return 1
	case kindConcat, kindIndent, kindGroup:
		return n.flatLen
	default:
		return 0
	}
}

// Concat returns the document that renders d followed by other. The
// combined metrics are fixed here: the pair breaks if either side does,
// the distance to the first break stops at the left side's own break
// when it has one and continues into the right side when it does not,
// and flat widths add.
func (d Doc) Concat(other Doc) Doc {
	dist := d.DistToBreak()
	if !d.HasBreak() {
		dist += other.DistToBreak()
	}
	return Doc{&node{
		kind:        kindConcat,
		lhs:         d.n,
		rhs:         other.n,
		hasBreak:    d.HasBreak() || other.HasBreak(),
		distToBreak: dist,
		flatLen:     d.FlatLen() + other.FlatLen(),
	}}
}

// ConcatLine returns d, then a break point, then other.
func (d Doc) ConcatLine(other Doc) Doc {
	return d.Concat(Line()).Concat(other)
}

// ConcatSpace returns d, then a literal space, then other.
func (d Doc) ConcatSpace(other Doc) Doc {
	return d.Concat(Text(" ")).Concat(other)
}

// Indent returns d with amount added to the indentation of every break
// rendered inside it. Indentation is emitted only after a break, so a
// subtree that renders flat is unaffected. Amounts nest additively.
// Indent panics if amount is negative.
func (d Doc) Indent(amount int) Doc {
	if amount < 0 {
		panic("doc: indent amount must be non-negative")
	}
	return Doc{&node{
		kind:        kindIndent,
		amount:      amount,
		lhs:         d.n,
		hasBreak:    d.HasBreak(),
		distToBreak: d.DistToBreak(),
		flatLen:     d.FlatLen(),
	}}
}

// Group marks d as one unit of layout. When the current line has room
// for d's flat form plus whatever follows d up to the next guaranteed
// break, every break inside d flattens; otherwise each break inside d
// that is not claimed by a nested group becomes a newline. Groups
// inside a flattened region stay flat.
func (d Doc) Group() Doc {
	return Doc{&node{
		kind:        kindGroup,
		lhs:         d.n,
		hasBreak:    d.HasBreak(),
		distToBreak: d.DistToBreak(),
		flatLen:     d.FlatLen(),
	}}
}

// Surround returns d wrapped in the literal open and close strings.
func (d Doc) Surround(open, close string) Doc {
	return Text(open).Concat(d).Concat(Text(close))
}

// Parens returns d wrapped in parentheses.
func (d Doc) Parens() Doc { return d.Surround("(", ")") }

// Braces returns d wrapped in curly braces.
func (d Doc) Braces() Doc { return d.Surround("{", "}") }

// Brackets returns d wrapped in square brackets.
func (d Doc) Brackets() Doc { return d.Surround("[", "]") }

// FoldConcat concatenates docs in order. With no arguments it returns
// Empty.
func FoldConcat(docs ...Doc) Doc {
	if len(docs) == 0 {
		return Empty()
	}
	acc := docs[0]
	for _, d := range docs[1:] {
		acc = acc.Concat(d)
	}
	return acc
}

// WordWrap joins docs with break points, wrapping each join in its own
// group so the renderer decides every join independently. The result
// fills lines greedily: a join flattens to a space while its element
// still fits and breaks on its own otherwise, like words in a
// paragraph.
func WordWrap(docs ...Doc) Doc {
	if len(docs) == 0 {
		return Empty()
	}
	acc := docs[0]
	for _, d := range docs[1:] {
		acc = acc.Concat(Line().Concat(d).Group())
	}
	return acc
}

// Equal reports whether the two documents are structurally identical:
// same shape, same literal text, same indent amounts. Subtrees shared
// by pointer compare in one step, so Equal is cheap on documents that
// reuse nodes.
func (d Doc) Equal(other Doc) bool {
	type pair struct{ a, b *node }
	stack := []pair{{d.n, other.n}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.a == p.b {
			continue
		}
		ka, kb := nodeKind(p.a), nodeKind(p.b)
		if ka != kb {
			return false
		}
		switch ka {
		case kindText:
			if p.a.text != p.b.text {
				return false
			}
		case kindIndent:
			if p.a.amount != p.b.amount {
				return false
			}
			stack = append(stack, pair{p.a.lhs, p.b.lhs})
		case kindGroup:
			stack = append(stack, pair{p.a.lhs, p.b.lhs})
		case kindConcat:
			stack = append(stack, pair{p.a.rhs, p.b.rhs}, pair{p.a.lhs, p.b.lhs})
		}
	}
	return true
}

// nodeKind maps nil to kindEmpty so the zero Doc behaves as Empty.
func nodeKind(n *node) kind {
	if n == nil {
		return kindEmpty
	}
	return n.kind
}
