package doc

import (
	"fmt"
	"strings"
)

// frame is one pending unit of rendering work. flat records whether an
// enclosing group chose its flat form, nest is the indentation to emit
// after each break, dist is the display width of the content that
// follows this subtree up to the next guaranteed break, and width is
// the line budget Render was called with.
type frame struct {
	n     *node
	flat  bool
	nest  int
	dist  int
	width int
}

// Render lays the document out against lineWidth and returns the
// rendered text. A width of zero or less leaves no room for anything,
// so every group breaks.
//
// The traversal is an explicit LIFO stack, never recursion, and each
// group is decided exactly once from the precomputed metrics: the group
// flattens when its flat width plus the unbreakable content that
// follows it still fits before the end of the line. Rendering is
// deterministic and total for every input.
func (d Doc) Render(lineWidth int) string {
	var out strings.Builder

	// written counts emitted display columns, newlines included, in the
	// same units as FlatLen. eol marks where the current line runs out
	// of room; it moves forward by lineWidth at every emitted break.
	written := 0
	eol := lineWidth

	todo := make([]frame, 0, 256)
	todo = append(todo, frame{n: d.n, width: lineWidth})
	for len(todo) > 0 {
		it := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		n := it.n
		if n == nil {
			continue
		}
		switch n.kind {
		case kindEmpty:
		case kindText:
			out.WriteString(n.text)
			written += n.width
		case kindLine, kindLineZero:
			if it.flat {
				if n.kind == kindLine {
					out.WriteByte(' ')
					written++
				}
				continue
			}
			out.WriteByte('\n')
			written++
			// The budget restarts at the break itself, before the
			// indentation below, so indentation consumes line room.
			eol = written + it.width
			for i := 0; i < it.nest; i++ {
				out.WriteByte(' ')
			}
			written += it.nest
		case kindConcat:
			// The left child's distance to the next break continues
			// into the right child when the right child cannot break
			// on its own.
			rhs := Doc{n.rhs}
			dist := rhs.DistToBreak()
			if !rhs.HasBreak() {
				dist += it.dist
			}
			todo = append(todo,
				frame{n: n.rhs, flat: it.flat, nest: it.nest, dist: it.dist, width: it.width},
				frame{n: n.lhs, flat: it.flat, nest: it.nest, dist: dist, width: it.width},
			)
		case kindIndent:
			todo = append(todo, frame{n: n.lhs, flat: it.flat, nest: it.nest + n.amount, dist: it.dist, width: it.width})
		case kindGroup:
			inner := Doc{n.lhs}
			flat := it.flat || written+inner.FlatLen()+it.dist <= eol
			todo = append(todo, frame{n: n.lhs, flat: flat, nest: it.nest, dist: it.dist, width: it.width})
		default:
			panic(fmt.Sprintf("doc: unknown node kind %d", n.kind))
		}
	}
	return out.String()
}
