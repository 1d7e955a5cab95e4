package doc

// MaxPriority is the priority of forms that never need parentheses,
// such as atoms and forms that carry their own brackets.
const MaxPriority = 1024

// Parenable pairs a document with the binding priority of the construct
// it prints. Lower priorities bind looser: a Parenable is parenthesized
// exactly when it is placed in a context that binds tighter than it
// does, so printers get minimal parenthesization by tracking context
// priorities alone.
type Parenable struct {
	Doc      Doc
	Priority int
}

// NewParenable pairs a document with the given priority.
func NewParenable(d Doc, priority int) Parenable {
	return Parenable{Doc: d, Priority: priority}
}

// NewParenableMax pairs a document with MaxPriority, so it is never
// parenthesized.
func NewParenableMax(d Doc) Parenable {
	return Parenable{Doc: d, Priority: MaxPriority}
}

// AsParenable pairs the document with the given priority.
func (d Doc) AsParenable(priority int) Parenable {
	return NewParenable(d, priority)
}

// AsParenableMax pairs the document with MaxPriority.
func (d Doc) AsParenableMax() Parenable {
	return NewParenableMax(d)
}

// MaybeSurround returns the document wrapped in parentheses when its
// priority is lower than the surrounding context's, and the document
// unchanged otherwise.
func (p Parenable) MaybeSurround(contextPriority int) Doc {
	if p.Priority < contextPriority {
		return p.Doc.Parens()
	}
	return p.Doc
}
