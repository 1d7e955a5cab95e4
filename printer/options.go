package printer

// Options configures document construction.
type Options struct {
	// Indent is the number of spaces added per nesting level when a
	// group breaks.
	Indent int
}

// DefaultOptions returns the options used when callers have no
// preference.
func DefaultOptions() Options {
	return Options{Indent: 2}
}
