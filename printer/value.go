package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/ammkrn/pretty-simple/doc"
)

// ParseJSON decodes one JSON value for Value. Numbers decode as
// json.Number so their source spelling survives printing.
func ParseJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

// Value converts a decoded JSON value into a document. Objects render
// with sorted keys; arrays of scalars fill lines like wrapped prose,
// arrays with composite elements break one element per line.
func Value(v any, opts Options) doc.Doc {
	switch val := v.(type) {
	case nil:
		return doc.Text("null")
	case bool:
		if val {
			return doc.Text("true")
		}
		return doc.Text("false")
	case json.Number:
		return doc.Text(val.String())
	case float64:
		// Values decoded without UseNumber.
		return doc.Textf("%v", val)
	case string:
		return jsonString(val)
	case []any:
		return arrayDoc(val, opts)
	case map[string]any:
		return objectDoc(val, opts)
	default:
		return doc.Textf("%v", val)
	}
}

func jsonString(s string) doc.Doc {
	// Marshal of a plain string cannot fail.
	data, _ := json.Marshal(s)
	return doc.Text(string(data))
}

func objectDoc(m map[string]any, opts Options) doc.Doc {
	if len(m) == 0 {
		return doc.Text("{}")
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var body doc.Doc
	for i, k := range keys {
		entry := jsonString(k).Concat(doc.Text(": ")).Concat(Value(m[k], opts))
		if i == 0 {
			body = entry
			continue
		}
		body = body.Concat(doc.Text(",")).ConcatLine(entry)
	}
	inner := doc.Line().Concat(body).Indent(opts.Indent)
	return doc.Text("{").Concat(inner).Concat(doc.Line()).Concat(doc.Text("}")).Group()
}

func arrayDoc(items []any, opts Options) doc.Doc {
	if len(items) == 0 {
		return doc.Text("[]")
	}
	scalars := true
	elems := make([]doc.Doc, len(items))
	for i, it := range items {
		elems[i] = Value(it, opts)
		switch it.(type) {
		case []any, map[string]any:
			scalars = false
		}
	}
	// Commas attach to their elements so the separating breaks are the
	// only break points between them.
	for i := range elems {
		if i < len(elems)-1 {
			elems[i] = elems[i].Concat(doc.Text(","))
		}
	}

	var body doc.Doc
	if scalars {
		body = doc.WordWrap(elems...)
	} else {
		body = elems[0]
		for _, e := range elems[1:] {
			body = body.ConcatLine(e)
		}
	}
	inner := doc.LineZero().Concat(body).Indent(opts.Indent)
	return doc.Text("[").Concat(inner).Concat(doc.LineZero()).Concat(doc.Text("]")).Group()
}
