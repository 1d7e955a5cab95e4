package printer_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammkrn/pretty-simple/printer"
)

func formatJSON(t *testing.T, src string, width int) string {
	t.Helper()
	v, err := printer.ParseJSON(strings.NewReader(src))
	require.NoError(t, err)
	return printer.Value(v, printer.DefaultOptions()).Render(width)
}

// TestValueScalars covers the scalar arms.
func TestValueScalars(t *testing.T) {
	opts := printer.DefaultOptions()
	cases := []struct {
		name string
		v    any
		want string
	}{
		{"null", nil, "null"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"number", json.Number("3.140"), "3.140"},
		{"float", 1.5, "1.5"},
		{"string", "hi", `"hi"`},
		{"fallback", 42, "42"},
	}
	for _, c := range cases {
		if got := printer.Value(c.v, opts).Render(80); got != c.want {
			t.Fatalf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}

// TestObjectLayout checks objects render with sorted keys, flat with
// padded braces while they fit and one entry per line after that.
func TestObjectLayout(t *testing.T) {
	const src = `{"b": 2, "a": 1}`
	assert.Equal(t, `{ "a": 1, "b": 2 }`, formatJSON(t, src, 18))
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": 2\n}", formatJSON(t, src, 17))
}

// TestScalarArrayFills checks that scalar arrays wrap like prose: flat
// brackets while everything fits, then filled lines inside broken
// brackets.
func TestScalarArrayFills(t *testing.T) {
	const src = `[10, 20, 30, 40]`
	assert.Equal(t, "[10, 20, 30, 40]", formatJSON(t, src, 80))
	assert.Equal(t, "[\n  10, 20,\n  30, 40\n]", formatJSON(t, src, 10))
}

// TestCompositeArrayBreaksPerElement checks arrays holding composites
// break one element per line while inner objects still flatten when
// they fit.
func TestCompositeArrayBreaksPerElement(t *testing.T) {
	const src = `[{"a": 1}, 2]`
	assert.Equal(t, "[\n  { \"a\": 1 },\n  2\n]", formatJSON(t, src, 14))
}

// TestEmptyContainers pins the seamless empty forms.
func TestEmptyContainers(t *testing.T) {
	assert.Equal(t, "{}", formatJSON(t, `{}`, 1))
	assert.Equal(t, "[]", formatJSON(t, `[]`, 1))
}

// TestParseJSONKeepsNumberSpelling checks numbers survive verbatim
// through decode and print.
func TestParseJSONKeepsNumberSpelling(t *testing.T) {
	assert.Equal(t, `{ "v": 2.50 }`, formatJSON(t, `{"v": 2.50}`, 80))
}

// TestParseJSONError surfaces decode failures.
func TestParseJSONError(t *testing.T) {
	_, err := printer.ParseJSON(strings.NewReader(`{"unterminated`))
	assert.Error(t, err)
}

// TestNestedStructureLayout exercises a nested document end to end.
func TestNestedStructureLayout(t *testing.T) {
	const src = `{"name": "pretty", "tags": [1, 2]}`
	assert.Equal(t, `{ "name": "pretty", "tags": [1, 2] }`, formatJSON(t, src, 80))

	want := "{\n  \"name\": \"pretty\",\n  \"tags\": [1, 2]\n}"
	assert.Equal(t, want, formatJSON(t, src, 24))
}
