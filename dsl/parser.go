package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	exprLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Number", Pattern: `\d+(?:\.\d+)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Op", Pattern: `==|!=|<=|>=|[+\-*/%<>!]`},
		{Name: "Punct", Pattern: `[()\[\],]`},
	})

	exprParser = participle.MustBuild[Expr](
		participle.Lexer(exprLexer),
		participle.Elide("Whitespace", "LineComment"),
	)
)

// Expr is the root AST node: a chain of comparisons over additive
// expressions. Operator chains are kept flat, head plus tail terms, so
// later passes see source associativity directly.
type Expr struct {
	Pos  lexer.Position `parser:"" json:"-"`
	Head *AddExpr       `parser:"@@"`
	Tail []*CmpTerm     `parser:"@@*"`
}

// CmpTerm is one comparison operator with its right operand.
type CmpTerm struct {
	Op   string   `parser:"@('==' | '!=' | '<=' | '>=' | '<' | '>')"`
	Term *AddExpr `parser:"@@"`
}

// AddExpr is an additive chain over multiplicative terms.
type AddExpr struct {
	Head *MulExpr   `parser:"@@"`
	Tail []*AddTerm `parser:"@@*"`
}

// AddTerm is one additive operator with its right operand.
type AddTerm struct {
	Op   string   `parser:"@('+' | '-')"`
	Term *MulExpr `parser:"@@"`
}

// MulExpr is a multiplicative chain over unary expressions.
type MulExpr struct {
	Head *UnaryExpr `parser:"@@"`
	Tail []*MulTerm `parser:"@@*"`
}

// MulTerm is one multiplicative operator with its right operand.
type MulTerm struct {
	Op   string     `parser:"@('*' | '/' | '%')"`
	Term *UnaryExpr `parser:"@@"`
}

// UnaryExpr is a prefix operator application or a postfix expression.
type UnaryExpr struct {
	Op      string       `parser:"( @('-' | '!')"`
	Operand *UnaryExpr   `parser:"  @@ )"`
	Postfix *PostfixExpr `parser:"| @@"`
}

// PostfixExpr is an atom followed by any number of call or index
// suffixes.
type PostfixExpr struct {
	Atom     *Atom     `parser:"@@"`
	Suffixes []*Suffix `parser:"@@*"`
}

// Suffix is a single call argument list or index applied to the form
// before it.
type Suffix struct {
	Call  *CallSuffix  `parser:"  @@"`
	Index *IndexSuffix `parser:"| @@"`
}

// CallSuffix captures `( arg, ... )`; an empty argument list is legal.
type CallSuffix struct {
	Args []*Expr `parser:"'(' ( @@ ( ',' @@ )* )? ')'"`
}

// IndexSuffix captures `[ expr ]`.
type IndexSuffix struct {
	Index *Expr `parser:"'[' @@ ']'"`
}

// Atom is a leaf form. Numbers and identifiers keep their source
// spelling so printers can reproduce them verbatim.
type Atom struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Number *string        `parser:"  @Number"`
	String *StringLiteral `parser:"| @String"`
	List   *ListLit       `parser:"| @@"`
	Ident  *string        `parser:"| @Ident"`
	Sub    *Expr          `parser:"| '(' @@ ')'"`
}

// ListLit captures `[ elem, ... ]` literals.
type ListLit struct {
	Elems []*Expr `parser:"'[' ( @@ ( ',' @@ )* )? ']'"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses an expression from an io.Reader.
func Parse(r io.Reader) (*Expr, error) {
	return exprParser.Parse("", r)
}

// ParseString parses an expression from a string.
func ParseString(input string) (*Expr, error) {
	return exprParser.ParseString("", input)
}
