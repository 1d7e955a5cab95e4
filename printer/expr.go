// Package printer converts parsed inputs into renderable documents.
package printer

import (
	"strconv"

	"github.com/ammkrn/pretty-simple/doc"
	"github.com/ammkrn/pretty-simple/dsl"
)

// Binding priorities, loosest to tightest. Atoms sit at
// doc.MaxPriority and never take parentheses.
const (
	priCmp     = 200
	priAdd     = 300
	priMul     = 400
	priUnary   = 500
	priPostfix = 600
)

// Expr converts a parsed expression into a document. Parenthesization
// is minimal: redundant source parentheses are dropped and the ones
// precedence requires are recreated.
func Expr(e *dsl.Expr, opts Options) doc.Doc {
	return exprDoc(e, opts).Doc
}

// chainTerm is one operator and its already-converted right operand.
type chainTerm struct {
	op   string
	term doc.Parenable
}

// chainDoc lays out a left-associative operator chain: the whole chain
// is one group, each operator stays on the line before its break, and
// continuation lines indent one level. The head renders at the chain's
// own priority, tail operands one tighter, which keeps equal-priority
// right operands parenthesized.
func chainDoc(head doc.Parenable, terms []chainTerm, pri int, opts Options) doc.Parenable {
	if len(terms) == 0 {
		return head
	}
	acc := head.MaybeSurround(pri)
	for _, t := range terms {
		acc = acc.ConcatSpace(doc.Text(t.op)).ConcatLine(t.term.MaybeSurround(pri + 1))
	}
	return acc.Indent(opts.Indent).Group().AsParenable(pri)
}

func exprDoc(e *dsl.Expr, opts Options) doc.Parenable {
	terms := make([]chainTerm, 0, len(e.Tail))
	for _, t := range e.Tail {
		terms = append(terms, chainTerm{op: t.Op, term: addDoc(t.Term, opts)})
	}
	return chainDoc(addDoc(e.Head, opts), terms, priCmp, opts)
}

func addDoc(e *dsl.AddExpr, opts Options) doc.Parenable {
	terms := make([]chainTerm, 0, len(e.Tail))
	for _, t := range e.Tail {
		terms = append(terms, chainTerm{op: t.Op, term: mulDoc(t.Term, opts)})
	}
	return chainDoc(mulDoc(e.Head, opts), terms, priAdd, opts)
}

func mulDoc(e *dsl.MulExpr, opts Options) doc.Parenable {
	terms := make([]chainTerm, 0, len(e.Tail))
	for _, t := range e.Tail {
		terms = append(terms, chainTerm{op: t.Op, term: unaryDoc(t.Term, opts)})
	}
	return chainDoc(unaryDoc(e.Head, opts), terms, priMul, opts)
}

func unaryDoc(e *dsl.UnaryExpr, opts Options) doc.Parenable {
	if e.Postfix != nil {
		return postfixDoc(e.Postfix, opts)
	}
	// Nested prefix operators keep their parentheses, so negations do
	// not fuse into a single token on reparse.
	operand := unaryDoc(e.Operand, opts).MaybeSurround(priUnary + 1)
	return doc.Text(e.Op).Concat(operand).AsParenable(priUnary)
}

func postfixDoc(p *dsl.PostfixExpr, opts Options) doc.Parenable {
	acc := atomDoc(p.Atom, opts)
	for _, s := range p.Suffixes {
		target := acc.MaybeSurround(priPostfix)
		switch {
		case s.Call != nil:
			args := make([]doc.Doc, 0, len(s.Call.Args))
			for _, a := range s.Call.Args {
				args = append(args, exprDoc(a, opts).Doc)
			}
			acc = target.Concat(bracketed("(", ")", args, opts)).AsParenable(priPostfix)
		case s.Index != nil:
			inner := exprDoc(s.Index.Index, opts).Doc
			acc = target.Concat(bracketed("[", "]", []doc.Doc{inner}, opts)).AsParenable(priPostfix)
		}
	}
	return acc
}

func atomDoc(a *dsl.Atom, opts Options) doc.Parenable {
	switch {
	case a.Number != nil:
		return doc.Text(*a.Number).AsParenableMax()
	case a.String != nil:
		return doc.Text(strconv.Quote(string(*a.String))).AsParenableMax()
	case a.List != nil:
		items := make([]doc.Doc, 0, len(a.List.Elems))
		for _, e := range a.List.Elems {
			items = append(items, exprDoc(e, opts).Doc)
		}
		return bracketed("[", "]", items, opts).AsParenableMax()
	case a.Ident != nil:
		return doc.Text(*a.Ident).AsParenableMax()
	case a.Sub != nil:
		// The inner expression keeps its own priority; MaybeSurround
		// restores parentheses wherever the context still needs them.
		return exprDoc(a.Sub, opts)
	}
	panic("printer: atom has no variant")
}

// bracketed lays out a bracket pair around comma-separated items: flat
// when everything fits, otherwise one item per line with the closing
// bracket back at the enclosing indentation.
func bracketed(open, close string, items []doc.Doc, opts Options) doc.Doc {
	if len(items) == 0 {
		return doc.Text(open + close)
	}
	body := items[0]
	for _, it := range items[1:] {
		body = body.Concat(doc.Text(",")).ConcatLine(it)
	}
	inner := doc.LineZero().Concat(body).Indent(opts.Indent)
	return doc.Text(open).Concat(inner).Concat(doc.LineZero()).Concat(doc.Text(close)).Group()
}
