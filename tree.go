package perfview

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// An ExpressionTree is a compiled filter expression, ready to be matched
// against events. Compile once with NewExpressionTree, then call Match once
// per incoming event; the per-event cost is one predicate evaluation per
// distinct predicate plus one pass over the postfix form.
//
// A tree keeps no per-call state, so concurrent Match calls are safe.
type ExpressionTree struct {
	expr string
	m    matcher
}

// matcher is the compiled form behind a tree: either a single predicate
// (the fast path) or a primed and converted pipeline.
type matcher interface {
	match(fn func(Predicate) bool) (bool, error)
}

type simpleMatcher struct {
	pred Predicate
}

func (s simpleMatcher) match(fn func(Predicate) bool) (bool, error) {
	return fn(s.pred), nil
}

type compiledMatcher struct {
	expr    string
	arena   []compiledPredicate
	postfix []token
}

func (c compiledMatcher) match(fn func(Predicate) bool) (bool, error) {
	// Fresh truth values on every call: nothing leaks from one event into
	// the next, and concurrent callers never share scratch state.
	truth := make([]bool, len(c.arena))
	for i := range c.arena {
		truth[i] = fn(c.arena[i].pred)
	}
	return evalPostfix(c.expr, c.postfix, truth)
}

// NewExpressionTree compiles a filter expression using the builder to
// recognize and build the atomic predicates inside it. It returns a
// *ParseError on malformed input.
func NewExpressionTree(b Builder, expr string) (*ExpressionTree, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, &ParseError{Expression: expr, Msg: "empty expression"}
	}

	// Single-predicate fast path, bypassing the priming/conversion pipeline.
	// The parenthesis guard is kept exactly as the original filter engine
	// had it: the expression qualifies when the builder accepts it whole and
	// it either has no '(' at all or has a ')' somewhere.
	if b.Valid(expr) && (!strings.Contains(expr, "(") || strings.Contains(expr, ")")) {
		p, err := b.Build(expr)
		if err != nil {
			return nil, &ParseError{Expression: expr, Msg: err.Error()}
		}
		return &ExpressionTree{expr: expr, m: simpleMatcher{pred: p}}, nil
	}

	tokens, arena, err := prime(b, expr)
	if err != nil {
		return nil, err
	}
	postfix, err := toPostfix(expr, tokens)
	if err != nil {
		return nil, err
	}
	return &ExpressionTree{
		expr: expr,
		m:    compiledMatcher{expr: expr, arena: arena, postfix: postfix},
	}, nil
}

// Match reports whether the event satisfies the filter. The error is
// defensive: it only occurs if the compiled form is malformed, which a tree
// built by NewExpressionTree never is.
func (t *ExpressionTree) Match(e *Event) (bool, error) {
	return t.m.match(func(p Predicate) bool { return p.Match(e) })
}

// MatchProperties is Match for callers that carry the event payload and the
// event name as separate pieces rather than an assembled Event.
func (t *ExpressionTree) MatchProperties(properties map[string]string, eventName string) (bool, error) {
	return t.m.match(func(p Predicate) bool { return p.MatchProperties(properties, eventName) })
}

// Expression returns the raw text the tree was compiled from.
func (t *ExpressionTree) Expression() string {
	return t.expr
}

// String renders the compiled tree: each predicate with its arena slot, and
// the postfix form the evaluator runs.
func (t *ExpressionTree) String() string {
	tw := table.NewWriter()
	tw.SetTitle("\nFILTER EXPRESSION\n")
	tw.AppendHeader(table.Row{"\nSlot", "\nPredicate"})

	switch m := t.m.(type) {
	case simpleMatcher:
		tw.AppendRow(table.Row{"-", t.expr})
		tw.AppendFooter(table.Row{"form", "single predicate"})
	case compiledMatcher:
		for i, cp := range m.arena {
			tw.AppendRow(table.Row{fmt.Sprintf("p%d", i), cp.text})
		}
		tw.AppendFooter(table.Row{"postfix", postfixString(m.postfix)})
	}

	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault
	tw.SetStyle(style)
	return tw.Render()
}

func postfixString(tokens []token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
