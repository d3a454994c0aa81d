package perfview

import (
	"fmt"
	"strings"
)

// compiledPredicate pairs a built predicate with the text it came from.
// The text is kept for rendering and diagnostics only.
type compiledPredicate struct {
	text string
	pred Predicate
}

// prime splits a raw expression into a token stream and a predicate arena.
// At each position it recognizes either a structural token (operator,
// parenthesis, whitespace) or the longest substring the builder accepts as
// one atomic predicate. Each distinct predicate substring is built once and
// assigned the next free arena slot, in first-seen order; a repeated literal
// substring reuses its slot.
func prime(b Builder, expr string) ([]token, []compiledPredicate, error) {
	var (
		tokens []token
		arena  []compiledPredicate
	)
	slots := map[string]int{}

	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			tokens = append(tokens, token{kind: tokenLParen})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokenRParen})
			i++
		case strings.HasPrefix(expr[i:], "&&"):
			tokens = append(tokens, token{kind: tokenAnd})
			i += 2
		case strings.HasPrefix(expr[i:], "||"):
			tokens = append(tokens, token{kind: tokenOr})
			i += 2
		case c == '!':
			tokens = append(tokens, token{kind: tokenNot})
			i++
		default:
			end, text := longestPredicate(b, expr, i)
			if end == i {
				return nil, nil, &ParseError{
					Expression: expr,
					Msg:        fmt.Sprintf("unrecognized token at offset %d", i),
				}
			}
			slot, seen := slots[text]
			if !seen {
				p, err := b.Build(text)
				if err != nil {
					return nil, nil, &ParseError{Expression: expr, Msg: err.Error()}
				}
				slot = len(arena)
				arena = append(arena, compiledPredicate{text: text, pred: p})
				slots[text] = slot
			}
			tokens = append(tokens, token{kind: tokenPredicate, pred: slot})
			i = end
		}
	}

	if len(tokens) == 0 {
		return nil, nil, &ParseError{Expression: expr, Msg: "empty expression"}
	}
	return tokens, arena, nil
}

// longestPredicate finds the longest substring starting at start that the
// builder accepts as one atomic predicate, and returns its end offset and
// trimmed text. end == start means nothing matched. Trying every end offset
// costs O(n) validity checks per predicate, paid once at compile time.
func longestPredicate(b Builder, expr string, start int) (end int, text string) {
	for end = len(expr); end > start; end-- {
		text = strings.TrimSpace(expr[start:end])
		if text == "" {
			continue
		}
		if b.Valid(text) {
			return end, text
		}
	}
	return start, ""
}
