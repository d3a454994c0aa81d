package perfview

import "fmt"

// tokenKind enumerates the tokens the primer produces. A predicate token
// carries the index of its predicate in the tree's arena; the operators and
// parentheses are structural.
type tokenKind int

const (
	tokenPredicate tokenKind = iota
	tokenNot
	tokenAnd
	tokenOr
	tokenLParen
	tokenRParen
)

type token struct {
	kind tokenKind
	pred int // arena slot, valid only when kind == tokenPredicate
}

// precedence orders the operators: ! binds tighter than &&, && tighter
// than ||. Non-operators have no precedence.
func (k tokenKind) precedence() int {
	switch k {
	case tokenNot:
		return 3
	case tokenAnd:
		return 2
	case tokenOr:
		return 1
	default:
		return 0
	}
}

// rightAssociative is true only for the unary !.
func (k tokenKind) rightAssociative() bool {
	return k == tokenNot
}

func (t token) String() string {
	switch t.kind {
	case tokenPredicate:
		return fmt.Sprintf("p%d", t.pred)
	case tokenNot:
		return "!"
	case tokenAnd:
		return "&&"
	case tokenOr:
		return "||"
	case tokenLParen:
		return "("
	case tokenRParen:
		return ")"
	}
	return "?"
}
