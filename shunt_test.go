package perfview

import (
	"errors"
	"testing"
)

func mustPrime(t *testing.T, expr string) []token {
	t.Helper()
	tokens, _, err := prime(wordBuilder{}, expr)
	if err != nil {
		t.Fatalf("unexpected error priming %q: %v", expr, err)
	}
	return tokens
}

func TestToPostfix(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"A && B", "p0 p1 &&"},
		{"A && B || C", "p0 p1 && p2 ||"},
		{"A || B && C", "p0 p1 p2 && ||"},
		{"A && (B || C)", "p0 p1 p2 || &&"},
		{"(A || B) && C", "p0 p1 || p2 &&"},
		{"!A && B", "p0 ! p1 &&"},
		{"!A || !B", "p0 ! p1 ! ||"},
		{"!(A || B)", "p0 p1 || !"},
		{"!!A && B", "p0 ! ! p1 &&"},
		{"((A))", "p0"},
		{"A && B && C", "p0 p1 && p2 &&"},
	}

	for _, c := range cases {
		postfix, err := toPostfix(c.expr, mustPrime(t, c.expr))
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", c.expr, err)
		}
		if got := postfixString(postfix); got != c.want {
			t.Errorf("%q: got postfix %q, want %q", c.expr, got, c.want)
		}
	}
}

func TestToPostfixUnbalancedParens(t *testing.T) {
	for _, expr := range []string{"(A && B", "A && B)", "((A || B) && C", "A) && (B"} {
		_, err := toPostfix(expr, mustPrime(t, expr))
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("%q: got %v, want a *ParseError", expr, err)
		}
		if perr.Expression != expr {
			t.Errorf("%q: error carries expression %q", expr, perr.Expression)
		}
	}
}

// Missing operands pass through conversion by design; the evaluator is
// responsible for catching them.
func TestToPostfixDefersMissingOperands(t *testing.T) {
	if _, err := toPostfix("A &&", mustPrime(t, "A &&")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
