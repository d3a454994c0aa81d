package perfview

import "fmt"

// evalPostfix folds the postfix form over the current truth values in one
// left-to-right pass with an explicit bool stack. truth holds the value of
// each arena slot for the event being evaluated. Exactly one value must
// remain on the stack at the end; anything else means the compiled form is
// malformed and yields an EvalError.
func evalPostfix(expr string, postfix []token, truth []bool) (bool, error) {
	stack := make([]bool, 0, len(postfix))

	pop := func() (bool, bool) {
		if len(stack) == 0 {
			return false, false
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, true
	}

	for _, t := range postfix {
		switch t.kind {
		case tokenPredicate:
			stack = append(stack, truth[t.pred])

		case tokenNot:
			v, ok := pop()
			if !ok {
				return false, &EvalError{Expression: expr, Msg: "operand stack underflow on '!'"}
			}
			stack = append(stack, !v)

		case tokenAnd, tokenOr:
			// Pop order does not matter: both operators are commutative.
			a, okA := pop()
			b, okB := pop()
			if !okA || !okB {
				return false, &EvalError{
					Expression: expr,
					Msg:        fmt.Sprintf("operand stack underflow on '%s'", t),
				}
			}
			if t.kind == tokenAnd {
				stack = append(stack, a && b)
			} else {
				stack = append(stack, a || b)
			}

		default:
			return false, &EvalError{Expression: expr, Msg: "parenthesis in postfix form"}
		}
	}

	if len(stack) != 1 {
		return false, &EvalError{
			Expression: expr,
			Msg:        fmt.Sprintf("%d values left after evaluation, want exactly 1", len(stack)),
		}
	}
	return stack[0], nil
}
