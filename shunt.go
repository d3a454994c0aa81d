package perfview

// toPostfix converts the primed token stream into reverse Polish order using
// the shunting-yard algorithm: predicates go straight to the output, each
// operator first pops stacked operators that bind at least as tightly
// (strictly tighter for the right-associative !), and parentheses are
// consumed here and never reach the output. Missing operands are not
// detectable at this stage; the evaluator catches them.
func toPostfix(expr string, tokens []token) ([]token, error) {
	output := make([]token, 0, len(tokens))
	var stack []token

	for _, t := range tokens {
		switch t.kind {
		case tokenPredicate:
			output = append(output, t)

		case tokenNot, tokenAnd, tokenOr:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind == tokenLParen {
					break
				}
				if top.kind.precedence() > t.kind.precedence() ||
					(top.kind.precedence() == t.kind.precedence() && !t.kind.rightAssociative()) {
					output = append(output, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, t)

		case tokenLParen:
			stack = append(stack, t)

		case tokenRParen:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == tokenLParen {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, &ParseError{Expression: expr, Msg: "unbalanced parentheses: unmatched ')'"}
			}
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.kind == tokenLParen {
			return nil, &ParseError{Expression: expr, Msg: "unbalanced parentheses: unmatched '('"}
		}
		output = append(output, top)
	}
	return output, nil
}
