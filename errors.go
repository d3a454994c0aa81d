package perfview

import "fmt"

// A ParseError reports a malformed filter expression at construction time:
// empty input, an unrecognizable token, an atomic predicate the builder
// rejected, or unbalanced parentheses. It carries the original expression.
type ParseError struct {
	Expression string
	Msg        string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing filter expression %q: %s", e.Expression, e.Msg)
}

// An EvalError reports a malformed compiled form detected while evaluating:
// an operand stack underflow, or more or fewer than one value left at the
// end. A correctly compiled tree never produces one; seeing this error
// signals a defect in the compiler, not bad user input.
type EvalError struct {
	Expression string
	Msg        string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("evaluating filter expression %q: %s", e.Expression, e.Msg)
}
