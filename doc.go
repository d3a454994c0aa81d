// Package perfview provides a compiled filter-expression engine for trace
// and log events.
//
// A filter expression combines atomic predicates with the boolean operators
// !, && and || and parentheses, for example:
//
//	Level == Error && (Source == Net || !OptEnabled)
//
// Perfview itself does not define the predicate syntax. Atomic predicates are
// recognized and built by an implementation of the Builder interface; the
// filterexpr subpackage provides the default property/operator/value
// implementation, and the cel subpackage one backed by Google's cel-go.
//
// Typical use is as follows:
//
//  1. Create a predicate builder (e.g. filterexpr.Builder{})
//  2. Compile the expression once with NewExpressionTree
//  3. Call Match on the tree once per incoming event
//
// Compilation does all the expensive work: the expression is split into
// predicates and operators, each predicate is built once, and the operator
// precedence (! over && over ||) is resolved into a postfix form. A Match
// call only recomputes each predicate's truth value for the current event
// and folds the stored postfix form over those values.
//
// # Concurrency
//
// A compiled ExpressionTree holds no per-call state; concurrent Match calls
// on one tree are safe provided the predicates built by the Builder are
// themselves side-effect-free, as the Predicate contract requires. Builders
// must not be mutated (e.g. cel.Builder.Register) while trees that use them
// are being compiled or evaluated.
package perfview
