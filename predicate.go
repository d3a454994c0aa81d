package perfview

// A Predicate is one atomic filter condition, with no boolean combinators of
// its own. Implementations must be side-effect-free: a predicate is invoked
// once per evaluation, every time, and must not cache results between events.
type Predicate interface {
	// Match reports whether the condition holds for the event.
	Match(e *Event) bool

	// MatchProperties is Match for callers that carry the event payload and
	// the event name as separate pieces rather than an assembled Event.
	MatchProperties(properties map[string]string, eventName string) bool
}

// A Builder turns the textual form of an atomic predicate into a Predicate.
// The expression compiler uses Valid to find predicate boundaries inside a
// larger expression, and Build to compile each one exactly once.
type Builder interface {
	// Valid reports whether text is a single atomic condition. Text that
	// contains boolean operators or grouping at the top level must be
	// rejected, or the compiler cannot find predicate boundaries.
	Valid(text string) bool

	// Build compiles text into a Predicate. It fails if text is not a
	// single valid atomic condition.
	Build(text string) (Predicate, error)
}
