package perfview

// An Event is a single trace or log event presented to a filter.
type Event struct {
	// Name identifies the kind of event, e.g. "GC/AllocationTick".
	Name string

	// Properties holds the event payload as name/value pairs.
	Properties map[string]string
}
