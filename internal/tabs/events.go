package tabs

// EventKind distinguishes the two phases of a selection change.
type EventKind int

const (
	// EventWillSelect fires synchronously the instant a selection change
	// is accepted, before any transition starts.
	EventWillSelect EventKind = iota

	// EventDidSelect fires once the background blob transition has
	// completed (synchronously for unanimated selections).
	EventDidSelect
)

// String returns the kind name for logs and test output.
func (k EventKind) String() string {
	switch k {
	case EventWillSelect:
		return "will-select"
	case EventDidSelect:
		return "did-select"
	default:
		return "unknown"
	}
}

// Event is one selection lifecycle notification. Index is zero-based into
// the current tab sequence at the time the event is emitted.
type Event struct {
	Kind  EventKind
	Index int
}

// Subscribe registers a listener for selection events. Listeners are invoked
// synchronously on the bar's goroutine, in registration order.
func (b *Bar) Subscribe(fn func(Event)) {
	b.listeners = append(b.listeners, fn)
}

func (b *Bar) emit(e Event) {
	for _, fn := range b.listeners {
		fn(e)
	}
}
