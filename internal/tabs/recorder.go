package tabs

// DefaultRecorderCapacity is the number of events a recorder retains before
// evicting the oldest.
const DefaultRecorderCapacity = 100

// Recorder keeps a bounded FIFO history of selection events for host
// debugging. Like the bar itself it is single-goroutine; attach it before
// the bar starts receiving input.
type Recorder struct {
	capacity int
	events   []Event
}

// NewRecorder returns a recorder retaining up to capacity events. A
// non-positive capacity falls back to DefaultRecorderCapacity.
func NewRecorder(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = DefaultRecorderCapacity
	}
	return &Recorder{
		capacity: capacity,
		events:   make([]Event, 0, capacity),
	}
}

// Attach subscribes the recorder to a bar's event stream.
func (r *Recorder) Attach(b *Bar) {
	b.Subscribe(r.Record)
}

// Record appends an event, evicting the oldest when full.
func (r *Recorder) Record(e Event) {
	if len(r.events) >= r.capacity {
		copy(r.events, r.events[1:])
		r.events = r.events[:len(r.events)-1]
	}
	r.events = append(r.events, e)
}

// Events returns a copy of the retained history, oldest first.
func (r *Recorder) Events() []Event {
	return append([]Event(nil), r.events...)
}

// Latest returns the most recent event.
func (r *Recorder) Latest() (Event, bool) {
	if len(r.events) == 0 {
		return Event{}, false
	}
	return r.events[len(r.events)-1], true
}
