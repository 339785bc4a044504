// Package anim schedules timed property transitions for the tab bar. It is a
// deliberately small sequencer: transitions are keyed by (target, operation
// tag), advance only when the owner calls Step, and deliver exactly one
// completion callback each. Everything runs on the caller's goroutine; there
// is no locking and no cancellation beyond explicit handle use.
package anim

import "time"

// Tag identifies the logical operation a transition performs. Completion
// routing is keyed by tag, never by string lookup.
type Tag int

// The closed set of operation tags.
const (
	TagBackgroundShift Tag = iota
	TagTabShift
	TagTabBackgroundShift
	TagPassThrough
)

// String returns the tag name for logs and test output.
func (t Tag) String() string {
	switch t {
	case TagBackgroundShift:
		return "background-shift"
	case TagTabShift:
		return "tab-shift"
	case TagTabBackgroundShift:
		return "tab-background-shift"
	case TagPassThrough:
		return "pass-through"
	default:
		return "unknown"
	}
}

// Request describes one transition. OnUpdate receives every interpolated
// value, including the final one; OnComplete fires exactly once when the
// transition finishes, and never when it is superseded or cancelled.
type Request struct {
	Target   string
	Tag      Tag
	From, To Value
	Duration time.Duration
	Easing   Easing

	// AutoReverse plays the transition out and back within Duration and
	// ends on From, leaving no resting change.
	AutoReverse bool

	OnUpdate   func(Value)
	OnComplete func()
}

type transitionKey struct {
	target string
	tag    Tag
}

type transition struct {
	req     Request
	elapsed time.Duration
}

// Sequencer holds the in-flight transitions. The zero value is not usable;
// call NewSequencer.
type Sequencer struct {
	running map[transitionKey]*transition
}

// NewSequencer returns an empty sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{running: make(map[transitionKey]*transition)}
}

// Handle identifies a submitted transition and allows cancelling it before
// completion. Cancelling never invokes the completion callback.
type Handle struct {
	seq *Sequencer
	key transitionKey
	tr  *transition
}

// Cancel removes the transition if it is still the one this handle was issued
// for. Safe to call after completion or supersession; it is then a no-op.
func (h Handle) Cancel() {
	if h.seq == nil {
		return
	}
	if cur, ok := h.seq.running[h.key]; ok && cur == h.tr {
		delete(h.seq.running, h.key)
	}
}

// Active reports whether the transition this handle refers to is still
// running.
func (h Handle) Active() bool {
	if h.seq == nil {
		return false
	}
	cur, ok := h.seq.running[h.key]
	return ok && cur == h.tr
}

// Submit schedules a transition. A transition already running on the same
// (target, tag) key is replaced: last request wins and the replaced request's
// completion callback is dropped. A zero (or negative) duration completes
// synchronously before Submit returns.
func (s *Sequencer) Submit(req Request) Handle {
	if req.Easing == nil {
		req.Easing = Linear
	}
	key := transitionKey{target: req.Target, tag: req.Tag}

	if req.Duration <= 0 {
		// Unanimated path: Idle -> Completed without ever running.
		delete(s.running, key)
		final := req.To
		if req.AutoReverse {
			final = req.From
		}
		if req.OnUpdate != nil {
			req.OnUpdate(final)
		}
		if req.OnComplete != nil {
			req.OnComplete()
		}
		return Handle{}
	}

	tr := &transition{req: req}
	s.running[key] = tr
	return Handle{seq: s, key: key, tr: tr}
}

// Running returns the number of in-flight transitions. The frame loop keeps
// ticking while this is non-zero.
func (s *Sequencer) Running() int {
	return len(s.running)
}

// Step advances every running transition by dt, delivering value updates and
// any completions. Completion callbacks may submit new transitions; those
// start advancing on the next Step.
func (s *Sequencer) Step(dt time.Duration) {
	if dt <= 0 {
		return
	}

	// Snapshot first: callbacks may mutate the running set.
	keys := make([]transitionKey, 0, len(s.running))
	for k := range s.running {
		keys = append(keys, k)
	}

	for _, key := range keys {
		tr, ok := s.running[key]
		if !ok {
			// Replaced or cancelled by an earlier callback this step.
			continue
		}
		tr.elapsed += dt
		done := tr.elapsed >= tr.req.Duration

		progress := float64(tr.elapsed) / float64(tr.req.Duration)
		if progress > 1 {
			progress = 1
		}
		value := tr.req.value(progress)

		if tr.req.OnUpdate != nil {
			tr.req.OnUpdate(value)
		}
		if done {
			if cur, still := s.running[key]; still && cur == tr {
				delete(s.running, key)
				if tr.req.OnComplete != nil {
					tr.req.OnComplete()
				}
			}
		}
	}
}

// value computes the interpolated value at linear progress p in [0,1].
func (r Request) value(p float64) Value {
	if r.AutoReverse {
		// Out and back: each leg gets the easing curve; p=1 lands on From.
		if p <= 0.5 {
			return r.From.Lerp(r.To, r.Easing(2*p))
		}
		return r.From.Lerp(r.To, r.Easing(2-2*p))
	}
	return r.From.Lerp(r.To, r.Easing(p))
}
