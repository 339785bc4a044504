package tabs

import (
	"github.com/calebmce/tabglide/internal/anim"
	"github.com/calebmce/tabglide/internal/geometry"
	"github.com/sahilm/fuzzy"
)

// Default bounds, in layout units, before the host reports a size.
const (
	DefaultWidth  = 300.0
	DefaultHeight = 50.0
)

// backgroundTarget is the sequencer target key for the blob transition.
const backgroundTarget = "background"

// Bar owns the ordered tab list and the current selection. It validates and
// dispatches selection requests, coordinates the per-tab appearance
// transitions and the blob glide, and emits WillSelect/DidSelect events.
//
// A Bar must only be used from one goroutine.
type Bar struct {
	surface Surface
	seq     *anim.Sequencer

	tabs        []Tab
	appearances map[string]*appearance
	selectedID  string
	shown       bool

	// In-flight blob glide, tracked so layout changes can rebuild it from
	// the new bounds.
	blobHandle  anim.Handle
	blobFromIdx int

	bounds    geometry.Rect
	muted     anim.Paint
	listeners []func(Event)
}

// NewBar returns a bar drawing through surface and scheduling through seq.
// Nothing is rendered until Show is called.
func NewBar(surface Surface, seq *anim.Sequencer) *Bar {
	return &Bar{
		surface:     surface,
		seq:         seq,
		appearances: make(map[string]*appearance),
		bounds:      geometry.Rect{Width: DefaultWidth, Height: DefaultHeight},
		muted:       anim.MustHex("#7f7f7f"),
	}
}

// SetMutedTint overrides the icon color used for unselected tabs.
func (b *Bar) SetMutedTint(p anim.Paint) { b.muted = p }

// Show replaces the full tab set, selects the first tab, and snaps the whole
// bar to its unanimated initial state. Visual nodes are reconciled by id:
// tabs surviving from the previous set keep their node, vanished ids are
// destroyed.
//
// Showing an empty or duplicate-id tab set is a programming error and panics.
func (b *Bar) Show(tabSet []Tab) {
	if len(tabSet) == 0 {
		panic("tabs: Show called with an empty tab set")
	}

	next := make(map[string]*appearance, len(tabSet))
	for _, t := range tabSet {
		if _, dup := next[t.ID]; dup {
			panic("tabs: Show called with duplicate tab id " + t.ID)
		}
		if a, ok := b.appearances[t.ID]; ok {
			a.tab = t
			next[t.ID] = a
		} else {
			next[t.ID] = newAppearance(t, b.muted)
		}
	}
	for id := range b.appearances {
		if _, kept := next[id]; !kept {
			b.surface.RemoveTab(id)
		}
	}

	b.appearances = next
	b.tabs = append(b.tabs[:0:0], tabSet...)
	b.selectedID = tabSet[0].ID
	b.shown = true
	// A glide still running against the previous set is moot.
	b.blobHandle.Cancel()
	b.redraw()
}

// Select requests selection of the tab with the given id. Unknown ids and
// the already-selected tab are silent no-ops: no state change, no events.
func (b *Bar) Select(id string, animated bool) {
	newIdx := b.indexOf(id)
	if newIdx < 0 || id == b.selectedID {
		return
	}
	prevIdx := b.indexOf(b.selectedID)
	prevID := b.selectedID
	b.selectedID = id

	b.emit(Event{Kind: EventWillSelect, Index: newIdx})

	b.moveBlob(prevIdx, newIdx, animated)
	b.setSelected(b.appearances[prevID], false, animated)
	b.setSelected(b.appearances[id], true, animated)

	if animated {
		lo, hi := prevIdx, newIdx
		if lo > hi {
			lo, hi = hi, lo
		}
		for i := lo + 1; i < hi; i++ {
			b.applyShiftDown(b.appearances[b.tabs[i].ID])
		}
	}
}

// SelectIndex is Select by position. Out-of-range indices are silent no-ops.
func (b *Bar) SelectIndex(i int, animated bool) {
	if i < 0 || i >= len(b.tabs) {
		return
	}
	b.Select(b.tabs[i].ID, animated)
}

// SelectByQuery fuzzy-matches q against the tab ids and selects the best
// match. A query matching nothing is a silent no-op.
func (b *Bar) SelectByQuery(q string, animated bool) {
	ids := make([]string, len(b.tabs))
	for i, t := range b.tabs {
		ids[i] = t.ID
	}
	matches := fuzzy.Find(q, ids)
	if len(matches) == 0 {
		return
	}
	b.Select(ids[matches[0].Index], animated)
}

// Tap resolves a position in the bar's coordinate space to a tab and selects
// it with animation. Positions outside every clickable zone are no-ops.
func (b *Bar) Tap(x float64) {
	if i, ok := geometry.HitIndex(x, len(b.tabs), b.bounds.Width); ok {
		b.SelectIndex(i, true)
	}
}

// SetWidth updates the bar's bounds width and recomputes every position and
// the blob path. Selection is unchanged and no selection events are emitted.
func (b *Bar) SetWidth(w float64) {
	if w <= 0 || w == b.bounds.Width {
		return
	}
	b.bounds.Width = w
	if !b.shown {
		return
	}
	b.redraw()
	// A glide built from the old bounds would settle at stale coordinates;
	// rebuild it between the same two tabs at the new width. The superseded
	// transition's completion is dropped, so DidSelect still fires once.
	if b.blobHandle.Active() {
		b.moveBlob(b.blobFromIdx, b.indexOf(b.selectedID), true)
	}
}

// Selected returns the currently selected tab.
func (b *Bar) Selected() (Tab, bool) {
	i := b.indexOf(b.selectedID)
	if i < 0 {
		return Tab{}, false
	}
	return b.tabs[i], true
}

// Index returns the selected tab's position, or -1 before Show.
func (b *Bar) Index() int { return b.indexOf(b.selectedID) }

// Tabs returns a copy of the current tab sequence.
func (b *Bar) Tabs() []Tab { return append([]Tab(nil), b.tabs...) }

// Width returns the current bounds width in layout units.
func (b *Bar) Width() float64 { return b.bounds.Width }

// Appearance returns the tracked resting visual state for a tab.
func (b *Bar) Appearance(id string) (Appearance, bool) {
	a, ok := b.appearances[id]
	if !ok {
		return Appearance{}, false
	}
	return a.state, true
}

func (b *Bar) indexOf(id string) int {
	for i, t := range b.tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// moveBlob schedules (or snaps) the background path transition and emits
// DidSelect from its completion. The index carried by DidSelect is recomputed
// from the selection at completion time, so a selection superseded mid-glide
// never reports a stale index.
func (b *Bar) moveBlob(prevIdx, newIdx int, animated bool) {
	count := len(b.tabs)
	from := geometry.BlobPath(geometry.CenterX(prevIdx, count, b.bounds.Width), b.bounds)
	to := geometry.BlobPath(geometry.CenterX(newIdx, count, b.bounds.Width), b.bounds)

	var duration = anim.ShiftDuration
	if !animated {
		duration = 0
	}
	b.blobFromIdx = prevIdx
	b.blobHandle = b.seq.Submit(anim.Request{
		Target:   backgroundTarget,
		Tag:      anim.TagBackgroundShift,
		From:     pathValue{from},
		To:       pathValue{to},
		Duration: duration,
		Easing:   anim.EaseInOut,
		OnUpdate: func(v anim.Value) {
			b.surface.SetBlobPath(v.(pathValue).Path)
		},
		OnComplete: func() {
			b.emit(Event{Kind: EventDidSelect, Index: b.indexOf(b.selectedID)})
		},
	})
}

// redraw snaps the whole bar to the current state: centers for every tab,
// appearances with only the selected tab lifted, and the blob under the
// selected tab. Used by Show and by layout changes.
func (b *Bar) redraw() {
	count := len(b.tabs)
	selIdx := b.indexOf(b.selectedID)
	for i, t := range b.tabs {
		b.surface.SetTabCenter(t.ID, geometry.CenterX(i, count, b.bounds.Width))
		b.surface.SetTabIcon(t.ID, t.Icon)
		a := b.appearances[t.ID]
		selected := i == selIdx
		a.state.Lift = 0
		a.state.Disc = anim.Clear
		a.state.Tint = b.muted
		a.state.Scale = 1
		if selected {
			a.state.Lift = selectedLift
			a.state.Disc = anim.White
			a.state.Tint = a.tab.Tint
		}
		b.pushAppearance(a)
	}
	b.surface.SetBlobPath(geometry.BlobPath(geometry.CenterX(selIdx, count, b.bounds.Width), b.bounds))
}

// pathValue adapts geometry.Path to the sequencer's Value interface.
type pathValue struct {
	geometry.Path
}

func (p pathValue) Lerp(to anim.Value, t float64) anim.Value {
	return pathValue{geometry.LerpPath(p.Path, to.(pathValue).Path, t)}
}
