package tabs

import (
	"time"

	"github.com/calebmce/tabglide/internal/anim"
	"github.com/calebmce/tabglide/internal/geometry"
)

// Visual state constants.
const (
	// selectedLift is how far a selected tab rises above the bar.
	selectedLift = geometry.ItemWidth

	// passScale is the minimum scale a tab shrinks to while a jump passes
	// it by.
	passScale = 0.2

	// passDip is how far a passed-by tab translates downward at the
	// deepest point of its dip.
	passDip = 10.0
)

// Appearance is a tab's current visual state as the controller tracks it.
// Lift is the upward offset (selectedLift when selected), Scale is 1 at rest,
// Disc is the background disc fill and Tint the icon color.
type Appearance struct {
	Lift  float64
	Scale float64
	Disc  anim.Paint
	Tint  anim.Paint
}

// appearance couples a tab with its tracked visual state.
type appearance struct {
	tab   Tab
	state Appearance
}

func newAppearance(t Tab, muted anim.Paint) *appearance {
	return &appearance{
		tab: t,
		state: Appearance{
			Scale: 1,
			Disc:  anim.Clear,
			Tint:  muted,
		},
	}
}

// tabTarget is the sequencer target key for one tab's transitions.
func tabTarget(id string) string { return "tab:" + id }

// pushAppearance forwards a tab's full tracked state to the surface.
func (b *Bar) pushAppearance(a *appearance) {
	b.surface.SetTabLift(a.tab.ID, a.state.Lift)
	b.surface.SetTabScale(a.tab.ID, a.state.Scale)
	b.surface.SetTabDisc(a.tab.ID, a.state.Disc)
	b.surface.SetTabTint(a.tab.ID, a.state.Tint)
}

// setSelected applies a tab's selected or unselected appearance.
//
// Unanimated, all three properties snap at once. Animated, the icon tint
// still snaps while the lift (ease-out) and the disc fill (ease-in-out) run
// as two concurrent timed transitions; each finalizes its own resting value
// on completion.
//
// Both paths go through the sequencer: a zero-duration submit completes
// synchronously and, like any submit, supersedes a transition still running
// on the same key, so a stale completion cannot overwrite the snapped state.
func (b *Bar) setSelected(a *appearance, selected, animated bool) {
	targetLift := 0.0
	targetDisc := anim.Clear
	targetTint := b.muted
	if selected {
		targetLift = selectedLift
		targetDisc = anim.White
		targetTint = a.tab.Tint
	}

	// Tint is never animated.
	a.state.Tint = targetTint
	b.surface.SetTabTint(a.tab.ID, targetTint)

	var duration time.Duration
	if animated {
		duration = anim.ShiftDuration
	}

	id := a.tab.ID
	b.seq.Submit(anim.Request{
		Target:   tabTarget(id),
		Tag:      anim.TagTabShift,
		From:     anim.Float(a.state.Lift),
		To:       anim.Float(targetLift),
		Duration: duration,
		Easing:   anim.EaseOut,
		OnUpdate: func(v anim.Value) {
			b.surface.SetTabLift(id, float64(v.(anim.Float)))
		},
		OnComplete: func() {
			a.state.Lift = targetLift
		},
	})
	b.seq.Submit(anim.Request{
		Target:   tabTarget(id),
		Tag:      anim.TagTabBackgroundShift,
		From:     a.state.Disc,
		To:       targetDisc,
		Duration: duration,
		Easing:   anim.EaseInOut,
		OnUpdate: func(v anim.Value) {
			b.surface.SetTabDisc(id, v.(anim.Paint))
		},
		OnComplete: func() {
			a.state.Disc = targetDisc
		},
	})
}

// applyShiftDown plays the transient pass-by dip on a tab that a multi-step
// jump skips over: translate down and shrink to passScale, auto-reversing,
// with no resting change. The transition's progress drives both properties.
func (b *Bar) applyShiftDown(a *appearance) {
	id := a.tab.ID
	restLift := a.state.Lift
	restScale := a.state.Scale
	b.seq.Submit(anim.Request{
		Target:      tabTarget(id),
		Tag:         anim.TagPassThrough,
		From:        anim.Float(0),
		To:          anim.Float(1),
		Duration:    anim.PassDuration,
		Easing:      anim.EaseInOut,
		AutoReverse: true,
		OnUpdate: func(v anim.Value) {
			p := float64(v.(anim.Float))
			b.surface.SetTabLift(id, restLift-passDip*p)
			b.surface.SetTabScale(id, restScale-(restScale-passScale)*p)
		},
	})
}
