// Package tabs implements the tab bar's selection state machine: the ordered
// tab list, the per-tab visual state, and the controller that turns selection
// requests into animated transitions and lifecycle events.
//
// All state here is owned by a single goroutine (the UI loop). The package
// never renders anything itself; drawing goes through the Surface capability.
package tabs

import (
	"github.com/calebmce/tabglide/internal/anim"
	"github.com/calebmce/tabglide/internal/geometry"
)

// Tab is one selectable entry in the bar. Identity is the ID alone: two tabs
// with the same ID are the same tab regardless of tint or icon.
type Tab struct {
	ID   string
	Tint anim.Paint
	Icon string
}

// Surface is the rendering capability the bar draws through. The terminal
// renderer implements it; tests use fakes. Implementations must treat every
// call as a plain property write with no side effects on bar state.
type Surface interface {
	// SetBlobPath replaces the background blob outline.
	SetBlobPath(p geometry.Path)

	// SetTabCenter positions a tab's visual node, in layout units.
	SetTabCenter(id string, x float64)

	// SetTabIcon replaces a tab's visual content.
	SetTabIcon(id string, icon string)

	// SetTabLift sets a tab's vertical offset above its resting position.
	// Negative values dip the tab below the resting line (pass-by).
	SetTabLift(id string, lift float64)

	// SetTabScale sets a tab's scale factor (1 at rest).
	SetTabScale(id string, scale float64)

	// SetTabDisc sets the fill of the disc behind a tab's icon.
	SetTabDisc(id string, fill anim.Paint)

	// SetTabTint sets a tab's icon color.
	SetTabTint(id string, tint anim.Paint)

	// RemoveTab destroys the visual node for a tab that is no longer in
	// the set. Removing an unknown id is a no-op.
	RemoveTab(id string)
}
