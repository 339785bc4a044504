package render

import "github.com/calebmce/tabglide/internal/anim"

// Theme is the renderer's color scheme. Per-tab tints and disc fills arrive
// through the surface interface; the theme covers everything else.
type Theme struct {
	// Bar is the blob fill color.
	Bar anim.Paint

	// Backdrop is the empty space above and around the bar.
	Backdrop anim.Paint

	// Muted is the icon color for unselected tabs. The controller reads
	// it at setup; the renderer itself only echoes what it is told.
	Muted anim.Paint
}

// DefaultTheme returns the built-in dark palette.
func DefaultTheme() Theme {
	return Theme{
		Bar:      anim.MustHex("#2d3149"),
		Backdrop: anim.MustHex("#16161e"),
		Muted:    anim.MustHex("#565f89"),
	}
}

// composite blends over onto under using over's alpha.
func composite(under, over anim.Paint) anim.Paint {
	a := over.A
	return anim.Paint{
		R: over.R*a + under.R*(1-a),
		G: over.G*a + under.G*(1-a),
		B: over.B*a + under.B*(1-a),
		A: 1,
	}
}
