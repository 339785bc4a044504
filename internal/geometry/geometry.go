// Package geometry computes tab positions and the blob outline for the tab
// bar. Everything here is a pure function of (tab count, bounds); nothing is
// cached or retained between calls.
package geometry

// Length constants shared by the whole widget, in abstract layout units.
const (
	// ItemWidth is the nominal width of one tab item. It also sets the
	// selected-tab lift distance and half the clickable zone width.
	ItemWidth = 25.0

	// CornerRadius is the bar's corner inset used when laying out more
	// than three tabs.
	CornerRadius = 8.0

	// bumpMargin is the extra height of the blob bump above ItemWidth.
	bumpMargin = 10.0
)

// CenterX returns the horizontal center of the tab at index for the given tab
// count and bounds width.
//
// Up to three tabs are spaced evenly with symmetric margins: the track is
// divided into count+1 equal segments and tabs sit on the segment boundaries.
// Beyond three, tabs are spread across an inset track with fixed edge insets
// so the outer tabs stay clear of the rounded corners.
func CenterX(index, count int, width float64) float64 {
	if count <= 3 {
		return width / float64(count+1) * float64(index+1)
	}
	startX := 2*CornerRadius + ItemWidth
	delta := (width - 2*startX) / float64(count-1)
	return startX + delta*float64(index)
}

// HitIndex resolves a tap position to a tab index. Each tab's clickable zone
// is CenterX(i) ± 2*ItemWidth; zones are tested in index order, so when dense
// tabs overlap the lower index wins. Returns false when no zone contains x.
func HitIndex(x float64, count int, width float64) (int, bool) {
	for i := 0; i < count; i++ {
		c := CenterX(i, count, width)
		if x >= c-2*ItemWidth && x <= c+2*ItemWidth {
			return i, true
		}
	}
	return 0, false
}
