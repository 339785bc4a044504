// Package render draws the tab bar into a terminal. It implements the
// tabs.Surface capability: the controller writes positions, paths and colors,
// and View rasterizes the current state with lipgloss. The renderer holds no
// selection logic of its own.
package render

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/calebmce/tabglide/internal/anim"
	"github.com/calebmce/tabglide/internal/geometry"
	"github.com/calebmce/tabglide/internal/tabs"
)

// Unit-to-cell mapping. Geometry runs in abstract layout units; terminal
// cells are roughly twice as tall as wide, hence the 1:2 ratio.
const (
	UnitsPerCol = 4.0
	UnitsPerRow = 8.0
)

// Fixed row layout: the bump and lifted icons live in the headroom above the
// solid bar body.
const (
	headroomRows = 4
	barRows      = 3
)

// node is the renderer's record of one tab's visual properties.
type node struct {
	icon   string
	center float64
	lift   float64
	scale  float64
	disc   anim.Paint
	tint   anim.Paint
}

// Renderer rasterizes bar state into a string for a Bubble Tea View.
type Renderer struct {
	theme   Theme
	profile termenv.Profile
	cols    int

	path    geometry.Path
	hasPath bool
	nodes   map[string]*node
}

var _ tabs.Surface = (*Renderer)(nil)

// NewRenderer returns a renderer for the current terminal's color profile.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{
		theme:   theme,
		profile: termenv.ColorProfile(),
		cols:    80,
		nodes:   make(map[string]*node),
	}
}

// SetProfile overrides color profile detection (tests, config reload).
func (r *Renderer) SetProfile(p termenv.Profile) { r.profile = p }

// SetTheme swaps the palette; the next View uses it.
func (r *Renderer) SetTheme(t Theme) { r.theme = t }

// SetColumns tells the renderer how many terminal columns it may use.
func (r *Renderer) SetColumns(cols int) {
	if cols > 0 {
		r.cols = cols
	}
}

// UnitWidth returns the bar's bounds width in layout units for the current
// column allotment. The widget feeds this to the controller on resize.
func (r *Renderer) UnitWidth() float64 { return float64(r.cols) * UnitsPerCol }

// Height returns the number of rows View produces.
func (r *Renderer) Height() int { return headroomRows + barRows }

// SetBlobPath implements tabs.Surface.
func (r *Renderer) SetBlobPath(p geometry.Path) {
	r.path = p
	r.hasPath = true
}

// SetTabCenter implements tabs.Surface.
func (r *Renderer) SetTabCenter(id string, x float64) { r.node(id).center = x }

// SetTabIcon implements tabs.Surface.
func (r *Renderer) SetTabIcon(id string, icon string) { r.node(id).icon = icon }

// SetTabLift implements tabs.Surface.
func (r *Renderer) SetTabLift(id string, lift float64) { r.node(id).lift = lift }

// SetTabScale implements tabs.Surface.
func (r *Renderer) SetTabScale(id string, s float64) { r.node(id).scale = s }

// SetTabDisc implements tabs.Surface.
func (r *Renderer) SetTabDisc(id string, p anim.Paint) { r.node(id).disc = p }

// SetTabTint implements tabs.Surface.
func (r *Renderer) SetTabTint(id string, p anim.Paint) { r.node(id).tint = p }

// RemoveTab implements tabs.Surface.
func (r *Renderer) RemoveTab(id string) { delete(r.nodes, id) }

func (r *Renderer) node(id string) *node {
	n, ok := r.nodes[id]
	if !ok {
		n = &node{scale: 1}
		r.nodes[id] = n
	}
	return n
}

// overlay is an icon placed on one row during rasterization.
type overlay struct {
	col  int
	text string
	fg   anim.Paint
	disc anim.Paint
}

// View renders the whole bar. Row 0 is the top of the headroom; the bottom
// barRows rows are the solid bar body with the blob bump rising into the
// headroom, half-block glyphs smoothing the crest.
func (r *Renderer) View() string {
	rows := r.Height()
	iconRows := r.placeIcons()

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		overlays := iconRows[row]
		sort.Slice(overlays, func(i, j int) bool { return overlays[i].col < overlays[j].col })

		next := 0
		for col := 0; col < r.cols; {
			if next < len(overlays) && overlays[next].col <= col {
				o := overlays[next]
				next++
				w := runewidth.StringWidth(o.text)
				if col+w > r.cols {
					// No room left; drop this overlay and keep
					// filling the row with background cells.
					continue
				}
				under := r.cellBg(row, col)
				bg := under
				if o.disc.A > 0 {
					bg = composite(under, o.disc)
				}
				sb.WriteString(r.style(o.fg, bg).Render(o.text))
				col += w
				continue
			}
			glyph, fg, bg := r.cell(row, col)
			sb.WriteString(r.style(fg, bg).Render(glyph))
			col++
		}
		if row < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// cell returns the background glyph and colors at (row, col), ignoring
// icons. Solid regions use full blocks so the bar stays visible even when
// colors are dropped.
func (r *Renderer) cell(row, col int) (string, anim.Paint, anim.Paint) {
	if row >= headroomRows {
		return "█", r.theme.Bar, r.theme.Bar
	}
	h := r.elevationRows(col)
	fromBottom := float64(headroomRows - 1 - row)
	switch {
	case h >= fromBottom+1:
		return "█", r.theme.Bar, r.theme.Bar
	case h >= fromBottom+0.5:
		return "▄", r.theme.Bar, r.theme.Backdrop
	default:
		return " ", r.theme.Backdrop, r.theme.Backdrop
	}
}

// cellBg is the effective color an overlay at (row, col) sits on: the bar
// fill inside the blob, the backdrop elsewhere.
func (r *Renderer) cellBg(row, col int) anim.Paint {
	if row >= headroomRows {
		return r.theme.Bar
	}
	fromBottom := float64(headroomRows - 1 - row)
	if r.elevationRows(col) >= fromBottom+1 {
		return r.theme.Bar
	}
	return r.theme.Backdrop
}

// elevationRows returns the bump height at a column, in rows.
func (r *Renderer) elevationRows(col int) float64 {
	if !r.hasPath {
		return 0
	}
	x := (float64(col) + 0.5) * UnitsPerCol
	return r.path.Elevation(x) / UnitsPerRow
}

// placeIcons lays every visible tab icon onto its row. A tab shrunk below
// half scale (mid pass-by dip) is not drawn; a negative lift is clamped into
// the bar body.
func (r *Renderer) placeIcons() map[int][]overlay {
	out := make(map[int][]overlay)
	for _, n := range r.nodes {
		if n.icon == "" || n.scale < 0.5 {
			continue
		}
		row := headroomRows - int(n.lift/UnitsPerRow+0.5)
		if row < 0 {
			row = 0
		}
		if max := r.Height() - 1; row > max {
			row = max
		}
		w := runewidth.StringWidth(n.icon)
		col := int(n.center/UnitsPerCol) - w/2
		if col < 0 {
			col = 0
		}
		if col+w > r.cols {
			col = r.cols - w
		}
		out[row] = append(out[row], overlay{col: col, text: n.icon, fg: n.tint, disc: n.disc})
	}
	return out
}

// style builds a per-cell style, dropping colors entirely on dumb terminals.
func (r *Renderer) style(fg, bg anim.Paint) lipgloss.Style {
	if r.profile == termenv.Ascii {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
}
