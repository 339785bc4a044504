package geometry

// Point is a position in layout units. Y grows downward; the bar's top edge
// is y=0, so points above the bar have negative Y.
type Point struct {
	X, Y float64
}

// Rect is the bar's bounds. The origin is the top-left corner.
type Rect struct {
	Width, Height float64
}

// Segment is one cubic Bézier segment. Straight edges are encoded as
// degenerate cubics with collinear control points so every blob path has the
// same segment structure and any two of them can be interpolated.
type Segment struct {
	C1, C2, End Point
}

// Path is a closed outline: a start point followed by cubic segments. The
// last segment ends back at Start.
type Path struct {
	Start    Point
	Segments []Segment
}

// Blob path segment layout, fixed by construction in BlobPath. The two bump
// cubics sit between the top-left run and the closing top-right run.
const (
	segRightEdge = iota
	segBottomEdge
	segLeftEdge
	segTopLead
	segBumpUp
	segBumpDown
	segTopClose

	blobSegments
)

// line returns a degenerate cubic from a to b.
func line(a, b Point) Segment {
	return Segment{
		C1:  Point{a.X + (b.X-a.X)/3, a.Y + (b.Y-a.Y)/3},
		C2:  Point{a.X + 2*(b.X-a.X)/3, a.Y + 2*(b.Y-a.Y)/3},
		End: b,
	}
}

// BlobPath returns the bar outline with the bump swelling up under centerX.
// The path starts at the top-right corner and traces the rectangle
// counter-clockwise: down the right edge, along the bottom, up the left edge,
// then rightward along the top edge, diverting into a symmetric two-cubic
// notch of half-width 2*ItemWidth and peak height ItemWidth+10 above the top
// edge. The segment count and kinds are identical for every centerX, so the
// result of any two calls can be fed to LerpPath.
func BlobPath(centerX float64, b Rect) Path {
	var (
		topRight    = Point{b.Width, 0}
		bottomRight = Point{b.Width, b.Height}
		bottomLeft  = Point{0, b.Height}
		topLeft     = Point{0, 0}

		bumpStart = Point{centerX - 2*ItemWidth, 0}
		bumpPeak  = Point{centerX, -(ItemWidth + bumpMargin)}
		bumpEnd   = Point{centerX + 2*ItemWidth, 0}
	)
	return Path{
		Start: topRight,
		Segments: []Segment{
			segRightEdge:  line(topRight, bottomRight),
			segBottomEdge: line(bottomRight, bottomLeft),
			segLeftEdge:   line(bottomLeft, topLeft),
			segTopLead:    line(topLeft, bumpStart),
			segBumpUp: {
				C1:  Point{centerX - ItemWidth, 0},
				C2:  Point{centerX - ItemWidth, bumpPeak.Y},
				End: bumpPeak,
			},
			segBumpDown: {
				C1:  Point{centerX + ItemWidth, bumpPeak.Y},
				C2:  Point{centerX + ItemWidth, 0},
				End: bumpEnd,
			},
			segTopClose: line(bumpEnd, topRight),
		},
	}
}

// LerpPath interpolates pointwise between two structurally compatible paths.
// t=0 yields a, t=1 yields b. Panics when the paths have different segment
// counts; that is a programming error, not a runtime condition.
func LerpPath(a, b Path, t float64) Path {
	if len(a.Segments) != len(b.Segments) {
		panic("geometry: LerpPath on incompatible paths")
	}
	out := Path{
		Start:    lerpPoint(a.Start, b.Start, t),
		Segments: make([]Segment, len(a.Segments)),
	}
	for i := range a.Segments {
		out.Segments[i] = Segment{
			C1:  lerpPoint(a.Segments[i].C1, b.Segments[i].C1, t),
			C2:  lerpPoint(a.Segments[i].C2, b.Segments[i].C2, t),
			End: lerpPoint(a.Segments[i].End, b.Segments[i].End, t),
		}
	}
	return out
}

func lerpPoint(a, b Point, t float64) Point {
	return Point{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// startOf returns the start point of segment i.
func (p Path) startOf(i int) Point {
	if i == 0 {
		return p.Start
	}
	return p.Segments[i-1].End
}

// cubicAt evaluates segment i at parameter t in [0,1].
func (p Path) cubicAt(i int, t float64) Point {
	p0 := p.startOf(i)
	s := p.Segments[i]
	u := 1 - t
	return Point{
		X: u*u*u*p0.X + 3*u*u*t*s.C1.X + 3*u*t*t*s.C2.X + t*t*t*s.End.X,
		Y: u*u*u*p0.Y + 3*u*u*t*s.C1.Y + 3*u*t*t*s.C2.Y + t*t*t*s.End.Y,
	}
}

// Elevation returns the bump height above the top edge at x, and 0 outside
// the bump. Only paths built by BlobPath (or interpolations of them) are
// meaningful arguments. The bump cubics are monotone in x, which interpolation
// preserves, so the parameter is located by bisection.
func (p Path) Elevation(x float64) float64 {
	if len(p.Segments) != blobSegments {
		return 0
	}
	for _, i := range [2]int{segBumpUp, segBumpDown} {
		x0 := p.startOf(i).X
		x1 := p.Segments[i].End.X
		if x < x0 || x > x1 {
			continue
		}
		lo, hi := 0.0, 1.0
		for iter := 0; iter < 40; iter++ {
			mid := (lo + hi) / 2
			if p.cubicAt(i, mid).X < x {
				lo = mid
			} else {
				hi = mid
			}
		}
		y := p.cubicAt(i, (lo+hi)/2).Y
		if y < 0 {
			return -y
		}
		return 0
	}
	return 0
}
