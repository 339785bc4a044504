package anim

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is anything the sequencer can interpolate. Implementations must
// return a value of their own concrete type; mixing types in one transition
// is a programming error.
type Value interface {
	Lerp(to Value, t float64) Value
}

// Float is a scalar animatable value (lift offsets, scales, progress).
type Float float64

// Lerp implements Value.
func (f Float) Lerp(to Value, t float64) Value {
	o := to.(Float)
	return f + (o-f)*Float(t)
}

// Paint is an animatable RGBA color. Channels are in [0,1]; A=0 is fully
// transparent, which is how the unselected disc is encoded.
type Paint struct {
	R, G, B, A float64
}

// Common paints.
var (
	Clear = Paint{}
	White = Paint{R: 1, G: 1, B: 1, A: 1}
)

// Lerp implements Value.
func (p Paint) Lerp(to Value, t float64) Value {
	o := to.(Paint)
	return Paint{
		R: p.R + (o.R-p.R)*t,
		G: p.G + (o.G-p.G)*t,
		B: p.B + (o.B-p.B)*t,
		A: p.A + (o.A-p.A)*t,
	}
}

// WithAlpha returns the paint with its alpha channel replaced.
func (p Paint) WithAlpha(a float64) Paint {
	p.A = a
	return p
}

// Hex renders the paint as a #rrggbb string, ignoring alpha. Suitable for
// lipgloss/termenv color values.
func (p Paint) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(p.R), channel(p.G), channel(p.B))
}

func channel(v float64) int {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return int(v*255 + 0.5)
}

// ParseHex parses a #rgb or #rrggbb color string into an opaque paint.
func ParseHex(s string) (Paint, error) {
	raw := strings.TrimPrefix(s, "#")
	var r, g, b int64
	var err error
	switch len(raw) {
	case 3:
		r, g, b, err = parseNibbles(raw)
	case 6:
		r, err = strconv.ParseInt(raw[0:2], 16, 0)
		if err == nil {
			g, err = strconv.ParseInt(raw[2:4], 16, 0)
		}
		if err == nil {
			b, err = strconv.ParseInt(raw[4:6], 16, 0)
		}
	default:
		return Paint{}, fmt.Errorf("invalid color %q", s)
	}
	if err != nil {
		return Paint{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Paint{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}, nil
}

func parseNibbles(raw string) (r, g, b int64, err error) {
	vals := make([]int64, 3)
	for i := 0; i < 3; i++ {
		v, perr := strconv.ParseInt(raw[i:i+1], 16, 0)
		if perr != nil {
			return 0, 0, 0, perr
		}
		vals[i] = v*16 + v
	}
	return vals[0], vals[1], vals[2], nil
}

// MustHex is ParseHex for compile-time constants; it panics on malformed
// input.
func MustHex(s string) Paint {
	p, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return p
}
