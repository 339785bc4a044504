package anim

import (
	"math"
	"testing"
)

func TestEasings_Endpoints(t *testing.T) {
	for name, e := range map[string]Easing{"linear": Linear, "ease-out": EaseOut, "ease-in-out": EaseInOut} {
		if got := e(0); math.Abs(got) > 1e-9 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := e(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}

	// Ease-out front-loads progress, ease-in-out is symmetric.
	if EaseOut(0.25) <= 0.25 {
		t.Errorf("EaseOut(0.25) = %v, want > 0.25", EaseOut(0.25))
	}
	if got := EaseInOut(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("EaseInOut(0.5) = %v, want 0.5", got)
	}
}

func TestFloatLerp(t *testing.T) {
	got := Float(10).Lerp(Float(20), 0.5)
	if got != Float(15) {
		t.Errorf("Float lerp = %v, want 15", got)
	}
}

func TestPaintLerp(t *testing.T) {
	mid := Clear.Lerp(White, 0.5).(Paint)
	want := Paint{R: 0.5, G: 0.5, B: 0.5, A: 0.5}
	if mid != want {
		t.Errorf("Clear->White midpoint = %+v, want %+v", mid, want)
	}
}

func TestParseHex(t *testing.T) {
	cases := map[string]Paint{
		"#ffffff": White,
		"ffffff":  White,
		"#000000": {A: 1},
		"#f00":    {R: 1, A: 1},
	}
	for in, want := range cases {
		got, err := ParseHex(in)
		if err != nil {
			t.Errorf("ParseHex(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseHex(%q) = %+v, want %+v", in, got, want)
		}
	}

	for _, in := range []string{"", "#12", "#12345", "#gggggg", "not-a-color"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q) succeeded, want error", in)
		}
	}
}

func TestPaintHexRoundTrip(t *testing.T) {
	p := MustHex("#7aa2f7")
	if got := p.Hex(); got != "#7aa2f7" {
		t.Errorf("Hex() = %q, want #7aa2f7", got)
	}
}
