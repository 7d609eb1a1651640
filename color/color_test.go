package color

import "testing"

func TestRGBLerp(t *testing.T) {
	a := RGB{R: 0, G: 0, B: 0}
	b := RGB{R: 1, G: 1, B: 1}

	got := a.Lerp(b, 0.5)
	want := RGB{R: 0.5, G: 0.5, B: 0.5}
	if got != want {
		t.Errorf("Lerp(0.5) = %+v, want %+v", got, want)
	}

	if got := a.Lerp(b, -1); got != a {
		t.Errorf("Lerp(-1) = %+v, want clamped to %+v", got, a)
	}
	if got := a.Lerp(b, 2); got != b {
		t.Errorf("Lerp(2) = %+v, want clamped to %+v", got, b)
	}
}

func TestHSVRoundTrip(t *testing.T) {
	cases := []RGB{
		{R: 1, G: 0, B: 0},
		{R: 0, G: 1, B: 0},
		{R: 0, G: 0, B: 1},
		{R: 0, G: 0, B: 0},
		{R: 1, G: 1, B: 1},
	}
	for _, c := range cases {
		hsv := FromRGB(c)
		back := hsv.ToRGB()
		if !approxEq(c.R, back.R) || !approxEq(c.G, back.G) || !approxEq(c.B, back.B) {
			t.Errorf("round trip of %+v via HSV = %+v", c, back)
		}
	}
}

func TestHSVLerpShortestPath(t *testing.T) {
	a := HSV{H: 350, S: 1, V: 1}
	b := HSV{H: 10, S: 1, V: 1}

	got := a.Lerp(b, 0.5)
	if got.H != 0 {
		t.Errorf("Lerp across wrap = %v, want 0 (shortest path through 0, not through 180)", got.H)
	}
}

func TestRGBWSplitAccurate(t *testing.T) {
	c := RGBW{RGB: RGB{R: 0.6, G: 0.4, B: 0.2}, W: 0, Mode: WhiteAccurate}
	rgb, white := c.Split()

	if white <= 0 {
		t.Errorf("Split() white = %v, want > 0 for accurate mode with shared minimum", white)
	}
	if rgb.B != 0 {
		t.Errorf("Split() leftover blue = %v, want 0 (fully absorbed into white)", rgb.B)
	}
}

func TestRGBWSplitNone(t *testing.T) {
	c := RGBW{RGB: RGB{R: 1, G: 1, B: 1}, W: 1, Mode: WhiteNone}
	rgb, white := c.Split()
	if white != 0 {
		t.Errorf("Split() white = %v, want 0 for WhiteNone", white)
	}
	if rgb != c.RGB {
		t.Errorf("Split() rgb = %+v, want unchanged %+v", rgb, c.RGB)
	}
}

func approxEq(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-4
}
