// Package color implements the pixel colour types Photonic buffers and
// attributes carry: plain RGB, HSV/HSL for effects that are easier to
// express as hue rotations, and RGBW for fixtures with a dedicated
// white channel. Every type implements Element so it can be the
// element type of a buffer.Buffer; of these, only RGB is also an
// attribute value type.
package color

import "math"

// Element is satisfied by any colour (or scalar) type that knows how
// to blend towards another value of its own type. Rather than a single
// blanket Lerp function reflecting over numeric kinds, each type
// provides its own typed implementation via this F-bounded constraint.
type Element[E any] interface {
	Lerp(other E, i float64) E
}

// RGB is a colour in linear red/green/blue space, each channel
// normalized to [0, 1].
type RGB struct {
	R, G, B float32
}

// Black returns the zero colour.
func Black() RGB { return RGB{} }

// Lerp blends the receiver towards other by fraction i, clamped to
// [0, 1].
func (c RGB) Lerp(other RGB, i float64) RGB {
	i = clamp01(i)
	return RGB{
		R: lerp32(c.R, other.R, i),
		G: lerp32(c.G, other.G, i),
		B: lerp32(c.B, other.B, i),
	}
}

// HSV is a colour in hue/saturation/value space. Hue is in degrees
// [0, 360), saturation and value in [0, 1].
type HSV struct {
	H, S, V float32
}

// Lerp blends the receiver towards other by fraction i, taking the
// shorter path around the hue circle.
func (c HSV) Lerp(other HSV, i float64) HSV {
	i = clamp01(i)
	return HSV{
		H: lerpHue(c.H, other.H, i),
		S: lerp32(c.S, other.S, i),
		V: lerp32(c.V, other.V, i),
	}
}

// ToRGB converts an HSV colour to linear RGB.
func (c HSV) ToRGB() RGB {
	h := math.Mod(float64(c.H), 360)
	if h < 0 {
		h += 360
	}
	s, v := float64(c.S), float64(c.V)

	cc := v * s
	x := cc * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - cc

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = cc, x, 0
	case h < 120:
		r, g, b = x, cc, 0
	case h < 180:
		r, g, b = 0, cc, x
	case h < 240:
		r, g, b = 0, x, cc
	case h < 300:
		r, g, b = x, 0, cc
	default:
		r, g, b = cc, 0, x
	}

	return RGB{R: float32(r + m), G: float32(g + m), B: float32(b + m)}
}

// FromRGB converts a linear RGB colour to HSV.
func FromRGB(c RGB) HSV {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	var h float64
	switch {
	case delta == 0:
		h = 0
	case max == r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case max == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	var s float64
	if max != 0 {
		s = delta / max
	}

	return HSV{H: float32(h), S: float32(s), V: float32(max)}
}

// WhiteMode controls how an RGBW value's white channel interacts with
// its colour channels.
type WhiteMode int

const (
	// WhiteNone ignores the white channel entirely; colour channels
	// carry the full output.
	WhiteNone WhiteMode = iota
	// WhiteBrighter adds the white channel on top of the colour
	// channels, increasing perceived brightness without desaturating.
	WhiteBrighter
	// WhiteAccurate substitutes the shared minimum of the colour
	// channels for a proportional amount of white, for fixtures whose
	// white LED is colour-accurate enough to replace mixed colour.
	WhiteAccurate
)

// RGBW is an RGB colour plus a dedicated white channel.
type RGBW struct {
	RGB
	W    float32
	Mode WhiteMode
}

// Lerp blends both the colour channels and the white channel.
func (c RGBW) Lerp(other RGBW, i float64) RGBW {
	i = clamp01(i)
	return RGBW{
		RGB:  c.RGB.Lerp(other.RGB, i),
		W:    lerp32(c.W, other.W, i),
		Mode: c.Mode,
	}
}

// Split decomposes the RGBW value into a pure colour and a white
// level according to its Mode.
func (c RGBW) Split() (RGB, float32) {
	switch c.Mode {
	case WhiteAccurate:
		white := minChannel(c.RGB)
		return RGB{R: c.R - white, G: c.G - white, B: c.B - white}, c.W + white
	case WhiteBrighter:
		return c.RGB, c.W
	default:
		return c.RGB, 0
	}
}

func minChannel(c RGB) float32 {
	m := c.R
	if c.G < m {
		m = c.G
	}
	if c.B < m {
		m = c.B
	}
	return m
}

func clamp01(i float64) float64 {
	if i < 0 {
		return 0
	}
	if i > 1 {
		return 1
	}
	return i
}

func lerp32(a, b float32, i float64) float32 {
	return a + float32(i)*(b-a)
}

func lerpHue(a, b float32, i float64) float32 {
	d := b - a
	switch {
	case d > 180:
		d -= 360
	case d < -180:
		d += 360
	}
	h := a + float32(i)*d
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	return h
}
