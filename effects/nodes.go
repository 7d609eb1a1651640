package effects

import (
	"math"
	"math/rand"
	"time"

	"github.com/fooker/photonic"
	"github.com/fooker/photonic/arena"
	"github.com/fooker/photonic/buffer"
	"github.com/fooker/photonic/color"
	"github.com/fooker/photonic/mathx"
)

// StaticDecl declares a node whose buffer never changes: a fixed
// background or test pattern other nodes can compose over.
type StaticDecl struct {
	Values []color.RGB
}

// Materialize implements photonic.NodeDecl.
func (d StaticDecl) Materialize(name string, builder *photonic.NodeBuilder) (photonic.Node[color.RGB], error) {
	return &staticNode{buf: buffer.Slice(append([]color.RGB(nil), d.Values...))}, nil
}

type staticNode struct {
	buf buffer.BufferReader[color.RGB]
}

func (n *staticNode) Render(ctx photonic.RenderContext, preceding arena.Slice) (buffer.BufferReader[color.RGB], error) {
	return n.buf, nil
}

// BlackoutDecl declares a node that passes its source through
// unchanged when active reads false, or renders solid black when
// active reads true, restricted to an index range [Start, End) of the
// buffer.
type BlackoutDecl struct {
	Source photonic.NodeHandle[color.RGB]
	Active photonic.Attr[bool]
	Range  photonic.Attr[photonic.Range[int64]]
}

// Materialize implements photonic.NodeDecl.
func (d BlackoutDecl) Materialize(name string, builder *photonic.NodeBuilder) (photonic.Node[color.RGB], error) {
	return &blackoutNode{source: d.Source, active: d.Active, rng: d.Range}, nil
}

type blackoutNode struct {
	source photonic.NodeHandle[color.RGB]
	active photonic.Attr[bool]
	rng    photonic.Attr[photonic.Range[int64]]
}

func (n *blackoutNode) Render(ctx photonic.RenderContext, preceding arena.Slice) (buffer.BufferReader[color.RGB], error) {
	n.active.Update(ctx.Elapsed)
	n.rng.Update(ctx.Elapsed)
	src := n.source.Buffer(preceding)

	if !n.active.Get() {
		return src, nil
	}

	r := n.rng.Get()
	return buffer.MapRange(src, int(r.Start), int(r.End), func(color.RGB) color.RGB {
		return color.Black()
	}), nil
}

// BrightnessDecl declares a node that scales its source towards black
// by a brightness attribute in [0, 1].
type BrightnessDecl struct {
	Source     photonic.NodeHandle[color.RGB]
	Brightness photonic.Attr[float32]
}

// Materialize implements photonic.NodeDecl.
func (d BrightnessDecl) Materialize(name string, builder *photonic.NodeBuilder) (photonic.Node[color.RGB], error) {
	return &brightnessNode{source: d.Source, brightness: d.Brightness}, nil
}

type brightnessNode struct {
	source     photonic.NodeHandle[color.RGB]
	brightness photonic.Attr[float32]
}

func (n *brightnessNode) Render(ctx photonic.RenderContext, preceding arena.Slice) (buffer.BufferReader[color.RGB], error) {
	n.brightness.Update(ctx.Elapsed)
	src := n.source.Buffer(preceding)
	b := n.brightness.Get()

	black := buffer.FromGenerator(src.Size(), func(i int) color.RGB { return color.Black() })
	return buffer.Lerp[color.RGB](black, src, float64(b)), nil
}

// OverlayDecl declares a node that blends a base and an overlay source
// by a blend attribute in [0, 1], 0 being fully base and 1 fully
// overlay.
type OverlayDecl struct {
	Base    photonic.NodeHandle[color.RGB]
	Overlay photonic.NodeHandle[color.RGB]
	Blend   photonic.Attr[float32]
}

// Materialize implements photonic.NodeDecl.
func (d OverlayDecl) Materialize(name string, builder *photonic.NodeBuilder) (photonic.Node[color.RGB], error) {
	return &overlayNode{base: d.Base, overlay: d.Overlay, blend: d.Blend}, nil
}

type overlayNode struct {
	base    photonic.NodeHandle[color.RGB]
	overlay photonic.NodeHandle[color.RGB]
	blend   photonic.Attr[float32]
}

func (n *overlayNode) Render(ctx photonic.RenderContext, preceding arena.Slice) (buffer.BufferReader[color.RGB], error) {
	n.blend.Update(ctx.Elapsed)
	base := n.base.Buffer(preceding)
	overlay := n.overlay.Buffer(preceding)
	blend := n.blend.Get()

	return buffer.Lerp[color.RGB](base, overlay, float64(blend)), nil
}

// RotationDecl declares a node that circularly shifts its source by an
// offset attribute (measured in buffer elements, fractional offsets
// blend between the two neighbouring elements), advancing offset each
// frame by a speed attribute.
type RotationDecl struct {
	Source photonic.NodeHandle[color.RGB]
	Speed  photonic.Attr[float32] // elements per second
}

// Materialize implements photonic.NodeDecl.
func (d RotationDecl) Materialize(name string, builder *photonic.NodeBuilder) (photonic.Node[color.RGB], error) {
	return &rotationNode{source: d.Source, speed: d.Speed}, nil
}

type rotationNode struct {
	source photonic.NodeHandle[color.RGB]
	speed  photonic.Attr[float32]
	offset float64
}

func (n *rotationNode) Render(ctx photonic.RenderContext, preceding arena.Slice) (buffer.BufferReader[color.RGB], error) {
	n.speed.Update(ctx.Elapsed)
	n.offset += float64(n.speed.Get()) * ctx.Elapsed.Seconds()

	src := n.source.Buffer(preceding)
	size := src.Size()

	return buffer.IMap(src, func(i int, _ color.RGB) color.RGB {
		pos := mathx.Wrap(float64(i)-n.offset, float64(size))
		lo := int(pos)
		frac := pos - float64(lo)
		a := src.Get(lo)
		b := src.Get(lo + 1)
		return a.Lerp(b, frac)
	}), nil
}

// SelectDecl declares a node that renders exactly one of a list of
// sources each frame, chosen by an integer attribute indexing into
// Sources. Out-of-range indices wrap, the same way a Buffer wraps an
// out-of-range element index.
type SelectDecl struct {
	Sources []photonic.NodeHandle[color.RGB]
	Index   photonic.Attr[int64]
}

// Materialize implements photonic.NodeDecl.
func (d SelectDecl) Materialize(name string, builder *photonic.NodeBuilder) (photonic.Node[color.RGB], error) {
	return &selectNode{sources: d.Sources, index: d.Index}, nil
}

type selectNode struct {
	sources []photonic.NodeHandle[color.RGB]
	index   photonic.Attr[int64]
}

func (n *selectNode) Render(ctx photonic.RenderContext, preceding arena.Slice) (buffer.BufferReader[color.RGB], error) {
	n.index.Update(ctx.Elapsed)
	i := int(n.index.Get()) % len(n.sources)
	if i < 0 {
		i += len(n.sources)
	}
	return n.sources[i].Buffer(preceding), nil
}

// RaindropsDecl declares a node that sprinkles brief bright flashes
// across an otherwise dark buffer at a given average rate, each flash
// decaying back to black over its own lifetime. It holds its own seeded
// *rand.Rand rather than the global source, so a scene is reproducible
// given a seed.
type RaindropsDecl struct {
	Size     int
	Rate     photonic.Attr[float32] // expected drops per second
	Color    photonic.Attr[color.RGB]
	Lifetime time.Duration
	Seed     int64
}

// Materialize implements photonic.NodeDecl.
func (d RaindropsDecl) Materialize(name string, builder *photonic.NodeBuilder) (photonic.Node[color.RGB], error) {
	return &raindropsNode{
		size:     d.Size,
		rate:     d.Rate,
		color:    d.Color,
		lifetime: d.Lifetime,
		rng:      rand.New(rand.NewSource(d.Seed)),
		drops:    make(map[int]time.Duration),
	}, nil
}

type raindropsNode struct {
	size     int
	rate     photonic.Attr[float32]
	color    photonic.Attr[color.RGB]
	lifetime time.Duration
	rng      *rand.Rand
	drops    map[int]time.Duration // index -> remaining lifetime
}

func (n *raindropsNode) Render(ctx photonic.RenderContext, preceding arena.Slice) (buffer.BufferReader[color.RGB], error) {
	n.rate.Update(ctx.Elapsed)
	n.color.Update(ctx.Elapsed)

	expected := float64(n.rate.Get()) * ctx.Elapsed.Seconds()
	if n.rng.Float64() < expected {
		n.drops[n.rng.Intn(n.size)] = n.lifetime
	}

	for i, remaining := range n.drops {
		remaining -= ctx.Elapsed
		if remaining <= 0 {
			delete(n.drops, i)
			continue
		}
		n.drops[i] = remaining
	}

	base := n.color.Get()
	return buffer.FromGenerator(n.size, func(i int) color.RGB {
		remaining, ok := n.drops[i]
		if !ok {
			return color.Black()
		}
		return color.Black().Lerp(base, float64(remaining)/float64(n.lifetime))
	}), nil
}


// GradientDecl declares a node that lerps across its buffer from the
// From colour at the first element to the To colour at the last, each
// given by its own colour attribute.
type GradientDecl struct {
	Size int
	From photonic.Attr[color.RGB]
	To   photonic.Attr[color.RGB]
}

// Materialize implements photonic.NodeDecl.
func (d GradientDecl) Materialize(name string, builder *photonic.NodeBuilder) (photonic.Node[color.RGB], error) {
	return &gradientNode{size: d.Size, from: d.From, to: d.To}, nil
}

type gradientNode struct {
	size int
	from photonic.Attr[color.RGB]
	to   photonic.Attr[color.RGB]
}

func (n *gradientNode) Render(ctx photonic.RenderContext, preceding arena.Slice) (buffer.BufferReader[color.RGB], error) {
	n.from.Update(ctx.Elapsed)
	n.to.Update(ctx.Elapsed)
	from, to := n.from.Get(), n.to.Get()

	return buffer.FromGenerator(n.size, func(i int) color.RGB {
		if n.size <= 1 {
			return from
		}
		return from.Lerp(to, float64(i)/float64(n.size-1))
	}), nil
}

// ColorWheelDecl declares a node that paints a full hue rotation across
// the strip at a fixed saturation and value, advancing the hue offset
// over time by a speed attribute (degrees per second).
type ColorWheelDecl struct {
	Size       int
	Speed      photonic.Attr[float32]
	Saturation photonic.Attr[float32]
	Value      photonic.Attr[float32]
}

// Materialize implements photonic.NodeDecl.
func (d ColorWheelDecl) Materialize(name string, builder *photonic.NodeBuilder) (photonic.Node[color.RGB], error) {
	return &colorWheelNode{size: d.Size, speed: d.Speed, saturation: d.Saturation, value: d.Value}, nil
}

type colorWheelNode struct {
	size       int
	speed      photonic.Attr[float32]
	saturation photonic.Attr[float32]
	value      photonic.Attr[float32]
	offset     float64
}

func (n *colorWheelNode) Render(ctx photonic.RenderContext, preceding arena.Slice) (buffer.BufferReader[color.RGB], error) {
	n.speed.Update(ctx.Elapsed)
	n.saturation.Update(ctx.Elapsed)
	n.value.Update(ctx.Elapsed)
	n.offset += float64(n.speed.Get()) * ctx.Elapsed.Seconds()

	s, v := n.saturation.Get(), n.value.Get()
	size := n.size
	return buffer.FromGenerator(n.size, func(i int) color.RGB {
		hue := mathx.Wrap(float64(i)*360/float64(size)+n.offset, 360)
		return color.HSV{H: float32(hue), S: s, V: v}.ToRGB()
	}), nil
}

// LarsonDecl declares a "Larson scanner": a bright band that bounces
// back and forth across the strip, decaying to black away from its
// centre over Width elements, advancing at Speed elements per second.
type LarsonDecl struct {
	Size  int
	Speed photonic.Attr[float32]
	Width float32
	Color photonic.Attr[color.RGB]
}

// Materialize implements photonic.NodeDecl.
func (d LarsonDecl) Materialize(name string, builder *photonic.NodeBuilder) (photonic.Node[color.RGB], error) {
	return &larsonNode{size: d.Size, speed: d.Speed, width: d.Width, color: d.Color, dir: 1}, nil
}

type larsonNode struct {
	size     int
	speed    photonic.Attr[float32]
	width    float32
	color    photonic.Attr[color.RGB]
	position float64
	dir      float64
}

func (n *larsonNode) Render(ctx photonic.RenderContext, preceding arena.Slice) (buffer.BufferReader[color.RGB], error) {
	n.speed.Update(ctx.Elapsed)
	n.color.Update(ctx.Elapsed)

	span := float64(n.size - 1)
	if span > 0 {
		n.position += n.dir * float64(n.speed.Get()) * ctx.Elapsed.Seconds()
		if n.position > span {
			n.position = span - (n.position - span)
			n.dir = -1
		} else if n.position < 0 {
			n.position = -n.position
			n.dir = 1
		}
	}

	width := float64(n.width)
	if width <= 0 {
		width = 1
	}
	base := n.color.Get()
	position := n.position
	return buffer.FromGenerator(n.size, func(i int) color.RGB {
		d := math.Abs(float64(i) - position)
		t := mathx.Clamp(1-d/width, 0, 1)
		return color.Black().Lerp(base, t)
	}), nil
}

// AlertDecl declares a node that divides the strip into fixed-size
// blocks alternating between two colours, every block's brightness
// pulsing sinusoidally at Speed cycles per second.
type AlertDecl struct {
	Size      int
	BlockSize int
	ColorA    photonic.Attr[color.RGB]
	ColorB    photonic.Attr[color.RGB]
	Speed     photonic.Attr[float32]
}

// Materialize implements photonic.NodeDecl.
func (d AlertDecl) Materialize(name string, builder *photonic.NodeBuilder) (photonic.Node[color.RGB], error) {
	return &alertNode{size: d.Size, blockSize: d.BlockSize, colorA: d.ColorA, colorB: d.ColorB, speed: d.Speed}, nil
}

type alertNode struct {
	size      int
	blockSize int
	colorA    photonic.Attr[color.RGB]
	colorB    photonic.Attr[color.RGB]
	speed     photonic.Attr[float32]
	phase     float64
}

func (n *alertNode) Render(ctx photonic.RenderContext, preceding arena.Slice) (buffer.BufferReader[color.RGB], error) {
	n.colorA.Update(ctx.Elapsed)
	n.colorB.Update(ctx.Elapsed)
	n.speed.Update(ctx.Elapsed)
	n.phase += float64(n.speed.Get()) * ctx.Elapsed.Seconds()

	block := n.blockSize
	if block <= 0 {
		block = 1
	}
	pulse := (math.Sin(n.phase*2*math.Pi) + 1) / 2

	a, b := n.colorA.Get(), n.colorB.Get()
	return buffer.FromGenerator(n.size, func(i int) color.RGB {
		base := a
		if (i/block)%2 == 1 {
			base = b
		}
		return color.Black().Lerp(base, pulse)
	}), nil
}

// SpliceDecl declares a node that concatenates two sources of
// complementary sizes into one buffer: indices [0, Split) read from
// First, indices [Split, Split+Second's size) read from Second.
type SpliceDecl struct {
	First  photonic.NodeHandle[color.RGB]
	Second photonic.NodeHandle[color.RGB]
	Split  int
}

// Materialize implements photonic.NodeDecl.
func (d SpliceDecl) Materialize(name string, builder *photonic.NodeBuilder) (photonic.Node[color.RGB], error) {
	return &spliceNode{first: d.First, second: d.Second, split: d.Split}, nil
}

type spliceNode struct {
	first  photonic.NodeHandle[color.RGB]
	second photonic.NodeHandle[color.RGB]
	split  int
}

func (n *spliceNode) Render(ctx photonic.RenderContext, preceding arena.Slice) (buffer.BufferReader[color.RGB], error) {
	first := n.first.Buffer(preceding)
	second := n.second.Buffer(preceding)
	split := n.split

	return buffer.FromGenerator(split+second.Size(), func(i int) color.RGB {
		if i < split {
			return first.Get(i)
		}
		return second.Get(i - split)
	}), nil
}
