// Package effects provides the representative set of attribute and
// node implementations built on top of the photonic core: attributes
// that react to momentary triggers or drift over time, and nodes that
// transform or combine the buffers of other nodes.
package effects

import (
	"math/rand"
	"time"

	"github.com/fooker/photonic"
	"github.com/fooker/photonic/color"
	"github.com/fooker/photonic/input"
	"github.com/fooker/photonic/mathx"
)

// ButtonState is the closed set of states a Button attribute can be
// in: released, or pressed with a remaining hold duration.
type ButtonState struct {
	Pressed   bool
	Remaining time.Duration
}

// Button is an Attr that switches from a released to a pressed value
// for a fixed hold time whenever its trigger fires, then reverts. It
// is grounded on a press-and-hold control such as a physical button
// wired to a single trigger.
type Button[V photonic.AttrValue] struct {
	released  V
	pressed   V
	holdTime  time.Duration
	state     ButtonState
	trigger   *input.Trigger
	cursor    *input.Cursor
}

// NewButton returns a Button attribute that reads released while idle
// and pressed for holdTime after every fire of trigger.
func NewButton[V photonic.AttrValue](trigger *input.Trigger, holdTime time.Duration, released, pressed V) *Button[V] {
	return &Button[V]{
		released: released,
		pressed:  pressed,
		holdTime: holdTime,
		trigger:  trigger,
		cursor:   input.NewCursor(),
	}
}

func (b *Button[V]) Get() V {
	if b.state.Pressed {
		return b.pressed
	}
	return b.released
}

func (b *Button[V]) Update(dt time.Duration) {
	if b.trigger.Poll(b.cursor) {
		b.state = ButtonState{Pressed: true, Remaining: b.holdTime}
		return
	}
	if b.state.Pressed {
		b.state.Remaining -= dt
		if b.state.Remaining <= 0 {
			b.state = ButtonState{}
		}
	}
}

// Switch is an Attr that selects between two values based on a
// boolean-valued source attribute, without any debounce or hold time
// of its own.
type Switch[V photonic.AttrValue] struct {
	pressed  photonic.Attr[bool]
	onTrue   V
	onFalse  V
}

// NewSwitch returns a Switch attribute reading onTrue whenever pressed
// currently reads true, onFalse otherwise.
func NewSwitch[V photonic.AttrValue](pressed photonic.Attr[bool], onTrue, onFalse V) *Switch[V] {
	return &Switch[V]{pressed: pressed, onTrue: onTrue, onFalse: onFalse}
}

func (s *Switch[V]) Get() V {
	if s.pressed.Get() {
		return s.onTrue
	}
	return s.onFalse
}

func (s *Switch[V]) Update(dt time.Duration) {
	s.pressed.Update(dt)
}

// Sequence is an Attr that steps through a fixed list of values,
// advancing or retreating one step each time its next/prev triggers
// fire, wrapping around at either end.
type Sequence[V photonic.AttrValue] struct {
	values   []V
	position int
	next     *input.Trigger
	nextC    *input.Cursor
	prev     *input.Trigger
	prevC    *input.Cursor
}

// NewSequence returns a Sequence attribute over values, starting at
// index 0. next and prev may each be nil to disable stepping in that
// direction.
func NewSequence[V photonic.AttrValue](values []V, next, prev *input.Trigger) *Sequence[V] {
	s := &Sequence[V]{values: values, next: next, prev: prev}
	if next != nil {
		s.nextC = input.NewCursor()
	}
	if prev != nil {
		s.prevC = input.NewCursor()
	}
	return s
}

func (s *Sequence[V]) Get() V {
	return s.values[s.position]
}

func (s *Sequence[V]) Update(dt time.Duration) {
	n := len(s.values)
	if n == 0 {
		return
	}

	steppedNext := s.next != nil && s.next.Poll(s.nextC)
	steppedPrev := s.prev != nil && s.prev.Poll(s.prevC)

	switch {
	case steppedNext && !steppedPrev:
		s.position = (s.position + 1) % n
	case steppedPrev && !steppedNext:
		s.position = (s.position - 1 + n) % n
	}
	// both firing in the same frame cancel out, same as neither firing.
}

// Peak and Noise restrict their sampled value to float32, keeping
// per-frame-sampled signal attributes at the same precision the
// colour and brightness pipeline already uses.

// Peak is an Attr that tracks the highest value its input attribute
// has reached recently, decaying exponentially towards the input's
// current value between new peaks. It is grounded on an audio/signal
// VU-meter peak-hold display.
type Peak struct {
	input   photonic.Attr[float32]
	falloff float32
	peak    float32
}

// NewPeak returns a Peak attribute tracking input. Each frame the held
// peak is scaled by 1 - falloff*dt (in seconds, floored at 0) and then
// raised to input's current value if that is higher; e.g. falloff 0.5
// over a single one-second frame halves the held peak. A non-positive
// falloff holds the peak without decay.
func NewPeak(input photonic.Attr[float32], falloff float32) *Peak {
	return &Peak{input: input, falloff: falloff}
}

func (p *Peak) Get() float32 { return p.peak }

func (p *Peak) Update(dt time.Duration) {
	p.input.Update(dt)
	current := p.input.Get()

	decay := float32(1)
	if p.falloff > 0 {
		decay = float32(1 - dt.Seconds()*float64(p.falloff))
		if decay < 0 {
			decay = 0
		}
	}
	p.peak *= decay
	if current > p.peak {
		p.peak = current
	}
}

// Noise is an Attr whose value drifts according to a seeded 1D value
// noise field sampled along a position that advances at a speed given
// by another attribute, remapped into bounds. The field is smoothstep
// interpolation between lattice points drawn from a permutation table,
// the same technique as 2D/3D gradient noise reduced to a single axis.
type Noise struct {
	speed    photonic.Attr[float32]
	bounds   photonic.Bounds[float32]
	position float64
	noise    *rand.Rand
	perm     []int
}

// NewNoise returns a Noise attribute seeded from seed, integrating
// speed over time and remapping the result into bounds.
func NewNoise(speed photonic.Attr[float32], bounds photonic.Bounds[float32], seed int64) *Noise {
	n := &Noise{speed: speed, bounds: bounds, noise: rand.New(rand.NewSource(seed))}
	n.perm = n.noise.Perm(256)
	return n
}

func (n *Noise) Get() float32 {
	raw := n.sample(n.position)
	span := float64(n.bounds.Max - n.bounds.Min)
	return n.bounds.Min + float32(mathx.Remap(raw, 1, span))
}

func (n *Noise) Update(dt time.Duration) {
	n.speed.Update(dt)
	n.position += float64(n.speed.Get()) * dt.Seconds()
}

// Random is an Attr that jumps to a fresh uniformly distributed value
// within bounds every time its trigger fires, using a private
// *rand.Rand so scenes stay reproducible given a seed.
type Random struct {
	bounds  photonic.Bounds[float32]
	trigger *input.Trigger
	cursor  *input.Cursor
	rng     *rand.Rand
	current float32
}

// NewRandom returns a Random attribute reseeded from seed, picking a
// fresh value in bounds every time trigger fires.
func NewRandom(bounds photonic.Bounds[float32], trigger *input.Trigger, seed int64) *Random {
	r := &Random{bounds: bounds, trigger: trigger, cursor: input.NewCursor(), rng: rand.New(rand.NewSource(seed))}
	r.reroll()
	return r
}

func (r *Random) reroll() {
	span := r.bounds.Max - r.bounds.Min
	r.current = r.bounds.Min + r.rng.Float32()*span
}

func (r *Random) Get() float32 { return r.current }

func (r *Random) Update(dt time.Duration) {
	if r.trigger.Poll(r.cursor) {
		r.reroll()
	}
}

// Fader is an Attr that eases towards whatever value its wrapped
// target attr currently reads, rather than jumping to it the instant
// the target changes. A change of target restarts the fade from
// whatever value Fader currently reads, so a target that changes
// again mid-fade blends smoothly from wherever the fade had gotten to.
type Fader[V interface {
	photonic.AttrValue
	color.Element[V]
}] struct {
	target   photonic.Attr[V]
	fadeTime time.Duration
	have     bool
	from, to V
	current  V
	elapsed  time.Duration
}

// NewFader returns a Fader attribute tracking target, taking fadeTime
// to ease from one target value to the next. A non-positive fadeTime
// jumps to the target immediately, the same as no fader at all.
func NewFader[V interface {
	photonic.AttrValue
	color.Element[V]
}](target photonic.Attr[V], fadeTime time.Duration) *Fader[V] {
	return &Fader[V]{target: target, fadeTime: fadeTime}
}

func (f *Fader[V]) Get() V { return f.current }

func (f *Fader[V]) Update(dt time.Duration) {
	f.target.Update(dt)
	next := f.target.Get()

	if !f.have {
		f.have = true
		f.from, f.to, f.current = next, next, next
		return
	}

	if any(next) != any(f.to) {
		f.from, f.to, f.elapsed = f.current, next, 0
	}

	f.elapsed += dt
	if f.fadeTime <= 0 || f.elapsed >= f.fadeTime {
		f.current = f.to
		return
	}
	f.current = f.from.Lerp(f.to, float64(f.elapsed)/float64(f.fadeTime))
}

// Looper is an Attr that increments by a fixed step within bounds
// every time its trigger fires, wrapping modulo Max-Min rather than
// clamping: a step that reaches or passes Max continues from Min, so
// the value stays in [Min, Max) and Max itself is never held.
type Looper[V int64 | float32] struct {
	bounds  photonic.Bounds[V]
	step    V
	current V
	trigger *input.Trigger
	cursor  *input.Cursor
}

// NewLooper returns a Looper attribute starting at bounds.Min,
// stepping forward by step every time trigger fires.
func NewLooper[V int64 | float32](bounds photonic.Bounds[V], step V, trigger *input.Trigger) *Looper[V] {
	return &Looper[V]{bounds: bounds, step: step, current: bounds.Min, trigger: trigger, cursor: input.NewCursor()}
}

func (l *Looper[V]) Get() V { return l.current }

func (l *Looper[V]) Update(dt time.Duration) {
	if !l.trigger.Poll(l.cursor) {
		return
	}

	span := float64(l.bounds.Max) - float64(l.bounds.Min)
	if span <= 0 {
		l.current = l.bounds.Min
		return
	}
	offset := mathx.Wrap(float64(l.current)-float64(l.bounds.Min)+float64(l.step), span)
	l.current = l.bounds.Min + V(offset)
}

// sample returns a smoothly interpolated pseudo-random value in
// [0, 1] for position x, using a permutation table the same way a 1D
// value-noise generator samples gradients at integer lattice points
// and smoothly interpolates between them.
func (n *Noise) sample(x float64) float64 {
	x0 := int(x)
	frac := x - float64(x0)
	smooth := frac * frac * (3 - 2*frac)

	a := n.lattice(x0)
	b := n.lattice(x0 + 1)
	return a + smooth*(b-a)
}

func (n *Noise) lattice(i int) float64 {
	idx := n.perm[((i%256)+256)%256]
	return float64(idx) / 255
}
