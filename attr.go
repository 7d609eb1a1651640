package photonic

import (
	"time"

	"github.com/fooker/photonic/input"
)

// Attr is a value that may change once per frame. Get returns the
// current value; Update advances the attribute by the given frame
// duration, passed by value as Duration rather than by reference,
// since it is cheap to copy and attributes should not be able to
// mutate the frame's shared timing state.
type Attr[V AttrValue] interface {
	Get() V
	Update(dt time.Duration)
}

// Fixed is an Attr whose value never changes. It is the Go
// realization of a literal constant used wherever an Attr is
// expected.
type Fixed[V AttrValue] struct {
	value V
}

// NewFixed returns a Fixed attribute holding value.
func NewFixed[V AttrValue](value V) *Fixed[V] {
	return &Fixed[V]{value: value}
}

func (f *Fixed[V]) Get() V                  { return f.value }
func (f *Fixed[V]) Update(dt time.Duration) {}

// BoundInput is an Attr driven by an input.Input[V], restricted to a
// Bounds, that keeps serving its last value whenever nothing new has
// arrived on the input: "current" persists across polls that find
// nothing pending.
type BoundInput[V Boundable] struct {
	in      *input.Input[V]
	bounds  Bounds[V]
	current V
}

// NewBoundInput returns a BoundInput attribute seeded with initial,
// which must already lie within bounds, that updates from in whenever a
// new value is sent.
func NewBoundInput[V Boundable](in *input.Input[V], bounds Bounds[V], initial V) (*BoundInput[V], error) {
	current, err := bounds.Ensure(initial)
	if err != nil {
		return nil, err
	}
	return &BoundInput[V]{in: in, bounds: bounds, current: current}, nil
}

func (a *BoundInput[V]) Get() V { return a.current }

// Update polls in for a new value, adopting it only if it lies within
// bounds; an out-of-bounds poll is discarded and current is left
// unchanged, rather than clamped to the nearest bound.
func (a *BoundInput[V]) Update(dt time.Duration) {
	v, ok := a.in.Poll()
	if !ok {
		return
	}
	if current, err := a.bounds.Ensure(v); err == nil {
		a.current = current
	}
}

// UnboundInput is an Attr driven by an input.Input[V] with no bounds
// restriction, for value types (colours, ranges) that are never
// clamped.
type UnboundInput[V AttrValue] struct {
	in      *input.Input[V]
	current V
}

// NewUnboundInput returns an UnboundInput attribute seeded with
// initial that updates from in whenever a new value is sent.
func NewUnboundInput[V AttrValue](in *input.Input[V], initial V) *UnboundInput[V] {
	return &UnboundInput[V]{in: in, current: initial}
}

func (a *UnboundInput[V]) Get() V { return a.current }

func (a *UnboundInput[V]) Update(dt time.Duration) {
	if v, ok := a.in.Poll(); ok {
		a.current = v
	}
}
