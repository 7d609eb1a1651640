// Package input implements the capacity-one, overwrite-on-send value
// channel attributes poll for external updates, and the companion
// Trigger for momentary (fire-and-forget) signals such as a button
// press.
package input

import "sync"

// Input is a single-slot mailbox: Send always succeeds and overwrites
// whatever value was previously pending, and Poll returns the most
// recently sent value exactly once, after which polling again returns
// ok=false until another Send arrives. There is no queueing: a
// consumer that polls slower than a producer sends only ever observes
// the latest value, never a backlog.
type Input[V any] struct {
	mu      sync.Mutex
	value   V
	pending bool
	subs    []chan V
}

// New returns an empty Input with no pending value.
func New[V any]() *Input[V] {
	return &Input[V]{}
}

// Send stores value as the pending value, discarding whatever was
// pending before, and mirrors it to every subscriber.
func (in *Input[V]) Send(value V) {
	in.mu.Lock()
	in.value = value
	in.pending = true
	subs := append([]chan V(nil), in.subs...)
	in.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub <- value:
		default:
		}
	}
}

// Poll returns the pending value and true, clearing the pending flag,
// or the zero value and false if nothing is pending.
func (in *Input[V]) Poll() (V, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if !in.pending {
		var zero V
		return zero, false
	}
	in.pending = false
	return in.value, true
}

// Subscribe returns a channel that receives a copy of every value sent
// to this Input from this point on. The channel is buffered with
// capacity 1 and drops values rather than blocking the sender if the
// subscriber falls behind, matching Input's own no-queueing contract.
func (in *Input[V]) Subscribe() <-chan V {
	ch := make(chan V, 1)
	in.mu.Lock()
	in.subs = append(in.subs, ch)
	in.mu.Unlock()
	return ch
}

// Trigger is a momentary signal with no payload: Fire marks the
// trigger as fired with a fresh, monotonically increasing id, and Poll
// reports whether a fire happened since the last Poll from this
// caller.
type Trigger struct {
	mu sync.Mutex
	id uint64
}

// NewTrigger returns a Trigger that has not fired.
func NewTrigger() *Trigger {
	return &Trigger{}
}

// Fire marks the trigger as having fired.
func (tr *Trigger) Fire() {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.id++
}

// Cursor is a per-consumer bookmark into a Trigger's fire history. A
// Trigger may be polled by multiple independent consumers, each with
// its own Cursor, so one consumer polling does not consume the fire
// for another.
type Cursor struct {
	last uint64
}

// NewCursor returns a Cursor that will report the next Poll as fired
// if the trigger has already fired at least once before this point.
func NewCursor() *Cursor {
	return &Cursor{}
}

// Poll reports whether the trigger has fired since this cursor last
// polled it.
func (tr *Trigger) Poll(c *Cursor) bool {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if tr.id == c.last {
		return false
	}
	c.last = tr.id
	return true
}
