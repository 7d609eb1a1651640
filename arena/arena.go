// Package arena provides an append-only, typed container for building a
// scene graph where later elements may reference earlier ones without
// the graph itself ever needing to express that reference as a Go
// pointer cycle or interface value.
//
// Elements are stored as a flat slice of any. A Ref[E] remembers the
// element type at the type level so callers get back a concrete E
// instead of reflecting on every access. Because Go forbids asserting
// a bare type parameter against its own static type, the assertion
// happens inside free functions (Get, Index) rather than as a method
// on Arena itself.
package arena

import "fmt"

// Ref is an opaque handle to an element of type E previously appended
// to an Arena. A Ref is only valid for the Arena that produced it.
type Ref[E any] struct {
	index int
}

// Arena is a growable, append-only sequence of heterogeneous elements.
// The zero value is an empty, ready-to-use Arena.
type Arena struct {
	elements []any
}

// New returns an empty Arena.
func New() *Arena {
	return &Arena{}
}

// Len reports the number of elements appended so far.
func (a *Arena) Len() int {
	return len(a.elements)
}

// Append adds element to the arena and returns a Ref that can later be
// used to retrieve it via Get or to index a Slice taken from this
// arena.
func Append[E any](a *Arena, element E) Ref[E] {
	ref := Ref[E]{index: len(a.elements)}
	a.elements = append(a.elements, element)
	return ref
}

// Get returns the element referred to by ref. It panics if ref's index
// is out of range or holds an element of a different type, which can
// only happen by misuse since Ref values are otherwise opaque. A Ref
// from another arena is not detected when its index and type happen to
// match.
func Get[E any](a *Arena, ref Ref[E]) E {
	if ref.index < 0 || ref.index >= len(a.elements) {
		panic(fmt.Sprintf("arena: ref index %d out of bounds (len %d)", ref.index, len(a.elements)))
	}
	v, ok := a.elements[ref.index].(E)
	if !ok {
		panic(fmt.Sprintf("arena: ref index %d holds %T, not requested type", ref.index, a.elements[ref.index]))
	}
	return v
}

// Slice is a read-only view over the elements appended to an Arena up
// to the point the Slice was taken. It lets a walk hand each element a
// view of only the elements that precede it, which is what makes it
// safe for an element to hold Refs into earlier elements: by the time
// any element runs, everything it could reference already exists.
type Slice struct {
	elements []any
}

// TryWalk calls fn once for every element currently in the arena, in
// append order, passing each element a Slice containing only the
// elements appended before it. If fn returns an error for any element,
// TryWalk stops and returns that error immediately.
func TryWalk(a *Arena, fn func(element any, preceding Slice) error) error {
	for i, e := range a.elements {
		if err := fn(e, Slice{elements: a.elements[:i]}); err != nil {
			return err
		}
	}
	return nil
}

// Full returns a Slice over every element currently in the arena,
// useful once a full walk has completed and the caller wants to read
// back the result of the final element's render.
func Full(a *Arena) Slice {
	return Slice{elements: a.elements}
}

// Index returns the element referred to by ref from within a
// preceding Slice. It panics under the same conditions as Get.
func Index[E any](s Slice, ref Ref[E]) E {
	if ref.index < 0 || ref.index >= len(s.elements) {
		panic(fmt.Sprintf("arena: ref index %d out of bounds for preceding slice (len %d)", ref.index, len(s.elements)))
	}
	v, ok := s.elements[ref.index].(E)
	if !ok {
		panic(fmt.Sprintf("arena: ref index %d holds %T, not requested type", ref.index, s.elements[ref.index]))
	}
	return v
}
