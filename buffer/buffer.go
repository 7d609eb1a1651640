// Package buffer implements the fixed-size pixel buffers nodes render
// into, and the lazy BufferReader combinators (Map, IMap, MapRange,
// Lerp, SubRange, Slice) that let a node compose a view over another
// node's buffer without copying it.
package buffer

import "github.com/fooker/photonic/color"

// BufferReader is a read-only, fixed-size, index-addressed sequence of
// values. A Buffer is the concrete, owning implementation; Map/IMap/
// MapRange/Lerp/SubRange build lazy views over any BufferReader
// without materializing a new backing array, and Slice wraps a plain Go
// slice as a BufferReader.
type BufferReader[E any] interface {
	Size() int
	Get(i int) E
}

// Buffer is an owning, fixed-size sequence of pixel values.
type Buffer[E any] struct {
	values []E
}

// New returns a Buffer of the given size with every element set to
// the zero value of E.
func New[E any](size int) *Buffer[E] {
	return &Buffer[E]{values: make([]E, size)}
}

// FromGenerator returns a Buffer of the given size with element i set
// to gen(i).
func FromGenerator[E any](size int, gen func(i int) E) *Buffer[E] {
	b := New[E](size)
	for i := range b.values {
		b.values[i] = gen(i)
	}
	return b
}

// Size returns the number of elements in the buffer.
func (b *Buffer[E]) Size() int {
	return len(b.values)
}

// Get returns the element at index i, wrapping i into range the same
// way Set does.
func (b *Buffer[E]) Get(i int) E {
	return b.values[wrap(i, len(b.values))]
}

// Set stores value at index i, wrapping i into range so negative or
// overflowing indices still address a valid element.
func (b *Buffer[E]) Set(i int, value E) {
	b.values[wrap(i, len(b.values))] = value
}

// Update replaces every element of the buffer in place by calling fn
// with each index and its current value.
func (b *Buffer[E]) Update(fn func(i int, current E) E) {
	for i := range b.values {
		b.values[i] = fn(i, b.values[i])
	}
}

// TryUpdate replaces every element of the buffer in place, stopping
// and leaving the buffer untouched if fn returns an error for any
// index: either every element is updated, or none are.
func (b *Buffer[E]) TryUpdate(fn func(i int, current E) (E, error)) error {
	next := make([]E, len(b.values))
	for i, v := range b.values {
		updated, err := fn(i, v)
		if err != nil {
			return err
		}
		next[i] = updated
	}
	copy(b.values, next)
	return nil
}

// BlitFrom overwrites the buffer's contents by reading from src, which
// must be the same size.
func (b *Buffer[E]) BlitFrom(src BufferReader[E]) {
	for i := 0; i < len(b.values) && i < src.Size(); i++ {
		b.values[i] = src.Get(i)
	}
}

func wrap(i, size int) int {
	if size == 0 {
		return 0
	}
	i %= size
	if i < 0 {
		i += size
	}
	return i
}

// mapped is a lazy BufferReader applying fn to every element of an
// underlying reader.
type mapped[S, T any] struct {
	src BufferReader[S]
	fn  func(S) T
}

// Map returns a BufferReader that lazily applies fn to every element
// of src.
func Map[S, T any](src BufferReader[S], fn func(S) T) BufferReader[T] {
	return mapped[S, T]{src: src, fn: fn}
}

func (m mapped[S, T]) Size() int    { return m.src.Size() }
func (m mapped[S, T]) Get(i int) T  { return m.fn(m.src.Get(i)) }

// imapped is a lazy BufferReader applying an index-aware fn to every
// element of an underlying reader.
type imapped[S, T any] struct {
	src BufferReader[S]
	fn  func(int, S) T
}

// IMap returns a BufferReader that lazily applies fn, given both the
// index and the element, to every element of src.
func IMap[S, T any](src BufferReader[S], fn func(int, S) T) BufferReader[T] {
	return imapped[S, T]{src: src, fn: fn}
}

func (m imapped[S, T]) Size() int   { return m.src.Size() }
func (m imapped[S, T]) Get(i int) T { return m.fn(i, m.src.Get(i)) }

// ranged is a lazy BufferReader presenting a sub-range of a larger
// reader, optionally reversed.
type ranged[E any] struct {
	src      BufferReader[E]
	start    int
	size     int
	reversed bool
}

// SubRange returns a BufferReader presenting only the elements of src
// in [start, start+size), reading them in reverse if reversed is true.
// Index i reads src at start+i (start+size-1-i when reversed); element
// values are passed through unchanged.
func SubRange[E any](src BufferReader[E], start, size int, reversed bool) BufferReader[E] {
	return ranged[E]{src: src, start: start, size: size, reversed: reversed}
}

func (r ranged[E]) Size() int { return r.size }

func (r ranged[E]) Get(i int) E {
	if r.reversed {
		i = r.size - 1 - i
	}
	return r.src.Get(r.start + i)
}

// mapRanged is a lazy BufferReader applying fn to every element of src
// whose index falls in [start, end); every other index passes through
// from src unchanged.
type mapRanged[E any] struct {
	src        BufferReader[E]
	start, end int
	fn         func(E) E
}

// MapRange returns a BufferReader applying fn only to the elements of
// src whose index i satisfies start <= i < end; every other element of
// src passes through unmodified.
func MapRange[E any](src BufferReader[E], start, end int, fn func(E) E) BufferReader[E] {
	return mapRanged[E]{src: src, start: start, end: end, fn: fn}
}

func (r mapRanged[E]) Size() int { return r.src.Size() }

func (r mapRanged[E]) Get(i int) E {
	v := r.src.Get(i)
	if i >= r.start && i < r.end {
		return r.fn(v)
	}
	return v
}

// lerped is a lazy BufferReader pointwise blending two same-sized
// readers by a fixed fraction t.
type lerped[E color.Element[E]] struct {
	a, b BufferReader[E]
	t    float64
}

// Lerp returns a BufferReader presenting, at every index, a blended
// towards b by fraction t: t=0 reads purely from a, t=1 purely from b.
func Lerp[E color.Element[E]](a, b BufferReader[E], t float64) BufferReader[E] {
	return lerped[E]{a: a, b: b, t: t}
}

func (l lerped[E]) Size() int   { return l.a.Size() }
func (l lerped[E]) Get(i int) E { return l.a.Get(i).Lerp(l.b.Get(i), l.t) }

// Slice returns a BufferReader over the given values, useful for
// tests and for small fixed backgrounds.
func Slice[E any](values []E) BufferReader[E] {
	return sliceReader[E](values)
}

type sliceReader[E any] []E

func (s sliceReader[E]) Size() int   { return len(s) }
func (s sliceReader[E]) Get(i int) E { return s[wrap(i, len(s))] }
