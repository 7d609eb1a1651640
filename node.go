package photonic

import (
	"time"

	"github.com/fooker/photonic/arena"
	"github.com/fooker/photonic/buffer"
)

// RenderContext carries the per-frame information a node needs to
// render: how much time has passed since the previous frame. It is
// passed by value, the same way Attr.Update takes a Duration by
// value, so a node cannot reach into or mutate the loop's shared
// timing state.
type RenderContext struct {
	Elapsed time.Duration
}

// Node renders one frame into a buffer.BufferReader of its element
// type. preceding gives access to the buffers of nodes materialized
// earlier in the same scene, via NodeHandle.Buffer - a node can only
// ever reference output that already exists for the current frame,
// which the arena's prefix-walk enforces structurally rather than by
// convention.
type Node[E any] interface {
	Render(ctx RenderContext, preceding arena.Slice) (buffer.BufferReader[E], error)
}

// NodeDecl is a declaration that materializes into a live Node once
// registered with a scene. Materialize receives a NodeBuilder scoped
// to this node so the declaration can register its own attributes for
// introspection as it constructs the node.
type NodeDecl[E any] interface {
	Materialize(name string, builder *NodeBuilder) (Node[E], error)
}

// nodeHolder is the concrete type stored in the scene arena: the live
// node plus the buffer it produced on its most recent render. Storing
// it as a pointer lets render replace buf in place, so NodeHandle.Buffer
// finds the latest buffer through the same arena entry every frame.
type nodeHolder[E any] struct {
	name string
	node Node[E]
	buf  buffer.BufferReader[E]
}

func (h *nodeHolder[E]) render(ctx RenderContext, preceding arena.Slice) error {
	buf, err := h.node.Render(ctx, preceding)
	if err != nil {
		return err
	}
	h.buf = buf
	return nil
}

// renderable erases the element type of a nodeHolder so the scene can
// walk its arena of mixed node kinds in one pass.
type renderable interface {
	render(ctx RenderContext, preceding arena.Slice) error
}

// NodeHandle is a reference to a node already materialized into a
// scene, usable by later-declared nodes to read its buffer.
type NodeHandle[E any] struct {
	ref  arena.Ref[*nodeHolder[E]]
	Info *NodeInfo
}

// Buffer returns the handle's node's buffer from its most recent
// render. preceding must be the Slice passed to the caller's own
// Render call, guaranteeing the handle's node already rendered this
// frame.
func (h NodeHandle[E]) Buffer(preceding arena.Slice) buffer.BufferReader[E] {
	return arena.Index(preceding, h.ref).buf
}

// mapDecl materializes a node that lazily remaps another node's buffer
// element-wise, without introducing a dedicated node type of its own.
type mapDecl[S, T any] struct {
	source NodeHandle[S]
	fn     func(S) T
}

// Map declares a node under name that transforms source's buffer
// element-wise through fn on every render, the same mapping
// buffer.Map performs on a single buffer but anchored to a node so it
// can be composed into a scene like any other declaration. b may be a
// SceneBuilder or the NodeBuilder of an enclosing node, the same as
// Node.
func Map[S, T any](b scoped, name string, source NodeHandle[S], fn func(S) T) (NodeHandle[T], error) {
	return Node[T](b, name, mapDecl[S, T]{source: source, fn: fn})
}

func (d mapDecl[S, T]) Materialize(name string, builder *NodeBuilder) (Node[T], error) {
	return mapNode[S, T]{source: d.source, fn: d.fn}, nil
}

type mapNode[S, T any] struct {
	source NodeHandle[S]
	fn     func(S) T
}

func (n mapNode[S, T]) Render(ctx RenderContext, preceding arena.Slice) (buffer.BufferReader[T], error) {
	return buffer.Map(n.source.Buffer(preceding), n.fn), nil
}
