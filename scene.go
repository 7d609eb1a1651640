package photonic

import (
	"github.com/fooker/photonic/arena"
	"github.com/fooker/photonic/input"
)

// SceneBuilder accumulates node and input declarations into a single
// scene. Nodes are materialized immediately when registered, in the
// order Node is called, so a NodeDecl can only ever receive handles to
// nodes declared before it - the same ordering constraint the arena's
// prefix-walk enforces during rendering. Node keys are scoped to the
// parent they were declared under: two nodes may share a key as long
// as they have different parents (or one is top-level and the other
// nested), the same way two files in different directories may share a
// name.
type SceneBuilder struct {
	arena      *arena.Arena
	inputNames map[string]struct{}
	nodes      map[string]*NodeInfo
	inputs     []*InputInfo
	byName     map[string]any // input key -> *input.Input[V], type-erased
}

// NewSceneBuilder returns an empty SceneBuilder.
func NewSceneBuilder() *SceneBuilder {
	return &SceneBuilder{
		arena:      arena.New(),
		inputNames: make(map[string]struct{}),
		nodes:      make(map[string]*NodeInfo),
		byName:     make(map[string]any),
	}
}

func (b *SceneBuilder) reserveInput(key string) error {
	if _, exists := b.inputNames[key]; exists {
		return newError(ErrDuplicateKey, "input key %q already registered", key)
	}
	b.inputNames[key] = struct{}{}
	return nil
}

// sceneArena implements scoped.
func (b *SceneBuilder) sceneArena() *arena.Arena { return b.arena }

// claimNode implements scoped: top-level node keys are their own scope.
func (b *SceneBuilder) claimNode(key string) error {
	if _, exists := b.nodes[key]; exists {
		return newError(ErrDuplicateKey, "node key %q already registered", key)
	}
	return nil
}

// addNode implements scoped.
func (b *SceneBuilder) addNode(key string, info *NodeInfo) {
	b.nodes[key] = info
}

// InputHandle is a reference to an input registered with a scene,
// used by attribute constructors to bind an Attr to externally
// delivered values.
type InputHandle[V AttrValue] struct {
	Name string
	in   *input.Input[V]
}

// NewInput registers a new externally addressable input under key and
// returns a handle to it.
func NewInput[V AttrValue](b *SceneBuilder, key string) (InputHandle[V], error) {
	if err := b.reserveInput(key); err != nil {
		return InputHandle[V]{}, err
	}
	in := input.New[V]()
	b.byName[key] = in
	var zero V
	b.inputs = append(b.inputs, &InputInfo{Name: key, Type: valueTypeOf(zero)})
	return InputHandle[V]{Name: key, in: in}, nil
}

// Lookup resolves a registered input by key, for an external interface
// that learned the key from Introspection and now wants to Send to
// it.
func Lookup[V AttrValue](b *SceneBuilder, key string) (*input.Input[V], error) {
	raw, ok := b.byName[key]
	if !ok {
		return nil, newError(ErrUnknownKey, "no input registered under key %q", key)
	}
	in, ok := raw.(*input.Input[V])
	if !ok {
		return nil, newError(ErrTypeMismatch, "input %q has a different value type", key)
	}
	return in, nil
}

// scoped is implemented by both SceneBuilder and NodeBuilder, so the
// single generic Node function can materialize a node either as a
// top-level scene member or as a child nested inside another node's
// own Materialize call. Every node, however deeply nested, is appended
// to the same arena and so renders in the same flat prefix-walk order;
// nesting only affects key scoping and where the resulting NodeInfo is
// filed in the introspection tree.
type scoped interface {
	sceneArena() *arena.Arena
	claimNode(key string) error
	addNode(key string, info *NodeInfo)
}

// NodeBuilder is scoped to one node's materialization. It lets a
// NodeDecl register the node's attributes for introspection while
// constructing the Attr values the node will actually use, and lets it
// recursively materialize child nodes of its own via Node, the same
// way NodeBuilder itself was produced by its parent's Node call.
type NodeBuilder struct {
	arenaRef *arena.Arena
	name     string
	attrs    map[string]*AttrInfo
	nodes    map[string]*NodeInfo
}

func (nb *NodeBuilder) sceneArena() *arena.Arena { return nb.arenaRef }

func (nb *NodeBuilder) claimNode(key string) error {
	if _, exists := nb.nodes[key]; exists {
		return newError(ErrDuplicateKey, "node key %q already registered under %q", key, nb.name)
	}
	return nil
}

func (nb *NodeBuilder) addNode(key string, info *NodeInfo) {
	if nb.nodes == nil {
		nb.nodes = make(map[string]*NodeInfo)
	}
	nb.nodes[key] = info
}

func (nb *NodeBuilder) register(key string, t ValueType, inputName string) {
	if nb.attrs == nil {
		nb.attrs = make(map[string]*AttrInfo)
	}
	nb.attrs[key] = &AttrInfo{
		Key:    key,
		Type:   t,
		Input:  inputName,
		Attrs:  make(map[string]*AttrInfo),
		Inputs: make(map[string]*InputInfo),
	}
}

// FixedAttr registers key as a constant-valued attribute of the node
// being built and returns it.
func FixedAttr[V AttrValue](nb *NodeBuilder, key string, value V) Attr[V] {
	nb.register(key, valueTypeOf(value), "")
	return NewFixed(value)
}

// BoundAttr registers key as an attribute driven by in, bounded, and
// returns it. "Bound" refers to the bounds restriction, distinguishing
// it from UnboundAttr's unchecked input attributes. It fails scene
// materialisation if initial does not itself lie within bounds.
func BoundAttr[V Boundable](nb *NodeBuilder, key string, in InputHandle[V], bounds Bounds[V], initial V) (Attr[V], error) {
	attr, err := NewBoundInput(in.in, bounds, initial)
	if err != nil {
		return nil, wrapError(ErrMaterialisation, err, "attribute %q of node %q", key, nb.name)
	}
	nb.register(key, valueTypeOf(initial), in.Name)
	return attr, nil
}

// UnboundAttr registers key as an attribute driven by in with no
// bounds restriction, for value types bounds do not apply to
// (colours, ranges).
func UnboundAttr[V AttrValue](nb *NodeBuilder, key string, in InputHandle[V], initial V) Attr[V] {
	nb.register(key, valueTypeOf(initial), in.Name)
	return NewUnboundInput(in.in, initial)
}

// Node materializes decl under name, registers its introspection
// entry, and returns a handle later-declared nodes can use to read its
// output. b may be the scene's top-level SceneBuilder, or the
// *NodeBuilder of an enclosing node's own Materialize call - in the
// latter case name is only required to be unique among that parent's
// own children, not scene-wide.
func Node[E any](b scoped, name string, decl NodeDecl[E]) (NodeHandle[E], error) {
	if err := b.claimNode(name); err != nil {
		return NodeHandle[E]{}, err
	}

	nb := &NodeBuilder{arenaRef: b.sceneArena(), name: name}
	node, err := decl.Materialize(name, nb)
	if err != nil {
		return NodeHandle[E]{}, wrapError(ErrMaterialisation, err, "materialising node %q (%s)", name, describe(decl))
	}

	info := &NodeInfo{Name: name, Kind: describe(decl), Attrs: nb.attrs, Nodes: nb.nodes}
	if info.Attrs == nil {
		info.Attrs = make(map[string]*AttrInfo)
	}
	if info.Nodes == nil {
		info.Nodes = make(map[string]*NodeInfo)
	}
	b.addNode(name, info)

	holder := &nodeHolder[E]{name: name}
	holder.node = node
	ref := arena.Append(nb.arenaRef, holder)

	return NodeHandle[E]{ref: ref, Info: info}, nil
}

// Scene is a fully materialized, renderable node graph, ready to be
// handed to a Loop.
type Scene struct {
	arena         *arena.Arena
	introspection *Introspection
}

// Build finalizes the builder into a Scene and its Introspection. root
// must be a handle returned from this same builder; it is recorded as
// the introspection's root but every materialized node, not just the
// ones root depends on, is kept renderable.
func Build[E any](b *SceneBuilder, root NodeHandle[E]) (*Scene, *Introspection, error) {
	inputs := make(map[string]*InputInfo, len(b.inputs))
	for _, i := range b.inputs {
		inputs[i.Name] = i
	}
	introspection := &Introspection{
		Root:   root.Info,
		Nodes:  b.nodes,
		Inputs: inputs,
	}
	return &Scene{arena: b.arena, introspection: introspection}, introspection, nil
}

// full returns a Slice over every materialized node, for use after a
// renderFrame has completed.
func (s *Scene) full() arena.Slice {
	return arena.Full(s.arena)
}

// renderFrame advances every materialized node by one frame, in
// materialization order, so that by the time a node renders, every
// node it can reference has already rendered this frame.
func (s *Scene) renderFrame(ctx RenderContext) error {
	return arena.TryWalk(s.arena, func(element any, preceding arena.Slice) error {
		r, ok := element.(renderable)
		if !ok {
			return newError(ErrFatal, "arena element %s does not implement render", describe(element))
		}
		return r.render(ctx, preceding)
	})
}
