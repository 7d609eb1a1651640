package photonic

import (
	"fmt"
	"log"
)

// InputInfo describes one addressable input registered in a scene: an
// external interface looks this up by name to know what type of value
// it may Send.
type InputInfo struct {
	Name string
	Type ValueType
}

// AttrInfo describes one attribute of a node: its key within the node
// and the value type it carries. Input, if non-empty, names the
// registered input driving it - a Fixed attribute has none. Attrs and
// Inputs mirror an attribute that is itself composed from nested
// sub-attributes and sub-inputs (e.g. a Fader's target attribute); an
// attribute with no such composition still carries empty, non-nil
// maps, never a nil one, so callers can range over them unconditionally.
type AttrInfo struct {
	Key    string
	Type   ValueType
	Input  string
	Attrs  map[string]*AttrInfo
	Inputs map[string]*InputInfo
}

// NodeInfo describes one materialized node: its registered name, the
// Go type of its declaration, the attributes it registered while
// materializing, and any child nodes it recursively materialized
// through its own NodeBuilder. A leaf node still carries an empty,
// non-nil Nodes map.
type NodeInfo struct {
	Name  string
	Kind  string
	Attrs map[string]*AttrInfo
	Nodes map[string]*NodeInfo
}

// Introspection is the read-only tree describing a materialized
// scene: the top-level nodes keyed by name (map order, not
// materialization order), each
// recursively describing its own children, and every input registered
// anywhere in the scene, flattened by key for external lookup - inputs
// are addressed directly by the key used to register them, regardless
// of which node reads them.
type Introspection struct {
	Root   *NodeInfo
	Nodes  map[string]*NodeInfo
	Inputs map[string]*InputInfo
}

// Lookup returns the NodeInfo found by walking path, a dot-separated
// sequence of node keys starting from a top-level entry of Nodes, e.g.
// "dimmed.rainbow" to reach a "rainbow" node nested under "dimmed". It
// returns false if any segment of the path does not exist.
func (in *Introspection) Lookup(path string) (*NodeInfo, bool) {
	nodes := in.Nodes
	var current *NodeInfo
	for _, key := range splitPath(path) {
		next, ok := nodes[key]
		if !ok {
			return nil, false
		}
		current = next
		nodes = current.Nodes
	}
	return current, current != nil
}

func splitPath(path string) []string {
	var segs []string
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] == '.' {
			segs = append(segs, path[start:i])
			start = i + 1
		}
	}
	return append(segs, path[start:])
}

// Log writes a tree-shaped summary of the introspection to the
// standard logger: each node indented under its parent, its attributes
// beneath it, followed by the registered inputs. Useful for confirming
// a scene materialized the way its builder intended.
func (in *Introspection) Log() {
	log.Printf("scene: %d top-level node(s), %d input(s)", len(in.Nodes), len(in.Inputs))
	logNodes(in.Nodes, 1)
	for _, i := range in.Inputs {
		log.Printf("  input %q: %s", i.Name, i.Type)
	}
}

func logNodes(nodes map[string]*NodeInfo, depth int) {
	indent := indentOf(depth)
	for name, n := range nodes {
		log.Printf("%snode %q (%s)", indent, name, n.Kind)
		logAttrs(n.Attrs, depth+1)
		logNodes(n.Nodes, depth+1)
	}
}

func logAttrs(attrs map[string]*AttrInfo, depth int) {
	indent := indentOf(depth)
	for key, a := range attrs {
		if a.Input != "" {
			log.Printf("%sattr %q: %s <- input %q", indent, key, a.Type, a.Input)
		} else {
			log.Printf("%sattr %q: %s (fixed)", indent, key, a.Type)
		}
	}
}

func indentOf(depth int) string {
	s := ""
	for i := 0; i < depth; i++ {
		s += "  "
	}
	return s
}

// describe renders the Go type name of v, for error messages and
// NodeInfo.Kind.
func describe(v any) string {
	return fmt.Sprintf("%T", v)
}
