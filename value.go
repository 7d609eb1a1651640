package photonic

import "github.com/fooker/photonic/color"

// ValueType tags the closed set of value kinds an attribute may carry.
// Introspection reports this tag instead of a Go reflect.Type so that
// non-Go tooling consuming the introspection tree has a small, stable
// vocabulary to switch on.
type ValueType int

const (
	ValueBool ValueType = iota
	ValueInteger
	ValueDecimal
	ValueColor
	ValueRange
)

func (t ValueType) String() string {
	switch t {
	case ValueBool:
		return "bool"
	case ValueInteger:
		return "integer"
	case ValueDecimal:
		return "decimal"
	case ValueColor:
		return "color"
	case ValueRange:
		return "range"
	default:
		return "unknown"
	}
}

// Range is an ordered pair of endpoints Start and End of a scalar value
// type, itself usable as an attribute value (e.g. the visible window
// of a strip effect). Whether End is included is up to the consumer;
// BlackoutDecl treats it as exclusive.
type Range[V int64 | float32] struct {
	Start, End V
}

// Size returns End - Start.
func (r Range[V]) Size() V {
	return r.End - r.Start
}

// Lerp blends both endpoints of the range independently.
func (r Range[V]) Lerp(other Range[V], i float64) Range[V] {
	return Range[V]{
		Start: lerpScalar(r.Start, other.Start, i),
		End:   lerpScalar(r.End, other.End, i),
	}
}

func lerpScalar[V int64 | float32](a, b V, i float64) V {
	return a + V(i*float64(b-a))
}

// AttrValue is the closed set of Go types that may be carried by an
// Attr: booleans, integers, decimals, colours, and ranges over the
// scalar kinds. It is expressed as a generics union constraint rather
// than a tagged union, since Go has no trait-object enum dispatch.
type AttrValue interface {
	bool | int64 | float32 | color.RGB | Range[int64] | Range[float32]
}

// valueTypeOf returns the ValueType tag for a concrete AttrValue type,
// determined at materialisation time via a type switch over the
// closed set.
func valueTypeOf(v any) ValueType {
	switch v.(type) {
	case bool:
		return ValueBool
	case int64:
		return ValueInteger
	case float32:
		return ValueDecimal
	case color.RGB:
		return ValueColor
	case Range[int64], Range[float32]:
		return ValueRange
	default:
		panic("photonic: value outside the closed AttrValue set")
	}
}
