package photonic

import (
	"testing"

	"github.com/fooker/photonic/color"
)

func TestRangeLerp(t *testing.T) {
	a := Range[int64]{Start: 0, End: 10}
	b := Range[int64]{Start: 10, End: 20}

	got := a.Lerp(b, 0.5)
	want := Range[int64]{Start: 5, End: 15}
	if got != want {
		t.Errorf("Lerp(0.5) = %+v, want %+v", got, want)
	}
}

func TestValueTypeOf(t *testing.T) {
	cases := []struct {
		v    any
		want ValueType
	}{
		{true, ValueBool},
		{int64(1), ValueInteger},
		{float32(1), ValueDecimal},
		{color.RGB{}, ValueColor},
		{Range[int64]{}, ValueRange},
	}
	for _, c := range cases {
		if got := valueTypeOf(c.v); got != c.want {
			t.Errorf("valueTypeOf(%T) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestValueTypePanicsOutsideClosedSet(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected valueTypeOf to panic for a value outside the closed AttrValue set")
		}
	}()
	valueTypeOf("not a valid attr value")
}
