package arena

import (
	"errors"
	"testing"
)

var errStop = errors.New("stop")

func TestEmpty(t *testing.T) {
	a := New()
	if got := a.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestBasics(t *testing.T) {
	a := New()

	r1 := Append(a, "one")
	r2 := Append(a, 2)
	r3 := Append(a, 3.0)

	if got := a.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}

	if got := Get(a, r1); got != "one" {
		t.Errorf("Get(r1) = %v, want %q", got, "one")
	}
	if got := Get(a, r2); got != 2 {
		t.Errorf("Get(r2) = %v, want 2", got)
	}
	if got := Get(a, r3); got != 3.0 {
		t.Errorf("Get(r3) = %v, want 3.0", got)
	}
}

func TestIndex(t *testing.T) {
	a := New()
	r1 := Append(a, "first")
	Append(a, "second")

	var captured string
	err := TryWalk(a, func(element any, preceding Slice) error {
		if element == "second" {
			captured = Index(preceding, r1)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("TryWalk returned error: %v", err)
	}
	if captured != "first" {
		t.Errorf("Index(preceding, r1) = %q, want %q", captured, "first")
	}
}

func TestWalkStopsOnError(t *testing.T) {
	a := New()
	Append(a, 1)
	Append(a, 2)
	Append(a, 3)

	visited := 0
	err := TryWalk(a, func(element any, preceding Slice) error {
		visited++
		if element == 2 {
			return errStop
		}
		return nil
	})
	if err != errStop {
		t.Fatalf("TryWalk err = %v, want errStop", err)
	}
	if visited != 2 {
		t.Errorf("visited %d elements, want 2 (walk should stop at the failing element)", visited)
	}
}

func TestGetPanicsOnWrongType(t *testing.T) {
	a := New()
	Append(a, 42)

	defer func() {
		if recover() == nil {
			t.Errorf("expected Get with mismatched element type to panic")
		}
	}()

	bad := Ref[string]{index: 0}
	Get(a, bad)
}
