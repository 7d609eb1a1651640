package buffer

import (
	"errors"
	"testing"
)

func TestGetSetWrap(t *testing.T) {
	b := New[int](4)
	b.Set(0, 10)
	b.Set(1, 20)
	b.Set(2, 30)
	b.Set(3, 40)

	if got := b.Get(4); got != 10 {
		t.Errorf("Get(4) = %d, want 10 (wraps to index 0)", got)
	}
	if got := b.Get(-1); got != 40 {
		t.Errorf("Get(-1) = %d, want 40 (wraps to last index)", got)
	}
}

func TestFromGenerator(t *testing.T) {
	b := FromGenerator(5, func(i int) int { return i * i })
	for i := 0; i < 5; i++ {
		if got := b.Get(i); got != i*i {
			t.Errorf("Get(%d) = %d, want %d", i, got, i*i)
		}
	}
}

func TestUpdate(t *testing.T) {
	b := FromGenerator(3, func(i int) int { return i })
	b.Update(func(i, current int) int { return current + 100 })
	for i := 0; i < 3; i++ {
		if got := b.Get(i); got != i+100 {
			t.Errorf("Get(%d) = %d, want %d", i, got, i+100)
		}
	}
}

func TestTryUpdateAtomicFailure(t *testing.T) {
	b := FromGenerator(3, func(i int) int { return i })
	errBoom := errors.New("boom")

	err := b.TryUpdate(func(i, current int) (int, error) {
		if i == 2 {
			return 0, errBoom
		}
		return current + 1, nil
	})

	if !errors.Is(err, errBoom) {
		t.Fatalf("TryUpdate err = %v, want errBoom", err)
	}
	for i := 0; i < 3; i++ {
		if got := b.Get(i); got != i {
			t.Errorf("Get(%d) = %d, want unchanged %d after failed TryUpdate", i, got, i)
		}
	}
}

func TestBlitFrom(t *testing.T) {
	dst := New[int](3)
	src := Slice([]int{7, 8, 9})
	dst.BlitFrom(src)
	for i := 0; i < 3; i++ {
		if got := dst.Get(i); got != src.Get(i) {
			t.Errorf("Get(%d) = %d, want %d", i, got, src.Get(i))
		}
	}
}

func TestMap(t *testing.T) {
	src := Slice([]int{1, 2, 3})
	doubled := Map(src, func(v int) int { return v * 2 })
	for i := 0; i < 3; i++ {
		if got := doubled.Get(i); got != src.Get(i)*2 {
			t.Errorf("Get(%d) = %d, want %d", i, got, src.Get(i)*2)
		}
	}
}

func TestIMap(t *testing.T) {
	src := Slice([]int{10, 10, 10})
	indexed := IMap(src, func(i, v int) int { return v + i })
	for i := 0; i < 3; i++ {
		if got := indexed.Get(i); got != 10+i {
			t.Errorf("Get(%d) = %d, want %d", i, got, 10+i)
		}
	}
}

func TestSubRangeReversed(t *testing.T) {
	src := Slice([]int{0, 1, 2, 3, 4})
	r := SubRange[int](src, 1, 3, true)
	if r.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", r.Size())
	}
	want := []int{3, 2, 1}
	for i, w := range want {
		if got := r.Get(i); got != w {
			t.Errorf("Get(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestMapRangeAppliesOnlyWithinRange(t *testing.T) {
	src := Slice([]int{1, 1, 1, 1, 1})
	r := MapRange(src, 1, 3, func(v int) int { return v * 10 })
	if r.Size() != src.Size() {
		t.Fatalf("Size() = %d, want %d (unchanged)", r.Size(), src.Size())
	}
	want := []int{1, 10, 10, 1, 1}
	for i, w := range want {
		if got := r.Get(i); got != w {
			t.Errorf("Get(%d) = %d, want %d", i, got, w)
		}
	}
}

type lerpInt int

func (a lerpInt) Lerp(b lerpInt, i float64) lerpInt {
	return lerpInt(float64(a) + i*float64(b-a))
}

func TestLerpBlendsTwoSources(t *testing.T) {
	a := Slice([]lerpInt{0, 10})
	b := Slice([]lerpInt{10, 20})

	if got := Lerp[lerpInt](a, b, 0).Get(0); got != 0 {
		t.Errorf("Lerp(a, b, 0).Get(0) = %d, want 0 (pure a)", got)
	}
	if got := Lerp[lerpInt](a, b, 1).Get(0); got != 10 {
		t.Errorf("Lerp(a, b, 1).Get(0) = %d, want 10 (pure b)", got)
	}
	if got := Lerp[lerpInt](a, b, 0.5).Get(1); got != 15 {
		t.Errorf("Lerp(a, b, 0.5).Get(1) = %d, want 15 (midpoint)", got)
	}
}
