package input

import "testing"

func TestPollEmpty(t *testing.T) {
	in := New[int]()
	if _, ok := in.Poll(); ok {
		t.Errorf("Poll() on empty Input returned ok=true")
	}
}

func TestSendThenPollOnce(t *testing.T) {
	in := New[int]()
	in.Send(42)

	got, ok := in.Poll()
	if !ok || got != 42 {
		t.Fatalf("Poll() = (%d, %v), want (42, true)", got, ok)
	}

	if _, ok := in.Poll(); ok {
		t.Errorf("second Poll() returned ok=true, want value to be consumed after first Poll")
	}
}

func TestSendOverwritesLatestWins(t *testing.T) {
	in := New[int]()
	in.Send(1)
	in.Send(2)
	in.Send(3)

	got, ok := in.Poll()
	if !ok || got != 3 {
		t.Fatalf("Poll() = (%d, %v), want (3, true) — latest send should win, no queueing", got, ok)
	}
	if _, ok := in.Poll(); ok {
		t.Errorf("second Poll() returned ok=true, want only one value delivered regardless of send count")
	}
}

func TestSubscribeMirrorsSend(t *testing.T) {
	in := New[int]()
	ch := in.Subscribe()
	in.Send(7)

	select {
	case v := <-ch:
		if v != 7 {
			t.Errorf("subscriber received %d, want 7", v)
		}
	default:
		t.Errorf("subscriber channel had nothing buffered after Send")
	}
}

func TestTriggerDeliveredOnce(t *testing.T) {
	tr := NewTrigger()
	c := NewCursor()

	if tr.Poll(c) {
		t.Errorf("Poll() on a trigger that never fired returned true")
	}

	tr.Fire()
	if !tr.Poll(c) {
		t.Errorf("Poll() after Fire() returned false, want true")
	}
	if tr.Poll(c) {
		t.Errorf("second Poll() after a single Fire() returned true, want delivered exactly once")
	}
}

func TestTriggerMultipleFiresCollapseToOnePoll(t *testing.T) {
	tr := NewTrigger()
	c := NewCursor()

	tr.Fire()
	tr.Fire()
	tr.Fire()

	if !tr.Poll(c) {
		t.Errorf("Poll() after multiple Fire() calls returned false, want true")
	}
	if tr.Poll(c) {
		t.Errorf("second Poll() returned true, want the three fires to collapse into a single observable poll")
	}
}

func TestTriggerIndependentCursors(t *testing.T) {
	tr := NewTrigger()
	a := NewCursor()
	b := NewCursor()

	tr.Fire()
	if !tr.Poll(a) {
		t.Errorf("cursor a: Poll() after Fire() returned false")
	}
	if !tr.Poll(b) {
		t.Errorf("cursor b: Poll() after Fire() returned false — independent cursors must each observe the fire once")
	}
}
