package backnav

import "testing"

type listenerFunc func() bool

func (f listenerFunc) BackPressed() bool { return f() }

func TestSlotLastClaimerWins(t *testing.T) {
	var s Slot
	var got []string
	first := s.Claim(listenerFunc(func() bool { got = append(got, "first"); return true }))
	second := s.Claim(listenerFunc(func() bool { got = append(got, "second"); return true }))

	if !s.Dispatch() || len(got) != 1 || got[0] != "second" {
		t.Fatalf("expected second listener to handle, got %v", got)
	}
	if s.Release(first) {
		t.Fatalf("stale token must not clear the slot")
	}
	if s.Empty() || !s.Holds(second) {
		t.Fatalf("second claim should still be installed")
	}
	if !s.Release(second) {
		t.Fatalf("current token should clear the slot")
	}
	if !s.Empty() || s.Dispatch() {
		t.Fatalf("empty slot should report unhandled")
	}
}

func TestSlotReleaseZeroToken(t *testing.T) {
	var s Slot
	if s.Release(0) || s.Holds(0) {
		t.Fatalf("zero token never holds the slot")
	}
}
