package backnav

import (
	"errors"
	"testing"

	"github.com/milk9111/animgroup/animate"
)

type fakeEngine struct {
	runs     []bool
	complete []func()
	opts     int
}

func (f *fakeEngine) Run(visible bool, opts ...animate.RunOption) animate.Report {
	f.runs = append(f.runs, visible)
	f.opts = len(opts)
	return animate.Report{Visible: visible, Pairs: 1, CallbackAttached: true}
}

type flag bool

func (f flag) AnimateOnBackButton() bool { return bool(f) }

func TestNewBridgeRequiresHook(t *testing.T) {
	_, err := NewBridge(&Slot{}, &fakeEngine{}, flag(true), nil)
	if !errors.Is(err, ErrNoAfterHideHook) {
		t.Fatalf("expected ErrNoAfterHideHook, got %v", err)
	}
}

func TestBridgeLifecycle(t *testing.T) {
	slot := &Slot{}
	eng := &fakeEngine{}
	b, err := NewBridge(slot, eng, flag(true), AfterHideFunc(func() {}))
	if err != nil {
		t.Fatalf("NewBridge: %v", err)
	}

	if b.State() != NotInstalled || b.BackPressed() {
		t.Fatalf("fresh bridge should be uninstalled and decline")
	}

	b.Foreground()
	token := b.token
	b.Foreground()
	if b.State() != Installed || b.token != token {
		t.Fatalf("second foreground should keep the existing claim")
	}
	if !slot.Dispatch() {
		t.Fatalf("installed bridge should handle dispatch")
	}
	if len(eng.runs) != 1 || eng.runs[0] {
		t.Fatalf("expected one hide run, got %v", eng.runs)
	}

	b.Background()
	if b.State() != NotInstalled || !slot.Empty() {
		t.Fatalf("background should release the slot")
	}
	b.Background()
}

func TestBridgeBackgroundKeepsNewerOwner(t *testing.T) {
	slot := &Slot{}
	a, _ := NewBridge(slot, &fakeEngine{}, flag(true), AfterHideFunc(func() {}))
	bEng := &fakeEngine{}
	b, _ := NewBridge(slot, bEng, flag(true), AfterHideFunc(func() {}))

	a.Foreground()
	b.Foreground()
	a.Background()

	if slot.Empty() || !slot.Holds(b.token) {
		t.Fatalf("backgrounding a replaced owner must not clear the newer claim")
	}
	if !slot.Dispatch() || len(bEng.runs) != 1 {
		t.Fatalf("newer owner should still receive back requests")
	}
}

func TestBridgeReclaimsAfterBeingReplaced(t *testing.T) {
	slot := &Slot{}
	aEng := &fakeEngine{}
	a, _ := NewBridge(slot, aEng, flag(true), AfterHideFunc(func() {}))
	b, _ := NewBridge(slot, &fakeEngine{}, flag(true), AfterHideFunc(func() {}))

	a.Foreground()
	b.Foreground()
	a.Foreground()

	if !slot.Holds(a.token) {
		t.Fatalf("foregrounding again should reclaim the slot")
	}
	slot.Dispatch()
	if len(aEng.runs) != 1 {
		t.Fatalf("expected reclaimed owner to run, got %v", aEng.runs)
	}
}

func TestBridgeDeclinesWhenBackAnimationDisabled(t *testing.T) {
	slot := &Slot{}
	eng := &fakeEngine{}
	b, _ := NewBridge(slot, eng, flag(false), AfterHideFunc(func() {}))
	b.Foreground()

	if slot.Dispatch() {
		t.Fatalf("expected unhandled when back animation is disabled")
	}
	if len(eng.runs) != 0 {
		t.Fatalf("no animation should be dispatched, got %v", eng.runs)
	}
}

func TestBridgePassesBackOverrides(t *testing.T) {
	cases := []struct {
		name string
		opts []Option
		want int
	}{
		{"no_overrides", nil, 1},
		{"with_overrides", []Option{WithOverrides(animate.Uniform(175))}, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			eng := &fakeEngine{}
			b, _ := NewBridge(&Slot{}, eng, flag(true), AfterHideFunc(func() {}), c.opts...)
			b.Foreground()
			b.BackPressed()
			if eng.opts != c.want {
				t.Fatalf("expected %d run options, got %d", c.want, eng.opts)
			}
		})
	}
}
