package system

import (
	"math"
	"testing"
	"time"

	"github.com/milk9111/animgroup/ecs"
	"github.com/milk9111/animgroup/ecs/component"
	"github.com/tanema/gween/ease"
)

const step = 10 * time.Millisecond

func newTestWorld() (*ecs.World, *TweenSystem) {
	w := ecs.NewWorld()
	ts := NewTweenSystem(step)
	w.AddSystem(ts)
	return w, ts
}

func tick(w *ecs.World, n int) {
	for i := 0; i < n; i++ {
		w.Update()
	}
}

func TestTweenReachesTargetAndCompletesOnce(t *testing.T) {
	cases := []struct {
		name      string
		duration  time.Duration
		delay     time.Duration
		doneAfter int
	}{
		{"zero_duration", 0, 0, 1},
		{"exact_steps", 50 * time.Millisecond, 0, 5},
		{"partial_last_step", 45 * time.Millisecond, 0, 5},
		{"delayed", 30 * time.Millisecond, 20 * time.Millisecond, 5},
		{"delay_not_step_aligned", 30 * time.Millisecond, 15 * time.Millisecond, 5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, ts := newTestWorld()
			e := w.CreateEntity()
			calls := 0
			ts.Start(Tween{
				Target:     e,
				Property:   PropertyOpacity,
				From:       0,
				To:         1,
				Duration:   c.duration,
				Delay:      c.delay,
				Ease:       ease.OutQuad,
				OnComplete: func() { calls++ },
			})

			tick(w, c.doneAfter-1)
			if calls != 0 {
				t.Fatalf("completed early after %d ticks", c.doneAfter-1)
			}
			tick(w, 1)
			if calls != 1 {
				t.Fatalf("expected completion on tick %d, calls=%d", c.doneAfter, calls)
			}
			tick(w, 10)
			if calls != 1 {
				t.Fatalf("completion fired %d times", calls)
			}
			o, _ := ecs.Get(w, e, component.OpacityComponent)
			if o.Alpha != 1 {
				t.Fatalf("expected alpha 1, got %v", o.Alpha)
			}
			if ts.Active() != 0 {
				t.Fatalf("expected no active tweens, got %d", ts.Active())
			}
		})
	}
}

func TestTweenEasingShape(t *testing.T) {
	cases := []struct {
		name  string
		fn    ease.TweenFunc
		above bool
	}{
		{"accelerate_lags_linear", ease.InQuad, false},
		{"decelerate_leads_linear", ease.OutQuad, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, ts := newTestWorld()
			e := w.CreateEntity()
			ts.Start(Tween{Target: e, Property: PropertyOffsetY, From: 0, To: 100, Duration: 100 * time.Millisecond, Ease: c.fn})
			tick(w, 5)
			tr, _ := ecs.Get(w, e, component.TransformComponent)
			if c.above && tr.OffsetY <= 50 {
				t.Fatalf("expected offset above 50 at midpoint, got %v", tr.OffsetY)
			}
			if !c.above && tr.OffsetY >= 50 {
				t.Fatalf("expected offset below 50 at midpoint, got %v", tr.OffsetY)
			}
		})
	}
}

func TestTweenHoldsStartDuringDelay(t *testing.T) {
	w, ts := newTestWorld()
	e := w.CreateEntity()
	Apply(w, e, PropertyOffsetY, -40)
	ts.Start(Tween{Target: e, Property: PropertyOffsetY, From: -40, To: 0, Duration: 20 * time.Millisecond, Delay: 30 * time.Millisecond})

	tick(w, 3)
	tr, _ := ecs.Get(w, e, component.TransformComponent)
	if tr.OffsetY != -40 {
		t.Fatalf("expected offset to hold at -40 during delay, got %v", tr.OffsetY)
	}
	tick(w, 1)
	tr, _ = ecs.Get(w, e, component.TransformComponent)
	if math.Abs(tr.OffsetY-(-20)) > 1e-3 {
		t.Fatalf("expected linear midpoint -20, got %v", tr.OffsetY)
	}
}

func TestTweenAbandonedWhenTargetDestroyed(t *testing.T) {
	w, ts := newTestWorld()
	e := w.CreateEntity()
	calls := 0
	ts.Start(Tween{Target: e, Property: PropertyOpacity, From: 1, To: 0, Duration: 50 * time.Millisecond, OnComplete: func() { calls++ }})

	tick(w, 2)
	w.DestroyEntity(e)
	tick(w, 10)

	if calls != 0 {
		t.Fatalf("destroyed target should not complete, calls=%d", calls)
	}
	if ts.Active() != 0 {
		t.Fatalf("expected tween to be dropped, active=%d", ts.Active())
	}
}

func TestLaterTweenWinsSharedProperty(t *testing.T) {
	w, ts := newTestWorld()
	e := w.CreateEntity()
	ts.Start(Tween{Target: e, Property: PropertyOpacity, From: 0, To: 1, Duration: 100 * time.Millisecond})
	ts.Start(Tween{Target: e, Property: PropertyOpacity, From: 1, To: 0, Duration: 100 * time.Millisecond})

	tick(w, 2)
	o, _ := ecs.Get(w, e, component.OpacityComponent)
	if math.Abs(o.Alpha-0.8) > 1e-3 {
		t.Fatalf("expected the later tween to drive alpha to 0.8, got %v", o.Alpha)
	}
	if ts.Active() != 2 {
		t.Fatalf("both tweens should keep running, active=%d", ts.Active())
	}
}

func TestCallbackCanStartTween(t *testing.T) {
	w, ts := newTestWorld()
	e := w.CreateEntity()
	second := false
	ts.Start(Tween{Target: e, Property: PropertyOpacity, To: 1, Duration: step, OnComplete: func() {
		ts.Start(Tween{Target: e, Property: PropertyOpacity, From: 1, To: 0, Duration: step, OnComplete: func() { second = true }})
	}})

	tick(w, 1)
	if ts.Active() != 1 {
		t.Fatalf("expected the chained tween to be queued, active=%d", ts.Active())
	}
	tick(w, 1)
	if !second {
		t.Fatalf("chained tween did not complete")
	}
}
