package system

import (
	"time"

	"github.com/milk9111/animgroup/ecs"
	"github.com/milk9111/animgroup/ecs/component"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultStep is one tick of a 60 TPS game loop.
const DefaultStep = time.Second / 60

// Property names the visual property a tween drives.
type Property int

const (
	PropertyOffsetY Property = iota
	PropertyOpacity
)

func (p Property) String() string {
	switch p {
	case PropertyOffsetY:
		return "offset_y"
	case PropertyOpacity:
		return "opacity"
	default:
		return "unknown"
	}
}

// Tween describes one property animation on one entity.
type Tween struct {
	Target   ecs.Entity
	Property Property
	From     float64
	To       float64
	Duration time.Duration
	Delay    time.Duration
	// Ease defaults to linear when nil.
	Ease ease.TweenFunc
	// OnComplete runs on the tick the tween reaches To. It never runs if the
	// target is destroyed first.
	OnComplete func()
}

type activeTween struct {
	Tween
	motion  *gween.Tween
	delay   time.Duration
	elapsed time.Duration
}

// TweenSystem is the shared frame clock for property animations. Every tick
// it advances all active tweens by a fixed step, in start order, so when two
// tweens drive the same property the later one wins that tick.
type TweenSystem struct {
	step   time.Duration
	active []*activeTween
}

func NewTweenSystem(step time.Duration) *TweenSystem {
	if step <= 0 {
		step = DefaultStep
	}
	return &TweenSystem{step: step}
}

// Step returns the simulated time one Update advances.
func (s *TweenSystem) Step() time.Duration { return s.step }

// SetStep changes the per-tick step, e.g. after the host changes its TPS.
func (s *TweenSystem) SetStep(step time.Duration) {
	if step > 0 {
		s.step = step
	}
}

// Start schedules t. Interpolation begins on the next Update.
func (s *TweenSystem) Start(t Tween) {
	if s == nil {
		return
	}
	fn := t.Ease
	if fn == nil {
		fn = ease.Linear
	}
	s.active = append(s.active, &activeTween{
		Tween:  t,
		motion: gween.New(float32(t.From), float32(t.To), float32(t.Duration.Seconds()), fn),
		delay:  t.Delay,
	})
}

// Active returns the number of tweens still in flight.
func (s *TweenSystem) Active() int {
	if s == nil {
		return 0
	}
	return len(s.active)
}

func (s *TweenSystem) Update(w *ecs.World) {
	if s == nil || w == nil || len(s.active) == 0 {
		return
	}

	current := s.active
	s.active = nil

	var survivors []*activeTween
	var finished []func()
	for _, at := range current {
		// Target destroyed by its view tree: abandon without a callback.
		if !w.IsAlive(at.Target) {
			continue
		}

		dt := s.step
		if at.delay > 0 {
			if dt <= at.delay {
				at.delay -= dt
				survivors = append(survivors, at)
				continue
			}
			dt -= at.delay
			at.delay = 0
		}

		at.elapsed += dt
		value, done := at.To, true
		if at.elapsed < at.Duration {
			v, _ := at.motion.Set(float32(at.elapsed.Seconds()))
			value, done = float64(v), false
		}
		Apply(w, at.Target, at.Property, value)

		if !done {
			survivors = append(survivors, at)
			continue
		}
		if at.OnComplete != nil {
			finished = append(finished, at.OnComplete)
		}
	}

	// Tweens started from the callbacks below queue behind the survivors.
	s.active = append(survivors, s.active...)

	for _, fn := range finished {
		fn()
	}
}

// Apply writes v to the property of e immediately. Dead entities are ignored.
func Apply(w *ecs.World, e ecs.Entity, p Property, v float64) {
	if w == nil || !w.IsAlive(e) {
		return
	}
	switch p {
	case PropertyOffsetY:
		if !ecs.Update(w, e, component.TransformComponent, func(tr *component.Transform) { tr.OffsetY = v }) {
			_ = ecs.Add(w, e, component.TransformComponent, component.Transform{OffsetY: v})
		}
	case PropertyOpacity:
		_ = ecs.Add(w, e, component.OpacityComponent, component.Opacity{Alpha: v})
	}
}
