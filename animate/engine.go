package animate

import (
	"time"

	"github.com/milk9111/animgroup/ecs"
	"github.com/milk9111/animgroup/ecs/component"
	"github.com/milk9111/animgroup/ecs/system"
	"github.com/rs/zerolog"
	"github.com/tanema/gween/ease"
)

// Dispatcher starts tweens on the shared frame clock. *system.TweenSystem
// implements it.
type Dispatcher interface {
	Start(t system.Tween)
}

// Report summarises one dispatched run.
type Report struct {
	Visible bool
	Pairs   int
	Longest time.Duration
	// CallbackAttached is false only when no live entity was registered, in
	// which case the completion callback never fires.
	CallbackAttached bool
}

type runConfig struct {
	overrides  Overrides
	delay      time.Duration
	hasDelay   bool
	onComplete func()
}

// RunOption customises a single Run.
type RunOption func(*runConfig)

// WithOverrides replaces default durations for this run only.
func WithOverrides(o Overrides) RunOption {
	return func(c *runConfig) { c.overrides = o }
}

// WithDelay replaces the registry's default delay for this run only.
func WithDelay(d time.Duration) RunOption {
	return func(c *runConfig) {
		c.delay = d
		c.hasDelay = true
	}
}

// OnComplete sets the callback fired when the slowest animation of the run
// ends.
func OnComplete(fn func()) RunOption {
	return func(c *runConfig) { c.onComplete = fn }
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

func WithLogger(log zerolog.Logger) EngineOption {
	return func(e *Engine) { e.log = log }
}

// Engine orchestrates show/hide runs over every entity of a registry.
type Engine struct {
	world    *ecs.World
	registry *Registry
	clock    Dispatcher
	log      zerolog.Logger
}

func NewEngine(w *ecs.World, registry *Registry, clock Dispatcher, opts ...EngineOption) *Engine {
	e := &Engine{
		world:    w,
		registry: registry,
		clock:    clock,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run puts every live registered entity into its pre-transition pose and
// starts its animation towards visible. It returns once everything is
// dispatched; interpolation happens on later clock ticks.
//
// The completion callback rides on the first dispatched animation whose
// duration equals the run's longest duration, so it fires exactly once,
// when the slowest animation ends. With no live entity it never fires.
//
// Runs are not cancelled by later runs. If two runs overlap, entities they
// share follow whichever tween was started last.
func (e *Engine) Run(visible bool, opts ...RunOption) Report {
	cfg := runConfig{onComplete: func() {}}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasDelay {
		cfg.delay = e.registry.DefaultDelay()
	}

	entries := e.registry.Entries()
	defaults := e.registry.Defaults()
	longest := longestDuration(presentVariants(entries), cfg.overrides, defaults)

	var delay time.Duration
	if e.registry.DelayOnStart() || !visible {
		delay = cfg.delay
	}
	curve := ease.OutQuad
	if !visible {
		curve = ease.InQuad
	}

	offsets := make(map[Variant]float64, 2)
	report := Report{Visible: visible, Longest: longest}
	for _, en := range entries {
		if !e.world.IsAlive(en.Entity) {
			continue
		}
		duration := effectiveDuration(en.Variant, cfg.overrides, defaults)
		p := poseFor(en.Variant, visible, e.offset(en, offsets))

		// Start pose is applied now so the entity is in place this frame.
		system.Apply(e.world, en.Entity, p.property, p.from)

		tw := system.Tween{
			Target:   en.Entity,
			Property: p.property,
			From:     p.from,
			To:       p.to,
			Duration: duration,
			Delay:    delay,
			Ease:     curve,
		}
		if !report.CallbackAttached && duration == longest {
			tw.OnComplete = cfg.onComplete
			report.CallbackAttached = true
		}
		e.clock.Start(tw)
		report.Pairs++
	}

	e.log.Debug().
		Bool("visible", visible).
		Int("pairs", report.Pairs).
		Dur("longest", longest).
		Dur("delay", delay).
		Bool("callback", report.CallbackAttached).
		Msg("run dispatched")
	return report
}

// offset resolves the slide distance for a slide entry: the variant's fixed
// provider, evaluated once per run, else the entity's measured height.
func (e *Engine) offset(en Entry, cache map[Variant]float64) float64 {
	if en.Variant == AlphaAnimation {
		return 0
	}
	if v, ok := cache[en.Variant]; ok {
		return v
	}
	if fn := e.registry.offsetProvider(en.Variant); fn != nil {
		v := fn()
		cache[en.Variant] = v
		return v
	}
	b, _ := ecs.Get(e.world, en.Entity, component.BoundsComponent)
	return b.H
}
