// Package screen assembles one logical screen: its view tree, animation
// registry and engine, and back-navigation bridge.
package screen

import (
	"time"

	"github.com/milk9111/animgroup/animate"
	"github.com/milk9111/animgroup/backnav"
	"github.com/milk9111/animgroup/ecs"
	"github.com/milk9111/animgroup/ecs/system"
	"github.com/rs/zerolog"
)

type options struct {
	log           zerolog.Logger
	step          time.Duration
	backOverrides animate.Overrides
}

// Option configures a Screen.
type Option func(*options)

func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithStep sets the frame-clock step, normally one host tick.
func WithStep(step time.Duration) Option {
	return func(o *options) { o.step = step }
}

// WithBackOverrides sets the durations used when hiding on back navigation.
func WithBackOverrides(overrides animate.Overrides) Option {
	return func(o *options) { o.backOverrides = overrides }
}

// Screen owns the entities of one screen and animates them in and out.
// All methods must be called from the host's update goroutine.
type Screen struct {
	name     string
	world    *ecs.World
	tweens   *system.TweenSystem
	layout   *system.LayoutSystem
	registry *animate.Registry
	engine   *animate.Engine
	bridge   *backnav.Bridge
	log      zerolog.Logger

	laidOut bool
}

// New builds a screen that installs itself in slot while in the foreground.
// hook is called after a back-navigation hide finishes and is required.
func New(name string, slot *backnav.Slot, hook backnav.AfterHider, opts ...Option) (*Screen, error) {
	o := options{log: zerolog.Nop(), step: system.DefaultStep}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log.With().Str("screen", name).Logger()

	world := ecs.NewWorld()
	tweens := system.NewTweenSystem(o.step)
	world.AddSystem(tweens)

	registry := animate.NewRegistry(world)
	engine := animate.NewEngine(world, registry, tweens, animate.WithLogger(log))
	bridge, err := backnav.NewBridge(slot, engine, registry, hook,
		backnav.WithLogger(log),
		backnav.WithOverrides(o.backOverrides),
	)
	if err != nil {
		return nil, err
	}

	return &Screen{
		name:     name,
		world:    world,
		tweens:   tweens,
		layout:   system.NewLayoutSystem(),
		registry: registry,
		engine:   engine,
		bridge:   bridge,
		log:      log,
	}, nil
}

func (s *Screen) Name() string                { return s.name }
func (s *Screen) World() *ecs.World           { return s.world }
func (s *Screen) Registry() *animate.Registry { return s.registry }
func (s *Screen) Engine() *animate.Engine     { return s.engine }
func (s *Screen) Bridge() *backnav.Bridge     { return s.bridge }
func (s *Screen) Tweens() *system.TweenSystem { return s.tweens }

// Foreground installs the screen as the back-navigation listener.
func (s *Screen) Foreground() {
	s.bridge.Foreground()
}

// Background uninstalls the screen unless another screen took over.
func (s *Screen) Background() {
	s.bridge.Background()
}

// Layout measures the screen for the given size. The first successful
// measurement reveals the screen.
func (s *Screen) Layout(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.layout.Measure(s.world, width, height)
	s.LayoutReady()
}

// LayoutReady runs the initial reveal. Later calls do nothing.
func (s *Screen) LayoutReady() {
	if s.laidOut {
		return
	}
	s.laidOut = true
	report := s.engine.Run(true)
	s.log.Info().Int("entities", report.Pairs).Msg("screen revealed")
}

// Show reveals the screen again, e.g. after a programmatic Hide.
func (s *Screen) Show(onComplete func()) animate.Report {
	return s.engine.Run(true, completion(onComplete)...)
}

// Hide hides the screen without going through back navigation.
func (s *Screen) Hide(onComplete func()) animate.Report {
	return s.engine.Run(false, completion(onComplete)...)
}

// Update advances the screen's frame clock by one tick.
func (s *Screen) Update() {
	s.world.Update()
}

// Animating reports whether any tween is still in flight.
func (s *Screen) Animating() bool {
	return s.tweens.Active() > 0
}

func completion(fn func()) []animate.RunOption {
	if fn == nil {
		return nil
	}
	return []animate.RunOption{animate.OnComplete(fn)}
}
