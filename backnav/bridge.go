package backnav

import (
	"errors"

	"github.com/milk9111/animgroup/animate"
	"github.com/rs/zerolog"
)

// ErrNoAfterHideHook is returned when a bridge is built without the hook
// that finishes back navigation.
var ErrNoAfterHideHook = errors.New("backnav: after-hide hook is required")

// AfterHider completes back navigation once the hide animation has ended,
// e.g. by popping the screen. It is called once per intercepted request.
type AfterHider interface {
	AfterHide()
}

// AfterHideFunc adapts a function to AfterHider.
type AfterHideFunc func()

func (f AfterHideFunc) AfterHide() { f() }

// Orchestrator runs hide animations. *animate.Engine implements it.
type Orchestrator interface {
	Run(visible bool, opts ...animate.RunOption) animate.Report
}

// Flags exposes the back-button switch. *animate.Registry implements it.
type Flags interface {
	AnimateOnBackButton() bool
}

type State int

const (
	NotInstalled State = iota
	Installed
)

func (s State) String() string {
	if s == Installed {
		return "installed"
	}
	return "not_installed"
}

// Option configures a Bridge.
type Option func(*Bridge)

func WithLogger(log zerolog.Logger) Option {
	return func(b *Bridge) { b.log = log }
}

// WithOverrides sets the duration overrides used for back-button hides.
func WithOverrides(o animate.Overrides) Option {
	return func(b *Bridge) { b.overrides = o }
}

// Bridge installs its owner in a Slot while the owner is in the foreground
// and turns intercepted back requests into hide runs.
type Bridge struct {
	slot      *Slot
	engine    Orchestrator
	flags     Flags
	hook      AfterHider
	overrides animate.Overrides
	log       zerolog.Logger

	state State
	token Token
}

func NewBridge(slot *Slot, engine Orchestrator, flags Flags, hook AfterHider, opts ...Option) (*Bridge, error) {
	if hook == nil {
		return nil, ErrNoAfterHideHook
	}
	b := &Bridge{
		slot:   slot,
		engine: engine,
		flags:  flags,
		hook:   hook,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// State returns whether the bridge believes it is installed.
func (b *Bridge) State() State { return b.state }

// Foreground claims the slot unless this bridge already holds it.
func (b *Bridge) Foreground() {
	if b.slot == nil {
		return
	}
	if b.state == Installed && b.slot.Holds(b.token) {
		return
	}
	b.token = b.slot.Claim(b)
	b.state = Installed
	b.log.Debug().Uint64("token", uint64(b.token)).Msg("back listener claimed")
}

// Background releases the slot if this bridge still holds it.
func (b *Bridge) Background() {
	if b.state != Installed {
		return
	}
	released := b.slot.Release(b.token)
	b.state = NotInstalled
	b.token = 0
	b.log.Debug().Bool("released", released).Msg("back listener background")
}

// BackPressed starts a hide run that calls the after-hide hook when it ends.
// It declines when the bridge is not installed or back animation is off.
func (b *Bridge) BackPressed() bool {
	if b.state != Installed {
		return false
	}
	if b.flags != nil && !b.flags.AnimateOnBackButton() {
		b.log.Debug().Msg("back request declined")
		return false
	}
	opts := []animate.RunOption{animate.OnComplete(b.hook.AfterHide)}
	if len(b.overrides) > 0 {
		opts = append(opts, animate.WithOverrides(b.overrides))
	}
	report := b.engine.Run(false, opts...)
	b.log.Debug().Int("pairs", report.Pairs).Dur("longest", report.Longest).Msg("back request intercepted")
	return true
}
