package animate

import (
	"time"

	"github.com/milk9111/animgroup/ecs"
)

// DefaultDelay is the start delay applied when hiding.
const DefaultDelay = 150 * time.Millisecond

// OffsetProvider returns a fixed slide distance, replacing the entity's
// measured height.
type OffsetProvider func() float64

// Liveness reports whether an entity handle still refers to a live entity.
// *ecs.World implements it.
type Liveness interface {
	IsAlive(e ecs.Entity) bool
}

// Entry is one registered entity and its variant.
type Entry struct {
	Entity  ecs.Entity
	Variant Variant
}

// Registry is the per-screen animation configuration: which entity animates
// how, offsets, default durations and behaviour flags.
//
// The registry only stores entity handles. It never keeps an entity alive:
// once the owning world destroys an entity its entry stops being reported
// and is dropped on the next read.
type Registry struct {
	alive   Liveness
	order   []ecs.Entity
	entries map[ecs.Entity]Variant

	topOffset    OffsetProvider
	bottomOffset OffsetProvider

	animateOnBack bool
	delayOnStart  bool
	defaultDelay  time.Duration
	defaults      Durations
}

// NewRegistry returns a registry with the library defaults: back-button
// animation on, no delay on reveal, 150ms delay and DefaultDurations.
func NewRegistry(alive Liveness) *Registry {
	return &Registry{
		alive:         alive,
		entries:       make(map[ecs.Entity]Variant),
		animateOnBack: true,
		defaultDelay:  DefaultDelay,
		defaults:      DefaultDurations(),
	}
}

// Register assigns v to e, replacing any previous variant.
func (r *Registry) Register(e ecs.Entity, v Variant) {
	if _, ok := r.entries[e]; !ok {
		r.order = append(r.order, e)
	}
	r.entries[e] = v
}

// Unregister removes e. It is a no-op for unknown entities.
func (r *Registry) Unregister(e ecs.Entity) {
	if _, ok := r.entries[e]; !ok {
		return
	}
	delete(r.entries, e)
	for i, o := range r.order {
		if o == e {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Variant returns the variant registered for a live e.
func (r *Registry) Variant(e ecs.Entity) (Variant, bool) {
	if !r.isAlive(e) {
		return 0, false
	}
	v, ok := r.entries[e]
	return v, ok
}

// Entries returns the live entries in registration order and forgets the
// dead ones.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.order))
	kept := r.order[:0]
	for _, e := range r.order {
		if !r.isAlive(e) {
			delete(r.entries, e)
			continue
		}
		kept = append(kept, e)
		out = append(out, Entry{Entity: e, Variant: r.entries[e]})
	}
	clear(r.order[len(kept):])
	r.order = kept
	return out
}

// Len returns the number of live entries.
func (r *Registry) Len() int {
	return len(r.Entries())
}

func (r *Registry) SetTopOffsetProvider(fn OffsetProvider)    { r.topOffset = fn }
func (r *Registry) SetBottomOffsetProvider(fn OffsetProvider) { r.bottomOffset = fn }

// SetDefaultDuration changes the default duration of v.
func (r *Registry) SetDefaultDuration(v Variant, d time.Duration) {
	r.defaults = r.defaults.With(v, d)
}

// SetDefaultDurations replaces the whole default table.
func (r *Registry) SetDefaultDurations(d Durations) {
	r.defaults = d
}

// SetFlags sets the behaviour flags. Negative delays are stored as given.
func (r *Registry) SetFlags(animateOnBackButton, delayOnStart bool, defaultDelay time.Duration) {
	r.animateOnBack = animateOnBackButton
	r.delayOnStart = delayOnStart
	r.defaultDelay = defaultDelay
}

func (r *Registry) AnimateOnBackButton() bool { return r.animateOnBack }
func (r *Registry) DelayOnStart() bool        { return r.delayOnStart }
func (r *Registry) DefaultDelay() time.Duration {
	return r.defaultDelay
}
func (r *Registry) Defaults() Durations { return r.defaults }

func (r *Registry) offsetProvider(v Variant) OffsetProvider {
	switch v {
	case SlideFromTop:
		return r.topOffset
	case SlideFromBottom:
		return r.bottomOffset
	default:
		return nil
	}
}

func (r *Registry) isAlive(e ecs.Entity) bool {
	if r.alive == nil {
		return true
	}
	return r.alive.IsAlive(e)
}
