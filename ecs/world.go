package ecs

import "github.com/milk9111/animgroup/ecs/component"

// World owns entities, their components, and the system order. It is the
// view tree of a screen: whoever holds an Entity handle only borrows it, and
// DestroyEntity invalidates every borrowed copy.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]*SparseSet
	scheduler Scheduler
	onDestroy []func(Entity)
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and invalidates its handle.
// It reports false when e was already dead.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	w.entities.destroy(e)
	for _, fn := range w.onDestroy {
		fn(e)
	}
	return true
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// OnDestroy registers fn to be called after each entity is destroyed.
func (w *World) OnDestroy(fn func(Entity)) {
	if w == nil || fn == nil {
		return
	}
	w.onDestroy = append(w.onDestroy, fn)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return w.entities.count
}

// Entities returns all live entities in slot order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	w.entities.each(func(e Entity) { out = append(out, e) })
	return out
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Update runs all systems once.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.scheduler.Update(w)
}

// Query returns the entities that carry every given component kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		set := w.stores[k.ID()]
		if set.Len() == 0 {
			return nil
		}
		sets = append(sets, set)
	}
	// iterate smallest set
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.Len())
	for _, e := range smallest.Entities() {
		ok := true
		for _, s := range sets {
			if s != smallest && !s.Has(e) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns one entity carrying kind, if any.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	set := w.stores[kind.ID()]
	if set.Len() == 0 {
		return 0, false
	}
	return set.Entities()[0], true
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	set := w.stores[id]
	if set == nil && create {
		set = &SparseSet{}
		w.stores[id] = set
	}
	return set
}
