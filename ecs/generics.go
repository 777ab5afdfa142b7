package ecs

import "github.com/milk9111/animgroup/ecs/component"

func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	if w == nil || !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if !handle.Kind().Valid() {
		return component.ErrInvalidComponentKind
	}
	w.store(handle.Kind().ID(), true).Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	return w.store(handle.Kind().ID(), false).Remove(e)
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	return w.store(handle.Kind().ID(), false).Has(e)
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (T, bool) {
	var zero T
	if w == nil || !w.IsAlive(e) {
		return zero, false
	}
	value := w.store(handle.Kind().ID(), false).Get(e)
	if value == nil {
		return zero, false
	}
	cast, ok := value.(T)
	if !ok {
		return zero, false
	}
	return cast, true
}

// Update reads the component of e, applies fn and writes it back. It is a
// no-op when e is dead or lacks the component.
func Update[T any](w *World, e Entity, handle component.ComponentHandle[T], fn func(*T)) bool {
	value, ok := Get(w, e, handle)
	if !ok {
		return false
	}
	fn(&value)
	return Add(w, e, handle, value) == nil
}
