package system

import (
	"github.com/milk9111/animgroup/ecs"
	"github.com/milk9111/animgroup/ecs/component"
)

// LayoutSystem measures entities: it resolves every LayoutRect against the
// screen size into a Transform position and Bounds. Translation written by
// animations is preserved.
type LayoutSystem struct{}

func NewLayoutSystem() *LayoutSystem { return &LayoutSystem{} }

// Measure lays out every entity with a LayoutRect and returns how many were
// measured.
func (ls *LayoutSystem) Measure(w *ecs.World, width, height float64) int {
	if w == nil || width <= 0 || height <= 0 {
		return 0
	}
	n := 0
	for _, e := range w.Query(component.LayoutRectComponent.Kind()) {
		rect, ok := ecs.Get(w, e, component.LayoutRectComponent)
		if !ok {
			continue
		}
		x, y, bw, bh := resolveRect(rect, width, height)

		tr, _ := ecs.Get(w, e, component.TransformComponent)
		tr.X, tr.Y = x, y
		_ = ecs.Add(w, e, component.TransformComponent, tr)
		_ = ecs.Add(w, e, component.BoundsComponent, component.Bounds{W: bw, H: bh})
		n++
	}
	return n
}

func resolveRect(r component.LayoutRect, width, height float64) (x, y, w, h float64) {
	x, w, h = r.X, r.W, r.H
	if w <= 0 {
		w = width - 2*r.X
	}
	switch r.Anchor {
	case component.AnchorBottom:
		y = height - h - r.Y
	case component.AnchorCenter:
		y = (height-h)/2 + r.Y
	default:
		y = r.Y
	}
	return x, y, w, h
}
