package system

import (
	"testing"

	"github.com/milk9111/animgroup/ecs"
	"github.com/milk9111/animgroup/ecs/component"
)

func TestLayoutMeasure(t *testing.T) {
	cases := []struct {
		name  string
		rect  component.LayoutRect
		wantX float64
		wantY float64
		wantW float64
		wantH float64
	}{
		{"top_fixed", component.LayoutRect{X: 10, Y: 20, W: 100, H: 50, Anchor: component.AnchorTop}, 10, 20, 100, 50},
		{"default_anchor_is_top", component.LayoutRect{Y: 5, W: 10, H: 10}, 0, 5, 10, 10},
		{"bottom_stretched", component.LayoutRect{X: 40, Y: 10, H: 80, Anchor: component.AnchorBottom}, 40, 630, 1200, 80},
		{"center", component.LayoutRect{W: 200, H: 100, Anchor: component.AnchorCenter}, 0, 310, 200, 100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := w.CreateEntity()
			_ = ecs.Add(w, e, component.LayoutRectComponent, c.rect)
			_ = ecs.Add(w, e, component.TransformComponent, component.Transform{OffsetY: -3})

			if n := NewLayoutSystem().Measure(w, 1280, 720); n != 1 {
				t.Fatalf("expected 1 measured entity, got %d", n)
			}
			tr, _ := ecs.Get(w, e, component.TransformComponent)
			b, _ := ecs.Get(w, e, component.BoundsComponent)
			if tr.X != c.wantX || tr.Y != c.wantY || b.W != c.wantW || b.H != c.wantH {
				t.Fatalf("got pos=(%v,%v) size=(%v,%v)", tr.X, tr.Y, b.W, b.H)
			}
			if tr.OffsetY != -3 {
				t.Fatalf("layout must keep the animated offset, got %v", tr.OffsetY)
			}
		})
	}
}

func TestLayoutIgnoresUnsizedScreen(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.LayoutRectComponent, component.LayoutRect{H: 10})
	if n := NewLayoutSystem().Measure(w, 0, 0); n != 0 {
		t.Fatalf("expected no measurement before the screen has a size, got %d", n)
	}
}
