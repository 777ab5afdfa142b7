package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/animgroup/ecs"
	"github.com/milk9111/animgroup/ecs/component"
	"golang.org/x/image/font/basicfont"

	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// RenderSystem draws panels at their translated position with their current
// opacity.
type RenderSystem struct {
	face ebtext.Face
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	entities := w.Query(component.PanelComponent.Kind(), component.TransformComponent.Kind(), component.BoundsComponent.Kind())
	layers := make(map[ecs.Entity]int, len(entities))
	for _, e := range entities {
		p, _ := ecs.Get(w, e, component.PanelComponent)
		layers[e] = p.Layer
	}
	sort.SliceStable(entities, func(i, j int) bool {
		if layers[entities[i]] != layers[entities[j]] {
			return layers[entities[i]] < layers[entities[j]]
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		panel, _ := ecs.Get(w, e, component.PanelComponent)
		tr, _ := ecs.Get(w, e, component.TransformComponent)
		b, _ := ecs.Get(w, e, component.BoundsComponent)
		alpha := 1.0
		if o, ok := ecs.Get(w, e, component.OpacityComponent); ok {
			alpha = clamp01(o.Alpha)
		}
		if alpha <= 0 || b.W <= 0 || b.H <= 0 {
			continue
		}

		x := tr.X
		y := tr.Y + tr.OffsetY
		if panel.Fill != nil {
			vector.FillRect(screen, float32(x), float32(y), float32(b.W), float32(b.H), fade(panel.Fill, alpha), false)
		}
		if panel.Label == "" {
			continue
		}
		tw, th := ebtext.Measure(panel.Label, r.face, 0)
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(x+(b.W-tw)/2, y+(b.H-th)/2)
		op.ColorScale.ScaleAlpha(float32(alpha))
		ebtext.Draw(screen, panel.Label, r.face, op)
	}
}

func fade(c color.Color, alpha float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * alpha)
	return n
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
