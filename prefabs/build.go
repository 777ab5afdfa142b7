package prefabs

import (
	"fmt"

	"github.com/milk9111/animgroup/animate"
	"github.com/milk9111/animgroup/backnav"
	"github.com/milk9111/animgroup/ecs"
	"github.com/milk9111/animgroup/ecs/component"
	"github.com/milk9111/animgroup/screen"
	"github.com/rs/zerolog"
)

// BuildScreen creates a screen from spec: one panel entity per entity spec,
// each registered with its variant, and the spec's flags, durations and
// offset scripts applied to the registry.
func BuildScreen(spec *ScreenSpec, slot *backnav.Slot, hook backnav.AfterHider, size ScreenSize, log zerolog.Logger, opts ...screen.Option) (*screen.Screen, error) {
	if spec == nil {
		return nil, fmt.Errorf("prefabs: nil screen spec")
	}
	backOverrides, err := spec.BackOverrides()
	if err != nil {
		return nil, err
	}
	opts = append([]screen.Option{screen.WithLogger(log), screen.WithBackOverrides(backOverrides)}, opts...)
	s, err := screen.New(spec.Name, slot, hook, opts...)
	if err != nil {
		return nil, fmt.Errorf("prefabs: build %s: %w", spec.Name, err)
	}

	reg := s.Registry()
	animateOnBack := true
	if spec.AnimateOnBackButton != nil {
		animateOnBack = *spec.AnimateOnBackButton
	}
	delay := animate.DefaultDelay
	if spec.DefaultDelayMS != nil {
		delay = ms(*spec.DefaultDelayMS)
	}
	reg.SetFlags(animateOnBack, spec.DelayOnStart, delay)
	reg.SetDefaultDurations(spec.DurationsMS.Durations(animate.DefaultDurations()))

	top, err := CompileOffset(spec.TopOffset, size, log)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s top_offset: %w", spec.Name, err)
	}
	bottom, err := CompileOffset(spec.BottomOffset, size, log)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s bottom_offset: %w", spec.Name, err)
	}
	reg.SetTopOffsetProvider(top)
	reg.SetBottomOffsetProvider(bottom)

	w := s.World()
	for i, es := range spec.Entities {
		variant, err := animate.ParseVariant(es.Variant)
		if err != nil {
			return nil, fmt.Errorf("prefabs: %s entity %d (%s): %w", spec.Name, i, es.Name, err)
		}
		e := w.CreateEntity()
		panel := component.Panel{Name: es.Name, Label: es.Label, Layer: es.Layer}
		if es.Fill != nil {
			panel.Fill = es.Fill.Color
		}
		_ = ecs.Add(w, e, component.PanelComponent, panel)
		_ = ecs.Add(w, e, component.TransformComponent, component.Transform{})
		_ = ecs.Add(w, e, component.LayoutRectComponent, component.LayoutRect{
			X:      es.Rect.X,
			Y:      es.Rect.Y,
			W:      es.Rect.W,
			H:      es.Rect.H,
			Anchor: component.LayoutAnchor(es.Rect.Anchor),
		})
		reg.Register(e, variant)
	}
	return s, nil
}
