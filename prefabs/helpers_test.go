package prefabs

import (
	"testing"

	"github.com/milk9111/animgroup/ecs"
	"github.com/milk9111/animgroup/ecs/component"
	"github.com/milk9111/animgroup/screen"
)

func offsetOf(t *testing.T, s *screen.Screen, e ecs.Entity) float64 {
	t.Helper()
	tr, ok := ecs.Get(s.World(), e, component.TransformComponent)
	if !ok {
		t.Fatalf("entity %s has no transform", e)
	}
	return tr.OffsetY
}
