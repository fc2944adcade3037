package system

import (
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bubbleblast/ecs"
)

func newTestWorld(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld(ecs.DefaultTuning(), rand.New(rand.NewSource(7)))
	w.Tuning.JitterAmount = 0
	return w
}

func place(w *ecs.World, x, y float64, color ecs.Color, kind ecs.Kind) *ecs.Body {
	return w.AddBonded(ecs.NewBody(cp.Vector{X: x, Y: y}, color, kind, w.Tuning))
}

func launch(w *ecs.World, x, y float64, vel cp.Vector, color ecs.Color, kind ecs.Kind) *ecs.Body {
	b := ecs.NewBody(cp.Vector{X: x, Y: y}, color, kind, w.Tuning)
	w.SetProjectile(b)
	b.Vel = vel
	w.Aiming = false
	return b
}

func near(a, b cp.Vector) bool {
	return a.Distance(b) < 1e-6
}
