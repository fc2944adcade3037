package system

import (
	"github.com/milk9111/bubbleblast/ecs"
)

// IntegrateSystem applies damping, caps speed, moves bonded bodies, and keeps
// them inside the playfield.
type IntegrateSystem struct{}

func NewIntegrateSystem() *IntegrateSystem {
	return &IntegrateSystem{}
}

func (s *IntegrateSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	t := w.Tuning
	for _, b := range w.Bodies() {
		if !b.Active || !b.Bonded {
			continue
		}
		onCeiling := touchesTop(b, t)
		b.Vel = b.Vel.Mult(b.Damping)
		b.Vel = capSpeed(b.Vel, t.MaxSpeed)
		b.Vel = snapVelocity(b.Vel, t.VelocityEpsilon)
		// the ceiling holds what hangs from it
		if onCeiling && b.Vel.Y > 0 {
			b.Vel.Y = 0
		}
		b.Pos = b.Pos.Add(b.Vel)
		if clampInBounds(b, t, t.BoundsMargin) {
			b.Anchored = true
		}
	}
}

func touchesTop(b *ecs.Body, t ecs.Tuning) bool {
	return b.Pos.Y-b.Radius <= t.Top+t.TopContactTolerance
}
