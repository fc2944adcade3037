package system

import (
	"github.com/milk9111/bubbleblast/ecs"
)

// SeparationSystem pushes overlapping bonded bodies apart.
type SeparationSystem struct{}

func NewSeparationSystem() *SeparationSystem {
	return &SeparationSystem{}
}

func (s *SeparationSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	t := w.Tuning
	bodies := w.Bodies()
	n := len(bodies)

	for i := 0; i < n; i++ {
		bi := bodies[i]
		if !bi.Active || !bi.Bonded {
			continue
		}
		for j := i + 1; j < n; j++ {
			bj := bodies[j]
			if !bj.Active || !bj.Bonded {
				continue
			}

			// vector from j -> i (push apart)
			delta := bi.Pos.Sub(bj.Pos)
			dist := delta.Length()
			minDist := bi.Radius + bj.Radius
			if dist >= minDist || dist < t.DistanceEpsilon {
				continue
			}

			overlap := minDist - dist
			push := delta.Mult(overlap * 0.5 * t.SeparationForce / dist)
			bi.Pos = bi.Pos.Add(push)
			bj.Pos = bj.Pos.Sub(push)
		}
	}
}
