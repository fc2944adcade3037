package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bubbleblast/ecs"
)

// SpringSystem keeps neighbouring bonded bodies near touching distance and
// pulls every bonded body weakly back toward its rest position.
type SpringSystem struct {
	forces []cp.Vector
}

func NewSpringSystem() *SpringSystem {
	return &SpringSystem{}
}

func (s *SpringSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	t := w.Tuning
	bodies := w.Bodies()
	if cap(s.forces) < len(bodies) {
		s.forces = make([]cp.Vector, len(bodies))
	}
	s.forces = s.forces[:len(bodies)]

	for i, bi := range bodies {
		s.forces[i] = cp.Vector{}
		if !bi.Active || !bi.Bonded {
			continue
		}
		reach := t.SpringNeighborRatio * bi.Radius
		loose := t.SpringLooseRatio * bi.Radius

		var force cp.Vector
		for j, bj := range bodies {
			if i == j || !bj.Active || !bj.Bonded {
				continue
			}
			delta := bj.Pos.Sub(bi.Pos)
			dist := delta.Length()
			if dist < t.DistanceEpsilon || dist > reach {
				continue
			}
			// positive when stretched, negative when compressed
			stretch := dist - (bi.Radius + bj.Radius)
			mag := bi.Stiffness * stretch
			if dist > loose {
				mag *= t.SpringLooseFactor
			}
			force = force.Add(delta.Mult(mag / dist))
		}
		force = force.Add(bi.Rest.Sub(bi.Pos).Mult(t.RestForce))
		s.forces[i] = force
	}

	for i, b := range bodies {
		if b.Active && b.Bonded {
			b.Vel = b.Vel.Add(s.forces[i])
		}
	}
}
