package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bubbleblast/ecs"
)

// AttractionSystem drifts unsupported bodies back toward the anchored mass
// and lets them float upward. It must run after SupportSystem.
type AttractionSystem struct{}

func NewAttractionSystem() *AttractionSystem {
	return &AttractionSystem{}
}

func (a *AttractionSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}
	t := w.Tuning
	target := AnchoredCentroid(w)

	for _, b := range w.Bodies() {
		if !b.Active || !b.Bonded || b.Anchored {
			continue
		}
		b.Vel = b.Vel.Add(clusterPull(b.Pos, target, t, 1))
		b.Vel = capSpeed(b.Vel, t.ClusterMaxSpeed)

		b.Vel.Y -= t.AntiGravity
		if b.Vel.Y < -t.MaxRiseSpeed {
			b.Vel.Y = -t.MaxRiseSpeed
		}
	}

	if proj := w.Projectile(); proj != nil && !w.Aiming && proj.Speed() < t.FlightSlowSpeed {
		proj.Vel = proj.Vel.Add(clusterPull(proj.Pos, target, t, t.ProjectilePullRatio))
	}
}

// AnchoredCentroid is the mean position of the anchored bodies, or a point
// near the bottom of the playfield when nothing is anchored.
func AnchoredCentroid(w *ecs.World) cp.Vector {
	var sum cp.Vector
	n := 0
	for _, b := range w.Bodies() {
		if b.Active && b.Bonded && b.Anchored {
			sum = sum.Add(b.Pos)
			n++
		}
	}
	if n == 0 {
		t := w.Tuning
		return cp.Vector{X: (t.Left + t.Right) / 2, Y: t.Bottom - t.FallbackOffsetY}
	}
	return sum.Mult(1 / float64(n))
}

// clusterPull grows with distance and is boosted past ClusterFarDistance.
func clusterPull(from, to cp.Vector, t ecs.Tuning, scale float64) cp.Vector {
	delta := to.Sub(from)
	dist := delta.Length()
	if dist < t.DistanceEpsilon {
		return cp.Vector{}
	}
	mag := t.ClusterAttraction * dist
	if dist > t.ClusterFarDistance {
		mag *= t.ClusterFarBoost
	}
	return delta.Mult(mag * scale / dist)
}

func capSpeed(v cp.Vector, max float64) cp.Vector {
	if v.LengthSq() > max*max {
		return v.Clamp(max)
	}
	return v
}
