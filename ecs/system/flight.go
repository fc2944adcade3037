package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bubbleblast/ecs"
)

// FlightSystem advances the free projectile, bounces it off the playfield
// walls, and resolves its first contact with the mass.
type FlightSystem struct {
	spawner *Spawner
	matcher *MatchEngine

	stalled int
}

func NewFlightSystem(spawner *Spawner, matcher *MatchEngine) *FlightSystem {
	return &FlightSystem{spawner: spawner, matcher: matcher}
}

func (f *FlightSystem) Update(w *ecs.World) {
	if f == nil || w == nil || w.Aiming {
		return
	}
	proj := w.Projectile()
	if proj == nil {
		f.respawn(w)
		return
	}
	t := w.Tuning

	if proj.Speed() < t.FlightSlowSpeed {
		pullTowardMass(w, proj)
	}

	proj.Pos = proj.Pos.Add(proj.Vel)
	reflectInBounds(proj, t)
	proj.Vel = snapVelocity(proj.Vel.Mult(t.FlightDamping), t.VelocityEpsilon)

	if contact := NearestContact(w, proj); contact != nil {
		if proj.Kind.Bondable() {
			f.bond(w, proj, contact)
		} else {
			f.matcher.Detonate(w, proj, proj.Pos)
		}
		f.respawn(w)
		return
	}

	// The walls keep the shot inside, so a stall is the only miss.
	if proj.Vel == (cp.Vector{}) {
		f.stalled++
	} else {
		f.stalled = 0
	}
	if t.StallFrames > 0 && f.stalled >= t.StallFrames {
		f.respawn(w)
	}
}

func (f *FlightSystem) respawn(w *ecs.World) {
	f.stalled = 0
	w.ClearProjectile()
	if f.spawner != nil {
		f.spawner.Spawn(w)
	}
}

// bond sticks the projectile to contact at exact tangency and hands the new
// body to the match engine.
func (f *FlightSystem) bond(w *ecs.World, proj, contact *ecs.Body) {
	t := w.Tuning
	offset := proj.Pos.Sub(contact.Pos)
	if dist := offset.Length(); dist > t.DistanceEpsilon {
		proj.Pos = contact.Pos.Add(offset.Mult((proj.Radius + contact.Radius) / dist))
	}
	clampInBounds(proj, t, 0)

	contact.Vel = contact.Vel.Add(proj.Vel.Mult(t.MomentumTransfer))
	proj.Vel = cp.Vector{}
	proj.Rest = proj.Pos
	proj.Anchored = contact.Anchored

	b := w.BondProjectile()
	w.Contacts++
	if f.matcher != nil {
		f.matcher.Resolve(w, b)
	}
}

// NearestContact returns the bonded body closest to b among those it
// overlaps, or nil.
func NearestContact(w *ecs.World, b *ecs.Body) *ecs.Body {
	var best *ecs.Body
	bestDist := math.Inf(1)
	for _, other := range w.Bodies() {
		if !other.Active || !other.Bonded || other == b {
			continue
		}
		d := b.Pos.Distance(other.Pos)
		if d < b.Radius+other.Radius && d < bestDist {
			best = other
			bestDist = d
		}
	}
	return best
}

func pullTowardMass(w *ecs.World, proj *ecs.Body) {
	t := w.Tuning
	for _, b := range w.Bodies() {
		if !b.Active || !b.Bonded {
			continue
		}
		offset := b.Pos.Sub(proj.Pos)
		d := offset.Length()
		if d < t.DistanceEpsilon || d > t.FlightAttractRange {
			continue
		}
		proj.Vel = proj.Vel.Add(offset.Mult(t.FlightAttraction / d))
	}
}

func reflectInBounds(b *ecs.Body, t ecs.Tuning) {
	r := b.Radius
	if b.Pos.X-r < t.Left {
		b.Pos.X = t.Left + r
		b.Vel.X = -b.Vel.X * t.Restitution
	} else if b.Pos.X+r > t.Right {
		b.Pos.X = t.Right - r
		b.Vel.X = -b.Vel.X * t.Restitution
	}
	if b.Pos.Y-r < t.Top {
		b.Pos.Y = t.Top + r
		b.Vel.Y = -b.Vel.Y * t.Restitution
	} else if b.Pos.Y+r > t.Bottom {
		b.Pos.Y = t.Bottom - r
		b.Vel.Y = -b.Vel.Y * t.Restitution
	}
}

// clampInBounds keeps b inside the playfield shrunk by margin and reports
// whether it now touches the top edge.
func clampInBounds(b *ecs.Body, t ecs.Tuning, margin float64) bool {
	r := b.Radius + margin
	b.Pos.X = cp.Clamp(b.Pos.X, t.Left+r, t.Right-r)
	b.Pos.Y = cp.Clamp(b.Pos.Y, t.Top+r, t.Bottom-r)
	return b.Pos.Y-r <= t.Top
}

func snapVelocity(v cp.Vector, eps float64) cp.Vector {
	if math.Abs(v.X) < eps {
		v.X = 0
	}
	if math.Abs(v.Y) < eps {
		v.Y = 0
	}
	return v
}
