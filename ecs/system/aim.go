package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bubbleblast/ecs"
)

// AimSystem drags the held projectile toward the pointer and launches it on
// the trigger.
type AimSystem struct{}

func NewAimSystem() *AimSystem {
	return &AimSystem{}
}

func (a *AimSystem) Update(w *ecs.World) {
	if w == nil || !w.Aiming {
		return
	}
	proj := w.Projectile()
	if proj == nil {
		return
	}

	t := w.Tuning
	sx, sy := t.SpawnPoint()
	spawn := cp.Vector{X: sx, Y: sy}

	target := ClampAimTarget(t, spawn, w.Input.Pointer, proj.Radius)
	proj.Pos = proj.Pos.Lerp(target, t.AimSmoothing)
	proj.Vel = cp.Vector{}

	offset := proj.Pos.Sub(spawn)
	dist := offset.Length()
	if dist > t.DistanceEpsilon {
		w.AimDir = offset.Mult(1 / dist)
	} else {
		w.AimDir = cp.Vector{X: 0, Y: -1}
	}
	w.Power = cp.Clamp(dist/t.PowerDivisor, t.MinPower, t.MaxPower)

	if !w.Input.Trigger {
		return
	}
	proj.Vel = w.AimDir.Mult(t.ShootSpeed * w.Power)
	w.Aiming = false
}

// ClampAimTarget limits a pointer position to the aiming area: within
// MaxAimDistance of the spawn point, inside the side and top bounds, and
// never below the launch line.
func ClampAimTarget(t ecs.Tuning, spawn, pointer cp.Vector, radius float64) cp.Vector {
	target := pointer
	if target.Y > spawn.Y {
		target.Y = spawn.Y
	}
	offset := target.Sub(spawn)
	if offset.Length() > t.MaxAimDistance {
		target = spawn.Add(offset.Clamp(t.MaxAimDistance))
	}
	target.X = cp.Clamp(target.X, t.Left+radius, t.Right-radius)
	target.Y = cp.Clamp(target.Y, t.Top+radius, spawn.Y)
	return target
}
