package ecs

import "github.com/jakecoffman/cp"

// BodyView is the read-only render data for one body.
type BodyView struct {
	ID       Entity
	Pos      cp.Vector
	Radius   float64
	Color    Color
	Kind     Kind
	Anchored bool
	Bonded   bool
}

// Snapshot is a point-in-time copy of everything the renderer reads. It
// shares no memory with the world.
type Snapshot struct {
	Bodies     []BodyView
	Projectile *BodyView
	SpawnPoint cp.Vector
	Bounds     cp.BB
	// DangerLine is 0 when the danger line is disabled.
	DangerLine float64
	Aiming     bool
	AimDir     cp.Vector
	Power      float64
	MaxPower   float64
	Score      int
	State      State
	Mode       Mode
	Level      Level
	LevelIndex int
	LevelCount int
	MaxBodies  int
	Frame      int
}

func viewOf(b *Body) BodyView {
	return BodyView{
		ID:       b.ID,
		Pos:      b.Pos,
		Radius:   b.Radius,
		Color:    b.Color,
		Kind:     b.Kind,
		Anchored: b.Anchored,
		Bonded:   b.Bonded,
	}
}

// Snapshot copies the active bodies and round state. Call it between steps.
func (w *World) Snapshot() Snapshot {
	if w == nil {
		return Snapshot{}
	}
	sx, sy := w.Tuning.SpawnPoint()
	s := Snapshot{
		Bodies:     make([]BodyView, 0, len(w.bodies)),
		SpawnPoint: cp.Vector{X: sx, Y: sy},
		Bounds:     w.Tuning.Bounds(),
		Aiming:     w.Aiming,
		AimDir:     w.AimDir,
		Power:      w.Power,
		MaxPower:   w.Tuning.MaxPower,
		Score:      w.Score,
		State:      w.State,
		Mode:       w.Mode,
		Level:      w.Level(),
		LevelIndex: w.LevelIndex(),
		LevelCount: len(w.Levels),
		MaxBodies:  w.MaxBodies(),
		Frame:      w.Frame,
	}
	if w.Tuning.DangerLineOffset > 0 {
		s.DangerLine = w.Tuning.Bottom - w.Tuning.DangerLineOffset
	}
	for _, b := range w.bodies {
		if b.Active {
			s.Bodies = append(s.Bodies, viewOf(b))
		}
	}
	if w.proj != nil && w.proj.Active {
		v := viewOf(w.proj)
		s.Projectile = &v
	}
	return s
}
