package ecs

import (
	"math/rand"

	"github.com/jakecoffman/cp"
)

// Input is the per-frame input consumed by the simulation.
type Input struct {
	Pointer cp.Vector
	Trigger bool
	Restart bool
}

// World is the body store: the bonded mass, the optional projectile slot,
// and the round state that the systems share for one frame.
type World struct {
	entities entityStore
	bodies   []*Body
	proj     *Body
	events   EventQueue

	Tuning Tuning
	Mode   Mode
	Levels []Level
	level  int

	Input    Input
	Aiming   bool
	AimDir   cp.Vector
	Power    float64
	Score    int
	State    State
	Frame    int
	Rand     *rand.Rand
	Contacts int

	// LastBonded is the body that joined the mass during this frame, if any.
	LastBonded *Body
}

// NewWorld creates an empty world with sanitized tuning.
func NewWorld(t Tuning, rng *rand.Rand) *World {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &World{
		Tuning: t.Sanitize(),
		Rand:   rng,
	}
}

// Bodies returns the bonded collection in store order. Inactive bodies may be
// present until the next Compact.
func (w *World) Bodies() []*Body {
	if w == nil {
		return nil
	}
	return w.bodies
}

// BondedCount returns the number of active bonded bodies.
func (w *World) BondedCount() int {
	if w == nil {
		return 0
	}
	n := 0
	for _, b := range w.bodies {
		if b.Active && b.Bonded {
			n++
		}
	}
	return n
}

// AddBonded assigns an identity to b and appends it to the mass.
func (w *World) AddBonded(b *Body) *Body {
	if w == nil || b == nil {
		return nil
	}
	if !w.entities.isAlive(b.ID) {
		b.ID = w.entities.create()
	}
	b.Active = true
	b.Bonded = true
	w.bodies = append(w.bodies, b)
	return b
}

// Projectile returns the free-flying body, or nil when the slot is empty.
func (w *World) Projectile() *Body {
	if w == nil {
		return nil
	}
	return w.proj
}

// SetProjectile fills the projectile slot, discarding any previous occupant.
func (w *World) SetProjectile(b *Body) {
	if w == nil {
		return
	}
	w.ClearProjectile()
	if b == nil {
		return
	}
	b.ID = w.entities.create()
	b.Active = true
	b.Bonded = false
	b.Anchored = false
	w.proj = b
}

// ClearProjectile empties the projectile slot and releases its identity.
func (w *World) ClearProjectile() {
	if w == nil || w.proj == nil {
		return
	}
	w.entities.destroy(w.proj.ID)
	w.proj.Active = false
	w.proj = nil
}

// BondProjectile moves the projectile out of its slot and into the mass,
// keeping its identity.
func (w *World) BondProjectile() *Body {
	if w == nil || w.proj == nil {
		return nil
	}
	b := w.proj
	w.proj = nil
	b.Bonded = true
	w.bodies = append(w.bodies, b)
	w.LastBonded = b
	return b
}

// Remove soft-deletes a body. It stays in the collection until Compact.
func (w *World) Remove(b *Body) bool {
	if w == nil || b == nil || !b.Active {
		return false
	}
	b.Active = false
	if b == w.proj {
		w.ClearProjectile()
		return true
	}
	w.entities.destroy(b.ID)
	return true
}

// Compact drops inactive bodies, preserving store order.
func (w *World) Compact() int {
	if w == nil {
		return 0
	}
	kept := w.bodies[:0]
	for _, b := range w.bodies {
		if b.Active {
			kept = append(kept, b)
		}
	}
	removed := len(w.bodies) - len(kept)
	for i := len(kept); i < len(w.bodies); i++ {
		w.bodies[i] = nil
	}
	w.bodies = kept
	if w.LastBonded != nil && !w.LastBonded.Active {
		w.LastBonded = nil
	}
	return removed
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Emit queues an explosion for the renderer.
func (w *World) Emit(pos cp.Vector, color Color, kind Kind, particles int) {
	if w == nil || particles <= 0 {
		return
	}
	w.events.Push(Explosion{Pos: pos, Color: color, Kind: kind, Particles: particles})
}

// LevelIndex returns the clamped index of the active level.
func (w *World) LevelIndex() int {
	if w == nil || len(w.Levels) == 0 {
		return 0
	}
	return clampIndex(w.level, len(w.Levels))
}

// SetLevel selects a level. Out-of-range indices are clamped.
func (w *World) SetLevel(i int) {
	if w == nil {
		return
	}
	if len(w.Levels) == 0 {
		w.level = 0
		return
	}
	w.level = clampIndex(i, len(w.Levels))
}

// Level returns the active level. Endless mode synthesises one from tuning.
func (w *World) Level() Level {
	if w == nil {
		return Level{}
	}
	if w.Mode == ModeLevels && len(w.Levels) > 0 {
		return w.Levels[w.LevelIndex()]
	}
	base := Level{Name: "endless", Population: w.Tuning.EndlessPopulation}
	if len(w.Levels) > 0 {
		l := w.Levels[w.LevelIndex()]
		base.BombChance = l.BombChance
		base.RainbowChance = l.RainbowChance
		base.UniversalChance = l.UniversalChance
		base.Script = l.Script
	}
	return base
}

// LastLevel reports whether the active level is the final one.
func (w *World) LastLevel() bool {
	if w == nil {
		return true
	}
	return w.LevelIndex() >= len(w.Levels)-1
}

// MaxBodies returns the population ceiling for the current mode.
func (w *World) MaxBodies() int {
	if w == nil {
		return 0
	}
	if w.Mode == ModeLevels {
		if l := w.Level(); l.MaxBodies > 0 {
			return l.MaxBodies
		}
		return w.Tuning.LevelMaxBodies
	}
	return w.Tuning.EndlessMaxBodies
}

// Clear empties the store and resets round state. Level selection, tuning,
// and mode are kept.
func (w *World) Clear() {
	if w == nil {
		return
	}
	for i := range w.bodies {
		w.bodies[i] = nil
	}
	w.bodies = w.bodies[:0]
	w.proj = nil
	w.entities.reset()
	w.events.flush()
	w.Input = Input{}
	w.Aiming = false
	w.AimDir = cp.Vector{}
	w.Power = 0
	w.Score = 0
	w.State = StatePlaying
	w.Frame = 0
	w.Contacts = 0
	w.LastBonded = nil
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
