package system

import (
	"log"
	"math/rand"

	"github.com/milk9111/bubbleblast/ecs"
)

// Simulation owns a world and the per-frame system order.
type Simulation struct {
	World *ecs.World

	Spawner   *Spawner
	Matcher   *MatchEngine
	Support   *SupportSystem
	scheduler *ecs.Scheduler
}

// NewSimulation builds a world for mode and starts its first round.
func NewSimulation(t ecs.Tuning, mode ecs.Mode, levels []ecs.Level, rng *rand.Rand) *Simulation {
	w := ecs.NewWorld(t, rng)
	w.Mode = mode
	w.Levels = levels

	s := &Simulation{
		World:   w,
		Spawner: NewSpawner(),
		Matcher: NewMatchEngine(),
		Support: NewSupportSystem(),
	}
	s.scheduler = NewPipeline(s.Spawner, s.Matcher, s.Support)
	s.Reset()
	return s
}

// NewPipeline returns the frame order: aim, flight (and matching on
// contact), separation, springs, support, attraction, integration,
// termination.
func NewPipeline(spawner *Spawner, matcher *MatchEngine, support *SupportSystem) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewAimSystem(),
		NewFlightSystem(spawner, matcher),
		NewSeparationSystem(),
		NewSpringSystem(),
		support,
		NewAttractionSystem(),
		NewIntegrateSystem(),
		NewTerminationSystem(),
	)
}

// Reset clears the store and lays out the active level again.
func (s *Simulation) Reset() {
	if s == nil || s.World == nil {
		return
	}
	w := s.World
	w.Clear()
	level := w.Level()
	placed := GenerateLayout(w, level)
	s.Spawner.Spawn(w)
	log.Printf("[level] start %q (%s): %d bodies", level.Name, w.Mode, placed)
}

// Step advances the simulation by one frame.
func (s *Simulation) Step(in ecs.Input) {
	if s == nil || s.World == nil {
		return
	}
	w := s.World
	if in.Restart {
		if w.State == ecs.StateWon && w.Mode == ecs.ModeLevels {
			w.SetLevel(0)
		}
		s.Reset()
	}
	if w.State.Terminal() {
		return
	}
	w.Input = in
	w.LastBonded = nil
	w.Frame++
	s.scheduler.Update(w)
}

// SetTuning swaps tuning between frames. Bodies keep their current
// coefficients until the next reset.
func (s *Simulation) SetTuning(t ecs.Tuning) {
	if s == nil || s.World == nil {
		return
	}
	s.World.Tuning = t.Sanitize()
}

// SetLevels replaces the level table, keeping the current index in range.
func (s *Simulation) SetLevels(levels []ecs.Level) {
	if s == nil || s.World == nil {
		return
	}
	idx := s.World.LevelIndex()
	s.World.Levels = levels
	s.World.SetLevel(idx)
	s.Spawner.Forget()
}

// Snapshot returns the render view of the current frame.
func (s *Simulation) Snapshot() ecs.Snapshot {
	if s == nil {
		return ecs.Snapshot{}
	}
	return s.World.Snapshot()
}
