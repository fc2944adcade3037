package system

import (
	"log"

	"github.com/milk9111/bubbleblast/ecs"
)

// TerminationSystem decides whether the round is won, lost, or continues.
type TerminationSystem struct{}

func NewTerminationSystem() *TerminationSystem {
	return &TerminationSystem{}
}

func (s *TerminationSystem) Update(w *ecs.World) {
	if s == nil || w == nil || w.State != ecs.StatePlaying {
		return
	}
	w.State = Evaluate(w)
	if w.State == ecs.StateLevelComplete {
		log.Printf("[level] %q complete with %d points", w.Level().Name, w.Score)
		w.SetLevel(w.LevelIndex() + 1)
	}
}

// Evaluate returns the state the world should be in after this frame. An
// empty mass is checked first, so the empty and overflow outcomes can never
// both apply.
func Evaluate(w *ecs.World) ecs.State {
	bonded := w.BondedCount()
	if bonded == 0 {
		return levelCleared(w)
	}
	if bonded > w.MaxBodies() {
		return ecs.StateLost
	}
	if w.Tuning.DangerLineOffset > 0 {
		line := w.Tuning.Bottom - w.Tuning.DangerLineOffset
		for _, b := range w.Bodies() {
			if b.Active && b.Bonded && b.Pos.Y > line {
				return ecs.StateLost
			}
		}
	}
	if w.Mode == ecs.ModeLevels {
		if target := w.Level().TargetScore; target > 0 && w.Score >= target {
			return levelCleared(w)
		}
	}
	return ecs.StatePlaying
}

func levelCleared(w *ecs.World) ecs.State {
	if w.Mode == ecs.ModeLevels && !w.LastLevel() {
		return ecs.StateLevelComplete
	}
	return ecs.StateWon
}
