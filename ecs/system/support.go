package system

import (
	"github.com/milk9111/bubbleblast/ecs"
)

// SupportSystem recomputes which bonded bodies are anchored: touching the top
// edge, or within reach of an anchored body, transitively.
//
// Each relaxation pass is O(n^2) and a frame may need up to one pass per
// body in a chain, so this is the main scaling cost of a frame. A spatial
// bucket index would cut the inner loop without changing results.
type SupportSystem struct {
	// Passes and Capped describe the last run.
	Passes int
	Capped bool
}

func NewSupportSystem() *SupportSystem {
	return &SupportSystem{}
}

func (s *SupportSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.Passes, s.Capped = PropagateSupport(w)
}

// PropagateSupport runs the anchoring relaxation and returns the number of
// passes made and whether the pass cap stopped it early.
func PropagateSupport(w *ecs.World) (int, bool) {
	t := w.Tuning
	bodies := w.Bodies()

	for _, b := range bodies {
		if !b.Active || !b.Bonded {
			continue
		}
		b.Anchored = touchesTop(b, t)
	}

	passes := 0
	for {
		if passes >= t.SupportMaxPasses {
			return passes, true
		}
		passes++
		changed := false
		for _, b := range bodies {
			if !b.Active || !b.Bonded || b.Anchored {
				continue
			}
			reach := t.SupportNeighborFactor * b.Radius
			for _, other := range bodies {
				if other == b || !other.Active || !other.Bonded || !other.Anchored {
					continue
				}
				if b.Pos.Near(other.Pos, reach) {
					b.Anchored = true
					changed = true
					break
				}
			}
		}
		if !changed {
			return passes, false
		}
	}
}
