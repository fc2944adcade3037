package system

import (
	"testing"

	"github.com/milk9111/bubbleblast/ecs"
)

func TestPropagateSupportAnchorsFullLayout(t *testing.T) {
	w := newTestWorld(t)
	GenerateLayout(w, ecs.Level{Population: 60})
	for _, b := range w.Bodies() {
		b.Anchored = false
	}

	passes, capped := PropagateSupport(w)
	if capped {
		t.Fatalf("layout should settle without hitting the pass cap")
	}
	if passes < 1 {
		t.Fatalf("expected at least one pass, got %d", passes)
	}
	for i, b := range w.Bodies() {
		if !b.Anchored {
			t.Fatalf("body %d at %v should be anchored", i, b.Pos)
		}
	}
}

func chain(w *ecs.World, n int) []*ecs.Body {
	top := w.Tuning.Top + w.Tuning.BallRadius
	bodies := make([]*ecs.Body, n)
	// stored bottom first so each pass only reaches one more link
	for i := n - 1; i >= 0; i-- {
		bodies[i] = place(w, 200, top+float64(i)*30, red, ecs.KindNormal)
	}
	return bodies
}

func TestPropagateSupportFollowsChain(t *testing.T) {
	w := newTestWorld(t)
	links := chain(w, 5)
	loose := place(w, 400, 600, blue, ecs.KindNormal)
	loose.Anchored = true

	passes, capped := PropagateSupport(w)
	if capped {
		t.Fatalf("unexpected cap")
	}
	if passes != 5 {
		t.Fatalf("expected 5 passes for a reversed chain of 5, got %d", passes)
	}
	for i, b := range links {
		if !b.Anchored {
			t.Fatalf("link %d should be anchored", i)
		}
	}
	if loose.Anchored {
		t.Fatalf("a detached body must lose its anchoring")
	}
}

func TestPropagateSupportRespectsPassCap(t *testing.T) {
	w := newTestWorld(t)
	w.Tuning.SupportMaxPasses = 2
	links := chain(w, 5)

	s := NewSupportSystem()
	s.Update(w)
	if !s.Capped || s.Passes != 2 {
		t.Fatalf("expected capped after 2 passes, got %d capped=%v", s.Passes, s.Capped)
	}
	for i, b := range links {
		want := i <= 2
		if b.Anchored != want {
			t.Fatalf("link %d anchored=%v, want %v", i, b.Anchored, want)
		}
	}
}
