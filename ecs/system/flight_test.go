package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bubbleblast/ecs"
)

func TestNearestContactPicksClosestOverlap(t *testing.T) {
	w := newTestWorld(t)
	place(w, 200, 175, red, ecs.KindNormal)
	closest := place(w, 215, 200, blue, ecs.KindNormal)
	place(w, 200, 240, green, ecs.KindNormal)
	proj := launch(w, 200, 200, cp.Vector{}, red, ecs.KindNormal)

	if got := NearestContact(w, proj); got != closest {
		t.Fatalf("expected the closest overlapping body")
	}

	proj.Pos = cp.Vector{X: 400, Y: 600}
	if got := NearestContact(w, proj); got != nil {
		t.Fatalf("expected no contact, got body at %v", got.Pos)
	}
}

func TestFlightBondsAtTangency(t *testing.T) {
	w := newTestWorld(t)
	anchor := place(w, 200, 100, red, ecs.KindNormal)
	anchor.Anchored = true
	proj := launch(w, 200, 128, cp.Vector{X: 0, Y: -1}, blue, ecs.KindNormal)
	id := proj.ID

	f := NewFlightSystem(NewSpawner(), NewMatchEngine())
	f.Update(w)

	if !proj.Bonded || w.BondedCount() != 2 {
		t.Fatalf("projectile should have joined the mass")
	}
	if proj.ID != id {
		t.Fatalf("bonding must keep the body identity")
	}
	want := cp.Vector{X: 200, Y: 100 + 2*w.Tuning.BallRadius}
	if !near(proj.Pos, want) {
		t.Fatalf("expected tangent position %v, got %v", want, proj.Pos)
	}
	if !near(proj.Rest, proj.Pos) {
		t.Fatalf("rest position should equal bonding position")
	}
	if proj.Vel != (cp.Vector{}) {
		t.Fatalf("bonded body should start at rest, got %v", proj.Vel)
	}
	if !proj.Anchored {
		t.Fatalf("bonded body inherits its contact's anchoring")
	}
	if anchor.Vel.Y >= 0 {
		t.Fatalf("contact should receive some of the projectile momentum, got %v", anchor.Vel)
	}
	if w.Contacts != 1 {
		t.Fatalf("expected 1 contact, got %d", w.Contacts)
	}

	next := w.Projectile()
	if next == nil || next == proj || !w.Aiming {
		t.Fatalf("a new projectile should be waiting at spawn")
	}
	sx, sy := w.Tuning.SpawnPoint()
	if !near(next.Pos, cp.Vector{X: sx, Y: sy}) {
		t.Fatalf("new projectile should appear at spawn, got %v", next.Pos)
	}
}

func TestFlightBondTriggersMatch(t *testing.T) {
	w := newTestWorld(t)
	top := w.Tuning.Top + w.Tuning.BallRadius
	for i := 0; i < 4; i++ {
		place(w, 100+float64(i)*30, top, red, ecs.KindNormal)
	}
	loner := place(w, 400, 500, blue, ecs.KindNormal)
	launch(w, 219, top, cp.Vector{X: -1}, red, ecs.KindNormal)

	NewFlightSystem(NewSpawner(), NewMatchEngine()).Update(w)

	if w.Score != 125 {
		t.Fatalf("expected a 5 group worth 125, got %d", w.Score)
	}
	if w.BondedCount() != 1 || !loner.Active {
		t.Fatalf("only the isolated body should remain, have %d", w.BondedCount())
	}
}

func TestFlightBombDetonatesOnContact(t *testing.T) {
	w := newTestWorld(t)
	place(w, 200, 100, red, ecs.KindNormal)
	far := place(w, 200, 400, red, ecs.KindNormal)
	bomb := launch(w, 200, 125, cp.Vector{}, blue, ecs.KindBomb)

	NewFlightSystem(NewSpawner(), NewMatchEngine()).Update(w)

	if bomb.Bonded || bomb.Active {
		t.Fatalf("bomb must be discarded")
	}
	if w.BondedCount() != 1 || !far.Active {
		t.Fatalf("only bodies inside the blast should go")
	}
	if w.Score != 20 {
		t.Fatalf("expected 20 points, got %d", w.Score)
	}
}

func TestFlightReflectsOffWalls(t *testing.T) {
	w := newTestWorld(t)
	tu := w.Tuning
	proj := launch(w, tu.Left+tu.BallRadius+1, 400, cp.Vector{X: -10, Y: 0}, red, ecs.KindNormal)

	NewFlightSystem(nil, nil).Update(w)

	if proj.Pos.X != tu.Left+tu.BallRadius {
		t.Fatalf("expected clamp to the left wall, got %v", proj.Pos.X)
	}
	if proj.Vel.X <= 0 {
		t.Fatalf("expected reflected velocity, got %v", proj.Vel)
	}
}

func TestFlightRespawnsStalledProjectile(t *testing.T) {
	w := newTestWorld(t)
	w.Tuning.StallFrames = 3
	place(w, 60, 100, red, ecs.KindNormal)
	proj := launch(w, 300, 500, cp.Vector{}, red, ecs.KindNormal)

	f := NewFlightSystem(NewSpawner(), NewMatchEngine())
	for i := 0; i < 3; i++ {
		f.Update(w)
	}
	if w.Projectile() == proj || !w.Aiming {
		t.Fatalf("stalled projectile should be replaced")
	}
	if w.BondedCount() != 1 {
		t.Fatalf("a stalled projectile never joins the mass")
	}
}

func TestFlightNeverLeavesPlayfield(t *testing.T) {
	w := newTestWorld(t)
	bb := w.Tuning.Bounds()
	proj := launch(w, 225, 600, cp.Vector{X: 30, Y: -40}, red, ecs.KindNormal)

	f := NewFlightSystem(nil, nil)
	for i := 0; i < 120; i++ {
		f.Update(w)
		if w.Projectile() != proj {
			t.Fatalf("frame %d: a bouncing shot should stay in flight", i)
		}
		if !bb.ContainsVect(proj.Pos) {
			t.Fatalf("frame %d: projectile escaped to %v", i, proj.Pos)
		}
	}
}
