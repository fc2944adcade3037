package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bubbleblast/ecs"
)

func TestAttractionSystem(t *testing.T) {
	cases := []struct {
		name     string
		anchor   *cp.Vector
		pos      cp.Vector
		vel      cp.Vector
		expected cp.Vector
	}{
		{
			name:     "pulls_toward_anchored_centroid",
			anchor:   &cp.Vector{X: 200, Y: 100},
			pos:      cp.Vector{X: 200, Y: 150},
			expected: cp.Vector{X: 0, Y: -0.025 - 0.05},
		},
		{
			name:     "boosts_far_pull",
			anchor:   &cp.Vector{X: 200, Y: 100},
			pos:      cp.Vector{X: 200, Y: 300},
			expected: cp.Vector{X: 0, Y: -0.2 - 0.05},
		},
		{
			name:     "falls_back_near_bottom",
			pos:      cp.Vector{X: 225, Y: 200},
			expected: cp.Vector{X: 0, Y: 0.45 - 0.05},
		},
		{
			name:     "caps_cluster_speed",
			anchor:   &cp.Vector{X: 100, Y: 200},
			pos:      cp.Vector{X: 300, Y: 200},
			vel:      cp.Vector{X: 10},
			expected: cp.Vector{X: 3, Y: -0.05},
		},
		{
			name:     "caps_rise_and_skips_zero_distance",
			anchor:   &cp.Vector{X: 200, Y: 100},
			pos:      cp.Vector{X: 200, Y: 100},
			vel:      cp.Vector{Y: -1.49},
			expected: cp.Vector{Y: -1.5},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			var anchored *ecs.Body
			if tc.anchor != nil {
				anchored = place(w, tc.anchor.X, tc.anchor.Y, red, ecs.KindNormal)
				anchored.Anchored = true
			}
			b := place(w, tc.pos.X, tc.pos.Y, blue, ecs.KindNormal)
			b.Vel = tc.vel

			NewAttractionSystem().Update(w)

			if !near(b.Vel, tc.expected) {
				t.Fatalf("expected velocity %v, got %v", tc.expected, b.Vel)
			}
			if anchored != nil && anchored.Vel != (cp.Vector{}) {
				t.Fatalf("anchored bodies should not be pulled, got %v", anchored.Vel)
			}
		})
	}
}

func TestAttractionPullsSlowProjectileWeakly(t *testing.T) {
	w := newTestWorld(t)
	anchored := place(w, 200, 100, red, ecs.KindNormal)
	anchored.Anchored = true
	proj := launch(w, 200, 150, cp.Vector{}, blue, ecs.KindNormal)

	NewAttractionSystem().Update(w)
	if want := (cp.Vector{Y: -0.025 * 0.3}); !near(proj.Vel, want) {
		t.Fatalf("expected weak pull %v, got %v", want, proj.Vel)
	}

	proj.Vel = cp.Vector{}
	w.Aiming = true
	NewAttractionSystem().Update(w)
	if proj.Vel != (cp.Vector{}) {
		t.Fatalf("an aimed projectile should not be pulled, got %v", proj.Vel)
	}
}

func TestSpringSystem(t *testing.T) {
	cases := []struct {
		name     string
		gap      float64
		expected float64
	}{
		{"stretched", 32, 0.02 * 2},
		{"loose", 36, 0.02 * 6 * 0.3},
		{"compressed", 28, -0.02 * 2},
		{"touching", 30, 0},
		{"out_of_reach", 40, 0},
		{"coincident", 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			a := place(w, 100, 200, red, ecs.KindNormal)
			b := place(w, 100+tc.gap, 200, red, ecs.KindNormal)

			NewSpringSystem().Update(w)

			if !near(a.Vel, cp.Vector{X: tc.expected}) {
				t.Fatalf("expected %v on the left body, got %v", tc.expected, a.Vel)
			}
			if !near(b.Vel, cp.Vector{X: -tc.expected}) {
				t.Fatalf("expected %v on the right body, got %v", -tc.expected, b.Vel)
			}
		})
	}
}

func TestSpringRestoresRestPosition(t *testing.T) {
	w := newTestWorld(t)
	b := place(w, 100, 200, red, ecs.KindNormal)
	b.Rest = cp.Vector{X: 100, Y: 210}

	NewSpringSystem().Update(w)
	if want := (cp.Vector{Y: 10 * w.Tuning.RestForce}); !near(b.Vel, want) {
		t.Fatalf("expected %v toward rest, got %v", want, b.Vel)
	}
}

func TestSeparationSystem(t *testing.T) {
	cases := []struct {
		name      string
		gap       float64
		wantLeft  float64
		wantRight float64
	}{
		{"overlapping", 20, 97.5, 122.5},
		{"touching", 30, 100, 130},
		{"coincident", 0, 100, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			a := place(w, 100, 200, red, ecs.KindNormal)
			b := place(w, 100+tc.gap, 200, red, ecs.KindNormal)

			NewSeparationSystem().Update(w)

			if !near(a.Pos, cp.Vector{X: tc.wantLeft, Y: 200}) || !near(b.Pos, cp.Vector{X: tc.wantRight, Y: 200}) {
				t.Fatalf("expected x %v and %v, got %v and %v", tc.wantLeft, tc.wantRight, a.Pos, b.Pos)
			}
		})
	}
}

func TestIntegrateSystem(t *testing.T) {
	cases := []struct {
		name         string
		pos          cp.Vector
		vel          cp.Vector
		wantPos      cp.Vector
		wantAnchored bool
	}{
		{"anchors_on_top_contact", cp.Vector{X: 200, Y: 77}, cp.Vector{Y: -5}, cp.Vector{X: 200, Y: 75}, true},
		{"ceiling_holds_against_downward_pull", cp.Vector{X: 200, Y: 75}, cp.Vector{X: 0.5, Y: 2}, cp.Vector{X: 200.45, Y: 75}, true},
		{"moves_free_body", cp.Vector{X: 200, Y: 300}, cp.Vector{Y: 2}, cp.Vector{X: 200, Y: 301.8}, false},
		{"snaps_tiny_velocity", cp.Vector{X: 200, Y: 300}, cp.Vector{X: 0.005}, cp.Vector{X: 200, Y: 300}, false},
		{"caps_speed", cp.Vector{X: 200, Y: 300}, cp.Vector{X: 20}, cp.Vector{X: 208, Y: 300}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			b := place(w, tc.pos.X, tc.pos.Y, red, ecs.KindNormal)
			b.Vel = tc.vel

			NewIntegrateSystem().Update(w)

			if !near(b.Pos, tc.wantPos) {
				t.Fatalf("expected position %v, got %v", tc.wantPos, b.Pos)
			}
			if b.Anchored != tc.wantAnchored {
				t.Fatalf("expected anchored=%v", tc.wantAnchored)
			}
		})
	}
}

func TestIntegrateAndSupportAgreeWithBoundsMargin(t *testing.T) {
	w := newTestWorld(t)
	w.Tuning.BoundsMargin = 3
	w.Tuning = w.Tuning.Sanitize()
	b := place(w, 200, w.Tuning.Top+w.Tuning.BallRadius+3, red, ecs.KindNormal)

	for i := 0; i < 5; i++ {
		NewIntegrateSystem().Update(w)
		if !b.Anchored {
			t.Fatalf("frame %d: clamped body should be anchored by integration", i)
		}
		PropagateSupport(w)
		if !b.Anchored {
			t.Fatalf("frame %d: support dropped a body integration anchored", i)
		}
	}
}

func TestPullTowardMass(t *testing.T) {
	cases := []struct {
		name     string
		body     cp.Vector
		expected cp.Vector
	}{
		{"in_range", cp.Vector{X: 200, Y: 100}, cp.Vector{Y: -0.02}},
		{"out_of_range", cp.Vector{X: 200, Y: 80}, cp.Vector{}},
		{"coincident", cp.Vector{X: 200, Y: 150}, cp.Vector{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			place(w, tc.body.X, tc.body.Y, red, ecs.KindNormal)
			proj := launch(w, 200, 150, cp.Vector{}, blue, ecs.KindNormal)

			pullTowardMass(w, proj)
			if !near(proj.Vel, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, proj.Vel)
			}
		})
	}
}

func TestFlightPullsOnlySlowShots(t *testing.T) {
	cases := []struct {
		name   string
		vel    cp.Vector
		pulled bool
	}{
		{"fast", cp.Vector{Y: -5}, false},
		{"slow", cp.Vector{Y: -1}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			place(w, 240, 370, red, ecs.KindNormal)
			proj := launch(w, 200, 400, tc.vel, blue, ecs.KindNormal)

			NewFlightSystem(nil, nil).Update(w)

			if w.Projectile() != proj {
				t.Fatalf("projectile should still be in flight")
			}
			if pulled := proj.Vel.X > 0; pulled != tc.pulled {
				t.Fatalf("expected pulled=%v, velocity %v", tc.pulled, proj.Vel)
			}
		})
	}
}
