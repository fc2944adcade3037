package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bubbleblast/ecs"
)

func TestClampAimTarget(t *testing.T) {
	tu := ecs.DefaultTuning()
	sx, sy := tu.SpawnPoint()
	spawn := cp.Vector{X: sx, Y: sy}
	r := tu.BallRadius

	cases := []struct {
		name    string
		pointer cp.Vector
		check   func(t *testing.T, got cp.Vector)
	}{
		{
			name:    "inside_unchanged",
			pointer: spawn.Add(cp.Vector{X: 30, Y: -40}),
			check: func(t *testing.T, got cp.Vector) {
				if !near(got, spawn.Add(cp.Vector{X: 30, Y: -40})) {
					t.Fatalf("expected pointer unchanged, got %v", got)
				}
			},
		},
		{
			name:    "below_launch_line",
			pointer: spawn.Add(cp.Vector{X: 20, Y: 60}),
			check: func(t *testing.T, got cp.Vector) {
				if got.Y > spawn.Y {
					t.Fatalf("target must not go below the spawn point, got %v", got)
				}
			},
		},
		{
			name:    "too_far",
			pointer: spawn.Add(cp.Vector{X: 0, Y: -600}),
			check: func(t *testing.T, got cp.Vector) {
				if d := got.Distance(spawn); d > tu.MaxAimDistance+1e-9 {
					t.Fatalf("target %v is %.2f from spawn", got, d)
				}
			},
		},
		{
			name:    "outside_left_wall",
			pointer: cp.Vector{X: -500, Y: spawn.Y - 10},
			check: func(t *testing.T, got cp.Vector) {
				if got.X < tu.Left+r {
					t.Fatalf("target %v crosses the left wall", got)
				}
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, ClampAimTarget(tu, spawn, tc.pointer, r))
		})
	}
}

func TestAimPowerAndLaunch(t *testing.T) {
	w := newTestWorld(t)
	w.Tuning.AimSmoothing = 1
	NewSpawner().Spawn(w)
	proj := w.Projectile()
	sx, sy := w.Tuning.SpawnPoint()

	w.Input = ecs.Input{Pointer: cp.Vector{X: sx, Y: sy - 100}}
	a := NewAimSystem()
	a.Update(w)
	if !w.Aiming {
		t.Fatalf("no trigger, still aiming")
	}
	if !near(w.AimDir, cp.Vector{X: 0, Y: -1}) {
		t.Fatalf("expected straight up aim, got %v", w.AimDir)
	}
	if w.Power != w.Tuning.MaxPower {
		t.Fatalf("expected power clamped to %v, got %v", w.Tuning.MaxPower, w.Power)
	}
	if proj.Vel != (cp.Vector{}) {
		t.Fatalf("aiming projectile must not move on its own")
	}

	w.Input = ecs.Input{Pointer: cp.Vector{X: sx, Y: sy - 25}}
	a.Update(w)
	if math.Abs(w.Power-0.5) > 1e-9 {
		t.Fatalf("expected power 0.5, got %v", w.Power)
	}

	w.Input.Trigger = true
	a.Update(w)
	if w.Aiming {
		t.Fatalf("trigger should launch")
	}
	want := cp.Vector{X: 0, Y: -w.Tuning.ShootSpeed * 0.5}
	if !near(proj.Vel, want) {
		t.Fatalf("expected launch velocity %v, got %v", want, proj.Vel)
	}
}

func TestAimAtSpawnUsesMinimumPower(t *testing.T) {
	w := newTestWorld(t)
	NewSpawner().Spawn(w)
	sx, sy := w.Tuning.SpawnPoint()
	w.Input = ecs.Input{Pointer: cp.Vector{X: sx, Y: sy}}

	NewAimSystem().Update(w)
	if w.Power != w.Tuning.MinPower {
		t.Fatalf("expected min power, got %v", w.Power)
	}
	if !near(w.AimDir, cp.Vector{X: 0, Y: -1}) {
		t.Fatalf("expected default aim direction, got %v", w.AimDir)
	}
}
