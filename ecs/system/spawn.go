package system

import (
	"log"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bubbleblast/ecs"
	"github.com/milk9111/bubbleblast/prefabs"
)

// Spawner creates the next projectile at the spawn point.
type Spawner struct {
	// LoadScript resolves a level's spawn script. Defaults to prefabs.LoadScript.
	LoadScript func(name string) ([]byte, error)

	scripts map[string]*spawnScript
	broken  map[string]bool
}

func NewSpawner() *Spawner {
	return &Spawner{
		LoadScript: prefabs.LoadScript,
		scripts:    map[string]*spawnScript{},
		broken:     map[string]bool{},
	}
}

// Forget drops cached scripts so the next spawn recompiles them.
func (s *Spawner) Forget() {
	if s == nil {
		return
	}
	s.scripts = map[string]*spawnScript{}
	s.broken = map[string]bool{}
}

// Spawn fills the projectile slot and puts the world back into aiming.
func (s *Spawner) Spawn(w *ecs.World) *ecs.Body {
	if w == nil {
		return nil
	}
	kind, color := s.choose(w, w.Level())
	x, y := w.Tuning.SpawnPoint()
	b := ecs.NewBody(cp.Vector{X: x, Y: y}, color, kind, w.Tuning)
	w.SetProjectile(b)
	w.Aiming = true
	w.AimDir = cp.Vector{X: 0, Y: -1}
	w.Power = w.Tuning.MinPower
	return b
}

func (s *Spawner) choose(w *ecs.World, level ecs.Level) (ecs.Kind, ecs.Color) {
	present := presentColors(w)
	if level.Script != "" {
		if kind, color, ok := s.fromScript(w, level, present); ok {
			return kind, color
		}
	}

	kind := ecs.KindNormal
	switch roll := w.Rand.Float64(); {
	case roll < level.BombChance:
		kind = ecs.KindBomb
	case roll < level.BombChance+level.RainbowChance:
		kind = ecs.KindRainbow
	case roll < level.BombChance+level.RainbowChance+level.UniversalChance:
		kind = ecs.KindUniversal
	}

	if len(present) > 0 {
		return kind, present[w.Rand.Intn(len(present))]
	}
	return kind, ecs.Color(w.Rand.Intn(w.Tuning.Colors))
}

func (s *Spawner) fromScript(w *ecs.World, level ecs.Level, present []ecs.Color) (ecs.Kind, ecs.Color, bool) {
	if s == nil || s.broken[level.Script] {
		return ecs.KindNormal, 0, false
	}
	rt, ok := s.scripts[level.Script]
	if !ok {
		src, err := s.LoadScript(level.Script)
		if err == nil {
			rt, err = compileSpawnScript(src)
		}
		if err != nil {
			log.Printf("[spawn] script %s disabled: %v", level.Script, err)
			s.broken[level.Script] = true
			return ecs.KindNormal, 0, false
		}
		s.scripts[level.Script] = rt
	}

	kind, color, err := rt.run(w, level, present)
	if err != nil {
		log.Printf("[spawn] script %s disabled: %v", level.Script, err)
		s.broken[level.Script] = true
		delete(s.scripts, level.Script)
		return ecs.KindNormal, 0, false
	}
	return kind, color, true
}

// presentColors lists the distinct colors still in the mass, ascending.
func presentColors(w *ecs.World) []ecs.Color {
	seen := map[ecs.Color]bool{}
	for _, b := range w.Bodies() {
		if b.Active && b.Bonded && b.Kind == ecs.KindNormal {
			seen[b.Color] = true
		}
	}
	out := make([]ecs.Color, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
