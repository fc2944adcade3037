package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/bubbleblast/ecs"
)

// spawnScript is a compiled tengo program that picks the next projectile.
//
// Inputs: colors (int), present ([]int), bomb_chance, rainbow_chance,
// universal_chance (float), frame (int).
// Outputs: kind ("normal", "universal", "bomb", "rainbow") and color (int).
type spawnScript struct {
	compiled *tengo.Compiled
}

func compileSpawnScript(src []byte) (*spawnScript, error) {
	script := tengo.NewScript(src)
	_ = script.Add("colors", 0)
	_ = script.Add("present", []any{})
	_ = script.Add("bomb_chance", 0.0)
	_ = script.Add("rainbow_chance", 0.0)
	_ = script.Add("universal_chance", 0.0)
	_ = script.Add("frame", 0)
	_ = script.Add("kind", "normal")
	_ = script.Add("color", 0)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	return &spawnScript{compiled: compiled}, nil
}

func (s *spawnScript) run(w *ecs.World, level ecs.Level, present []ecs.Color) (ecs.Kind, ecs.Color, error) {
	if s == nil || s.compiled == nil {
		return ecs.KindNormal, 0, fmt.Errorf("nil spawn script")
	}
	presentArg := make([]any, 0, len(present))
	for _, c := range present {
		presentArg = append(presentArg, int(c))
	}

	inputs := map[string]any{
		"colors":           w.Tuning.Colors,
		"present":          presentArg,
		"bomb_chance":      level.BombChance,
		"rainbow_chance":   level.RainbowChance,
		"universal_chance": level.UniversalChance,
		"frame":            w.Frame,
		"kind":             "normal",
		"color":            0,
	}
	for name, v := range inputs {
		if err := s.compiled.Set(name, v); err != nil {
			return ecs.KindNormal, 0, err
		}
	}
	if err := s.compiled.Run(); err != nil {
		return ecs.KindNormal, 0, err
	}

	kind, err := ecs.ParseKind(s.compiled.Get("kind").String())
	if err != nil {
		return ecs.KindNormal, 0, err
	}
	color := s.compiled.Get("color").Int()
	if color < 0 || color >= w.Tuning.Colors {
		return ecs.KindNormal, 0, fmt.Errorf("color %d outside palette of %d", color, w.Tuning.Colors)
	}
	return kind, ecs.Color(color), nil
}
