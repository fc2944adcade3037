package prefabs

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/milk9111/bubbleblast/ecs"
	"gopkg.in/yaml.v3"
)

const (
	TuningFile  = "tuning.yaml"
	LevelsFile  = "levels.yaml"
	PaletteFile = "palette.yaml"
)

var ErrNoLevels = errors.New("prefabs: level table is empty")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadTuning reads tuning.yaml over the defaults, so omitted keys keep their
// default values.
func LoadTuning() (ecs.Tuning, error) {
	data, err := Load(TuningFile)
	if err != nil {
		return ecs.DefaultTuning(), fmt.Errorf("prefabs: load %s: %w", TuningFile, err)
	}
	return ParseTuning(data)
}

func ParseTuning(data []byte) (ecs.Tuning, error) {
	t := ecs.DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return ecs.DefaultTuning(), fmt.Errorf("prefabs: unmarshal %s: %w", TuningFile, err)
	}
	return t.Sanitize(), nil
}

type SpecialsSpec struct {
	Bomb      float64 `yaml:"bomb"`
	Rainbow   float64 `yaml:"rainbow"`
	Universal float64 `yaml:"universal"`
}

type LevelSpec struct {
	Name        string       `yaml:"name"`
	TargetScore int          `yaml:"target_score"`
	Population  int          `yaml:"population"`
	MaxBodies   int          `yaml:"max_bodies"`
	Specials    SpecialsSpec `yaml:"specials"`
	Script      string       `yaml:"script"`
}

type LevelTableSpec struct {
	Levels []LevelSpec `yaml:"levels"`
}

// Level converts the spec row, clamping probabilities into [0, 1].
func (s LevelSpec) Level() ecs.Level {
	return ecs.Level{
		Name:            strings.TrimSpace(s.Name),
		TargetScore:     max(s.TargetScore, 0),
		Population:      max(s.Population, 0),
		MaxBodies:       max(s.MaxBodies, 0),
		BombChance:      probability(s.Specials.Bomb),
		RainbowChance:   probability(s.Specials.Rainbow),
		UniversalChance: probability(s.Specials.Universal),
		Script:          strings.TrimSpace(s.Script),
	}
}

func LoadLevels() ([]ecs.Level, error) {
	data, err := Load(LevelsFile)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", LevelsFile, err)
	}
	return ParseLevels(data)
}

func ParseLevels(data []byte) ([]ecs.Level, error) {
	var spec LevelTableSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", LevelsFile, err)
	}
	if len(spec.Levels) == 0 {
		return nil, ErrNoLevels
	}
	levels := make([]ecs.Level, 0, len(spec.Levels))
	for i, row := range spec.Levels {
		l := row.Level()
		if l.Name == "" {
			l.Name = fmt.Sprintf("level %d", i+1)
		}
		levels = append(levels, l)
	}
	return levels, nil
}

type PaletteSpec struct {
	Colors []string `yaml:"colors"`
}

func LoadPalette() (PaletteSpec, error) {
	spec, err := LoadSpec[PaletteSpec](PaletteFile)
	if err != nil {
		return PaletteSpec{}, err
	}
	if len(spec.Colors) == 0 {
		return PaletteSpec{}, fmt.Errorf("prefabs: %s has no colors", PaletteFile)
	}
	return spec, nil
}

func probability(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	return math.Min(p, 1)
}
