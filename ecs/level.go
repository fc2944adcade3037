package ecs

import (
	"fmt"
	"strings"
)

// Mode selects how the session ends.
type Mode uint8

const (
	ModeEndless Mode = iota
	ModeLevels
)

func (m Mode) String() string {
	if m == ModeLevels {
		return "levels"
	}
	return "endless"
}

// ParseMode accepts "endless" or "levels".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "endless":
		return ModeEndless, nil
	case "levels", "level":
		return ModeLevels, nil
	}
	return ModeEndless, fmt.Errorf("ecs: unknown mode %q", s)
}

// Level is one row of the level table.
type Level struct {
	Name            string
	TargetScore     int
	Population      int
	BombChance      float64
	RainbowChance   float64
	UniversalChance float64
	MaxBodies       int
	Script          string
}

// State is the terminal state machine exposed to the shell.
type State uint8

const (
	StatePlaying State = iota
	StateLevelComplete
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateLevelComplete:
		return "level_complete"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "playing"
	}
}

// Terminal reports whether the simulation stops stepping in this state.
func (s State) Terminal() bool {
	return s != StatePlaying
}
