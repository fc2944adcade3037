package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/milk9111/bubbleblast/ecs"
)

// NewEndUI builds the overlay shown once the round reaches a terminal state.
func NewEndUI(g *Game, snap ecs.Snapshot) *ebitenui.UI {
	var title, action string
	switch snap.State {
	case ecs.StateLevelComplete:
		title = fmt.Sprintf("Level %d Complete", snap.LevelIndex)
		action = "Next Level"
	case ecs.StateWon:
		title = "You Win!"
		if snap.Mode == ecs.ModeLevels {
			title = "All Levels Cleared!"
		}
		action = "Play Again"
	default:
		title = "Game Over"
		action = "Restart"
	}

	lines := []string{fmt.Sprintf("Score: %d", snap.Score)}
	if g.status != "" {
		lines = append(lines, g.status)
	}

	return newOverlay(title, lines, []overlayButton{
		{label: action, onClick: func() { g.restartRequested = true }},
		{label: "Copy score", onClick: g.copyScore},
	})
}
