package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/bubbleblast/common"
	"github.com/milk9111/bubbleblast/ecs"
	"golang.org/x/image/colornames"
)

const (
	rainbowCycleRate = 0.01
	aimLineBase      = 40.0
	aimLinePerPower  = 60.0
	powerBarWidth    = 100
	powerBarHeight   = 8
)

var (
	backgroundColor = color.RGBA{R: 0x14, G: 0x14, B: 0x1e, A: 0xff}
	dangerColor     = color.RGBA{R: 0xc8, G: 0x20, B: 0x20, A: 0x90}
)

func drawWorld(screen *ebiten.Image, snap ecs.Snapshot, palette Palette, debug bool) {
	screen.Fill(backgroundColor)

	bb := snap.Bounds
	vector.StrokeRect(screen, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), 2, colornames.Darkgray, false)
	if snap.DangerLine > 0 {
		y := float32(snap.DangerLine)
		vector.StrokeLine(screen, float32(bb.L), y, float32(bb.R), y, 1, dangerColor, false)
	}

	for _, b := range snap.Bodies {
		drawBody(screen, b, palette, snap.Frame)
		vector.StrokeCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), 1, colornames.White, true)
		if debug && b.Anchored {
			vector.FillCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), 2, colornames.Lime, false)
		}
	}

	if p := snap.Projectile; p != nil {
		if snap.Aiming {
			drawAim(screen, snap)
		}
		drawBody(screen, *p, palette, snap.Frame)
		vector.StrokeCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), 2, colornames.Yellow, true)
	}
}

func drawBody(screen *ebiten.Image, b ecs.BodyView, palette Palette, frame int) {
	x, y, r := float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius)
	switch b.Kind {
	case ecs.KindUniversal:
		vector.FillCircle(screen, x, y, r, colornames.Whitesmoke, true)
		vector.StrokeCircle(screen, x, y, r*0.55, 2, colornames.Gold, true)
	case ecs.KindBomb:
		vector.FillCircle(screen, x, y, r, colornames.Black, true)
		vector.StrokeCircle(screen, x, y, r-1, 2, colornames.Red, true)
		vector.StrokeLine(screen, x, y-r, x+r*0.4, y-r*1.4, 2, colornames.Tan, true)
		if frame/8%2 == 0 {
			vector.FillCircle(screen, x+r*0.4, y-r*1.4, 2.5, colornames.Orange, true)
		}
	case ecs.KindRainbow:
		// The hue cycles for show; the match color is the inner dot.
		hue := float64(frame)*rainbowCycleRate + float64(b.ID.Index())*0.13
		vector.FillCircle(screen, x, y, r, common.Hue(hue), true)
		vector.FillCircle(screen, x, y, r*0.4, palette.Color(b.Color), true)
	default:
		vector.FillCircle(screen, x, y, r, palette.Color(b.Color), true)
	}
}

func drawAim(screen *ebiten.Image, snap ecs.Snapshot) {
	from := snap.SpawnPoint
	to := from.Add(snap.AimDir.Mult(aimLineBase + aimLinePerPower*snap.Power))
	vector.StrokeLine(screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), 2, colornames.Lightgrey, true)

	bx := float32(snap.Bounds.L) + 10
	by := float32(snap.Bounds.T) + 20
	vector.FillRect(screen, bx, by, powerBarWidth, powerBarHeight, colornames.Dimgray, false)
	fill := float32(snap.Power/powerBarScale(snap)) * powerBarWidth
	vector.FillRect(screen, bx, by, fill, powerBarHeight, colornames.Orange, false)
}

// powerBarScale keeps the bar within its frame for any tuned max power.
func powerBarScale(snap ecs.Snapshot) float64 {
	if snap.MaxPower <= 0 {
		return 1
	}
	return snap.MaxPower
}

func drawHUD(screen *ebiten.Image, snap ecs.Snapshot, debug bool) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 10, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Balls: %d/%d", len(snap.Bodies), snap.MaxBodies), 10, 24)

	var level string
	if snap.Mode == ecs.ModeLevels {
		level = fmt.Sprintf("Level %d/%d: %s  target %d", snap.LevelIndex+1, snap.LevelCount, snap.Level.Name, snap.Level.TargetScore)
	} else {
		level = "Endless"
	}
	ebitenutil.DebugPrintAt(screen, level, 10, 40)

	if debug {
		anchored := 0
		for _, b := range snap.Bodies {
			if b.Anchored {
				anchored++
			}
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f  Frame: %d  Anchored: %d", ebiten.ActualFPS(), snap.Frame, anchored), 200, 8)
	}
}
