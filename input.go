package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bubbleblast/ecs"
)

const stickDeadzone = 0.2

// Controls is the raw device state sampled once per frame.
type Controls struct {
	Pointer cp.Vector
	Shoot   bool
	Restart bool
	Pause   bool
	Debug   bool
}

// SampleControls reads mouse, keyboard and the first gamepad. A deflected
// right stick aims relative to spawn and overrides the cursor.
func SampleControls(spawn cp.Vector, reach float64) Controls {
	mx, my := ebiten.CursorPosition()
	c := Controls{
		Pointer: cp.Vector{X: float64(mx), Y: float64(my)},
		Shoot:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Debug:   inpututil.IsKeyJustPressed(ebiten.KeyF3),
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		c.Shoot = c.Shoot || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		c.Restart = c.Restart || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterLeft)
		c.Pause = c.Pause || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)

		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			c.Pointer = spawn.Add(cp.Vector{X: rx, Y: ry}.Mult(reach))
		}
	}
	return c
}

func (c Controls) Input() ecs.Input {
	return ecs.Input{Pointer: c.Pointer, Trigger: c.Shoot, Restart: c.Restart}
}
