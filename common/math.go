package common

import (
	"image/color"
	"math"
)

const (
	BaseWidth  = 450
	BaseHeight = 800
)

// Hue returns a fully saturated color for h in turns (1.0 is a full cycle).
func Hue(h float64) color.RGBA {
	h = h - math.Floor(h)
	x := h * 6
	f := x - math.Floor(x)
	q := uint8(255 * (1 - f))
	t := uint8(255 * f)
	switch int(x) % 6 {
	case 0:
		return color.RGBA{R: 255, G: t, A: 255}
	case 1:
		return color.RGBA{R: q, G: 255, A: 255}
	case 2:
		return color.RGBA{G: 255, B: t, A: 255}
	case 3:
		return color.RGBA{G: q, B: 255, A: 255}
	case 4:
		return color.RGBA{R: t, B: 255, A: 255}
	default:
		return color.RGBA{R: 255, B: q, A: 255}
	}
}

// Fade scales the alpha of c by a in [0, 1].
func Fade(c color.RGBA, a float32) color.RGBA {
	a = float32(math.Max(0, math.Min(1, float64(a))))
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
