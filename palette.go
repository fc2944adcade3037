package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/milk9111/bubbleblast/ecs"
	"golang.org/x/image/colornames"
)

var fallbackBodyColor = colornames.Gray

// Palette maps body color indices to screen colors.
type Palette []color.RGBA

func NewPalette(names []string) (Palette, error) {
	p := make(Palette, 0, len(names))
	for _, name := range names {
		key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
		c, ok := colornames.Map[key]
		if !ok {
			return nil, fmt.Errorf("palette: unknown color %q", name)
		}
		p = append(p, c)
	}
	return p, nil
}

func (p Palette) Color(c ecs.Color) color.RGBA {
	if len(p) == 0 {
		return fallbackBodyColor
	}
	return p[int(c)%len(p)]
}
