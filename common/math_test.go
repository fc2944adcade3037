package common

import (
	"image/color"
	"testing"
)

func TestHueWrapsAndHitsPrimaries(t *testing.T) {
	cases := []struct {
		h    float64
		want color.RGBA
	}{
		{0, color.RGBA{R: 255, A: 255}},
		{1, color.RGBA{R: 255, A: 255}},
		{0.5, color.RGBA{G: 255, B: 255, A: 255}},
		{-0.5, color.RGBA{G: 255, B: 255, A: 255}},
	}
	for _, tc := range cases {
		got := Hue(tc.h)
		if got != tc.want {
			t.Errorf("Hue(%v) = %v, want %v", tc.h, got, tc.want)
		}
	}
}

func TestFadePremultiplies(t *testing.T) {
	got := Fade(color.RGBA{R: 200, G: 100, B: 50, A: 255}, 0.5)
	if got.A != 127 || got.R != 100 {
		t.Fatalf("unexpected fade result %v", got)
	}
}
