package main

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bubbleblast/common"
	"github.com/milk9111/bubbleblast/ecs"
)

const (
	particleGravity  = 0.1
	particleMinLife  = 30
	particleLifeSpan = 30
	particleMaxSpeed = 4.0
	blastSpeedScale  = 1.8
)

type particle struct {
	pos     cp.Vector
	vel     cp.Vector
	life    int
	maxLife int
	size    float32
	col     color.RGBA
}

// Particles is purely decorative: explosion events become short-lived
// sparks that fall under a light gravity.
type Particles struct {
	items []particle
	rng   *rand.Rand
}

func NewParticles(rng *rand.Rand) *Particles {
	return &Particles{rng: rng}
}

func (p *Particles) Emit(ev ecs.Explosion, col color.RGBA) {
	if p == nil {
		return
	}
	speed := particleMaxSpeed
	if ev.Kind == ecs.KindBomb {
		speed *= blastSpeedScale
	}
	for i := 0; i < ev.Particles; i++ {
		angle := p.rng.Float64() * 2 * math.Pi
		mag := (0.3 + 0.7*p.rng.Float64()) * speed
		life := particleMinLife + p.rng.Intn(particleLifeSpan)
		p.items = append(p.items, particle{
			pos:     ev.Pos,
			vel:     cp.Vector{X: math.Cos(angle) * mag, Y: math.Sin(angle) * mag},
			life:    life,
			maxLife: life,
			size:    2 + 2*float32(p.rng.Float64()),
			col:     col,
		})
	}
}

func (p *Particles) Update() {
	if p == nil {
		return
	}
	live := p.items[:0]
	for _, it := range p.items {
		it.life--
		if it.life <= 0 {
			continue
		}
		it.vel.Y += particleGravity
		it.pos = it.pos.Add(it.vel)
		live = append(live, it)
	}
	p.items = live
}

func (p *Particles) Clear() {
	if p == nil {
		return
	}
	p.items = p.items[:0]
}

func (p *Particles) Draw(screen *ebiten.Image) {
	if p == nil || screen == nil {
		return
	}
	for _, it := range p.items {
		alpha := float32(it.life) / float32(it.maxLife)
		vector.FillCircle(screen, float32(it.pos.X), float32(it.pos.Y), it.size, common.Fade(it.col, alpha), true)
	}
}
