package ecs

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
)

// Color is an index into the palette supplied by the shell.
type Color uint8

// Kind tags the special behaviour of a body.
type Kind uint8

const (
	KindNormal Kind = iota
	KindUniversal
	KindBomb
	KindRainbow
)

// kindTraits is the behaviour table consulted by matching and removal.
type kindTraits struct {
	name     string
	wildcard bool // matches and is matched by any color
	bondable bool // joins the mass on contact
	seedsAll bool // a size-qualified group it seeds clears its color board-wide
	bypass   bool // makes a group eligible regardless of size
}

var kinds = [...]kindTraits{
	KindNormal:    {name: "normal", bondable: true},
	KindUniversal: {name: "universal", wildcard: true, bondable: true, bypass: true},
	KindBomb:      {name: "bomb"},
	KindRainbow:   {name: "rainbow", wildcard: true, bondable: true, seedsAll: true},
}

func (k Kind) traits() kindTraits {
	if int(k) < len(kinds) {
		return kinds[k]
	}
	return kinds[KindNormal]
}

func (k Kind) String() string {
	return k.traits().name
}

// Wildcard reports whether the kind matches any color in both directions.
func (k Kind) Wildcard() bool { return k.traits().wildcard }

// Bondable reports whether a projectile of this kind sticks to the mass.
func (k Kind) Bondable() bool { return k.traits().bondable }

// ClearsColor reports whether a size-qualified group seeded by this kind
// triggers the board-wide color clear instead of local removal.
func (k Kind) ClearsColor() bool { return k.traits().seedsAll }

// BypassesSize reports whether a group containing this kind is removable
// regardless of its size.
func (k Kind) BypassesSize() bool { return k.traits().bypass }

// ParseKind maps a spec or script name to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return KindNormal, nil
	}
	for k, t := range kinds {
		if t.name == name {
			return Kind(k), nil
		}
	}
	return KindNormal, fmt.Errorf("ecs: unknown body kind %q", s)
}

// Body is a single ball, either bonded into the mass or the free projectile.
type Body struct {
	ID Entity

	Pos  cp.Vector
	Vel  cp.Vector
	Rest cp.Vector

	Radius float64
	Color  Color
	Kind   Kind

	Active   bool
	Bonded   bool
	Anchored bool

	Stiffness  float64
	Damping    float64
	BombRadius float64
}

// NewBody builds an active, bonded body resting at pos using the tuning's
// per-body coefficients.
func NewBody(pos cp.Vector, color Color, kind Kind, t Tuning) *Body {
	b := &Body{
		Pos:       pos,
		Rest:      pos,
		Radius:    t.BallRadius,
		Color:     color,
		Kind:      kind,
		Active:    true,
		Bonded:    true,
		Stiffness: t.Stiffness,
		Damping:   t.BodyDamping,
	}
	if kind == KindBomb {
		b.BombRadius = t.BombRadius
	}
	return b
}

// Matches reports whether two bodies may belong to the same group.
func Matches(a, b *Body) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Kind.Wildcard() || b.Kind.Wildcard() {
		return true
	}
	return a.Color == b.Color
}

// Speed returns the magnitude of the body's velocity.
func (b *Body) Speed() float64 {
	if b == nil {
		return 0
	}
	return b.Vel.Length()
}
