package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bubbleblast/ecs"
)

const (
	groupBasePoints    = 15
	groupFourBonus     = 25
	universalBonus     = 50
	rainbowPointsEach  = 25
	bombPointsEach     = 20
	bonusTierFive      = 5
	bonusTierSeven     = 7
	bonusTierTen       = 10
	bonusPointsFive    = 10
	bonusPointsSeven   = 20
	bonusPointsTen     = 30
	exactGroupFourSize = 4
)

// MatchResult summarises one Resolve or Detonate call.
type MatchResult struct {
	Groups  int
	Removed int
	Points  int
	Rainbow bool
}

// MatchEngine groups same-color neighbours by flood fill and removes the
// groups that qualify.
type MatchEngine struct {
	visited []bool
	stack   []int
	group   []int
}

func NewMatchEngine() *MatchEngine {
	return &MatchEngine{}
}

// GroupScore returns the points for removing a group of the given size.
func GroupScore(size int, universal bool) int {
	points := size * groupBasePoints
	if size >= bonusTierFive {
		points += size * bonusPointsFive
	}
	if size >= bonusTierSeven {
		points += size * bonusPointsSeven
	}
	if size >= bonusTierTen {
		points += size * bonusPointsTen
	}
	if size == exactGroupFourSize {
		points += groupFourBonus
	}
	if universal {
		points += universalBonus
	}
	return points
}

// Resolve runs matching after trigger joined the mass. Groups are searched
// starting from trigger, then in store order.
func (m *MatchEngine) Resolve(w *ecs.World, trigger *ecs.Body) MatchResult {
	var res MatchResult
	if m == nil || w == nil {
		return res
	}
	t := w.Tuning
	bodies := w.Bodies()
	n := len(bodies)
	m.reset(n)

	order := make([]int, 0, n+1)
	for i, b := range bodies {
		if b == trigger {
			order = append(order, i)
			break
		}
	}
	for i := 0; i < n; i++ {
		order = append(order, i)
	}

	for _, seed := range order {
		b := bodies[seed]
		if m.visited[seed] || !b.Active || !b.Bonded {
			continue
		}
		group := m.flood(bodies, seed, t.MatchNeighborFactor)

		universal := false
		for _, idx := range group {
			if bodies[idx].Kind.BypassesSize() {
				universal = true
				break
			}
		}

		if b.Kind.ClearsColor() && len(group) >= t.MinGroupSize {
			removed := m.clearColor(w, b)
			res.Groups++
			res.Removed += removed
			res.Points += removed * rainbowPointsEach
			res.Rainbow = true
			continue
		}
		if len(group) < t.MinGroupSize && !universal {
			continue
		}

		for _, idx := range group {
			removeBody(w, bodies[idx])
		}
		res.Groups++
		res.Removed += len(group)
		res.Points += GroupScore(len(group), universal)
	}

	m.finish(w, res)
	return res
}

// flood collects the group reachable from seed. The group color is pinned by
// the first normal body it reaches; wildcards join any group.
func (m *MatchEngine) flood(bodies []*ecs.Body, seed int, reachFactor float64) []int {
	m.group = m.group[:0]
	m.stack = append(m.stack[:0], seed)
	m.visited[seed] = true
	ref := bodies[seed]

	for len(m.stack) > 0 {
		cur := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		m.group = append(m.group, cur)

		cb := bodies[cur]
		reach := reachFactor * cb.Radius
		for j, other := range bodies {
			if m.visited[j] || !other.Active || !other.Bonded {
				continue
			}
			if !cb.Pos.Near(other.Pos, reach) || !ecs.Matches(ref, other) {
				continue
			}
			if ref.Kind.Wildcard() && !other.Kind.Wildcard() {
				ref = other
			}
			m.visited[j] = true
			m.stack = append(m.stack, j)
		}
	}
	return m.group
}

// clearColor removes every active bonded body sharing the rainbow's color,
// plus the rainbow itself.
func (m *MatchEngine) clearColor(w *ecs.World, rainbow *ecs.Body) int {
	removed := 0
	for _, b := range w.Bodies() {
		if !b.Active || !b.Bonded {
			continue
		}
		if b == rainbow || b.Color == rainbow.Color {
			removeBody(w, b)
			removed++
		}
	}
	return removed
}

// Detonate removes every active body whose center lies within the bomb's
// blast radius of at, then discards the bomb.
func (m *MatchEngine) Detonate(w *ecs.World, bomb *ecs.Body, at cp.Vector) MatchResult {
	var res MatchResult
	if w == nil || bomb == nil {
		return res
	}
	radius := bomb.BombRadius
	if radius <= 0 {
		radius = w.Tuning.BombRadius
	}
	for _, b := range w.Bodies() {
		if !b.Active || b == bomb {
			continue
		}
		if b.Pos.DistanceSq(at) <= radius*radius {
			removeBody(w, b)
			res.Removed++
		}
	}
	w.Emit(at, bomb.Color, ecs.KindBomb, w.Tuning.ParticlesPerBlast)
	w.Remove(bomb)

	res.Groups = 1
	res.Points = res.Removed * bombPointsEach
	m.finish(w, res)
	return res
}

func (m *MatchEngine) reset(n int) {
	if cap(m.visited) < n {
		m.visited = make([]bool, n)
	}
	m.visited = m.visited[:n]
	for i := range m.visited {
		m.visited[i] = false
	}
}

// finish applies score, compacts the store, and jitters the survivors.
func (m *MatchEngine) finish(w *ecs.World, res MatchResult) {
	w.Score += res.Points
	if res.Removed == 0 {
		return
	}
	w.Compact()
	j := w.Tuning.JitterAmount
	if j <= 0 {
		return
	}
	for _, b := range w.Bodies() {
		if !b.Active || !b.Bonded {
			continue
		}
		b.Vel = b.Vel.Add(cp.Vector{
			X: (w.Rand.Float64()*2 - 1) * j,
			Y: (w.Rand.Float64()*2 - 1) * j,
		})
	}
}

func removeBody(w *ecs.World, b *ecs.Body) {
	if w.Remove(b) {
		w.Emit(b.Pos, b.Color, b.Kind, w.Tuning.ParticlesPerBody)
	}
}
