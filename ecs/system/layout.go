package system

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bubbleblast/ecs"
)

const (
	layoutAttempts = 50
	cellGap        = 2.0
	rowInset       = 20.0
	noColor        = -1
)

// LayoutColumns returns how many balls fit in one row of the playfield.
func LayoutColumns(t ecs.Tuning) int {
	cols := int((t.Right - t.Left - rowInset) / (t.BallRadius*2 + cellGap))
	if cols < 1 {
		cols = 1
	}
	return cols
}

// GenerateColorGrid fills a rows x cols grid so that no three horizontally or
// vertically contiguous cells share a color.
func GenerateColorGrid(rows, cols, colors int, rng *rand.Rand) [][]ecs.Color {
	if rows <= 0 || cols <= 0 || colors <= 0 {
		return nil
	}
	grid := make([][]int, rows)
	for r := range grid {
		grid[r] = make([]int, cols)
		for c := range grid[r] {
			grid[r][c] = noColor
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			grid[r][c] = pickCellColor(grid, r, c, colors, rng)
		}
	}

	out := make([][]ecs.Color, rows)
	for r := range grid {
		out[r] = make([]ecs.Color, cols)
		for c, v := range grid[r] {
			out[r][c] = ecs.Color(v)
		}
	}
	return out
}

func pickCellColor(grid [][]int, row, col, colors int, rng *rand.Rand) int {
	for attempt := 0; attempt < layoutAttempts; attempt++ {
		candidate := rng.Intn(colors)
		if colorSafe(grid, row, col, candidate) {
			return candidate
		}
	}
	return fallbackColor(grid, row, col, colors, rng)
}

// colorSafe reports whether candidate would complete a run of three with the
// two left or the two above neighbours.
func colorSafe(grid [][]int, row, col, candidate int) bool {
	if col >= 2 && grid[row][col-1] == candidate && grid[row][col-2] == candidate {
		return false
	}
	if row >= 2 && grid[row-1][col] == candidate && grid[row-2][col] == candidate {
		return false
	}
	return true
}

func fallbackColor(grid [][]int, row, col, colors int, rng *rand.Rand) int {
	for candidate := 0; candidate < colors; candidate++ {
		if col >= 1 && grid[row][col-1] == candidate {
			continue
		}
		if row >= 1 && grid[row-1][col] == candidate {
			continue
		}
		return candidate
	}
	// With fewer than three colors the immediate neighbours can exhaust the
	// palette; any color that is still safe keeps the invariant.
	for candidate := 0; candidate < colors; candidate++ {
		if colorSafe(grid, row, col, candidate) {
			return candidate
		}
	}
	return rng.Intn(colors)
}

// GenerateLayout builds the initial mass for a level and adds it to the world.
// Top-row bodies start anchored.
func GenerateLayout(w *ecs.World, level ecs.Level) int {
	if w == nil {
		return 0
	}
	t := w.Tuning
	population := level.Population
	if population <= 0 {
		population = t.EndlessPopulation
	}
	cols := LayoutColumns(t)
	rows := int(math.Ceil(float64(population) / float64(cols)))
	grid := GenerateColorGrid(rows, cols, t.Colors, w.Rand)

	spacing := t.BallRadius*2 + cellGap
	placed := 0
	for r := 0; r < rows && placed < population; r++ {
		for c := 0; c < cols && placed < population; c++ {
			pos := cp.Vector{
				X: t.Left + t.BallRadius + float64(c)*spacing,
				Y: t.Top + t.BallRadius + float64(r)*spacing,
			}
			if pos.X+t.BallRadius > t.Right || pos.Y+t.BallRadius > t.Bottom {
				continue
			}
			kind := ecs.KindNormal
			if level.RainbowChance > 0 && w.Rand.Float64() < level.RainbowChance {
				kind = ecs.KindRainbow
			}
			b := ecs.NewBody(pos, grid[r][c], kind, t)
			b.Anchored = r == 0
			w.AddBonded(b)
			placed++
		}
	}
	return placed
}
