package game

import "math/rand/v2"

// rowPitchFactor sets cell height relative to cell width.
const rowPitchFactor = 1.2

// Grid is the fixed rows×cols letter field. Cells are stored row-major; all
// mutation happens in Update or through the seeder/capture paths, one frame
// at a time on a single goroutine.
type Grid struct {
	Rows, Cols   int
	CellW, CellH float64

	cells []Cell
}

func NewGrid(rows, cols int, cellW, cellH float64, cfg Config, rng *rand.Rand, now float64) *Grid {
	g := &Grid{
		Rows:  rows,
		Cols:  cols,
		CellW: cellW,
		CellH: cellH,
		cells: make([]Cell, rows*cols),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := &g.cells[g.Index(row, col)]
			c.Row = row
			c.Col = col
			c.X = (float64(col) + 0.5) * cellW
			c.Y = (float64(row) + 0.5) * cellH
			c.Char = randomLetter(rng)
			c.JitterPhase = rng.Float64() * 6.283185307179586
			c.JitterSpeed = uniform(rng, cfg.JitterSpeedMin, cfg.JitterSpeedMax)
			c.JitterSeed = rng.Float64()
			c.Fade = 1
			c.Phase = FadeSteady
			c.nextMutation = now + uniform(rng, cfg.MutationDelayMin, cfg.MutationDelayMax)
		}
	}
	return g
}

func (g *Grid) Index(row, col int) int {
	return row*g.Cols + col
}

func (g *Grid) Cell(row, col int) *Cell {
	return &g.cells[g.Index(row, col)]
}

func (g *Grid) CellAt(index int) *Cell {
	return &g.cells[index]
}

func (g *Grid) Len() int {
	return len(g.cells)
}

// Update advances every cell by dt seconds: fade transitions first, then the
// spontaneous-mutation schedule, then jitter. Cells are visited in row-major
// order so the RNG draw sequence is reproducible.
func (g *Grid) Update(dt, now float64, cfg Config, rng *rand.Rand) {
	for i := range g.cells {
		c := &g.cells[i]

		switch c.Phase {
		case FadeOut:
			c.Fade -= dt / c.cycleDuration
			if c.Fade <= 0 {
				c.Fade = 0
				if c.hasStaged {
					c.Char = c.staged
					c.clearStaged()
				} else {
					c.Char = randomLetter(rng)
				}
				c.Phase = FadeIn
			}
		case FadeIn:
			c.Fade += dt / c.cycleDuration
			if c.Fade >= 1 {
				c.Fade = 1
				c.Phase = FadeSteady
				c.nextMutation = now + uniform(rng, cfg.MutationDelayMin, cfg.MutationDelayMax)
			}
		case FadeSteady:
			if !c.Locked && now >= c.nextMutation {
				if rng.Float64() < cfg.MutationChance {
					c.beginFadeOut(uniform(rng, cfg.FadeCycleMin, cfg.FadeCycleMax), 0)
				} else {
					c.nextMutation = now + uniform(rng, cfg.MutationDelayMin, cfg.MutationDelayMax)
				}
			}
		}

		c.JitterPhase += c.JitterSpeed * dt
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
