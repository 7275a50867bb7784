package game

import "math/rand/v2"

// Orientation of a placed or matched word on the grid.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// PlacedWord is an active word occupying a straight run of cells. Cells holds
// grid indices in placement order; while the word is active every one of
// those cells is locked.
type PlacedWord struct {
	Word     string
	Row, Col int
	Orient   Orientation
	Cells    []int
}

const (
	// placeRetries bounds one placement attempt's search for a free run.
	placeRetries = 10
	// minFillPerFrame bounds how many placements a single frame will try
	// while below the minimum population.
	minFillPerFrame = 3
	// seedChanceCap keeps the probabilistic extra placement sane at large
	// dt (a stalled frame must not guarantee a placement burst).
	seedChanceCap = 0.25
)

// Seeder keeps the population of placed words within configured bounds,
// reserving free runs and staging their letters through the fade lifecycle.
type Seeder struct {
	cfg      Config
	eligible []string
}

func newSeeder(cfg Config, dict *Dictionary) *Seeder {
	return &Seeder{
		cfg:      cfg,
		eligible: dict.WithinBounds(cfg.WordLengthMin, cfg.WordLengthMax),
	}
}

// Update evicts beyond the maximum (oldest first), fills toward the minimum,
// and otherwise rolls the seed-rate dice for one extra placement. Placement
// failure is never fatal; the next frame simply tries again.
func (s *Seeder) Update(g *Grid, placed []*PlacedWord, recent []string, dt, now float64, rng *rand.Rand) []*PlacedWord {
	for len(placed) > s.cfg.MaxActiveWords {
		releaseWord(g, placed[0], s.cfg, now, rng)
		placed = placed[1:]
	}

	for i := 0; len(placed) < s.cfg.MinActiveWords && i < minFillPerFrame; i++ {
		pw, ok := s.tryPlace(g, placed, recent, rng)
		if !ok {
			break
		}
		placed = append(placed, pw)
	}

	if len(placed) >= s.cfg.MinActiveWords && len(placed) < s.cfg.MaxActiveWords {
		chance := s.cfg.SeedRate / 60 * dt
		if chance > seedChanceCap {
			chance = seedChanceCap
		}
		if rng.Float64() < chance {
			if pw, ok := s.tryPlace(g, placed, recent, rng); ok {
				placed = append(placed, pw)
			}
		}
	}

	return placed
}

// tryPlace picks a word and a random in-bounds run, verifies every cell is
// unlocked, then locks the run and stages the word's letters. Letters are
// swapped under a fade-out so they never pop in visibly.
func (s *Seeder) tryPlace(g *Grid, placed []*PlacedWord, recent []string, rng *rand.Rand) (*PlacedWord, bool) {
	avoid := make([]string, 0, len(placed)+len(recent))
	for _, pw := range placed {
		avoid = append(avoid, pw.Word)
	}
	avoid = append(avoid, recent...)

	for attempt := 0; attempt < placeRetries; attempt++ {
		word, ok := Pick(rng, s.eligible, avoid)
		if !ok {
			return nil, false
		}

		orient := Orientation(rng.IntN(2))
		span := len(word)

		var row, col, dRow, dCol int
		switch orient {
		case Horizontal:
			if g.Cols < span || g.Rows < 1 {
				continue
			}
			row = rng.IntN(g.Rows)
			col = rng.IntN(g.Cols - span + 1)
			dCol = 1
		case Vertical:
			if g.Rows < span || g.Cols < 1 {
				continue
			}
			row = rng.IntN(g.Rows - span + 1)
			col = rng.IntN(g.Cols)
			dRow = 1
		}

		cells := make([]int, span)
		free := true
		for i := 0; i < span; i++ {
			idx := g.Index(row+i*dRow, col+i*dCol)
			if g.CellAt(idx).Locked {
				free = false
				break
			}
			cells[i] = idx
		}
		if !free {
			continue
		}

		for i, idx := range cells {
			c := g.CellAt(idx)
			c.Locked = true
			ch := rune(word[i])
			switch {
			case c.Phase == FadeOut:
				c.stage(ch)
			case c.Char != ch:
				c.beginFadeOut(uniform(rng, s.cfg.FadeCycleMin, s.cfg.FadeCycleMax), ch)
			}
		}

		return &PlacedWord{Word: word, Row: row, Col: col, Orient: orient, Cells: cells}, true
	}

	return nil, false
}

// releaseWord unlocks a word's cells and puts them back on the spontaneous
// mutation schedule. Any in-flight staged character still commits; the word
// itself is no longer protected.
func releaseWord(g *Grid, pw *PlacedWord, cfg Config, now float64, rng *rand.Rand) {
	for _, idx := range pw.Cells {
		c := g.CellAt(idx)
		c.Locked = false
		c.nextMutation = now + uniform(rng, cfg.MutationDelayMin, cfg.MutationDelayMax)
	}
}
