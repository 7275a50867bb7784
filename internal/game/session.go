package game

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// recentCaptureWindow is how many of the latest captures the seeder avoids
// re-placing near-duplicates of.
const recentCaptureWindow = 5

// PointerSample is one frame's normalized pointer state in surface
// coordinates. The core does not care which input device produced it.
type PointerSample struct {
	X, Y float64
	Down bool
}

// Session is the complete word-discovery simulation: grid, seeder, scanner
// and capture machine behind a single Tick entry point. The host owns
// scheduling; the session owns all state and the one RNG stream, advanced in
// a fixed order per frame (grid draws, then seeding draws, then scanner
// tie-break and capture-release draws) so a fixed seed and pointer timeline
// replay exactly.
//
// A session is not safe for concurrent use; it is built for one
// frame-driven goroutine.
type Session struct {
	cfg  Config
	dict *Dictionary
	rng  *rand.Rand

	grid     *Grid
	seeder   *Seeder
	capture  Capture
	sentence *Sentence
	placed   []*PlacedWord

	candidate *Candidate
	now       float64

	width, height float64
}

func NewSession(cfg Config, dict *Dictionary, seed int64, width, height float64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session config: %w", err)
	}
	if dict == nil {
		return nil, fmt.Errorf("session requires a dictionary")
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:      cfg,
		dict:     dict,
		rng:      seededRNG(seed),
		seeder:   newSeeder(cfg, dict),
		sentence: NewSentence(cfg.MaxSentenceWords),
	}
	s.buildGrid(width, height)
	return s, nil
}

// Tick advances the simulation by dt seconds. Intra-frame order is fixed:
// grid fade/mutation, then seeding/eviction, then spotlight scan and capture.
// The scanner therefore always observes the grid already advanced for this
// frame, and evictions free cells before seeding reuses them.
func (s *Session) Tick(dt float64, ptr PointerSample) {
	if dt < 0 {
		dt = 0
	}
	s.now += dt

	s.grid.Update(dt, s.now, s.cfg, s.rng)
	s.placed = s.seeder.Update(s.grid, s.placed, s.recentCaptures(), dt, s.now, s.rng)

	// Pin the scan to an in-progress hold so that a random tie-break among
	// equal-length candidates cannot flip the live pick and reset the timer.
	heldKey := ""
	if held := s.capture.Held(); held != nil {
		heldKey = held.Key()
	}
	s.candidate = Scan(s.grid, s.dict.Trie(), ptr.X, ptr.Y, s.cfg, s.rng, heldKey)

	if captured := s.capture.Update(s.now, s.cfg.HoldSeconds, ptr.Down, s.candidate); captured != nil {
		s.commit(captured)
	}
}

// Resize rebuilds the grid for a new surface size. Placements and any hold
// in progress are discarded; the seeder repopulates on following frames.
func (s *Session) Resize(width, height float64) {
	if width == s.width && height == s.height {
		return
	}
	s.buildGrid(width, height)
}

func (s *Session) buildGrid(width, height float64) {
	s.width = width
	s.height = height

	cellW := width / float64(s.cfg.Columns)
	cellH := cellW * rowPitchFactor
	rows := 0
	if cellH > 0 {
		rows = int(height / cellH)
	}

	s.grid = NewGrid(rows, s.cfg.Columns, cellW, cellH, s.cfg, s.rng, s.now)
	s.placed = nil
	s.candidate = nil
	s.capture.reset()
}

// commit finalizes a completed hold: the word joins the sentence and every
// placed word sharing cells with the captured span is released and removed.
// The captured letters dissolve through a fade-out so a continued hold does
// not immediately re-capture the same run.
func (s *Session) commit(c *Candidate) {
	s.sentence.Append(c.Word)

	taken := make(map[int]bool, len(c.Cells))
	for _, idx := range c.Cells {
		taken[idx] = true
	}

	kept := s.placed[:0]
	for _, pw := range s.placed {
		overlap := false
		for _, idx := range pw.Cells {
			if taken[idx] {
				overlap = true
				break
			}
		}
		if overlap {
			releaseWord(s.grid, pw, s.cfg, s.now, s.rng)
		} else {
			kept = append(kept, pw)
		}
	}
	s.placed = kept

	for _, idx := range c.Cells {
		cell := s.grid.CellAt(idx)
		if cell.Phase != FadeOut {
			cell.beginFadeOut(uniform(s.rng, s.cfg.FadeCycleMin, s.cfg.FadeCycleMax), 0)
		}
	}
}

func (s *Session) recentCaptures() []string {
	words := s.sentence.Words()
	if len(words) > recentCaptureWindow {
		words = words[len(words)-recentCaptureWindow:]
	}
	return words
}

func (s *Session) Config() Config {
	return s.cfg
}

func (s *Session) Grid() *Grid {
	return s.grid
}

// Candidate is the most recent scan result, nil when nothing capturable is
// under the spotlight.
func (s *Session) Candidate() *Candidate {
	return s.candidate
}

// Held reports the frozen candidate of an active hold and its normalized
// progress; nil and 0 when idle.
func (s *Session) Held() (*Candidate, float64) {
	return s.capture.Held(), s.capture.Progress()
}

func (s *Session) SentenceWords() []string {
	return s.sentence.Words()
}

func (s *Session) PlacedWords() []*PlacedWord {
	return s.placed
}

func (s *Session) Now() float64 {
	return s.now
}
