package game

import "testing"

func scenarioConfig() Config {
	cfg := DefaultConfig()
	cfg.Columns = 5
	cfg.MutationChance = 0
	cfg.MinActiveWords = 0
	cfg.MaxActiveWords = 1
	cfg.SeedRate = 0
	cfg.HoldSeconds = 1.0
	cfg.WordLengthMin = 3
	return cfg
}

// plantWord writes a word onto the live grid, locks its run and registers it
// as a placed word, bypassing the seeder for a controlled scenario.
func plantWord(s *Session, word string, row, col int, orient Orientation) *PlacedWord {
	g := s.Grid()
	cells := make([]int, len(word))
	for i, ch := range word {
		r, c := row, col
		if orient == Horizontal {
			c += i
		} else {
			r += i
		}
		cell := g.Cell(r, c)
		cell.Char = ch
		cell.Fade = 1
		cell.Phase = FadeSteady
		cell.Locked = true
		cells[i] = g.Index(r, c)
	}
	pw := &PlacedWord{Word: word, Row: row, Col: col, Orient: orient, Cells: cells}
	s.placed = append(s.placed, pw)
	return pw
}

func TestSessionHoldCapturesPlantedWord(t *testing.T) {
	cfg := scenarioConfig()
	s, err := NewSession(cfg, NewDictionary([]string{"cat"}), 31, 100, 120)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.Grid().Rows != 5 || s.Grid().Cols != 5 {
		t.Fatalf("expected a 5x5 grid, got %dx%d", s.Grid().Rows, s.Grid().Cols)
	}

	paintGrid(s.Grid(), 'x')
	plantWord(s, "cat", 2, 0, Horizontal)

	ptr := PointerSample{X: s.Grid().Cell(2, 1).X, Y: s.Grid().Cell(2, 1).Y, Down: false}

	// One idle frame: the scanner must report exactly the planted word.
	s.Tick(0.05, ptr)
	cand := s.Candidate()
	if cand == nil || cand.Word != "cat" || cand.Row != 2 || cand.Col != 0 || cand.Orient != Horizontal {
		t.Fatalf("expected the planted word as the only candidate, got %+v", cand)
	}
	if words := s.SentenceWords(); len(words) != 0 {
		t.Fatalf("hovering without the button must not capture, got %v", words)
	}

	ptr.Down = true
	for i := 0; i < 40 && len(s.SentenceWords()) == 0; i++ {
		s.Tick(0.05, ptr)
	}

	words := s.SentenceWords()
	if len(words) != 1 || words[0] != "cat" {
		t.Fatalf("expected sentence [cat], got %v", words)
	}
	if len(s.PlacedWords()) != 0 {
		t.Fatalf("expected no active words after capture, got %d", len(s.PlacedWords()))
	}
	for _, idx := range []int{s.Grid().Index(2, 0), s.Grid().Index(2, 1), s.Grid().Index(2, 2)} {
		if s.Grid().CellAt(idx).Locked {
			t.Fatalf("captured cell %d still locked", idx)
		}
	}

	// The captured letters dissolve; a continued hold must not instantly
	// re-capture the same run.
	for i := 0; i < 10; i++ {
		s.Tick(0.05, ptr)
	}
	if words := s.SentenceWords(); len(words) != 1 {
		t.Fatalf("expected no immediate re-capture, got %v", words)
	}
}

func TestSessionHoldSurvivesEqualLengthRival(t *testing.T) {
	cfg := scenarioConfig()
	cfg.MaxActiveWords = 2
	s, err := NewSession(cfg, NewDictionary([]string{"cat", "dog"}), 35, 100, 120)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	paintGrid(s.Grid(), 'x')
	plantWord(s, "cat", 1, 0, Horizontal)
	plantWord(s, "dog", 3, 0, Horizontal)

	// Both words sit fully readable inside the spotlight, so every frame's
	// scan sees an equal-length tie. The hold must stay on the candidate it
	// froze and complete on schedule.
	ptr := PointerSample{X: s.Grid().Cell(2, 1).X, Y: s.Grid().Cell(2, 1).Y, Down: true}
	for i := 0; i < 40 && len(s.SentenceWords()) == 0; i++ {
		s.Tick(0.05, ptr)
	}

	words := s.SentenceWords()
	if len(words) != 1 {
		t.Fatalf("expected exactly one capture despite the tie, got %v", words)
	}
	if words[0] != "cat" && words[0] != "dog" {
		t.Fatalf("expected one of the planted words, got %q", words[0])
	}
}

func TestSessionCaptureResetsWhenLetterMutates(t *testing.T) {
	cfg := scenarioConfig()
	s, err := NewSession(cfg, NewDictionary([]string{"cat"}), 32, 100, 120)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	paintGrid(s.Grid(), 'x')
	plantWord(s, "cat", 2, 0, Horizontal)

	ptr := PointerSample{X: s.Grid().Cell(2, 1).X, Y: s.Grid().Cell(2, 1).Y, Down: true}
	for i := 0; i < 10; i++ {
		s.Tick(0.05, ptr)
	}
	if held, progress := s.Held(); held == nil || progress <= 0 {
		t.Fatalf("expected an in-progress hold, held=%v progress=%v", held, progress)
	}

	// Mutate one letter out from under the hold.
	s.Grid().Cell(2, 1).Char = 'z'
	s.Tick(0.05, ptr)

	if held, _ := s.Held(); held != nil {
		t.Fatalf("expected the hold to drop after the word mutated away")
	}
	if len(s.SentenceWords()) != 0 {
		t.Fatalf("mutated-away hold must not capture")
	}
}

func TestSessionDeterministicForFixedSeedAndTimeline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Columns = 10
	dict := NewDictionary(BuiltinWords())

	run := func() ([]string, string) {
		s, err := NewSession(cfg, dict, 77, 400, 480)
		if err != nil {
			t.Fatalf("NewSession: %v", err)
		}
		for i := 0; i < 600; i++ {
			ptr := PointerSample{
				X:    float64(i%400) + 0.5,
				Y:    float64((i*3)%480) + 0.5,
				Down: i%120 > 40,
			}
			s.Tick(1.0/60, ptr)
		}
		chars := make([]byte, s.Grid().Len())
		for i := range chars {
			chars[i] = byte(s.Grid().CellAt(i).Char)
		}
		return s.SentenceWords(), string(chars)
	}

	wordsA, gridA := run()
	wordsB, gridB := run()

	if gridA != gridB {
		t.Fatalf("expected identical grids for a fixed seed and timeline")
	}
	if len(wordsA) != len(wordsB) {
		t.Fatalf("expected identical sentences, got %v vs %v", wordsA, wordsB)
	}
	for i := range wordsA {
		if wordsA[i] != wordsB[i] {
			t.Fatalf("expected identical sentences, got %v vs %v", wordsA, wordsB)
		}
	}
}

func TestSessionResizeRebuildsGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Columns = 10
	s, err := NewSession(cfg, NewDictionary(BuiltinWords()), 33, 400, 480)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	for i := 0; i < 30; i++ {
		s.Tick(1.0/60, PointerSample{})
	}

	s.Resize(600, 480)
	if s.Grid().Cols != 10 {
		t.Fatalf("columns are fixed by config, got %d", s.Grid().Cols)
	}
	if got := s.Grid().CellW; got != 60 {
		t.Fatalf("expected cell width 60 after resize, got %v", got)
	}
	if len(s.PlacedWords()) != 0 {
		t.Fatalf("resize must discard placements")
	}
}

func TestSessionRunsWithGridTooSmallForAnyWord(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Columns = 2
	cfg.WordLengthMin = 5
	s, err := NewSession(cfg, NewDictionary([]string{"stone"}), 34, 40, 48)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	for i := 0; i < 120; i++ {
		s.Tick(1.0/60, PointerSample{X: 10, Y: 10, Down: true})
	}
	if len(s.PlacedWords()) != 0 {
		t.Fatalf("expected zero active words on an undersized grid")
	}
	if len(s.SentenceWords()) != 0 {
		t.Fatalf("expected no captures on an undersized grid")
	}
}

func TestSessionRejectsMalformedConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HoldSeconds = 0
	if _, err := NewSession(cfg, NewDictionary([]string{"cat"}), 1, 100, 100); err == nil {
		t.Fatalf("expected an error for a zero hold duration")
	}
}
