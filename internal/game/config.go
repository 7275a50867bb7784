package game

import (
	"fmt"
)

// Config holds every tunable the word-discovery simulation recognises.
// Geometry that would make placement impossible (a grid too small for the
// minimum word length) is not a validation error: the seeder simply never
// succeeds, per the degrade-gracefully rule. Validate only rejects values
// that are nonsense at the host level.
type Config struct {
	// Grid geometry. Columns fixes the horizontal cell count; rows are
	// derived from the surface height and the cell pitch.
	Columns int

	// Glyph rendering, consumed opaquely by the frontend.
	FontSize   int
	FontFamily string

	// Cosmetic per-cell oscillation. Speed is drawn per cell from
	// [JitterSpeedMin, JitterSpeedMax] radians per second.
	JitterAmplitude float64
	JitterSpeedMin  float64
	JitterSpeedMax  float64

	// Camouflage fade. Each fade half-cycle (out or in) takes a duration
	// drawn from [FadeCycleMin, FadeCycleMax] seconds.
	FadeCycleMin float64
	FadeCycleMax float64

	// Spontaneous churn. A steady unlocked cell whose scheduled mutation
	// time has elapsed starts a fade-out with probability MutationChance,
	// otherwise reschedules. The next mutation is scheduled at
	// now + U[MutationDelayMin, MutationDelayMax] seconds.
	MutationChance   float64
	MutationDelayMin float64
	MutationDelayMax float64

	// Hold-to-capture duration in seconds.
	HoldSeconds float64

	// Word population. Placed and matched words must have a length in
	// [WordLengthMin, WordLengthMax]. The seeder keeps the active count in
	// [MinActiveWords, MaxActiveWords], seeding extras at SeedRate words
	// per minute.
	WordLengthMin  int
	WordLengthMax  int
	MinActiveWords int
	MaxActiveWords int
	SeedRate       float64

	// Spotlight. Cells are readable when within SpotlightRadius of the
	// pointer and at or above VisibilityThreshold fade. Feather is the
	// width of the soft edge, cosmetic only.
	SpotlightRadius     float64
	SpotlightFeather    float64
	VisibilityThreshold float64

	// Captured words kept in the running sentence; oldest evicted beyond.
	MaxSentenceWords int
}

func DefaultConfig() Config {
	return Config{
		Columns:             24,
		FontSize:            28,
		FontFamily:          "monospace",
		JitterAmplitude:     1.6,
		JitterSpeedMin:      0.8,
		JitterSpeedMax:      2.4,
		FadeCycleMin:        0.35,
		FadeCycleMax:        0.9,
		MutationChance:      0.4,
		MutationDelayMin:    1.5,
		MutationDelayMax:    6.0,
		HoldSeconds:         1.2,
		WordLengthMin:       3,
		WordLengthMax:       7,
		MinActiveWords:      4,
		MaxActiveWords:      9,
		SeedRate:            14,
		SpotlightRadius:     150,
		SpotlightFeather:    55,
		VisibilityThreshold: 0.55,
		MaxSentenceWords:    12,
	}
}

func (c Config) Validate() error {
	if c.Columns < 1 {
		return fmt.Errorf("columns must be at least 1, got %d", c.Columns)
	}
	if c.FontSize < 1 {
		return fmt.Errorf("font size must be positive, got %d", c.FontSize)
	}
	if c.FadeCycleMin <= 0 || c.FadeCycleMax < c.FadeCycleMin {
		return fmt.Errorf("invalid fade cycle range [%v, %v]", c.FadeCycleMin, c.FadeCycleMax)
	}
	if c.MutationChance < 0 || c.MutationChance > 1 {
		return fmt.Errorf("mutation chance must be in [0,1], got %v", c.MutationChance)
	}
	if c.MutationDelayMin < 0 || c.MutationDelayMax < c.MutationDelayMin {
		return fmt.Errorf("invalid mutation delay range [%v, %v]", c.MutationDelayMin, c.MutationDelayMax)
	}
	if c.HoldSeconds <= 0 {
		return fmt.Errorf("hold duration must be positive, got %v", c.HoldSeconds)
	}
	if c.WordLengthMin < 1 || c.WordLengthMax < c.WordLengthMin {
		return fmt.Errorf("invalid word length bounds [%d, %d]", c.WordLengthMin, c.WordLengthMax)
	}
	if c.MinActiveWords < 0 || c.MaxActiveWords < c.MinActiveWords {
		return fmt.Errorf("invalid active word bounds [%d, %d]", c.MinActiveWords, c.MaxActiveWords)
	}
	if c.SeedRate < 0 {
		return fmt.Errorf("seed rate must not be negative, got %v", c.SeedRate)
	}
	if c.SpotlightRadius <= 0 {
		return fmt.Errorf("spotlight radius must be positive, got %v", c.SpotlightRadius)
	}
	if c.SpotlightFeather < 0 {
		return fmt.Errorf("spotlight feather must not be negative, got %v", c.SpotlightFeather)
	}
	if c.VisibilityThreshold < 0 || c.VisibilityThreshold > 1 {
		return fmt.Errorf("visibility threshold must be in [0,1], got %v", c.VisibilityThreshold)
	}
	if c.MaxSentenceWords < 1 {
		return fmt.Errorf("max sentence words must be at least 1, got %d", c.MaxSentenceWords)
	}
	return nil
}
