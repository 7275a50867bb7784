package game

import "math/rand/v2"

// FadePhase is the per-cell camouflage state. A staged character is only
// meaningful while the cell is fading out; it is applied the moment the fade
// bottoms out, so an observer never sees an instantaneous character pop.
type FadePhase uint8

const (
	FadeSteady FadePhase = iota
	FadeOut
	FadeIn
)

// Cell is one grid position. X and Y anchor the glyph in surface space;
// jitter is a cosmetic oscillation applied around the anchor at draw time and
// never affects matching.
type Cell struct {
	Row, Col int
	X, Y     float64

	Char rune

	JitterPhase float64
	JitterSpeed float64
	JitterSeed  float64

	// Fade is the visibility fraction in [0,1]. Phase gives the direction
	// of travel; cycleDuration is the length of the current half-cycle.
	Fade  float64
	Phase FadePhase

	// Locked cells belong to a placed word and never churn spontaneously.
	Locked bool

	staged        rune
	hasStaged     bool
	cycleDuration float64
	nextMutation  float64
}

// beginFadeOut starts a fade-to-invisible half-cycle. If staged is non-zero
// that character is committed when the fade bottoms out; otherwise a fresh
// random character is drawn there (cosmetic churn).
func (c *Cell) beginFadeOut(duration float64, staged rune) {
	c.Phase = FadeOut
	c.cycleDuration = duration
	if staged != 0 {
		c.staged = staged
		c.hasStaged = true
	}
}

// stage records the character to commit at the bottom of an already-running
// fade-out, replacing any previously staged character.
func (c *Cell) stage(ch rune) {
	c.staged = ch
	c.hasStaged = true
}

func (c *Cell) clearStaged() {
	c.staged = 0
	c.hasStaged = false
}

func randomLetter(rng *rand.Rand) rune {
	return rune('a' + rng.IntN(alphabetSize))
}
