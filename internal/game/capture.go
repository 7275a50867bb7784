package game

// Sentence is the capped, append-only run of captured words. Once the cap is
// exceeded the oldest entry is evicted; nothing is ever persisted.
type Sentence struct {
	words []string
	max   int
}

func NewSentence(max int) *Sentence {
	return &Sentence{max: max}
}

func (s *Sentence) Append(word string) {
	s.words = append(s.words, word)
	if len(s.words) > s.max {
		s.words = s.words[len(s.words)-s.max:]
	}
}

func (s *Sentence) Words() []string {
	return s.words
}

func (s *Sentence) Len() int {
	return len(s.words)
}

// CaptureState is the hold state machine's position. Committing is
// transient: it collapses back to Idle within the same update.
type CaptureState uint8

const (
	CaptureIdle CaptureState = iota
	CaptureHolding
)

// Capture tracks an in-progress hold. The candidate is frozen by identity
// key at gesture start so cosmetic scanner churn cannot reset progress; only
// a genuine identity change does.
type Capture struct {
	state     CaptureState
	key       string
	candidate Candidate
	start     float64
	progress  float64
}

func (c *Capture) State() CaptureState {
	return c.state
}

// Progress is the normalized hold fraction in [0,1], recomputed from elapsed
// time each frame rather than accumulated.
func (c *Capture) Progress() float64 {
	return c.progress
}

// Held returns the frozen candidate while a hold is active.
func (c *Capture) Held() *Candidate {
	if c.state != CaptureHolding {
		return nil
	}
	return &c.candidate
}

func (c *Capture) reset() {
	c.state = CaptureIdle
	c.key = ""
	c.candidate = Candidate{}
	c.start = 0
	c.progress = 0
}

// Update advances the hold given the pointer button state and this frame's
// live scan result. It returns the captured candidate on the frame the hold
// completes, nil otherwise. An identity change mid-hold restarts the timer
// at zero against the new candidate (or drops to Idle when none remains);
// partial credit is never kept.
func (c *Capture) Update(now, holdSeconds float64, buttonDown bool, live *Candidate) *Candidate {
	if !buttonDown {
		c.reset()
		return nil
	}

	if c.state == CaptureHolding && live != nil && live.Key() == c.key {
		elapsed := now - c.start
		if elapsed >= holdSeconds {
			captured := c.candidate
			c.reset()
			return &captured
		}
		c.progress = elapsed / holdSeconds
		return nil
	}

	if live == nil {
		c.reset()
		return nil
	}

	c.state = CaptureHolding
	c.key = live.Key()
	c.candidate = *live
	c.start = now
	c.progress = 0
	return nil
}
