package game

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Candidate is an ephemeral scan result: a dictionary word currently readable
// under the spotlight. It is recomputed from live cell state every frame and
// never stored across frames by the scanner itself.
type Candidate struct {
	Word     string
	Row, Col int
	Orient   Orientation
	Cells    []int
}

// Key is the identity of a candidate for hold purposes: the word plus the
// exact cell-index sequence it spans. A same-letters match at a different
// offset is a different candidate.
func (c *Candidate) Key() string {
	var b strings.Builder
	b.WriteString(c.Word)
	for _, idx := range c.Cells {
		fmt.Fprintf(&b, ":%d", idx)
	}
	return b.String()
}

// Scan finds the best capturable word under the spotlight. A cell counts as
// readable when it lies within the spotlight radius of the pointer and its
// fade is at or above the visibility threshold; mid-fade letters that are
// nearly invisible must not match. Maximal runs of readable cells in every
// row and every column are walked through the trie from each starting
// offset.
//
// A non-empty preferKey pins the result: when a found candidate carries that
// identity key it is returned as-is, so an in-progress hold stays on its
// frozen candidate for as long as it remains readable. Otherwise the longest
// candidate within the word-length bounds wins; equal lengths tie-break
// uniformly on the shared RNG.
func Scan(g *Grid, trie *Trie, px, py float64, cfg Config, rng *rand.Rand, preferKey string) *Candidate {
	if g.Len() == 0 {
		return nil
	}

	included := make([]bool, g.Len())
	r2 := cfg.SpotlightRadius * cfg.SpotlightRadius
	for i := 0; i < g.Len(); i++ {
		c := g.CellAt(i)
		dx := c.X - px
		dy := c.Y - py
		included[i] = dx*dx+dy*dy <= r2 && c.Fade >= cfg.VisibilityThreshold
	}

	var found []Candidate

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; {
			if !included[g.Index(row, col)] {
				col++
				continue
			}
			end := col
			for end < g.Cols && included[g.Index(row, end)] {
				end++
			}
			found = scanRun(g, trie, row, col, 0, 1, end-col, cfg, found)
			col = end
		}
	}

	for col := 0; col < g.Cols; col++ {
		for row := 0; row < g.Rows; {
			if !included[g.Index(row, col)] {
				row++
				continue
			}
			end := row
			for end < g.Rows && included[g.Index(end, col)] {
				end++
			}
			found = scanRun(g, trie, row, col, 1, 0, end-row, cfg, found)
			row = end
		}
	}

	if len(found) == 0 {
		return nil
	}

	if preferKey != "" {
		for i := range found {
			if found[i].Key() == preferKey {
				return &found[i]
			}
		}
	}

	best := 0
	for _, c := range found {
		if len(c.Word) > best {
			best = len(c.Word)
		}
	}
	top := found[:0:0]
	for _, c := range found {
		if len(c.Word) == best {
			top = append(top, c)
		}
	}
	pick := top[0]
	if len(top) > 1 {
		pick = top[rng.IntN(len(top))]
	}
	return &pick
}

// scanRun walks every starting offset of one contiguous run of readable
// cells through the trie, recording each complete word inside the length
// bounds.
func scanRun(g *Grid, trie *Trie, row, col, dRow, dCol, runLen int, cfg Config, found []Candidate) []Candidate {
	for start := 0; start < runLen; start++ {
		node := trie.Root()
		for i := start; i < runLen; i++ {
			cell := g.Cell(row+i*dRow, col+i*dCol)
			node = node.Step(cell.Char)
			if node == nil {
				break
			}
			length := i - start + 1
			if node.Terminal() && length >= cfg.WordLengthMin && length <= cfg.WordLengthMax {
				cells := make([]int, length)
				word := make([]byte, length)
				for j := 0; j < length; j++ {
					c := g.Cell(row+(start+j)*dRow, col+(start+j)*dCol)
					cells[j] = g.Index(c.Row, c.Col)
					word[j] = byte(c.Char)
				}
				orient := Horizontal
				if dRow == 1 {
					orient = Vertical
				}
				found = append(found, Candidate{
					Word:   string(word),
					Row:    row + start*dRow,
					Col:    col + start*dCol,
					Orient: orient,
					Cells:  cells,
				})
			}
		}
	}
	return found
}
