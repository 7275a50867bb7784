package game

import (
	"math/rand/v2"
	"strings"

	"github.com/agnivade/levenshtein"
)

// varietyDistance is the maximum edit distance at which a candidate seed word
// counts as a near-duplicate of a word already on the grid or just captured.
const varietyDistance = 1

// Dictionary is an ordered list of lowercase words plus the prefix tree built
// from them. Words containing anything outside a-z are dropped at
// construction so the grid alphabet and the match alphabet stay identical.
type Dictionary struct {
	words []string
	trie  *Trie
}

func NewDictionary(words []string) *Dictionary {
	clean := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || !lowercaseASCII(w) {
			continue
		}
		clean = append(clean, w)
	}
	return &Dictionary{words: clean, trie: NewTrie(clean)}
}

func (d *Dictionary) Words() []string {
	return d.words
}

func (d *Dictionary) Trie() *Trie {
	return d.trie
}

// WithinBounds returns the words whose length lies in [minLen, maxLen],
// preserving dictionary order.
func (d *Dictionary) WithinBounds(minLen, maxLen int) []string {
	out := make([]string, 0, len(d.words))
	for _, w := range d.words {
		if len(w) >= minLen && len(w) <= maxLen {
			out = append(out, w)
		}
	}
	return out
}

// Pick draws a random word from eligible, preferring one that is not a
// near-duplicate (by edit distance) of any word in avoid. After a bounded
// number of redraws the last draw is accepted anyway; variety is a
// preference, not a rule.
func Pick(rng *rand.Rand, eligible []string, avoid []string) (string, bool) {
	if len(eligible) == 0 {
		return "", false
	}
	const redraws = 6
	word := ""
	for i := 0; i < redraws; i++ {
		word = eligible[rng.IntN(len(eligible))]
		if !nearDuplicate(word, avoid) {
			return word, true
		}
	}
	return word, true
}

func nearDuplicate(word string, avoid []string) bool {
	for _, a := range avoid {
		if levenshtein.ComputeDistance(word, a) <= varietyDistance {
			return true
		}
	}
	return false
}

func lowercaseASCII(s string) bool {
	for _, ch := range s {
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}
