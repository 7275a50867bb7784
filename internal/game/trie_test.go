package game

import "testing"

func TestTrieContainsDictionaryWords(t *testing.T) {
	words := []string{"cat", "cats", "car", "dog", "do"}
	trie := NewTrie(words)

	for _, w := range words {
		if !trie.Contains(w) {
			t.Fatalf("expected trie to contain %q", w)
		}
	}
}

func TestTrieRejectsNonWords(t *testing.T) {
	trie := NewTrie([]string{"cat", "cats", "car"})

	for _, w := range []string{"ca", "c", "catsup", "dog", "art", ""} {
		if trie.Contains(w) {
			t.Fatalf("expected trie not to contain %q", w)
		}
	}
}

func TestTrieIncrementalWalk(t *testing.T) {
	trie := NewTrie([]string{"cat"})

	node := trie.Root()
	for _, ch := range "ca" {
		node = node.Step(ch)
		if node == nil {
			t.Fatalf("walk terminated early at %q", ch)
		}
		if node.Terminal() {
			t.Fatalf("prefix reported as complete word at %q", ch)
		}
	}

	node = node.Step('t')
	if node == nil || !node.Terminal() {
		t.Fatalf("expected terminal node after walking cat")
	}
	if node.Step('z') != nil {
		t.Fatalf("expected no child past the end of the word")
	}
}

func TestTrieDuplicatesHarmless(t *testing.T) {
	trie := NewTrie([]string{"owl", "owl", "owl"})
	if !trie.Contains("owl") {
		t.Fatalf("expected trie to contain owl")
	}
}

func TestTrieIgnoresNonAlphabetWords(t *testing.T) {
	trie := NewTrie([]string{"caté", "nul*", ""})
	if trie.Contains("cat") {
		t.Fatalf("partial insert of a rejected word leaked into the trie")
	}
	// Rejected words must leave no prefix nodes at all.
	if trie.Root().Step('c') != nil || trie.Root().Step('n') != nil {
		t.Fatalf("rejected word left dead prefix nodes behind")
	}
}
