package game

const alphabetSize = 26

// TrieNode is one node of the static dictionary prefix tree. The path from
// the root to a node spells a prefix; Terminal reports whether that prefix
// is itself a dictionary word.
type TrieNode struct {
	children [alphabetSize]*TrieNode
	terminal bool
}

// Step advances the walk by one character. It returns nil when no dictionary
// word continues through ch, which ends matching for the current offset.
func (n *TrieNode) Step(ch rune) *TrieNode {
	if ch < 'a' || ch > 'z' {
		return nil
	}
	return n.children[ch-'a']
}

func (n *TrieNode) Terminal() bool {
	return n.terminal
}

// Trie is a read-only prefix tree over lowercase ASCII words. Built once at
// session start; duplicates in the input are harmless.
type Trie struct {
	root *TrieNode
}

func NewTrie(words []string) *Trie {
	t := &Trie{root: &TrieNode{}}
	for _, w := range words {
		t.insert(w)
	}
	return t
}

func (t *Trie) Root() *TrieNode {
	return t.root
}

func (t *Trie) insert(word string) {
	if word == "" || !lowercaseASCII(word) {
		return
	}
	node := t.root
	for _, ch := range word {
		idx := ch - 'a'
		if node.children[idx] == nil {
			node.children[idx] = &TrieNode{}
		}
		node = node.children[idx]
	}
	node.terminal = true
}

// Contains walks the full word through the tree.
func (t *Trie) Contains(word string) bool {
	node := t.root
	for _, ch := range word {
		node = node.Step(ch)
		if node == nil {
			return false
		}
	}
	return node != t.root && node.terminal
}
