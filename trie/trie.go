package trie

import (
	"iter"
	"strings"
)

// Trie is a compressed prefix tree over a set of words.
type Trie struct {
	root *Node
	size int
}

// New returns an empty trie.
func New() *Trie {
	return &Trie{root: newRoot()}
}

// Root returns the root node.
func (t *Trie) Root() *Node { return t.root }

// Size returns the number of distinct words in the trie.
func (t *Trie) Size() int { return t.size }

// Len is an alias for Size.
func (t *Trie) Len() int { return t.size }

// Contains reports whether word is stored in the trie.
func (t *Trie) Contains(word string) bool {
	node := t.find(word)
	return node != nil && node.isWord && node.prefix == word
}

// Words returns every stored word starting with prefix. An empty prefix
// yields all words. The order is unspecified; each call walks the trie
// again.
func (t *Trie) Words(prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := t.root
		if prefix != "" {
			start = t.find(prefix)
			// A compressed edge may run past the query with different runes.
			if start == nil || !strings.HasPrefix(start.prefix, prefix) {
				return
			}
		}

		stack := []*Node{start}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if cur.isWord && !yield(cur.prefix) {
				return
			}
			for _, child := range cur.children {
				stack = append(stack, child)
			}
		}
	}
}

// All yields every word in the trie.
func (t *Trie) All() iter.Seq[string] {
	return t.Words("")
}

// NodeCount returns the number of nodes, root included.
func (t *Trie) NodeCount() int {
	count := 0
	stack := []*Node{t.root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		for _, child := range cur.children {
			stack = append(stack, child)
		}
	}
	return count
}

// Equal reports whether t and other have the same size and structurally
// equal nodes.
func (t *Trie) Equal(other *Trie) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.size == other.size && t.root.Equal(other.root)
}

// find walks from the root consuming one part per step. It returns the
// node where the walk ends, which may represent a longer string than key,
// or nil when no child matches.
func (t *Trie) find(key string) *Node {
	cur := t.root

	for i := 0; i < len(key); {
		k, _ := firstUnit(key[i:])
		child := cur.Child(k)
		if child == nil {
			return nil
		}
		i += len(child.prefix) - len(cur.prefix)
		cur = child
	}
	return cur
}
