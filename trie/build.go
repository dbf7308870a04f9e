package trie

import (
	"iter"
	"slices"
)

// FromWords builds a compressed trie containing words.
//
// Duplicates are stored once and counted once. The empty string is
// ignored. Words are stored byte for byte, invalid UTF-8 included.
func FromWords(words []string) *Trie {
	return FromSeq(slices.Values(words))
}

// FromSeq builds a compressed trie from a sequence of words.
func FromSeq(words iter.Seq[string]) *Trie {
	t := New()
	for word := range words {
		t.insert(word)
	}
	t.compress()
	return t
}

// insert adds word one code unit per node. Used only before compress.
func (t *Trie) insert(word string) {
	if word == "" {
		return
	}

	cur := t.root
	for i := 0; i < len(word); {
		key, size := firstUnit(word[i:])
		if child := cur.Child(key); child != nil {
			cur = child
		} else {
			cur = cur.AddChild(word[i:i+size], false)
		}
		i += size
	}

	if !cur.isWord {
		cur.isWord = true
		t.size++
	}
}

// compress merges every non-root, non-word node that has a single child
// with that child until no such node remains.
func (t *Trie) compress() {
	stack := []*Node{t.root}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.parent == nil || cur.isWord || len(cur.children) != 1 {
			for _, child := range cur.children {
				stack = append(stack, child)
			}
			continue
		}

		if err := cur.MergeWithChild(); err != nil {
			panic(err)
		}
		stack = append(stack, cur)
	}
}
