package trie

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Node is a single vertex of the trie.
//
// A node stores the full string from the root down to itself (Prefix) and
// the number of code units it contributes on top of its parent's prefix
// (PartLen). Children are keyed by the first unit of the part they
// contribute.
//
// A code unit is a rune, except that a byte which does not start a valid
// UTF-8 sequence is a unit of its own. Such bytes are keyed by ByteKey, below
// zero, so they never collide with a literal U+FFFD.
type Node struct {
	prefix   string
	partLen  int
	children map[rune]*Node
	isWord   bool

	// parent is only walked during construction. The root has none.
	parent *Node
}

func newRoot() *Node {
	return &Node{}
}

func newNode(prefix string, partLen int, isWord bool) *Node {
	return &Node{
		prefix:  prefix,
		partLen: partLen,
		isWord:  isWord,
	}
}

// Prefix returns the string represented by the path from the root to n.
func (n *Node) Prefix() string { return n.prefix }

// PartLen returns the number of code units n contributes to its prefix.
func (n *Node) PartLen() int { return n.partLen }

// IsWord reports whether the node's prefix is a stored word.
func (n *Node) IsWord() bool { return n.isWord }

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Len returns the number of children.
func (n *Node) Len() int { return len(n.children) }

// Part returns the suffix of the prefix contributed by this node.
// For the root it is the empty string.
func (n *Node) Part() string {
	if n.partLen == 0 {
		return ""
	}
	if n.parent != nil {
		return n.prefix[len(n.parent.prefix):]
	}

	// Detached node: skip the leading units the parent would contribute.
	i := 0
	for range utf8.RuneCountInString(n.prefix) - n.partLen {
		_, size := firstUnit(n.prefix[i:])
		i += size
	}
	return n.prefix[i:]
}

// Child returns the child whose part starts with the unit key, or nil.
func (n *Node) Child(key rune) *Node {
	return n.children[key]
}

// ByteKey returns the child key of a byte that does not start a valid UTF-8
// sequence.
func ByteKey(b byte) rune {
	return -1 - rune(b)
}

// firstUnit returns the key and byte width of the first code unit of s.
// The width is zero for an empty s.
func firstUnit(s string) (rune, int) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return ByteKey(s[0]), 1
	}
	return r, size
}

// Keys returns the child keys in ascending order.
func (n *Node) Keys() []rune {
	keys := make([]rune, 0, len(n.children))
	for k := range n.children {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// AddChild creates a child representing part and registers it under the
// first unit of part, replacing any child already stored under that key.
// part must not be empty.
func (n *Node) AddChild(part string, isWord bool) *Node {
	return n.addChildNode(newNode(n.prefix+part, utf8.RuneCountInString(part), isWord))
}

func (n *Node) addChildNode(child *Node) *Node {
	if child.partLen == 0 {
		panic("trie: child part must not be empty")
	}
	child.parent = n
	first, _ := firstUnit(child.Part())
	if n.children == nil {
		n.children = make(map[rune]*Node)
	}
	n.children[first] = child
	return child
}

// MergeWithChild collapses n with its only child: n takes over the child's
// prefix, word flag and children, and its part grows by the child's part.
func (n *Node) MergeWithChild() error {
	if n.isWord || len(n.children) != 1 {
		return ErrInvalidMerge
	}

	var child *Node
	for _, c := range n.children {
		child = c
	}

	n.partLen += child.partLen
	n.prefix = child.prefix
	n.isWord = child.isWord
	n.children = child.children

	for _, grandchild := range n.children {
		grandchild.parent = n
	}
	child.parent = nil
	child.children = nil
	return nil
}

// Equal reports whether n and other describe the same subtree: equal
// prefix, part length and word flag, the same child keys, and equal
// children under each key.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.prefix != other.prefix || n.partLen != other.partLen || n.isWord != other.isWord {
		return false
	}
	if len(n.children) != len(other.children) {
		return false
	}
	for k, c := range n.children {
		oc, ok := other.children[k]
		if !ok || !c.Equal(oc) {
			return false
		}
	}
	return true
}

func (n *Node) String() string {
	keys := n.Keys()
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = fmt.Sprintf("%q", k)
	}
	return fmt.Sprintf("Node %q -> [%s]", n.prefix, strings.Join(quoted, ", "))
}
