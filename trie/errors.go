package trie

import "errors"

var (
	// ErrInvalidMerge is returned by MergeWithChild when the node is a word
	// node or does not have exactly one child.
	ErrInvalidMerge = errors.New("trie: cannot merge a word node or a node without exactly one child")

	// ErrCorrupt is returned by Load when the persisted data cannot be
	// decompressed, decoded or does not describe a valid trie.
	ErrCorrupt = errors.New("trie: corrupt index data")
)
