// Package trie implements a compressed prefix tree (radix tree) for string
// membership and prefix enumeration.
//
// A Trie is built once from a word collection and is read-only afterwards:
//
//	t := trie.FromWords([]string{"casa", "casale", "casino"})
//	t.Contains("casa")         // true
//	for w := range t.Words("casa") {
//	    fmt.Println(w)         // casa, casale (unordered)
//	}
//
// # Construction
//
// Construction runs in two phases. Words are first inserted one code unit
// at a time into an uncompressed trie; a single compression pass then
// collapses every chain of non-word, single-child nodes into one node that
// carries a multi-unit part. The root is never collapsed.
//
// A code unit is a rune. Words are stored byte for byte: a byte that does
// not start a valid UTF-8 sequence is a unit of its own, keyed by ByteKey.
//
// # Persistence
//
// Save and Load convert a Trie to and from a recursive record format:
//
//	node  := {"p": part, "l": part_len, "w": is_word, "c": {first-unit: node}}
//	index := {"r": node, "s": size}
//
// Parts that are not valid UTF-8 are stored base64-encoded under "b", and
// their keys are written as "%xx".
//
// The records are encoded with a codec.Codec and passed through a
// compress.Type. Load detects the compression from the stream itself.
//
// # Thread Safety
//
// A Trie returned by FromWords or Load is safe for concurrent readers.
package trie
