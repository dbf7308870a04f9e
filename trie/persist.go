package trie

import (
	"encoding/hex"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/hupe1980/suggest/codec"
	"github.com/hupe1980/suggest/compress"
)

// nodeRecord is the persisted form of a Node. Only the part a node
// contributes is stored; prefixes are rebuilt on load.
//
// A part that is not valid UTF-8 is stored in RawPart, since JSON strings
// cannot carry it, and Part is left empty. Children keyed by a single byte
// use the key "%xx" (hex).
type nodeRecord struct {
	Part     string                 `json:"p"`
	RawPart  []byte                 `json:"b,omitempty"`
	PartLen  int                    `json:"l"`
	IsWord   bool                   `json:"w"`
	Children map[string]*nodeRecord `json:"c,omitempty"`
}

// indexRecord is the persisted form of a Trie. Both fields are pointers so
// that a missing field can be told apart from a zero value.
type indexRecord struct {
	Root *nodeRecord `json:"r"`
	Size *int        `json:"s"`
}

type options struct {
	codec       codec.Codec
	compression compress.Type
}

// Option configures Save/Load.
type Option func(*options)

// WithCodec sets the codec used to encode and decode records.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression sets the compression applied by Save. Load detects the
// compression from the data and ignores this option.
func WithCompression(t compress.Type) Option {
	return func(o *options) {
		o.compression = t
	}
}

func applyOptions(optFns []Option) options {
	opts := options{
		codec:       codec.Default,
		compression: compress.Default,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}

// Encode returns the persisted representation of t.
func (t *Trie) Encode(optFns ...Option) ([]byte, error) {
	opts := applyOptions(optFns)

	size := t.size
	data, err := opts.codec.Marshal(&indexRecord{
		Root: toRecord(t.root),
		Size: &size,
	})
	if err != nil {
		return nil, fmt.Errorf("trie: encode: %w", err)
	}

	out, err := compress.Compress(data, opts.compression)
	if err != nil {
		return nil, fmt.Errorf("trie: compress: %w", err)
	}
	return out, nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the default codec
// and compression.
func (t *Trie) MarshalBinary() ([]byte, error) {
	return t.Encode()
}

// Save writes the persisted representation of t to w and returns the
// number of bytes written.
func (t *Trie) Save(w io.Writer, optFns ...Option) (int64, error) {
	data, err := t.Encode(optFns...)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// Decode rebuilds a trie from data produced by Encode. Any failure is
// reported as ErrCorrupt.
func Decode(data []byte, optFns ...Option) (*Trie, error) {
	opts := applyOptions(optFns)

	raw, _, err := compress.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	var rec indexRecord
	if err := opts.codec.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if rec.Root == nil {
		return nil, fmt.Errorf("%w: missing root", ErrCorrupt)
	}
	if rec.Size == nil {
		return nil, fmt.Errorf("%w: missing size", ErrCorrupt)
	}
	if *rec.Size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrCorrupt, *rec.Size)
	}
	if rec.Root.Part != "" || rec.Root.RawPart != nil || rec.Root.PartLen != 0 || rec.Root.IsWord {
		return nil, fmt.Errorf("%w: invalid root", ErrCorrupt)
	}

	t := New()
	t.size = *rec.Size
	for key, child := range rec.Root.Children {
		if err := fromRecord(t.root, key, child); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Load reads a persisted trie from r.
func Load(r io.Reader, optFns ...Option) (*Trie, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data, optFns...)
}

func toRecord(n *Node) *nodeRecord {
	rec := &nodeRecord{
		Part:    n.Part(),
		PartLen: n.partLen,
		IsWord:  n.isWord,
	}
	if !utf8.ValidString(rec.Part) {
		rec.RawPart = []byte(rec.Part)
		rec.Part = ""
	}
	if len(n.children) > 0 {
		rec.Children = make(map[string]*nodeRecord, len(n.children))
		for k, child := range n.children {
			rec.Children[formatKey(k)] = toRecord(child)
		}
	}
	return rec
}

func formatKey(k rune) string {
	if k < 0 {
		return fmt.Sprintf("%%%02x", byte(-1-k))
	}
	return string(k)
}

// parseKey reverses formatKey. It reports false for anything that is not a
// single rune or a "%xx" byte key.
func parseKey(key string) (rune, bool) {
	if k, size := firstUnit(key); size > 0 && size == len(key) && k >= 0 {
		return k, true
	}
	if len(key) == 3 && key[0] == '%' {
		b, err := hex.DecodeString(key[1:])
		if err == nil {
			return ByteKey(b[0]), true
		}
	}
	return 0, false
}

func fromRecord(parent *Node, key string, rec *nodeRecord) error {
	if rec == nil {
		return fmt.Errorf("%w: null node under %q", ErrCorrupt, parent.prefix+key)
	}

	part := rec.Part
	if rec.RawPart != nil {
		if part != "" || utf8.Valid(rec.RawPart) {
			return fmt.Errorf("%w: unexpected raw part %q", ErrCorrupt, rec.RawPart)
		}
		part = string(rec.RawPart)
	}
	if part == "" || utf8.RuneCountInString(part) != rec.PartLen {
		return fmt.Errorf("%w: part %q does not match length %d", ErrCorrupt, part, rec.PartLen)
	}

	k, ok := parseKey(key)
	first, _ := firstUnit(part)
	if !ok || k != first {
		return fmt.Errorf("%w: key %q does not match part %q", ErrCorrupt, key, part)
	}
	if !rec.IsWord && len(rec.Children) == 0 {
		return fmt.Errorf("%w: dangling node %q", ErrCorrupt, parent.prefix+part)
	}

	// Bytes split across parts could decode differently once joined.
	if utf8.RuneCountInString(parent.prefix+part) != utf8.RuneCountInString(parent.prefix)+rec.PartLen {
		return fmt.Errorf("%w: part %q does not start a code unit", ErrCorrupt, part)
	}

	node := parent.AddChild(part, rec.IsWord)
	for childKey, child := range rec.Children {
		if err := fromRecord(node, childKey, child); err != nil {
			return err
		}
	}
	return nil
}
