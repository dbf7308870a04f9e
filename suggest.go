package suggest

import (
	"context"
	"io"
	"iter"
	"slices"
	"time"

	"github.com/hupe1980/suggest/blobstore"
	"github.com/hupe1980/suggest/trie"
)

// DefaultIndexName is the blob name indexes are saved under by default.
const DefaultIndexName = ".suggest-index"

// Index is an immutable autocompletion index.
type Index struct {
	trie *trie.Trie
	opts options
}

// Stats describes the shape of an index.
type Stats struct {
	// Words is the number of distinct words.
	Words int
	// Nodes is the number of trie nodes, root included.
	Nodes int
}

// Build creates an index over words. Duplicates are stored once and the
// empty string is ignored.
func Build(words []string, optFns ...Option) *Index {
	return BuildSeq(slices.Values(words), optFns...)
}

// BuildSeq creates an index over a sequence of words.
func BuildSeq(words iter.Seq[string], optFns ...Option) *Index {
	opts := applyOptions(optFns)
	start := time.Now()

	n := 0
	t := trie.FromSeq(func(yield func(string) bool) {
		for w := range words {
			n++
			if !yield(w) {
				return
			}
		}
	})

	duration := time.Since(start)
	opts.metricsCollector.RecordBuild(n, t.Size(), duration)
	opts.logger.LogBuild(context.Background(), n, t.Size(), duration)

	return &Index{trie: t, opts: opts}
}

// Open loads the index stored under name.
//
// It returns an error matching ErrNotFound if there is no such blob and
// ErrCorrupt if the blob cannot be decoded.
func Open(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (*Index, error) {
	opts := applyOptions(optFns)
	start := time.Now()

	idx, err := open(ctx, store, name, opts)

	opts.metricsCollector.RecordOpen(time.Since(start), err)
	size := 0
	if idx != nil {
		size = idx.Size()
	}
	opts.logger.LogOpen(ctx, name, size, err)

	return idx, err
}

func open(ctx context.Context, store blobstore.BlobStore, name string, opts options) (*Index, error) {
	data, err := blobstore.Get(ctx, store, name)
	if err != nil {
		return nil, translateError(err)
	}

	t, err := trie.Decode(data, opts.trieOptions()...)
	if err != nil {
		return nil, translateError(err)
	}
	return &Index{trie: t, opts: opts}, nil
}

// Read loads an index from r. It is logged like Open, without an index
// name.
func Read(r io.Reader, optFns ...Option) (*Index, error) {
	opts := applyOptions(optFns)
	start := time.Now()

	t, err := trie.Load(r, opts.trieOptions()...)
	err = translateError(err)

	opts.metricsCollector.RecordOpen(time.Since(start), err)
	if err != nil {
		opts.logger.LogOpen(context.Background(), "", 0, err)
		return nil, err
	}
	opts.logger.LogOpen(context.Background(), "", t.Size(), nil)
	return &Index{trie: t, opts: opts}, nil
}

// Save stores the index under name and returns the number of bytes
// stored. The store replaces any previous index atomically.
func (idx *Index) Save(ctx context.Context, store blobstore.BlobStore, name string) (int64, error) {
	start := time.Now()

	n, err := idx.save(ctx, store, name)

	idx.opts.metricsCollector.RecordSave(n, time.Since(start), err)
	idx.opts.logger.LogSave(ctx, name, n, err)

	return n, err
}

func (idx *Index) save(ctx context.Context, store blobstore.BlobStore, name string) (int64, error) {
	data, err := idx.trie.Encode(idx.opts.trieOptions()...)
	if err != nil {
		return 0, err
	}
	if err := store.Put(ctx, name, data); err != nil {
		return 0, err
	}
	return int64(len(data)), nil
}

// WriteTo writes the persisted index to w.
func (idx *Index) WriteTo(w io.Writer) (int64, error) {
	return idx.trie.Save(w, idx.opts.trieOptions()...)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (idx *Index) MarshalBinary() ([]byte, error) {
	return idx.trie.Encode(idx.opts.trieOptions()...)
}

// Contains reports whether word is in the index.
func (idx *Index) Contains(word string) bool {
	return idx.trie.Contains(word)
}

// Words yields every word starting with prefix in unspecified order.
func (idx *Index) Words(prefix string) iter.Seq[string] {
	return idx.trie.Words(prefix)
}

// Suggest returns every word starting with prefix, sorted.
func (idx *Index) Suggest(prefix string) []string {
	start := time.Now()

	words := slices.Sorted(idx.trie.Words(prefix))

	idx.opts.metricsCollector.RecordSuggest(len(words), time.Since(start))
	idx.opts.logger.LogSuggest(context.Background(), prefix, len(words))

	return words
}

// Size returns the number of distinct words.
func (idx *Index) Size() int {
	return idx.trie.Size()
}

// Stats returns the shape of the index.
func (idx *Index) Stats() Stats {
	return Stats{
		Words: idx.trie.Size(),
		Nodes: idx.trie.NodeCount(),
	}
}

// Trie returns the underlying trie.
func (idx *Index) Trie() *trie.Trie {
	return idx.trie
}

// String renders the index as a tree.
func (idx *Index) String() string {
	return idx.trie.String()
}
