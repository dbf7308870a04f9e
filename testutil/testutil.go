package testutil

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"strings"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Shuffle returns a shuffled copy of words.
func (r *RNG) Shuffle(words []string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := slices.Clone(words)
	r.rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Words generates n random words over alphabet with lengths in
// [minLen, maxLen]. A small alphabet yields many shared prefixes and
// duplicates, which is what trie tests want.
func (r *RNG) Words(n int, alphabet string, minLen, maxLen int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	runes := []rune(alphabet)
	words := make([]string, n)
	for i := range words {
		length := minLen
		if maxLen > minLen {
			length += r.rand.Intn(maxLen - minLen + 1)
		}
		var b strings.Builder
		for range length {
			b.WriteRune(runes[r.rand.Intn(len(runes))])
		}
		words[i] = b.String()
	}
	return words
}

// NodeIDs generates n test identifiers of the form
// "tests/test_<module>.py::Test<Class>::test_<name>[<param>]".
// Modules are drawn with a Zipfian skew so a few modules hold most tests.
func (r *RNG) NodeIDs(n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	modules := []string{"api", "cli", "trie", "codec", "store", "utils", "models", "views"}
	names := []string{"create", "delete", "list", "load", "save", "parse", "build", "query"}

	ids := make([]string, n)
	for i := range ids {
		module := modules[r.zipfLocked(len(modules), 1.2)]
		var b strings.Builder
		fmt.Fprintf(&b, "tests/test_%s.py::", module)
		if r.rand.Intn(2) == 0 {
			fmt.Fprintf(&b, "Test%s::", strings.ToUpper(module[:1])+module[1:])
		}
		fmt.Fprintf(&b, "test_%s", names[r.rand.Intn(len(names))])
		if r.rand.Intn(3) == 0 {
			fmt.Fprintf(&b, "[%d]", r.rand.Intn(10))
		}
		ids[i] = b.String()
	}
	return ids
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1
		}
	}

	return n - 1
}

// Distinct returns the sorted set of non-empty words.
func Distinct(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			out = append(out, w)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// WithPrefix is a brute-force reference for prefix enumeration: the sorted
// distinct non-empty words starting with prefix.
func WithPrefix(words []string, prefix string) []string {
	var out []string
	for _, w := range Distinct(words) {
		if strings.HasPrefix(w, prefix) {
			out = append(out, w)
		}
	}
	return out
}

// Prefixes returns every distinct prefix of every word, the empty prefix
// included, in sorted order.
func Prefixes(words []string) []string {
	seen := map[string]struct{}{"": {}}
	for _, w := range words {
		runes := []rune(w)
		for i := 1; i <= len(runes); i++ {
			seen[string(runes[:i])] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}
