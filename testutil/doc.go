// Package testutil provides testing utilities for suggest.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic generators for word sets shaped like the
// identifiers an autocompletion index usually holds.
//
// # Random Words
//
//	rng := testutil.NewRNG(seed)
//	words := rng.Words(1000, "abc", 1, 8) // short words over a small alphabet
//	ids := rng.NodeIDs(500)                // "tests/test_x.py::TestY::test_z[3]"
//
// # Reference Answers
//
//	want := testutil.WithPrefix(words, "ab") // brute-force prefix filter
package testutil
