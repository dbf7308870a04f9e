// Package suggest provides an autocompletion index over a set of words.
//
// Words are stored in a compressed prefix tree (see package trie), which
// answers membership and prefix queries in time proportional to the query
// plus the size of the answer. Indexes are built once, saved to a blob
// store and reopened by short-lived processes such as shell completion
// hooks.
//
// # Quick Start
//
//	idx := suggest.Build([]string{"casa", "casale", "casino", "pippo"})
//
//	idx.Contains("casa")  // true
//	idx.Suggest("cas")    // [casa casale casino]
//
// # Persistence
//
// Save writes the index to any blobstore.BlobStore; Open reads it back:
//
//	store := blobstore.NewLocalStore(".")
//	if _, err := idx.Save(ctx, store, suggest.DefaultIndexName); err != nil { ... }
//
//	idx, err := suggest.Open(ctx, store, suggest.DefaultIndexName)
//	switch {
//	case errors.Is(err, suggest.ErrNotFound):
//	    // no index yet
//	case errors.Is(err, suggest.ErrCorrupt):
//	    // rebuild
//	}
//
// Cloud stores work the same way:
//
//	s3Store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("indexes/"))
//	idx, err := suggest.Open(ctx, s3Store, suggest.DefaultIndexName)
//
// The default format is bzip2-compressed JSON. WithCompression selects
// zstd, lz4, gzip or no compression on save; the format is detected on
// open.
//
// # Observability
//
// WithLogger and WithMetricsCollector attach a structured logger and a
// metrics sink. See package metrics/prometheus for a Prometheus collector.
//
// # Thread Safety
//
// An Index is immutable. All query methods are safe for concurrent use.
package suggest
