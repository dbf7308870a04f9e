// Package mmap maps index files read-only into memory.
//
// A persisted index is read front to back exactly once on load, so the
// local blob store maps it and hints sequential access instead of copying
// it through a read buffer:
//
//	m, err := mmap.Open(".suggest-index")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with madvise(2) for access hints
//   - Windows: CreateFileMapping/MapViewOfFile (Advise is a no-op)
//
// # Thread Safety
//
// A Mapping is safe for concurrent reads. Close is idempotent, but callers
// must not touch the slice returned by Bytes after Close returns.
package mmap
