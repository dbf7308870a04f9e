// Package fs provides filesystem abstractions for testability and fault injection.
//
// The package defines two key interfaces:
//
//   - [File]: Represents an open file with read/write/sync capabilities
//   - [FileSystem]: Abstracts filesystem operations (open, remove, rename, etc.)
//
// # Implementations
//
//   - [LocalFS]: Production implementation using standard os package
//   - [FaultyFS]: Test utility for fault injection (simulate I/O errors)
//
// # Atomic Writes
//
// [WriteFileAtomic] writes to a temporary sibling, syncs it and renames it
// over the target, so readers observe either the old or the new content:
//
//	err := fs.WriteFileAtomic(fs.Default, ".suggest-index", data, 0o644)
//
// Tests can inject [FaultyFS] to simulate failures at every step:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule(".tmp", fs.Fault{FailAfterBytes: 16})
//
// This package intentionally does NOT include context.Context parameters.
// Local filesystem operations are not interruptible at the syscall level.
// For remote storage, use [blobstore.BlobStore], which has context support.
package fs
