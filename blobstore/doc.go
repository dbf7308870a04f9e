// Package blobstore provides the storage abstraction persisted indexes are
// saved to and opened from.
//
// BlobStore is the interface for reading and writing whole blobs. Indexes
// are written with a single atomic Put and read back with Get.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem with mmap reads and rename-based writes
//   - MemoryStore: In-memory store for tests
//   - s3.Store: Amazon S3 with checksummed and multipart uploads
//   - minio.Store: MinIO and other S3-compatible storage
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)      // Open for reading
//	    Put(ctx, name, data) error         // Atomic write
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Missing blobs must be reported with an error matching ErrNotFound.
package blobstore
