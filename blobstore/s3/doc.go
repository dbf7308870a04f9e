// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("indexes/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	idx, err := suggest.Open(ctx, store, suggest.DefaultIndexName)
//
// # Features
//
//   - CRC32C-checked single-request uploads for typical index sizes
//   - Multipart uploads for large indexes
//   - Range reads and automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
