// Package minio provides a BlobStore implementation using the MinIO client.
//
// MinIO is an S3-compatible object storage system. This package uses the
// official MinIO Go client, which also works with Ceph, SeaweedFS and
// Garage, without pulling in AWS configuration.
//
// # Basic Usage
//
//	store, err := minio.New("localhost:9000", "indexes",
//	    minio.WithCredentials(credentials.NewStaticV4("minioadmin", "minioadmin", "")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	idx, err := suggest.Open(ctx, store, suggest.DefaultIndexName)
//
// Without WithCredentials the MINIO_ACCESS_KEY/MINIO_SECRET_KEY and then
// the AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY environment variables are
// used.
package minio
