// Package hash computes the checksums attached to uploaded index blobs.
//
// Object stores that support it verify a CRC32-Castagnoli (CRC32C) sum on
// upload, so a truncated or corrupted index never replaces a good one.
package hash
