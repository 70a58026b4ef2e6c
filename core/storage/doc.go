// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the MCP tools need: listing buckets and objects, fetching
// bucket/object metadata, and creating or removing buckets. This abstraction
// supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # Operations
//
//   - ListBuckets: Enumerates all buckets.
//   - BucketExists: Verifies a bucket exists before acting on it.
//   - MakeBucket / RemoveBucket: Bucket lifecycle.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//   - StatObject / GetObject: Object metadata and content.
//   - RemoveObject / RemoveObjects: Single and batch object removal.
//   - GetBucketTagging / GetBucketPolicy / GetBucketEncryption: Bucket details.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "reports")
package storage
