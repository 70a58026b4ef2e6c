// Package bucket implements the bucket-facing MCP tools.
//
// It exposes list_buckets, get_bucket_info, list_objects, create_bucket,
// delete_bucket and test_connection. Each tool validates its arguments,
// performs one or two storage client calls, and wraps the outcome in the
// standard response envelope.
//
// # Validation rules
//
//   - list_objects: limit defaults to 25, -1 means "up to the configured cap".
//   - create_bucket: the name must be non-empty and free of '/'.
//   - delete_bucket: non-empty buckets are only removed with force=true.
package bucket
