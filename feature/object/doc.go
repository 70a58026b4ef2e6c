// Package object implements the object-facing MCP tools: get_object_info and
// download_object.
//
// download_object returns base64-encoded content and is guarded by the
// storage.max_download_bytes setting so a single tool call cannot pull an
// arbitrarily large object into memory.
package object
