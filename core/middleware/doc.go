// Package middleware groups cross-cutting concerns applied to every MCP tool
// call, such as ray-id request tracing.
package middleware
