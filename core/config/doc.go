// Package config loads the application configuration.
//
// Configuration is assembled from defaults declared as struct tags, a local
// .env file (if present), and environment variables. Environment variables
// map to nested keys through an underscore replacer, e.g. STORAGE_ENDPOINT
// sets storage.endpoint and MCP_TRANSPORT sets mcp.transport.
//
// The configuration is read once at startup and treated as immutable for the
// process lifetime.
package config
