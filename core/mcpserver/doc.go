// Package mcpserver holds the configuration for the MCP serving surface.
//
// The server speaks the Model Context Protocol over one of two transports:
//   - stdio: the default, used when a calling agent launches the bridge as a
//     subprocess.
//   - http: the streamable HTTP transport, for agents connecting over the
//     network.
package mcpserver
