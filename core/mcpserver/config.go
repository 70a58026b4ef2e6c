package mcpserver

// Config holds configuration for the MCP server.
type Config struct {
	// Name is the server name announced during the MCP handshake.
	Name string `mapstructure:"name" default:"minio-mcp"`
	// Version is the server version announced during the MCP handshake.
	Version string `mapstructure:"version" default:"1.0.0"`
	// Transport selects how the server communicates (stdio, http).
	Transport string `mapstructure:"transport" default:"stdio"`
	// Host is the bind address for the http transport.
	Host string `mapstructure:"host" default:"0.0.0.0"`
	// Port is the listen port for the http transport.
	Port string `mapstructure:"port" default:"8000"`
}

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// IsValidTransport checks if the configured transport is supported.
func (c Config) IsValidTransport() bool {
	switch c.Transport {
	case TransportStdio, TransportHTTP:
		return true
	default:
		return false
	}
}

// Addr returns the listen address for the http transport.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}
