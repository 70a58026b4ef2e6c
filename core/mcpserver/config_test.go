package mcpserver_test

import (
	"testing"

	"minio-mcp/core/mcpserver"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidTransport(t *testing.T) {
	tests := []struct {
		name      string
		transport string
		want      bool
	}{
		{"Stdio", mcpserver.TransportStdio, true},
		{"HTTP", mcpserver.TransportHTTP, true},
		{"SSE", "sse", false},
		{"Invalid", "invalid", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mcpserver.Config{Transport: tt.transport}
			assert.Equal(t, tt.want, c.IsValidTransport())
		})
	}
}

func TestConfig_Addr(t *testing.T) {
	c := mcpserver.Config{Host: "0.0.0.0", Port: "8000"}
	assert.Equal(t, "0.0.0.0:8000", c.Addr())
}
