package object

import (
	"minio-mcp/core/storage"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Feature wires the object tools into the feature loader.
type Feature struct {
	handler *Handler
}

// NewFeature creates the object feature.
func NewFeature(client storage.Client, logg *zap.Logger, cfg storage.Config) *Feature {
	return &Feature{
		handler: NewHandler(NewService(client, logg, cfg)),
	}
}

// Name returns the feature identifier.
func (f *Feature) Name() string {
	return "object"
}

// IsEnabled reports whether the feature should be loaded.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the object tools onto the MCP server.
func (f *Feature) Load(srv *server.MCPServer) error {
	f.handler.RegisterTools(srv)
	return nil
}
