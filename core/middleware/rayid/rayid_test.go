package rayid_test

import (
	"context"
	"testing"

	"minio-mcp/core/middleware/rayid"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFromContext(t *testing.T) {
	assert.Empty(t, rayid.FromContext(context.Background()))

	ctx := rayid.NewContext(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", rayid.FromContext(ctx))
}

func TestMiddleware_AssignsRayID(t *testing.T) {
	mw := rayid.New(zap.NewNop())

	var seen string
	handler := mw(func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		seen = rayid.FromContext(ctx)
		return mcp.NewToolResultText("ok"), nil
	})

	req := mcp.CallToolRequest{}
	req.Params.Name = "list_buckets"

	res, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.NotEmpty(t, seen)

	// A second call gets a fresh id.
	first := seen
	_, err = handler(context.Background(), req)
	require.NoError(t, err)
	assert.NotEqual(t, first, seen)
}
