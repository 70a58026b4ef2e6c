package respond_test

import (
	"encoding/json"
	"testing"

	"minio-mcp/core/respond"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is not TextContent")
	return tc.Text
}

func TestOK(t *testing.T) {
	res := respond.OK(map[string]any{"buckets": []string{"a", "b"}})
	assert.False(t, res.IsError)

	var env respond.Envelope
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &env))
	assert.Equal(t, 200, env.StatusCode)
	assert.Empty(t, env.Error)
	assert.NotNil(t, env.Response)
}

func TestError(t *testing.T) {
	res := respond.Error(404, "Bucket 'missing' does not exist.")
	assert.True(t, res.IsError)

	var env respond.Envelope
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &env))
	assert.Equal(t, 404, env.StatusCode)
	assert.Equal(t, "Bucket 'missing' does not exist.", env.Error)
}

func TestErrorf(t *testing.T) {
	res := respond.Errorf(409, "Bucket '%s' already exists.", "reports")
	var env respond.Envelope
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &env))
	assert.Equal(t, 409, env.StatusCode)
	assert.Equal(t, "Bucket 'reports' already exists.", env.Error)
}
