package bucket

import (
	"context"
	"encoding/json"
	"testing"

	"minio-mcp/core/respond"
	"minio-mcp/core/storage/mocks"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func callRequest(tool string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = tool
	req.Params.Arguments = args
	return req
}

func decodeEnvelope(t *testing.T, res *mcp.CallToolResult) respond.Envelope {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is not TextContent")

	var env respond.Envelope
	require.NoError(t, json.Unmarshal([]byte(tc.Text), &env))
	return env
}

func TestHandler_ListBuckets(t *testing.T) {
	mockClient := new(mocks.Client)
	h := NewHandler(newTestService(mockClient))
	mockClient.On("ListBuckets", mock.Anything).Return([]minio.BucketInfo{{Name: "reports"}}, nil)

	res, err := h.HandleListBuckets(context.Background(), callRequest(ToolListBuckets, nil))
	require.NoError(t, err)

	env := decodeEnvelope(t, res)
	assert.Equal(t, 200, env.StatusCode)
	assert.False(t, res.IsError)

	payload, ok := env.Response.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, payload, "buckets")
}

func TestHandler_GetBucketInfo_MissingBucket(t *testing.T) {
	mockClient := new(mocks.Client)
	h := NewHandler(newTestService(mockClient))
	mockClient.On("BucketExists", mock.Anything, "ghost").Return(false, nil)

	res, err := h.HandleGetBucketInfo(context.Background(), callRequest(ToolGetBucketInfo, map[string]any{
		"bucket_name": "ghost",
	}))
	require.NoError(t, err)

	env := decodeEnvelope(t, res)
	assert.Equal(t, 404, env.StatusCode)
	assert.Contains(t, env.Error, "ghost")
	assert.True(t, res.IsError)
}

func TestHandler_GetBucketInfo_MissingArgument(t *testing.T) {
	mockClient := new(mocks.Client)
	h := NewHandler(newTestService(mockClient))

	res, err := h.HandleGetBucketInfo(context.Background(), callRequest(ToolGetBucketInfo, nil))
	require.NoError(t, err)

	env := decodeEnvelope(t, res)
	assert.Equal(t, 400, env.StatusCode)
}

func TestHandler_ListObjects(t *testing.T) {
	mockClient := new(mocks.Client)
	h := NewHandler(newTestService(mockClient))
	mockClient.On("BucketExists", mock.Anything, "reports").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "reports", mock.Anything).Return(objectChan(
		minio.ObjectInfo{Key: "a.csv", Size: 5},
	))

	res, err := h.HandleListObjects(context.Background(), callRequest(ToolListObjects, map[string]any{
		"bucket_name": "reports",
		"limit":       float64(10),
	}))
	require.NoError(t, err)

	env := decodeEnvelope(t, res)
	assert.Equal(t, 200, env.StatusCode)
}

func TestHandler_CreateBucket(t *testing.T) {
	t.Run("InvalidName", func(t *testing.T) {
		mockClient := new(mocks.Client)
		h := NewHandler(newTestService(mockClient))

		res, err := h.HandleCreateBucket(context.Background(), callRequest(ToolCreateBucket, map[string]any{
			"bucket_name": "a/b",
		}))
		require.NoError(t, err)
		assert.Equal(t, 400, decodeEnvelope(t, res).StatusCode)
	})

	t.Run("Conflict", func(t *testing.T) {
		mockClient := new(mocks.Client)
		h := NewHandler(newTestService(mockClient))
		mockClient.On("BucketExists", mock.Anything, "reports").Return(true, nil)

		res, err := h.HandleCreateBucket(context.Background(), callRequest(ToolCreateBucket, map[string]any{
			"bucket_name": "reports",
		}))
		require.NoError(t, err)
		assert.Equal(t, 409, decodeEnvelope(t, res).StatusCode)
	})

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.Client)
		h := NewHandler(newTestService(mockClient))
		mockClient.On("BucketExists", mock.Anything, "reports").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "reports", mock.Anything).Return(nil)

		res, err := h.HandleCreateBucket(context.Background(), callRequest(ToolCreateBucket, map[string]any{
			"bucket_name": "reports",
		}))
		require.NoError(t, err)

		env := decodeEnvelope(t, res)
		assert.Equal(t, 200, env.StatusCode)
		assert.False(t, res.IsError)
	})
}

func TestHandler_DeleteBucket(t *testing.T) {
	t.Run("NotEmpty", func(t *testing.T) {
		mockClient := new(mocks.Client)
		h := NewHandler(newTestService(mockClient))
		mockClient.On("BucketExists", mock.Anything, "reports").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "reports", mock.Anything).Return(objectChan(
			minio.ObjectInfo{Key: "a.csv", Size: 1},
		))

		res, err := h.HandleDeleteBucket(context.Background(), callRequest(ToolDeleteBucket, map[string]any{
			"bucket_name": "reports",
		}))
		require.NoError(t, err)

		env := decodeEnvelope(t, res)
		assert.Equal(t, 400, env.StatusCode)
		assert.Contains(t, env.Error, "force")
	})

	t.Run("Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		h := NewHandler(newTestService(mockClient))
		mockClient.On("BucketExists", mock.Anything, "ghost").Return(false, nil)

		res, err := h.HandleDeleteBucket(context.Background(), callRequest(ToolDeleteBucket, map[string]any{
			"bucket_name": "ghost",
		}))
		require.NoError(t, err)
		assert.Equal(t, 404, decodeEnvelope(t, res).StatusCode)
	})
}

func TestHandler_TestConnection(t *testing.T) {
	mockClient := new(mocks.Client)
	h := NewHandler(newTestService(mockClient))
	mockClient.On("ListBuckets", mock.Anything).Return([]minio.BucketInfo{{Name: "a"}, {Name: "b"}}, nil)

	res, err := h.HandleTestConnection(context.Background(), callRequest(ToolTestConnection, nil))
	require.NoError(t, err)

	env := decodeEnvelope(t, res)
	assert.Equal(t, 200, env.StatusCode)

	payload, ok := env.Response.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), payload["bucket_count"])
	assert.Equal(t, "ok", payload["status"])
}
