package object

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"minio-mcp/core/storage"
	"minio-mcp/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(client storage.Client) *Service {
	return NewService(client, zap.NewNop(), storage.Config{
		Endpoint:         "localhost:9000",
		MaxDownloadBytes: 64,
	})
}

func TestService_GetObjectInfo(t *testing.T) {
	t.Run("BucketMissing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := newTestService(mockClient)
		mockClient.On("BucketExists", mock.Anything, "ghost").Return(false, nil)

		_, err := svc.GetObjectInfo(context.Background(), "ghost", "a.csv")
		assert.ErrorIs(t, err, ErrBucketNotFound)
	})

	t.Run("ObjectMissing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := newTestService(mockClient)
		mockClient.On("BucketExists", mock.Anything, "reports").Return(true, nil)
		mockClient.On("StatObject", mock.Anything, "reports", "ghost.csv", mock.Anything).
			Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound})

		_, err := svc.GetObjectInfo(context.Background(), "reports", "ghost.csv")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := newTestService(mockClient)

		modified := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		mockClient.On("BucketExists", mock.Anything, "reports").Return(true, nil)
		mockClient.On("StatObject", mock.Anything, "reports", "a.csv", mock.Anything).Return(minio.ObjectInfo{
			Size:         42,
			LastModified: modified,
			ETag:         "abc123",
			ContentType:  "text/csv",
			UserMetadata: map[string]string{"Owner": "ops"},
			VersionID:    "v1",
		}, nil)

		info, err := svc.GetObjectInfo(context.Background(), "reports", "a.csv")
		require.NoError(t, err)
		assert.Equal(t, "reports", info.BucketName)
		assert.Equal(t, "a.csv", info.ObjectName)
		assert.Equal(t, int64(42), info.Size)
		assert.Equal(t, modified, info.LastModified)
		assert.Equal(t, "abc123", info.ETag)
		assert.Equal(t, "text/csv", info.ContentType)
		assert.Equal(t, "ops", info.Metadata["Owner"])
		assert.Equal(t, "v1", info.VersionID)
		assert.False(t, info.IsDeleteMarker)
	})
}

func TestService_GetObject(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := newTestService(mockClient)

		content := []byte("hello, bucket")
		mockClient.On("BucketExists", mock.Anything, "reports").Return(true, nil)
		mockClient.On("StatObject", mock.Anything, "reports", "a.txt", mock.Anything).
			Return(minio.ObjectInfo{Size: int64(len(content)), ContentType: "text/plain"}, nil)
		mockClient.On("GetObject", mock.Anything, "reports", "a.txt", mock.Anything).
			Return(io.NopCloser(bytes.NewReader(content)), nil)

		data, info, err := svc.GetObject(context.Background(), "reports", "a.txt")
		require.NoError(t, err)
		assert.Equal(t, content, data)
		assert.Equal(t, "text/plain", info.ContentType)
	})

	t.Run("TooLarge", func(t *testing.T) {
		mockClient := new(mocks.Client)
		svc := newTestService(mockClient)

		mockClient.On("BucketExists", mock.Anything, "reports").Return(true, nil)
		mockClient.On("StatObject", mock.Anything, "reports", "big.bin", mock.Anything).
			Return(minio.ObjectInfo{Size: 1 << 20}, nil)

		_, _, err := svc.GetObject(context.Background(), "reports", "big.bin")
		assert.ErrorIs(t, err, ErrTooLarge)
		mockClient.AssertNotCalled(t, "GetObject")
	})
}
