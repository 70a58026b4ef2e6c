package object

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"minio-mcp/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service handles object operations against the storage backend.
type Service struct {
	client      storage.Client
	logger      *zap.Logger
	maxDownload int64
}

// NewService creates a new object service.
func NewService(client storage.Client, logger *zap.Logger, cfg storage.Config) *Service {
	maxDownload := cfg.MaxDownloadBytes
	if maxDownload <= 0 {
		maxDownload = 10 * 1024 * 1024
	}
	return &Service{
		client:      client,
		logger:      logger,
		maxDownload: maxDownload,
	}
}

// GetObjectInfo returns the metadata of one object.
func (s *Service) GetObjectInfo(ctx context.Context, bucketName, objectName string) (*Info, error) {
	if err := s.checkBucket(ctx, bucketName); err != nil {
		return nil, err
	}

	stat, err := s.client.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		if isObjectMissing(err) {
			return nil, fmt.Errorf("object %q in bucket %q: %w", objectName, bucketName, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to stat object: %w", err)
	}

	return &Info{
		BucketName:     bucketName,
		ObjectName:     objectName,
		Size:           stat.Size,
		LastModified:   stat.LastModified,
		ETag:           stat.ETag,
		ContentType:    stat.ContentType,
		Metadata:       flattenMetadata(stat.UserMetadata, stat.Metadata),
		VersionID:      stat.VersionID,
		IsDeleteMarker: stat.IsDeleteMarker,
	}, nil
}

// GetObject returns the content of one object, refusing objects larger than
// the configured guard.
func (s *Service) GetObject(ctx context.Context, bucketName, objectName string) ([]byte, *Info, error) {
	info, err := s.GetObjectInfo(ctx, bucketName, objectName)
	if err != nil {
		return nil, nil, err
	}
	if info.Size > s.maxDownload {
		return nil, nil, fmt.Errorf("object is %d bytes, guard is %d: %w", info.Size, s.maxDownload, ErrTooLarge)
	}

	reader, err := s.client.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		if isObjectMissing(err) {
			return nil, nil, fmt.Errorf("object %q in bucket %q: %w", objectName, bucketName, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to read object: %w", err)
	}

	s.logger.Debug("Object downloaded",
		zap.String("bucket", bucketName),
		zap.String("object", objectName),
		zap.Int("bytes", len(data)),
	)
	return data, info, nil
}

func (s *Service) checkBucket(ctx context.Context, bucketName string) error {
	exists, err := s.client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %q: %w", bucketName, ErrBucketNotFound)
	}
	return nil
}

// flattenMetadata merges user metadata with x-amz-meta headers the SDK may
// leave in the raw header map.
func flattenMetadata(user map[string]string, raw http.Header) map[string]string {
	meta := make(map[string]string, len(user))
	for k, v := range user {
		meta[k] = v
	}
	for k, v := range raw {
		const prefix = "X-Amz-Meta-"
		if len(k) > len(prefix) && k[:len(prefix)] == prefix && len(v) > 0 {
			meta[k[len(prefix):]] = v[0]
		}
	}
	return meta
}

func isObjectMissing(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound
}
