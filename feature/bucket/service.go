package bucket

import (
	"context"
	"fmt"
	"strings"

	"minio-mcp/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// DefaultListLimit is the number of objects returned when the caller does
// not specify a limit.
const DefaultListLimit = 25

// Service handles bucket operations against the storage backend.
type Service struct {
	client   storage.Client
	logger   *zap.Logger
	endpoint string
	maxList  int
}

// NewService creates a new bucket service.
func NewService(client storage.Client, logger *zap.Logger, cfg storage.Config) *Service {
	maxList := cfg.MaxObjectList
	if maxList <= 0 {
		maxList = 1000
	}
	return &Service{
		client:   client,
		logger:   logger,
		endpoint: cfg.Endpoint,
		maxList:  maxList,
	}
}

// ListBuckets returns all buckets visible to the configured credentials.
func (s *Service) ListBuckets(ctx context.Context) ([]Summary, error) {
	buckets, err := s.client.ListBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}

	summaries := make([]Summary, 0, len(buckets))
	for _, b := range buckets {
		summaries = append(summaries, Summary{
			Name:         b.Name,
			CreationDate: b.CreationDate,
		})
	}
	return summaries, nil
}

// GetBucketInfo returns detailed information about one bucket.
func (s *Service) GetBucketInfo(ctx context.Context, name string) (*Info, error) {
	exists, err := s.client.BucketExists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q: %w", name, ErrNotFound)
	}

	info := &Info{Name: name, Tags: map[string]string{}}

	buckets, err := s.client.ListBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}
	for _, b := range buckets {
		if b.Name == name {
			info.CreationDate = b.CreationDate
			break
		}
	}

	// Tags, policy and encryption are optional bucket attributes. The SDK
	// reports their absence as an error; only real faults are surfaced.
	bucketTags, err := s.client.GetBucketTagging(ctx, name)
	switch {
	case err == nil:
		info.Tags = bucketTags.ToMap()
	case !isAbsentAttribute(err):
		return nil, fmt.Errorf("failed to get bucket tags: %w", err)
	}

	policy, err := s.client.GetBucketPolicy(ctx, name)
	switch {
	case err == nil && policy != "":
		info.Policy = policy
	case err == nil || isAbsentAttribute(err):
		info.Policy = "No policy set"
	default:
		return nil, fmt.Errorf("failed to get bucket policy: %w", err)
	}

	enc, err := s.client.GetBucketEncryption(ctx, name)
	switch {
	case err == nil && len(enc.Rules) > 0:
		info.Encryption = enc.Rules[0].Apply.SSEAlgorithm
	case err == nil || isAbsentAttribute(err):
		info.Encryption = "No encryption set"
	default:
		return nil, fmt.Errorf("failed to get bucket encryption: %w", err)
	}

	for obj := range s.client.ListObjects(ctx, name, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to count objects: %w", obj.Err)
		}
		info.ObjectCount++
		info.TotalSize += obj.Size
	}

	return info, nil
}

// ListObjects returns up to limit objects from the bucket.
// A limit of -1 means "as many as the configured cap allows"; zero or
// negative values fall back to DefaultListLimit.
func (s *Service) ListObjects(ctx context.Context, name, prefix string, limit int, recursive bool) (*ObjectListing, error) {
	exists, err := s.client.BucketExists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q: %w", name, ErrNotFound)
	}

	switch {
	case limit == -1 || limit > s.maxList:
		limit = s.maxList
	case limit <= 0:
		limit = DefaultListLimit
	}

	// Cancel the listing as soon as the limit is reached so the SDK stops
	// paging behind our back.
	listCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	listing := &ObjectListing{
		Bucket:  name,
		Prefix:  prefix,
		Objects: []ObjectSummary{},
	}

	for obj := range s.client.ListObjects(listCtx, name, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: recursive,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		if listing.Count >= limit {
			listing.Truncated = true
			cancel()
			break
		}
		listing.Objects = append(listing.Objects, ObjectSummary{
			Key:          obj.Key,
			LastModified: obj.LastModified,
			Size:         obj.Size,
			ETag:         obj.ETag,
			StorageClass: obj.StorageClass,
		})
		listing.Count++
	}

	return listing, nil
}

// CreateBucket creates a new bucket after validating its name.
func (s *Service) CreateBucket(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("bucket name is empty: %w", ErrInvalidName)
	}
	if strings.Contains(name, "/") {
		return fmt.Errorf("bucket name %q contains '/': %w", name, ErrInvalidName)
	}

	exists, err := s.client.BucketExists(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return fmt.Errorf("bucket %q: %w", name, ErrAlreadyExists)
	}

	if err := s.client.MakeBucket(ctx, name, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	s.logger.Info("Bucket created", zap.String("bucket", name))
	return nil
}

// DeleteBucket removes a bucket. Non-empty buckets are refused unless force
// is set, in which case all objects are removed first.
func (s *Service) DeleteBucket(ctx context.Context, name string, force bool) error {
	exists, err := s.client.BucketExists(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %q: %w", name, ErrNotFound)
	}

	empty, err := s.isEmpty(ctx, name)
	if err != nil {
		return err
	}

	if !empty {
		if !force {
			return fmt.Errorf("bucket %q: %w", name, ErrNotEmpty)
		}
		if err := s.removeAllObjects(ctx, name); err != nil {
			return err
		}
	}

	if err := s.client.RemoveBucket(ctx, name); err != nil {
		return fmt.Errorf("failed to delete bucket: %w", err)
	}

	s.logger.Info("Bucket deleted", zap.String("bucket", name), zap.Bool("force", force))
	return nil
}

// TestConnection verifies the storage backend is reachable.
func (s *Service) TestConnection(ctx context.Context) (*ConnectionStatus, error) {
	buckets, err := s.client.ListBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", s.endpoint, err)
	}
	return &ConnectionStatus{
		Endpoint:    s.endpoint,
		BucketCount: len(buckets),
		Status:      "ok",
	}, nil
}

// isEmpty probes the bucket for at least one object.
func (s *Service) isEmpty(ctx context.Context, name string) (bool, error) {
	probeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	for obj := range s.client.ListObjects(probeCtx, name, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return false, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		cancel()
		return false, nil
	}
	return true, nil
}

// removeAllObjects drains the bucket through the SDK's batch remover.
func (s *Service) removeAllObjects(ctx context.Context, name string) error {
	objectsCh := make(chan minio.ObjectInfo)
	listErr := make(chan error, 1)

	go func() {
		defer close(objectsCh)
		for obj := range s.client.ListObjects(ctx, name, minio.ListObjectsOptions{Recursive: true}) {
			if obj.Err != nil {
				listErr <- obj.Err
				return
			}
			select {
			case objectsCh <- obj:
			case <-ctx.Done():
				return
			}
		}
	}()

	for rmErr := range s.client.RemoveObjects(ctx, name, objectsCh, minio.RemoveObjectsOptions{}) {
		if rmErr.Err != nil {
			return fmt.Errorf("failed to remove object %q: %w", rmErr.ObjectName, rmErr.Err)
		}
	}

	select {
	case err := <-listErr:
		return fmt.Errorf("failed to list objects: %w", err)
	default:
	}
	return nil
}

// isAbsentAttribute reports whether the SDK error means a bucket attribute
// (tags, policy, encryption) is simply not configured.
func isAbsentAttribute(err error) bool {
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchTagSet", "NoSuchTagSetError", "NoSuchBucketPolicy",
		"ServerSideEncryptionConfigurationNotFoundError":
		return true
	}
	return false
}
