package bucket

import (
	"context"
	"errors"
	"fmt"

	"minio-mcp/core/logger"
	"minio-mcp/core/respond"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

const (
	// ToolListBuckets is the name of the tool listing all buckets.
	ToolListBuckets = "list_buckets"
	// ToolGetBucketInfo is the name of the tool describing one bucket.
	ToolGetBucketInfo = "get_bucket_info"
	// ToolListObjects is the name of the tool listing objects in a bucket.
	ToolListObjects = "list_objects"
	// ToolCreateBucket is the name of the tool creating a bucket.
	ToolCreateBucket = "create_bucket"
	// ToolDeleteBucket is the name of the tool deleting a bucket.
	ToolDeleteBucket = "delete_bucket"
	// ToolTestConnection is the name of the connectivity probe tool.
	ToolTestConnection = "test_connection"
)

// Handler exposes bucket operations as MCP tools.
type Handler struct {
	service *Service
}

// NewHandler creates a new tool handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterTools registers the bucket tools on the MCP server.
func (h *Handler) RegisterTools(srv *server.MCPServer) {
	srv.AddTool(mcp.NewTool(ToolListBuckets,
		mcp.WithDescription("List all buckets on the MinIO server with their creation dates."),
	), h.HandleListBuckets)

	srv.AddTool(mcp.NewTool(ToolGetBucketInfo,
		mcp.WithDescription("Get detailed information about a bucket: creation date, tags, policy, encryption, object count and total size."),
		mcp.WithString("bucket_name", mcp.Description("Name of the bucket"), mcp.Required()),
	), h.HandleGetBucketInfo)

	srv.AddTool(mcp.NewTool(ToolListObjects,
		mcp.WithDescription(fmt.Sprintf("List objects in a bucket. Limit defaults to %d; pass -1 to list up to the server-side cap.", DefaultListLimit)),
		mcp.WithString("bucket_name", mcp.Description("Name of the bucket"), mcp.Required()),
		mcp.WithString("prefix", mcp.Description("Only list objects whose keys start with this prefix"), mcp.DefaultString("")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of objects to return (-1 for the cap)"), mcp.DefaultNumber(DefaultListLimit)),
		mcp.WithBoolean("recursive", mcp.Description("Descend into key hierarchies instead of grouping by delimiter"), mcp.DefaultBool(true)),
	), h.HandleListObjects)

	srv.AddTool(mcp.NewTool(ToolCreateBucket,
		mcp.WithDescription("Create a new bucket on the MinIO server."),
		mcp.WithString("bucket_name", mcp.Description("Name of the bucket to create"), mcp.Required()),
	), h.HandleCreateBucket)

	srv.AddTool(mcp.NewTool(ToolDeleteBucket,
		mcp.WithDescription("Delete a bucket. Non-empty buckets require force=true, which removes all objects first."),
		mcp.WithString("bucket_name", mcp.Description("Name of the bucket to delete"), mcp.Required()),
		mcp.WithBoolean("force", mcp.Description("Delete the bucket along with its contents"), mcp.DefaultBool(false)),
	), h.HandleDeleteBucket)

	srv.AddTool(mcp.NewTool(ToolTestConnection,
		mcp.WithDescription("Verify connectivity to the MinIO server and report the number of visible buckets."),
	), h.HandleTestConnection)
}

// HandleListBuckets implements the list_buckets tool.
func (h *Handler) HandleListBuckets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	l := logger.WithRayID(h.service.logger, ctx)

	buckets, err := h.service.ListBuckets(ctx)
	if err != nil {
		l.Error("Listing buckets failed", zap.Error(err))
		return respond.Error(500, err.Error()), nil
	}

	return respond.OK(map[string]any{"buckets": buckets}), nil
}

// HandleGetBucketInfo implements the get_bucket_info tool.
func (h *Handler) HandleGetBucketInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	l := logger.WithRayID(h.service.logger, ctx)

	name := mcp.ParseString(request, "bucket_name", "")
	if name == "" {
		return respond.Error(400, "bucket_name is required"), nil
	}

	info, err := h.service.GetBucketInfo(ctx, name)
	if errors.Is(err, ErrNotFound) {
		return respond.Errorf(404, "Bucket '%s' does not exist.", name), nil
	}
	if err != nil {
		l.Error("Bucket info failed", zap.String("bucket", name), zap.Error(err))
		return respond.Error(500, err.Error()), nil
	}

	return respond.OK(info), nil
}

// HandleListObjects implements the list_objects tool.
func (h *Handler) HandleListObjects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	l := logger.WithRayID(h.service.logger, ctx)

	name := mcp.ParseString(request, "bucket_name", "")
	if name == "" {
		return respond.Error(400, "bucket_name is required"), nil
	}
	prefix := mcp.ParseString(request, "prefix", "")
	limit := mcp.ParseInt(request, "limit", DefaultListLimit)
	recursive := mcp.ParseBoolean(request, "recursive", true)

	listing, err := h.service.ListObjects(ctx, name, prefix, limit, recursive)
	if errors.Is(err, ErrNotFound) {
		return respond.Errorf(404, "Bucket '%s' does not exist.", name), nil
	}
	if err != nil {
		l.Error("Listing objects failed", zap.String("bucket", name), zap.Error(err))
		return respond.Error(500, err.Error()), nil
	}

	return respond.OK(listing), nil
}

// HandleCreateBucket implements the create_bucket tool.
func (h *Handler) HandleCreateBucket(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	l := logger.WithRayID(h.service.logger, ctx)

	name := mcp.ParseString(request, "bucket_name", "")

	err := h.service.CreateBucket(ctx, name)
	switch {
	case errors.Is(err, ErrInvalidName):
		return respond.Error(400, "Bucket name cannot be empty or contain '/' character."), nil
	case errors.Is(err, ErrAlreadyExists):
		return respond.Errorf(409, "Bucket '%s' already exists.", name), nil
	case err != nil:
		l.Error("Bucket creation failed", zap.String("bucket", name), zap.Error(err))
		return respond.Error(500, err.Error()), nil
	}

	return respond.OK(map[string]string{
		"message": fmt.Sprintf("Bucket '%s' created successfully.", name),
	}), nil
}

// HandleDeleteBucket implements the delete_bucket tool.
func (h *Handler) HandleDeleteBucket(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	l := logger.WithRayID(h.service.logger, ctx)

	name := mcp.ParseString(request, "bucket_name", "")
	if name == "" {
		return respond.Error(400, "bucket_name is required"), nil
	}
	force := mcp.ParseBoolean(request, "force", false)

	err := h.service.DeleteBucket(ctx, name, force)
	switch {
	case errors.Is(err, ErrNotFound):
		return respond.Errorf(404, "Bucket '%s' does not exist.", name), nil
	case errors.Is(err, ErrNotEmpty):
		return respond.Errorf(400, "Bucket '%s' is not empty. Use force=true to delete it along with its contents.", name), nil
	case err != nil:
		l.Error("Bucket deletion failed", zap.String("bucket", name), zap.Error(err))
		return respond.Error(500, err.Error()), nil
	}

	return respond.OK(map[string]string{
		"message": fmt.Sprintf("Bucket '%s' deleted successfully.", name),
	}), nil
}

// HandleTestConnection implements the test_connection tool.
func (h *Handler) HandleTestConnection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	l := logger.WithRayID(h.service.logger, ctx)

	status, err := h.service.TestConnection(ctx)
	if err != nil {
		l.Error("Connection test failed", zap.Error(err))
		return respond.Error(500, err.Error()), nil
	}

	return respond.OK(status), nil
}
