package object

import (
	"context"
	"encoding/base64"
	"errors"

	"minio-mcp/core/logger"
	"minio-mcp/core/respond"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

const (
	// ToolGetObjectInfo is the name of the tool describing one object.
	ToolGetObjectInfo = "get_object_info"
	// ToolDownloadObject is the name of the tool returning object content.
	ToolDownloadObject = "download_object"
)

// Handler exposes object operations as MCP tools.
type Handler struct {
	service *Service
}

// NewHandler creates a new tool handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterTools registers the object tools on the MCP server.
func (h *Handler) RegisterTools(srv *server.MCPServer) {
	srv.AddTool(mcp.NewTool(ToolGetObjectInfo,
		mcp.WithDescription("Get metadata for a specific object: size, last-modified, etag, content type, user metadata and version."),
		mcp.WithString("bucket_name", mcp.Description("Name of the bucket containing the object"), mcp.Required()),
		mcp.WithString("object_name", mcp.Description("Key of the object"), mcp.Required()),
	), h.HandleGetObjectInfo)

	srv.AddTool(mcp.NewTool(ToolDownloadObject,
		mcp.WithDescription("Download an object's content, base64-encoded. Objects larger than the configured guard are refused; use get_object_info first to check the size."),
		mcp.WithString("bucket_name", mcp.Description("Name of the bucket containing the object"), mcp.Required()),
		mcp.WithString("object_name", mcp.Description("Key of the object"), mcp.Required()),
	), h.HandleDownloadObject)
}

// HandleGetObjectInfo implements the get_object_info tool.
func (h *Handler) HandleGetObjectInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	l := logger.WithRayID(h.service.logger, ctx)

	bucketName := mcp.ParseString(request, "bucket_name", "")
	objectName := mcp.ParseString(request, "object_name", "")
	if bucketName == "" || objectName == "" {
		return respond.Error(400, "bucket_name and object_name are required"), nil
	}

	info, err := h.service.GetObjectInfo(ctx, bucketName, objectName)
	switch {
	case errors.Is(err, ErrBucketNotFound):
		return respond.Errorf(404, "Bucket '%s' does not exist.", bucketName), nil
	case errors.Is(err, ErrNotFound):
		return respond.Errorf(404, "Object '%s' does not exist in bucket '%s'.", objectName, bucketName), nil
	case err != nil:
		l.Error("Object info failed",
			zap.String("bucket", bucketName),
			zap.String("object", objectName),
			zap.Error(err),
		)
		return respond.Error(500, err.Error()), nil
	}

	return respond.OK(info), nil
}

// HandleDownloadObject implements the download_object tool.
func (h *Handler) HandleDownloadObject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	l := logger.WithRayID(h.service.logger, ctx)

	bucketName := mcp.ParseString(request, "bucket_name", "")
	objectName := mcp.ParseString(request, "object_name", "")
	if bucketName == "" || objectName == "" {
		return respond.Error(400, "bucket_name and object_name are required"), nil
	}

	data, info, err := h.service.GetObject(ctx, bucketName, objectName)
	switch {
	case errors.Is(err, ErrBucketNotFound):
		return respond.Errorf(404, "Bucket '%s' does not exist.", bucketName), nil
	case errors.Is(err, ErrNotFound):
		return respond.Errorf(404, "Object '%s' does not exist in bucket '%s'.", objectName, bucketName), nil
	case errors.Is(err, ErrTooLarge):
		return respond.Error(400, err.Error()), nil
	case err != nil:
		l.Error("Object download failed",
			zap.String("bucket", bucketName),
			zap.String("object", objectName),
			zap.Error(err),
		)
		return respond.Error(500, err.Error()), nil
	}

	return respond.OK(Download{
		BucketName:  bucketName,
		ObjectName:  objectName,
		Size:        info.Size,
		ContentType: info.ContentType,
		Content:     base64.StdEncoding.EncodeToString(data),
		Encoding:    "base64",
	}), nil
}
