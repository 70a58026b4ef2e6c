package rayid

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

type contextKey struct{}

// NewContext returns a context carrying the given ray id.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext extracts the ray id from the context, or "" if absent.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}

// New returns tool-handler middleware that assigns a unique ray id to every
// tool call and logs its start and completion.
func New(logg *zap.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			rid := uuid.NewString()
			ctx = NewContext(ctx, rid)

			l := logg.With(
				zap.String("ray_id", rid),
				zap.String("tool", request.Params.Name),
			)
			l.Info("Tool call started")

			start := time.Now()
			result, err := next(ctx, request)
			elapsed := time.Since(start)

			switch {
			case err != nil:
				l.Error("Tool call failed", zap.Error(err), zap.Duration("duration", elapsed))
			case result != nil && result.IsError:
				l.Warn("Tool call returned error result", zap.Duration("duration", elapsed))
			default:
				l.Info("Tool call completed", zap.Duration("duration", elapsed))
			}

			return result, err
		}
	}
}
