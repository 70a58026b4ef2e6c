package respond

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Envelope is the uniform payload wrapper for all tool responses.
type Envelope struct {
	// Response carries the success payload; an empty object on failure.
	Response any `json:"response"`
	// Error is the human-readable error message, omitted on success.
	Error string `json:"error,omitempty"`
	// StatusCode is an HTTP-like classification of the outcome.
	StatusCode int `json:"status_code"`
}

// OK wraps a success payload into an MCP text result.
func OK(payload any) *mcp.CallToolResult {
	return marshal(Envelope{
		Response:   payload,
		StatusCode: 200,
	}, false)
}

// Error wraps a failure into an MCP error result carrying the envelope.
func Error(statusCode int, message string) *mcp.CallToolResult {
	return marshal(Envelope{
		Response:   struct{}{},
		Error:      message,
		StatusCode: statusCode,
	}, true)
}

// Errorf is Error with fmt.Sprintf semantics.
func Errorf(statusCode int, format string, args ...any) *mcp.CallToolResult {
	return Error(statusCode, fmt.Sprintf(format, args...))
}

func marshal(env Envelope, isError bool) *mcp.CallToolResult {
	data, err := json.Marshal(env)
	if err != nil {
		// The envelope holds only JSON-serializable fields; reaching this
		// means a handler put a non-serializable payload in Response.
		return mcp.NewToolResultError(fmt.Sprintf(`{"response":{},"error":%q,"status_code":500}`, err.Error()))
	}
	if isError {
		return mcp.NewToolResultError(string(data))
	}
	return mcp.NewToolResultText(string(data))
}
