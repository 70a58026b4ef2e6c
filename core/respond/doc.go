// Package respond builds the uniform response envelope returned by every
// MCP tool.
//
// Tools never return raw SDK payloads or bare strings. Success and failure
// both serialize to the same JSON shape:
//
//	{"response": {...}, "error": "...", "status_code": 200}
//
// The status code classifies the outcome HTTP-style: 200 success, 400 invalid
// arguments, 404 missing bucket/object, 409 conflict, 500 storage fault.
// Failure envelopes are additionally flagged as MCP error results so calling
// agents can detect them without parsing the body.
package respond
