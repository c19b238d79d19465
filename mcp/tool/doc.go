// Package tool holds the MCP tool registry: tool definitions with their
// input and output schemas, JSON-schema argument validation, dispatch to
// gateway handlers and the response envelope every tool call returns.
package tool
