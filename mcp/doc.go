// Package mcp wires the n8n gateways into an MCP server. Its central Service
// type resolves configuration, selects the backend once (live n8n client or
// in-memory mock), builds the tool registry and exposes it to viant/mcp.
package mcp
