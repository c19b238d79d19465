// Package config defines the server configuration and how it is assembled:
// built-in defaults, then an optional YAML/JSON file (any afs URL), then
// N8N_MCP_* environment variables, then command line flags.
package config
