// Package cmd implements the n8n-mcp command-line interface. Each file in
// this directory registers a single sub-command (serve, list-tools, tool,
// exec, health). Configuration resolution and service initialisation shared
// by all commands live in shared.go.
package cmd
