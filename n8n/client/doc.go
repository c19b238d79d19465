// Package client is the live n8n.Backend: it calls the n8n public REST API
// (/api/v1) with the configured API key and normalises every failure into
// the n8n error taxonomy.
//
// Only GET requests are ever retried; workflow creation, execution and
// deletion are sent exactly once.
package client
