// Package mock implements n8n.Backend on top of an in-memory Store so that
// the server can run without a live n8n instance. A Store is an explicit
// handle: every test or process creates its own.
package mock
