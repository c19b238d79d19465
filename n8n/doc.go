// Package n8n defines the resources exposed by the n8n REST API (workflows,
// executions, credentials), the Backend contract shared by the live HTTP
// client and the in-memory mock, and the error taxonomy both backends report.
package n8n
