package mock

import (
	"github.com/viant/n8n-mcp/internal/conv"
	"github.com/viant/n8n-mcp/n8n"
)

func copyMap(src map[string]interface{}) map[string]interface{} {
	if src == nil {
		return nil
	}
	return *conv.Clone(&src)
}

func copyNodes(src []map[string]interface{}) []map[string]interface{} {
	if src == nil {
		return nil
	}
	return *conv.Clone(&src)
}

func copyWorkflow(w *n8n.Workflow) *n8n.Workflow { return conv.Clone(w) }

func copyExecution(e *n8n.Execution) *n8n.Execution { return conv.Clone(e) }

func copyCredential(c *n8n.Credential) *n8n.Credential {
	return &n8n.Credential{
		ID:        c.ID,
		Name:      c.Name,
		Type:      c.Type,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
