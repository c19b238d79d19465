package mcp

import (
	"context"

	"github.com/viant/n8n-mcp/gateway"
	"github.com/viant/n8n-mcp/mcp/tool"
	"github.com/viant/n8n-mcp/n8n"
)

var (
	statuses = func() []string {
		ret := make([]string, len(n8n.ExecutionStatuses))
		for i, status := range n8n.ExecutionStatuses {
			ret[i] = string(status)
		}
		return ret
	}()

	limitProperty  = tool.Integer("Page size (default 50)", 1, n8n.MaxLimit)
	cursorProperty = tool.String("Cursor returned as nextCursor by the previous page")
	countProperty  = tool.Integer("Items on this page", 0, n8n.MaxLimit)
	nextProperty   = tool.String("Cursor of the next page, empty on the last one")

	workflowIDProperty   = tool.ID("Workflow identifier")
	executionIDProperty  = tool.ID("Execution identifier")
	credentialIDProperty = tool.ID("Credential identifier")

	workflowOutput = tool.Schema{Properties: map[string]tool.Property{
		"workflow": tool.Object("Workflow with id, name, active, nodes, connections, settings"),
	}}
)

func deletedOutput(idField string) tool.Schema {
	return tool.Schema{Properties: map[string]tool.Property{
		idField:   tool.String("Identifier of the deleted entity"),
		"deleted": tool.Boolean("Always true"),
	}}
}

func listOutput(key, description string) tool.Schema {
	return tool.Schema{Properties: map[string]tool.Property{
		key:          tool.Array(description, tool.Object("")),
		"count":      countProperty,
		"nextCursor": nextProperty,
	}}
}

// definitions declares every tool the server can expose.
func (s *Service) definitions() []*tool.Definition {
	return []*tool.Definition{
		{
			Name:        "list_workflows",
			Description: "List n8n workflows, optionally only active or inactive ones.",
			Input: tool.Schema{Properties: map[string]tool.Property{
				"limit":  limitProperty,
				"cursor": cursorProperty,
				"active": tool.Boolean("Only workflows with this active flag"),
			}},
			Output:  listOutput("workflows", "Workflows"),
			Handler: tool.Bind(s.workflows.List),
		},
		{
			Name:        "get_workflow",
			Description: "Get one workflow including its nodes and connections.",
			Input: tool.Schema{
				Properties: map[string]tool.Property{"workflow_id": workflowIDProperty},
				Required:   []string{"workflow_id"},
			},
			Output:  workflowOutput,
			Handler: tool.Bind(s.workflows.Get),
		},
		{
			Name:        "create_workflow",
			Description: "Create a workflow from n8n nodes and connections. It stays inactive unless active is true.",
			Input: tool.Schema{
				Properties: map[string]tool.Property{
					"name":        tool.ID("Workflow name"),
					"nodes":       tool.Array("n8n node definitions", tool.Object("")),
					"connections": tool.Object("n8n connections keyed by source node name"),
					"settings":    tool.Object("n8n workflow settings"),
					"active":      tool.Boolean("Activate right after creation"),
				},
				Required: []string{"name"},
			},
			Output:  workflowOutput,
			Handler: tool.Bind(s.workflows.Create),
		},
		{
			Name:        "update_workflow",
			Description: "Update name, nodes, connections or settings of a workflow. Omitted fields are left unchanged.",
			Input: tool.Schema{
				Properties: map[string]tool.Property{
					"workflow_id": workflowIDProperty,
					"name":        tool.ID("New workflow name"),
					"nodes":       tool.Array("Replacement node definitions", tool.Object("")),
					"connections": tool.Object("Replacement connections"),
					"settings":    tool.Object("Replacement settings"),
				},
				Required: []string{"workflow_id"},
			},
			Output:  workflowOutput,
			Handler: tool.Bind(s.workflows.Update),
		},
		{
			Name:        "delete_workflow",
			Description: "Delete a workflow.",
			Input: tool.Schema{
				Properties: map[string]tool.Property{"workflow_id": workflowIDProperty},
				Required:   []string{"workflow_id"},
			},
			Output:  deletedOutput("workflow_id"),
			Handler: tool.Bind(s.workflows.Delete),
		},
		{
			Name:        "activate_workflow",
			Description: "Activate a workflow so its triggers fire. Activating an active workflow changes nothing.",
			Input: tool.Schema{
				Properties: map[string]tool.Property{"workflow_id": workflowIDProperty},
				Required:   []string{"workflow_id"},
			},
			Output:  workflowOutput,
			Handler: tool.Bind(s.workflows.Activate),
		},
		{
			Name:        "deactivate_workflow",
			Description: "Deactivate a workflow. Deactivating an inactive workflow changes nothing.",
			Input: tool.Schema{
				Properties: map[string]tool.Property{"workflow_id": workflowIDProperty},
				Required:   []string{"workflow_id"},
			},
			Output:  workflowOutput,
			Handler: tool.Bind(s.workflows.Deactivate),
		},
		{
			Name:        "execute_workflow",
			Description: "Run a workflow once with optional input data.",
			Input: tool.Schema{
				Properties: map[string]tool.Property{
					"workflow_id": workflowIDProperty,
					"data":        tool.Object("Input passed to the workflow"),
				},
				Required: []string{"workflow_id"},
			},
			Output: tool.Schema{Properties: map[string]tool.Property{
				"execution_id": tool.String("Execution identifier"),
				"workflow_id":  tool.String("Workflow identifier"),
				"status":       tool.Enum("Execution status", statuses...),
				"data":         tool.Object("Run payload"),
				"error":        tool.String("Failure message of the run"),
			}},
			Handler: tool.Bind(s.workflows.Execute),
		},
		{
			Name:        "list_executions",
			Description: "List executions, optionally of one workflow or in one status.",
			Input: tool.Schema{Properties: map[string]tool.Property{
				"workflow_id": workflowIDProperty,
				"status":      tool.Enum("Only executions in this status", statuses...),
				"limit":       limitProperty,
				"cursor":      cursorProperty,
			}},
			Output:  listOutput("executions", "Executions without run payload"),
			Handler: tool.Bind(s.executions.List),
		},
		{
			Name:        "get_execution",
			Description: "Get one execution, with its run payload when include_data is true.",
			Input: tool.Schema{
				Properties: map[string]tool.Property{
					"execution_id": executionIDProperty,
					"include_data": tool.Boolean("Include the run payload"),
				},
				Required: []string{"execution_id"},
			},
			Output: tool.Schema{Properties: map[string]tool.Property{
				"execution": tool.Object("Execution with id, workflowId, status, mode, startedAt, stoppedAt, data, error"),
			}},
			Handler: tool.Bind(s.executions.Get),
		},
		{
			Name:        "delete_execution",
			Description: "Delete an execution record.",
			Input: tool.Schema{
				Properties: map[string]tool.Property{"execution_id": executionIDProperty},
				Required:   []string{"execution_id"},
			},
			Output:  deletedOutput("execution_id"),
			Handler: tool.Bind(s.executions.Delete),
		},
		{
			Name:        "list_credentials",
			Description: "List credentials. Only id, name and type are returned, never secret data.",
			Input: tool.Schema{Properties: map[string]tool.Property{
				"limit":  limitProperty,
				"cursor": cursorProperty,
			}},
			Output:  listOutput("credentials", "Credential metadata"),
			Handler: tool.Bind(s.credentials.List),
		},
		{
			Name:        "get_credential",
			Description: "Get credential metadata. Secret data is never returned.",
			Input: tool.Schema{
				Properties: map[string]tool.Property{"credential_id": credentialIDProperty},
				Required:   []string{"credential_id"},
			},
			Output: tool.Schema{Properties: map[string]tool.Property{
				"credential": tool.Object("Credential id, name, type, createdAt, updatedAt"),
			}},
			Handler: tool.Bind(s.credentials.Get),
		},
		{
			Name:        "create_credential",
			Description: "Create a credential. The data object holds the secret fields of the credential type and is write-only.",
			Input: tool.Schema{
				Properties: map[string]tool.Property{
					"name":            tool.ID("Credential name"),
					"credential_type": tool.ID("n8n credential type, see list_credential_types"),
					"data":            tool.Object("Secret fields, e.g. user and password for httpBasicAuth"),
				},
				Required: []string{"name", "credential_type", "data"},
			},
			Output: tool.Schema{Properties: map[string]tool.Property{
				"credential": tool.Object("Credential id, name, type, createdAt, updatedAt"),
			}},
			Handler: tool.Bind(s.credentials.Create),
		},
		{
			Name:        "delete_credential",
			Description: "Delete a credential.",
			Input: tool.Schema{
				Properties: map[string]tool.Property{"credential_id": credentialIDProperty},
				Required:   []string{"credential_id"},
			},
			Output:  deletedOutput("credential_id"),
			Handler: tool.Bind(s.credentials.Delete),
		},
		{
			Name:        "list_credential_types",
			Description: "List common n8n credential types accepted by create_credential.",
			Output: tool.Schema{Properties: map[string]tool.Property{
				"credential_types": tool.Object("Credential type to description"),
			}},
			Handler: func(ctx context.Context, _ map[string]interface{}) (*gateway.Result, error) {
				return s.credentials.Types(ctx)
			},
		},
	}
}
