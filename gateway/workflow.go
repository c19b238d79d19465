package gateway

import (
	"context"
	"fmt"

	"github.com/viant/n8n-mcp/n8n"
)

// ListWorkflowsInput filters list_workflows.
type ListWorkflowsInput struct {
	ListInput
	Active *bool `json:"active,omitempty"`
}

// WorkflowInput addresses one workflow.
type WorkflowInput struct {
	WorkflowID string `json:"workflow_id" validate:"required,notblank"`
}

// CreateWorkflowInput carries create_workflow arguments.
type CreateWorkflowInput struct {
	Name        string                   `json:"name" validate:"required,notblank"`
	Nodes       []map[string]interface{} `json:"nodes,omitempty"`
	Connections map[string]interface{}   `json:"connections,omitempty"`
	Settings    map[string]interface{}   `json:"settings,omitempty"`
	Active      bool                     `json:"active,omitempty"`
}

// UpdateWorkflowInput carries update_workflow arguments; nil fields stay as
// they are.
type UpdateWorkflowInput struct {
	WorkflowID  string                   `json:"workflow_id" validate:"required,notblank"`
	Name        *string                  `json:"name,omitempty" validate:"omitempty,notblank"`
	Nodes       []map[string]interface{} `json:"nodes,omitempty"`
	Connections map[string]interface{}   `json:"connections,omitempty"`
	Settings    map[string]interface{}   `json:"settings,omitempty"`
}

// ExecuteWorkflowInput carries execute_workflow arguments.
type ExecuteWorkflowInput struct {
	WorkflowID string                 `json:"workflow_id" validate:"required,notblank"`
	Data       map[string]interface{} `json:"data,omitempty"`
}

// Workflows is the workflow gateway.
type Workflows struct {
	backend n8n.WorkflowBackend
}

// NewWorkflows creates a workflow gateway.
func NewWorkflows(backend n8n.WorkflowBackend) *Workflows {
	return &Workflows{backend: backend}
}

func (w *Workflows) List(ctx context.Context, input *ListWorkflowsInput) (*Result, error) {
	if err := check(input); err != nil {
		return nil, err
	}
	page, err := w.backend.ListWorkflows(ctx, n8n.WorkflowFilter{ListOptions: input.options(), Active: input.Active})
	if err != nil {
		return nil, err
	}
	return listResult("workflows", "workflow", page, orEmpty(page.Items)), nil
}

func (w *Workflows) Get(ctx context.Context, input *WorkflowInput) (*Result, error) {
	if err := check(input); err != nil {
		return nil, err
	}
	workflow, err := w.backend.GetWorkflow(ctx, input.WorkflowID)
	if err != nil {
		return nil, err
	}
	return &Result{
		Message: fmt.Sprintf("Workflow %q (%s) is %s", workflow.Name, workflow.ID, state(workflow.Active)),
		Data:    map[string]interface{}{"workflow": workflow},
	}, nil
}

func (w *Workflows) Create(ctx context.Context, input *CreateWorkflowInput) (*Result, error) {
	if err := check(input); err != nil {
		return nil, err
	}
	workflow, err := w.backend.CreateWorkflow(ctx, &n8n.WorkflowCreate{
		Name:        input.Name,
		Nodes:       input.Nodes,
		Connections: input.Connections,
		Settings:    input.Settings,
		Active:      input.Active,
	})
	if err != nil {
		return nil, err
	}
	result := &Result{
		Message: fmt.Sprintf("Created workflow %q with id %s", workflow.Name, workflow.ID),
		Data:    map[string]interface{}{"workflow": workflow},
	}
	if !workflow.Active {
		result.NextSteps = append(result.NextSteps, fmt.Sprintf("Call activate_workflow with workflow_id=%s to enable its triggers", workflow.ID))
	}
	result.NextSteps = append(result.NextSteps, fmt.Sprintf("Call execute_workflow with workflow_id=%s to run it", workflow.ID))
	return result, nil
}

func (w *Workflows) Update(ctx context.Context, input *UpdateWorkflowInput) (*Result, error) {
	if err := check(input); err != nil {
		return nil, err
	}
	update := &n8n.WorkflowUpdate{
		Name:        input.Name,
		Nodes:       input.Nodes,
		Connections: input.Connections,
		Settings:    input.Settings,
	}
	if update.IsEmpty() {
		return nil, n8n.NewInvalidArgument("", "at least one of name, nodes, connections or settings is required")
	}
	workflow, err := w.backend.UpdateWorkflow(ctx, input.WorkflowID, update)
	if err != nil {
		return nil, err
	}
	return &Result{
		Message: fmt.Sprintf("Updated workflow %s", workflow.ID),
		Data:    map[string]interface{}{"workflow": workflow},
	}, nil
}

func (w *Workflows) Delete(ctx context.Context, input *WorkflowInput) (*Result, error) {
	if err := check(input); err != nil {
		return nil, err
	}
	if err := w.backend.DeleteWorkflow(ctx, input.WorkflowID); err != nil {
		return nil, err
	}
	return &Result{
		Message: fmt.Sprintf("Deleted workflow %s", input.WorkflowID),
		Data:    map[string]interface{}{"workflow_id": input.WorkflowID, "deleted": true},
	}, nil
}

// Activate moves a workflow to the active state. Activating an active
// workflow is a no-op.
func (w *Workflows) Activate(ctx context.Context, input *WorkflowInput) (*Result, error) {
	if err := check(input); err != nil {
		return nil, err
	}
	workflow, err := w.backend.ActivateWorkflow(ctx, input.WorkflowID)
	if err != nil {
		return nil, err
	}
	return &Result{
		Message: fmt.Sprintf("Workflow %s is active", workflow.ID),
		Data:    map[string]interface{}{"workflow": workflow},
	}, nil
}

// Deactivate moves a workflow to the inactive state. Deactivating an
// inactive workflow is a no-op.
func (w *Workflows) Deactivate(ctx context.Context, input *WorkflowInput) (*Result, error) {
	if err := check(input); err != nil {
		return nil, err
	}
	workflow, err := w.backend.DeactivateWorkflow(ctx, input.WorkflowID)
	if err != nil {
		return nil, err
	}
	return &Result{
		Message: fmt.Sprintf("Workflow %s is inactive", workflow.ID),
		Data:    map[string]interface{}{"workflow": workflow},
	}, nil
}

func (w *Workflows) Execute(ctx context.Context, input *ExecuteWorkflowInput) (*Result, error) {
	if err := check(input); err != nil {
		return nil, err
	}
	execution, err := w.backend.ExecuteWorkflow(ctx, input.WorkflowID, input.Data)
	if err != nil {
		return nil, err
	}
	return &Result{
		Message: fmt.Sprintf("Workflow %s started execution %s (%s)", execution.WorkflowID, execution.ID, execution.Status),
		Data: map[string]interface{}{
			"execution_id": execution.ID,
			"workflow_id":  execution.WorkflowID,
			"status":       execution.Status,
			"data":         execution.Data,
			"error":        execution.Error,
		},
		NextSteps: []string{fmt.Sprintf("Call get_execution with execution_id=%s to follow it", execution.ID)},
	}, nil
}

func state(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}
