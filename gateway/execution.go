package gateway

import (
	"context"
	"fmt"

	"github.com/viant/n8n-mcp/n8n"
)

// ListExecutionsInput filters list_executions.
type ListExecutionsInput struct {
	ListInput
	WorkflowID string `json:"workflow_id,omitempty" validate:"omitempty,notblank"`
	Status     string `json:"status,omitempty" validate:"omitempty,oneof=new running waiting succeeded failed cancelled"`
}

// GetExecutionInput carries get_execution arguments.
type GetExecutionInput struct {
	ExecutionID string `json:"execution_id" validate:"required,notblank"`
	IncludeData bool   `json:"include_data,omitempty"`
}

// ExecutionInput addresses one execution.
type ExecutionInput struct {
	ExecutionID string `json:"execution_id" validate:"required,notblank"`
}

// Executions is the execution gateway.
type Executions struct {
	backend n8n.ExecutionBackend
}

// NewExecutions creates an execution gateway.
func NewExecutions(backend n8n.ExecutionBackend) *Executions {
	return &Executions{backend: backend}
}

func (e *Executions) List(ctx context.Context, input *ListExecutionsInput) (*Result, error) {
	if err := check(input); err != nil {
		return nil, err
	}
	filter := n8n.ExecutionFilter{ListOptions: input.options(), WorkflowID: input.WorkflowID}
	if input.Status != "" {
		filter.Status, _ = n8n.ParseExecutionStatus(input.Status)
	}
	page, err := e.backend.ListExecutions(ctx, filter)
	if err != nil {
		return nil, err
	}
	return listResult("executions", "execution", page, orEmpty(page.Items)), nil
}

func (e *Executions) Get(ctx context.Context, input *GetExecutionInput) (*Result, error) {
	if err := check(input); err != nil {
		return nil, err
	}
	execution, err := e.backend.GetExecution(ctx, input.ExecutionID, input.IncludeData)
	if err != nil {
		return nil, err
	}
	result := &Result{
		Message: fmt.Sprintf("Execution %s of workflow %s is %s", execution.ID, execution.WorkflowID, execution.Status),
		Data:    map[string]interface{}{"execution": execution},
	}
	if !input.IncludeData {
		result.NextSteps = []string{"Pass include_data=true to read the run payload"}
	}
	return result, nil
}

func (e *Executions) Delete(ctx context.Context, input *ExecutionInput) (*Result, error) {
	if err := check(input); err != nil {
		return nil, err
	}
	if err := e.backend.DeleteExecution(ctx, input.ExecutionID); err != nil {
		return nil, err
	}
	return &Result{
		Message: fmt.Sprintf("Deleted execution %s", input.ExecutionID),
		Data:    map[string]interface{}{"execution_id": input.ExecutionID, "deleted": true},
	}, nil
}
