package n8n

import "context"

// WorkflowBackend covers workflow CRUD, activation and manual execution.
type WorkflowBackend interface {
	ListWorkflows(ctx context.Context, filter WorkflowFilter) (*Page[*Workflow], error)
	GetWorkflow(ctx context.Context, id string) (*Workflow, error)
	CreateWorkflow(ctx context.Context, create *WorkflowCreate) (*Workflow, error)
	UpdateWorkflow(ctx context.Context, id string, update *WorkflowUpdate) (*Workflow, error)
	DeleteWorkflow(ctx context.Context, id string) error
	ActivateWorkflow(ctx context.Context, id string) (*Workflow, error)
	DeactivateWorkflow(ctx context.Context, id string) (*Workflow, error)
	ExecuteWorkflow(ctx context.Context, id string, data map[string]interface{}) (*Execution, error)
}

// ExecutionBackend covers execution reads and deletion.
type ExecutionBackend interface {
	ListExecutions(ctx context.Context, filter ExecutionFilter) (*Page[*Execution], error)
	GetExecution(ctx context.Context, id string, includeData bool) (*Execution, error)
	DeleteExecution(ctx context.Context, id string) error
}

// CredentialBackend covers credential management. Implementations never
// return secret material.
type CredentialBackend interface {
	ListCredentials(ctx context.Context, opts ListOptions) (*Page[*Credential], error)
	GetCredential(ctx context.Context, id string) (*Credential, error)
	CreateCredential(ctx context.Context, create *CredentialCreate) (*Credential, error)
	DeleteCredential(ctx context.Context, id string) error
}

// Backend is implemented by the live REST client and by the mock store.
type Backend interface {
	WorkflowBackend
	ExecutionBackend
	CredentialBackend
}
