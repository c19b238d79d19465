package mock

import (
	"context"

	"github.com/viant/n8n-mcp/n8n"
)

// Backend implements n8n.Backend against a Store.
type Backend struct {
	store *Store
}

var _ n8n.Backend = (*Backend)(nil)

// New returns a backend bound to store; a nil store gets a fresh one.
func New(store *Store) *Backend {
	if store == nil {
		store = NewStore()
	}
	return &Backend{store: store}
}

// Store returns the underlying store.
func (b *Backend) Store() *Store { return b.store }

func (b *Backend) ListWorkflows(_ context.Context, filter n8n.WorkflowFilter) (*n8n.Page[*n8n.Workflow], error) {
	s := b.store
	s.mux.Lock()
	defer s.mux.Unlock()
	var items []*n8n.Workflow
	for _, workflow := range s.workflows.list() {
		if filter.Active != nil && workflow.Active != *filter.Active {
			continue
		}
		items = append(items, copyWorkflow(workflow))
	}
	return paginate(items, filter.ListOptions)
}

func (b *Backend) GetWorkflow(_ context.Context, id string) (*n8n.Workflow, error) {
	s := b.store
	s.mux.Lock()
	defer s.mux.Unlock()
	workflow, ok := s.workflows.get(id)
	if !ok {
		return nil, n8n.NewNotFound(n8n.ResourceWorkflow, id)
	}
	return copyWorkflow(workflow), nil
}

func (b *Backend) CreateWorkflow(_ context.Context, create *n8n.WorkflowCreate) (*n8n.Workflow, error) {
	s := b.store
	s.mux.Lock()
	defer s.mux.Unlock()
	now := s.timestamp()
	workflow := &n8n.Workflow{
		ID:          s.workflows.nextID(),
		Name:        create.Name,
		Active:      create.Active,
		Nodes:       copyNodes(create.Nodes),
		Connections: copyMap(create.Connections),
		Settings:    copyMap(create.Settings),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if workflow.Nodes == nil {
		workflow.Nodes = []map[string]interface{}{}
	}
	if workflow.Connections == nil {
		workflow.Connections = map[string]interface{}{}
	}
	s.workflows.put(workflow.ID, workflow)
	return copyWorkflow(workflow), nil
}

func (b *Backend) UpdateWorkflow(_ context.Context, id string, update *n8n.WorkflowUpdate) (*n8n.Workflow, error) {
	s := b.store
	s.mux.Lock()
	defer s.mux.Unlock()
	workflow, ok := s.workflows.get(id)
	if !ok {
		return nil, n8n.NewNotFound(n8n.ResourceWorkflow, id)
	}
	detached := &n8n.WorkflowUpdate{
		Name:        update.Name,
		Nodes:       copyNodes(update.Nodes),
		Connections: copyMap(update.Connections),
		Settings:    copyMap(update.Settings),
	}
	detached.Apply(workflow)
	workflow.UpdatedAt = s.timestamp()
	return copyWorkflow(workflow), nil
}

func (b *Backend) DeleteWorkflow(_ context.Context, id string) error {
	s := b.store
	s.mux.Lock()
	defer s.mux.Unlock()
	if !s.workflows.delete(id) {
		return n8n.NewNotFound(n8n.ResourceWorkflow, id)
	}
	for _, execution := range s.executions.list() {
		if execution.WorkflowID == id {
			s.executions.delete(execution.ID)
		}
	}
	return nil
}

func (b *Backend) ActivateWorkflow(_ context.Context, id string) (*n8n.Workflow, error) {
	return b.setActive(id, true)
}

func (b *Backend) DeactivateWorkflow(_ context.Context, id string) (*n8n.Workflow, error) {
	return b.setActive(id, false)
}

func (b *Backend) setActive(id string, active bool) (*n8n.Workflow, error) {
	s := b.store
	s.mux.Lock()
	defer s.mux.Unlock()
	workflow, ok := s.workflows.get(id)
	if !ok {
		return nil, n8n.NewNotFound(n8n.ResourceWorkflow, id)
	}
	if workflow.Active != active {
		workflow.Active = active
		workflow.UpdatedAt = s.timestamp()
	}
	return copyWorkflow(workflow), nil
}

func (b *Backend) ExecuteWorkflow(_ context.Context, id string, data map[string]interface{}) (*n8n.Execution, error) {
	s := b.store
	s.mux.Lock()
	defer s.mux.Unlock()
	if _, ok := s.workflows.get(id); !ok {
		return nil, n8n.NewNotFound(n8n.ResourceWorkflow, id)
	}
	started := s.timestamp()
	execution := &n8n.Execution{
		ID:         s.executions.nextID(),
		WorkflowID: id,
		Status:     n8n.StatusSucceeded,
		Mode:       "manual",
		Finished:   true,
		StartedAt:  started,
		StoppedAt:  s.timestamp(),
		Data:       copyMap(data),
	}
	s.executions.put(execution.ID, execution)
	return copyExecution(execution), nil
}

func (b *Backend) ListExecutions(_ context.Context, filter n8n.ExecutionFilter) (*n8n.Page[*n8n.Execution], error) {
	s := b.store
	s.mux.Lock()
	defer s.mux.Unlock()
	var items []*n8n.Execution
	for _, execution := range s.executions.list() {
		if filter.WorkflowID != "" && execution.WorkflowID != filter.WorkflowID {
			continue
		}
		if filter.Status != "" && execution.Status != filter.Status {
			continue
		}
		summary := copyExecution(execution)
		summary.Data = nil
		items = append(items, summary)
	}
	return paginate(items, filter.ListOptions)
}

func (b *Backend) GetExecution(_ context.Context, id string, includeData bool) (*n8n.Execution, error) {
	s := b.store
	s.mux.Lock()
	defer s.mux.Unlock()
	execution, ok := s.executions.get(id)
	if !ok {
		return nil, n8n.NewNotFound(n8n.ResourceExecution, id)
	}
	result := copyExecution(execution)
	if !includeData {
		result.Data = nil
	}
	return result, nil
}

func (b *Backend) DeleteExecution(_ context.Context, id string) error {
	s := b.store
	s.mux.Lock()
	defer s.mux.Unlock()
	if !s.executions.delete(id) {
		return n8n.NewNotFound(n8n.ResourceExecution, id)
	}
	return nil
}

func (b *Backend) ListCredentials(_ context.Context, opts n8n.ListOptions) (*n8n.Page[*n8n.Credential], error) {
	s := b.store
	s.mux.Lock()
	defer s.mux.Unlock()
	var items []*n8n.Credential
	for _, stored := range s.credentials.list() {
		items = append(items, copyCredential(stored.credential))
	}
	return paginate(items, opts)
}

func (b *Backend) GetCredential(_ context.Context, id string) (*n8n.Credential, error) {
	s := b.store
	s.mux.Lock()
	defer s.mux.Unlock()
	stored, ok := s.credentials.get(id)
	if !ok {
		return nil, n8n.NewNotFound(n8n.ResourceCredential, id)
	}
	return copyCredential(stored.credential), nil
}

func (b *Backend) CreateCredential(_ context.Context, create *n8n.CredentialCreate) (*n8n.Credential, error) {
	s := b.store
	s.mux.Lock()
	defer s.mux.Unlock()
	now := s.timestamp()
	credential := &n8n.Credential{
		ID:        s.credentials.nextID(),
		Name:      create.Name,
		Type:      create.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.credentials.put(credential.ID, &storedCredential{credential: credential, data: copyMap(create.Data)})
	return copyCredential(credential), nil
}

func (b *Backend) DeleteCredential(_ context.Context, id string) error {
	s := b.store
	s.mux.Lock()
	defer s.mux.Unlock()
	if !s.credentials.delete(id) {
		return n8n.NewNotFound(n8n.ResourceCredential, id)
	}
	return nil
}
