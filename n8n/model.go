package n8n

import "time"

// Workflow is an n8n workflow. Nodes, connections and settings are passed
// through untouched.
type Workflow struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Active      bool                     `json:"active"`
	Nodes       []map[string]interface{} `json:"nodes"`
	Connections map[string]interface{}   `json:"connections"`
	Settings    map[string]interface{}   `json:"settings,omitempty"`
	Tags        []Tag                    `json:"tags,omitempty"`
	CreatedAt   *time.Time               `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time               `json:"updatedAt,omitempty"`
}

// Tag is a workflow tag.
type Tag struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// WorkflowCreate carries the fields of a new workflow.
type WorkflowCreate struct {
	Name        string                   `json:"name"`
	Nodes       []map[string]interface{} `json:"nodes"`
	Connections map[string]interface{}   `json:"connections"`
	Settings    map[string]interface{}   `json:"settings"`
	// Active requests activation right after creation; n8n treats the field
	// as read-only on create.
	Active bool `json:"-"`
}

// WorkflowUpdate lists the fields to change; nil fields are left as they are.
type WorkflowUpdate struct {
	Name        *string
	Nodes       []map[string]interface{}
	Connections map[string]interface{}
	Settings    map[string]interface{}
}

// IsEmpty reports whether the update carries no change.
func (u *WorkflowUpdate) IsEmpty() bool {
	return u.Name == nil && u.Nodes == nil && u.Connections == nil && u.Settings == nil
}

// Apply overlays the update on w.
func (u *WorkflowUpdate) Apply(w *Workflow) {
	if u.Name != nil {
		w.Name = *u.Name
	}
	if u.Nodes != nil {
		w.Nodes = u.Nodes
	}
	if u.Connections != nil {
		w.Connections = u.Connections
	}
	if u.Settings != nil {
		w.Settings = u.Settings
	}
}

// Execution is a single workflow run.
type Execution struct {
	ID         string                 `json:"id"`
	WorkflowID string                 `json:"workflowId"`
	Status     ExecutionStatus        `json:"status"`
	Mode       string                 `json:"mode,omitempty"`
	Finished   bool                   `json:"finished"`
	StartedAt  *time.Time             `json:"startedAt,omitempty"`
	StoppedAt  *time.Time             `json:"stoppedAt,omitempty"`
	Data       map[string]interface{} `json:"data,omitempty"`
	Error      string                 `json:"error,omitempty"`
}

// Credential is the read model of an n8n credential. Secret material is not
// part of it.
type Credential struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// CredentialCreate carries a new credential including its secret data.
type CredentialCreate struct {
	Name string                 `json:"name"`
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data"`
}

const (
	// DefaultLimit is the page size used when a list call does not set one.
	DefaultLimit = 50
	// MaxLimit is the largest page size n8n accepts.
	MaxLimit = 250
)

// ListOptions controls paging.
type ListOptions struct {
	Limit  int
	Cursor string
}

// EffectiveLimit returns the page size after defaults and clamping.
func (o ListOptions) EffectiveLimit() int {
	switch {
	case o.Limit <= 0:
		return DefaultLimit
	case o.Limit > MaxLimit:
		return MaxLimit
	}
	return o.Limit
}

// WorkflowFilter narrows ListWorkflows.
type WorkflowFilter struct {
	ListOptions
	Active *bool
}

// ExecutionFilter narrows ListExecutions.
type ExecutionFilter struct {
	ListOptions
	WorkflowID string
	Status     ExecutionStatus
}

// Page is one page of a list result.
type Page[T any] struct {
	Items      []T
	NextCursor string
}
