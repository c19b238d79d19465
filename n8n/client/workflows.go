package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/viant/n8n-mcp/n8n"
)

func listQuery(opts n8n.ListOptions) url.Values {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(opts.EffectiveLimit()))
	if opts.Cursor != "" {
		query.Set("cursor", opts.Cursor)
	}
	return query
}

func workflowPath(id string) string {
	return "/workflows/" + url.PathEscape(id)
}

func (c *Client) ListWorkflows(ctx context.Context, filter n8n.WorkflowFilter) (*n8n.Page[*n8n.Workflow], error) {
	query := listQuery(filter.ListOptions)
	if filter.Active != nil {
		query.Set("active", strconv.FormatBool(*filter.Active))
	}
	var out listEnvelope[*n8n.Workflow]
	if err := c.do(ctx, &request{method: http.MethodGet, path: "/workflows", query: query}, &out); err != nil {
		return nil, err
	}
	return &n8n.Page[*n8n.Workflow]{Items: out.Data, NextCursor: cursorOf(out.NextCursor)}, nil
}

func (c *Client) GetWorkflow(ctx context.Context, id string) (*n8n.Workflow, error) {
	var out entity[n8n.Workflow]
	if err := c.do(ctx, &request{method: http.MethodGet, path: workflowPath(id)}, &out); err != nil {
		return nil, notFound(err, n8n.ResourceWorkflow, id)
	}
	return out.Value, nil
}

func (c *Client) CreateWorkflow(ctx context.Context, create *n8n.WorkflowCreate) (*n8n.Workflow, error) {
	body := *create
	if body.Nodes == nil {
		body.Nodes = []map[string]interface{}{}
	}
	if body.Connections == nil {
		body.Connections = map[string]interface{}{}
	}
	if body.Settings == nil {
		body.Settings = map[string]interface{}{}
	}
	var out entity[n8n.Workflow]
	if err := c.do(ctx, &request{method: http.MethodPost, path: "/workflows", body: &body}, &out); err != nil {
		return nil, err
	}
	if !create.Active || out.Value == nil {
		return out.Value, nil
	}
	activated, err := c.ActivateWorkflow(ctx, out.Value.ID)
	if err != nil {
		// the workflow exists on n8n from here on; its id must reach the caller
		return nil, fmt.Errorf("workflow %s created but not activated: %w", out.Value.ID, err)
	}
	return activated, nil
}

// UpdateWorkflow reads the current workflow and writes it back with the
// requested changes, since n8n's PUT replaces the whole definition.
func (c *Client) UpdateWorkflow(ctx context.Context, id string, update *n8n.WorkflowUpdate) (*n8n.Workflow, error) {
	current, err := c.GetWorkflow(ctx, id)
	if err != nil {
		return nil, err
	}
	update.Apply(current)
	body := &n8n.WorkflowCreate{
		Name:        current.Name,
		Nodes:       current.Nodes,
		Connections: current.Connections,
		Settings:    current.Settings,
	}
	if body.Settings == nil {
		body.Settings = map[string]interface{}{}
	}
	var out entity[n8n.Workflow]
	if err = c.do(ctx, &request{method: http.MethodPut, path: workflowPath(id), body: body}, &out); err != nil {
		return nil, notFound(err, n8n.ResourceWorkflow, id)
	}
	return out.Value, nil
}

func (c *Client) DeleteWorkflow(ctx context.Context, id string) error {
	err := c.do(ctx, &request{method: http.MethodDelete, path: workflowPath(id)}, nil)
	return notFound(err, n8n.ResourceWorkflow, id)
}

func (c *Client) ActivateWorkflow(ctx context.Context, id string) (*n8n.Workflow, error) {
	return c.transition(ctx, id, "activate")
}

func (c *Client) DeactivateWorkflow(ctx context.Context, id string) (*n8n.Workflow, error) {
	return c.transition(ctx, id, "deactivate")
}

func (c *Client) transition(ctx context.Context, id, action string) (*n8n.Workflow, error) {
	var out entity[n8n.Workflow]
	if err := c.do(ctx, &request{method: http.MethodPost, path: workflowPath(id) + "/" + action}, &out); err != nil {
		return nil, notFound(err, n8n.ResourceWorkflow, id)
	}
	return out.Value, nil
}

func (c *Client) ExecuteWorkflow(ctx context.Context, id string, data map[string]interface{}) (*n8n.Execution, error) {
	body := map[string]interface{}{}
	if len(data) > 0 {
		body["data"] = data
	}
	var out entity[wireExecution]
	if err := c.do(ctx, &request{method: http.MethodPost, path: workflowPath(id) + "/execute", body: body}, &out); err != nil {
		return nil, notFound(err, n8n.ResourceWorkflow, id)
	}
	execution := out.Value.normalize()
	if execution.WorkflowID == "" {
		execution.WorkflowID = id
	}
	return execution, nil
}
