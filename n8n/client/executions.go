package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/viant/n8n-mcp/n8n"
)

// flexString accepts both JSON strings and numbers; n8n reports execution
// identifiers either way depending on the version.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*f = flexString(text)
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	*f = flexString(number.String())
	return nil
}

// wireExecution is the execution as n8n serialises it.
type wireExecution struct {
	ID          flexString             `json:"id"`
	ExecutionID flexString             `json:"executionId"`
	WorkflowID  flexString             `json:"workflowId"`
	Status      string                 `json:"status"`
	Mode        string                 `json:"mode"`
	Finished    bool                   `json:"finished"`
	StartedAt   *time.Time             `json:"startedAt"`
	StoppedAt   *time.Time             `json:"stoppedAt"`
	Data        map[string]interface{} `json:"data"`
}

func (w *wireExecution) normalize() *n8n.Execution {
	if w == nil {
		return &n8n.Execution{}
	}
	result := &n8n.Execution{
		ID:         string(w.ID),
		WorkflowID: string(w.WorkflowID),
		Mode:       w.Mode,
		Finished:   w.Finished,
		StartedAt:  w.StartedAt,
		StoppedAt:  w.StoppedAt,
		Data:       w.Data,
		Error:      executionError(w.Data),
	}
	if result.ID == "" {
		result.ID = string(w.ExecutionID)
	}
	if status, ok := n8n.ParseExecutionStatus(w.Status); ok {
		result.Status = status
	} else if w.Finished {
		result.Status = n8n.StatusSucceeded
	} else {
		result.Status = n8n.StatusRunning
	}
	return result
}

// executionError digs data.resultData.error.message out of a run payload.
func executionError(data map[string]interface{}) string {
	resultData, _ := data["resultData"].(map[string]interface{})
	errInfo, _ := resultData["error"].(map[string]interface{})
	message, _ := errInfo["message"].(string)
	return message
}

func executionPath(id string) string {
	return "/executions/" + url.PathEscape(id)
}

func (c *Client) ListExecutions(ctx context.Context, filter n8n.ExecutionFilter) (*n8n.Page[*n8n.Execution], error) {
	query := listQuery(filter.ListOptions)
	if filter.WorkflowID != "" {
		query.Set("workflowId", filter.WorkflowID)
	}
	if filter.Status != "" {
		query.Set("status", filter.Status.WireValue())
	}
	var out listEnvelope[*wireExecution]
	if err := c.do(ctx, &request{method: http.MethodGet, path: "/executions", query: query}, &out); err != nil {
		return nil, err
	}
	page := &n8n.Page[*n8n.Execution]{NextCursor: cursorOf(out.NextCursor)}
	for _, item := range out.Data {
		page.Items = append(page.Items, item.normalize())
	}
	return page, nil
}

func (c *Client) GetExecution(ctx context.Context, id string, includeData bool) (*n8n.Execution, error) {
	query := url.Values{}
	query.Set("includeData", strconv.FormatBool(includeData))
	var out entity[wireExecution]
	if err := c.do(ctx, &request{method: http.MethodGet, path: executionPath(id), query: query}, &out); err != nil {
		return nil, notFound(err, n8n.ResourceExecution, id)
	}
	return out.Value.normalize(), nil
}

func (c *Client) DeleteExecution(ctx context.Context, id string) error {
	err := c.do(ctx, &request{method: http.MethodDelete, path: executionPath(id)}, nil)
	return notFound(err, n8n.ResourceExecution, id)
}
