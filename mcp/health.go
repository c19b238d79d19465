package mcp

import (
	"context"
	"time"

	"github.com/viant/n8n-mcp/n8n"
)

// Health describes the running configuration and, in live mode, whether n8n
// answered.
type Health struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	URL       string `json:"n8nUrl"`
	MockMode  bool   `json:"mockMode"`
	Tools     int    `json:"tools"`
	Reachable *bool  `json:"reachable,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorType string `json:"errorType,omitempty"`
	Elapsed   string `json:"elapsed,omitempty"`
}

// Healthy reports whether the backend can serve requests.
func (h *Health) Healthy() bool {
	return h.Reachable == nil || *h.Reachable
}

// Health probes n8n with a one item workflow list. The mock backend is always
// healthy and is not probed.
func (s *Service) Health(ctx context.Context) *Health {
	ret := &Health{
		Name:     Name,
		Version:  Version,
		URL:      s.config.N8N.URL,
		MockMode: s.config.N8N.MockMode,
		Tools:    s.registry.Len(),
	}
	if s.config.N8N.MockMode {
		return ret
	}
	started := time.Now()
	_, err := s.backend.ListWorkflows(ctx, n8n.WorkflowFilter{ListOptions: n8n.ListOptions{Limit: 1}})
	ret.Elapsed = time.Since(started).String()
	reachable := err == nil
	ret.Reachable = &reachable
	if err != nil {
		ret.Error = err.Error()
		ret.ErrorType = n8n.Kind(err)
	}
	return ret
}
