package tool

import (
	"encoding/json"

	"github.com/viant/n8n-mcp/gateway"
	"github.com/viant/n8n-mcp/n8n"
)

var errorTypes = []string{
	n8n.KindConnectivity,
	n8n.KindRemote,
	n8n.KindProtocol,
	n8n.KindNotFound,
	n8n.KindInvalidArgument,
	n8n.KindInternal,
}

// Response is the envelope returned by every tool call.
type Response struct {
	Success   bool                   `json:"success"`
	Message   string                 `json:"message,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Error     string                 `json:"error,omitempty"`
	ErrorType string                 `json:"error_type,omitempty"`
	NextSteps []string               `json:"next_steps,omitempty"`
}

// Success wraps a gateway result.
func Success(result *gateway.Result) *Response {
	if result == nil {
		return &Response{Success: true}
	}
	return &Response{
		Success:   true,
		Message:   result.Message,
		Data:      result.Data,
		NextSteps: result.NextSteps,
	}
}

// Failure wraps err, classifying it with n8n.Kind.
func Failure(err error) *Response {
	ret := &Response{
		Success:   false,
		Error:     err.Error(),
		ErrorType: n8n.Kind(err),
	}
	switch ret.ErrorType {
	case n8n.KindNotFound:
		ret.NextSteps = []string{"Check the identifier with the matching list_* tool"}
	case n8n.KindInvalidArgument:
		ret.NextSteps = []string{"Fix the arguments and retry"}
	case n8n.KindConnectivity:
		ret.NextSteps = []string{"Check that n8n is running and reachable, or restart with --mock"}
	}
	return ret
}

// Text returns the JSON form of the response.
func (r *Response) Text() string {
	data, err := json.Marshal(r)
	if err != nil {
		data, _ = json.Marshal(Failure(&n8n.ProtocolError{Op: "encode response", Err: err}))
	}
	return string(data)
}
