package n8n

import "strings"

// ExecutionStatus is the normalised execution state reported by both backends.
type ExecutionStatus string

const (
	StatusNew       ExecutionStatus = "new"
	StatusRunning   ExecutionStatus = "running"
	StatusWaiting   ExecutionStatus = "waiting"
	StatusSucceeded ExecutionStatus = "succeeded"
	StatusFailed    ExecutionStatus = "failed"
	StatusCancelled ExecutionStatus = "cancelled"
)

// ExecutionStatuses lists every normalised status.
var ExecutionStatuses = []ExecutionStatus{
	StatusNew, StatusRunning, StatusWaiting, StatusSucceeded, StatusFailed, StatusCancelled,
}

// ParseExecutionStatus maps both normalised names and n8n wire values
// (success, error, crashed, canceled) onto ExecutionStatus. n8n's "unknown"
// is not mapped; callers decide from the finished flag instead.
func ParseExecutionStatus(value string) (ExecutionStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "new":
		return StatusNew, true
	case "running":
		return StatusRunning, true
	case "waiting":
		return StatusWaiting, true
	case "succeeded", "success":
		return StatusSucceeded, true
	case "failed", "error", "crashed":
		return StatusFailed, true
	case "cancelled", "canceled":
		return StatusCancelled, true
	}
	return "", false
}

// WireValue returns the value n8n expects in the executions status filter.
func (s ExecutionStatus) WireValue() string {
	switch s {
	case StatusSucceeded:
		return "success"
	case StatusFailed:
		return "error"
	case StatusCancelled:
		return "canceled"
	}
	return string(s)
}
