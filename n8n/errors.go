package n8n

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Error kinds reported by Kind.
const (
	KindConnectivity    = "connectivity"
	KindRemote          = "remote"
	KindProtocol        = "protocol"
	KindNotFound        = "not_found"
	KindInvalidArgument = "invalid_argument"
	KindInternal        = "internal"
)

// Resource names used in NotFoundError.
const (
	ResourceWorkflow   = "workflow"
	ResourceExecution  = "execution"
	ResourceCredential = "credential"
)

// ConnectivityError reports that n8n could not be reached or did not answer
// in time.
type ConnectivityError struct {
	Op  string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("%s: n8n unreachable: %v", e.Op, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// RemoteError is a non-2xx answer from n8n.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("n8n returned HTTP %d: %s", e.StatusCode, msg)
}

// Retryable reports whether the status is a transient server failure.
func (e *RemoteError) Retryable() bool { return e.StatusCode >= 500 }

// ProtocolError reports an answer that could not be decoded.
type ProtocolError struct {
	Op  string
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: malformed n8n response: %v", e.Op, e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// NotFoundError reports an unknown identifier.
type NotFoundError struct {
	Resource string
	ID       string
	Err      error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// InvalidArgumentError reports a missing or malformed tool argument.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e.Field == "" {
		return "invalid argument: " + e.Reason
	}
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Reason)
}

// NewNotFound returns a NotFoundError for resource/id.
func NewNotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// NewInvalidArgument returns an InvalidArgumentError.
func NewInvalidArgument(field, reason string) error {
	return &InvalidArgumentError{Field: field, Reason: reason}
}

// IsNotFound reports whether err carries a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsInvalidArgument reports whether err carries an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var target *InvalidArgumentError
	return errors.As(err, &target)
}

// Kind classifies err into one of the Kind* constants. NotFound is checked
// before Remote because a 404 carries both.
func Kind(err error) string {
	var (
		notFound     *NotFoundError
		invalid      *InvalidArgumentError
		connectivity *ConnectivityError
		remote       *RemoteError
		protocol     *ProtocolError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &notFound):
		return KindNotFound
	case errors.As(err, &invalid):
		return KindInvalidArgument
	case errors.As(err, &connectivity):
		return KindConnectivity
	case errors.As(err, &remote):
		return KindRemote
	case errors.As(err, &protocol):
		return KindProtocol
	}
	return KindInternal
}

const redacted = "[REDACTED]"

// Scrub replaces every occurrence of the given non-empty secrets in text.
// Longer secrets go first so that a short one never leaves part of a longer
// one behind.
func Scrub(text string, secrets ...string) string {
	ordered := make([]string, 0, len(secrets))
	for _, secret := range secrets {
		if secret != "" {
			ordered = append(ordered, secret)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool { return len(ordered[i]) > len(ordered[j]) })
	for _, secret := range ordered {
		text = strings.ReplaceAll(text, secret, redacted)
	}
	return text
}

// SecretValues collects the string leaves of a credential payload.
func SecretValues(data map[string]interface{}) []string {
	var result []string
	var walk func(v interface{})
	walk = func(v interface{}) {
		switch actual := v.(type) {
		case string:
			result = append(result, actual)
		case map[string]interface{}:
			for _, item := range actual {
				walk(item)
			}
		case []interface{}:
			for _, item := range actual {
				walk(item)
			}
		}
	}
	walk(data)
	return result
}
