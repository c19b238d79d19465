package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/n8n-mcp/n8n"
)

const testAPIKey = "n8n_api_0123456789abcdef"

func newTestClient(t *testing.T, handler http.HandlerFunc, options Options) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	options.BaseURL = server.URL
	if options.APIKey == "" {
		options.APIKey = testAPIKey
	}
	c, err := New(options, WithBackOff(func() backoff.BackOff { return &backoff.ZeroBackOff{} }))
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestNew_ValidatesURL(t *testing.T) {
	testCases := []struct {
		description string
		url         string
		expectErr   bool
		expected    string
	}{
		{description: "plain", url: "http://localhost:5678", expected: "http://localhost:5678"},
		{description: "trailing slash", url: "https://n8n.example.com/", expected: "https://n8n.example.com"},
		{description: "api prefix", url: "https://n8n.example.com/api/v1/", expected: "https://n8n.example.com"},
		{description: "scheme", url: "ftp://n8n", expectErr: true},
		{description: "empty", url: "", expectErr: true},
		{description: "no host", url: "http://", expectErr: true},
	}
	for _, testCase := range testCases {
		c, err := New(Options{BaseURL: testCase.url})
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.expected, c.BaseURL(), testCase.description)
	}
}

func TestClient_GetWorkflow(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.EqualValues(t, http.MethodGet, r.Method)
		assert.EqualValues(t, "/api/v1/workflows/abc", r.URL.Path)
		assert.EqualValues(t, testAPIKey, r.Header.Get("X-N8N-API-KEY"))
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"id":          "abc",
			"name":        "demo",
			"active":      true,
			"nodes":       []interface{}{map[string]interface{}{"name": "Start"}},
			"connections": map[string]interface{}{},
		})
	}, Options{})

	workflow, err := c.GetWorkflow(context.Background(), "abc")
	require.NoError(t, err)
	assert.EqualValues(t, "abc", workflow.ID)
	assert.True(t, workflow.Active)
	assert.EqualValues(t, "Start", workflow.Nodes[0]["name"])
}

func TestClient_UnwrapsDataEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"data": map[string]interface{}{"id": "cred-9", "name": "basic", "type": "httpBasicAuth", "data": map[string]interface{}{"password": "leak"}},
		})
	}, Options{})

	credential, err := c.GetCredential(context.Background(), "cred-9")
	require.NoError(t, err)
	assert.EqualValues(t, &n8n.Credential{ID: "cred-9", Name: "basic", Type: "httpBasicAuth"}, credential)
}

func TestClient_ErrorMapping(t *testing.T) {
	testCases := []struct {
		description string
		handler     http.HandlerFunc
		expectKind  string
		expectText  string
	}{
		{
			description: "404 becomes not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
			},
			expectKind: n8n.KindNotFound,
		},
		{
			description: "500 becomes remote error with message",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "database is locked"})
			},
			expectKind: n8n.KindRemote,
			expectText: "database is locked",
		},
		{
			description: "api key echoed by server is redacted",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid key " + r.Header.Get("X-N8N-API-KEY")})
			},
			expectKind: n8n.KindRemote,
			expectText: "[REDACTED]",
		},
		{
			description: "garbage body becomes protocol error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = io.WriteString(w, "<html>")
			},
			expectKind: n8n.KindProtocol,
		},
		{
			description: "empty body becomes protocol error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			expectKind: n8n.KindProtocol,
		},
	}
	for _, testCase := range testCases {
		c := newTestClient(t, testCase.handler, Options{})
		_, err := c.GetWorkflow(context.Background(), "wf")
		require.Error(t, err, testCase.description)
		assert.EqualValues(t, testCase.expectKind, n8n.Kind(err), testCase.description)
		assert.NotContains(t, err.Error(), testAPIKey, testCase.description)
		if testCase.expectText != "" {
			assert.Contains(t, err.Error(), testCase.expectText, testCase.description)
		}
	}
}

func TestClient_Connectivity(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	address := server.URL
	server.Close()

	c, err := New(Options{BaseURL: address, APIKey: testAPIKey})
	require.NoError(t, err)
	_, err = c.ListWorkflows(context.Background(), n8n.WorkflowFilter{})
	assert.EqualValues(t, n8n.KindConnectivity, n8n.Kind(err))
	assert.NotContains(t, err.Error(), testAPIKey)
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, Options{Timeout: 50 * time.Millisecond})
	defer close(release)

	_, err := c.GetExecution(context.Background(), "1", false)
	assert.EqualValues(t, n8n.KindConnectivity, n8n.Kind(err))
}

func TestClient_RetriesOnlyGet(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusBadGateway, map[string]string{"message": "upstream"})
	}, Options{MaxRetries: 2})

	_, err := c.ListWorkflows(context.Background(), n8n.WorkflowFilter{})
	assert.EqualValues(t, n8n.KindRemote, n8n.Kind(err))
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls), "GET is retried MaxRetries times")

	atomic.StoreInt32(&calls, 0)
	_, err = c.ExecuteWorkflow(context.Background(), "wf", nil)
	assert.Error(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "execute must never be retried")

	atomic.StoreInt32(&calls, 0)
	_, err = c.CreateWorkflow(context.Background(), &n8n.WorkflowCreate{Name: "x"})
	assert.Error(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "create must never be retried")
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad"})
	}, Options{MaxRetries: 3})

	_, err := c.ListExecutions(context.Background(), n8n.ExecutionFilter{})
	assert.EqualValues(t, n8n.KindRemote, n8n.Kind(err))
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestClient_RetryRecovers(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"message": "starting"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": []interface{}{}, "nextCursor": nil})
	}, Options{MaxRetries: 1})

	page, err := c.ListCredentials(context.Background(), n8n.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestClient_ListExecutions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.EqualValues(t, "/api/v1/executions", r.URL.Path)
		assert.EqualValues(t, "wf-1", r.URL.Query().Get("workflowId"))
		assert.EqualValues(t, "error", r.URL.Query().Get("status"))
		assert.EqualValues(t, "10", r.URL.Query().Get("limit"))
		assert.EqualValues(t, "c1", r.URL.Query().Get("cursor"))
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"data": []interface{}{
				map[string]interface{}{"id": 1001, "workflowId": "wf-1", "status": "error", "finished": false},
				map[string]interface{}{"id": "1002", "workflowId": "wf-1", "finished": true},
			},
			"nextCursor": "c2",
		})
	}, Options{})

	page, err := c.ListExecutions(context.Background(), n8n.ExecutionFilter{
		ListOptions: n8n.ListOptions{Limit: 10, Cursor: "c1"},
		WorkflowID:  "wf-1",
		Status:      n8n.StatusFailed,
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.EqualValues(t, "1001", page.Items[0].ID)
	assert.EqualValues(t, n8n.StatusFailed, page.Items[0].Status)
	assert.EqualValues(t, n8n.StatusSucceeded, page.Items[1].Status)
	assert.EqualValues(t, "c2", page.NextCursor)
}

func TestClient_ExecuteWorkflow(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.EqualValues(t, http.MethodPost, r.Method)
		assert.EqualValues(t, "/api/v1/workflows/wf-1/execute", r.URL.Path)
		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, map[string]interface{}{"data": map[string]interface{}{"x": float64(1)}}, body)
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": map[string]interface{}{"executionId": "77", "status": "success", "finished": true}})
	}, Options{})

	execution, err := c.ExecuteWorkflow(context.Background(), "wf-1", map[string]interface{}{"x": 1})
	require.NoError(t, err)
	assert.EqualValues(t, "77", execution.ID)
	assert.EqualValues(t, "wf-1", execution.WorkflowID)
	assert.EqualValues(t, n8n.StatusSucceeded, execution.Status)
}

func TestClient_CreateWorkflowWithActivation(t *testing.T) {
	var (
		mux   sync.Mutex
		paths []string
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mux.Lock()
		paths = append(paths, r.Method+" "+r.URL.Path)
		mux.Unlock()
		switch r.URL.Path {
		case "/api/v1/workflows":
			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			_, hasActive := body["active"]
			assert.False(t, hasActive, "active is read-only on create")
			writeJSON(w, http.StatusOK, map[string]interface{}{"id": "new", "name": body["name"], "active": false})
		case "/api/v1/workflows/new/activate":
			writeJSON(w, http.StatusOK, map[string]interface{}{"id": "new", "name": "demo", "active": true})
		}
	}, Options{})

	workflow, err := c.CreateWorkflow(context.Background(), &n8n.WorkflowCreate{Name: "demo", Active: true})
	require.NoError(t, err)
	assert.True(t, workflow.Active)
	mux.Lock()
	defer mux.Unlock()
	assert.EqualValues(t, []string{"POST /api/v1/workflows", "POST /api/v1/workflows/new/activate"}, paths)
}

func TestClient_CreateWorkflowActivationFailureKeepsID(t *testing.T) {
	var created atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/workflows":
			created.Add(1)
			writeJSON(w, http.StatusOK, map[string]interface{}{"id": "42", "name": "demo", "active": false})
		case "/api/v1/workflows/42/activate":
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Workflow has no trigger node"})
		}
	}, Options{})

	workflow, err := c.CreateWorkflow(context.Background(), &n8n.WorkflowCreate{Name: "demo", Active: true})
	require.Error(t, err)
	assert.Nil(t, workflow)
	assert.Contains(t, err.Error(), "workflow 42 created but not activated")
	assert.Contains(t, err.Error(), "Workflow has no trigger node")
	var remote *n8n.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, http.StatusBadRequest, remote.StatusCode)
	assert.EqualValues(t, 1, created.Load(), "create is not retried")
}

func TestClient_UpdateWorkflowMerges(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"id": "wf", "name": "old", "nodes": []interface{}{map[string]interface{}{"name": "A"}},
				"connections": map[string]interface{}{"A": map[string]interface{}{}},
			})
		case http.MethodPut:
			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.EqualValues(t, "new", body["name"])
			assert.Len(t, body["nodes"], 1)
			body["id"] = "wf"
			writeJSON(w, http.StatusOK, body)
		}
	}, Options{})

	name := "new"
	workflow, err := c.UpdateWorkflow(context.Background(), "wf", &n8n.WorkflowUpdate{Name: &name})
	require.NoError(t, err)
	assert.EqualValues(t, "new", workflow.Name)
}

func TestClient_CreateCredentialScrubsSecrets(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "rejected payload " + string(data)})
	}, Options{})

	_, err := c.CreateCredential(context.Background(), &n8n.CredentialCreate{
		Name: "basic",
		Type: "httpBasicAuth",
		Data: map[string]interface{}{"user": "admin", "password": "correct-horse-battery"},
	})
	require.Error(t, err)
	assert.EqualValues(t, n8n.KindRemote, n8n.Kind(err))
	assert.NotContains(t, err.Error(), "correct-horse-battery")
	assert.True(t, strings.Contains(err.Error(), "[REDACTED]"))
}

func TestClient_DeleteNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.EqualValues(t, http.MethodDelete, r.Method)
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
	}, Options{})
	assert.True(t, n8n.IsNotFound(c.DeleteExecution(context.Background(), "1")))
	assert.True(t, n8n.IsNotFound(c.DeleteCredential(context.Background(), "1")))
	assert.True(t, n8n.IsNotFound(c.DeleteWorkflow(context.Background(), "1")))
}

func TestClient_RateLimitHonoursContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": []interface{}{}})
	}, Options{RateLimit: 0.001})

	_, err := c.ListWorkflows(context.Background(), n8n.WorkflowFilter{})
	require.NoError(t, err, "first request uses the burst")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = c.ListWorkflows(ctx, n8n.WorkflowFilter{})
	assert.EqualValues(t, n8n.KindConnectivity, n8n.Kind(err))
}
