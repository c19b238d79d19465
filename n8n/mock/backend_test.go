package mock

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/n8n-mcp/n8n"
)

func fixedClock() func() time.Time {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	return func() time.Time { return at }
}

func TestBackend_WorkflowRoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := New(NewStore(WithClock(fixedClock())))

	created, err := backend.CreateWorkflow(ctx, &n8n.WorkflowCreate{
		Name:  "demo",
		Nodes: []map[string]interface{}{{"name": "Start", "type": "n8n-nodes-base.manualTrigger"}},
	})
	require.NoError(t, err)
	assert.EqualValues(t, "wf_1", created.ID)
	assert.False(t, created.Active)

	fetched, err := backend.GetWorkflow(ctx, created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, created, fetched)

	fetched.Nodes[0]["name"] = "mutated"
	again, err := backend.GetWorkflow(ctx, created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, "Start", again.Nodes[0]["name"], "store must not share state with callers")
}

func TestBackend_Activation(t *testing.T) {
	ctx := context.Background()
	backend := New(nil)
	created, err := backend.CreateWorkflow(ctx, &n8n.WorkflowCreate{Name: "demo"})
	require.NoError(t, err)

	deactivated, err := backend.DeactivateWorkflow(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.Active)

	for i := 0; i < 2; i++ {
		activated, err := backend.ActivateWorkflow(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, activated.Active)
	}
	_, err = backend.ActivateWorkflow(ctx, "wf_404")
	assert.True(t, n8n.IsNotFound(err))
}

func TestBackend_UpdateWorkflow(t *testing.T) {
	ctx := context.Background()
	backend := New(nil)
	created, err := backend.CreateWorkflow(ctx, &n8n.WorkflowCreate{Name: "demo", Settings: map[string]interface{}{"timezone": "UTC"}})
	require.NoError(t, err)

	name := "renamed"
	updated, err := backend.UpdateWorkflow(ctx, created.ID, &n8n.WorkflowUpdate{Name: &name})
	require.NoError(t, err)
	assert.EqualValues(t, "renamed", updated.Name)
	assert.EqualValues(t, "UTC", updated.Settings["timezone"])

	_, err = backend.UpdateWorkflow(ctx, "wf_9", &n8n.WorkflowUpdate{Name: &name})
	assert.True(t, n8n.IsNotFound(err))
}

func TestBackend_DeleteThenGet(t *testing.T) {
	ctx := context.Background()
	backend := New(nil)

	workflow, err := backend.CreateWorkflow(ctx, &n8n.WorkflowCreate{Name: "demo"})
	require.NoError(t, err)
	execution, err := backend.ExecuteWorkflow(ctx, workflow.ID, nil)
	require.NoError(t, err)
	credential, err := backend.CreateCredential(ctx, &n8n.CredentialCreate{Name: "basic", Type: "httpBasicAuth", Data: map[string]interface{}{"password": "s3cret"}})
	require.NoError(t, err)

	require.NoError(t, backend.DeleteExecution(ctx, execution.ID))
	_, err = backend.GetExecution(ctx, execution.ID, false)
	assert.True(t, n8n.IsNotFound(err))

	require.NoError(t, backend.DeleteCredential(ctx, credential.ID))
	_, err = backend.GetCredential(ctx, credential.ID)
	assert.True(t, n8n.IsNotFound(err))

	require.NoError(t, backend.DeleteWorkflow(ctx, workflow.ID))
	_, err = backend.GetWorkflow(ctx, workflow.ID)
	assert.True(t, n8n.IsNotFound(err))

	assert.True(t, n8n.IsNotFound(backend.DeleteWorkflow(ctx, workflow.ID)))
	assert.True(t, n8n.IsNotFound(backend.DeleteExecution(ctx, execution.ID)))
	assert.True(t, n8n.IsNotFound(backend.DeleteCredential(ctx, credential.ID)))
}

func TestBackend_IdentifiersAreNotReused(t *testing.T) {
	ctx := context.Background()
	backend := New(nil)
	first, err := backend.CreateWorkflow(ctx, &n8n.WorkflowCreate{Name: "a"})
	require.NoError(t, err)
	require.NoError(t, backend.DeleteWorkflow(ctx, first.ID))
	second, err := backend.CreateWorkflow(ctx, &n8n.WorkflowCreate{Name: "b"})
	require.NoError(t, err)
	assert.EqualValues(t, "wf_1", first.ID)
	assert.EqualValues(t, "wf_2", second.ID)
}

func TestBackend_Execute(t *testing.T) {
	ctx := context.Background()
	backend := New(nil)
	workflow, err := backend.CreateWorkflow(ctx, &n8n.WorkflowCreate{Name: "demo"})
	require.NoError(t, err)

	execution, err := backend.ExecuteWorkflow(ctx, workflow.ID, map[string]interface{}{"k": "v"})
	require.NoError(t, err)
	assert.EqualValues(t, "ex_1", execution.ID)
	assert.EqualValues(t, n8n.StatusSucceeded, execution.Status)

	fetched, err := backend.GetExecution(ctx, execution.ID, true)
	require.NoError(t, err)
	assert.EqualValues(t, n8n.StatusSucceeded, fetched.Status)
	assert.EqualValues(t, "v", fetched.Data["k"])

	summary, err := backend.GetExecution(ctx, execution.ID, false)
	require.NoError(t, err)
	assert.Nil(t, summary.Data)

	_, err = backend.ExecuteWorkflow(ctx, "wf_missing", nil)
	assert.True(t, n8n.IsNotFound(err))

	require.NoError(t, backend.DeleteWorkflow(ctx, workflow.ID))
	_, err = backend.GetExecution(ctx, execution.ID, false)
	assert.True(t, n8n.IsNotFound(err), "executions go away with their workflow")
}

func TestBackend_ListPagingAndFilters(t *testing.T) {
	ctx := context.Background()
	backend := New(nil)
	for i := 0; i < 5; i++ {
		workflow, err := backend.CreateWorkflow(ctx, &n8n.WorkflowCreate{Name: fmt.Sprintf("wf%d", i)})
		require.NoError(t, err)
		if i%2 == 0 {
			_, err = backend.ActivateWorkflow(ctx, workflow.ID)
			require.NoError(t, err)
		}
	}

	page, err := backend.ListWorkflows(ctx, n8n.WorkflowFilter{ListOptions: n8n.ListOptions{Limit: 2}})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.EqualValues(t, "2", page.NextCursor)

	page, err = backend.ListWorkflows(ctx, n8n.WorkflowFilter{ListOptions: n8n.ListOptions{Limit: 2, Cursor: page.NextCursor}})
	require.NoError(t, err)
	assert.EqualValues(t, "wf_3", page.Items[0].ID)

	page, err = backend.ListWorkflows(ctx, n8n.WorkflowFilter{ListOptions: n8n.ListOptions{Limit: 2, Cursor: "4"}})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Empty(t, page.NextCursor)

	active := true
	page, err = backend.ListWorkflows(ctx, n8n.WorkflowFilter{Active: &active})
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)

	_, err = backend.ListWorkflows(ctx, n8n.WorkflowFilter{ListOptions: n8n.ListOptions{Cursor: "abc"}})
	assert.True(t, n8n.IsInvalidArgument(err))

	_, err = backend.ExecuteWorkflow(ctx, "wf_1", nil)
	require.NoError(t, err)
	_, err = backend.ExecuteWorkflow(ctx, "wf_2", nil)
	require.NoError(t, err)
	executions, err := backend.ListExecutions(ctx, n8n.ExecutionFilter{WorkflowID: "wf_2"})
	require.NoError(t, err)
	require.Len(t, executions.Items, 1)
	assert.EqualValues(t, "ex_2", executions.Items[0].ID)

	executions, err = backend.ListExecutions(ctx, n8n.ExecutionFilter{Status: n8n.StatusFailed})
	require.NoError(t, err)
	assert.Empty(t, executions.Items)
}

func TestBackend_CredentialsNeverExposeSecrets(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	backend := New(store)
	created, err := backend.CreateCredential(ctx, &n8n.CredentialCreate{
		Name: "api",
		Type: "httpHeaderAuth",
		Data: map[string]interface{}{"name": "X-Key", "value": "very-secret"},
	})
	require.NoError(t, err)
	assert.EqualValues(t, "cred_1", created.ID)

	page, err := backend.ListCredentials(ctx, n8n.ListOptions{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.EqualValues(t, &n8n.Credential{ID: created.ID, Name: "api", Type: "httpHeaderAuth", CreatedAt: created.CreatedAt, UpdatedAt: created.UpdatedAt}, page.Items[0])

	stored, _ := store.credentials.get(created.ID)
	assert.EqualValues(t, "very-secret", stored.data["value"])
}

func TestBackend_ConcurrentMutations(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	backend := New(store)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			workflow, err := backend.CreateWorkflow(ctx, &n8n.WorkflowCreate{Name: "parallel"})
			if !assert.NoError(t, err) {
				return
			}
			_, err = backend.ExecuteWorkflow(ctx, workflow.ID, nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	workflows, executions, credentials := store.Counts()
	assert.EqualValues(t, 20, workflows)
	assert.EqualValues(t, 20, executions)
	assert.EqualValues(t, 0, credentials)
}

func TestBackend_DeleteWorkflowRemovesExecutions(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	backend := New(store)

	kept, err := backend.CreateWorkflow(ctx, &n8n.WorkflowCreate{Name: "kept"})
	require.NoError(t, err)
	removed, err := backend.CreateWorkflow(ctx, &n8n.WorkflowCreate{Name: "removed"})
	require.NoError(t, err)
	keptRun, err := backend.ExecuteWorkflow(ctx, kept.ID, nil)
	require.NoError(t, err)
	removedRun, err := backend.ExecuteWorkflow(ctx, removed.ID, nil)
	require.NoError(t, err)

	require.NoError(t, backend.DeleteWorkflow(ctx, removed.ID))
	_, err = backend.GetExecution(ctx, removedRun.ID, false)
	assert.True(t, n8n.IsNotFound(err))
	_, err = backend.GetExecution(ctx, keptRun.ID, false)
	assert.NoError(t, err)

	workflows, executions, _ := store.Counts()
	assert.Equal(t, 1, workflows)
	assert.Equal(t, 1, executions)
}
