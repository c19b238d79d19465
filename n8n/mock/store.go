package mock

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/viant/n8n-mcp/n8n"
)

// table keeps entities of one type in insertion order and hands out
// identifiers that are never reused.
type table[T any] struct {
	prefix string
	seq    int
	keys   []string
	items  map[string]T
}

func newTable[T any](prefix string) *table[T] {
	return &table[T]{prefix: prefix, items: map[string]T{}}
}

func (t *table[T]) nextID() string {
	t.seq++
	return t.prefix + "_" + strconv.Itoa(t.seq)
}

func (t *table[T]) get(id string) (T, bool) {
	item, ok := t.items[id]
	return item, ok
}

func (t *table[T]) put(id string, item T) {
	if _, ok := t.items[id]; !ok {
		t.keys = append(t.keys, id)
	}
	t.items[id] = item
}

func (t *table[T]) delete(id string) bool {
	if _, ok := t.items[id]; !ok {
		return false
	}
	delete(t.items, id)
	for i, key := range t.keys {
		if key == id {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
	return true
}

// list returns items in insertion order.
func (t *table[T]) list() []T {
	result := make([]T, 0, len(t.keys))
	for _, key := range t.keys {
		result = append(result, t.items[key])
	}
	return result
}

type storedCredential struct {
	credential *n8n.Credential
	data       map[string]interface{}
}

// Store holds mock workflows, executions and credentials. One mutex guards
// every access.
type Store struct {
	mux         sync.Mutex
	now         func() time.Time
	workflows   *table[*n8n.Workflow]
	executions  *table[*n8n.Execution]
	credentials *table[*storedCredential]
}

// StoreOption customises a Store.
type StoreOption func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		now:         time.Now,
		workflows:   newTable[*n8n.Workflow]("wf"),
		executions:  newTable[*n8n.Execution]("ex"),
		credentials: newTable[*storedCredential]("cred"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Counts returns the number of stored workflows, executions and credentials.
func (s *Store) Counts() (workflows, executions, credentials int) {
	s.mux.Lock()
	defer s.mux.Unlock()
	return len(s.workflows.keys), len(s.executions.keys), len(s.credentials.keys)
}

func (s *Store) timestamp() *time.Time {
	now := s.now().UTC()
	return &now
}

// paginate slices items using an offset cursor.
func paginate[T any](items []T, opts n8n.ListOptions) (*n8n.Page[T], error) {
	offset := 0
	if opts.Cursor != "" {
		value, err := strconv.Atoi(opts.Cursor)
		if err != nil || value < 0 {
			return nil, n8n.NewInvalidArgument("cursor", fmt.Sprintf("unknown cursor %q", opts.Cursor))
		}
		offset = value
	}
	if offset > len(items) {
		offset = len(items)
	}
	end := offset + opts.EffectiveLimit()
	page := &n8n.Page[T]{}
	if end < len(items) {
		page.NextCursor = strconv.Itoa(end)
	} else {
		end = len(items)
	}
	page.Items = append(make([]T, 0, end-offset), items[offset:end]...)
	return page, nil
}
