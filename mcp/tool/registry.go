package tool

import (
	"context"
	"fmt"
	"sort"

	"github.com/viant/n8n-mcp/internal/syncmap"
)

// Registry maps tool names to definitions, preserving registration order.
type Registry struct {
	tools *syncmap.Map[*Definition]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: syncmap.NewMap[*Definition]()}
}

// Register adds definitions. A duplicate name is an error.
func (r *Registry) Register(definitions ...*Definition) error {
	for _, definition := range definitions {
		if err := definition.compile(); err != nil {
			return err
		}
		if !r.tools.PutIfAbsent(definition.Name, definition) {
			return fmt.Errorf("tool %v already registered", definition.Name)
		}
	}
	return nil
}

// Lookup returns the definition for name.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	return r.tools.Get(name)
}

// Definitions returns every definition in registration order.
func (r *Registry) Definitions() []*Definition {
	return r.tools.List()
}

// Names returns sorted tool names.
func (r *Registry) Names() []string {
	names := r.tools.Keys()
	sort.Strings(names)
	return names
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return r.tools.Len()
}

// Call validates args against the tool schema and invokes its handler.
// Only an unknown tool yields an error; every other failure, including a
// handler panic, is reported in the returned Response.
func (r *Registry) Call(ctx context.Context, name string, args map[string]interface{}) (response *Response, err error) {
	definition, ok := r.tools.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown tool: %v", name)
	}
	if args == nil {
		args = map[string]interface{}{}
	}
	if err := definition.validate(args); err != nil {
		return Failure(err), nil
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			response = Failure(fmt.Errorf("tool %v failed: %v", name, recovered))
		}
	}()
	result, err := definition.Handler(ctx, args)
	if err != nil {
		return Failure(err), nil
	}
	return Success(result), nil
}

// IsFailure reports whether a response carries an error of the given kind.
func IsFailure(response *Response, kind string) bool {
	return response != nil && !response.Success && response.ErrorType == kind
}

