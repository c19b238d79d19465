package tool

import (
	"context"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/viant/n8n-mcp/gateway"
	"github.com/viant/n8n-mcp/internal/conv"
	"github.com/viant/n8n-mcp/n8n"

	mcpschema "github.com/viant/mcp-protocol/schema"
)

// Handler executes a tool with already validated arguments.
type Handler func(ctx context.Context, args map[string]interface{}) (*gateway.Result, error)

// Definition declares one tool.
type Definition struct {
	Name        string
	Description string
	Input       Schema
	// Output describes the data member of a successful response.
	Output  Schema
	Handler Handler

	validator *gojsonschema.Schema
}

// Metadata renders the MCP tool descriptor.
func (d *Definition) Metadata() mcpschema.Tool {
	return mcpschema.Tool{
		Name:         d.Name,
		Description:  conv.Pointer(d.Description),
		InputSchema:  d.Input.Input(),
		OutputSchema: envelope(d.Output),
	}
}

func (d *Definition) compile() error {
	if d.Name == "" {
		return fmt.Errorf("tool name was empty")
	}
	if d.Handler == nil {
		return fmt.Errorf("tool %v: handler was nil", d.Name)
	}
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(d.Input.Document()))
	if err != nil {
		return fmt.Errorf("tool %v: invalid input schema: %w", d.Name, err)
	}
	d.validator = compiled
	return nil
}

// validate checks args against the input schema.
func (d *Definition) validate(args map[string]interface{}) error {
	result, err := d.validator.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		return n8n.NewInvalidArgument("", err.Error())
	}
	if result.Valid() {
		return nil
	}
	first := result.Errors()[0]
	field := first.Field()
	if field == gojsonschema.STRING_CONTEXT_ROOT || field == "" {
		field = ""
		if property, ok := first.Details()["property"].(string); ok {
			field = property
		}
	}
	return n8n.NewInvalidArgument(field, first.Description())
}

// Bind adapts a typed gateway operation to a Handler. Arguments are
// converted into T via JSON.
func Bind[T any](fn func(context.Context, *T) (*gateway.Result, error)) Handler {
	return func(ctx context.Context, args map[string]interface{}) (*gateway.Result, error) {
		input := new(T)
		if err := conv.Convert(args, input); err != nil {
			return nil, n8n.NewInvalidArgument("", err.Error())
		}
		return fn(ctx, input)
	}
}
