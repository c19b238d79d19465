package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/viant/n8n-mcp/internal/conv"
)

// ToolCmd prints metadata, input and output schema for a single tool.
type ToolCmd struct {
	Name string `short:"n" long:"name" description:"tool name, e.g. get_workflow" positional-arg-name:"name" required:"yes"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

func (c *ToolCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	metadata, ok := svc.ToolMetadata(c.Name)
	if !ok {
		return fmt.Errorf("tool %q not found", c.Name)
	}

	if c.JSON {
		data, _ := json.MarshalIndent(metadata, "", "  ")
		fmt.Println(string(data))
		return nil
	}
	fmt.Printf("Name : %s\n", metadata.Name)
	fmt.Printf("Desc : %s\n", conv.Dereference(metadata.Description))
	js, _ := json.MarshalIndent(metadata.InputSchema, "", "  ")
	fmt.Printf("InputSchema:\n%s\n", string(js))
	js, _ = json.MarshalIndent(metadata.OutputSchema, "", "  ")
	fmt.Printf("OutputSchema:\n%s\n", string(js))
	return nil
}
