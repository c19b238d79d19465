package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ExecCmd executes a registered tool from the CLI. Arguments can be supplied
// either inline via -i/--input or loaded from a JSON file via --file.
type ExecCmd struct {
	Name   string `short:"n" long:"name" positional-arg-name:"tool" description:"Tool name, e.g. list_workflows" required:"yes"`
	Inline string `short:"i" long:"input" description:"Inline JSON arguments (object)"`
	File   string `long:"file" description:"Path to JSON file with arguments (use - for stdin)"`
	JSON   bool   `long:"json" description:"Print the full response envelope as indented JSON"`
}

func (c *ExecCmd) Execute(_ []string) error {
	if c.Inline != "" && c.File != "" {
		return fmt.Errorf("-i/--input and --file are mutually exclusive")
	}

	args, err := c.arguments()
	if err != nil {
		return err
	}

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	response, err := svc.ExecuteTool(context.Background(), c.Name, args)
	if err != nil {
		return err
	}

	if c.JSON {
		data, _ := json.MarshalIndent(response, "", "  ")
		fmt.Println(string(data))
	} else if response.Success {
		fmt.Println(response.Message)
		if len(response.Data) > 0 {
			data, _ := json.MarshalIndent(response.Data, "", "  ")
			fmt.Println(string(data))
		}
	} else {
		fmt.Printf("%s: %s\n", response.ErrorType, response.Error)
	}
	if !response.Success {
		return fmt.Errorf("%s failed", c.Name)
	}
	return nil
}

// arguments builds the argument map from -i or --file.
func (c *ExecCmd) arguments() (map[string]interface{}, error) {
	var data []byte
	switch {
	case c.Inline != "":
		data = []byte(c.Inline)
	case c.File != "":
		var rdr io.Reader
		if c.File == "-" {
			rdr = os.Stdin
		} else {
			f, err := os.Open(c.File)
			if err != nil {
				return nil, fmt.Errorf("open input file: %w", err)
			}
			defer f.Close()
			rdr = f
		}
		var err error
		if data, err = io.ReadAll(rdr); err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
	default:
		return nil, nil
	}
	var args map[string]interface{}
	if err := json.Unmarshal(data, &args); err != nil {
		return nil, fmt.Errorf("decode JSON arguments: %w", err)
	}
	return args, nil
}
