package cmd

import "github.com/viant/n8n-mcp/mcp/config"

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"configuration YAML/JSON path or URL"`
	config.Overrides

	Serve     *ServeCmd     `command:"serve"      description:"Start the MCP server (stdio by default, --http for streamable HTTP)"`
	ListTools *ListToolsCmd `command:"list-tools" description:"List all registered tools"`
	Tool      *ToolCmd      `command:"tool"       description:"Show detailed info about one MCP tool"`
	Exec      *ExecCmd      `command:"exec"       description:"Invoke one tool locally and print its response"`
	Health    *HealthCmd    `command:"health"     description:"Report configuration and n8n reachability"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "serve":
		o.Serve = &ServeCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "exec":
		o.Exec = &ExecCmd{}
	case "health":
		o.Health = &HealthCmd{}
	}
}
