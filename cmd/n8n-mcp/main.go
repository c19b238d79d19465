package main

import (
	"os"

	"github.com/viant/n8n-mcp/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args[1:]))
}
