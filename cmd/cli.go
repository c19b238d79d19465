package cmd

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

// Run is the entry point for the CLI. It returns the process exit code so
// that main stays trivial and the command remains usable from tests.
func Run(args []string) int {
	opts := &Options{}
	var first string
	if len(args) > 0 {
		first = args[0]
	}
	opts.Init(first)
	setOptions(opts)
	defer closeService()

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return 0
		}
		fmt.Fprintf(os.Stderr, "n8n-mcp: %v\n", err)
		return 1
	}
	return 0
}
