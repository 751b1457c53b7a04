// Command filedbg is the CLI entry point for the source transformer and
// its rendezvous-protocol client commands (spec.md §6).
package main

import "github.com/filedbg/filedbg/cmd"

func main() {
	cmd.Execute()
}
