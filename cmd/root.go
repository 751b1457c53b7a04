// Package cmd provides the filedbg CLI surface: transform, stage, list,
// watch, and view, the cobra command tree the host build system and an
// operator's terminal both drive (spec.md §6, SPEC_FULL.md §6).
package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/filedbg/filedbg/internal/adapter"
	"github.com/filedbg/filedbg/internal/domain"
)

var (
	fsAdapter adapter.SourceFSAdapter
	workflow  domain.Workflow
)

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	workflow = domain.NewWorkflow(fsAdapter)

	rootCmd.AddCommand(
		newTransformCmd(),
		newStageCmd(),
		newListCmd(),
		newWatchCmd(),
		newViewCmd(),
	)
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filedbg",
		Short: "Source-level debugger built by compile-time instrumentation",
		Long: `filedbg rewrites Go source files to embed debugging calls directly
into the compiled binary, instead of attaching to a running process.

It consults an externally maintained breakpoint list (editable live from
any editor) and, on a hit, suspends the instrumented program via a
file-based rendezvous so an external UI can inspect its scope.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	return cmd
}

// Execute runs the root command, mapping a usage error to exit code 2
// and any other failure to exit code 1 (spec.md §6).
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	rootCmd.PrintErrln(err)

	if errors.Is(err, ErrUsage) {
		os.Exit(2)
	}

	os.Exit(1)
}
