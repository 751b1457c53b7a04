package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/filedbg/filedbg/internal/model"
)

var (
	transformStepFlag        bool
	transformRuntimePathFlag string
)

// newTransformCmd implements `filedbg transform <input> <output>`
// (spec.md §4.1, §6): the single-file instrumentation pass the host
// build system invokes once per source file.
func newTransformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform <input> <output>",
		Short: "Instrument one source file with debug calls",
		Long: `Reads <input>, plans a sorted list of textual edits (breakpoint
markers, step instrumentation, header insertion, tracked-discard
deletion), applies them in a single pass, and writes the result to
<output>. A file with no BREAK markers and step mode disabled passes
through unchanged; a file that fails to parse passes through verbatim
with a warning rather than breaking the build.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("%w: transform requires exactly 2 arguments (input output), got %d", ErrUsage, len(args))
			}

			return nil
		},
		RunE: func(c *cobra.Command, args []string) error {
			res, err := workflow.Transform(m.TransformRequest{
				Input:       m.Path(args[0]),
				Output:      m.Path(args[1]),
				StepMode:    transformStepFlag,
				RuntimePath: transformRuntimePathFlag,
			})
			if err != nil {
				return err
			}

			printTransformSummary(c, args[0], args[1], res)

			return nil
		},
	}

	cmd.Flags().BoolVar(&transformStepFlag, "step", false, "enable step-mode instrumentation for this file")
	cmd.Flags().StringVar(&transformRuntimePathFlag, "runtime-path", "", "override the debug runtime import path")

	return cmd
}

// printTransformSummary writes the one-line stderr summary spec.md §6
// documents: the edit/global count on a real transform, or the
// pass-through warning otherwise.
func printTransformSummary(cmd *cobra.Command, input, output string, res m.TransformResult) {
	w := cmd.ErrOrStderr()

	if res.Warning != "" {
		fmt.Fprintln(w, res.Warning)
		return
	}

	fmt.Fprintf(w, "Preprocessed %s -> %s (%d edits, %d globals)\n", input, output, res.Edits, res.Globals)
}
