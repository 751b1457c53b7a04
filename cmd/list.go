package cmd

import (
	"github.com/spf13/cobra"

	"github.com/filedbg/filedbg/internal/controller"
)

var listStepFlag bool

// newListCmd implements `filedbg list [paths...]` (spec.md §6): a
// read-only pass over each file's injection-site count, used to sanity
// check a BREAK placement before staging a whole tree.
func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List source files and their injection-site counts",
		Long: `Runs the same parse/walk pipeline as transform over every non-test
.go file under the given paths (current directory by default) but never
writes anything, reporting how many edits and globals each file would
get.`,
		RunE: func(c *cobra.Command, args []string) error {
			paths := parsePaths(args)

			sources, err := workflow.GetSources(paths...)
			if err != nil {
				return err
			}

			rows := make([]controller.AnalysisRow, 0, len(sources))

			for _, src := range sources {
				res, err := workflow.Analyze(src.Origin, listStepFlag)
				if err != nil {
					return err
				}

				rows = append(rows, controller.AnalysisRow{
					Path:    string(src.Origin),
					Edits:   res.Edits,
					Globals: res.Globals,
					Warning: res.Warning,
				})
			}

			ui := controller.NewSimpleUI(c)

			return ui.DisplayAnalysis(rows)
		},
	}

	cmd.Flags().BoolVar(&listStepFlag, "step", false, "count step-mode injection sites too")

	return cmd
}
