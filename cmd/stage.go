package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/filedbg/filedbg/internal/domain"
	m "github.com/filedbg/filedbg/internal/model"
)

var (
	stageDestFlag        string
	stageParallelFlag    int
	stageExcludeFlags    []string
	stageStepFlag        bool
	stageRuntimePathFlag string
)

// newStageCmd implements `filedbg stage <paths...>` (spec.md §4.1 step
// 8, SPEC_FULL.md §6): copies a project tree into a staging directory
// and instruments every Go source file in the copy, so the host build
// system can point the compiler at the staged tree instead of the
// original one.
func newStageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stage [paths...]",
		Short: "Copy a project tree and instrument every file in the copy",
		Long: `Copies each path into the staging directory (default "processed")
and runs the transform pass over every non-test .go file in the copy,
skipping files excluded by --exclude or a //filedbg:ignore directive.
Defaults to the current directory when no paths are given.`,
		RunE: func(c *cobra.Command, args []string) error {
			excludes, err := compileExcludes(stageExcludeFlags)
			if err != nil {
				return err
			}

			roots := parsePaths(args)

			result, err := workflow.StageContext(c.Context(), roots, domain.StageOptions{
				Dest:        m.Path(stageDestFlag),
				Parallel:    stageParallelFlag,
				Exclude:     excludes,
				StepMode:    stageStepFlag,
				RuntimePath: stageRuntimePathFlag,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "Staged %d files (%d skipped, %d edits) -> %s\n",
				result.Files, result.Skipped, result.Edits, stageDestOrDefault())

			return nil
		},
	}

	cmd.Flags().StringVar(&stageDestFlag, "dest", "", "staging destination directory (default \"processed\")")
	cmd.Flags().IntVarP(&stageParallelFlag, "parallel", "p", 1, "number of parallel transform workers")
	cmd.Flags().StringArrayVarP(&stageExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().BoolVar(&stageStepFlag, "step", false, "enable step-mode instrumentation")
	cmd.Flags().StringVar(&stageRuntimePathFlag, "runtime-path", "", "override the debug runtime import path")

	return cmd
}

func stageDestOrDefault() string {
	if stageDestFlag == "" {
		return domain.DefaultStageDest
	}

	return stageDestFlag
}
