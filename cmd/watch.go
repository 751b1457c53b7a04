package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/filedbg/filedbg/internal/controller"
)

var watchDirFlag string

// newWatchCmd implements `filedbg watch` (spec.md §6): a live terminal
// dashboard tailing the state and breakpoint files. Falls back to a
// one-shot snapshot, the same render `filedbg view` produces, when
// stdout isn't a terminal — a watch piped into a file or CI log has no
// use for a redrawing TUI.
func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch an instrumented program's pause state live",
		Long: `Starts a Bubble Tea dashboard polling the state and breakpoint files
in --dir, letting the operator issue continue/step/next/vars commands
with single keystrokes instead of hand-editing command.txt. Falls back
to a one-shot text snapshot when not attached to a terminal.`,
		RunE: func(c *cobra.Command, _ []string) error {
			ui := controller.NewUI(c, watchDirFlag, controller.IsTTY(os.Stdout))

			if err := ui.Start(); err != nil {
				return err
			}

			if _, isTUI := ui.(*controller.TUI); isTUI {
				ui.Wait()
				return nil
			}

			defer ui.Close()

			state, stopped, bps, err := readSnapshot(watchDirFlag)
			if err != nil {
				return err
			}

			if err := ui.DisplayState(state, stopped); err != nil {
				return err
			}

			return ui.DisplayBreakpoints(bps)
		},
	}

	cmd.Flags().StringVar(&watchDirFlag, "dir", ".", "directory containing the rendezvous files")

	return cmd
}
