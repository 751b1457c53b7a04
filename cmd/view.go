package cmd

import (
	"github.com/spf13/cobra"

	"github.com/filedbg/filedbg/internal/controller"
)

var viewDirFlag string

// newViewCmd implements `filedbg view` (spec.md §6): a one-shot,
// plain-text dump of the current rendezvous state, always rendered with
// SimpleUI regardless of terminal — a single snapshot, not a live tail.
func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Print the current rendezvous state and breakpoints once",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 {
				return ErrUsage
			}

			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error {
			state, stopped, bps, err := readSnapshot(viewDirFlag)
			if err != nil {
				return err
			}

			ui := controller.NewSimpleUI(c)

			if err := ui.DisplayState(state, stopped); err != nil {
				return err
			}

			return ui.DisplayBreakpoints(bps)
		},
	}

	cmd.Flags().StringVar(&viewDirFlag, "dir", ".", "directory containing the rendezvous files")

	return cmd
}
