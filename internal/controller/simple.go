package controller

import (
	"bytes"
	"fmt"

	"github.com/filedbg/filedbg/internal/rendezvous"
	"github.com/filedbg/filedbg/internal/runtime"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI as plain text written to the cobra Command's
// OutOrStdout, for one-shot output such as `filedbg view`'s dump.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

func (s *SimpleUI) Start() error { return nil }
func (s *SimpleUI) Close()       {}
func (s *SimpleUI) Wait()        {}

// DisplayState prints the current rendezvous state as a short text
// block, with a variables table when stopped.
func (s *SimpleUI) DisplayState(state rendezvous.StoppedState, stopped bool) error {
	if !stopped {
		s.printf("running\n")
		return nil
	}

	s.printf("stopped at %s:%d in %s\n", state.File, state.Line, state.Function)

	if len(state.Vars) == 0 {
		return nil
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Variable"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT})

	for _, v := range state.Vars {
		table.Append([]string{v})
	}

	table.Render()
	s.printf("%s", buf.String())

	return nil
}

// DisplayBreakpoints prints the active breakpoint set as a table.
func (s *SimpleUI) DisplayBreakpoints(bps []runtime.Breakpoint) error {
	if len(bps) == 0 {
		s.printf("no breakpoints\n")
		return nil
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"File", "Line", "Enabled", "Hits"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, bp := range bps {
		table.Append([]string{
			bp.File,
			fmt.Sprintf("%d", bp.Line),
			fmt.Sprintf("%v", bp.Enabled),
			fmt.Sprintf("%d", bp.HitCount),
		})
	}

	table.Render()
	s.printf("%s", buf.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// AnalysisRow summarizes one file's injection-site count for `filedbg
// list` (spec.md §6's list command never mutates the project it
// inspects, so this is the read-only counterpart to the transform
// summary line).
type AnalysisRow struct {
	Path    string
	Edits   int
	Globals int
	Warning string
}

// DisplayAnalysis renders one row per source file as a table.
func (s *SimpleUI) DisplayAnalysis(rows []AnalysisRow) error {
	if len(rows) == 0 {
		s.printf("no source files found\n")
		return nil
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"File", "Edits", "Globals", "Note"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	var totalEdits int

	for _, r := range rows {
		table.Append([]string{r.Path, fmt.Sprintf("%d", r.Edits), fmt.Sprintf("%d", r.Globals), r.Warning})
		totalEdits += r.Edits
	}

	table.Render()
	s.printf("%s", buf.String())
	s.printf("%d files, %d total injection sites\n", len(rows), totalEdits)

	return nil
}
