// Package controller provides output adapters for the rendezvous
// dashboard: a plain-text renderer for non-interactive terminals and a
// Bubble Tea TUI for interactive ones, the same simple/TUI split the
// teacher uses for its mutation-run display.
package controller

import (
	"github.com/filedbg/filedbg/internal/rendezvous"
	"github.com/filedbg/filedbg/internal/runtime"
)

// UI displays the live state of an instrumented program and lets the
// operator issue commands by writing to the command file (`filedbg
// watch`), or renders one snapshot and exits (`filedbg view`).
type UI interface {
	Start() error
	Close()
	Wait()
	// DisplayState renders one rendezvous state snapshot. stopped
	// reports whether the debuggee is currently paused.
	DisplayState(state rendezvous.StoppedState, stopped bool) error
	// DisplayBreakpoints renders the active breakpoint set.
	DisplayBreakpoints(bps []runtime.Breakpoint) error
}
