package cmd

import (
	"path/filepath"

	"github.com/filedbg/filedbg/internal/rendezvous"
	"github.com/filedbg/filedbg/internal/runtime"
)

// readSnapshot loads one rendezvous state/breakpoint snapshot from dir,
// the same read `filedbg view` renders once and `filedbg watch` falls
// back to when stdout isn't a terminal (spec.md §6's state and
// breakpoint file formats).
func readSnapshot(dir string) (state rendezvous.StoppedState, stopped bool, bps []runtime.Breakpoint, err error) {
	stateContent, err := rendezvous.ReadIfExists(filepath.Join(dir, rendezvous.DefaultStateFile))
	if err != nil {
		return rendezvous.StoppedState{}, false, nil, err
	}

	if stateContent != nil {
		state, stopped = rendezvous.DecodeStopped(stateContent)
	}

	bpContent, err := rendezvous.ReadIfExists(filepath.Join(dir, rendezvous.DefaultBreakpointFile))
	if err != nil {
		return state, stopped, nil, err
	}

	if bpContent != nil {
		entries, perr := runtime.ParseBreakpointFile(bpContent)
		if perr == nil {
			bps = entries
		}
	}

	return state, stopped, bps, nil
}
