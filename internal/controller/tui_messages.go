package controller

import "github.com/filedbg/filedbg/internal/rendezvous"

// tickMsg fires on every poll interval; the model reacts by rereading
// the state and breakpoint files.
type tickMsg struct{}

// stateMsg carries a freshly read rendezvous state snapshot.
type stateMsg struct {
	state   rendezvous.StoppedState
	stopped bool
}

// breakpointsMsg carries a freshly read breakpoint snapshot, rendered
// as plain display rows rather than runtime.Breakpoint values.
type breakpointsMsg struct {
	rows []breakpointRow
}

type breakpointRow struct {
	file     string
	line     int
	enabled  bool
	hitCount uint64
}
