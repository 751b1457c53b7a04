package runtime

import (
	"os"

	"github.com/filedbg/filedbg/internal/rendezvous"
)

// Config holds the environment-derived knobs for the debug runtime,
// read once by ensureInit (on the first ShouldBreak, SetBreakpointsForFile
// or GetBreakpoints call) rather than on every hit (spec.md §6's
// environment variable table).
type Config struct {
	// Mode is DEBUG_MODE: "terminal" (default), "dap", or "silent".
	Mode string
	// BreakpointFile is DEBUG_BREAKPOINTS, defaulting to breakpoints.list.
	BreakpointFile string
	// PauseOnStart is DEBUG_PAUSE_ON_START=1.
	PauseOnStart bool
}

const (
	defaultBreakpointFile = rendezvous.DefaultBreakpointFile
	defaultStateFile      = rendezvous.DefaultStateFile
	defaultCommandFile    = rendezvous.DefaultCommandFile
	defaultOutputFile     = rendezvous.DefaultOutputFile
)

func loadConfig() Config {
	cfg := Config{
		Mode:           "terminal",
		BreakpointFile: defaultBreakpointFile,
	}

	if v := os.Getenv("DEBUG_MODE"); v != "" {
		cfg.Mode = v
	}

	if v := os.Getenv("DEBUG_BREAKPOINTS"); v != "" {
		cfg.BreakpointFile = v
	}

	cfg.PauseOnStart = os.Getenv("DEBUG_PAUSE_ON_START") == "1"

	return cfg
}

func (c Config) silent() bool {
	return c.Mode == "silent"
}
