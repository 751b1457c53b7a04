package rendezvous

import (
	"fmt"
	"strconv"
	"strings"
)

// StoppedState is the "status=stopped" shape of the state file: file,
// line and function identify the hit site, Vars is the pre-formatted
// "  <var>: <type> = <value>" lines already produced by
// internal/formatter (rendezvous has no business reflecting over
// values itself).
type StoppedState struct {
	File     string
	Line     int
	Function string
	Vars     []string
}

// EncodeStopped renders a StoppedState into the exact state-file text
// spec.md §6 documents.
func EncodeStopped(s StoppedState) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "status=stopped\nfile=%s\nline=%d\nfunction=%s\n---\n", s.File, s.Line, s.Function)

	for _, v := range s.Vars {
		fmt.Fprintf(&b, "  %s\n", v)
	}

	return []byte(b.String())
}

// EncodeRunning renders the "status=running" state file written after
// the debuggee resumes.
func EncodeRunning() []byte {
	return []byte("status=running\n")
}

// DecodeStopped parses a state file previously written by
// EncodeStopped, used by `filedbg view`/`watch` to render the dashboard.
// Returns ok=false for a running (or absent/malformed) state file.
func DecodeStopped(content []byte) (StoppedState, bool) {
	lines := strings.Split(string(content), "\n")

	var (
		s       StoppedState
		stopped bool
		inVars  bool
	)

	for _, line := range lines {
		if inVars {
			trimmed := strings.TrimPrefix(line, "  ")
			if trimmed == "" {
				continue
			}

			s.Vars = append(s.Vars, trimmed)

			continue
		}

		if line == "---" {
			inVars = true
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		switch key {
		case "status":
			stopped = value == "stopped"
		case "file":
			s.File = value
		case "function":
			s.Function = value
		case "line":
			if n, err := strconv.Atoi(value); err == nil {
				s.Line = n
			}
		}
	}

	return s, stopped
}
