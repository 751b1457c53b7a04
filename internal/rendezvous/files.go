// Package rendezvous implements the file-based handshake between the
// instrumented debuggee and an editor or UI process: the breakpoint,
// state, command and output files of spec.md §6, each written
// atomically so a reader never observes a half-written file.
package rendezvous

import (
	"os"
	"path/filepath"
)

const (
	DefaultBreakpointFile = "breakpoints.list"
	DefaultStateFile      = "state.txt"
	DefaultCommandFile    = "command.txt"
	DefaultOutputFile     = "output.txt"
)

// WriteAtomic writes content to path by writing to a temp file in the
// same directory and renaming over path, so a concurrent reader either
// sees the old contents or the new ones in full, never a partial write
// — the same guarantee the teacher's adapter gets from a single
// os.WriteFile call, reproduced here because the debug runtime
// overwrites the state file from inside a potentially-long-running
// command loop that a UI process polls concurrently.
func WriteAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".rendezvous-*")
	if err != nil {
		return err
	}

	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)

		return err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)

		return err
	}

	return os.Rename(tmpPath, path)
}

// ReadIfExists returns the file's contents, or nil with no error if it
// does not exist — most rendezvous files are absent until the first
// write, and that absence is not itself an error condition.
func ReadIfExists(path string) ([]byte, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path comes from runtime config, not untrusted input
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	return content, nil
}

// DeleteIfExists removes path, treating "already gone" as success — the
// command file is consumed-and-deleted by the debuggee, and the output
// file is cleared when the command loop starts and again when it ends.
func DeleteIfExists(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

// ModTime returns path's modification time and whether it exists, the
// primitive ShouldBreak's polling throttle uses to decide whether to
// reparse the breakpoint file.
func ModTime(path string) (modTime int64, exists bool) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, false
	}

	return info.ModTime().UnixNano(), true
}
