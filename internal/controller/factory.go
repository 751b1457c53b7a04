package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI selects SimpleUI for non-interactive output and TUI for a real
// terminal, the same factory-function split the teacher's
// internal/adapter/factory.go makes for its mutation-run display.
func NewUI(cmd *cobra.Command, dir string, useTTY bool) UI {
	if useTTY {
		return NewTUI(dir)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a character device (an interactive
// terminal), not a redirected file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	info, err := file.Stat()
	if err != nil {
		return false
	}

	return (info.Mode() & os.ModeCharDevice) != 0
}
