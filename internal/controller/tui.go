package controller

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/filedbg/filedbg/internal/rendezvous"
	"github.com/filedbg/filedbg/internal/runtime"
)

// pollInterval is how often the TUI rereads the rendezvous files —
// generous compared to the runtime's own PollEveryN throttle, since a
// human is the consumer here, not a hot loop.
const pollInterval = 200 * time.Millisecond

// TUI implements UI with a Bubble Tea program tailing the state and
// breakpoint files, for `filedbg watch`.
type TUI struct {
	program *tea.Program
	dir     string
	done    chan struct{}
}

// NewTUI creates a TUI polling the rendezvous files rooted at dir.
func NewTUI(dir string) *TUI {
	return &TUI{dir: dir, done: make(chan struct{})}
}

func (t *TUI) Start() error {
	model := newWatchModel(t.dir)
	t.program = tea.NewProgram(model)

	go func() {
		_, _ = t.program.Run()
		close(t.done)
	}()

	return nil
}

func (t *TUI) Close() {
	if t.program != nil {
		t.program.Quit()
	}
}

func (t *TUI) Wait() {
	<-t.done
}

// DisplayState and DisplayBreakpoints are no-ops on TUI: the running
// Bubble Tea model polls the rendezvous files itself rather than being
// pushed snapshots, unlike SimpleUI's one-shot render.
func (t *TUI) DisplayState(rendezvous.StoppedState, bool) error { return nil }
func (t *TUI) DisplayBreakpoints([]runtime.Breakpoint) error    { return nil }
