package controller

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/filedbg/filedbg/internal/rendezvous"
	"github.com/filedbg/filedbg/internal/runtime"
)

var (
	stoppedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("202"))
	runningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// watchModel is the Bubble Tea model backing `filedbg watch`: it polls
// the state and breakpoint files on a timer and renders the debuggee's
// current pause point, its captured variables, and the active
// breakpoint set. Key bindings write commands to the command file the
// same way any other rendezvous writer would.
type watchModel struct {
	dir     string
	state   rendezvous.StoppedState
	stopped bool
	bps     []breakpointRow
	err     error
	spin    spinner.Model
}

func newWatchModel(dir string) watchModel {
	return watchModel{dir: dir, spin: spinner.New(spinner.WithSpinner(spinner.Dot))}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(pollTick(), readState(m.dir), readBreakpoints(m.dir), m.spin.Tick)
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		return m, tea.Batch(pollTick(), readState(m.dir), readBreakpoints(m.dir))
	case stateMsg:
		m.state = msg.state
		m.stopped = msg.stopped

		return m, nil
	case breakpointsMsg:
		m.bps = msg.rows
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m watchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "c":
		return m, sendCommand(m.dir, "continue")
	case "s":
		return m, sendCommand(m.dir, "step")
	case "n":
		return m, sendCommand(m.dir, "next")
	case "v":
		return m, sendCommand(m.dir, "vars")
	}

	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder

	if m.stopped {
		fmt.Fprintf(&b, "%s  %s:%d  %s\n\n", stoppedStyle.Render("STOPPED"), m.state.File, m.state.Line, m.state.Function)

		for _, v := range m.state.Vars {
			fmt.Fprintf(&b, "  %s\n", v)
		}
	} else {
		fmt.Fprintf(&b, "%s %s\n", m.spin.View(), runningStyle.Render("RUNNING"))
	}

	b.WriteString("\n")

	if len(m.bps) > 0 {
		b.WriteString(dimStyle.Render("breakpoints:") + "\n")

		for _, bp := range m.bps {
			state := "enabled"
			if !bp.enabled {
				state = "disabled"
			}

			fmt.Fprintf(&b, "  %s:%d %s hits=%d\n", bp.file, bp.line, state, bp.hitCount)
		}
	}

	b.WriteString("\n" + dimStyle.Render("[c]ontinue  [s]tep  [n]ext  [v]ars  [q]uit"))

	return b.String()
}

func pollTick() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

func readState(dir string) tea.Cmd {
	return func() tea.Msg {
		content, err := rendezvous.ReadIfExists(filepath.Join(dir, rendezvous.DefaultStateFile))
		if err != nil || content == nil {
			return stateMsg{}
		}

		state, stopped := rendezvous.DecodeStopped(content)

		return stateMsg{state: state, stopped: stopped}
	}
}

func readBreakpoints(dir string) tea.Cmd {
	return func() tea.Msg {
		content, err := rendezvous.ReadIfExists(filepath.Join(dir, rendezvous.DefaultBreakpointFile))
		if err != nil || content == nil {
			return breakpointsMsg{}
		}

		entries, err := parseBreakpointsForDisplay(content)
		if err != nil {
			return breakpointsMsg{}
		}

		return breakpointsMsg{rows: entries}
	}
}

func parseBreakpointsForDisplay(content []byte) ([]breakpointRow, error) {
	entries, err := runtime.ParseBreakpointFile(content)
	if err != nil {
		return nil, err
	}

	rows := make([]breakpointRow, len(entries))

	for i, e := range entries {
		rows[i] = breakpointRow{file: e.File, line: e.Line, enabled: e.Enabled, hitCount: e.HitCount}
	}

	return rows, nil
}

func sendCommand(dir, command string) tea.Cmd {
	return func() tea.Msg {
		_ = rendezvous.WriteAtomic(filepath.Join(dir, rendezvous.DefaultCommandFile), []byte(command))
		return nil
	}
}
