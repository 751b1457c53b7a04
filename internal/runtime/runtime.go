package runtime

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/filedbg/filedbg/internal/formatter"
	"github.com/filedbg/filedbg/internal/logging"
	"github.com/filedbg/filedbg/internal/rendezvous"
)

// PollEveryN is how many ShouldBreak calls pass between breakpoint-file
// restats, keeping the hot path in the low-nanosecond range between
// polls (spec.md §4.2, §5).
const PollEveryN = 50_000

// CommandPollSpin is how many busy-wait iterations OnBreak's command
// loop spins between os.Stat calls on the command file.
const CommandPollSpin = 100_000

var (
	once sync.Once

	cfg    Config
	logger = logging.Default
	set    = newBreakpointSet()

	pollCount   atomic.Uint64
	lastModTime int64

	stepMode   atomic.Bool
	stepKind   atomic.Int32 // 0 = step-in, 1 = step-over
	anchorHash atomic.Uint32
)

const (
	stepIn = iota
	stepOver
)

func ensureInit() {
	once.Do(func() {
		cfg = loadConfig()
		logger = logging.New(os.Stderr, cfg.silent())
		_ = EnsureBreakpointFile()

		if content, err := rendezvous.ReadIfExists(cfg.BreakpointFile); err == nil && content != nil {
			if entries, perr := ParseBreakpointFile(content); perr == nil {
				set.replaceAll(entries)
			}
		}

		if cfg.PauseOnStart {
			stepMode.Store(true)
			stepKind.Store(stepIn)
		}
	})
}

// ShouldBreak is the hot path every step-injection call site calls
// through before HandleStepBefore (a BREAK expansion calls OnBreak
// directly, with no ShouldBreak guard): lazily initializes, throttles
// breakpoint-file polling, and otherwise does a bounded linear scan.
func ShouldBreak(hash FileHash, line int) bool {
	ensureInit()

	n := pollCount.Add(1)
	if n%PollEveryN == 0 {
		pollIfChanged()
	}

	if stepMode.Load() {
		if stepKind.Load() == stepIn {
			return true
		}

		if hash == FileHash(anchorHash.Load()) {
			return true
		}
	}

	return set.matches(hash, line)
}

func pollIfChanged() {
	modTime, exists := rendezvous.ModTime(configuredBreakpointFile())
	if !exists || modTime == lastModTime {
		return
	}

	lastModTime = modTime

	content, err := rendezvous.ReadIfExists(configuredBreakpointFile())
	if err != nil || content == nil {
		return
	}

	entries, err := ParseBreakpointFile(content)
	if err != nil {
		logger.Warn("reparse breakpoint file failed", "error", err)
		return
	}

	set.replaceAll(entries)
}

// OnBreak is the cold path: clears step mode, logs, writes the state
// file, then blocks this goroutine inside a command loop until resumed.
func OnBreak(fn, filePath string, hash FileHash, line int, names []string, values []any) {
	stepMode.Store(false)

	logger.Info("breakpoint hit", "function", fn, "file", filePath, "line", line)

	writeStoppedState(fn, filePath, line, names, values)
	runCommandLoop(fn, filePath, hash, line, names, values)
}

// HandleStepBefore carries the same file identity as OnBreak because
// both write the same fields into the state file on pause. Its call
// site is wrapped in a single ShouldBreak guard, so ShouldBreak is
// evaluated once per call site, never twice.
func HandleStepBefore(fn, filePath string, hash FileHash, line int, lineText string, names []string, values []any) {
	stepMode.Store(false)

	logger.Info("step", "function", fn, "file", filePath, "line", line, "text", lineText)

	writeStoppedState(fn, filePath, line, names, values)
	runCommandLoop(fn, filePath, hash, line, names, values)
}

func writeStoppedState(fn, filePath string, line int, names []string, values []any) {
	vars := make([]string, len(names))

	for i, name := range names {
		buf := formatter.NewBuffer(256)
		formatter.Format(buf, values[i], 1)
		vars[i] = fmt.Sprintf("%s: %s = %s", name, typeNameOf(values[i]), buf.String())
	}

	_ = rendezvous.WriteAtomic(defaultStateFile, rendezvous.EncodeStopped(rendezvous.StoppedState{
		File:     filePath,
		Line:     line,
		Function: fn,
		Vars:     vars,
	}))
}

func runCommandLoop(fn, filePath string, hash FileHash, line int, names []string, values []any) {
	_ = rendezvous.DeleteIfExists(defaultCommandFile)
	_ = rendezvous.DeleteIfExists(defaultOutputFile)

	spins := 0

	for {
		content, err := rendezvous.ReadIfExists(defaultCommandFile)
		if err != nil || content == nil {
			spins++
			if spins >= CommandPollSpin {
				spins = 0
				time.Sleep(time.Microsecond)
			}

			continue
		}

		_ = rendezvous.DeleteIfExists(defaultCommandFile)

		cmd := rendezvous.ParseCommand(string(content))

		switch cmd.Kind {
		case rendezvous.CommandContinue:
			stepMode.Store(false)
			finishCommandLoop()

			return
		case rendezvous.CommandQuit:
			finishCommandLoop()
			quit()
			return
		case rendezvous.CommandStep:
			stepMode.Store(true)
			stepKind.Store(stepIn)
			finishCommandLoop()

			return
		case rendezvous.CommandNext:
			stepMode.Store(true)
			stepKind.Store(stepOver)
			anchorHash.Store(uint32(hash))
			finishCommandLoop()

			return
		case rendezvous.CommandVars:
			writeVarsOutput(names, values)
		case rendezvous.CommandPrint:
			writeQueryOutput(cmd.Args, names, values)
		case rendezvous.CommandQuery:
			writeQueryOutput(cmd.Args, names, values)
		case rendezvous.CommandNone:
			spins++
			if spins >= CommandPollSpin {
				spins = 0
				time.Sleep(time.Microsecond)
			}
		}
	}
}

// quit terminates the debuggee immediately — "quit"/"q" is the only
// termination path the command loop has, per spec.md §5.
func quit() {
	os.Exit(0)
}

func finishCommandLoop() {
	_ = rendezvous.DeleteIfExists(defaultCommandFile)
	_ = rendezvous.DeleteIfExists(defaultOutputFile)
	_ = rendezvous.WriteAtomic(defaultStateFile, rendezvous.EncodeRunning())
}

func writeVarsOutput(names []string, values []any) {
	text := "=== Variables ===\n"

	for i, name := range names {
		buf := formatter.NewBuffer(256)
		formatter.Format(buf, values[i], 2)
		text += fmt.Sprintf("%s: %s = %s\n", name, typeNameOf(values[i]), buf.String())
	}

	_ = rendezvous.WriteAtomic(defaultOutputFile, []byte(text))
}

func writeQueryOutput(args []string, names []string, values []any) {
	if len(args) == 0 {
		_ = rendezvous.WriteAtomic(defaultOutputFile, []byte("no variable name given\n"))
		return
	}

	var out string

	for _, path := range args {
		out += renderQuery(path, names, values)
	}

	_ = rendezvous.WriteAtomic(defaultOutputFile, []byte(out))
}

func renderQuery(path string, names []string, values []any) string {
	root, field, hasField := splitRootField(path)

	idx := indexOf(names, root)
	if idx < 0 {
		return fmt.Sprintf("no such variable %q\n", root)
	}

	value := values[idx]

	if !hasField {
		buf := formatter.NewBuffer(256)
		formatter.Format(buf, value, 3)

		return fmt.Sprintf("%s: %s\n%s\n", root, typeNameOf(value), buf.String())
	}

	resolved, err := formatter.Resolve(value, field)
	if err != nil {
		return err.Error() + "\n"
	}

	buf := formatter.NewBuffer(256)
	formatter.Format(buf, resolved, 3)

	return fmt.Sprintf("%s: %s\n%s\n", path, typeNameOf(resolved), buf.String())
}

func splitRootField(path string) (root, field string, hasField bool) {
	for i, c := range path {
		switch c {
		case '.':
			return path[:i], path[i+1:], true
		case '[':
			return path[:i], path[i:], true
		}
	}

	return path, "", false
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}

	return -1
}

func typeNameOf(v any) string {
	return fmt.Sprintf("%T", v)
}

// SetBreakpointsForFile replaces the breakpoint entries for file,
// preserving hit counts for lines that remain (spec.md §4.2).
func SetBreakpointsForFile(file string, lines []int) {
	ensureInit()
	set.set(file, lines)
}

// GetBreakpoints returns a snapshot of the current breakpoint set, used
// by `filedbg watch`'s dashboard.
func GetBreakpoints() []Breakpoint {
	ensureInit()
	return set.snapshot()
}

// EnsureBreakpointFile creates an empty breakpoints file if none
// exists, so the editor always has something to append to. Callable
// before ShouldBreak ever runs (e.g. from cmd/filedbg), so it resolves
// its own path rather than relying on ensureInit having populated cfg.
func EnsureBreakpointFile() error {
	path := configuredBreakpointFile()

	content, err := rendezvous.ReadIfExists(path)
	if err != nil {
		return err
	}

	if content != nil {
		return nil
	}

	return rendezvous.WriteAtomic(path, []byte("breakpoints {\n}\n"))
}

func configuredBreakpointFile() string {
	if cfg.BreakpointFile != "" {
		return cfg.BreakpointFile
	}

	return defaultBreakpointFile
}
