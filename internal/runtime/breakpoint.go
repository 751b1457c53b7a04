package runtime

import "sync"

// MaxBreakpoints bounds the in-memory breakpoint set, grounded on
// spec.md §5's "debugger state fits in a fixed-size table" requirement:
// the set is rescanned from a polled file on a hot path, so it has to
// stay bounded and cheap to scan linearly.
const MaxBreakpoints = 256

// Breakpoint is one entry of the breakpoint set: a (file, line) pair the
// runtime checks injected call sites against, plus the bookkeeping the
// state file and the watch UI surface back to the operator.
type Breakpoint struct {
	File      string
	Line      int
	Enabled   bool
	HitCount  uint64
	Condition string
}

// breakpointSet is a bounded, mutex-guarded table of breakpoints keyed by
// file hash. Grounded on the linear-scan shape of both
// other_examples/lkesteloot-trs80emu__breakpoint.go (bounded slice, find
// by linear scan) and other_examples/hitzhangjie-godbg__breakpoint.go
// (hit-count bookkeeping alongside the entry) — reimplemented with
// stdlib sync.Mutex rather than either example's own locking, since
// ShouldBreak already needs a lock for the rare "file changed" path and
// a second lock flavor would add nothing.
type breakpointSet struct {
	mu      sync.Mutex
	entries []Breakpoint
	// byHash caches each entry's file hash so ShouldBreak's hot path
	// avoids re-hashing every entry's File string on every call.
	byHash map[FileHash][]int
}

func newBreakpointSet() *breakpointSet {
	return &breakpointSet{byHash: make(map[FileHash][]int)}
}

func (b *breakpointSet) rebuildIndex() {
	b.byHash = make(map[FileHash][]int, len(b.entries))

	for i, e := range b.entries {
		h := ComputeHash(e.File)
		b.byHash[h] = append(b.byHash[h], i)
	}
}

// set replaces the entries for file, preserving hit counts for lines
// that remain present — spec.md §4.2's "hot-swapping the breakpoint file
// must not reset hit counts for untouched lines."
func (b *breakpointSet) set(file string, lines []int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	previous := make(map[int]uint64)

	kept := make([]Breakpoint, 0, len(b.entries))

	for _, e := range b.entries {
		if e.File == file {
			previous[e.Line] = e.HitCount
			continue
		}

		kept = append(kept, e)
	}

	for _, line := range lines {
		if len(kept) >= MaxBreakpoints {
			break
		}

		kept = append(kept, Breakpoint{
			File:     file,
			Line:     line,
			Enabled:  true,
			HitCount: previous[line],
		})
	}

	b.entries = kept
	b.rebuildIndex()
}

// replaceAll replaces the entire set with entries, preserving hit counts
// for (file, line) pairs present in both the old and new set. Used by the
// breakpoint-file reload path (spec.md §3: entries absent from a reloaded
// file are destroyed, not just left stale), unlike set, which only ever
// touches the entries for one file.
func (b *breakpointSet) replaceAll(entries []Breakpoint) {
	b.mu.Lock()
	defer b.mu.Unlock()

	type key struct {
		file string
		line int
	}

	previous := make(map[key]uint64, len(b.entries))
	for _, e := range b.entries {
		previous[key{e.File, e.Line}] = e.HitCount
	}

	kept := make([]Breakpoint, 0, len(entries))

	for _, e := range entries {
		if len(kept) >= MaxBreakpoints {
			break
		}

		kept = append(kept, Breakpoint{
			File:      e.File,
			Line:      e.Line,
			Enabled:   e.Enabled,
			Condition: e.Condition,
			HitCount:  previous[key{e.File, e.Line}],
		})
	}

	b.entries = kept
	b.rebuildIndex()
}

// matches reports whether an enabled breakpoint exists for (hash, line)
// and, if so, increments its hit count.
func (b *breakpointSet) matches(hash FileHash, line int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, idx := range b.byHash[hash] {
		e := &b.entries[idx]
		if e.Line == line && e.Enabled {
			e.HitCount++
			return true
		}
	}

	// Fall back to the full-path hash comparison for entries whose File
	// field is a path the basename hash didn't match directly.
	for i := range b.entries {
		e := &b.entries[i]
		if e.Line != line || !e.Enabled {
			continue
		}

		if fileHashMatches(e.File, hash) {
			e.HitCount++
			return true
		}
	}

	return false
}

func (b *breakpointSet) snapshot() []Breakpoint {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Breakpoint, len(b.entries))
	copy(out, b.entries)

	return out
}
