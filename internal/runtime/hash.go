package runtime

import (
	"hash/fnv"
	"path/filepath"
)

// FileHash identifies a source file at an injected call site. It is
// computed once, at transform time, from the file's basename — the
// transformer has no way to know what directory the instrumented binary
// will actually run from, so baking in a full path would break the
// moment the build tree moves (spec.md §3, "File hash").
type FileHash uint32

// ComputeHash returns the FNV-1a hash of path's basename.
func ComputeHash(path string) FileHash {
	return hashString(filepath.Base(path))
}

// computeFullPathHash returns the FNV-1a hash of path verbatim, the
// fallback fileHashMatches tries when a breakpoint-file entry and a call
// site's basename hash disagree.
func computeFullPathHash(path string) FileHash {
	return hashString(path)
}

func hashString(s string) FileHash {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))

	return FileHash(h.Sum32())
}

// fileHashMatches reports whether a breakpoint-file entry identifies the
// same file as callSiteHash, which was computed from a basename at
// transform time. entry is hashed as a basename first; if that misses, it
// is hashed verbatim and compared again, so a full-path entry matches a
// call site even though the call site only ever carries a basename hash.
func fileHashMatches(entry string, callSiteHash FileHash) bool {
	if ComputeHash(entry) == callSiteHash {
		return true
	}

	return computeFullPathHash(entry) == callSiteHash
}
