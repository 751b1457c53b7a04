package injectors

import (
	"fmt"
	"go/token"

	m "github.com/filedbg/filedbg/internal/model"
)

// BreakpointMarker plans the replace-the-entire-line edit for a BREAK
// marker statement (spec.md §4.1 step 6): the whole line is deleted and
// replaced with an unconditional call to debug.OnBreak. spec.md §6 only
// wraps this call in "a compile-time guard suppressing [it] in
// constant-evaluation contexts" — a BREAK marker is an unconditional
// breakpoint, not one gated on the runtime breakpoint file the way
// ordinary line numbers are (that gating is debug.ShouldBreak's job for
// injected step statements, not for an explicit BREAK). Go statements
// never appear in a constant-evaluation context, so there is nothing
// for the compile-time guard to suppress here; the call is emitted
// bare. Generalizes the whole-statement replacement shape of the
// teacher's mutagens/arithmetic.go (which swapped one operator token
// for another in place) into a whole-line structural replacement.
func BreakpointMarker(fset *token.FileSet, content []byte, mark token.Pos, funcName, filePath string, fileHash uint32, names []string) (m.Edit, bool) {
	offset, ok := OffsetForPos(fset, mark)
	if !ok {
		return m.Edit{}, false
	}

	line := fset.Position(mark).Line
	start, end := LineBounds(content, offset)

	call := fmt.Sprintf(
		"debug.OnBreak(%q, %q, 0x%08x, %d, %s, %s)\n",
		funcName, filePath, fileHash, line, NamesLiteral(names), ValuesLiteral(names),
	)

	return m.Edit{Offset: start, DeleteLen: end - start, Insert: call}, true
}
