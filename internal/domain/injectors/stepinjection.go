package injectors

import (
	"fmt"
	"go/token"
	"strconv"

	m "github.com/filedbg/filedbg/internal/model"
)

// StepInjection plans a zero-delete insertion ahead of an injectable
// statement once step mode is active (spec.md §4.1 step 6, step 7). It
// carries the same variable-capture payload as BreakpointMarker plus the
// stringified statement text, wrapped in a debug.ShouldBreak guard
// (BreakpointMarker's call carries no guard) — the inserted debug.HandleStepBefore call only actually pauses
// execution when the runtime's step mode is active or this exact line
// is a live breakpoint, so in the common case (no active step, no
// breakpoint on this line) the guard is the only cost paid. Generalizes
// the insertion-point bookkeeping of the teacher's mutagens/unary.go
// (which inserted a negation rather than deleting anything) into a
// statement-prefix insertion.
func StepInjection(fset *token.FileSet, content []byte, stmt token.Pos, funcName, filePath string, fileHash uint32, names []string) (m.Edit, bool) {
	offset, ok := OffsetForPos(fset, stmt)
	if !ok {
		return m.Edit{}, false
	}

	line := fset.Position(stmt).Line
	lineStart, lineEnd := LineBounds(content, offset)
	text := strconv.Quote(trimTrailingNewline(content[lineStart:lineEnd]))

	call := fmt.Sprintf(
		"if debug.ShouldBreak(0x%08x, %d) { debug.HandleStepBefore(%q, %q, 0x%08x, %d, %s, %s, %s) }\n",
		fileHash, line, funcName, filePath, fileHash, line, text, NamesLiteral(names), ValuesLiteral(names),
	)

	return m.Edit{Offset: offset, DeleteLen: 0, Insert: call}, true
}

func trimTrailingNewline(b []byte) string {
	if n := len(b); n > 0 && b[n-1] == '\n' {
		b = b[:n-1]
	}

	if n := len(b); n > 0 && b[n-1] == '\r' {
		b = b[:n-1]
	}

	return string(b)
}
