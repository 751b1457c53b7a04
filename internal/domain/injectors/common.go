// Package injectors classifies individual AST nodes encountered by the
// transformer's walker and turns a match into one or more model.Edit
// values. Each file here generalizes one of the teacher mutation-testing
// tool's per-node-kind mutagen files into an edit-planning rule.
package injectors

import "go/token"

// OffsetForPos converts a token.Pos into a byte offset in the file's
// source, or (0, false) if pos does not belong to a file in fset.
func OffsetForPos(fset *token.FileSet, pos token.Pos) (int, bool) {
	file := fset.File(pos)
	if file == nil {
		return 0, false
	}

	return file.Offset(pos), true
}

// LineBounds returns the byte offsets of the start and (exclusive) end of
// the line containing offset, where end includes the trailing newline if
// present. Used to turn a statement's position into a whole-line edit
// target (breakpoint marker replacement, discard deletion).
func LineBounds(content []byte, offset int) (start, end int) {
	start = offset
	for start > 0 && content[start-1] != '\n' {
		start--
	}

	end = offset
	for end < len(content) && content[end] != '\n' {
		end++
	}

	if end < len(content) {
		end++
	}

	return start, end
}
