package injectors

import (
	"go/ast"
	"go/token"

	m "github.com/filedbg/filedbg/internal/model"
)

// DiscardDeletion plans the whole-line deletion of a `_ = name` discard
// statement (spec.md §4.1 step 6, §9's discard mapping). The edit itself
// is unconditional once produced; what makes the deletion "pending" is
// the walker's bookkeeping, not this function: the walker holds every
// function's discard deletions in a per-function buffer and only
// appends them to the file's edit list once that function's body has
// been walked to the end, and only if an injection was planned
// somewhere in that same function — so a discard in a function that
// received no injection keeps its line. Generalizes the single-statement deletion shape
// of the teacher's mutagens/boolean.go (which deleted one operand of a
// boolean expression) into a whole-statement-line deletion.
func DiscardDeletion(fset *token.FileSet, content []byte, stmt ast.Node) (m.Edit, bool) {
	offset, ok := OffsetForPos(fset, stmt.Pos())
	if !ok {
		return m.Edit{}, false
	}

	start, end := LineBounds(content, offset)

	return m.Edit{Offset: start, DeleteLen: end - start, Insert: ""}, true
}
