package injectors

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

func parseFuncWithFset(t *testing.T, src string) (*ast.FuncDecl, *token.FileSet, []byte) {
	t.Helper()

	content := []byte("package p\n" + src)
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "test.go", content, 0)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	for _, decl := range file.Decls {
		if fd, ok := decl.(*ast.FuncDecl); ok {
			return fd, fset, content
		}
	}

	t.Fatal("no function declaration found")

	return nil, nil, nil
}

func TestBreakpointMarker(t *testing.T) {
	fd, fset, content := parseFuncWithFset(t, "func f() {\n\tBREAK\n}")

	es := fd.Body.List[0]

	edit, ok := BreakpointMarker(fset, content, es.Pos(), "f", "main.go", 0xdeadbeef, []string{"x"})
	if !ok {
		t.Fatal("BreakpointMarker() ok = false")
	}

	if !strings.Contains(edit.Insert, `debug.OnBreak("f", "main.go", 0xdeadbeef, 3, []string{"x"}, []any{x})`) {
		t.Errorf("Insert = %q, missing OnBreak call", edit.Insert)
	}

	if strings.Contains(edit.Insert, "ShouldBreak") {
		t.Errorf("Insert = %q, a BREAK marker must not be gated on the polled breakpoint set", edit.Insert)
	}

	if string(content[edit.Offset:edit.Offset+edit.DeleteLen]) != "\tBREAK\n" {
		t.Errorf("deleted span = %q, want the whole BREAK line", content[edit.Offset:edit.Offset+edit.DeleteLen])
	}
}
