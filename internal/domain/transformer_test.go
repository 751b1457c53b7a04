package domain

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/filedbg/filedbg/internal/adapter"
	m "github.com/filedbg/filedbg/internal/model"
)

func writeTemp(t *testing.T, dir, name, content string) m.Path {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}

	return m.Path(path)
}

func TestTransformer_PassesThroughFileWithNoMarkers(t *testing.T) {
	dir := t.TempDir()
	input := writeTemp(t, dir, "plain.go", "package p\n\nfunc f() {}\n")
	output := m.Path(filepath.Join(dir, "out.go"))

	xf := NewTransformer(adapter.NewLocalSourceFSAdapter())

	res, err := xf.Transform(m.TransformRequest{Input: input, Output: output})
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	if !res.PassedThrough {
		t.Error("PassedThrough = false, want true for a file with no markers")
	}

	got, err := os.ReadFile(string(output))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	if string(got) != "package p\n\nfunc f() {}\n" {
		t.Errorf("output = %q, want the input unchanged", got)
	}
}

func TestTransformer_InstrumentsBreakMarker(t *testing.T) {
	dir := t.TempDir()
	input := writeTemp(t, dir, "main.go", "package p\n\nfunc f() {\n\tBREAK\n}\n")
	output := m.Path(filepath.Join(dir, "out.go"))

	xf := NewTransformer(adapter.NewLocalSourceFSAdapter())

	res, err := xf.Transform(m.TransformRequest{Input: input, Output: output})
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	if res.Edits == 0 {
		t.Fatal("Edits = 0, want at least the BREAK rewrite")
	}

	got, err := os.ReadFile(string(output))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	out := string(got)

	if !strings.Contains(out, "debug.OnBreak") {
		t.Errorf("output missing debug.OnBreak call:\n%s", out)
	}

	if !strings.Contains(out, `import debug "github.com/filedbg/filedbg/internal/runtime"`) {
		t.Errorf("output missing the aliased runtime import:\n%s", out)
	}

	if !strings.Contains(out, "Code generated by filedbg") {
		t.Errorf("output missing the generated-code marker:\n%s", out)
	}
}

func TestTransformer_IdempotentOnAlreadyGeneratedFile(t *testing.T) {
	dir := t.TempDir()
	src := "package p\n" +
		"// Code generated by filedbg -- DO NOT EDIT.\n\n" +
		"import debug \"github.com/filedbg/filedbg/internal/runtime\"\n\n" +
		"func f() {\n\tdebug.OnBreak(\"f\", \"main.go\", 0x1, 4, []string{}, []any{})\n}\n"
	input := writeTemp(t, dir, "main.go", src)
	output := m.Path(filepath.Join(dir, "out.go"))

	xf := NewTransformer(adapter.NewLocalSourceFSAdapter())

	res, err := xf.Transform(m.TransformRequest{Input: input, Output: output})
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	got, err := os.ReadFile(string(output))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	if string(got) != src {
		t.Errorf("output changed on an already-instrumented file:\n%s", got)
	}

	if res.Edits != 0 {
		t.Errorf("Edits = %d, want 0 on an already-instrumented file", res.Edits)
	}
}

func TestTransformer_ParseErrorPassesThrough(t *testing.T) {
	dir := t.TempDir()
	input := writeTemp(t, dir, "broken.go", "package p\n\nfunc f( {\n\tBREAK\n")
	output := m.Path(filepath.Join(dir, "out.go"))

	xf := NewTransformer(adapter.NewLocalSourceFSAdapter())

	res, err := xf.Transform(m.TransformRequest{Input: input, Output: output})
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	if !res.PassedThrough || res.Warning == "" {
		t.Errorf("result = %+v, want a passed-through warning for unparseable input", res)
	}
}

func TestTransformer_BuildFileDirectiveRewrite(t *testing.T) {
	dir := t.TempDir()
	input := writeTemp(t, dir, "tools.go", "package tools\n\n//go:generate filedbg transform \"../main.go\" out.go\n")
	output := m.Path(filepath.Join(dir, "out.go"))

	xf := NewTransformer(adapter.NewLocalSourceFSAdapter())

	if _, err := xf.Transform(m.TransformRequest{Input: input, Output: output}); err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	got, err := os.ReadFile(string(output))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	if strings.Contains(string(got), `"../main.go"`) {
		t.Errorf("output still has a ../-prefixed path:\n%s", got)
	}
}

func TestTransformer_Analyze_DoesNotWriteOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeTemp(t, dir, "main.go", "package p\n\nfunc f() {\n\tBREAK\n}\n")

	xf := NewTransformer(adapter.NewLocalSourceFSAdapter())

	res, err := xf.Analyze(input, false)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if res.Edits == 0 {
		t.Error("Edits = 0, want at least one for the BREAK marker")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	if len(entries) != 1 {
		t.Errorf("directory has %d entries after Analyze, want just the input file", len(entries))
	}
}
