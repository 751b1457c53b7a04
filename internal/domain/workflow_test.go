package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/filedbg/filedbg/internal/adapter"
	m "github.com/filedbg/filedbg/internal/model"
)

func TestWorkflow_GetSources_NoRootsReturnsNil(t *testing.T) {
	wf := NewWorkflow(adapter.NewLocalSourceFSAdapter())

	sources, err := wf.GetSources()
	if err != nil {
		t.Fatalf("GetSources() error = %v", err)
	}

	if sources != nil {
		t.Errorf("sources = %v, want nil for no roots", sources)
	}
}

func TestWorkflow_GetSources_FindsGoFiles(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"a.go", "b.go", "b_test.go"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("package p\n"), 0o644); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}

	wf := NewWorkflow(adapter.NewLocalSourceFSAdapter())

	sources, err := wf.GetSources(m.Path(dir))
	if err != nil {
		t.Fatalf("GetSources() error = %v", err)
	}

	if len(sources) != 2 {
		t.Errorf("GetSources() returned %d sources, want 2 (non-test files only): %+v", len(sources), sources)
	}
}

func TestWorkflow_Transform_DelegatesToTransformer(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "main.go")

	if err := os.WriteFile(input, []byte("package p\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	output := filepath.Join(dir, "out.go")

	wf := NewWorkflow(adapter.NewLocalSourceFSAdapter())

	res, err := wf.Transform(m.TransformRequest{Input: m.Path(input), Output: m.Path(output)})
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	if !res.PassedThrough {
		t.Error("PassedThrough = false, want true for a plain file")
	}

	if _, err := os.Stat(output); err != nil {
		t.Errorf("expected Transform to write the output file: %v", err)
	}
}
