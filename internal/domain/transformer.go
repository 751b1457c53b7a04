package domain

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/filedbg/filedbg/internal/adapter"
	"github.com/filedbg/filedbg/internal/domain/injectors"
	m "github.com/filedbg/filedbg/internal/model"
	"github.com/filedbg/filedbg/internal/runtime"
)

// MaxSourceBytes bounds how large an input file the transformer will
// read into memory; larger files are an I/O error, not a parse error
// (spec.md §4.1 step 1).
const MaxSourceBytes = 10 << 20

// DefaultRuntimeImportPath is used when a TransformRequest does not
// override it — it resolves for any file inside this module (including
// every examples/ fixture), since the debug runtime lives at this path.
// Instrumenting a project outside this module requires --runtime-path.
const DefaultRuntimeImportPath = "github.com/filedbg/filedbg/internal/runtime"

const generatedMarker = "// Code generated by filedbg -- DO NOT EDIT."

const defaultBuildFileName = "tools.go"

// breakSentinel and stepSentinel are the raw byte patterns the
// transformer looks for before paying for a full parse (spec.md §4.1
// step 2).
const (
	breakSentinel = "BREAK"
	stepSentinel  = "EnableStep()"
)

// Transformer implements the source-to-source instrumentation pass:
// read, classify, plan edits, apply, write. Grounded on the teacher's
// mutator.go (an ast.Inspect single-purpose walk); generalized here into
// a full read/parse/walk/apply/write pipeline because the injectable-edit
// model needs more stages than a single mutation scan.
type Transformer struct {
	fs      adapter.SourceFSAdapter
	goFiles adapter.GoFileAdapter
}

// NewTransformer constructs a Transformer backed by fs.
func NewTransformer(fs adapter.SourceFSAdapter) *Transformer {
	return &Transformer{fs: fs, goFiles: adapter.NewLocalGoFileAdapter()}
}

// Transform instruments a single file per req, writing the result to
// req.Output and returning a summary for the CLI layer to render
// (spec.md §4.1, §6).
func (t *Transformer) Transform(req m.TransformRequest) (m.TransformResult, error) {
	content, err := t.fs.ReadFile(req.Input)
	if err != nil {
		return m.TransformResult{}, fmt.Errorf("read %s: %w", req.Input, err)
	}

	if len(content) > MaxSourceBytes {
		return m.TransformResult{}, fmt.Errorf("%s exceeds %d bytes", req.Input, MaxSourceBytes)
	}

	if isBuildFile(req.Input, req.BuildFileName) {
		rewritten := rewriteBuildDirectives(content)

		if err := t.writeOutput(req.Output, rewritten); err != nil {
			return m.TransformResult{}, err
		}

		return m.TransformResult{PassedThrough: bytes.Equal(rewritten, content)}, nil
	}

	if !req.StepMode && !bytes.Contains(content, []byte(breakSentinel)) && !bytes.Contains(content, []byte(stepSentinel)) {
		if err := t.writeOutput(req.Output, content); err != nil {
			return m.TransformResult{}, err
		}

		return m.TransformResult{PassedThrough: true, Warning: "(no debug needed)"}, nil
	}

	fset := token.NewFileSet()

	file, err := t.goFiles.Parse(fset, string(req.Input), content)
	if err != nil {
		if werr := t.writeOutput(req.Output, content); werr != nil {
			return m.TransformResult{}, werr
		}

		return m.TransformResult{PassedThrough: true, Warning: "(parse errors, passed through)"}, nil
	}

	globals := injectors.ScanGlobals(file)
	ignores := buildIgnoreIndex(file, fset, content)

	if ignores.file.ignores(kindBreak) && ignores.file.ignores(kindStep) && ignores.file.ignores(kindGlobal) {
		if err := t.writeOutput(req.Output, content); err != nil {
			return m.TransformResult{}, err
		}

		return m.TransformResult{PassedThrough: true, Warning: "(no debug needed)"}, nil
	}

	hash := runtime.ComputeHash(string(req.Input))

	ctx := newWalkContext(fset, content, string(req.Input), uint32(hash), globals, req.StepMode, ignores)
	ctx.walkTopLevel(file)

	edits := ctx.edits
	if headerEdit, ok := planHeader(file, fset, content, req.RuntimePath); ok {
		edits = append(edits, headerEdit)
	}

	if len(edits) == 0 {
		if err := t.writeOutput(req.Output, content); err != nil {
			return m.TransformResult{}, err
		}

		return m.TransformResult{Globals: len(globals), PassedThrough: true, Warning: "(no debug needed)"}, nil
	}

	out, err := applyEdits(content, edits)
	if err != nil {
		return m.TransformResult{}, fmt.Errorf("apply edits to %s: %w", req.Input, err)
	}

	if err := t.writeOutput(req.Output, out); err != nil {
		return m.TransformResult{}, err
	}

	return m.TransformResult{Edits: len(ctx.edits), Globals: len(globals)}, nil
}

// Analyze runs the same read/parse/walk pipeline as Transform but never
// writes anything, for `filedbg list`'s injection-site count (spec.md
// §6's list command never mutates the project it inspects).
func (t *Transformer) Analyze(path m.Path, stepMode bool) (m.TransformResult, error) {
	content, err := t.fs.ReadFile(path)
	if err != nil {
		return m.TransformResult{}, fmt.Errorf("read %s: %w", path, err)
	}

	if len(content) > MaxSourceBytes {
		return m.TransformResult{}, fmt.Errorf("%s exceeds %d bytes", path, MaxSourceBytes)
	}

	if !stepMode && !bytes.Contains(content, []byte(breakSentinel)) && !bytes.Contains(content, []byte(stepSentinel)) {
		return m.TransformResult{PassedThrough: true}, nil
	}

	fset := token.NewFileSet()

	file, err := t.goFiles.Parse(fset, string(path), content)
	if err != nil {
		return m.TransformResult{PassedThrough: true, Warning: "(parse errors, passed through)"}, nil
	}

	globals := injectors.ScanGlobals(file)
	ignores := buildIgnoreIndex(file, fset, content)
	hash := runtime.ComputeHash(string(path))

	ctx := newWalkContext(fset, content, string(path), uint32(hash), globals, stepMode, ignores)
	ctx.walkTopLevel(file)

	return m.TransformResult{Edits: len(ctx.edits), Globals: len(globals), PassedThrough: len(ctx.edits) == 0}, nil
}

func (t *Transformer) writeOutput(path m.Path, content []byte) error {
	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create output dir for %s: %w", path, err)
		}
	}

	if err := t.fs.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// planHeader inserts the generated-code marker and the aliased runtime
// import immediately after the package clause (and its doc comment, if
// any), per spec.md §4.1 step 5. A file already carrying the marker is
// left untouched (idempotence, spec.md §9).
func planHeader(file *ast.File, fset *token.FileSet, content []byte, runtimePath string) (m.Edit, bool) {
	if bytes.Contains(content, []byte(generatedMarker)) {
		return m.Edit{}, false
	}

	if runtimePath == "" {
		runtimePath = DefaultRuntimeImportPath
	}

	// file.Name.End() already falls after any leading package doc comment,
	// since the doc comment textually precedes the package clause.
	offset, ok := injectors.OffsetForPos(fset, file.Name.End())
	if !ok {
		return m.Edit{}, false
	}

	_, lineEnd := injectors.LineBounds(content, offset)

	header := fmt.Sprintf("\n%s\n\nimport debug %q\n", generatedMarker, runtimePath)

	return m.Edit{Offset: lineEnd, DeleteLen: 0, Insert: header}, true
}

// applyEdits sorts edits by offset and applies them in one linear pass.
// Overlapping edits are a transformer bug, not recoverable input — the
// walker's own bookkeeping (one edit per line, discards suppressed when
// an injection already claimed the line) is what keeps this from
// happening, per spec.md §3's Edit invariant.
func applyEdits(content []byte, edits []m.Edit) ([]byte, error) {
	sorted := append([]m.Edit{}, edits...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })

	var out bytes.Buffer

	cursor := 0

	for _, e := range sorted {
		if e.Offset < cursor {
			return nil, fmt.Errorf("overlapping edit at offset %d (cursor %d)", e.Offset, cursor)
		}

		out.Write(content[cursor:e.Offset])
		out.WriteString(e.Insert)
		cursor = e.Offset + e.DeleteLen
	}

	if cursor < len(content) {
		out.Write(content[cursor:])
	}

	return out.Bytes(), nil
}

func isBuildFile(path m.Path, override string) bool {
	name := defaultBuildFileName
	if override != "" {
		name = override
	}

	return filepath.Base(string(path)) == name
}

// rewriteBuildDirectives rewrites //go:generate filedbg transform "../X"
// arguments prefixed with "../" to account for the instrumented tree
// running from a nested processed/ staging directory (spec.md §4.1 step
// 8). Purely textual: no AST is needed for a single-line directive.
func rewriteBuildDirectives(content []byte) []byte {
	lines := strings.Split(string(content), "\n")

	const prefix = "//go:generate filedbg transform "

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, prefix) {
			continue
		}

		lines[i] = rewriteGenerateLine(line, trimmed, prefix)
	}

	return []byte(strings.Join(lines, "\n"))
}

func rewriteGenerateLine(original, trimmed, prefix string) string {
	rest := strings.TrimPrefix(trimmed, prefix)

	start := strings.Index(rest, `"../`)
	if start < 0 {
		return original
	}

	end := strings.Index(rest[start+1:], `"`)
	if end < 0 {
		return original
	}

	end += start + 1

	arg := rest[start+1 : end]
	rewritten := strings.TrimPrefix(arg, "../")

	return strings.Replace(original, `"`+arg+`"`, `"`+rewritten+`"`, 1)
}
