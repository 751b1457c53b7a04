package domain

import (
	"context"

	"github.com/filedbg/filedbg/internal/adapter"
	m "github.com/filedbg/filedbg/internal/model"
)

// Workflow is the top-level entry point the CLI layer drives: list
// sources, transform one file, or stage a whole tree. Grounded on the
// teacher's Workflow interface (internal/domain/workflow.go), narrowed
// from mutation-testing's generate/estimate/run-tests triad to this
// module's transform/stage/analyze triad.
type Workflow interface {
	GetSources(roots ...m.Path) ([]m.Source, error)
	Transform(req m.TransformRequest) (m.TransformResult, error)
	Analyze(path m.Path, stepMode bool) (m.TransformResult, error)
	Stage(roots []m.Path, opts StageOptions) (StageResult, error)
	StageContext(ctx context.Context, roots []m.Path, opts StageOptions) (StageResult, error)
}

type workflow struct {
	fs adapter.SourceFSAdapter
	xf *Transformer
	st *Stager
}

// NewWorkflow constructs a Workflow backed by fs.
func NewWorkflow(fs adapter.SourceFSAdapter) Workflow {
	xf := NewTransformer(fs)

	return &workflow{
		fs: fs,
		xf: xf,
		st: NewStager(fs, xf),
	}
}

func (w *workflow) GetSources(roots ...m.Path) ([]m.Source, error) {
	if len(roots) == 0 {
		return nil, nil
	}

	return w.fs.Get(roots)
}

func (w *workflow) Transform(req m.TransformRequest) (m.TransformResult, error) {
	return w.xf.Transform(req)
}

func (w *workflow) Analyze(path m.Path, stepMode bool) (m.TransformResult, error) {
	return w.xf.Analyze(path, stepMode)
}

func (w *workflow) Stage(roots []m.Path, opts StageOptions) (StageResult, error) {
	return w.st.Stage(roots, opts)
}

func (w *workflow) StageContext(ctx context.Context, roots []m.Path, opts StageOptions) (StageResult, error) {
	return w.st.StageContext(ctx, roots, opts)
}
