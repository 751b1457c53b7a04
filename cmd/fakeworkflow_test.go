package cmd

import (
	"context"

	"github.com/filedbg/filedbg/internal/domain"
	m "github.com/filedbg/filedbg/internal/model"
)

// fakeWorkflow is a hand-written domain.Workflow test double, recording
// every call it receives so tests can assert on what the CLI layer
// passed down without needing a generated mock package.
type fakeWorkflow struct {
	sources []m.Source
	sourcesErr error

	transformReq    m.TransformRequest
	transformResult m.TransformResult
	transformErr    error

	analyzeCalls []analyzeCall
	analyzeResult m.TransformResult
	analyzeErr    error

	stageRoots   []m.Path
	stageOpts    domain.StageOptions
	stageResult  domain.StageResult
	stageErr     error
}

type analyzeCall struct {
	path     m.Path
	stepMode bool
}

func (f *fakeWorkflow) GetSources(roots ...m.Path) ([]m.Source, error) {
	return f.sources, f.sourcesErr
}

func (f *fakeWorkflow) Transform(req m.TransformRequest) (m.TransformResult, error) {
	f.transformReq = req
	return f.transformResult, f.transformErr
}

func (f *fakeWorkflow) Analyze(path m.Path, stepMode bool) (m.TransformResult, error) {
	f.analyzeCalls = append(f.analyzeCalls, analyzeCall{path: path, stepMode: stepMode})
	return f.analyzeResult, f.analyzeErr
}

func (f *fakeWorkflow) Stage(roots []m.Path, opts domain.StageOptions) (domain.StageResult, error) {
	f.stageRoots = roots
	f.stageOpts = opts
	return f.stageResult, f.stageErr
}

func (f *fakeWorkflow) StageContext(ctx context.Context, roots []m.Path, opts domain.StageOptions) (domain.StageResult, error) {
	f.stageRoots = roots
	f.stageOpts = opts
	return f.stageResult, f.stageErr
}

// withFakeWorkflow swaps the package-level workflow for fake for the
// duration of the test, restoring it on cleanup.
func withFakeWorkflow(fake *fakeWorkflow) func() {
	original := workflow
	workflow = fake

	return func() { workflow = original }
}
