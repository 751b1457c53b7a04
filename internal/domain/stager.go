package domain

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/filedbg/filedbg/internal/adapter"
	m "github.com/filedbg/filedbg/internal/model"
)

// DefaultStageDest is the staging directory Stager copies a project
// tree into when the caller doesn't override it (spec.md §4.1.1).
const DefaultStageDest = "processed"

// StageOptions configures one Stager.Stage call.
type StageOptions struct {
	Dest        m.Path
	Parallel    int
	Exclude     []*regexp.Regexp
	StepMode    bool
	RuntimePath string
}

// Stager copies a project tree into a staging directory and instruments
// every Go source file in the copy, skipping exclusions and
// //filedbg:ignore'd files (spec.md §4.1.1). Grounded on the teacher's
// orchestrator.go staging pattern (CopyDir into a scratch directory
// before mutating a copy) and workflow.go's job/result worker pool,
// upgraded here to golang.org/x/sync/errgroup so the first transform
// failure cancels the remaining in-flight workers instead of running
// every file to completion regardless.
type Stager struct {
	fs   adapter.SourceFSAdapter
	xf   *Transformer
	opts func() StageOptions
}

// NewStager constructs a Stager backed by fs and xf.
func NewStager(fs adapter.SourceFSAdapter, xf *Transformer) *Stager {
	return &Stager{fs: fs, xf: xf}
}

// StageResult summarizes one Stage call.
type StageResult struct {
	Files   int
	Skipped int
	Edits   int
}

// Stage copies roots into opts.Dest (or DefaultStageDest) and
// instruments every .go file in the copy that isn't excluded.
func (s *Stager) Stage(roots []m.Path, opts StageOptions) (StageResult, error) {
	return s.StageContext(context.Background(), roots, opts)
}

// StageContext is Stage with ctx cancellation honored between files —
// errgroup.Group itself has no context awareness, so Stage checks ctx
// explicitly before dispatching each file, instead of adopting a
// context-aware worker-pool abstraction the teacher never used.
func (s *Stager) StageContext(ctx context.Context, roots []m.Path, opts StageOptions) (StageResult, error) {
	dest := opts.Dest
	if dest == "" {
		dest = DefaultStageDest
	}

	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = 1
	}

	for _, root := range roots {
		if err := s.fs.CopyDir(root, dest); err != nil {
			return StageResult{}, fmt.Errorf("stage %s into %s: %w", root, dest, err)
		}
	}

	files, err := s.fs.Get([]m.Path{dest})
	if err != nil {
		return StageResult{}, fmt.Errorf("list staged sources: %w", err)
	}

	var (
		result   StageResult
		resultMu sync.Mutex
		group    errgroup.Group
	)

	group.SetLimit(parallel)

	for _, src := range files {
		src := src

		if err := ctx.Err(); err != nil {
			return result, err
		}

		if excluded(src.Origin, opts.Exclude) {
			result.Skipped++
			continue
		}

		group.Go(func() error {
			res, err := s.xf.Transform(m.TransformRequest{
				Input:       src.Origin,
				Output:      src.Origin,
				StepMode:    opts.StepMode,
				RuntimePath: opts.RuntimePath,
			})
			if err != nil {
				return fmt.Errorf("stage %s: %w", src.Origin, err)
			}

			resultMu.Lock()
			result.Edits += res.Edits
			result.Files++
			resultMu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return result, err
	}

	return result, nil
}

func excluded(path m.Path, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(string(path)) {
			return true
		}
	}

	return false
}
