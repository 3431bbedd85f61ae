package usecase

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"codegraph/internal/adapter/graph"
	"codegraph/internal/domain"
	"codegraph/internal/port"
)

// AnalyzeUseCase runs structural and dependency extraction over a batch of
// already-loaded files and assembles the project dependency graph. Per-file
// analysis is pure and runs in parallel; graph construction needs the
// complete node set to resolve edges, so it is a strict barrier executed
// once, sequentially, after every file finished.
type AnalyzeUseCase struct {
	structure port.StructureAnalyzer
	deps      port.DependencyAnalyzer
	workers   int
}

func NewAnalyzeUseCase(structure port.StructureAnalyzer, deps port.DependencyAnalyzer, workers int) *AnalyzeUseCase {
	if workers < 1 {
		workers = 1
	}
	return &AnalyzeUseCase{structure: structure, deps: deps, workers: workers}
}

// AnalyzeResult holds per-file records in input order plus the built graph.
type AnalyzeResult struct {
	Analyses []domain.FileAnalysis
	Graph    *graph.DependencyGraph
}

// ProgressFunc reports batch progress; processed counts completed files.
type ProgressFunc func(processed, total int)

// Run analyzes every file and builds the graph. A file that fails to parse
// contributes an empty record; it never aborts its siblings.
func (u *AnalyzeUseCase) Run(ctx context.Context, files []domain.SourceFile, depth domain.Depth, progress ProgressFunc) (*AnalyzeResult, error) {
	analyses := make([]domain.FileAnalysis, len(files))

	var processed atomic.Int64
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(u.workers)

	for i, file := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// results land at the file's input index, so the merged
			// order is deterministic regardless of scheduling
			analyses[i] = domain.FileAnalysis{
				FilePath:     file.Path,
				Language:     file.Language,
				Structure:    u.structure.AnalyzeFile(file.Path, file.Content, file.Language, depth),
				Dependencies: u.deps.AnalyzeFile(file.Path, file.Content, file.Language),
			}
			if progress != nil {
				progress(int(processed.Add(1)), len(files))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	dg := graph.New()
	for _, a := range analyses {
		dg.AddFile(a.FilePath, a.Language)
	}
	for _, a := range analyses {
		dg.AddDependencies(a.Dependencies)
	}
	dg.Build()

	return &AnalyzeResult{Analyses: analyses, Graph: dg}, nil
}
