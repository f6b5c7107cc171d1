package ports

import "go.trai.ch/assetpipe/internal/core/domain"

//go:generate mockgen -source=pipeline.go -destination=mocks/mock_pipeline.go -package=mocks

// Pipeline is the set of asset tasks built from one configuration.
type Pipeline interface {
	Executor

	// Graph returns the validated task graph.
	Graph() *domain.Graph

	// WatchRules returns the source pattern groups that trigger reruns.
	WatchRules() []domain.WatchRule

	// Affected returns the ordered series of tasks to re-run for the given
	// changed paths. Paths are absolute.
	Affected(paths []string) []string
}

// PipelineFactory builds a Pipeline for a configuration.
type PipelineFactory interface {
	// New constructs every task from cfg. Advisory problems found while the
	// tasks run are reported to sink.
	New(cfg domain.Config, sink DiagnosticSink) (Pipeline, error)
}

// DiagnosticSink receives non-fatal problems reported by tasks.
type DiagnosticSink interface {
	Report(d domain.Diagnostic)
}
