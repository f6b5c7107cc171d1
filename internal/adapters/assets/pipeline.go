// Package assets builds the asset pipeline: one task per asset class, each
// matching its sources, transforming them and writing under the output root
// of the configured mode.
package assets

import (
	"context"
	"io"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/assetpipe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Pipeline = (*Pipeline)(nil)

// Pipeline implements ports.Pipeline.
type Pipeline struct {
	root    string
	graph   *domain.Graph
	runners map[string]runFunc
	rules   []domain.WatchRule
}

// Graph returns the validated task graph.
func (p *Pipeline) Graph() *domain.Graph {
	return p.graph
}

// WatchRules returns the source pattern groups that trigger reruns.
func (p *Pipeline) WatchRules() []domain.WatchRule {
	return p.rules
}

// Execute runs the body of task.
func (p *Pipeline) Execute(ctx context.Context, task *domain.Task, stdout, _ io.Writer) error {
	run, ok := p.runners[task.Name]
	if !ok {
		return zerr.With(domain.ErrUnknownTask, "task", task.Name)
	}
	return run(ctx, stdout)
}

// Affected returns the task series triggered by paths, in rule order and
// without duplicates. Paths outside the project root are ignored.
func (p *Pipeline) Affected(paths []string) []string {
	var series []string
	for _, rule := range p.rules {
		if !p.matchesAny(rule.Patterns, paths) {
			continue
		}
		for _, name := range rule.Tasks {
			if !slices.Contains(series, name) {
				series = append(series, name)
			}
		}
	}
	return series
}

func (p *Pipeline) matchesAny(patterns, paths []string) bool {
	for _, abs := range paths {
		rel, err := filepath.Rel(p.root, abs)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		for _, pattern := range patterns {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				return true
			}
		}
	}
	return false
}
