package assets

import (
	"time"

	"go.trai.ch/assetpipe/internal/adapters/sass"
	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/assetpipe/internal/core/ports"
)

var _ ports.PipelineFactory = (*Factory)(nil)

// Factory implements ports.PipelineFactory.
type Factory struct {
	resolver ports.InputResolver
	manifest ports.VendorManifest
	tools    ports.ToolRunner
	logger   ports.Logger
	now      func() time.Time
}

// Option configures a Factory.
type Option func(*Factory)

// WithClock sets the clock used for cache-busting stamps.
func WithClock(now func() time.Time) Option {
	return func(f *Factory) {
		f.now = now
	}
}

// NewFactory creates a new Factory.
func NewFactory(
	resolver ports.InputResolver,
	manifest ports.VendorManifest,
	tools ports.ToolRunner,
	logger ports.Logger,
	opts ...Option,
) *Factory {
	f := &Factory{
		resolver: resolver,
		manifest: manifest,
		tools:    tools,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// New builds every task from cfg and validates the resulting graph.
func (f *Factory) New(cfg domain.Config, sink ports.DiagnosticSink) (ports.Pipeline, error) {
	e := &env{
		cfg:      cfg,
		paths:    cfg.Paths(),
		resolver: f.resolver,
		manifest: f.manifest,
		styles:   sass.New(f.tools, f.logger, cfg.Tools.Sass, cfg.Root),
		tools:    f.tools,
		sink:     sink,
		now:      f.now,
	}

	p := &Pipeline{
		root:    cfg.Root,
		graph:   domain.NewGraph(),
		runners: make(map[string]runFunc),
		rules:   e.watchRules(),
	}
	p.graph.SetRoot(cfg.Root)

	for _, def := range e.definitions() {
		if err := p.graph.AddTask(&def.task); err != nil {
			return nil, err
		}
		p.runners[def.task.Name] = def.run
	}

	if err := p.graph.Validate(); err != nil {
		return nil, err
	}
	if err := p.graph.VerifyOutputs(); err != nil {
		return nil, err
	}
	return p, nil
}

func (e *env) definitions() []definition {
	return []definition{
		e.clean(),
		e.vendor(),
		e.images(),
		e.video(),
		e.fonts(),
		e.json(),
		e.css(),
		e.lint(),
		e.typescript(),
		e.html(),
	}
}

// watchRules ties source groups to the task series they re-run.
func (e *env) watchRules() []domain.WatchRule {
	return []domain.WatchRule{
		{Patterns: []string{e.src("ts/**/*.ts")}, Tasks: []string{taskLint, taskTypeScript}},
		{Patterns: []string{e.src("typings/**/*.d.ts")}, Tasks: []string{taskTypeScript}},
		{Patterns: []string{e.src("**/*.html")}, Tasks: []string{taskHTML}},
	}
}
