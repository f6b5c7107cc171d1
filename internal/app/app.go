// Package app implements the application layer for assetpipe.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/assetpipe/internal/core/ports"
	"go.trai.ch/assetpipe/internal/engine/scheduler"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	pipelines    ports.PipelineFactory
	watchers     ports.WatcherFactory
	server       ports.ReloadServer
	scheduler    *scheduler.Scheduler
	renderer     ports.Renderer
	logger       ports.Logger
	out          io.Writer
	workDir      string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	pipelines ports.PipelineFactory,
	watchers ports.WatcherFactory,
	server ports.ReloadServer,
	sched *scheduler.Scheduler,
	renderer ports.Renderer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		pipelines:    pipelines,
		watchers:     watchers,
		server:       server,
		scheduler:    sched,
		renderer:     renderer,
		logger:       log,
		out:          os.Stdout,
	}
}

// WithOutput sets the writer the status banner is printed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithWorkDir sets the directory the configuration search starts from.
// It defaults to the process working directory.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// Default builds in development mode and keeps watching and serving.
func (a *App) Default(ctx context.Context) error {
	return a.Build(ctx, domain.ModeDevelopment)
}

// Build runs every task for mode, then serves the output root and re-runs
// affected tasks on source changes until ctx is cancelled.
func (a *App) Build(ctx context.Context, mode domain.Mode) error {
	cfg, pipeline, err := a.prepare(mode)
	if err != nil {
		return err
	}

	watcher, err := a.watchers.New(cfg.Watch)
	if err != nil {
		return err
	}
	defer func() {
		_ = watcher.Stop()
	}()

	if err := a.renderer.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = a.renderer.Stop()
	}()

	g, ctx := errgroup.WithContext(ctx)
	changes := newChangeQueue()

	// The watcher starts alongside the initial run; batches it sees before
	// the run completes are held in the queue.
	g.Go(func() error {
		return watcher.Start(ctx, cfg.Root)
	})
	g.Go(func() error {
		<-ctx.Done()
		_ = watcher.Stop()
		return nil
	})
	g.Go(func() error {
		for event := range watcher.Events() {
			changes.push(event.Paths)
		}
		return nil
	})

	g.Go(func() error {
		err := a.scheduler.Run(ctx, pipeline.Graph(), pipeline, []string{scheduler.AllTasks}, scheduler.Options{})
		if err != nil {
			return executionError(err)
		}
		_ = a.renderer.Stop()

		printBanner(a.out, mode)

		root := cfg.Abs(cfg.Paths().Root)
		g.Go(func() error {
			return a.server.Serve(ctx, root, cfg.Server.Addr())
		})
		return a.watch(ctx, pipeline, changes)
	})

	return g.Wait()
}

// Run runs the named tasks once, without their dependencies, the watcher or
// the server.
func (a *App) Run(ctx context.Context, taskNames []string, mode domain.Mode) error {
	if len(taskNames) == 0 {
		return domain.ErrNoTargetsSpecified
	}

	_, pipeline, err := a.prepare(mode)
	if err != nil {
		return err
	}

	if err := a.renderer.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = a.renderer.Stop()
	}()

	opts := scheduler.Options{Only: true}
	if err := a.scheduler.Run(ctx, pipeline.Graph(), pipeline, taskNames, opts); err != nil {
		return executionError(err)
	}
	return nil
}

// executionError marks task failures, which the renderer has already shown,
// as a failed build. Other scheduler errors pass through unchanged.
func executionError(err error) error {
	if errors.Is(err, domain.ErrTaskExecutionFailed) {
		return errors.Join(domain.ErrBuildExecutionFailed, err)
	}
	return err
}

// prepare loads the configuration for mode and builds its pipeline.
func (a *App) prepare(mode domain.Mode) (domain.Config, ports.Pipeline, error) {
	cwd := a.workDir
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return domain.Config{}, nil, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
		}
		cwd = wd
	}

	loaded, err := a.configLoader.Load(cwd)
	if err != nil {
		return domain.Config{}, nil, zerr.Wrap(err, "failed to load configuration")
	}
	cfg := loaded.WithMode(mode)

	pipeline, err := a.pipelines.New(cfg, newDiagnosticSink(a.logger, a.server))
	if err != nil {
		return domain.Config{}, nil, err
	}
	return cfg, pipeline, nil
}

// watch re-runs the tasks affected by each batch of changes, one batch at a
// time, until ctx ends.
func (a *App) watch(ctx context.Context, pipeline ports.Pipeline, changes *changeQueue) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes.ready:
			a.rerun(ctx, pipeline, changes.take())
		}
	}
}

// rerun runs the series affected by paths in order. The series stops at the
// first failing task; the failure is logged and watching continues.
func (a *App) rerun(ctx context.Context, pipeline ports.Pipeline, paths []string) {
	series := pipeline.Affected(paths)
	if len(series) == 0 {
		return
	}
	a.logger.Info(fmt.Sprintf("%d file(s) changed, running %s", len(paths), strings.Join(series, ", ")))

	defer func() {
		_ = a.renderer.Stop()
	}()

	graph := pipeline.Graph()
	for _, name := range series {
		err := a.scheduler.Run(ctx, graph, pipeline, []string{name}, scheduler.Options{Only: true})
		if err != nil {
			if ctx.Err() == nil {
				a.logger.Error(err)
			}
			return
		}
		if task, ok := graph.GetTask(name); ok && task.Reload {
			a.server.Reload(name)
		}
	}
}
