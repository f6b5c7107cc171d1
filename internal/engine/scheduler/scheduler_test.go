package scheduler_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetpipe/internal/adapters/telemetry"
	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/assetpipe/internal/core/ports"
	"go.trai.ch/assetpipe/internal/core/ports/mocks"
	"go.trai.ch/assetpipe/internal/engine/scheduler"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// createGraphHelper constructs a graph from a simple map of dependencies.
// deps format: "target" -> ["dep1", "dep2"].
func createGraphHelper(t *testing.T, deps map[string][]string) *domain.Graph {
	t.Helper()
	g := domain.NewGraph()
	g.SetRoot("/tmp/root")

	for name, myDeps := range deps {
		require.NoError(t, g.AddTask(&domain.Task{Name: name, Dependencies: myDeps}))
	}

	// Add any dependencies that weren't explicitly keys in the map.
	for _, myDeps := range deps {
		for _, d := range myDeps {
			if _, ok := g.GetTask(d); !ok {
				require.NoError(t, g.AddTask(&domain.Task{Name: d}))
			}
		}
	}

	require.NoError(t, g.Validate())
	return g
}

// taskMatcher implements gomock.Matcher for domain.Task.
type taskMatcher struct {
	name string
}

func (m taskMatcher) Matches(x any) bool {
	t, ok := x.(*domain.Task)
	if !ok {
		return false
	}
	return t.Name == m.name
}

func (m taskMatcher) String() string {
	return "task name is " + m.name
}

func matchTask(name string) gomock.Matcher {
	return taskMatcher{name: name}
}

func expectTask(executor *mocks.MockExecutor, name string) *gomock.Call {
	return executor.EXPECT().Execute(gomock.Any(), matchTask(name), gomock.Any(), gomock.Any())
}

// assetGraph mirrors the shape of the asset pipeline: clean first, then the
// transforms.
func assetGraph(t *testing.T) *domain.Graph {
	t.Helper()
	return createGraphHelper(t, map[string][]string{
		"css":        {"clean"},
		"json":       {"clean"},
		"typescript": {"clean"},
	})
}

func TestScheduler_DiamondDependency(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		// Graph: A -> B, A -> C, B -> D, C -> D
		// Execution Order should be: D -> (B, C parallel) -> A.
		g := createGraphHelper(t, map[string][]string{
			"A": {"B", "C"},
			"B": {"D"},
			"C": {"D"},
		})
		ctrl := gomock.NewController(t)
		executor := mocks.NewMockExecutor(ctrl)
		s := scheduler.NewScheduler(telemetry.NewNoOpTracer())

		dCall := expectTask(executor, "D").Return(nil).Times(1)
		bCall := expectTask(executor, "B").Return(nil).Times(1).After(dCall)
		cCall := expectTask(executor, "C").Return(nil).Times(1).After(dCall)
		expectTask(executor, "A").Return(nil).Times(1).After(bCall).After(cCall)

		err := s.Run(t.Context(), g, executor, []string{"all"}, scheduler.Options{Parallelism: 4})
		require.NoError(t, err)

		for _, name := range []string{"A", "B", "C", "D"} {
			status, ok := s.Status(name)
			require.True(t, ok)
			assert.Equal(t, scheduler.StatusCompleted, status)
		}
	})
}

func TestScheduler_TransformsRunConcurrently(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		g := assetGraph(t)
		ctrl := gomock.NewController(t)
		executor := mocks.NewMockExecutor(ctrl)
		s := scheduler.NewScheduler(telemetry.NewNoOpTracer())

		// Each transform waits until all three are running.
		var started sync.WaitGroup
		started.Add(3)
		transform := func(context.Context, *domain.Task, io.Writer, io.Writer) error {
			started.Done()
			started.Wait()
			return nil
		}

		clean := expectTask(executor, "clean").Return(nil)
		expectTask(executor, "css").DoAndReturn(transform).After(clean)
		expectTask(executor, "json").DoAndReturn(transform).After(clean)
		expectTask(executor, "typescript").DoAndReturn(transform).After(clean)

		require.NoError(t, s.Run(t.Context(), g, executor, []string{"all"}, scheduler.Options{Parallelism: 3}))
	})
}

func TestScheduler_FailurePropagation(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		g := assetGraph(t)
		ctrl := gomock.NewController(t)
		executor := mocks.NewMockExecutor(ctrl)
		s := scheduler.NewScheduler(telemetry.NewNoOpTracer())

		// clean fails: no transform may run.
		failureErr := errors.New("permission denied")
		expectTask(executor, "clean").Return(failureErr).Times(1)
		expectTask(executor, "css").Times(0)
		expectTask(executor, "json").Times(0)
		expectTask(executor, "typescript").Times(0)

		err := s.Run(t.Context(), g, executor, []string{"all"}, scheduler.Options{Parallelism: 4})
		require.ErrorIs(t, err, failureErr)
		require.ErrorIs(t, err, domain.ErrTaskExecutionFailed)

		var zErr *zerr.Error
		require.ErrorAs(t, err, &zErr)
		assert.Equal(t, "clean", zErr.Metadata()["task"])

		assert.Equal(t, map[string]scheduler.TaskStatus{
			"clean":      scheduler.StatusFailed,
			"css":        scheduler.StatusPending,
			"json":       scheduler.StatusPending,
			"typescript": scheduler.StatusPending,
		}, s.GetTaskStatusMap())
	})
}

func TestScheduler_SiblingFailureDoesNotCancel(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		g := assetGraph(t)
		ctrl := gomock.NewController(t)
		executor := mocks.NewMockExecutor(ctrl)
		s := scheduler.NewScheduler(telemetry.NewNoOpTracer())

		cssErr := errors.New("css broke")
		tsErr := errors.New("ts broke")
		expectTask(executor, "clean").Return(nil)
		expectTask(executor, "css").Return(cssErr)
		expectTask(executor, "typescript").Return(tsErr)
		expectTask(executor, "json").DoAndReturn(
			func(ctx context.Context, _ *domain.Task, _, _ io.Writer) error {
				synctest.Wait()
				return ctx.Err()
			},
		)

		err := s.Run(t.Context(), g, executor, []string{"all"}, scheduler.Options{Parallelism: 4})
		require.ErrorIs(t, err, cssErr)
		require.ErrorIs(t, err, tsErr)

		status, _ := s.Status("json")
		assert.Equal(t, scheduler.StatusCompleted, status)
	})
}

func TestScheduler_Targets(t *testing.T) {
	tests := []struct {
		name    string
		targets []string
		opts    scheduler.Options
		want    []string
	}{
		{
			name:    "target pulls in its dependencies",
			targets: []string{"css"},
			want:    []string{"clean", "css"},
		},
		{
			name:    "only runs the target alone",
			targets: []string{"css", "json"},
			opts:    scheduler.Options{Only: true},
			want:    []string{"css", "json"},
		},
		{
			name:    "all runs everything",
			targets: []string{"all"},
			want:    []string{"clean", "css", "json", "typescript"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synctest.Test(t, func(t *testing.T) {
				g := assetGraph(t)
				ctrl := gomock.NewController(t)
				executor := mocks.NewMockExecutor(ctrl)
				s := scheduler.NewScheduler(telemetry.NewNoOpTracer())

				var mu sync.Mutex
				var ran []string
				executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, task *domain.Task, _, _ io.Writer) error {
						mu.Lock()
						defer mu.Unlock()
						ran = append(ran, task.Name)
						return nil
					},
				).AnyTimes()

				require.NoError(t, s.Run(t.Context(), g, executor, tt.targets, tt.opts))
				assert.ElementsMatch(t, tt.want, ran)
			})
		})
	}
}

func TestScheduler_TargetErrors(t *testing.T) {
	g := assetGraph(t)
	ctrl := gomock.NewController(t)
	s := scheduler.NewScheduler(telemetry.NewNoOpTracer())
	executor := mocks.NewMockExecutor(ctrl)

	err := s.Run(t.Context(), g, executor, []string{"fonts"}, scheduler.Options{})
	require.ErrorContains(t, err, domain.ErrTaskNotFound.Error())

	err = s.Run(t.Context(), g, executor, nil, scheduler.Options{})
	require.ErrorContains(t, err, domain.ErrNoTargetsSpecified.Error())
}

func TestScheduler_SpansAndPlan(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		g := assetGraph(t)
		ctrl := gomock.NewController(t)
		executor := mocks.NewMockExecutor(ctrl)
		tracer := mocks.NewMockTracer(ctrl)
		span := mocks.NewMockSpan(ctrl)
		s := scheduler.NewScheduler(tracer)

		tracer.EXPECT().EmitPlan(
			gomock.Any(),
			[]string{"clean", "css"},
			map[string][]string{"clean": {}, "css": {"clean"}},
			[]string{"css"},
		)
		tracer.EXPECT().Start(gomock.Any(), "clean").DoAndReturn(
			func(ctx context.Context, _ string) (context.Context, ports.Span) { return ctx, span },
		)
		tracer.EXPECT().Start(gomock.Any(), "css").DoAndReturn(
			func(ctx context.Context, _ string) (context.Context, ports.Span) { return ctx, span },
		)
		span.EXPECT().End().Times(2)

		cssErr := errors.New("undefined variable")
		span.EXPECT().RecordError(cssErr)

		expectTask(executor, "clean").DoAndReturn(
			func(_ context.Context, _ *domain.Task, stdout, stderr io.Writer) error {
				assert.Equal(t, span, stdout)
				assert.Equal(t, span, stderr)
				return nil
			},
		)
		expectTask(executor, "css").Return(cssErr)

		err := s.Run(t.Context(), g, executor, []string{"css"}, scheduler.Options{})
		require.ErrorIs(t, err, cssErr)
	})
}

func TestScheduler_Cancellation(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		g := assetGraph(t)
		ctrl := gomock.NewController(t)
		executor := mocks.NewMockExecutor(ctrl)
		s := scheduler.NewScheduler(telemetry.NewNoOpTracer())

		expectTask(executor, "clean").DoAndReturn(
			func(ctx context.Context, _ *domain.Task, _, _ io.Writer) error {
				<-ctx.Done()
				return ctx.Err()
			},
		).Times(1)

		ctx, cancel := context.WithCancel(t.Context())
		errCh := make(chan error, 1)
		go func() {
			errCh <- s.Run(ctx, g, executor, []string{"all"}, scheduler.Options{})
		}()

		synctest.Wait()
		cancel()

		err := <-errCh
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestScheduler_ZeroTaskGraph(t *testing.T) {
	g := createGraphHelper(t, map[string][]string{})
	ctrl := gomock.NewController(t)
	s := scheduler.NewScheduler(telemetry.NewNoOpTracer())

	err := s.Run(t.Context(), g, mocks.NewMockExecutor(ctrl), []string{"all"}, scheduler.Options{})

	require.NoError(t, err)
}

func TestScheduler_CancellationWaitsForActiveTasks(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		g := assetGraph(t)
		ctrl := gomock.NewController(t)
		executor := mocks.NewMockExecutor(ctrl)
		s := scheduler.NewScheduler(telemetry.NewNoOpTracer())

		release := make(chan struct{})
		expectTask(executor, "clean").DoAndReturn(
			func(_ context.Context, _ *domain.Task, _, _ io.Writer) error {
				<-release
				return nil
			},
		).Times(1)

		ctx, cancel := context.WithCancel(t.Context())
		errCh := make(chan error, 1)
		go func() {
			errCh <- s.Run(ctx, g, executor, []string{"all"}, scheduler.Options{})
		}()

		synctest.Wait()
		cancel()

		// The run loop blocks on the active task instead of spinning.
		synctest.Wait()
		select {
		case err := <-errCh:
			t.Fatalf("run returned before its active task: %v", err)
		default:
		}

		close(release)
		err := <-errCh
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, scheduler.StatusCompleted, s.GetTaskStatusMap()["clean"])
	})
}
