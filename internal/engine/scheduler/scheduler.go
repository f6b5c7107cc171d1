// Package scheduler runs the tasks of a graph in dependency order.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"sync"

	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/assetpipe/internal/core/ports"
	"go.trai.ch/zerr"
)

// TaskStatus represents the status of a task.
type TaskStatus string

const (
	// StatusPending indicates the task is waiting to be executed.
	StatusPending TaskStatus = "Pending"
	// StatusRunning indicates the task is currently executing.
	StatusRunning TaskStatus = "Running"
	// StatusCompleted indicates the task has finished successfully.
	StatusCompleted TaskStatus = "Completed"
	// StatusFailed indicates the task execution failed.
	StatusFailed TaskStatus = "Failed"
)

// AllTasks is the target that selects every task in the graph.
const AllTasks = "all"

// Options tune a single Run.
type Options struct {
	// Parallelism caps the number of concurrently running tasks.
	// Zero or less means runtime.NumCPU().
	Parallelism int
	// Only runs the named targets without their dependencies.
	Only bool
}

// Scheduler manages the execution of tasks in the dependency graph.
type Scheduler struct {
	tracer ports.Tracer

	mu         sync.RWMutex
	taskStatus map[string]TaskStatus
}

// NewScheduler creates a new Scheduler with the given dependencies.
func NewScheduler(tracer ports.Tracer) *Scheduler {
	return &Scheduler{
		tracer:     tracer,
		taskStatus: make(map[string]TaskStatus),
	}
}

// Status returns the status of the named task in the latest run that
// included it.
func (s *Scheduler) Status(name string) (TaskStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status, ok := s.taskStatus[name]
	return status, ok
}

// initTaskStatuses initializes the status of tasks in the graph to Pending.
func (s *Scheduler) initTaskStatuses(tasks []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, task := range tasks {
		s.taskStatus[task] = StatusPending
	}
}

// updateStatus updates the status of a task.
func (s *Scheduler) updateStatus(name string, status TaskStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taskStatus[name] = status
}

// Run executes the tasks in the graph with the executor.
// If targetNames contains "all", all tasks in the graph are executed.
// Otherwise the targets and their dependencies are executed, or only the
// targets when opts.Only is set.
func (s *Scheduler) Run(
	ctx context.Context,
	graph *domain.Graph,
	executor ports.Executor,
	targetNames []string,
	opts Options,
) error {
	if err := graph.Validate(); err != nil {
		return err
	}

	state, err := s.newRunState(ctx, graph, executor, targetNames, opts)
	if err != nil {
		return err
	}

	plannedTasks := make([]string, 0, len(state.tasks))
	depMap := make(map[string][]string, len(state.tasks))
	for task := range graph.Walk() {
		if _, ok := state.tasks[task.Name]; !ok {
			continue
		}
		plannedTasks = append(plannedTasks, task.Name)
		deps := make([]string, 0, len(task.Dependencies))
		for _, dep := range task.Dependencies {
			if _, ok := state.tasks[dep]; ok {
				deps = append(deps, dep)
			}
		}
		depMap[task.Name] = deps
	}

	s.tracer.EmitPlan(ctx, plannedTasks, depMap, targetNames)
	s.initTaskStatuses(plannedTasks)

	return state.runExecutionLoop()
}

type result struct {
	task string
	err  error
}

type schedulerRunState struct {
	graph       *domain.Graph
	executor    ports.Executor
	inDegree    map[string]int
	tasks       map[string]domain.Task
	ready       []string
	active      int
	resultsCh   chan result
	errs        error
	ctx         context.Context
	parallelism int
	s           *Scheduler
}

func (s *Scheduler) newRunState(
	ctx context.Context,
	graph *domain.Graph,
	executor ports.Executor,
	targetNames []string,
	opts Options,
) (*schedulerRunState, error) {
	tasksToRun, err := resolveTasksToRun(graph, targetNames, opts.Only)
	if err != nil {
		return nil, err
	}

	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	inDegree := make(map[string]int, len(tasksToRun))
	tasks := make(map[string]domain.Task, len(tasksToRun))
	for name := range tasksToRun {
		task, _ := graph.GetTask(name)
		tasks[name] = task

		// Only dependencies that are part of this run hold the task back.
		degree := 0
		for _, dep := range task.Dependencies {
			if tasksToRun[dep] {
				degree++
			}
		}
		inDegree[name] = degree
	}

	// Seed the ready queue in execution order so runs are reproducible.
	var ready []string
	for task := range graph.Walk() {
		if degree, ok := inDegree[task.Name]; ok && degree == 0 {
			ready = append(ready, task.Name)
		}
	}

	return &schedulerRunState{
		graph:       graph,
		executor:    executor,
		inDegree:    inDegree,
		tasks:       tasks,
		ready:       ready,
		resultsCh:   make(chan result, parallelism),
		ctx:         ctx,
		parallelism: parallelism,
		s:           s,
	}, nil
}

func resolveTasksToRun(graph *domain.Graph, targetNames []string, only bool) (map[string]bool, error) {
	tasksToRun := make(map[string]bool)
	if slices.Contains(targetNames, AllTasks) {
		for task := range graph.Walk() {
			tasksToRun[task.Name] = true
		}
		return tasksToRun, nil
	}

	if len(targetNames) == 0 {
		return nil, domain.ErrNoTargetsSpecified
	}

	queue := make([]string, 0, len(targetNames))
	for _, name := range targetNames {
		if _, ok := graph.GetTask(name); !ok {
			return nil, zerr.With(domain.ErrTaskNotFound, "task", name)
		}
		if !tasksToRun[name] {
			tasksToRun[name] = true
			queue = append(queue, name)
		}
	}
	if only {
		return tasksToRun, nil
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		task, _ := graph.GetTask(current)
		for _, dep := range task.Dependencies {
			if !tasksToRun[dep] {
				tasksToRun[dep] = true
				queue = append(queue, dep)
			}
		}
	}
	return tasksToRun, nil
}

func (state *schedulerRunState) runExecutionLoop() error {
	done := state.ctx.Done()
	for !state.isDone() {
		state.schedule()

		if state.isDone() {
			break
		}

		if state.ctx.Err() != nil && state.active == 0 {
			return errors.Join(state.errs, state.ctx.Err())
		}

		select {
		case res := <-state.resultsCh:
			state.handleResult(res)
		case <-done:
			// Active tasks still report; only wait for them from here on.
			done = nil
		}
	}

	if state.ctx.Err() != nil {
		state.errs = errors.Join(state.errs, state.ctx.Err())
	}

	return state.errs
}

func (state *schedulerRunState) isDone() bool {
	return state.active == 0 && len(state.ready) == 0
}

func (state *schedulerRunState) schedule() {
	for len(state.ready) > 0 && state.active < state.parallelism && state.ctx.Err() == nil {
		taskName := state.ready[0]
		state.ready = state.ready[1:]

		state.active++
		state.s.updateStatus(taskName, StatusRunning)

		t := state.tasks[taskName]
		go state.executeTask(&t)
	}
}

func (state *schedulerRunState) executeTask(t *domain.Task) {
	// End the span before reporting the result so the renderer sees the
	// completion ahead of any dependent's start.
	res := func() result {
		ctx, span := state.s.tracer.Start(state.ctx, t.Name)
		defer span.End()

		err := state.executor.Execute(ctx, t, span, span)
		if err != nil {
			span.RecordError(err)
		}
		return result{task: t.Name, err: err}
	}()

	state.resultsCh <- res
}

func (state *schedulerRunState) handleResult(res result) {
	state.active--

	if res.err != nil {
		enhancedErr := zerr.With(fmt.Errorf("%w: %w", domain.ErrTaskExecutionFailed, res.err), "task", res.task)
		state.errs = errors.Join(state.errs, enhancedErr)
		state.s.updateStatus(res.task, StatusFailed)
		return
	}

	state.s.updateStatus(res.task, StatusCompleted)
	for _, dep := range state.graph.Dependents(res.task) {
		if _, ok := state.tasks[dep]; ok {
			state.inDegree[dep]--
			if state.inDegree[dep] == 0 {
				state.ready = append(state.ready, dep)
			}
		}
	}
}
