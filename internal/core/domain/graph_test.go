package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestGraph_AddTask(t *testing.T) {
	g := domain.NewGraph()
	task := domain.Task{Name: "css"}

	require.NoError(t, g.AddTask(&task))

	err := g.AddTask(&task)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrTaskAlreadyExists.Error())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "css", zErr.Metadata()["task_name"])
}

func TestGraph_Cycle(t *testing.T) {
	tests := []struct {
		name    string
		tasks   []domain.Task
		wantErr error
	}{
		{
			name:    "Self Cycle",
			tasks:   []domain.Task{{Name: "A", Dependencies: []string{"A"}}},
			wantErr: domain.ErrCycleDetected,
		},
		{
			name: "Three Node Cycle A->B->C->A",
			tasks: []domain.Task{
				{Name: "A", Dependencies: []string{"B"}},
				{Name: "B", Dependencies: []string{"C"}},
				{Name: "C", Dependencies: []string{"A"}},
			},
			wantErr: domain.ErrCycleDetected,
		},
		{
			name:    "Missing Dependency",
			tasks:   []domain.Task{{Name: "A", Dependencies: []string{"ghost"}}},
			wantErr: domain.ErrMissingDependency,
		},
		{
			name: "Diamond",
			tasks: []domain.Task{
				{Name: "clean"},
				{Name: "css", Dependencies: []string{"clean"}},
				{Name: "json", Dependencies: []string{"clean"}},
				{Name: "html", Dependencies: []string{"css", "json"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := domain.NewGraph()
			for i := range tt.tasks {
				require.NoError(t, g.AddTask(&tt.tasks[i]))
			}

			err := g.Validate()
			if tt.wantErr != nil {
				require.ErrorContains(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestGraph_CycleMetadata(t *testing.T) {
	g := domain.NewGraph()
	require.NoError(t, g.AddTask(&domain.Task{Name: "A", Dependencies: []string{"B"}}))
	require.NoError(t, g.AddTask(&domain.Task{Name: "B", Dependencies: []string{"A"}}))

	err := g.Validate()

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "A -> B -> A", zErr.Metadata()["cycle"])
}

func TestGraph_Walk(t *testing.T) {
	g := domain.NewGraph()
	require.NoError(t, g.AddTask(&domain.Task{Name: "typescript", Dependencies: []string{"clean"}}))
	require.NoError(t, g.AddTask(&domain.Task{Name: "css", Dependencies: []string{"clean"}}))
	require.NoError(t, g.AddTask(&domain.Task{Name: "clean"}))
	require.NoError(t, g.Validate())

	var order []string
	for task := range g.Walk() {
		order = append(order, task.Name)
	}

	assert.Equal(t, []string{"clean", "css", "typescript"}, order)
	assert.ElementsMatch(t, []string{"typescript", "css"}, g.Dependents("clean"))
	assert.Equal(t, 3, g.TaskCount())
}

func TestGraph_GetTask(t *testing.T) {
	g := domain.NewGraph()
	g.SetRoot("/project")
	require.NoError(t, g.AddTask(&domain.Task{Name: "fonts", Reload: true}))

	task, ok := g.GetTask("fonts")
	require.True(t, ok)
	assert.True(t, task.Reload)

	_, ok = g.GetTask("video")
	assert.False(t, ok)
	assert.Equal(t, "/project", g.Root())
}

func TestGraph_VerifyOutputs(t *testing.T) {
	tests := []struct {
		name    string
		tasks   []domain.Task
		wantErr bool
	}{
		{
			name: "disjoint files in a shared directory",
			tasks: []domain.Task{
				{Name: "vendor", Output: domain.OutputContract{Dir: "test/css", Files: []string{"vendor.css"}}},
				{Name: "css", Output: domain.OutputContract{Dir: "test/css", Files: []string{"main.css"}}},
			},
		},
		{
			name: "html at the root beside asset directories",
			tasks: []domain.Task{
				{Name: "html", Output: domain.OutputContract{Dir: "test", Files: []string{"*.html", "*/*.html"}}},
				{Name: "images", Output: domain.OutputContract{Dir: "test/img", Files: []string{"*"}}},
				{Name: "json", Output: domain.OutputContract{Dir: "test/json", Files: []string{"main.json"}}},
			},
		},
		{
			name: "same file claimed twice",
			tasks: []domain.Task{
				{Name: "css", Output: domain.OutputContract{Dir: "test/css", Files: []string{"main.css"}}},
				{Name: "sass", Output: domain.OutputContract{Dir: "test/css", Files: []string{"main.css"}}},
			},
			wantErr: true,
		},
		{
			name: "file inside a directory owned by another task",
			tasks: []domain.Task{
				{Name: "images", Output: domain.OutputContract{Dir: "test/img", Files: []string{"*"}}},
				{Name: "sprites", Output: domain.OutputContract{Dir: "test/img", Files: []string{"sheet.png"}}},
			},
			wantErr: true,
		},
		{
			name: "tasks without outputs never conflict",
			tasks: []domain.Task{
				{Name: "clean"},
				{Name: "lint"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := domain.NewGraph()
			for i := range tt.tasks {
				require.NoError(t, g.AddTask(&tt.tasks[i]))
			}

			err := g.VerifyOutputs()
			if tt.wantErr {
				require.ErrorContains(t, err, domain.ErrOutputConflict.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}
