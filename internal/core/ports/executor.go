// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/assetpipe/internal/core/domain"
)

// Executor defines the interface for executing tasks.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the given task.
	//
	// Progress and tool output are written to stdout and stderr.
	// It returns an error if the task fails fatally.
	Execute(ctx context.Context, task *domain.Task, stdout, stderr io.Writer) error
}
