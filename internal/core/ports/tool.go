package ports

import (
	"context"
	"io"

	"go.trai.ch/assetpipe/internal/core/domain"
)

// ToolRunner runs external command line tools.
//
//go:generate mockgen -source=tool.go -destination=mocks/mock_tool.go -package=mocks
type ToolRunner interface {
	// Run executes cmd in dir with stdin piped in and output streamed to
	// stdout and stderr. A missing executable yields domain.ErrToolNotFound.
	Run(ctx context.Context, dir string, cmd domain.Command, stdin []byte, stdout, stderr io.Writer) error
}
