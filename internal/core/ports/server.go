package ports

import (
	"context"

	"go.trai.ch/assetpipe/internal/core/domain"
)

// ReloadServer serves the output root and pushes reload signals to browsers.
//
//go:generate mockgen -source=server.go -destination=mocks/mock_server.go -package=mocks
type ReloadServer interface {
	// Serve serves root on addr until ctx is cancelled.
	Serve(ctx context.Context, root, addr string) error
	// Reload asks every connected browser to refresh. target names the task
	// whose output changed.
	Reload(target string)
	// Report forwards a diagnostic to every connected browser.
	Report(d domain.Diagnostic)
}
