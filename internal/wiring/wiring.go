// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/assetpipe/internal/adapters/assets"
	_ "go.trai.ch/assetpipe/internal/adapters/config"
	_ "go.trai.ch/assetpipe/internal/adapters/devserver"
	_ "go.trai.ch/assetpipe/internal/adapters/fs"
	_ "go.trai.ch/assetpipe/internal/adapters/linear"
	_ "go.trai.ch/assetpipe/internal/adapters/logger"
	_ "go.trai.ch/assetpipe/internal/adapters/manifest"
	_ "go.trai.ch/assetpipe/internal/adapters/metrics"
	_ "go.trai.ch/assetpipe/internal/adapters/shell"
	_ "go.trai.ch/assetpipe/internal/adapters/telemetry"
	_ "go.trai.ch/assetpipe/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/assetpipe/internal/app"
	_ "go.trai.ch/assetpipe/internal/engine/scheduler"
)
