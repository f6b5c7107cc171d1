package ports

import "go.trai.ch/assetpipe/internal/core/domain"

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the project configuration starting at cwd and walking up.
	// When no configuration file exists, defaults rooted at cwd are returned.
	Load(cwd string) (*domain.Config, error)
}
