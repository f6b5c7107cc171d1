// Package config provides the configuration loader for assetpipe.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/assetpipe/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const maxPort = 65535

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds assetpipe.yaml in cwd or one of its parents and maps it onto
// the default configuration. Without a config file cwd is the project root.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	configPath, found := findConfiguration(absCwd)
	if !found {
		cfg := domain.DefaultConfig(absCwd)
		return &cfg, nil
	}

	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s: unknown version %q, reading it as version %s",
			domain.ConfigFileName, file.Version, SupportedVersion))
	}

	cfg := domain.DefaultConfig(resolveRoot(configPath, file.Root))
	apply(&cfg, &file)

	if err := validate(&cfg); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return &cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func apply(cfg *domain.Config, file *File) {
	setString(&cfg.Source, file.Source)
	setString(&cfg.Output.Dist, file.Output.Dist)
	setString(&cfg.Output.Dev, file.Output.Dev)
	setString(&cfg.Vendor.Scripts, file.Vendor.Scripts)
	setString(&cfg.Vendor.Styles, file.Vendor.Styles)

	if file.Tools.Sass != nil {
		cfg.Tools.Sass = *file.Tools.Sass
	}
	if file.Tools.Lint != nil {
		cfg.Tools.Lint = *file.Tools.Lint
	}
	if file.Tools.TypeCheck != nil {
		cfg.Tools.TypeCheck = *file.Tools.TypeCheck
	}

	cfg.Server.Host = file.Server.Host
	if file.Server.Port != nil {
		cfg.Server.Port = *file.Server.Port
	}

	cfg.Watch.Poll = file.Watch.Poll
	if file.Watch.Interval != nil {
		cfg.Watch.Interval = *file.Watch.Interval
	}
	if file.Watch.Debounce != nil {
		cfg.Watch.Debounce = *file.Watch.Debounce
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func validate(cfg *domain.Config) error {
	if cfg.Server.Port < 0 || cfg.Server.Port > maxPort {
		return zerr.With(domain.ErrInvalidConfig, "server.port", cfg.Server.Port)
	}
	if filepath.Clean(cfg.Output.Dist) == filepath.Clean(cfg.Output.Dev) {
		return zerr.With(domain.ErrInvalidConfig, "output", "dist and dev must differ")
	}
	if cfg.Watch.Interval <= 0 {
		return zerr.With(domain.ErrInvalidConfig, "watch.interval", cfg.Watch.Interval.String())
	}
	if cfg.Watch.Debounce < 0 {
		return zerr.With(domain.ErrInvalidConfig, "watch.debounce", cfg.Watch.Debounce.String())
	}
	return nil
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
