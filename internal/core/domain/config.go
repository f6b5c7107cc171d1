package domain

import (
	"path/filepath"
	"strconv"
	"time"
)

// Config is the build configuration of one invocation.
// It is passed by value to every task constructor; tasks never share a
// mutable copy.
type Config struct {
	// Root is the absolute project root. All other paths are relative to it.
	Root   string
	Mode   Mode
	Source string
	Output OutputDirs
	Vendor VendorConfig
	Tools  ToolsConfig
	Server ServerConfig
	Watch  WatchConfig
}

// VendorConfig locates the vendor manifests.
type VendorConfig struct {
	Scripts string
	Styles  string
}

// ToolsConfig holds the command lines of external tools.
type ToolsConfig struct {
	Sass      Command
	Lint      Command
	TypeCheck Command
}

// Command is an external command line. The first element is the executable.
type Command []string

// Empty reports whether no command is configured.
func (c Command) Empty() bool {
	return len(c) == 0
}

// ServerConfig configures the live-reload server.
type ServerConfig struct {
	Host string
	Port int
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

// WatchConfig configures the file watcher.
type WatchConfig struct {
	Poll     bool
	Interval time.Duration
	Debounce time.Duration
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig(root string) Config {
	return Config{
		Root:   root,
		Mode:   ModeDistribution,
		Source: DefaultSourceDir,
		Output: OutputDirs{
			Dist: DefaultDistDir,
			Dev:  DefaultDevDir,
		},
		Vendor: VendorConfig{
			Scripts: "scripts.json",
			Styles:  "styles.json",
		},
		Tools: ToolsConfig{
			Sass: Command{"sass"},
			Lint: Command{"tslint", "--format", "prose"},
		},
		Server: ServerConfig{
			Port: 3000,
		},
		Watch: WatchConfig{
			Interval: 100 * time.Millisecond,
			Debounce: 50 * time.Millisecond,
		},
	}
}

// WithMode returns a copy of the configuration with the mode applied.
func (c Config) WithMode(m Mode) Config {
	c.Mode = m
	return c
}

// Paths returns the output paths for the configured mode.
func (c Config) Paths() OutputPaths {
	return c.Output.Resolve(c.Mode)
}

// Abs joins a root-relative path onto the project root.
func (c Config) Abs(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.Root, rel)
}
