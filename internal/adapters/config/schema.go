package config

import "time"

// SupportedVersion is the only config file version understood by the loader.
const SupportedVersion = "1"

// File represents the structure of the assetpipe.yaml configuration file.
// Every field is optional; absent values keep their defaults.
type File struct {
	Version string    `yaml:"version"`
	Root    string    `yaml:"root"`
	Source  string    `yaml:"source"`
	Output  OutputDTO `yaml:"output"`
	Vendor  VendorDTO `yaml:"vendor"`
	Tools   ToolsDTO  `yaml:"tools"`
	Server  ServerDTO `yaml:"server"`
	Watch   WatchDTO  `yaml:"watch"`
}

// OutputDTO names the output root per mode.
type OutputDTO struct {
	Dist string `yaml:"dist"`
	Dev  string `yaml:"dev"`
}

// VendorDTO locates the vendor manifests.
type VendorDTO struct {
	Scripts string `yaml:"scripts"`
	Styles  string `yaml:"styles"`
}

// ToolsDTO holds external command lines. An explicitly empty list disables
// the tool.
type ToolsDTO struct {
	Sass      *[]string `yaml:"sass"`
	Lint      *[]string `yaml:"lint"`
	TypeCheck *[]string `yaml:"typecheck"`
}

// ServerDTO configures the reload server.
type ServerDTO struct {
	Host string `yaml:"host"`
	Port *int   `yaml:"port"`
}

// WatchDTO configures the watcher.
type WatchDTO struct {
	Poll     bool           `yaml:"poll"`
	Interval *time.Duration `yaml:"interval"`
	Debounce *time.Duration `yaml:"debounce"`
}
