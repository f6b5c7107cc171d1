package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "assetpipe.yaml"

	// DefaultSourceDir is the directory holding the authored sources.
	DefaultSourceDir = "src"

	// DefaultDistDir is the output root in distribution mode.
	DefaultDistDir = "dist"

	// DefaultDevDir is the output root in development mode.
	DefaultDevDir = "test"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Fixed subdirectories of the output root.
const (
	CSSDir    = "css"
	JSDir     = "js"
	JSONDir   = "json"
	ImagesDir = "img"
	FontsDir  = "fonts"
	VideoDir  = "video"
)

// OutputDirs names the output root for each mode.
type OutputDirs struct {
	Dist string
	Dev  string
}

// Resolve returns the output paths for the given mode.
func (d OutputDirs) Resolve(mode Mode) OutputPaths {
	if mode == ModeDevelopment {
		return OutputPaths{Root: d.Dev}
	}
	return OutputPaths{Root: d.Dist}
}

// OutputPaths holds the resolved output root. Every asset class writes to a
// fixed suffix under it.
type OutputPaths struct {
	Root string
}

// CSS returns the stylesheet output directory.
func (p OutputPaths) CSS() string { return filepath.Join(p.Root, CSSDir) }

// JS returns the script output directory.
func (p OutputPaths) JS() string { return filepath.Join(p.Root, JSDir) }

// JSON returns the JSON output directory.
func (p OutputPaths) JSON() string { return filepath.Join(p.Root, JSONDir) }

// Images returns the image output directory.
func (p OutputPaths) Images() string { return filepath.Join(p.Root, ImagesDir) }

// Fonts returns the font output directory.
func (p OutputPaths) Fonts() string { return filepath.Join(p.Root, FontsDir) }

// Video returns the video output directory.
func (p OutputPaths) Video() string { return filepath.Join(p.Root, VideoDir) }
