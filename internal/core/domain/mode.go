package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Mode selects between development and distribution output.
type Mode uint8

const (
	// ModeDistribution produces compressed, minified output under the dist root.
	ModeDistribution Mode = iota
	// ModeDevelopment produces expanded, source-mapped output under the dev root.
	ModeDevelopment
)

// ParseMode converts a user supplied mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dev", "development":
		return ModeDevelopment, nil
	case "dist", "distribution", "prod", "production":
		return ModeDistribution, nil
	default:
		return ModeDistribution, zerr.With(ErrInvalidMode, "mode", s)
	}
}

// String returns the long name of the mode.
func (m Mode) String() string {
	if m == ModeDevelopment {
		return "development"
	}
	return "distribution"
}

// Label returns the short name printed in the status banner.
func (m Mode) Label() string {
	if m == ModeDevelopment {
		return "DEV"
	}
	return "PROD"
}

// Minify reports whether compressing and minifying transforms run.
func (m Mode) Minify() bool {
	return m == ModeDistribution
}

// SourceMaps reports whether source maps are generated.
func (m Mode) SourceMaps() bool {
	return m == ModeDevelopment
}

// StyleOutput returns the stylesheet compiler output style for the mode.
func (m Mode) StyleOutput() StyleOutput {
	if m == ModeDevelopment {
		return StyleExpanded
	}
	return StyleCompressed
}

// StyleOutput is the output style handed to the stylesheet compiler.
type StyleOutput string

const (
	// StyleExpanded writes one declaration per line.
	StyleExpanded StyleOutput = "expanded"
	// StyleCompressed removes all optional whitespace.
	StyleCompressed StyleOutput = "compressed"
)
