// Package fs implements file system adapters: glob resolution and content
// hashing.
package fs

import (
	iofs "io/fs"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/assetpipe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver implements the InputResolver interface using doublestar globs.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveInputs expands patterns against root. Matches of one pattern are
// sorted; a file matched by an earlier pattern keeps its first position.
// A pattern without matches is not an error.
func (r *Resolver) ResolveInputs(patterns []string, root string) ([]string, error) {
	fsys := os.DirFS(root)
	seen := make(map[string]struct{})
	var result []string

	for _, pattern := range patterns {
		pattern = strings.TrimPrefix(pattern, "./")
		if !doublestar.ValidatePattern(pattern) {
			return nil, zerr.With(domain.ErrInvalidPattern, "pattern", pattern)
		}

		var matches []string
		err := doublestar.GlobWalk(fsys, pattern, func(path string, d iofs.DirEntry) error {
			if d.IsDir() {
				return nil
			}
			if _, dup := seen[path]; !dup {
				matches = append(matches, path)
			}
			return nil
		})
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInputResolutionFailed.Error()), "pattern", pattern)
		}

		slices.Sort(matches)
		for _, m := range matches {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			result = append(result, m)
		}
	}

	return result, nil
}
