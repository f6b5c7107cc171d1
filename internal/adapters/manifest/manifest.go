// Package manifest reads vendor manifests: ordered lists of source paths
// kept in JSON or YAML files.
package manifest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/assetpipe/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.VendorManifest = (*Reader)(nil)

// Reader implements ports.VendorManifest.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Resolve returns the manifest entries in file order. Files ending in .yaml
// or .yml are read as YAML, everything else as JSON.
func (r *Reader) Resolve(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // manifest path comes from the project config
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var entries []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		entries, err = parseYAML(data)
	default:
		entries, err = parseJSON(data)
	}
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return entries, nil
}

func parseJSON(data []byte) ([]string, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, zerr.Wrap(domain.ErrManifestParseFailed, "invalid json")
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, domain.ErrManifestParseFailed
	}

	var entries []string
	var bad *gjson.Result
	root.ForEach(func(_, v gjson.Result) bool {
		if v.Type != gjson.String {
			bad = &v
			return false
		}
		entries = append(entries, v.Str)
		return true
	})
	if bad != nil {
		return nil, zerr.With(domain.ErrManifestParseFailed, "entry", bad.Raw)
	}
	return entries, nil
}

func parseYAML(data []byte) ([]string, error) {
	var entries []string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
	}
	return entries, nil
}
