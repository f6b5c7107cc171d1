package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/assetpipe/internal/adapters/sass"
	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	taskVendor = "vendor"

	vendorCSS = "vendor.css"
	vendorJS  = "vendor.js"
)

func (e *env) vendor() definition {
	return definition{
		task: domain.Task{
			Name:   taskVendor,
			Inputs: []string{filepath.ToSlash(e.cfg.Vendor.Scripts), filepath.ToSlash(e.cfg.Vendor.Styles)},
			Output: domain.OutputContract{
				Dir:   e.paths.Root,
				Files: []string{domain.CSSDir + "/" + vendorCSS, domain.JSDir + "/" + vendorJS},
			},
			Dependencies: []string{taskClean},
		},
		run: e.runVendor,
	}
}

// runVendor bundles the third-party styles and scripts listed in the vendor
// manifests. An empty manifest produces no bundle.
func (e *env) runVendor(ctx context.Context, out io.Writer) error {
	styles, err := e.manifestFiles(e.cfg.Vendor.Styles)
	if err != nil {
		return err
	}
	if len(styles) > 0 {
		src, err := e.concat(styles)
		if err != nil {
			return err
		}
		// Compile errors are reported and the scripts are still bundled.
		css, err := e.styles.Compile(ctx, src, e.cfg.Root, e.cfg.Mode.StyleOutput())
		switch {
		case err != nil:
			e.report(taskVendor, domain.SeverityError, err.Error())
			_, _ = fmt.Fprintln(out, err.Error())
		default:
			if err := e.write(filepath.Join(e.paths.CSS(), vendorCSS), css); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "bundled %d stylesheet(s) into %s\n", len(styles), vendorCSS)
		}
	}

	scripts, err := e.manifestFiles(e.cfg.Vendor.Scripts)
	if err != nil {
		return err
	}
	if len(scripts) > 0 {
		js, err := e.concat(scripts)
		if err != nil {
			return err
		}
		if e.cfg.Mode.Minify() {
			if js, err = minifyJS(js, vendorJS); err != nil {
				return err
			}
		}
		if err := e.write(filepath.Join(e.paths.JS(), vendorJS), js); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "bundled %d script(s) into %s\n", len(scripts), vendorJS)
	}

	return nil
}

// manifestFiles expands the entries of a manifest in order. Entries may be
// globs; a literal entry naming a missing file is an error.
func (e *env) manifestFiles(manifestPath string) ([]string, error) {
	entries, err := e.manifest.Resolve(e.abs(manifestPath))
	if err != nil {
		return nil, err
	}

	files, err := e.resolve(entries...)
	if err != nil {
		return nil, err
	}

	found := make(map[string]struct{}, len(files))
	for _, f := range files {
		found[f] = struct{}{}
	}
	for _, entry := range entries {
		if hasMeta(entry) {
			continue
		}
		if _, ok := found[filepath.ToSlash(filepath.Clean(entry))]; !ok {
			err := zerr.With(domain.ErrReadFailed, "manifest", manifestPath)
			return nil, zerr.With(err, "path", entry)
		}
	}
	return files, nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{\\")
}

// minifyJS compresses script whitespace and syntax. Identifiers are kept
// because bundled files share globals.
func minifyJS(src []byte, name string) ([]byte, error) {
	result := api.Transform(string(src), api.TransformOptions{
		Loader:           api.LoaderJS,
		Sourcefile:       name,
		MinifyWhitespace: true,
		MinifySyntax:     true,
		LogLevel:         api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		return nil, zerr.Wrap(errors.New(sass.FormatMessages(result.Errors)), domain.ErrMinifyFailed.Error())
	}
	return result.Code, nil
}
