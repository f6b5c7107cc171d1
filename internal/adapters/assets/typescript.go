package assets

import (
	"bytes"
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
	taskTypeScript = "typescript"

	mainJS    = "main.js"
	mainJSMap = "main.js.map"
)

func (e *env) typescript() definition {
	inputs := []string{
		"node_modules/@types/**/*d.ts",
		e.src("typings/**/*.d.ts"),
		e.src("ts/**/*.ts"),
	}
	return definition{
		task: domain.Task{
			Name:         taskTypeScript,
			Inputs:       inputs,
			Output:       domain.OutputContract{Dir: e.paths.JS(), Files: []string{mainJS, mainJSMap}},
			Dependencies: []string{taskClean},
			Reload:       true,
		},
		run: func(ctx context.Context, out io.Writer) error {
			if err := e.typeCheck(ctx, out); err != nil {
				return err
			}

			files, err := e.resolve(inputs...)
			if err != nil {
				return err
			}

			var sources []string
			for _, f := range files {
				if !strings.HasSuffix(f, ".d.ts") {
					sources = append(sources, f)
				}
			}
			if len(sources) == 0 {
				return nil
			}

			js, sourceMap, err := e.transpile(sources)
			if err != nil {
				return err
			}

			jsDir := e.paths.JS()
			if sourceMap != nil {
				if err := e.write(filepath.Join(jsDir, mainJSMap), sourceMap); err != nil {
					return err
				}
			}
			if err := e.write(filepath.Join(jsDir, mainJS), js); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "transpiled %d file(s) into %s\n", len(sources), mainJS)
			return nil
		},
	}
}

// typeCheck runs the configured type-check command. Its failure is fatal.
func (e *env) typeCheck(ctx context.Context, out io.Writer) error {
	if e.cfg.Tools.TypeCheck.Empty() {
		return nil
	}
	if err := e.tools.Run(ctx, e.cfg.Root, e.cfg.Tools.TypeCheck, nil, out, out); err != nil {
		return zerr.Wrap(err, domain.ErrTypeCheckFailed.Error())
	}
	return nil
}

// transpile strips types from each source and concatenates the results in
// order. In development an index source map covering every part is returned;
// in distribution the bundle is minified and no map is produced.
func (e *env) transpile(sources []string) ([]byte, []byte, error) {
	withMaps := e.cfg.Mode.SourceMaps()
	jsDir := e.abs(e.paths.JS())

	var smap *indexMap
	if withMaps {
		var err error
		if smap, err = newIndexMap(mainJS); err != nil {
			return nil, nil, zerr.Wrap(err, domain.ErrTranspileFailed.Error())
		}
	}

	var bundle bytes.Buffer
	line := 0
	for i, f := range sources {
		data, err := e.read(f)
		if err != nil {
			return nil, nil, err
		}

		// Source paths in the map are relative to the emitted main.js.
		sourcefile, err := filepath.Rel(jsDir, e.abs(f))
		if err != nil {
			sourcefile = f
		}

		opts := api.TransformOptions{
			Loader:     api.LoaderTS,
			Target:     api.ES2015,
			Sourcefile: filepath.ToSlash(sourcefile),
			LogLevel:   api.LogLevelSilent,
		}
		if withMaps {
			opts.Sourcemap = api.SourceMapExternal
		}

		result := api.Transform(string(data), opts)
		if len(result.Errors) > 0 {
			err := zerr.Wrap(errors.New(sass.FormatMessages(result.Errors)), domain.ErrTranspileFailed.Error())
			return nil, nil, zerr.With(err, "path", f)
		}

		if i > 0 {
			bundle.WriteByte('\n')
			line++
		}
		if withMaps {
			if err := smap.add(line, result.Map); err != nil {
				return nil, nil, zerr.Wrap(err, domain.ErrTranspileFailed.Error())
			}
		}
		bundle.Write(result.Code)
		line += bytes.Count(result.Code, []byte{'\n'})
	}

	if !withMaps {
		if !e.cfg.Mode.Minify() {
			return bundle.Bytes(), nil, nil
		}
		js, err := minifyJS(bundle.Bytes(), mainJS)
		return js, nil, err
	}

	bundle.WriteString("//# sourceMappingURL=" + mainJSMap + "\n")
	return bundle.Bytes(), smap.bytes(), nil
}
