package assets

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"go.trai.ch/assetpipe/internal/core/domain"
)

const (
	taskCSS = "css"

	mainCSS = "main.css"
)

func (e *env) css() definition {
	inputs := []string{e.src("**/*.scss")}
	return definition{
		task: domain.Task{
			Name:         taskCSS,
			Inputs:       inputs,
			Output:       domain.OutputContract{Dir: e.paths.CSS(), Files: []string{mainCSS}},
			Dependencies: []string{taskClean},
			Reload:       true,
		},
		run: func(ctx context.Context, out io.Writer) error {
			files, err := e.resolve(inputs...)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return nil
			}

			src, err := e.concat(files)
			if err != nil {
				return err
			}

			// Compile errors go to the diagnostic channel; the previous
			// main.css stays in place and the run continues.
			css, err := e.styles.Compile(ctx, src, e.abs(e.cfg.Source), e.cfg.Mode.StyleOutput())
			if err != nil {
				e.report(taskCSS, domain.SeverityError, err.Error())
				_, _ = fmt.Fprintln(out, err.Error())
				return nil
			}

			if err := e.write(filepath.Join(e.paths.CSS(), mainCSS), css); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "compiled %d stylesheet(s) into %s\n", len(files), mainCSS)
			return nil
		},
	}
}
