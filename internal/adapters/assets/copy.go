package assets

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/assetpipe/internal/core/domain"
)

const (
	taskVideo = "video"
	taskFonts = "fonts"
)

// copyTask flattens every match of pattern into dir.
func (e *env) copyTask(name, pattern, dir string) definition {
	inputs := []string{e.src(pattern)}
	return definition{
		task: domain.Task{
			Name:         name,
			Inputs:       inputs,
			Output:       domain.OutputContract{Dir: dir, Files: []string{"*"}},
			Dependencies: []string{taskClean},
			Reload:       true,
		},
		run: func(_ context.Context, out io.Writer) error {
			files, err := e.resolve(inputs...)
			if err != nil {
				return err
			}
			if err := e.flatten(files, dir, nil); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "copied %d file(s) to %s\n", len(files), dir)
			return nil
		},
	}
}

func (e *env) video() definition {
	return e.copyTask(taskVideo, "**/*.mp4", e.paths.Video())
}

func (e *env) fonts() definition {
	return e.copyTask(taskFonts, "**/*.woff", e.paths.Fonts())
}
