package assets

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/zerr"
)

const taskClean = "clean"

func (e *env) clean() definition {
	return definition{
		task: domain.Task{Name: taskClean},
		run:  e.runClean,
	}
}

// runClean removes the output root of the configured mode. Roots that are
// not strictly inside the project root are refused.
func (e *env) runClean(_ context.Context, out io.Writer) error {
	target := filepath.Clean(e.abs(e.paths.Root))
	if err := insideRoot(e.cfg.Root, target); err != nil {
		return err
	}

	if err := os.RemoveAll(target); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "path", target)
	}
	_, _ = fmt.Fprintf(out, "removed %s\n", e.paths.Root)
	return nil
}

func insideRoot(root, target string) error {
	rel, err := filepath.Rel(root, target)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		err := zerr.With(domain.ErrOutputPathOutsideRoot, "path", target)
		return zerr.With(err, "root", root)
	}
	return nil
}
