// Package shell runs the external command line tools of the pipeline.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/assetpipe/internal/core/ports"
	"go.trai.ch/zerr"
)

// localBinDir holds the executables installed by the project's package manager.
const localBinDir = "node_modules/.bin"

var _ ports.ToolRunner = (*Runner)(nil)

// Runner implements ports.ToolRunner using os/exec.
type Runner struct {
	environ func() []string
}

// NewRunner creates a new Runner inheriting the process environment.
func NewRunner() *Runner {
	return &Runner{environ: os.Environ}
}

// Run executes cmd in dir. The project's node_modules/.bin is searched
// before PATH.
func (r *Runner) Run(
	ctx context.Context,
	dir string,
	cmd domain.Command,
	stdin []byte,
	stdout, stderr io.Writer,
) error {
	if cmd.Empty() {
		return zerr.Wrap(domain.ErrToolNotFound, "no command configured")
	}

	name := cmd[0]
	env := resolveEnvironment(r.environ(), dir)

	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		lp, err := lookPath(name, env)
		if err != nil {
			return notFound(name)
		}
		executable = lp
	}

	c := exec.CommandContext(ctx, executable, cmd[1:]...) //nolint:gosec // configured tool command
	c.Args[0] = name
	c.Dir = dir
	c.Env = env
	c.Stdout = stdout
	c.Stderr = stderr
	if stdin != nil {
		c.Stdin = bytes.NewReader(stdin)
	}

	if err := c.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
			return notFound(name)
		}

		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		failed := zerr.With(zerr.Wrap(err, domain.ErrToolFailed.Error()), "tool", name)
		return zerr.With(failed, "exit_code", exitCode)
	}

	return nil
}

// notFound keeps domain.ErrToolNotFound in the chain so callers can fall back
// with errors.Is.
func notFound(name string) error {
	return zerr.With(zerr.Wrap(domain.ErrToolNotFound, name), "tool", name)
}

// resolveEnvironment prepends the project's local bin directory to PATH.
func resolveEnvironment(sysEnv []string, dir string) []string {
	localBin := filepath.Join(dir, filepath.FromSlash(localBinDir))

	env := make([]string, 0, len(sysEnv)+1)
	foundPath := false
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok && k == "PATH" {
			foundPath = true
			if v != "" {
				entry = "PATH=" + localBin + string(os.PathListSeparator) + v
			} else {
				entry = "PATH=" + localBin
			}
		}
		env = append(env, entry)
	}
	if !foundPath {
		env = append(env, "PATH="+localBin)
	}
	return env
}

// lookPath searches for an executable in the directories named by the PATH
// entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, "PATH="); ok {
			path = v
		}
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
