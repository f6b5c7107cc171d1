package assets

import (
	"bytes"
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/assetpipe/internal/core/ports"
	"go.trai.ch/zerr"
)

// env is shared by the tasks of one pipeline. It is built from a single
// configuration value and never mutated afterwards.
type env struct {
	cfg      domain.Config
	paths    domain.OutputPaths
	resolver ports.InputResolver
	manifest ports.VendorManifest
	styles   ports.StyleCompiler
	tools    ports.ToolRunner
	sink     ports.DiagnosticSink
	now      func() time.Time
}

// runFunc is the body of one task.
type runFunc func(ctx context.Context, out io.Writer) error

// definition pairs a task descriptor with its body.
type definition struct {
	task domain.Task
	run  runFunc
}

// src joins a slash pattern onto the configured source directory.
func (e *env) src(pattern string) string {
	return path.Join(filepath.ToSlash(e.cfg.Source), pattern)
}

// abs returns the absolute form of a root-relative path.
func (e *env) abs(rel string) string {
	return e.cfg.Abs(filepath.FromSlash(rel))
}

// resolve expands patterns against the project root.
func (e *env) resolve(patterns ...string) ([]string, error) {
	files, err := e.resolver.ResolveInputs(patterns, e.cfg.Root)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrInputResolutionFailed.Error())
	}
	return files, nil
}

// report sends a diagnostic for task to the sink.
func (e *env) report(task string, severity domain.Severity, msg string) {
	e.sink.Report(domain.Diagnostic{Task: task, Severity: severity, Message: msg})
}

// read returns the content of a root-relative file.
func (e *env) read(rel string) ([]byte, error) {
	data, err := os.ReadFile(e.abs(rel))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReadFailed.Error()), "path", rel)
	}
	return data, nil
}

// concat joins files with a newline between them.
func (e *env) concat(files []string) ([]byte, error) {
	var buf bytes.Buffer
	for i, f := range files {
		data, err := e.read(f)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(data)
	}
	return buf.Bytes(), nil
}

// write stores data at a root-relative path, creating parent directories.
func (e *env) write(rel string, data []byte) error {
	dst := e.abs(rel)
	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWriteFailed.Error()), "path", rel)
	}
	if err := os.WriteFile(dst, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWriteFailed.Error()), "path", rel)
	}
	return nil
}

// flatten copies every file into dir, dropping its directory. A later file
// with the same base name replaces an earlier one.
func (e *env) flatten(files []string, dir string, transform func(name string, data []byte) ([]byte, error)) error {
	for _, f := range files {
		data, err := e.read(f)
		if err != nil {
			return err
		}
		if transform != nil {
			if data, err = transform(f, data); err != nil {
				return err
			}
		}
		if err := e.write(filepath.Join(dir, path.Base(f)), data); err != nil {
			return err
		}
	}
	return nil
}
