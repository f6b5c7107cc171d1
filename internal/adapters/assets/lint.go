package assets

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/assetpipe/internal/core/domain"
)

const taskLint = "lint"

func (e *env) lint() definition {
	inputs := []string{e.src("ts/**/*.ts")}
	return definition{
		task: domain.Task{
			Name:         taskLint,
			Inputs:       inputs,
			Dependencies: []string{taskClean},
			Advisory:     true,
		},
		run: func(ctx context.Context, out io.Writer) error {
			files, err := e.resolve(inputs...)
			if err != nil {
				e.report(taskLint, domain.SeverityWarning, err.Error())
				return nil
			}
			if len(files) == 0 {
				return nil
			}

			findings, err := e.runLinter(ctx, files)
			if errors.Is(err, domain.ErrToolNotFound) {
				findings = e.syntaxFindings(files)
			} else if err != nil && len(findings) == 0 {
				findings = []string{err.Error()}
			}

			for _, f := range findings {
				_, _ = fmt.Fprintln(out, f)
				e.report(taskLint, domain.SeverityWarning, f)
			}
			if len(findings) == 0 {
				_, _ = fmt.Fprintf(out, "%d file(s) clean\n", len(files))
			}
			return nil
		},
	}
}

// runLinter runs the configured linter in prose format. Each non-empty
// output line is a finding.
func (e *env) runLinter(ctx context.Context, files []string) ([]string, error) {
	if e.cfg.Tools.Lint.Empty() {
		return nil, domain.ErrToolNotFound
	}

	cmd := append(domain.Command{}, e.cfg.Tools.Lint...)
	cmd = append(cmd, files...)

	var stdout, stderr bytes.Buffer
	err := e.tools.Run(ctx, e.cfg.Root, cmd, nil, &stdout, &stderr)

	var findings []string
	for _, buf := range []*bytes.Buffer{&stdout, &stderr} {
		scanner := bufio.NewScanner(buf)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				findings = append(findings, line)
			}
		}
	}
	return findings, err
}

// syntaxFindings parses each file with esbuild and reports its diagnostics
// in the linter's prose format.
func (e *env) syntaxFindings(files []string) []string {
	var findings []string
	for _, f := range files {
		data, err := e.read(f)
		if err != nil {
			findings = append(findings, err.Error())
			continue
		}
		result := api.Transform(string(data), api.TransformOptions{
			Loader:     api.LoaderTS,
			Sourcefile: f,
			LogLevel:   api.LogLevelSilent,
		})
		for _, m := range result.Errors {
			findings = append(findings, prose("ERROR", f, m))
		}
		for _, m := range result.Warnings {
			findings = append(findings, prose("WARNING", f, m))
		}
	}
	return findings
}

// prose formats a message as "ERROR: file[line, col]: text".
func prose(level, file string, m api.Message) string {
	if m.Location == nil {
		return fmt.Sprintf("%s: %s: %s", level, file, m.Text)
	}
	return fmt.Sprintf("%s: %s[%d, %d]: %s", level, file, m.Location.Line, m.Location.Column+1, m.Text)
}
