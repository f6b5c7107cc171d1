// Package sass compiles stylesheets with the dart-sass command line tool,
// falling back to esbuild's CSS loader when sass is not installed.
package sass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/assetpipe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StyleCompiler = (*Compiler)(nil)

// Compiler implements ports.StyleCompiler.
type Compiler struct {
	runner  ports.ToolRunner
	logger  ports.Logger
	command domain.Command
	dir     string

	fallbackOnce sync.Once
}

// New creates a Compiler running command in dir. An empty command selects the
// esbuild fallback directly.
func New(runner ports.ToolRunner, logger ports.Logger, command domain.Command, dir string) *Compiler {
	return &Compiler{
		runner:  runner,
		logger:  logger,
		command: command,
		dir:     dir,
	}
}

// Compile compiles src with imports resolved against loadPath.
func (c *Compiler) Compile(ctx context.Context, src []byte, loadPath string, style domain.StyleOutput) ([]byte, error) {
	if c.command.Empty() {
		return c.fallback(src, style)
	}

	args := append(domain.Command{}, c.command...)
	args = append(args,
		"--stdin",
		"--no-source-map",
		"--style="+string(style),
		"--load-path="+loadPath,
	)

	var stdout, stderr bytes.Buffer
	err := c.runner.Run(ctx, c.dir, args, src, &stdout, &stderr)
	switch {
	case err == nil:
		return stdout.Bytes(), nil
	case errors.Is(err, domain.ErrToolNotFound):
		c.fallbackOnce.Do(func() {
			c.logger.Warn(fmt.Sprintf("%s not found, compiling stylesheets with esbuild", c.command[0]))
		})
		return c.fallback(src, style)
	default:
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = errors.New(msg)
		}
		return nil, zerr.Wrap(err, domain.ErrStyleCompileFailed.Error())
	}
}

// fallback handles plain CSS only. Sass-specific syntax surfaces as a
// compile error.
func (c *Compiler) fallback(src []byte, style domain.StyleOutput) ([]byte, error) {
	minify := style == domain.StyleCompressed
	result := api.Transform(string(src), api.TransformOptions{
		Loader:           api.LoaderCSS,
		Sourcefile:       "stdin.scss",
		MinifyWhitespace: minify,
		MinifySyntax:     minify,
		LogLevel:         api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		return nil, zerr.Wrap(errors.New(FormatMessages(result.Errors)), domain.ErrStyleCompileFailed.Error())
	}
	return result.Code, nil
}

// FormatMessages renders esbuild messages one per line as file:line:col: text.
func FormatMessages(msgs []api.Message) string {
	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		if m.Location == nil {
			lines = append(lines, m.Text)
			continue
		}
		lines = append(lines, fmt.Sprintf("%s:%d:%d: %s", m.Location.File, m.Location.Line, m.Location.Column, m.Text))
	}
	return strings.Join(lines, "\n")
}
