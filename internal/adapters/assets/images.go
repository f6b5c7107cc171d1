package assets

import (
	"bytes"
	"context"
	"fmt"
	"image/gif"
	"image/png"
	"io"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	taskImages = "images"

	svgMediaType = "image/svg+xml"
)

func (e *env) images() definition {
	inputs := []string{e.src("**/*.{png,jpg,gif,svg}")}
	return definition{
		task: domain.Task{
			Name:         taskImages,
			Inputs:       inputs,
			Output:       domain.OutputContract{Dir: e.paths.Images(), Files: []string{"*"}},
			Dependencies: []string{taskClean},
		},
		run: func(_ context.Context, out io.Writer) error {
			files, err := e.resolve(inputs...)
			if err != nil {
				return err
			}
			if !e.cfg.Mode.Minify() {
				return e.flatten(files, e.paths.Images(), nil)
			}

			opt := newImageOptimizer()
			var before, after int
			err = e.flatten(files, e.paths.Images(), func(name string, data []byte) ([]byte, error) {
				optimized, err := opt.optimize(name, data)
				if err != nil {
					return nil, zerr.With(zerr.Wrap(err, domain.ErrImageOptimizeFailed.Error()), "path", name)
				}
				before += len(data)
				after += len(optimized)
				if saved := len(data) - len(optimized); saved > 0 {
					_, _ = fmt.Fprintf(out, "%s %s\n", path.Base(name), savings(len(data), saved))
				} else {
					_, _ = fmt.Fprintf(out, "%s already optimized\n", path.Base(name))
				}
				return optimized, nil
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "minified %d image(s) (%s)\n", len(files), savings(before, before-after))
			return nil
		},
	}
}

// imageOptimizer recompresses images losslessly. The result is never larger
// than the input.
type imageOptimizer struct {
	svg *minify.M
}

func newImageOptimizer() *imageOptimizer {
	m := minify.New()
	m.AddFunc(svgMediaType, svg.Minify)
	return &imageOptimizer{svg: m}
}

func (o *imageOptimizer) optimize(name string, data []byte) ([]byte, error) {
	var optimized []byte
	var err error

	switch strings.ToLower(path.Ext(name)) {
	case ".png":
		optimized, err = optimizePNG(data)
	case ".gif":
		optimized, err = optimizeGIF(data)
	case ".svg":
		optimized, err = o.svg.Bytes(svgMediaType, data)
	default:
		return data, nil
	}
	if err != nil {
		return nil, err
	}

	if len(optimized) >= len(data) {
		return data, nil
	}
	return optimized, nil
}

func optimizePNG(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// optimizeGIF re-encodes every frame so animations survive.
func optimizeGIF(data []byte) ([]byte, error) {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// savings formats "saved 1.2 kB - 12.3%".
func savings(total, saved int) string {
	pct := 0.0
	if total > 0 {
		pct = float64(saved) / float64(total) * 100
	}
	return fmt.Sprintf("saved %s - %.1f%%", byteSize(saved), pct)
}

func byteSize(n int) string {
	const unit = 1000
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := unit, 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "kMGT"[exp])
}
