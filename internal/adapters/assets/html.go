package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/net/html"
)

const taskHTML = "html"

func (e *env) html() definition {
	inputs := []string{e.src("**/*.html")}
	return definition{
		task: domain.Task{
			Name:         taskHTML,
			Inputs:       inputs,
			Output:       domain.OutputContract{Dir: e.paths.Root, Files: []string{"*.html", "*/*.html"}},
			Dependencies: []string{taskClean},
			Reload:       true,
		},
		run: func(_ context.Context, out io.Writer) error {
			files, err := e.resolve(inputs...)
			if err != nil {
				return err
			}

			stamp := strconv.FormatInt(e.now().UnixMilli(), 10)
			srcDir := filepath.ToSlash(filepath.Clean(e.cfg.Source))
			for _, f := range files {
				data, err := e.read(f)
				if err != nil {
					return err
				}
				busted, err := cacheBust(data, stamp)
				if err != nil {
					return zerr.With(zerr.Wrap(err, domain.ErrHTMLRewriteFailed.Error()), "path", f)
				}

				rel := strings.TrimPrefix(f, srcDir+"/")
				if err := e.write(filepath.Join(e.paths.Root, filepath.FromSlash(rel)), busted); err != nil {
					return err
				}
			}
			_, _ = fmt.Fprintf(out, "cache-busted %d page(s)\n", len(files))
			return nil
		},
	}
}

// cacheBust appends t=stamp to the local src of script tags and href of
// link tags. Everything else is copied byte for byte.
func cacheBust(doc []byte, stamp string) ([]byte, error) {
	var buf bytes.Buffer
	z := html.NewTokenizer(bytes.NewReader(doc))

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				return buf.Bytes(), nil
			}
			return nil, z.Err()
		}

		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			buf.Write(z.Raw())
			continue
		}

		// Token lowercases names inside the tokenizer's buffer.
		raw := bytes.Clone(z.Raw())
		tok := z.Token()
		if !bustAttr(&tok, stamp) {
			buf.Write(raw)
			continue
		}
		buf.WriteString(tok.String())
	}
}

// bustAttr rewrites the reference attribute of script and link tags.
// It reports whether the token changed.
func bustAttr(tok *html.Token, stamp string) bool {
	var key string
	switch tok.Data {
	case "script":
		key = "src"
	case "link":
		key = "href"
	default:
		return false
	}

	for i, attr := range tok.Attr {
		if attr.Key != key || !isLocal(attr.Val) {
			continue
		}
		sep := "?"
		if strings.Contains(attr.Val, "?") {
			sep = "&"
		}
		tok.Attr[i].Val = attr.Val + sep + "t=" + stamp
		return true
	}
	return false
}

func isLocal(ref string) bool {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "//") || strings.HasPrefix(ref, "#") {
		return false
	}
	if i := strings.IndexByte(ref, ':'); i > 0 && !strings.ContainsAny(ref[:i], "/?#") {
		// scheme such as http:, https: or data:
		return false
	}
	return true
}
