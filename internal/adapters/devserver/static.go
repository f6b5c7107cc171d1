package devserver

import (
	"bytes"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

const clientScript = `<script src="` + clientPath + `"></script>`

// staticHandler serves the output root. HTML documents get the reload client
// injected; unmatched page navigations fall back to /index.html.
type staticHandler struct {
	root string
}

func (h staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	urlPath := path.Clean("/" + r.URL.Path)

	file, info, err := h.open(urlPath)
	if errors.Is(err, fs.ErrNotExist) && isNavigation(r, urlPath) {
		urlPath = "/index.html"
		file, info, err = h.open(urlPath)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer file.Close() //nolint:errcheck // read-only file

	if strings.EqualFold(path.Ext(info.Name()), ".html") {
		h.serveHTML(w, r, file, info.ModTime())
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), file)
}

// open resolves urlPath inside the root. Directories resolve to their
// index.html.
func (h staticHandler) open(urlPath string) (*os.File, os.FileInfo, error) {
	name := filepath.Join(h.root, filepath.FromSlash(urlPath))
	info, err := os.Stat(name)
	if err != nil {
		return nil, nil, err
	}
	if info.IsDir() {
		name = filepath.Join(name, "index.html")
		if info, err = os.Stat(name); err != nil {
			return nil, nil, err
		}
	}
	file, err := os.Open(name) //nolint:gosec // confined to the output root by path.Clean
	if err != nil {
		return nil, nil, err
	}
	return file, info, nil
}

func (h staticHandler) serveHTML(w http.ResponseWriter, r *http.Request, file *os.File, modTime time.Time) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(file); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeContent(w, r, "", modTime, bytes.NewReader(injectClient(buf.Bytes())))
}

// injectClient places the reload client script before the last </body>, or
// at the end of documents without one.
func injectClient(doc []byte) []byte {
	i := bytes.LastIndex(bytes.ToLower(doc), []byte("</body>"))
	if i < 0 {
		return append(doc, clientScript...)
	}
	out := make([]byte, 0, len(doc)+len(clientScript))
	out = append(out, doc[:i]...)
	out = append(out, clientScript...)
	return append(out, doc[i:]...)
}

// isNavigation reports whether a request looks like a browser navigating to
// a client-side route: a GET or HEAD accepting HTML for a path whose last
// segment has no extension.
func isNavigation(r *http.Request, urlPath string) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return false
	}
	accept := r.Header.Get("Accept")
	if !strings.Contains(accept, "text/html") && !strings.Contains(accept, "*/*") {
		return false
	}
	return !strings.Contains(path.Base(urlPath), ".")
}
