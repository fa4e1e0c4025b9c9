package http

import (
	"io"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"
)

// StaticHandler serves the embedded dashboard page and its assets. Unknown
// paths fall back to index.html so the page owns its own routing.
type StaticHandler struct {
	files fs.FS
}

// NewStaticHandler creates a static handler over the given filesystem. A nil
// filesystem yields a handler that always responds 404.
func NewStaticHandler(files fs.FS) *StaticHandler {
	return &StaticHandler{files: files}
}

// ServeHTTP implements http.Handler.
func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.files == nil {
		http.Error(w, "dashboard page not available", http.StatusNotFound)
		return
	}

	name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
	if name == "" || name == "." {
		name = "index.html"
	}

	file, err := h.files.Open(name)
	if err != nil {
		// SPA fallback
		name = "index.html"
		file, err = h.files.Open(name)
		if err != nil {
			http.Error(w, "dashboard page not available", http.StatusNotFound)
			return
		}
	}
	defer file.Close()

	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.Header().Set("X-Content-Type-Options", "nosniff")

	io.Copy(w, file)
}
