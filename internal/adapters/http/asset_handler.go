package http

import (
	"net/http"
	"path"
	"strings"

	"github.com/stanjdev/folio/internal/adapters/fs"
	"github.com/stanjdev/folio/internal/core"
)

// AssetHandler serves files referenced by figures and the stylesheet from a
// FileSystem. Request paths map one to one onto file paths.
type AssetHandler struct {
	fs fs.FileSystem
}

func NewAssetHandler(fsys fs.FileSystem) http.Handler {
	return &AssetHandler{fs: fsys}
}

func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(path.Clean("/"+req.URL.Path), "/")
	if name == "" || !h.fs.FileExists(name) {
		http.NotFound(w, req)
		return
	}

	data, err := h.fs.ReadFile(name)
	if err != nil {
		// directories exist but cannot be read as files
		http.NotFound(w, req)
		return
	}

	etag := core.ETag(data)
	w.Header().Set("ETag", etag)
	if etagMatches(req.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", core.GetContentType(name))
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(data)
}

// PublicHandler serves an asset when one exists at the request path and
// otherwise hands the request to next.
type PublicHandler struct {
	assets http.Handler
	fs     fs.FileSystem
	next   http.Handler
}

func NewPublicHandler(fsys fs.FileSystem, next http.Handler) http.Handler {
	return &PublicHandler{
		assets: NewAssetHandler(fsys),
		fs:     fsys,
		next:   next,
	}
}

func (h *PublicHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+req.URL.Path), "/")
	if name == "" || path.Ext(name) == "" || !h.fs.FileExists(name) {
		h.next.ServeHTTP(w, req)
		return
	}
	h.assets.ServeHTTP(w, req)
}
