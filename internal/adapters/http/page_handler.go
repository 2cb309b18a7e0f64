package http

import (
	"bytes"
	"html"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	htmladapter "github.com/stanjdev/folio/internal/adapters/html"
	"github.com/stanjdev/folio/internal/core"
	"github.com/stanjdev/folio/internal/logger"
	"github.com/stanjdev/folio/internal/usecase"
)

// PageHandler serves one case-study page. Every request assembles a fresh
// Document from the source.
type PageHandler struct {
	service *usecase.PageService
	source  usecase.DocumentSource
	isDev   bool
	log     *logger.Logger
}

func NewPageHandler(
	service *usecase.PageService,
	source usecase.DocumentSource,
	isDev bool,
	log *logger.Logger,
) http.Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return &PageHandler{
		service: service,
		source:  source,
		isDev:   isDev,
		log:     log,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if !allowMethod(w, req) {
		return
	}

	output := h.service.RenderPage(req.Context(), usecase.RenderPageInput{Source: h.source})
	if output.Error != nil {
		h.log.Error("render page", "path", req.URL.Path, "error", output.Error)
		serveError(w, output.Error, h.isDev)
		return
	}

	serveHTML(w, req, output.HTML)
}

// IndexHandler serves the listing of all pages.
type IndexHandler struct {
	service *usecase.PageService
	entries []htmladapter.IndexEntry
	isDev   bool
	log     *logger.Logger
}

func NewIndexHandler(
	service *usecase.PageService,
	entries []htmladapter.IndexEntry,
	isDev bool,
	log *logger.Logger,
) http.Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return &IndexHandler{
		service: service,
		entries: entries,
		isDev:   isDev,
		log:     log,
	}
}

func (h *IndexHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if !allowMethod(w, req) {
		return
	}

	output := h.service.RenderIndex(req.Context(), h.entries)
	if output.Error != nil {
		h.log.Error("render index", "path", req.URL.Path, "error", output.Error)
		serveError(w, output.Error, h.isDev)
		return
	}

	serveHTML(w, req, output.HTML)
}

func allowMethod(w http.ResponseWriter, req *http.Request) bool {
	if req.Method == http.MethodGet || req.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	return false
}

func serveHTML(w http.ResponseWriter, req *http.Request, body []byte) {
	etag := core.ETag(body)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")

	if etagMatches(req.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

// etagMatches implements the weak comparison If-None-Match uses.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

func serveError(w http.ResponseWriter, err error, isDev bool) {
	data := errorData{
		Message: err.Error(),
		IsDev:   isDev,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	var buf bytes.Buffer
	if err := errorTemplate.Execute(&buf, data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}

type errorData struct {
	Message string
	IsDev   bool
}

var errorTemplate = template.Must(template.New("error").Parse(`<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Error</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 50px auto; padding: 0 20px; }
        h1 { color: #e74c3c; }
        pre { background: #f8f9fa; padding: 15px; border-radius: 5px; overflow-x: auto; }
    </style>
</head>
<body>
    <h1>Page could not be rendered</h1>
    {{if .IsDev}}
    <pre>{{.Message}}</pre>
    {{else}}
    <p>This page is temporarily unavailable.</p>
    {{end}}
</body>
</html>`))
