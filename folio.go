// Package folio serves and exports portfolio case-study pages built from
// structured documents.
package folio

import (
	"context"
	"fmt"
	"net/http"
	"path"

	"github.com/stanjdev/folio/content"
	"github.com/stanjdev/folio/internal/adapters/cli"
	contentadapter "github.com/stanjdev/folio/internal/adapters/content"
	"github.com/stanjdev/folio/internal/adapters/fs"
	htmladapter "github.com/stanjdev/folio/internal/adapters/html"
	httpadapter "github.com/stanjdev/folio/internal/adapters/http"
	"github.com/stanjdev/folio/internal/adapters/text"
	"github.com/stanjdev/folio/internal/config"
	"github.com/stanjdev/folio/internal/core"
	"github.com/stanjdev/folio/internal/logger"
	"github.com/stanjdev/folio/internal/types"
	"github.com/stanjdev/folio/internal/usecase"
)

// DefaultIndexRoute lists every listed page.
const DefaultIndexRoute = "/projects"

type (
	PageOption     = types.PageOption
	DocumentSource = usecase.DocumentSource
	Definition     = contentadapter.Definition
	CLIOutput      = usecase.CLIOutput
	ExportOutput   = usecase.ExportOutput
	CheckOutput    = usecase.CheckOutput
)

type Route struct {
	Pattern string
	Source  DocumentSource
	Options []PageOption
}

type App struct {
	cfg        config.Config
	log        *logger.Logger
	pages      *usecase.PageService
	renderer   *core.Renderer
	routes     []Route
	configs    []types.PageConfig
	index      []htmladapter.IndexEntry
	indexRoute string
	assets     fs.FileSystem
}

type router interface {
	http.Handler
	Handle(pattern string, handler http.Handler)
}

// New validates every route by assembling its document once. A nil logger
// discards output.
func New(cfg config.Config, log *logger.Logger, routes ...Route) (*App, error) {
	if log == nil {
		log = logger.NewNop()
	}

	renderer := core.NewRenderer(core.Site{Host: cfg.SiteHost})
	app := &App{
		cfg:      cfg,
		log:      log,
		renderer: renderer,
		pages: usecase.NewPageService(
			renderer,
			htmladapter.NewShell(cfg.SiteName, cfg.Lang, cfg.Stylesheet),
			text.New(cfg.Language()),
		),
		indexRoute: DefaultIndexRoute,
	}
	if cfg.AssetsDir != "" {
		app.assets = fs.NewOSFileSystem(cfg.AssetsDir)
	}

	seen := make(map[string]bool, len(routes))
	for _, route := range routes {
		if route.Source == nil {
			return nil, fmt.Errorf("route %s: no document source", route.Pattern)
		}
		if seen[route.Pattern] {
			return nil, fmt.Errorf("route %s: registered twice", route.Pattern)
		}
		seen[route.Pattern] = true

		doc, err := route.Source.Document()
		if err != nil {
			return nil, fmt.Errorf("route %s: %w", route.Pattern, err)
		}

		pc := types.NewPageConfig(route.Options...)
		app.routes = append(app.routes, route)
		app.configs = append(app.configs, pc)
		if !pc.Unlisted {
			app.index = append(app.index, htmladapter.IndexEntry{Route: route.Pattern, Meta: doc.Metadata()})
		}
	}
	if seen[app.indexRoute] {
		app.indexRoute = ""
	}

	return app, nil
}

func (a *App) Routes() []Route {
	return append([]Route(nil), a.routes...)
}

// Wrap registers every page, and the projects index, on api. When an assets
// directory is configured, files found there take precedence.
func (a *App) Wrap(api router) http.Handler {
	if api == nil {
		panic("folio: nil router passed to Wrap; use app.Handler()")
	}

	for _, route := range a.routes {
		api.Handle(route.Pattern, httpadapter.NewPageHandler(a.pages, route.Source, a.cfg.Dev, a.log))
	}
	if a.indexRoute != "" {
		api.Handle(a.indexRoute, httpadapter.NewIndexHandler(a.pages, a.index, a.cfg.Dev, a.log))
	}

	if a.assets != nil {
		return httpadapter.NewPublicHandler(a.assets, api)
	}
	return api
}

func (a *App) Handler() http.Handler {
	return a.Wrap(http.NewServeMux())
}

// Export writes every route below dir. Progress and the final report go to
// out; a nil out prints to the terminal.
func (a *App) Export(ctx context.Context, dir string, out CLIOutput) ExportOutput {
	if out == nil {
		out = cli.NewOutput()
	}

	svc := usecase.NewExportService(a.pages, fs.NewOSFileSystem(dir), out)
	result := svc.ExportStatic(ctx, usecase.ExportInput{
		Pages:      a.exportPages(),
		IndexRoute: a.indexRoute,
		OutputDir:  dir,
	})
	if result.Error != nil {
		a.log.Error("export failed", "dir", dir, "error", result.Error)
	} else {
		a.log.Info("export complete", "dir", dir, "files", len(result.Files))
	}
	return result
}

// Check assembles and renders every route without writing anything.
func (a *App) Check(ctx context.Context, out CLIOutput) CheckOutput {
	if out == nil {
		out = cli.NewOutput()
	}
	svc := usecase.NewCheckService(a.renderer, out)
	return svc.CheckContent(ctx, usecase.CheckInput{Pages: a.exportPages()})
}

func (a *App) exportPages() []usecase.ExportPage {
	pages := make([]usecase.ExportPage, len(a.routes))
	for i, route := range a.routes {
		pages[i] = usecase.ExportPage{
			Route:    route.Pattern,
			Source:   route.Source,
			Text:     a.configs[i].TextExport,
			Unlisted: a.configs[i].Unlisted,
		}
	}
	return pages
}

func Page(pattern string, source DocumentSource, opts ...PageOption) Route {
	return Route{
		Pattern: pattern,
		Source:  source,
		Options: opts,
	}
}

// ProjectRoutes mounts each definition at /projects/<slug>.
func ProjectRoutes(defs []Definition, opts ...PageOption) []Route {
	routes := make([]Route, 0, len(defs))
	for _, def := range defs {
		routes = append(routes, Page(path.Join(DefaultIndexRoute, def.Meta.Slug), def, opts...))
	}
	return routes
}

// LoadProjects reads definitions from cfg.ContentDir, or from the embedded
// set when no directory is configured. Invalid files stop the load.
func LoadProjects(cfg config.Config) ([]Definition, error) {
	if cfg.ContentDir != "" {
		return contentadapter.NewLoader(fs.NewOSFileSystem(cfg.ContentDir), ".").LoadAll()
	}
	return contentadapter.NewLoader(fs.NewReadOnlyFileSystem(content.FS), content.Dir).LoadAll()
}

func WithTextExport() PageOption {
	return types.WithTextExport()
}

func WithUnlisted() PageOption {
	return types.WithUnlisted()
}
