package usecase

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/stanjdev/folio/internal/adapters/cli"
	"github.com/stanjdev/folio/internal/adapters/html"
	"github.com/stanjdev/folio/internal/core"
)

type ExportPage struct {
	Route  string
	Source DocumentSource
	Text   bool

	// Unlisted pages are written but left out of the index.
	Unlisted bool
}

type ExportInput struct {
	Pages []ExportPage
	// IndexRoute, when set, also writes the projects listing at that route.
	IndexRoute string
	OutputDir  string
}

type ExportOutput struct {
	Files  []string
	Report *cli.Report
	Error  error
}

type ExportService struct {
	pages *PageService
	fs    FileSystem
	cli   CLIOutput
}

func NewExportService(pages *PageService, fs FileSystem, cli CLIOutput) *ExportService {
	return &ExportService{
		pages: pages,
		fs:    fs,
		cli:   cli,
	}
}

type exportFile struct {
	path string
	data []byte
}

// ExportStatic renders every page and writes <route>/index.html, plus
// <route>/index.txt for pages that ask for text. Pages that fail to render
// are reported and skipped; the output error is set if any failed.
func (s *ExportService) ExportStatic(ctx context.Context, input ExportInput) ExportOutput {
	s.cli.PrintHeader("Folio Export")

	if len(input.Pages) == 0 {
		return ExportOutput{Error: fmt.Errorf("no pages to export")}
	}

	report := cli.NewReport(s.cli, "Export", input.OutputDir)
	report.SetPageCount(len(input.Pages))

	stepRender := report.StartStep("Rendering pages")
	var files []exportFile
	var entries []html.IndexEntry
	for _, page := range input.Pages {
		if err := ctx.Err(); err != nil {
			report.EndStep(stepRender, false, err.Error())
			return ExportOutput{Report: report, Error: err}
		}

		dir, err := RouteDir(page.Route)
		if err != nil {
			report.AddError(page.Route, "invalid route", err.Error())
			continue
		}

		out := s.pages.RenderPage(ctx, RenderPageInput{Source: page.Source, Text: page.Text})
		if out.Error != nil {
			report.AddError(page.Route, failureMessage(out.Error), failureDetails(out.Error)...)
			continue
		}

		files = append(files, exportFile{path: path.Join(dir, "index.html"), data: out.HTML})
		if page.Text {
			files = append(files, exportFile{path: path.Join(dir, "index.txt"), data: out.Text})
		}
		if !page.Unlisted {
			entries = append(entries, html.IndexEntry{Route: page.Route, Meta: out.Page})
		}
	}

	if input.IndexRoute != "" {
		dir, err := RouteDir(input.IndexRoute)
		if err != nil {
			report.AddError(input.IndexRoute, "invalid route", err.Error())
		} else if out := s.pages.RenderIndex(ctx, entries); out.Error != nil {
			report.AddError(input.IndexRoute, "render failed", out.Error.Error())
		} else {
			files = append(files, exportFile{path: path.Join(dir, "index.html"), data: out.HTML})
		}
	}
	report.EndStep(stepRender, len(report.Errors()) == 0, "")

	stepWrite := report.StartStep("Writing files")
	written := make([]string, 0, len(files))
	var writeErr error
	for _, f := range files {
		if err := s.writeFile(f); err != nil {
			report.AddError(f.path, "write failed", err.Error())
			writeErr = errors.Join(writeErr, err)
			continue
		}
		written = append(written, f.path)
	}
	report.EndStep(stepWrite, writeErr == nil, errString(writeErr))

	report.Render(s.cli.Writer())

	out := ExportOutput{Files: written, Report: report}
	if report.HasFailures() {
		out.Error = fmt.Errorf("export failed: %d problems", len(report.Errors()))
	}
	return out
}

func (s *ExportService) writeFile(f exportFile) error {
	if dir := path.Dir(f.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := s.fs.WriteFile(f.path, f.data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}

// RouteDir maps a URL route to its output directory, "." for the root.
// Routes must be absolute and may not climb out of the output directory.
func RouteDir(route string) (string, error) {
	if !strings.HasPrefix(route, "/") {
		return "", fmt.Errorf("route %q must start with /", route)
	}
	for _, seg := range strings.Split(route, "/") {
		if seg == ".." {
			return "", fmt.Errorf("route %q escapes the output directory", route)
		}
	}
	dir := strings.TrimPrefix(path.Clean(route), "/")
	if dir == "" {
		return ".", nil
	}
	return dir, nil
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidBlockDefinition):
		return core.ErrInvalidBlockDefinition.Error()
	case errors.Is(err, core.ErrUnsupportedBlockKind):
		return core.ErrUnsupportedBlockKind.Error()
	}
	return "render failed"
}

func failureDetails(err error) []string {
	var ibd *core.InvalidBlockDefinitionError
	if errors.As(err, &ibd) {
		if ibd.Path == "" {
			return []string{ibd.Reason}
		}
		return []string{ibd.Path + ": " + ibd.Reason}
	}
	var ubk *core.UnsupportedBlockKindError
	if errors.As(err, &ubk) {
		return []string{"kind " + ubk.Kind}
	}
	return []string{err.Error()}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
