package usecase

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/stanjdev/folio/internal/adapters/cli"
	"github.com/stanjdev/folio/internal/adapters/fs"
	"github.com/stanjdev/folio/internal/adapters/html"
	"github.com/stanjdev/folio/internal/adapters/text"
	"github.com/stanjdev/folio/internal/core"
)

type staticSource struct {
	meta   core.Metadata
	blocks []core.Block
}

func (s staticSource) Document() (core.Document, error) {
	return core.Assemble(s.meta, s.blocks)
}

func demoSource() staticSource {
	return staticSource{
		meta: core.Metadata{Title: "Demo", Description: "Demo page", Slug: "demo"},
		blocks: []core.Block{
			core.Header{Title: "Demo", Links: []core.Link{
				{Label: "Live", URL: "https://ex.com"},
				{Label: "Code", URL: "https://github.com/x"},
			}},
			core.Figure{ImagePath: "/img/a.png", Caption: "Shot"},
		},
	}
}

func brokenSource() staticSource {
	return staticSource{
		meta: core.Metadata{Title: "Broken"},
		blocks: []core.Block{
			core.NarrativeSection{Heading: "A", Children: []core.Block{core.CodeSnippet{Language: "go"}}},
		},
	}
}

func newPageService() *PageService {
	return NewPageService(
		core.NewRenderer(core.Site{Host: "stanjdev.com"}),
		html.NewShell("Stan J Dev", "en", "/static/site.css"),
		text.New(language.English),
	)
}

func TestRenderPage(t *testing.T) {
	out := newPageService().RenderPage(context.Background(), RenderPageInput{Source: demoSource(), Text: true})
	if out.Error != nil {
		t.Fatalf("RenderPage() error = %v", out.Error)
	}

	page := string(out.HTML)
	for _, want := range []string{
		"<title>Demo | Stan J Dev</title>",
		`<meta name="description" content="Demo page">`,
		`<a href="https://ex.com" target="_blank" rel="noopener noreferrer">Live</a>`,
		`alt="Shot"`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("Expected HTML to contain %q", want)
		}
	}
	if !strings.HasPrefix(string(out.Text), "DEMO\n====\n") {
		t.Errorf("Expected text output, got %q", out.Text)
	}
	if out.Page.Slug != "demo" {
		t.Errorf("Expected page metadata, got %+v", out.Page)
	}
	if got := out.Tree.BlockKinds(); len(got) != 2 {
		t.Errorf("Expected 2 block nodes, got %v", got)
	}
}

func TestRenderPageWithoutText(t *testing.T) {
	out := newPageService().RenderPage(context.Background(), RenderPageInput{Source: demoSource()})
	if out.Error != nil {
		t.Fatalf("RenderPage() error = %v", out.Error)
	}
	if out.Text != nil {
		t.Errorf("Expected no text output, got %q", out.Text)
	}
}

func TestRenderPageInvalidDocument(t *testing.T) {
	out := newPageService().RenderPage(context.Background(), RenderPageInput{Source: brokenSource()})
	if !errors.Is(out.Error, core.ErrInvalidBlockDefinition) {
		t.Fatalf("Expected ErrInvalidBlockDefinition, got %v", out.Error)
	}
	if out.HTML != nil {
		t.Error("Expected no HTML for invalid document")
	}
}

func TestRenderPageNilSource(t *testing.T) {
	if out := newPageService().RenderPage(context.Background(), RenderPageInput{}); out.Error == nil {
		t.Error("Expected error for missing source")
	}
}

func TestRenderIndex(t *testing.T) {
	out := newPageService().RenderIndex(context.Background(), []html.IndexEntry{
		{Route: "/projects/demo", Meta: core.Metadata{Title: "Demo"}},
	})
	if out.Error != nil {
		t.Fatalf("RenderIndex() error = %v", out.Error)
	}
	if !strings.Contains(string(out.HTML), `<a href="/projects/demo">Demo</a>`) {
		t.Errorf("Expected link to page, got %s", out.HTML)
	}
	if !strings.Contains(string(out.HTML), "<title>Projects | Stan J Dev</title>") {
		t.Error("Expected index title")
	}
}

func TestExportStatic(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	svc := NewExportService(newPageService(), fs.NewOSFileSystem(dir), cli.NewWriterOutput(&buf))

	out := svc.ExportStatic(context.Background(), ExportInput{
		Pages: []ExportPage{
			{Route: "/projects/demo", Source: demoSource(), Text: true},
			{Route: "/", Source: demoSource()},
		},
		IndexRoute: "/projects",
		OutputDir:  dir,
	})
	if out.Error != nil {
		t.Fatalf("ExportStatic() error = %v\n%s", out.Error, buf.String())
	}

	want := []string{
		"projects/demo/index.html",
		"projects/demo/index.txt",
		"index.html",
		"projects/index.html",
	}
	if len(out.Files) != len(want) {
		t.Fatalf("Expected files %v, got %v", want, out.Files)
	}
	for i, f := range want {
		if out.Files[i] != f {
			t.Errorf("File %d: expected %q, got %q", i, f, out.Files[i])
		}
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(f))); err != nil {
			t.Errorf("Expected %s on disk: %v", f, err)
		}
	}

	index, err := os.ReadFile(filepath.Join(dir, "projects", "index.html"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(index), `href="/projects/demo"`) {
		t.Error("Expected index to link exported page")
	}
	if !strings.Contains(buf.String(), "Export complete") {
		t.Errorf("Expected report in output, got:\n%s", buf.String())
	}
}

func TestExportStaticReportsInvalidPages(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	svc := NewExportService(newPageService(), fs.NewOSFileSystem(dir), cli.NewWriterOutput(&buf))

	out := svc.ExportStatic(context.Background(), ExportInput{
		Pages: []ExportPage{
			{Route: "/projects/demo", Source: demoSource()},
			{Route: "/projects/broken", Source: brokenSource()},
		},
	})
	if out.Error == nil {
		t.Fatal("Expected export error")
	}
	if len(out.Files) != 1 || out.Files[0] != "projects/demo/index.html" {
		t.Errorf("Expected only the valid page written, got %v", out.Files)
	}
	if !strings.Contains(buf.String(), "blocks[0].children[0].source") {
		t.Errorf("Expected error path in report, got:\n%s", buf.String())
	}
}

func TestExportStaticCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewExportService(newPageService(), fs.NewOSFileSystem(t.TempDir()), cli.NewWriterOutput(&bytes.Buffer{}))
	out := svc.ExportStatic(ctx, ExportInput{Pages: []ExportPage{{Route: "/", Source: demoSource()}}})
	if !errors.Is(out.Error, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", out.Error)
	}
}

func TestExportStaticNoPages(t *testing.T) {
	svc := NewExportService(newPageService(), fs.NewOSFileSystem(t.TempDir()), cli.NewWriterOutput(&bytes.Buffer{}))
	if out := svc.ExportStatic(context.Background(), ExportInput{}); out.Error == nil {
		t.Error("Expected error when there is nothing to export")
	}
}

func TestRouteDir(t *testing.T) {
	tests := []struct {
		route   string
		want    string
		wantErr bool
	}{
		{route: "/", want: "."},
		{route: "/projects/goodreads", want: "projects/goodreads"},
		{route: "/projects/goodreads/", want: "projects/goodreads"},
		{route: "projects", wantErr: true},
		{route: "/../etc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			got, err := RouteDir(tt.route)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.route)
				}
				return
			}
			if err != nil {
				t.Fatalf("RouteDir() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCheckContent(t *testing.T) {
	var buf bytes.Buffer
	svc := NewCheckService(core.NewRenderer(core.Site{Host: "stanjdev.com"}), cli.NewWriterOutput(&buf))

	decorative := staticSource{
		meta:   core.Metadata{Title: "Decorative"},
		blocks: []core.Block{core.Figure{ImagePath: "/img/plain.png"}},
	}
	out := svc.CheckContent(context.Background(), CheckInput{Pages: []ExportPage{
		{Route: "/projects/demo", Source: demoSource()},
		{Route: "/projects/decorative", Source: decorative},
		{Route: "/projects/broken", Source: brokenSource()},
	}})

	if out.Error == nil {
		t.Fatal("Expected check error")
	}
	if out.Checked != 3 {
		t.Errorf("Expected 3 pages checked, got %d", out.Checked)
	}
	if errs := out.Report.Errors(); len(errs) != 1 || errs[0].Page != "/projects/broken" {
		t.Errorf("Expected one error for the broken page, got %+v", errs)
	}
	if warns := out.Report.Warnings(); len(warns) != 1 || warns[0].Details[0] != "/img/plain.png" {
		t.Errorf("Expected one alt text warning, got %+v", warns)
	}
}

func TestCheckContentClean(t *testing.T) {
	svc := NewCheckService(core.NewRenderer(core.Site{Host: "stanjdev.com"}), cli.NewWriterOutput(&bytes.Buffer{}))
	out := svc.CheckContent(context.Background(), CheckInput{Pages: []ExportPage{{Route: "/", Source: demoSource()}}})
	if out.Error != nil {
		t.Errorf("Expected clean check, got %v", out.Error)
	}
}
