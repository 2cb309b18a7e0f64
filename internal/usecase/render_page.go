package usecase

import (
	"bytes"
	"context"
	"fmt"

	"github.com/stanjdev/folio/internal/adapters/html"
	"github.com/stanjdev/folio/internal/core"
)

type RenderPageInput struct {
	Source DocumentSource
	Text   bool
}

type RenderPageOutput struct {
	Page  core.Metadata
	Tree  core.OutputTree
	HTML  []byte
	Text  []byte
	Error error
}

type PageService struct {
	renderer *core.Renderer
	shell    LayoutShell
	text     TextRenderer
}

func NewPageService(renderer *core.Renderer, shell LayoutShell, text TextRenderer) *PageService {
	return &PageService{
		renderer: renderer,
		shell:    shell,
		text:     text,
	}
}

// RenderPage assembles a fresh Document from the source, renders it and wraps
// the result in the layout shell.
func (s *PageService) RenderPage(ctx context.Context, input RenderPageInput) RenderPageOutput {
	if input.Source == nil {
		return RenderPageOutput{Error: fmt.Errorf("no document source")}
	}

	doc, err := input.Source.Document()
	if err != nil {
		return RenderPageOutput{Error: err}
	}

	tree, err := s.renderer.Render(doc)
	if err != nil {
		return RenderPageOutput{Page: doc.Metadata(), Error: err}
	}

	var buf bytes.Buffer
	if err := s.shell.Wrap(tree.Page, html.Content(tree)).Render(ctx, &buf); err != nil {
		return RenderPageOutput{Page: tree.Page, Error: fmt.Errorf("write html: %w", err)}
	}

	out := RenderPageOutput{
		Page: tree.Page,
		Tree: tree,
		HTML: buf.Bytes(),
	}
	if input.Text && s.text != nil {
		out.Text = s.text.Render(tree)
	}
	return out
}

// RenderIndex renders the listing page for entries.
func (s *PageService) RenderIndex(ctx context.Context, entries []html.IndexEntry) RenderPageOutput {
	meta := core.Metadata{
		Title:       "Projects",
		Description: "Selected case studies",
		Slug:        "projects",
	}

	var buf bytes.Buffer
	if err := s.shell.Wrap(meta, html.Index(entries)).Render(ctx, &buf); err != nil {
		return RenderPageOutput{Page: meta, Error: fmt.Errorf("write html: %w", err)}
	}
	return RenderPageOutput{Page: meta, HTML: buf.Bytes()}
}
