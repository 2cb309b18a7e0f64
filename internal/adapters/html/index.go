package html

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/stanjdev/folio/internal/core"
)

// IndexEntry is one row of the projects listing.
type IndexEntry struct {
	Route string
	Meta  core.Metadata
}

// Index lists every page with its description.
func Index(entries []IndexEntry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		list := core.Node{Tag: "ul", Attrs: []core.Attr{{Key: "class", Value: "projects"}}}
		for _, e := range entries {
			item := core.Node{Tag: "li", Attrs: []core.Attr{{Key: "class", Value: "projects__item"}}, Children: []core.Node{{
				Tag:      "a",
				Attrs:    []core.Attr{{Key: "href", Value: e.Route}},
				Children: []core.Node{{Text: e.Meta.Title}},
			}}}
			if e.Meta.Description != "" {
				item.Children = append(item.Children, core.Node{Tag: "p", Children: []core.Node{{Text: e.Meta.Description}}})
			}
			list.Children = append(list.Children, item)
		}

		section := core.Node{Tag: "section", Attrs: []core.Attr{{Key: "class", Value: "container"}}, Children: []core.Node{
			{Tag: "h1", Children: []core.Node{{Text: "Projects"}}},
			list,
		}}
		return writeNode(w, section)
	})
}
