// Package html writes OutputTrees as HTML through templ components.
package html

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/stanjdev/folio/internal/core"
)

var voidElements = map[string]bool{
	"br":   true,
	"hr":   true,
	"img":  true,
	"link": true,
	"meta": true,
}

// Content renders the block nodes of tree in order. Text and attribute values
// are escaped; nothing else is rewritten, so code keeps its whitespace.
func Content(tree core.OutputTree) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, n := range tree.Nodes {
			if err := writeNode(w, n); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeNode(w io.Writer, n core.Node) error {
	if n.IsText() {
		_, err := io.WriteString(w, templ.EscapeString(n.Text))
		return err
	}

	if _, err := io.WriteString(w, "<"+n.Tag); err != nil {
		return err
	}
	for _, a := range n.Attrs {
		if _, err := io.WriteString(w, " "+a.Key+"=\""+templ.EscapeString(a.Value)+"\""); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if voidElements[n.Tag] {
		return nil
	}

	for _, c := range n.Children {
		if err := writeNode(w, c); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+n.Tag+">")
	return err
}
