package core

import "fmt"

// Renderer maps a Document to an OutputTree. It holds no mutable state and may
// be shared between goroutines.
type Renderer struct {
	site Site
}

func NewRenderer(site Site) *Renderer {
	return &Renderer{site: site}
}

// Render produces one top-level node per top-level block, in order. Nested
// blocks become nested block nodes.
func (r *Renderer) Render(doc Document) (OutputTree, error) {
	tree := OutputTree{
		Page:  doc.meta,
		Nodes: make([]Node, 0, len(doc.blocks)),
	}
	for _, b := range doc.blocks {
		n, err := r.renderBlock(b)
		if err != nil {
			return OutputTree{}, err
		}
		tree.Nodes = append(tree.Nodes, n)
	}
	return tree, nil
}

func (r *Renderer) renderBlock(b Block) (Node, error) {
	var n Node
	switch b := b.(type) {
	case Header:
		n = r.header(b)
	case InfoGrid:
		n = r.infoGrid(b)
	case TechList:
		n = r.techList(b)
	case NarrativeSection:
		section, err := r.narrative(b)
		if err != nil {
			return Node{}, err
		}
		n = section
	case CodeSnippet:
		n = r.code(b)
	case Figure:
		n = r.figure(b)
	default:
		return Node{}, &UnsupportedBlockKindError{Kind: unsupportedKind(b)}
	}
	n.Block = b.Kind()
	return n, nil
}

func unsupportedKind(b Block) string {
	if b == nil {
		return "<nil>"
	}
	if k := b.Kind(); k != "" {
		return string(k)
	}
	return fmt.Sprintf("%T", b)
}

func (r *Renderer) header(h Header) Node {
	n := element("div", class("header"), element("h1", nil, text(h.Title)))
	if h.Subtitle != "" {
		n.Children = append(n.Children, element("h2", nil, text(h.Subtitle)))
	}
	if h.Quote != "" {
		n.Children = append(n.Children, element("blockquote", nil, element("em", nil, text(h.Quote))))
	}
	if len(h.Links) > 0 {
		links := element("p", class("header__links"))
		for i, l := range h.Links {
			if i > 0 {
				links.Children = append(links.Children, text(" | "))
			}
			links.Children = append(links.Children, r.anchor(l.Label, l.URL))
		}
		n.Children = append(n.Children, links)
	}
	return n
}

// anchor applies the external link policy: other hosts open in a new browsing
// context without referrer or opener access.
func (r *Renderer) anchor(label, href string) Node {
	attrs := []Attr{{Key: "href", Value: href}}
	if r.site.IsExternal(href) {
		attrs = append(attrs,
			Attr{Key: "target", Value: ExternalTarget},
			Attr{Key: "rel", Value: ExternalRel},
		)
	}
	return element("a", attrs, text(label))
}

func (r *Renderer) infoGrid(g InfoGrid) Node {
	n := element("div", class("projectInfo"))
	for _, c := range g.Cells {
		n.Children = append(n.Children, element("div", class("container__grey projectInfo__block"),
			element("h2", nil, text(c.Label)),
			element("p", nil, text(c.Value)),
		))
	}
	return n
}

func (r *Renderer) techList(l TechList) Node {
	n := element("div", class("container container__grey"))
	if l.Heading != "" {
		n.Children = append(n.Children, element("h2", nil, text(l.Heading)))
	}
	groups := element("div", class("technologies"))
	for _, g := range l.Groups {
		list := element("ul", nil)
		if g.Label != "" {
			list.Children = append(list.Children, element("li", class("technologies__label"), element("u", nil, text(g.Label))))
		}
		for _, item := range g.Items {
			list.Children = append(list.Children, element("li", nil, r.inline(item)...))
		}
		groups.Children = append(groups.Children, list)
	}
	n.Children = append(n.Children, groups)
	return n
}

func (r *Renderer) narrative(s NarrativeSection) (Node, error) {
	n := element("section", class("container"), element("h2", nil, text(s.Heading)))
	for _, p := range s.Paragraphs {
		n.Children = append(n.Children, element("p", nil, r.inline(p)...))
	}
	if len(s.Items) > 0 {
		list := element("ul", nil)
		for _, item := range s.Items {
			list.Children = append(list.Children, element("li", nil, r.inline(item)...))
		}
		n.Children = append(n.Children, list)
	}
	for _, child := range s.Children {
		c, err := r.renderBlock(child)
		if err != nil {
			return Node{}, err
		}
		n.Children = append(n.Children, c)
	}
	return n, nil
}

// code keeps the source byte for byte; escaping is left to the output writer.
func (r *Renderer) code(c CodeSnippet) Node {
	var attrs []Attr
	if c.Language != "" {
		attrs = []Attr{{Key: "class", Value: "language-" + c.Language}}
	}
	return element("pre", class("pre"), element("code", attrs, text(c.Source)))
}

func (r *Renderer) figure(f Figure) Node {
	alt := f.AltText
	if blank(alt) {
		alt = Node{Tag: "span", Children: r.inline(f.Caption)}.TextContent()
	}
	n := element("figure", class("center"), element("img", []Attr{
		{Key: "src", Value: f.ImagePath},
		{Key: "alt", Value: alt},
		{Key: "class", Value: "caseStudyImage center"},
	}))
	if f.Caption != "" {
		n.Children = append(n.Children, element("figcaption", nil, r.inline(f.Caption)...))
	}
	return n
}
