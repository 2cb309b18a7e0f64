package core

import (
	"fmt"
	"strings"
)

type BlockKind string

const (
	KindHeader    BlockKind = "header"
	KindInfoGrid  BlockKind = "info-grid"
	KindTechList  BlockKind = "tech-list"
	KindNarrative BlockKind = "narrative"
	KindCode      BlockKind = "code"
	KindFigure    BlockKind = "figure"
)

// Block is one typed unit of page content. The set of implementations is closed:
// only the variants declared in this file satisfy it.
type Block interface {
	Kind() BlockKind
	validate() error
	clone() Block
}

type Link struct {
	Label string
	URL   string
}

type Header struct {
	Title    string
	Subtitle string
	Quote    string
	Links    []Link
}

type InfoCell struct {
	Label string
	Value string
}

type InfoGrid struct {
	Cells []InfoCell
}

type TechGroup struct {
	Label string
	Items []string
}

type TechList struct {
	Heading string
	Groups  []TechGroup
}

// NarrativeSection is a headed run of prose. Children are rendered after the
// paragraphs and items and may only be figures or code snippets.
type NarrativeSection struct {
	Heading    string
	Paragraphs []string
	Items      []string
	Children   []Block
}

type CodeSnippet struct {
	Language string
	Source   string
}

type Figure struct {
	ImagePath string
	Caption   string
	AltText   string
}

func NewHeader(title, subtitle, quote string, links ...Link) (Header, error) {
	h := Header{Title: title, Subtitle: subtitle, Quote: quote, Links: links}
	if err := h.validate(); err != nil {
		return Header{}, err
	}
	return h.clone().(Header), nil
}

func NewInfoGrid(cells ...InfoCell) (InfoGrid, error) {
	g := InfoGrid{Cells: cells}
	if err := g.validate(); err != nil {
		return InfoGrid{}, err
	}
	return g.clone().(InfoGrid), nil
}

func NewTechList(heading string, groups ...TechGroup) (TechList, error) {
	l := TechList{Heading: heading, Groups: groups}
	if err := l.validate(); err != nil {
		return TechList{}, err
	}
	return l.clone().(TechList), nil
}

func NewNarrativeSection(heading string, paragraphs []string, children ...Block) (NarrativeSection, error) {
	s := NarrativeSection{Heading: heading, Paragraphs: paragraphs, Children: children}
	if err := s.validate(); err != nil {
		return NarrativeSection{}, err
	}
	return s.clone().(NarrativeSection), nil
}

func NewCodeSnippet(language, source string) (CodeSnippet, error) {
	c := CodeSnippet{Language: language, Source: source}
	if err := c.validate(); err != nil {
		return CodeSnippet{}, err
	}
	return c, nil
}

func NewFigure(imagePath, caption, altText string) (Figure, error) {
	f := Figure{ImagePath: imagePath, Caption: caption, AltText: altText}
	if err := f.validate(); err != nil {
		return Figure{}, err
	}
	return f, nil
}

func (Header) Kind() BlockKind           { return KindHeader }
func (InfoGrid) Kind() BlockKind         { return KindInfoGrid }
func (TechList) Kind() BlockKind         { return KindTechList }
func (NarrativeSection) Kind() BlockKind { return KindNarrative }
func (CodeSnippet) Kind() BlockKind      { return KindCode }
func (Figure) Kind() BlockKind           { return KindFigure }

func (h Header) validate() error {
	if blank(h.Title) {
		return invalid("title", "header title is required")
	}
	for i, link := range h.Links {
		if err := link.validate(); err != nil {
			return prefixed(fmt.Sprintf("links[%d]", i), err)
		}
	}
	return nil
}

func (l Link) validate() error {
	if blank(l.Label) {
		return invalid("label", "link label is required")
	}
	if blank(l.URL) {
		return invalid("url", "link url is required")
	}
	return nil
}

func (g InfoGrid) validate() error {
	if len(g.Cells) == 0 {
		return invalid("cells", "info grid needs at least one cell")
	}
	for i, cell := range g.Cells {
		if blank(cell.Label) {
			return invalid(fmt.Sprintf("cells[%d].label", i), "cell label is required")
		}
		if blank(cell.Value) {
			return invalid(fmt.Sprintf("cells[%d].value", i), "cell value is required")
		}
	}
	return nil
}

func (l TechList) validate() error {
	if len(l.Groups) == 0 {
		return invalid("groups", "tech list needs at least one group")
	}
	for i, group := range l.Groups {
		if len(group.Items) == 0 {
			return invalid(fmt.Sprintf("groups[%d].items", i), "tech group needs at least one item")
		}
		for j, item := range group.Items {
			if blank(item) {
				return invalid(fmt.Sprintf("groups[%d].items[%d]", i, j), "tech item is empty")
			}
		}
	}
	return nil
}

func (s NarrativeSection) validate() error {
	if blank(s.Heading) {
		return invalid("heading", "section heading is required")
	}
	for i, p := range s.Paragraphs {
		if blank(p) {
			return invalid(fmt.Sprintf("paragraphs[%d]", i), "paragraph is empty")
		}
	}
	for i, item := range s.Items {
		if blank(item) {
			return invalid(fmt.Sprintf("items[%d]", i), "item is empty")
		}
	}
	for i, child := range s.Children {
		path := fmt.Sprintf("children[%d]", i)
		switch child.(type) {
		case Figure, CodeSnippet:
		case nil:
			return invalid(path, "child block is nil")
		default:
			return invalid(path, fmt.Sprintf("%s block cannot be nested in a section", child.Kind()))
		}
		if err := child.validate(); err != nil {
			return prefixed(path, err)
		}
	}
	return nil
}

func (c CodeSnippet) validate() error {
	if blank(c.Source) {
		return invalid("source", "code snippet source is required")
	}
	return nil
}

func (f Figure) validate() error {
	if blank(f.ImagePath) {
		return invalid("image", "figure image path is required")
	}
	return nil
}

func (h Header) clone() Block {
	h.Links = cloneSlice(h.Links)
	return h
}

func (g InfoGrid) clone() Block {
	g.Cells = cloneSlice(g.Cells)
	return g
}

func (l TechList) clone() Block {
	groups := make([]TechGroup, len(l.Groups))
	for i, g := range l.Groups {
		groups[i] = TechGroup{Label: g.Label, Items: cloneSlice(g.Items)}
	}
	l.Groups = groups
	return l
}

func (s NarrativeSection) clone() Block {
	s.Paragraphs = cloneSlice(s.Paragraphs)
	s.Items = cloneSlice(s.Items)
	s.Children = cloneBlocks(s.Children)
	return s
}

func (c CodeSnippet) clone() Block { return c }
func (f Figure) clone() Block      { return f }

func cloneBlocks(blocks []Block) []Block {
	if blocks == nil {
		return nil
	}
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		out[i] = b.clone()
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
