// Package content decodes YAML case-study definitions into core blocks.
//
// A definition file looks like:
//
//	slug: goodreads
//	title: "GoodReads: Case Study"
//	blocks:
//	  - header: {title: GoodReads Reviews, links: [{label: Live, url: https://...}]}
//	  - figure: {image: /project_images/goodreads.png, caption: Welcome page}
//	  - section: {heading: Summary, paragraphs: [...], children: [{code: {source: ...}}]}
//
// Every entry under blocks carries exactly one variant key: header, info, tech,
// section, code or figure.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/stanjdev/folio/internal/core"
)

// Definition is the static content of one page. It is decoded once and may
// be assembled into any number of Documents.
type Definition struct {
	Meta   core.Metadata
	Blocks []core.Block
	Source string
}

// Document assembles a fresh Document from the definition.
func (d Definition) Document() (core.Document, error) {
	return core.Assemble(d.Meta, d.Blocks)
}

type fileDef struct {
	Slug        string      `yaml:"slug"`
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	Blocks      []yaml.Node `yaml:"blocks"`
}

type linkDef struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type headerDef struct {
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle"`
	Quote    string    `yaml:"quote"`
	Links    []linkDef `yaml:"links"`
}

type cellDef struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type groupDef struct {
	Label string   `yaml:"label"`
	Items []string `yaml:"items"`
}

type techDef struct {
	Heading string     `yaml:"heading"`
	Groups  []groupDef `yaml:"groups"`
}

type sectionDef struct {
	Heading    string      `yaml:"heading"`
	Paragraphs []string    `yaml:"paragraphs"`
	Items      []string    `yaml:"items"`
	Children   []yaml.Node `yaml:"children"`
}

type codeDef struct {
	Language string `yaml:"language"`
	Source   string `yaml:"source"`
}

type figureDef struct {
	Image   string `yaml:"image"`
	Caption string `yaml:"caption"`
	Alt     string `yaml:"alt"`
}

// Decode parses one definition. Structural problems in blocks come back as
// *core.InvalidBlockDefinitionError whose path names the variant key, e.g.
// "blocks[3].section.children[0].code". Field validation is left to
// Definition.Document.
func Decode(data []byte) (Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var fd fileDef
	if err := dec.Decode(&fd); err != nil {
		if errors.Is(err, io.EOF) {
			return Definition{}, errors.New("empty definition")
		}
		return Definition{}, err
	}

	def := Definition{
		Meta: core.Metadata{
			Title:       fd.Title,
			Description: fd.Description,
			Slug:        fd.Slug,
		},
		Blocks: make([]core.Block, 0, len(fd.Blocks)),
	}
	for i := range fd.Blocks {
		b, err := decodeBlock(&fd.Blocks[i], fmt.Sprintf("blocks[%d]", i))
		if err != nil {
			return Definition{}, err
		}
		def.Blocks = append(def.Blocks, b)
	}
	return def, nil
}

func decodeBlock(node *yaml.Node, path string) (core.Block, error) {
	if node.Kind != yaml.MappingNode {
		return nil, invalidAt(node, path, "block must be a mapping with one variant key")
	}
	if n := len(node.Content) / 2; n != 1 {
		return nil, invalidAt(node, path, fmt.Sprintf("block must have exactly one variant key, found %d", n))
	}
	key, body := node.Content[0].Value, node.Content[1]
	path = path + "." + key

	switch key {
	case "header":
		var d headerDef
		if err := decodeMapping(body, path, &d, "title", "subtitle", "quote", "links"); err != nil {
			return nil, err
		}
		if err := checkItems(body, "links", path, "label", "url"); err != nil {
			return nil, err
		}
		h := core.Header{Title: d.Title, Subtitle: d.Subtitle, Quote: d.Quote}
		for _, l := range d.Links {
			h.Links = append(h.Links, core.Link{Label: l.Label, URL: l.URL})
		}
		return h, nil

	case "info":
		if body.Kind != yaml.SequenceNode {
			return nil, invalidAt(body, path, "info must be a list of label/value cells")
		}
		for i, item := range body.Content {
			if err := knownKeys(item, fmt.Sprintf("%s[%d]", path, i), "label", "value"); err != nil {
				return nil, err
			}
		}
		var cells []cellDef
		if err := body.Decode(&cells); err != nil {
			return nil, invalidAt(body, path, err.Error())
		}
		g := core.InfoGrid{}
		for _, c := range cells {
			g.Cells = append(g.Cells, core.InfoCell{Label: c.Label, Value: c.Value})
		}
		return g, nil

	case "tech":
		var d techDef
		if err := decodeMapping(body, path, &d, "heading", "groups"); err != nil {
			return nil, err
		}
		if err := checkItems(body, "groups", path, "label", "items"); err != nil {
			return nil, err
		}
		l := core.TechList{Heading: d.Heading}
		for _, g := range d.Groups {
			l.Groups = append(l.Groups, core.TechGroup{Label: g.Label, Items: g.Items})
		}
		return l, nil

	case "section":
		var d sectionDef
		if err := decodeMapping(body, path, &d, "heading", "paragraphs", "items", "children"); err != nil {
			return nil, err
		}
		s := core.NarrativeSection{Heading: d.Heading, Paragraphs: d.Paragraphs, Items: d.Items}
		for i := range d.Children {
			child, err := decodeBlock(&d.Children[i], fmt.Sprintf("%s.children[%d]", path, i))
			if err != nil {
				return nil, err
			}
			s.Children = append(s.Children, child)
		}
		return s, nil

	case "code":
		var d codeDef
		if err := decodeMapping(body, path, &d, "language", "source"); err != nil {
			return nil, err
		}
		return core.CodeSnippet{Language: d.Language, Source: d.Source}, nil

	case "figure":
		var d figureDef
		if err := decodeMapping(body, path, &d, "image", "caption", "alt"); err != nil {
			return nil, err
		}
		return core.Figure{ImagePath: d.Image, Caption: d.Caption, AltText: d.Alt}, nil

	default:
		return nil, invalidAt(node, strings.TrimSuffix(path, "."+key), fmt.Sprintf("unknown block type %q", key))
	}
}

func decodeMapping(node *yaml.Node, path string, out any, allowed ...string) error {
	if err := knownKeys(node, path, allowed...); err != nil {
		return err
	}
	if err := node.Decode(out); err != nil {
		return invalidAt(node, path, err.Error())
	}
	return nil
}

// knownKeys rejects mapping keys outside allowed. yaml.Node.Decode has no
// strict mode, so unknown fields are caught here with their line numbers.
func knownKeys(node *yaml.Node, path string, allowed ...string) error {
	if node.Kind != yaml.MappingNode {
		return invalidAt(node, path, "expected a mapping")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if !slices.Contains(allowed, key.Value) {
			return invalidAt(key, path, fmt.Sprintf("unknown field %q", key.Value))
		}
	}
	return nil
}

// checkItems applies knownKeys to every entry of the list stored under field.
func checkItems(node *yaml.Node, field, path string, allowed ...string) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value != field {
			continue
		}
		list := node.Content[i+1]
		if list.Kind != yaml.SequenceNode {
			return invalidAt(list, path+"."+field, "expected a list")
		}
		for j, item := range list.Content {
			if err := knownKeys(item, fmt.Sprintf("%s.%s[%d]", path, field, j), allowed...); err != nil {
				return err
			}
		}
	}
	return nil
}

func invalidAt(node *yaml.Node, path, reason string) error {
	return &core.InvalidBlockDefinitionError{
		Path:   path,
		Reason: fmt.Sprintf("line %d: %s", node.Line, reason),
	}
}
