package core

import (
	"fmt"
	"regexp"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Metadata is page-level data handed to the layout shell alongside the content.
type Metadata struct {
	Title       string
	Description string
	Slug        string
}

func (m Metadata) validate() error {
	if blank(m.Title) {
		return invalid("metadata.title", "page title is required")
	}
	if m.Slug != "" && !slugPattern.MatchString(m.Slug) {
		return invalid("metadata.slug", fmt.Sprintf("slug %q must be lowercase words joined by hyphens", m.Slug))
	}
	return nil
}

// Document is one page: metadata plus an ordered tree of blocks. It owns its
// blocks and never hands out references to them, so a Document cannot change
// after Assemble returns.
type Document struct {
	meta   Metadata
	blocks []Block
}

// Assemble validates every block, nested ones included, and returns a Document
// holding private copies of them in the given order. The first defect found is
// returned as an *InvalidBlockDefinitionError.
func Assemble(meta Metadata, blocks []Block) (Document, error) {
	if err := meta.validate(); err != nil {
		return Document{}, err
	}
	for i, b := range blocks {
		path := fmt.Sprintf("blocks[%d]", i)
		if b == nil {
			return Document{}, invalid(path, "block is nil")
		}
		if err := b.validate(); err != nil {
			return Document{}, prefixed(path, err)
		}
	}
	return Document{meta: meta, blocks: cloneBlocks(blocks)}, nil
}

func (d Document) Metadata() Metadata {
	return d.meta
}

func (d Document) Title() string {
	return d.meta.Title
}

func (d Document) Len() int {
	return len(d.blocks)
}

// Blocks returns a copy of the top-level blocks.
func (d Document) Blocks() []Block {
	return cloneBlocks(d.blocks)
}

// With returns a new Document with blocks appended. The receiver is unchanged.
func (d Document) With(blocks ...Block) (Document, error) {
	all := make([]Block, 0, len(d.blocks)+len(blocks))
	all = append(all, d.blocks...)
	all = append(all, blocks...)
	return Assemble(d.meta, all)
}

// WithMetadata returns a new Document with the same blocks and new metadata.
func (d Document) WithMetadata(meta Metadata) (Document, error) {
	return Assemble(meta, d.blocks)
}
