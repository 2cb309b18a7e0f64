package core

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	gmtext "github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// inlineParser reads only paragraphs, code spans and links. Everything else,
// emphasis and raw HTML included, stays literal text.
var inlineParser = parser.NewParser(
	parser.WithBlockParsers(
		util.Prioritized(parser.NewParagraphParser(), 1000),
	),
	parser.WithInlineParsers(
		util.Prioritized(parser.NewCodeSpanParser(), 100),
		util.Prioritized(parser.NewLinkParser(), 200),
	),
)

// inline splits text into text, `code` and [label](url) nodes. Markers that do
// not close are kept as literal text. Images and other inline forms are
// flattened to their text.
func (r *Renderer) inline(s string) []Node {
	src := []byte(s)
	doc := inlineParser.Parse(gmtext.NewReader(src))

	b := inlineBuilder{r: r, src: src}
	for block := doc.FirstChild(); block != nil; block = block.NextSibling() {
		if block.PreviousSibling() != nil {
			b.plain.WriteString("\n\n")
		}
		b.walk(block)
	}
	b.flush()
	return b.nodes
}

type inlineBuilder struct {
	r     *Renderer
	src   []byte
	nodes []Node
	plain strings.Builder
}

func (b *inlineBuilder) flush() {
	if b.plain.Len() > 0 {
		b.nodes = append(b.nodes, text(b.plain.String()))
		b.plain.Reset()
	}
}

func (b *inlineBuilder) walk(parent ast.Node) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *ast.Text:
			b.plain.WriteString(textValue(n, b.src))
		case *ast.CodeSpan:
			b.flush()
			b.nodes = append(b.nodes, element("code", nil, text(codeValue(n, b.src))))
		case *ast.Link:
			b.flush()
			b.nodes = append(b.nodes, b.r.anchor(plainText(n, b.src), string(n.Destination)))
		default:
			b.plain.WriteString(plainText(n, b.src))
		}
	}
}

// textValue resolves backslash escapes and character references, and keeps
// line breaks as newlines.
func textValue(t *ast.Text, src []byte) string {
	v := t.Segment.Value(src)
	if !t.IsRaw() {
		v = util.ResolveNumericReferences(util.ResolveEntityNames(util.UnescapePunctuations(v)))
	}
	s := string(v)
	if t.SoftLineBreak() || t.HardLineBreak() {
		s += "\n"
	}
	return s
}

// codeValue keeps the span's bytes, with line endings folded to spaces.
func codeValue(n *ast.CodeSpan, src []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			sb.Write(c.Segment.Value(src))
		case *ast.String:
			sb.Write(c.Value)
		}
	}
	return strings.ReplaceAll(sb.String(), "\n", " ")
}

func plainText(n ast.Node, src []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			sb.WriteString(textValue(c, src))
		case *ast.String:
			sb.Write(c.Value)
		case *ast.CodeSpan:
			sb.WriteString(codeValue(c, src))
		default:
			sb.WriteString(plainText(c, src))
		}
	}
	return sb.String()
}
